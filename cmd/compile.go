package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/consensys/tinygroth16/frontend"
)

// compileCmd represents the compile command
var compileCmd = &cobra.Command{
	Use:     "compile \"equation\"",
	Short:   "compiles an equation (e.g. \"x**3 + x + 5 == 35\") into a rank-1 constraint system",
	Run:     cmdCompile,
	Version: buildString(),
}

var fCircuitPath string

func init() {
	rootCmd.AddCommand(compileCmd)
	compileCmd.PersistentFlags().StringVar(&fCircuitPath, "circuit", "circuit.r1cs", "specifies full path for the compiled circuit")
}

func cmdCompile(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("missing equation -- tinygroth16 compile -h for help")
		os.Exit(-1)
	}

	cs, err := frontend.Compile(args[0])
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-d constraints, %-d wires\n", "compiled equation", cs.NbConstraints(), cs.NbWires())

	if err := cs.Write(fCircuitPath); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %s\n", "generated circuit", fCircuitPath)
}
