package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/consensys/tinygroth16/backend/groth16"
	"github.com/consensys/tinygroth16/constraint"
	"github.com/consensys/tinygroth16/qap"
)

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:     "setup [circuit.r1cs]",
	Short:   "runs the trusted setup and outputs the common reference string for a given circuit",
	Run:     cmdSetup,
	Version: buildString(),
}

var fCRSPath string

func init() {
	rootCmd.AddCommand(setupCmd)
	setupCmd.PersistentFlags().StringVar(&fCRSPath, "crs", "", "specifies full path for the common reference string -- default is ./[circuit].crs")
}

func cmdSetup(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("missing circuit path -- tinygroth16 setup -h for help")
		os.Exit(-1)
	}
	circuitPath := filepath.Clean(args[0])

	crsPath := fCRSPath
	if crsPath == "" {
		crsPath = artifactPath(circuitPath, ".crs")
	}

	cs, err := loadCircuit(circuitPath)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-d constraints\n", "loaded circuit", circuitPath, cs.NbConstraints())

	q, err := qap.Build(cs)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	start := time.Now()
	crs, err := groth16.Setup(q)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-30s\n", "setup completed", "", time.Since(start))

	if err := writeCRS(crsPath, crs); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %s\n", "generated crs", crsPath)
}

func loadCircuit(circuitPath string) (*constraint.System, error) {
	if !fileExists(circuitPath) {
		return nil, fmt.Errorf("%s: %w", circuitPath, errNotFound)
	}
	return constraint.Read(circuitPath)
}

// artifactPath derives ./[circuit].[ext] from the circuit path.
func artifactPath(circuitPath, ext string) string {
	name := filepath.Base(circuitPath)
	name = name[:len(name)-len(filepath.Ext(name))]
	return filepath.Join(".", name+ext)
}
