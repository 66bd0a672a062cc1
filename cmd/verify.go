package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/consensys/tinygroth16/backend/groth16"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:     "verify [proof]",
	Short:   "verifies a proof against a common reference string and a public statement",
	Run:     cmdVerify,
	Version: buildString(),
}

var fVerifyCircuitPath string

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.PersistentFlags().StringVar(&fVerifyCircuitPath, "circuit", "", "specifies full path for the compiled circuit")
	verifyCmd.PersistentFlags().StringVar(&fCRSPath, "crs", "", "specifies full path for the common reference string")
	verifyCmd.PersistentFlags().StringVar(&fInputPath, "input", "", "specifies full path for the public input file")
	_ = verifyCmd.MarkPersistentFlagRequired("circuit")
	_ = verifyCmd.MarkPersistentFlagRequired("crs")
	_ = verifyCmd.MarkPersistentFlagRequired("input")
}

func cmdVerify(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("missing proof path -- tinygroth16 verify -h for help")
		os.Exit(-1)
	}
	proofPath := filepath.Clean(args[0])

	for _, path := range []string{proofPath, fVerifyCircuitPath, fCRSPath, fInputPath} {
		if !fileExists(filepath.Clean(path)) {
			fmt.Println(path, errNotFound)
			os.Exit(-1)
		}
	}

	cs, err := loadCircuit(filepath.Clean(fVerifyCircuitPath))
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	crs, err := readCRS(filepath.Clean(fCRSPath))
	if err != nil {
		fmt.Println("can't load crs:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s\n", "loaded crs", fCRSPath)

	inputs, err := readInputs(filepath.Clean(fInputPath))
	if err != nil {
		fmt.Println("can't parse input:", err)
		os.Exit(-1)
	}
	statement, err := cs.StatementFromInputs(inputs)
	if err != nil {
		fmt.Println("can't build statement:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-d public values\n", "loaded input", fInputPath, len(statement))

	proof, err := readProof(proofPath)
	if err != nil {
		fmt.Println("can't parse proof:", err)
		os.Exit(-1)
	}

	start := time.Now()
	ok, err := groth16.Verify(proof, crs, statement)
	if err != nil || !ok {
		fmt.Printf("%-30s %-30s %-30s\n", "proof is invalid", proofPath, time.Since(start))
		if err != nil {
			fmt.Println(err)
		}
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-30s\n", "proof is valid", proofPath, time.Since(start))
}
