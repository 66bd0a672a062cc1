package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/consensys/tinygroth16/backend/groth16"
	"github.com/consensys/tinygroth16/qap"
)

// proveCmd represents the prove command
var proveCmd = &cobra.Command{
	Use:     "prove [circuit.r1cs]",
	Short:   "creates a (zk)proof for the provided circuit and solution",
	Run:     cmdProve,
	Version: buildString(),
}

var (
	fProofPath string
	fInputPath string
)

func init() {
	rootCmd.AddCommand(proveCmd)
	proveCmd.PersistentFlags().StringVar(&fProofPath, "proof", "", "specifies full path for proof -- default is ./[circuit].proof")
	proveCmd.PersistentFlags().StringVar(&fCRSPath, "crs", "", "specifies full path for the common reference string")
	proveCmd.PersistentFlags().StringVar(&fInputPath, "input", "", "specifies full path for input file")
	_ = proveCmd.MarkPersistentFlagRequired("crs")
	_ = proveCmd.MarkPersistentFlagRequired("input")
}

func cmdProve(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("missing circuit path -- tinygroth16 prove -h for help")
		os.Exit(-1)
	}
	circuitPath := filepath.Clean(args[0])

	fCRSPath = filepath.Clean(fCRSPath)
	if !fileExists(fCRSPath) {
		fmt.Println(fCRSPath, errNotFound)
		os.Exit(-1)
	}
	fInputPath = filepath.Clean(fInputPath)
	if !fileExists(fInputPath) {
		fmt.Println(fInputPath, errNotFound)
		os.Exit(-1)
	}

	cs, err := loadCircuit(circuitPath)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-d constraints\n", "loaded circuit", circuitPath, cs.NbConstraints())

	crs, err := readCRS(fCRSPath)
	if err != nil {
		fmt.Println("can't load crs:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s\n", "loaded crs", fCRSPath)

	inputs, err := readInputs(fInputPath)
	if err != nil {
		fmt.Println("can't parse input:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-d inputs\n", "loaded input", fInputPath, len(inputs))

	// solve for the full witness, then prove
	w, err := cs.Solve(inputs)
	if err != nil {
		fmt.Println("can't solve circuit:", err)
		os.Exit(-1)
	}
	q, err := qap.Build(cs)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}

	start := time.Now()
	proof, err := groth16.Prove(crs, q, w)
	if err != nil {
		fmt.Println("error proof generation:", err)
		os.Exit(-1)
	}
	duration := time.Since(start)

	proofPath := fProofPath
	if proofPath == "" {
		proofPath = artifactPath(circuitPath, ".proof")
	}
	if err := writeProof(proofPath, proof); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-30s\n", "generated proof", proofPath, duration)
}
