// Package cmd is a CLI tool to compile equations, run the trusted setup,
// and produce and verify Groth16 proofs.
package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/spf13/cobra"

	tinygroth16 "github.com/consensys/tinygroth16"
	"github.com/consensys/tinygroth16/backend/groth16"
)

var rootCmd = &cobra.Command{
	Use:     "tinygroth16",
	Short:   "tinygroth16 turns arithmetic equations into Groth16 proofs",
	Version: buildString(),
}

var errNotFound = errors.New("file does not exist")

// Execute runs the root command; it is called once, by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

func buildString() string {
	return fmt.Sprintf("%s (%s)", tinygroth16.Version.String(), tinygroth16.Curve().String())
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// readInputs parses an input file: a JSON object mapping variable names to
// decimal values, e.g. {"x": "3", "out": "35"}.
func readInputs(path string) (map[string]fr.Element, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("can't parse input file %s: %w", path, err)
	}
	inputs := make(map[string]fr.Element, len(raw))
	for name, v := range raw {
		var e fr.Element
		if _, err := e.SetString(v); err != nil {
			return nil, fmt.Errorf("input %q: %w", name, err)
		}
		inputs[name] = e
	}
	return inputs, nil
}

func writeCRS(path string, crs *groth16.CRS) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = crs.WriteTo(f)
	return err
}

func readCRS(path string) (*groth16.CRS, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var crs groth16.CRS
	if _, err := crs.ReadFrom(f); err != nil {
		return nil, err
	}
	return &crs, nil
}

func writeProof(path string, proof *groth16.Proof) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	_, err = proof.WriteTo(f)
	return err
}

func readProof(path string) (*groth16.Proof, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var proof groth16.Proof
	if _, err := proof.ReadFrom(f); err != nil {
		return nil, err
	}
	return &proof, nil
}
