// Package tinygroth16 compiles an arithmetic equation over a finite field
// into a zero-knowledge proof that a claimed solution satisfies the equation,
// using the Groth16 pairing-based proving protocol over BN254.
//
// The pipeline is strictly staged:
//   - frontend: equation text -> expression tree -> multiplication gates
//   - constraint: gates -> rank-1 constraint system (R1CS) and witness vector
//   - qap: R1CS -> quadratic arithmetic program (polynomial form)
//   - backend/groth16: trusted setup (CRS), proof generation, verification
//
// Each stage consumes the previous stage's output and never mutates it; the
// CRS is read-only after Setup and may be shared by concurrent provers.
package tinygroth16

import (
	"github.com/blang/semver/v4"
	"github.com/consensys/gnark-crypto/ecc"
)

// Version of the library, serialized with circuit artifacts.
var Version = semver.MustParse("0.1.0")

// Curve returns the curve this library operates on.
func Curve() ecc.ID {
	return ecc.BN254
}
