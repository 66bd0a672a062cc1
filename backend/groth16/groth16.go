// Package groth16 implements the Groth16 zkSNARK protocol over BN254 for
// QAP-encoded circuits: trusted setup, proof generation and verification.
//
// https://eprint.iacr.org/2016/260.pdf
package groth16

import (
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
)

// Proof is a Groth16 proof: two G1 points and one G2 point. A proof is
// bound to the CRS it was produced with and to the public statement.
type Proof struct {
	Ar, Krs curve.G1Affine
	Bs      curve.G2Affine
}

// CRS is the common reference string of one circuit, produced once by the
// trusted-setup authority and reused for every proof. It only contains
// group-embedded evaluations at the (discarded) trapdoor; it is read-only
// after Setup and safe to share between concurrent provers.
type CRS struct {
	// [α]₁, [β]₁, [δ]₁,
	// X: {[xⁱ]₁} for i = 0..n-1,
	// K: [(β·vᵢ(x) + α·wᵢ(x) + yᵢ(x))/γ]₁ for statement indices i = 0..l,
	// Kpk: the same divided by δ for witness indices i = l+1..m,
	// Z: {[xⁱ·t(x)/δ]₁} for i = 0..n-2
	G1 struct {
		Alpha, Beta, Delta curve.G1Affine
		X                  []curve.G1Affine
		K                  []curve.G1Affine
		Kpk                []curve.G1Affine
		Z                  []curve.G1Affine
	}

	// [β]₂, [γ]₂, [δ]₂, X: {[xⁱ]₂} for i = 0..n-1
	// note: -[γ]₂ and -[δ]₂ are cached so that verification folds into one
	// final exponentiation, see Verify
	G2 struct {
		Beta, Gamma, Delta curve.G2Affine
		GammaNeg, DeltaNeg curve.G2Affine
		X                  []curve.G2Affine
	}

	// e(α,β), precomputed once for every verification
	E curve.GT

	NbStatement   uint64 // l+1
	NbWires       uint64 // m+1
	NbConstraints uint64 // n
}
