package poly

import (
	"errors"
	"runtime"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
)

// ErrNotEnoughPowers is returned when the power sequence is shorter than the
// polynomial it should evaluate.
var ErrNotEnoughPowers = errors.New("not enough powers to evaluate polynomial in the exponent")

// EvalG1 evaluates p at the secret point hidden in the power sequence
// powers[i] = [xⁱ]₁, without knowing x: it returns Σ p[i]·powers[i] as a
// single multi-exponentiation.
func EvalG1(p Polynomial, powers []bn254.G1Affine) (bn254.G1Affine, error) {
	var res bn254.G1Affine
	p = p.trim()
	if len(p) == 0 {
		return res, nil // the identity
	}
	if len(p) > len(powers) {
		return res, ErrNotEnoughPowers
	}
	var acc bn254.G1Jac
	if _, err := acc.MultiExp(powers[:len(p)], p, ecc.MultiExpConfig{NbTasks: runtime.NumCPU()}); err != nil {
		return res, err
	}
	res.FromJacobian(&acc)
	return res, nil
}

// EvalG2 is EvalG1 for powers on the second pairing group.
func EvalG2(p Polynomial, powers []bn254.G2Affine) (bn254.G2Affine, error) {
	var res bn254.G2Affine
	p = p.trim()
	if len(p) == 0 {
		return res, nil
	}
	if len(p) > len(powers) {
		return res, ErrNotEnoughPowers
	}
	var acc bn254.G2Jac
	if _, err := acc.MultiExp(powers[:len(p)], p, ecc.MultiExpConfig{NbTasks: runtime.NumCPU()}); err != nil {
		return res, err
	}
	res.FromJacobian(&acc)
	return res, nil
}
