package groth16

import (
	"fmt"
	"runtime"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/tinygroth16/logger"
)

// Verify checks the proof against the public statement, the prefix of the
// witness vector up to and including the output wire (statement[0] is the
// constant one). It returns false for any proof that does not verify;
// correctness and malice are indistinguishable to this check.
//
// The only error condition is a statement of the wrong length; a negative
// outcome is a regular false return, never an error.
func Verify(proof *Proof, crs *CRS, statement []fr.Element) (bool, error) {
	log := logger.Logger()
	start := time.Now()

	if uint64(len(statement)) != crs.NbStatement {
		return false, fmt.Errorf("statement size %d, expected %d", len(statement), crs.NbStatement)
	}

	// points outside the prime-order subgroups can never satisfy the
	// pairing equation honestly; reject them outright
	if !proof.Ar.IsInSubGroup() || !proof.Krs.IsInSubGroup() || !proof.Bs.IsInSubGroup() {
		return false, nil
	}

	// Σ statement[i] · [(β·vᵢ + α·wᵢ + yᵢ)/γ]₁
	var kSumJac curve.G1Jac
	if _, err := kSumJac.MultiExp(crs.G1.K, statement, ecc.MultiExpConfig{NbTasks: runtime.NumCPU()}); err != nil {
		return false, err
	}
	var kSum curve.G1Affine
	kSum.FromJacobian(&kSumJac)

	// e(A,B) · e(Σ,-γ) · e(C,-δ) == e(α,β)
	ml, err := curve.MillerLoop(
		[]curve.G1Affine{proof.Ar, kSum, proof.Krs},
		[]curve.G2Affine{proof.Bs, crs.G2.GammaNeg, crs.G2.DeltaNeg},
	)
	if err != nil {
		return false, err
	}
	res := curve.FinalExponentiation(&ml)

	log.Debug().Dur("took", time.Since(start)).Msg("verifier done")
	return res.Equal(&crs.E), nil
}
