package groth16

import (
	"context"
	"fmt"
	"math/big"
	"runtime"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"golang.org/x/sync/errgroup"

	"github.com/consensys/tinygroth16/constraint"
	"github.com/consensys/tinygroth16/internal/poly"
	"github.com/consensys/tinygroth16/logger"
	"github.com/consensys/tinygroth16/qap"
)

// Prove generates a proof that the witness satisfies the circuit. Two fresh
// blinding scalars are drawn from a CSPRNG on every call; they are what
// makes the proof zero-knowledge and must never be reused, which this API
// enforces by giving callers no handle on them.
//
// The witness is expected to satisfy the constraint system; run Validate
// first, an inconsistent witness surfaces here as a failed quotient.
func Prove(crs *CRS, q *qap.QAP, w *constraint.SparseVector) (*Proof, error) {
	log := logger.Logger()
	start := time.Now()

	if uint64(w.Size()) != crs.NbWires {
		return nil, fmt.Errorf("witness size %d, expected %d", w.Size(), crs.NbWires)
	}

	// quotient polynomial h = p/t
	h, err := q.Quotient(w)
	if err != nil {
		return nil, err
	}

	// per-witness folded polynomials Σwᵢ·vᵢ and Σwᵢ·wᵢ
	sv, sw, _, err := q.Combine(w)
	if err != nil {
		return nil, err
	}

	// fresh blinding scalars
	var r, s, rsNeg fr.Element
	if _, err := r.SetRandom(); err != nil {
		return nil, err
	}
	if _, err := s.SetRandom(); err != nil {
		return nil, err
	}
	rsNeg.Mul(&r, &s).Neg(&rsNeg)

	// r[δ]₁, s[δ]₁, -rs[δ]₁
	deltas := curve.BatchScalarMultiplicationG1(&crs.G1.Delta, []fr.Element{r, s, rsNeg})

	wDense := w.Dense()
	var rBig, sBig big.Int
	r.BigInt(&rBig)
	s.BigInt(&sBig)

	proof := &Proof{}
	var ar, bs1, krs curve.G1Jac
	var bs2 curve.G2Jac

	g, _ := errgroup.WithContext(context.TODO())

	// A = [α + Σwᵢ·vᵢ(x) + rδ]₁
	g.Go(func() error {
		p, err := poly.EvalG1(sv, crs.G1.X)
		if err != nil {
			return err
		}
		ar.FromAffine(&p)
		ar.AddMixed(&crs.G1.Alpha)
		ar.AddMixed(&deltas[0])
		proof.Ar.FromJacobian(&ar)
		return nil
	})

	// B = [β + Σwᵢ·wᵢ(x) + sδ]₂ and its G1 twin used in C
	g.Go(func() error {
		p2, err := poly.EvalG2(sw, crs.G2.X)
		if err != nil {
			return err
		}
		bs2.FromAffine(&p2)
		var sDelta curve.G2Jac
		sDelta.FromAffine(&crs.G2.Delta)
		sDelta.ScalarMultiplication(&sDelta, &sBig)
		bs2.AddAssign(&sDelta)
		bs2.AddMixed(&crs.G2.Beta)
		proof.Bs.FromJacobian(&bs2)

		p1, err := poly.EvalG1(sw, crs.G1.X)
		if err != nil {
			return err
		}
		bs1.FromAffine(&p1)
		bs1.AddMixed(&crs.G1.Beta)
		bs1.AddMixed(&deltas[1])
		return nil
	})

	// witness-side Σwᵢ·[(βvᵢ+αwᵢ+yᵢ)/δ]₁ and the h(x)t(x)/δ encoding
	g.Go(func() error {
		if len(crs.G1.Kpk) > 0 {
			if _, err := krs.MultiExp(crs.G1.Kpk, wDense[crs.NbStatement:], ecc.MultiExpConfig{NbTasks: runtime.NumCPU() / 2}); err != nil {
				return err
			}
		}
		ht, err := poly.EvalG1(h, crs.G1.Z)
		if err != nil {
			return err
		}
		krs.AddMixed(&ht)
		krs.AddMixed(&deltas[2])
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// C = krs + s·A + r·B₁
	var p1 curve.G1Jac
	p1.ScalarMultiplication(&ar, &sBig)
	krs.AddAssign(&p1)
	p1.ScalarMultiplication(&bs1, &rBig)
	krs.AddAssign(&p1)
	proof.Krs.FromJacobian(&krs)

	log.Debug().Dur("took", time.Since(start)).Msg("prover done")
	return proof, nil
}

