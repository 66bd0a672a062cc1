package groth16

import (
	"math/big"
	"time"

	curve "github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/consensys/tinygroth16/logger"
	"github.com/consensys/tinygroth16/qap"
)

// toxicWaste holds the five trapdoor scalars of a setup ceremony. It never
// leaves this package: Setup consumes it and wipes the scalars before
// returning, so the only trace left is group-embedded.
type toxicWaste struct {
	alpha, beta, gamma, delta, x fr.Element
}

func sampleToxicWaste() (tw toxicWaste, err error) {
	for _, e := range []*fr.Element{&tw.alpha, &tw.beta, &tw.gamma, &tw.delta, &tw.x} {
		for e.IsZero() {
			if _, err = e.SetRandom(); err != nil {
				return
			}
		}
	}
	return
}

func (tw *toxicWaste) wipe() {
	tw.alpha.SetZero()
	tw.beta.SetZero()
	tw.gamma.SetZero()
	tw.delta.SetZero()
	tw.x.SetZero()
}

// Setup runs the trusted setup for one QAP-encoded circuit and returns its
// CRS. The trapdoor scalars are sampled fresh, consumed, and scrubbed; they
// are not recoverable from the returned CRS short of discrete log.
func Setup(q *qap.QAP) (*CRS, error) {
	log := logger.Logger()
	start := time.Now()

	n := q.NbConstraints
	tw, err := sampleToxicWaste()
	if err != nil {
		return nil, err
	}
	defer tw.wipe()

	crs := &CRS{
		NbStatement:   uint64(q.NbStatement),
		NbWires:       uint64(q.NbWires),
		NbConstraints: uint64(n),
	}

	_, _, g1, g2 := curve.Generators()
	var bi big.Int

	// generator encodings of the trapdoor scalars
	crs.G1.Alpha.ScalarMultiplication(&g1, tw.alpha.BigInt(&bi))
	crs.G1.Beta.ScalarMultiplication(&g1, tw.beta.BigInt(&bi))
	crs.G1.Delta.ScalarMultiplication(&g1, tw.delta.BigInt(&bi))
	crs.G2.Beta.ScalarMultiplication(&g2, tw.beta.BigInt(&bi))
	crs.G2.Gamma.ScalarMultiplication(&g2, tw.gamma.BigInt(&bi))
	crs.G2.Delta.ScalarMultiplication(&g2, tw.delta.BigInt(&bi))
	crs.G2.GammaNeg.Neg(&crs.G2.Gamma)
	crs.G2.DeltaNeg.Neg(&crs.G2.Delta)

	// power sequences {xⁱ} on both groups
	xi := powers(tw.x, n)
	crs.G1.X = curve.BatchScalarMultiplicationG1(&g1, xi)
	crs.G2.X = curve.BatchScalarMultiplicationG2(&g2, xi)

	// per-wire combined terms (β·vᵢ + α·wᵢ + yᵢ)(x), divided by γ on the
	// statement range and by δ on the witness range
	uvw := make([]fr.Element, q.NbWires)
	var vx, wx, yx fr.Element
	for i := 0; i < q.NbWires; i++ {
		vx = q.V[i].Eval(tw.x)
		wx = q.W[i].Eval(tw.x)
		yx = q.Y[i].Eval(tw.x)
		vx.Mul(&vx, &tw.beta)
		wx.Mul(&wx, &tw.alpha)
		uvw[i].Add(&vx, &wx).Add(&uvw[i], &yx)
		if i < q.NbStatement {
			uvw[i].Div(&uvw[i], &tw.gamma)
		} else {
			uvw[i].Div(&uvw[i], &tw.delta)
		}
	}
	kAll := curve.BatchScalarMultiplicationG1(&g1, uvw)
	crs.G1.K = kAll[:q.NbStatement]
	crs.G1.Kpk = kAll[q.NbStatement:]

	// {xⁱ·t(x)/δ} used by the prover to encode h(x)·t(x)/δ
	var zdt fr.Element
	zdt = q.T.Eval(tw.x)
	zdt.Div(&zdt, &tw.delta)
	// a single-constraint circuit has a degree-(-1) quotient and no Z powers
	if n >= 2 {
		zi := make([]fr.Element, 0, n-1)
		for i := 0; i <= n-2; i++ {
			zi = append(zi, zdt)
			zdt.Mul(&zdt, &tw.x)
		}
		crs.G1.Z = curve.BatchScalarMultiplicationG1(&g1, zi)
	}

	// e(α,β), cached for every verification
	e, err := curve.Pair([]curve.G1Affine{crs.G1.Alpha}, []curve.G2Affine{crs.G2.Beta})
	if err != nil {
		return nil, err
	}
	crs.E = e

	log.Debug().Dur("took", time.Since(start)).Int("constraints", n).Msg("groth16 setup done")
	return crs, nil
}

// powers returns {base⁰, base¹, ..., base^(count-1)}.
func powers(base fr.Element, count int) []fr.Element {
	res := make([]fr.Element, count)
	if count == 0 {
		return res
	}
	res[0].SetOne()
	for i := 1; i < count; i++ {
		res[i].Mul(&res[i-1], &base)
	}
	return res
}
