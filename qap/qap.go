// Package qap lifts a rank-1 constraint system into its Quadratic Arithmetic
// Program: one polynomial per witness-vector column and matrix side,
// interpolated so that column values are reproduced at the constraint index
// points 1..n, plus the vanishing polynomial of those points.
//
// A witness w satisfies the R1CS iff
//
//	p := (Σᵢ wᵢ·Vᵢ)·(Σᵢ wᵢ·Wᵢ) − Σᵢ wᵢ·Yᵢ
//
// is divisible by T(x) = Π_{k=1..n} (x−k).
package qap

import (
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/tinygroth16/constraint"
	"github.com/consensys/tinygroth16/internal/poly"
	"github.com/consensys/tinygroth16/logger"
)

// ErrNotDivisible reports a quotient with non-zero remainder. It can only be
// observed on a witness that fails R1CS validation; seeing it after a
// successful Validate indicates a translation bug.
var ErrNotDivisible = errors.New("polynomial is not divisible by the vanishing polynomial")

// QAP is the polynomial form of a constraint system.
type QAP struct {
	V, W, Y []poly.Polynomial // per witness-vector column, degree < n
	T       poly.Polynomial   // vanishing polynomial, degree n

	NbConstraints int // n
	NbWires       int // m+1
	NbStatement   int // l+1
}

// Build interpolates the three transposed constraint matrices of s.
func Build(s *constraint.System) (*QAP, error) {
	n := s.NbConstraints()
	if n == 0 {
		return nil, errors.New("empty constraint system")
	}

	q := &QAP{
		NbConstraints: n,
		NbWires:       s.NbWires(),
		NbStatement:   s.NbStatement,
		T:             vanishing(n),
	}

	// column i across all constraints becomes the interpolation target of
	// the i-th polynomial
	side := func(pick func(c constraint.R1C) *constraint.SparseVector) ([]poly.Polynomial, error) {
		res := make([]poly.Polynomial, q.NbWires)
		column := make([]fr.Element, n)
		for i := 0; i < q.NbWires; i++ {
			for k, c := range s.Constraints {
				v, err := pick(c).Get(i)
				if err != nil {
					return nil, err
				}
				column[k] = v
			}
			res[i] = interpolate(column)
		}
		return res, nil
	}

	var err error
	if q.V, err = side(func(c constraint.R1C) *constraint.SparseVector { return c.L }); err != nil {
		return nil, err
	}
	if q.W, err = side(func(c constraint.R1C) *constraint.SparseVector { return c.R }); err != nil {
		return nil, err
	}
	if q.Y, err = side(func(c constraint.R1C) *constraint.SparseVector { return c.O }); err != nil {
		return nil, err
	}

	log := logger.Logger()
	log.Debug().Int("constraints", n).Int("wires", q.NbWires).Msg("built QAP")

	return q, nil
}

// interpolate returns the unique polynomial of degree < n with
// p(k) = values[k-1] for k = 1..n, by Lagrange interpolation. An all-zero
// column yields the zero polynomial without building any basis term.
func interpolate(values []fr.Element) poly.Polynomial {
	var res poly.Polynomial
	var xk, denom, t fr.Element
	for k0 := range values {
		if values[k0].IsZero() {
			continue
		}
		// v · Π_{k≠k0} (x−k)/(k0−k)
		basis := poly.Polynomial{values[k0]}
		denom.SetOne()
		for k := range values {
			if k == k0 {
				continue
			}
			xk.SetUint64(uint64(k + 1))
			xk.Neg(&xk)
			basis = basis.Mul(poly.Polynomial{xk, fr.One()})
			t.SetInt64(int64(k0 - k))
			denom.Mul(&denom, &t)
		}
		denom.Inverse(&denom)
		res = res.Add(basis.Scale(denom))
	}
	return res
}

// vanishing returns T(x) = Π_{k=1..n} (x−k).
func vanishing(n int) poly.Polynomial {
	res := poly.Polynomial{fr.One()}
	var mk fr.Element
	for k := 1; k <= n; k++ {
		mk.SetUint64(uint64(k))
		mk.Neg(&mk)
		res = res.Mul(poly.Polynomial{mk, fr.One()})
	}
	return res
}

// Combine folds a witness into the three polynomial families:
// sv = Σ wᵢ·Vᵢ, sw = Σ wᵢ·Wᵢ, sy = Σ wᵢ·Yᵢ.
func (q *QAP) Combine(w *constraint.SparseVector) (sv, sw, sy poly.Polynomial, err error) {
	if w.Size() != q.NbWires {
		return nil, nil, nil, fmt.Errorf("witness size %d, expected %d", w.Size(), q.NbWires)
	}
	for i := 0; i < q.NbWires; i++ {
		wi, err := w.Get(i)
		if err != nil {
			return nil, nil, nil, err
		}
		if wi.IsZero() {
			continue
		}
		sv = sv.Add(q.V[i].Scale(wi))
		sw = sw.Add(q.W[i].Scale(wi))
		sy = sy.Add(q.Y[i].Scale(wi))
	}
	return sv, sw, sy, nil
}

// buildP returns p = sv·sw − sy for the witness.
func (q *QAP) buildP(w *constraint.SparseVector) (poly.Polynomial, error) {
	sv, sw, sy, err := q.Combine(w)
	if err != nil {
		return nil, err
	}
	return sv.Mul(sw).Sub(sy), nil
}

// Quotient returns h = p/T. The division being exact is the algebraic
// restatement of R1CS validity; a non-zero remainder yields ErrNotDivisible.
func (q *QAP) Quotient(w *constraint.SparseVector) (poly.Polynomial, error) {
	p, err := q.buildP(w)
	if err != nil {
		return nil, err
	}
	h, rem, err := p.Div(q.T)
	if err != nil {
		return nil, err
	}
	if !rem.IsZero() {
		return nil, ErrNotDivisible
	}
	return h, nil
}

// IsValid reports whether the witness satisfies the QAP. It must agree with
// constraint.System.Validate on every witness over the same template.
func (q *QAP) IsValid(w *constraint.SparseVector) bool {
	_, err := q.Quotient(w)
	return err == nil
}
