// Package poly implements dense univariate polynomial arithmetic over the
// BN254 scalar field, plus evaluation "in the exponent" against precomputed
// power sequences of group elements.
package poly

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrDivisionByZero is returned when dividing by the zero polynomial.
var ErrDivisionByZero = errors.New("polynomial division by zero")

// Polynomial holds coefficients in increasing degree order. The zero
// polynomial is the empty (or all-zero) slice.
type Polynomial []fr.Element

// Degree returns the degree, -1 for the zero polynomial.
func (p Polynomial) Degree() int {
	for i := len(p) - 1; i >= 0; i-- {
		if !p[i].IsZero() {
			return i
		}
	}
	return -1
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool { return p.Degree() == -1 }

// trim drops high zero coefficients.
func (p Polynomial) trim() Polynomial {
	return p[:p.Degree()+1]
}

// Clone returns an independent copy.
func (p Polynomial) Clone() Polynomial {
	res := make(Polynomial, len(p))
	copy(res, p)
	return res
}

// Add returns p + q.
func (p Polynomial) Add(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	res := make(Polynomial, n)
	copy(res, p)
	for i := range q {
		res[i].Add(&res[i], &q[i])
	}
	return res.trim()
}

// Sub returns p - q.
func (p Polynomial) Sub(q Polynomial) Polynomial {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	res := make(Polynomial, n)
	copy(res, p)
	for i := range q {
		res[i].Sub(&res[i], &q[i])
	}
	return res.trim()
}

// Mul returns p * q by schoolbook multiplication; the polynomials here have
// degree bounded by the constraint count, so no FFT is warranted.
func (p Polynomial) Mul(q Polynomial) Polynomial {
	p, q = p.trim(), q.trim()
	if len(p) == 0 || len(q) == 0 {
		return nil
	}
	res := make(Polynomial, len(p)+len(q)-1)
	var t fr.Element
	for i := range p {
		if p[i].IsZero() {
			continue
		}
		for j := range q {
			t.Mul(&p[i], &q[j])
			res[i+j].Add(&res[i+j], &t)
		}
	}
	return res.trim()
}

// Scale returns c * p.
func (p Polynomial) Scale(c fr.Element) Polynomial {
	res := make(Polynomial, len(p))
	for i := range p {
		res[i].Mul(&p[i], &c)
	}
	return res.trim()
}

// Div returns the euclidean quotient and remainder of p by q.
func (p Polynomial) Div(q Polynomial) (quo, rem Polynomial, err error) {
	q = q.trim()
	if len(q) == 0 {
		return nil, nil, ErrDivisionByZero
	}
	rem = p.Clone().trim()
	if len(rem) < len(q) {
		return nil, rem, nil
	}

	var leadInv fr.Element
	leadInv.Inverse(&q[len(q)-1])

	quo = make(Polynomial, len(rem)-len(q)+1)
	var c, t fr.Element
	for len(rem) >= len(q) {
		d := len(rem) - len(q)
		c.Mul(&rem[len(rem)-1], &leadInv)
		quo[d] = c
		for i := range q {
			t.Mul(&c, &q[i])
			rem[d+i].Sub(&rem[d+i], &t)
		}
		rem = rem[:len(rem)-1].trim()
	}
	return quo, rem, nil
}

// Eval returns p(x) by Horner's rule.
func (p Polynomial) Eval(x fr.Element) fr.Element {
	var res fr.Element
	for i := len(p) - 1; i >= 0; i-- {
		res.Mul(&res, &x)
		res.Add(&res, &p[i])
	}
	return res
}
