package poly

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func fromUint64(coeffs ...uint64) Polynomial {
	res := make(Polynomial, len(coeffs))
	for i, c := range coeffs {
		res[i].SetUint64(c)
	}
	return res
}

// genPoly builds small random polynomials out of uint64 coefficient seeds.
func genPoly() gopter.Gen {
	return gen.SliceOfN(8, gen.UInt64()).Map(func(coeffs []uint64) Polynomial {
		return fromUint64(coeffs...)
	})
}

func TestDegree(t *testing.T) {
	require.Equal(t, -1, Polynomial(nil).Degree())
	require.Equal(t, -1, fromUint64(0, 0).Degree())
	require.Equal(t, 0, fromUint64(7).Degree())
	require.Equal(t, 2, fromUint64(1, 0, 3, 0).Degree())
	require.True(t, fromUint64(0, 0).IsZero())
}

func TestArithmetic(t *testing.T) {
	// (1 + x)(2 + x) = 2 + 3x + x²
	p := fromUint64(1, 1)
	q := fromUint64(2, 1)
	want := fromUint64(2, 3, 1)
	require.Equal(t, want, p.Mul(q))

	// (2 + 3x + x²) - (1 + x) = 1 + 2x + x²
	require.Equal(t, fromUint64(1, 2, 1), want.Sub(p))

	// (1 + x) + (2 + x) = 3 + 2x
	require.Equal(t, fromUint64(3, 2), p.Add(q))
}

func TestEval(t *testing.T) {
	// p(x) = 5 + 2x + x³, p(3) = 5 + 6 + 27 = 38
	p := fromUint64(5, 2, 0, 1)
	var x, want fr.Element
	x.SetUint64(3)
	want.SetUint64(38)
	got := p.Eval(x)
	require.True(t, want.Equal(&got))

	zero := Polynomial(nil).Eval(x)
	require.True(t, zero.IsZero())
}

func TestDivExact(t *testing.T) {
	// (x² - 3x + 2) / (x - 1) = (x - 2), remainder 0
	var m1, m2, m3, two fr.Element
	m1.SetOne().Neg(&m1)
	m3.SetUint64(3).Neg(&m3)
	two.SetUint64(2)
	m2.SetUint64(2).Neg(&m2)

	p := Polynomial{two, m3, fr.One()}
	d := Polynomial{m1, fr.One()}

	quo, rem, err := p.Div(d)
	require.NoError(t, err)
	require.True(t, rem.IsZero())
	require.Equal(t, Polynomial{m2, fr.One()}.trim(), quo.trim())
}

func TestDivByZero(t *testing.T) {
	_, _, err := fromUint64(1, 2).Div(nil)
	require.ErrorIs(t, err, ErrDivisionByZero)
	_, _, err = fromUint64(1, 2).Div(fromUint64(0, 0))
	require.ErrorIs(t, err, ErrDivisionByZero)
}

func TestDivisionProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50

	properties := gopter.NewProperties(parameters)
	properties.Property("p == quo*d + rem and deg(rem) < deg(d)", prop.ForAll(
		func(p, d Polynomial) bool {
			if d.IsZero() {
				return true
			}
			quo, rem, err := p.Div(d)
			if err != nil {
				return false
			}
			if rem.Degree() >= d.Degree() {
				return false
			}
			back := quo.Mul(d).Add(rem)
			diff := back.Sub(p)
			return diff.IsZero()
		},
		genPoly(),
		genPoly(),
	))

	properties.Property("(p*d)/d == p", prop.ForAll(
		func(p, d Polynomial) bool {
			if d.IsZero() {
				return true
			}
			quo, rem, err := p.Mul(d).Div(d)
			if err != nil || !rem.IsZero() {
				return false
			}
			diff := quo.Sub(p)
			return diff.IsZero()
		},
		genPoly(),
		genPoly(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
