package qap

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"

	"github.com/consensys/tinygroth16/constraint"
	"github.com/consensys/tinygroth16/frontend"
	"github.com/consensys/tinygroth16/internal/poly"
)

func compile(t *testing.T, equation string) *constraint.System {
	t.Helper()
	cs, err := frontend.Compile(equation)
	require.NoError(t, err)
	return cs
}

func solve(t *testing.T, cs *constraint.System, inputs map[string]fr.Element) *constraint.SparseVector {
	t.Helper()
	w, err := cs.Solve(inputs)
	require.NoError(t, err)
	return w
}

func u64(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

// the interpolated polynomials must reproduce the constraint matrices at
// the nodes 1..n
func TestInterpolationMatchesMatrices(t *testing.T) {
	cs := compile(t, "x**3 + x + 5 == 35")
	q, err := Build(cs)
	require.NoError(t, err)

	require.Equal(t, cs.NbConstraints(), q.NbConstraints)
	require.Equal(t, cs.NbWires(), q.NbWires)
	require.Equal(t, cs.NbStatement, q.NbStatement)

	var node fr.Element
	for k, c := range cs.Constraints {
		node.SetUint64(uint64(k + 1))
		for i := 0; i < q.NbWires; i++ {
			for _, side := range []struct {
				p   poly.Polynomial
				row *constraint.SparseVector
			}{
				{q.V[i], c.L},
				{q.W[i], c.R},
				{q.Y[i], c.O},
			} {
				want, err := side.row.Get(i)
				require.NoError(t, err)
				got := side.p.Eval(node)
				require.True(t, want.Equal(&got), "row %d wire %d", k, i)
			}
		}
	}
}

func TestVanishingPolynomial(t *testing.T) {
	cs := compile(t, "x**3 + x + 5 == 35")
	q, err := Build(cs)
	require.NoError(t, err)

	require.Equal(t, q.NbConstraints, q.T.Degree())

	// T vanishes exactly on the nodes
	var node fr.Element
	for k := 1; k <= q.NbConstraints; k++ {
		node.SetUint64(uint64(k))
		v := q.T.Eval(node)
		require.True(t, v.IsZero(), "node %d", k)
	}
	node.SetUint64(uint64(q.NbConstraints + 1))
	v := q.T.Eval(node)
	require.False(t, v.IsZero())
}

// QAP validity must agree with R1CS validation on every witness
func TestAgreesWithR1CS(t *testing.T) {
	cs := compile(t, "x**3 + x + 5 == 35")
	q, err := Build(cs)
	require.NoError(t, err)

	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 20

	properties := gopter.NewProperties(parameters)
	properties.Property("solved witnesses satisfy both forms", prop.ForAll(
		func(x uint64) bool {
			w, err := cs.Solve(map[string]fr.Element{"x": u64(x)})
			if err != nil {
				return false
			}
			return cs.Validate(w) == nil && q.IsValid(w)
		},
		gen.UInt64(),
	))

	properties.Property("tampered witnesses fail both forms", prop.ForAll(
		func(x uint64, delta uint64) bool {
			w, err := cs.Solve(map[string]fr.Element{"x": u64(x)})
			if err != nil {
				return false
			}
			// shift one temporary off its solved value
			idx := cs.NbStatement
			v, err := w.Get(idx)
			if err != nil {
				return false
			}
			bump := u64(delta%100 + 1)
			v.Add(&v, &bump)
			if err := w.Set(idx, v); err != nil {
				return false
			}
			return cs.Validate(w) != nil && !q.IsValid(w)
		},
		gen.UInt64(),
		gen.UInt64(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}

func TestQuotient(t *testing.T) {
	cs := compile(t, "x**3 + x + 5 == 35")
	q, err := Build(cs)
	require.NoError(t, err)

	w := solve(t, cs, map[string]fr.Element{"x": u64(3)})
	h, err := q.Quotient(w)
	require.NoError(t, err)

	// h·T must reproduce p = sv·sw - sy
	sv, sw, sy, err := q.Combine(w)
	require.NoError(t, err)
	p := sv.Mul(sw).Sub(sy)
	diff := h.Mul(q.T).Sub(p)
	require.True(t, diff.IsZero())
	require.LessOrEqual(t, h.Degree(), q.NbConstraints-2)
}

func TestQuotientNotDivisible(t *testing.T) {
	cs := compile(t, "x**3 + x + 5 == 35")
	q, err := Build(cs)
	require.NoError(t, err)

	w := solve(t, cs, map[string]fr.Element{"x": u64(3)})
	v, err := w.Get(cs.NbStatement)
	require.NoError(t, err)
	one := fr.One()
	v.Add(&v, &one)
	require.NoError(t, w.Set(cs.NbStatement, v))

	_, err = q.Quotient(w)
	require.ErrorIs(t, err, ErrNotDivisible)
}

func TestBuildEmptySystem(t *testing.T) {
	_, err := Build(&constraint.System{})
	require.Error(t, err)
}

func TestCombineSizeMismatch(t *testing.T) {
	cs := compile(t, "x + 4 == 9")
	q, err := Build(cs)
	require.NoError(t, err)

	_, _, _, err = q.Combine(constraint.NewSparseVector(1))
	require.Error(t, err)
}
