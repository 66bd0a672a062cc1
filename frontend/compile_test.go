package frontend

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/consensys/tinygroth16/constraint"
)

// an equation with k binary operators compiles to k+1 gates
func TestGateCountLaw(t *testing.T) {
	for _, tc := range []struct {
		equation string
		gates    int
	}{
		{"x == 5", 1},
		{"x + 4 == 9", 2},
		{"x*x == 4", 2},
		{"(3*x + 4)/2 == 11", 4},
		{"x**3 + x + 5 == 35", 5},
	} {
		cs, err := Compile(tc.equation)
		require.NoError(t, err, tc.equation)
		require.Equal(t, tc.gates, len(cs.Gates), tc.equation)
		require.Equal(t, tc.gates, cs.NbConstraints(), tc.equation)
	}
}

func TestCompileCubicGates(t *testing.T) {
	eq, err := Parse("(x*x*x) + x + 5 == 35")
	require.NoError(t, err)
	gates := CompileEquation(eq)

	x := constraint.Var("x")
	want := []constraint.Gate{
		// x*x = t1, x*t1 = t2
		{L: constraint.Single(x), R: constraint.Single(x), O: constraint.Single(constraint.Tmp(1))},
		{L: constraint.Single(x), R: constraint.Single(constraint.Tmp(1)), O: constraint.Single(constraint.Tmp(2))},
		// (x + 5)*1 = t3
		{L: constraint.Sum(x, lit5()), R: constraint.Single(constraint.One()), O: constraint.Single(constraint.Tmp(3))},
		// (t2 + t3)*1 = t4
		{L: constraint.Sum(constraint.Tmp(2), constraint.Tmp(3)), R: constraint.Single(constraint.One()), O: constraint.Single(constraint.Tmp(4))},
		// t4*1 = out
		{L: constraint.Single(constraint.Tmp(4)), R: constraint.Single(constraint.One()), O: constraint.Single(constraint.Out())},
	}
	if diff := cmp.Diff(want, gates); diff != "" {
		t.Fatalf("unexpected gates (-want +got):\n%s", diff)
	}
}

func lit5() constraint.Term {
	return constraint.Num(lit(5).Val)
}

// two compilations of the same text must agree wire for wire, since the
// serialized artifact only stores gates and the layout is rebuilt on read
func TestCompileDeterministic(t *testing.T) {
	const src = "(3*x + 4*y)/2 - y == 11"
	a, err := Compile(src)
	require.NoError(t, err)
	b, err := Compile(src)
	require.NoError(t, err)

	if diff := cmp.Diff(a.Gates, b.Gates); diff != "" {
		t.Fatalf("gates differ between compilations:\n%s", diff)
	}
	if diff := cmp.Diff(a.Wires, b.Wires); diff != "" {
		t.Fatalf("wire layout differs between compilations:\n%s", diff)
	}
	require.Equal(t, a.NbStatement, b.NbStatement)
}

func TestCompileParseError(t *testing.T) {
	_, err := Compile("x + == 3")
	require.ErrorIs(t, err, ErrInvalidEquation)
}
