package constraint

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func u64(v uint64) fr.Element {
	var e fr.Element
	e.SetUint64(v)
	return e
}

// cubicGates is the gate list for (x*x*x) + x + 5 == 35, as the frontend
// emits it. The constraint tests hand-roll it to stay independent of the
// parser.
func cubicGates() []Gate {
	x := Var("x")
	return []Gate{
		{L: Single(x), R: Single(x), O: Single(Tmp(1))},
		{L: Single(x), R: Single(Tmp(1)), O: Single(Tmp(2))},
		{L: Sum(x, Num(u64(5))), R: Single(One()), O: Single(Tmp(3))},
		{L: Sum(Tmp(2), Tmp(3)), R: Single(One()), O: Single(Tmp(4))},
		{L: Single(Tmp(4)), R: Single(One()), O: Single(Out())},
	}
}

// cubicAssignment is the consistent witness for x = 3.
func cubicAssignment() map[Term]fr.Element {
	return map[Term]fr.Element{
		Var("x"): u64(3),
		Tmp(1):   u64(9),
		Tmp(2):   u64(27),
		Tmp(3):   u64(8),
		Tmp(4):   u64(35),
		Out():    u64(35),
	}
}

func TestWireLayout(t *testing.T) {
	s, err := NewSystem(cubicGates())
	require.NoError(t, err)

	// one-wire first, then statement terms in first-seen order, then
	// temporaries
	want := []Term{One(), Var("x"), Out(), Tmp(1), Tmp(2), Tmp(3), Tmp(4)}
	if diff := cmp.Diff(want, s.Wires); diff != "" {
		t.Fatalf("unexpected wire layout (-want +got):\n%s", diff)
	}
	require.Equal(t, 3, s.NbStatement)
	require.Equal(t, 5, s.NbConstraints())
	require.Equal(t, 7, s.NbWires())
}

func TestConstraintRows(t *testing.T) {
	s, err := NewSystem(cubicGates())
	require.NoError(t, err)

	// row 2 is (x + 5) * 1 = t3: the literal folds into the coefficient of
	// the one-wire
	l := s.Constraints[2].L
	c0, err := l.Get(0)
	require.NoError(t, err)
	five := u64(5)
	require.True(t, five.Equal(&c0))
	cx, err := l.Get(1)
	require.NoError(t, err)
	require.True(t, cx.IsOne())
}

func TestInstantiateAndValidate(t *testing.T) {
	s, err := NewSystem(cubicGates())
	require.NoError(t, err)

	w, err := s.Instantiate(cubicAssignment())
	require.NoError(t, err)
	require.NoError(t, s.Validate(w))

	// the one-wire is pinned
	one, err := w.Get(0)
	require.NoError(t, err)
	require.True(t, one.IsOne())
}

func TestInstantiateMissingTerm(t *testing.T) {
	s, err := NewSystem(cubicGates())
	require.NoError(t, err)

	assignment := cubicAssignment()
	delete(assignment, Tmp(2))

	_, err = s.Instantiate(assignment)
	require.ErrorIs(t, err, ErrInputNotSet)
	require.ErrorContains(t, err, "tmp_2")
}

func TestValidateInconsistentWitness(t *testing.T) {
	s, err := NewSystem(cubicGates())
	require.NoError(t, err)

	assignment := cubicAssignment()
	assignment[Tmp(1)] = u64(10) // x*x != 10
	w, err := s.Instantiate(assignment)
	require.NoError(t, err)

	require.ErrorIs(t, s.Validate(w), ErrUnsatisfiedConstraint)
}

func TestValidateSizeMismatch(t *testing.T) {
	s, err := NewSystem(cubicGates())
	require.NoError(t, err)

	require.Error(t, s.Validate(NewSparseVector(3)))
}

func TestStatement(t *testing.T) {
	s, err := NewSystem(cubicGates())
	require.NoError(t, err)
	w, err := s.Instantiate(cubicAssignment())
	require.NoError(t, err)

	statement, err := s.Statement(w)
	require.NoError(t, err)
	require.Len(t, statement, s.NbStatement)
	require.True(t, statement[0].IsOne())
	x := u64(3)
	require.True(t, x.Equal(&statement[1]))
	out := u64(35)
	require.True(t, out.Equal(&statement[2]))

	// building the statement from named public inputs must agree
	fromInputs, err := s.StatementFromInputs(map[string]fr.Element{
		"x":   u64(3),
		"out": u64(35),
	})
	require.NoError(t, err)
	if diff := cmp.Diff(statement, fromInputs); diff != "" {
		t.Fatalf("statement mismatch (-witness +inputs):\n%s", diff)
	}
}

func TestStatementFromInputsMissing(t *testing.T) {
	s, err := NewSystem(cubicGates())
	require.NoError(t, err)

	_, err = s.StatementFromInputs(map[string]fr.Element{"x": u64(3)})
	require.ErrorIs(t, err, ErrInputNotSet)
	require.ErrorContains(t, err, "out")
}
