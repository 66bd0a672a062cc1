package constraint

import "strings"

// Operand is one slot of a gate: a single term, or the formal sum of two
// terms produced by the Add/Sub rewrite. The compiler never nests sums, so
// an operand holds at most two terms.
type Operand []Term

// Sum returns the formal sum a+b as an operand.
func Sum(a, b Term) Operand { return Operand{a, b} }

// Single wraps a lone term as an operand.
func Single(t Term) Operand { return Operand{t} }

func (op Operand) String() string {
	parts := make([]string, len(op))
	for i, t := range op {
		parts[i] = t.String()
	}
	return strings.Join(parts, " + ")
}

// Gate is a single multiplication constraint eval(L) * eval(R) = eval(O).
// Gates are produced by the frontend compiler only.
type Gate struct {
	L, R, O Operand
}

func (g Gate) String() string {
	return "(" + g.L.String() + ") * (" + g.R.String() + ") = " + g.O.String()
}
