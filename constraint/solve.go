package constraint

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Solve computes the full witness vector from named variable values only.
// Gates are walked in emission order; each gate determines exactly one new
// wire (its fresh temporary, or the output on the final gate), so one pass
// suffices.
func (s *System) Solve(inputs map[string]fr.Element) (*SparseVector, error) {
	// reject assignments naming variables the circuit does not have
	names := make(map[string]struct{})
	for _, t := range s.Wires {
		if t.Kind == KindVar {
			names[t.Name] = struct{}{}
		}
	}
	for name := range inputs {
		if _, ok := names[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownVariable, name)
		}
	}

	values := map[Term]fr.Element{One(): fr.One()}
	for name := range names {
		v, ok := inputs[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInputNotSet, name)
		}
		values[Var(name)] = v
	}

	for _, g := range s.Gates {
		if err := solveGate(g, values); err != nil {
			return nil, err
		}
	}
	return s.Instantiate(values)
}

// solveGate isolates the single unknown wire of a gate and computes it from
// the known ones. Compiler-produced gates place the unknown either in the
// output slot, in the left sum (subtraction rewrite) or in the right slot
// (division rewrite).
func solveGate(g Gate, values map[Term]fr.Element) error {
	known := func(t Term) (fr.Element, bool) {
		if t.Kind == KindNum {
			return t.Val, true
		}
		v, ok := values[t]
		return v, ok
	}
	eval := func(op Operand) (fr.Element, bool) {
		var sum fr.Element
		for _, t := range op {
			v, ok := known(t)
			if !ok {
				return fr.Element{}, false
			}
			sum.Add(&sum, &v)
		}
		return sum, true
	}
	unknowns := func(op Operand) []Term {
		var res []Term
		for _, t := range op {
			if _, ok := known(t); !ok {
				res = append(res, t)
			}
		}
		return res
	}

	uL, uR, uO := unknowns(g.L), unknowns(g.R), unknowns(g.O)
	switch total := len(uL) + len(uR) + len(uO); {
	case total == 0:
		return nil

	case total == 1 && len(uO) == 1 && len(g.O) == 1:
		// o = l*r
		l, _ := eval(g.L)
		r, _ := eval(g.R)
		var o fr.Element
		o.Mul(&l, &r)
		values[uO[0]] = o
		return nil

	case total == 1 && len(uR) == 1 && len(g.R) == 1:
		// division rewrite: l * unknown = o
		l, _ := eval(g.L)
		if l.IsZero() {
			return fmt.Errorf("%w: %s: division by zero", ErrUnsolvable, g.String())
		}
		o, _ := eval(g.O)
		var v fr.Element
		v.Div(&o, &l)
		values[uR[0]] = v
		return nil

	case total == 1 && len(uL) == 1:
		// subtraction rewrite: (known + unknown) * r = o
		r, _ := eval(g.R)
		if r.IsZero() {
			return fmt.Errorf("%w: %s: division by zero", ErrUnsolvable, g.String())
		}
		o, _ := eval(g.O)
		var v fr.Element
		v.Div(&o, &r)
		for _, t := range g.L {
			if w, ok := known(t); ok {
				v.Sub(&v, &w)
			}
		}
		values[uL[0]] = v
		return nil

	default:
		return fmt.Errorf("%w: %s: %d unknown wires", ErrUnsolvable, g.String(), total)
	}
}
