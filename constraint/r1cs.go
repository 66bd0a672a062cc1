package constraint

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/tinygroth16/logger"
)

// R1C is one rank-1 constraint row triple: L.w * R.w = O.w.
type R1C struct {
	L, R, O *SparseVector
}

// System is the compiled template of a circuit: the witness-vector layout
// and one constraint row per gate. It is immutable once built; concrete
// witness vectors are produced from it with Instantiate or Solve.
//
// The witness vector is indexed as
//
//	[0]                      the constant one-wire
//	[1 .. NbStatement-1]     named variables and the output (public statement)
//	[NbStatement .. m]       compiler temporaries (private witness)
type System struct {
	Gates       []Gate
	Wires       []Term // index -> wire; Wires[0] is the one-wire
	NbStatement int    // statement wires are Wires[:NbStatement]
	Constraints []R1C
}

// NewSystem assigns every distinct wire term of the gate list a fixed
// witness-vector index and converts each gate into a constraint row triple.
func NewSystem(gates []Gate) (*System, error) {
	s := &System{Gates: gates}

	// wire indexing: one-wire first, then statement terms and temporaries in
	// first-seen order. Temporaries form the suffix.
	index := map[Term]int{One(): 0}
	var statement, tmps []Term
	scan := func(op Operand) error {
		for _, t := range op {
			if !t.isWire() {
				if t.Kind != KindNum {
					return fmt.Errorf("invalid term %q in gate", t.String())
				}
				continue
			}
			if _, ok := index[t]; ok {
				continue
			}
			index[t] = -1 // reserved, numbered below
			if t.isStatement() {
				statement = append(statement, t)
			} else {
				tmps = append(tmps, t)
			}
		}
		return nil
	}
	for _, g := range gates {
		for _, op := range []Operand{g.L, g.R, g.O} {
			if err := scan(op); err != nil {
				return nil, err
			}
		}
	}

	s.Wires = make([]Term, 0, 1+len(statement)+len(tmps))
	s.Wires = append(s.Wires, One())
	s.Wires = append(s.Wires, statement...)
	s.Wires = append(s.Wires, tmps...)
	s.NbStatement = 1 + len(statement)
	for i, t := range s.Wires {
		index[t] = i
	}

	// one row triple per gate
	one := fr.One()
	row := func(op Operand) *SparseVector {
		v := NewSparseVector(len(s.Wires))
		for _, t := range op {
			if t.Kind == KindNum {
				v.accumulate(0, t.Val)
				continue
			}
			v.accumulate(index[t], one)
		}
		return v
	}
	s.Constraints = make([]R1C, len(gates))
	for i, g := range gates {
		s.Constraints[i] = R1C{L: row(g.L), R: row(g.R), O: row(g.O)}
	}

	log := logger.Logger()
	log.Debug().Int("constraints", len(s.Constraints)).Int("wires", len(s.Wires)).
		Int("statement", s.NbStatement).Msg("built R1CS template")

	return s, nil
}

// NbConstraints returns the number of constraint rows.
func (s *System) NbConstraints() int { return len(s.Constraints) }

// NbWires returns the witness-vector length m+1.
func (s *System) NbWires() int { return len(s.Wires) }

// Instantiate materializes the concrete witness vector from a term->value
// assignment. Every wire except the one-wire must be present.
func (s *System) Instantiate(assignment map[Term]fr.Element) (*SparseVector, error) {
	w := NewSparseVector(len(s.Wires))
	if err := w.Set(0, fr.One()); err != nil {
		return nil, err
	}
	for i := 1; i < len(s.Wires); i++ {
		v, ok := assignment[s.Wires[i]]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInputNotSet, s.Wires[i].String())
		}
		if err := w.Set(i, v); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Validate checks L.w * R.w == O.w for every constraint row. It reports the
// three dot products of the first failing row. This is the cheap sanity
// check to run before generating an (expensive, silently unverifiable)
// proof from an inconsistent witness.
func (s *System) Validate(w *SparseVector) error {
	if w.Size() != len(s.Wires) {
		return fmt.Errorf("witness size %d, expected %d", w.Size(), len(s.Wires))
	}
	var lr fr.Element
	for i, c := range s.Constraints {
		l := c.L.Dot(w)
		r := c.R.Dot(w)
		o := c.O.Dot(w)
		lr.Mul(&l, &r)
		if !lr.Equal(&o) {
			return fmt.Errorf("%w: row %d: a=%s b=%s c=%s",
				ErrUnsatisfiedConstraint, i, l.String(), r.String(), o.String())
		}
	}
	return nil
}

// StatementFromInputs builds the public statement vector from name-keyed
// assignments, without solving for the private temporaries. The output wire
// is keyed "out". This is what a verifier uses, since it never holds a full
// witness.
func (s *System) StatementFromInputs(inputs map[string]fr.Element) ([]fr.Element, error) {
	res := make([]fr.Element, s.NbStatement)
	for i, t := range s.Wires[:s.NbStatement] {
		switch t.Kind {
		case KindOne:
			res[i].SetOne()
		case KindVar, KindOut:
			v, ok := inputs[t.String()]
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrInputNotSet, t.String())
			}
			res[i] = v
		default:
			return nil, fmt.Errorf("non-statement wire %s at index %d", t.String(), i)
		}
	}
	return res, nil
}

// Statement extracts the public prefix of a witness vector, the only part a
// verifier sees.
func (s *System) Statement(w *SparseVector) ([]fr.Element, error) {
	if w.Size() != len(s.Wires) {
		return nil, fmt.Errorf("witness size %d, expected %d", w.Size(), len(s.Wires))
	}
	res := make([]fr.Element, s.NbStatement)
	for i := range res {
		v, err := w.Get(i)
		if err != nil {
			return nil, err
		}
		res[i] = v
	}
	return res, nil
}
