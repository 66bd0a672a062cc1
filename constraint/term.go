package constraint

import (
	"strconv"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// TermKind discriminates the values flowing through the gate compiler.
type TermKind uint8

const (
	KindInvalid TermKind = iota
	KindOne               // the constant wire, always valued 1
	KindNum               // an inline field constant
	KindVar               // a named user variable
	KindTmp               // a compiler-introduced temporary
	KindOut               // the designated equation output
)

// Term is one value slot of a gate. Terms are comparable; two terms are the
// same wire iff they are structurally equal, which makes Term usable as a
// map key for witness assignments.
type Term struct {
	Kind TermKind
	Name string     // set for KindVar
	ID   uint32     // set for KindTmp
	Val  fr.Element // set for KindNum
}

// One returns the constant-one term.
func One() Term { return Term{Kind: KindOne} }

// Out returns the designated output term.
func Out() Term { return Term{Kind: KindOut} }

// Var returns the term for the named user variable.
func Var(name string) Term { return Term{Kind: KindVar, Name: name} }

// Tmp returns the term for the id-th compiler temporary.
func Tmp(id uint32) Term { return Term{Kind: KindTmp, ID: id} }

// Num returns a constant term.
func Num(v fr.Element) Term { return Term{Kind: KindNum, Val: v} }

// isWire reports whether the term occupies its own witness-vector slot.
// Constants (KindNum) fold into the coefficient of the one-wire instead.
func (t Term) isWire() bool {
	return t.Kind == KindOne || t.Kind == KindVar || t.Kind == KindTmp || t.Kind == KindOut
}

// isStatement reports whether the term belongs to the public statement
// prefix of the witness vector. Temporaries are the only private wires.
func (t Term) isStatement() bool {
	return t.Kind == KindOne || t.Kind == KindVar || t.Kind == KindOut
}

func (t Term) String() string {
	switch t.Kind {
	case KindOne:
		return "1"
	case KindNum:
		return t.Val.String()
	case KindVar:
		return t.Name
	case KindTmp:
		return "tmp_" + strconv.FormatUint(uint64(t.ID), 10)
	case KindOut:
		return "out"
	default:
		return "<invalid>"
	}
}
