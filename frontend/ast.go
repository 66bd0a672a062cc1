// Package frontend parses equation text and compiles it into multiplication
// gates consumable by the constraint package.
//
// The accepted language is a single equation over one or more named
// variables, e.g.
//
//	x**3 + x + 5 == 35
//
// with + - * / ( ) and ** (constant non-negative integer exponents only,
// expanded to repeated multiplication at parse time). The right-hand side
// must evaluate to a constant.
package frontend

import (
	"errors"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// ErrInvalidEquation wraps all user-facing parse errors.
var ErrInvalidEquation = errors.New("invalid equation")

// Op is a binary arithmetic operator.
type Op uint8

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
)

func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	default:
		return "?"
	}
}

// Expr is a node of the parsed expression tree.
type Expr interface {
	isExpr()
}

// Lit is an integer literal, reduced into the field.
type Lit struct {
	Val fr.Element
}

// Ident is a named variable.
type Ident struct {
	Name string
}

// BinExpr applies Op to two subtrees.
type BinExpr struct {
	Op   Op
	L, R Expr
}

func (Lit) isExpr()     {}
func (Ident) isExpr()   {}
func (BinExpr) isExpr() {}

// Equation is a parsed input: an expression tree constrained to equal a
// constant.
type Equation struct {
	Lhs Expr
	Rhs fr.Element
}
