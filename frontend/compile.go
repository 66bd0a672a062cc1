package frontend

import (
	"github.com/consensys/tinygroth16/constraint"
	"github.com/consensys/tinygroth16/logger"
)

// Compile parses equation text and builds the constraint system template.
func Compile(src string) (*constraint.System, error) {
	eq, err := Parse(src)
	if err != nil {
		return nil, err
	}
	gates := CompileEquation(eq)

	log := logger.Logger()
	log.Debug().Str("equation", src).Int("gates", len(gates)).Msg("compiled equation")

	return constraint.NewSystem(gates)
}

// CompileEquation rewrites the left-hand expression tree into a flat list of
// multiplication gates, one fresh temporary per internal node, and a final
// gate binding the result to the output wire. An equation whose lhs holds k
// binary operators compiles to exactly k+1 gates.
func CompileEquation(eq *Equation) []constraint.Gate {
	c := &compiler{}
	res := c.reduce(eq.Lhs)
	c.emit(constraint.Gate{
		L: constraint.Single(res),
		R: constraint.Single(constraint.One()),
		O: constraint.Single(constraint.Out()),
	})
	return c.gates
}

type compiler struct {
	gates []constraint.Gate
	nbTmp uint32
}

func (c *compiler) emit(g constraint.Gate) {
	c.gates = append(c.gates, g)
}

func (c *compiler) fresh() constraint.Term {
	c.nbTmp++
	return constraint.Tmp(c.nbTmp)
}

// reduce rewrites an expression into a single term, emitting one gate per
// internal node:
//
//	a+b   ->  (a + b) * 1 = t
//	a*b   ->  a * b = t
//	a-b   ->  (b + t) * 1 = a    (t stands for a-b)
//	a/b   ->  b * t = a          (t stands for a/b)
func (c *compiler) reduce(e Expr) constraint.Term {
	switch n := e.(type) {
	case Lit:
		return constraint.Num(n.Val)
	case Ident:
		return constraint.Var(n.Name)
	case BinExpr:
		a := c.reduce(n.L)
		b := c.reduce(n.R)
		t := c.fresh()
		switch n.Op {
		case OpAdd:
			c.emit(constraint.Gate{
				L: constraint.Sum(a, b),
				R: constraint.Single(constraint.One()),
				O: constraint.Single(t),
			})
		case OpMul:
			c.emit(constraint.Gate{
				L: constraint.Single(a),
				R: constraint.Single(b),
				O: constraint.Single(t),
			})
		case OpSub:
			c.emit(constraint.Gate{
				L: constraint.Sum(b, t),
				R: constraint.Single(constraint.One()),
				O: constraint.Single(a),
			})
		case OpDiv:
			c.emit(constraint.Gate{
				L: constraint.Single(b),
				R: constraint.Single(t),
				O: constraint.Single(a),
			})
		}
		return t
	default:
		// an Expr this switch does not know cannot come out of Parse
		panic("unexpected expression node in compiler")
	}
}
