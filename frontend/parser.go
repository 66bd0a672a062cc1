package frontend

import (
	"fmt"
	"strconv"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

type parser struct {
	toks []token
	cur  int
}

// Parse turns equation text into its expression tree. The right-hand side
// must fold to a constant; it is evaluated here.
func Parse(src string) (*Equation, error) {
	toks, err := tokenize(src)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}

	lhs, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokEqEq); err != nil {
		return nil, err
	}
	rhsExpr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(tokEOF); err != nil {
		return nil, err
	}

	rhs, err := foldConst(rhsExpr)
	if err != nil {
		return nil, err
	}
	return &Equation{Lhs: lhs, Rhs: rhs}, nil
}

func (p *parser) peek() token { return p.toks[p.cur] }

func (p *parser) next() token {
	t := p.toks[p.cur]
	if t.kind != tokEOF {
		p.cur++
	}
	return t
}

func (p *parser) expect(kind tokenKind) (token, error) {
	t := p.peek()
	if t.kind != kind {
		return t, fmt.Errorf("%w: unexpected %s at position %d", ErrInvalidEquation, t.String(), t.pos)
	}
	return p.next(), nil
}

// expr := term (("+"|"-") expr)?
func (p *parser) parseExpr() (Expr, error) {
	l, err := p.parseTerm()
	if err != nil {
		return nil, err
	}
	switch p.peek().kind {
	case tokPlus:
		p.next()
		r, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return BinExpr{Op: OpAdd, L: l, R: r}, nil
	case tokMinus:
		p.next()
		r, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		return BinExpr{Op: OpSub, L: l, R: r}, nil
	}
	return l, nil
}

// term := factor (("*"|"/") term)?
func (p *parser) parseTerm() (Expr, error) {
	l, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	switch p.peek().kind {
	case tokStar:
		p.next()
		r, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return BinExpr{Op: OpMul, L: l, R: r}, nil
	case tokSlash:
		p.next()
		r, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		return BinExpr{Op: OpDiv, L: l, R: r}, nil
	}
	return l, nil
}

// factor := primary ("**" INT)?
// Exponentiation is sugar: the exponent must be a literal, and the factor is
// expanded into repeated multiplication.
func (p *parser) parseFactor() (Expr, error) {
	base, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tokStarStar {
		return base, nil
	}
	p.next()
	t, err := p.expect(tokInt)
	if err != nil {
		return nil, fmt.Errorf("%w: exponent must be an integer literal", err)
	}
	k, err := strconv.ParseUint(t.lit, 10, 16)
	if err != nil {
		return nil, fmt.Errorf("%w: exponent %q out of range", ErrInvalidEquation, t.lit)
	}
	if k == 0 {
		return Lit{Val: fr.One()}, nil
	}
	res := base
	for i := uint64(1); i < k; i++ {
		res = BinExpr{Op: OpMul, L: res, R: base}
	}
	return res, nil
}

// primary := INT | IDENT | "(" expr ")"
func (p *parser) parsePrimary() (Expr, error) {
	switch t := p.peek(); t.kind {
	case tokInt:
		p.next()
		var v fr.Element
		if _, err := v.SetString(t.lit); err != nil {
			return nil, fmt.Errorf("%w: invalid number %q: %s", ErrInvalidEquation, t.lit, err.Error())
		}
		return Lit{Val: v}, nil
	case tokIdent:
		p.next()
		return Ident{Name: t.lit}, nil
	case tokLParen:
		p.next()
		e, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, fmt.Errorf("%w: unexpected %s at position %d", ErrInvalidEquation, t.String(), t.pos)
	}
}

// foldConst evaluates a constant expression; variables are rejected.
func foldConst(e Expr) (fr.Element, error) {
	switch n := e.(type) {
	case Lit:
		return n.Val, nil
	case Ident:
		return fr.Element{}, fmt.Errorf("%w: right-hand side must be constant, found variable %q", ErrInvalidEquation, n.Name)
	case BinExpr:
		l, err := foldConst(n.L)
		if err != nil {
			return fr.Element{}, err
		}
		r, err := foldConst(n.R)
		if err != nil {
			return fr.Element{}, err
		}
		var res fr.Element
		switch n.Op {
		case OpAdd:
			res.Add(&l, &r)
		case OpSub:
			res.Sub(&l, &r)
		case OpMul:
			res.Mul(&l, &r)
		case OpDiv:
			if r.IsZero() {
				return fr.Element{}, fmt.Errorf("%w: division by zero in constant expression", ErrInvalidEquation)
			}
			res.Div(&l, &r)
		}
		return res, nil
	default:
		panic("unexpected expression node")
	}
}
