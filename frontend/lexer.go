package frontend

import (
	"fmt"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokInt
	tokIdent
	tokPlus
	tokMinus
	tokStar
	tokStarStar
	tokSlash
	tokLParen
	tokRParen
	tokEqEq
)

type token struct {
	kind tokenKind
	lit  string // tokInt, tokIdent
	pos  int
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokInt, tokIdent:
		return fmt.Sprintf("%q", t.lit)
	case tokPlus:
		return `"+"`
	case tokMinus:
		return `"-"`
	case tokStar:
		return `"*"`
	case tokStarStar:
		return `"**"`
	case tokSlash:
		return `"/"`
	case tokLParen:
		return `"("`
	case tokRParen:
		return `")"`
	case tokEqEq:
		return `"=="`
	default:
		return "<invalid token>"
	}
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c byte) bool { return isIdentStart(c) || isDigit(c) }

// tokenize splits src into tokens, terminated by a tokEOF entry.
func tokenize(src string) ([]token, error) {
	var toks []token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case isDigit(c):
			start := i
			for i < len(src) && isDigit(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokInt, lit: src[start:i], pos: start})
		case isIdentStart(c):
			start := i
			for i < len(src) && isIdentPart(src[i]) {
				i++
			}
			toks = append(toks, token{kind: tokIdent, lit: src[start:i], pos: start})
		case c == '+':
			toks = append(toks, token{kind: tokPlus, pos: i})
			i++
		case c == '-':
			toks = append(toks, token{kind: tokMinus, pos: i})
			i++
		case c == '*':
			if i+1 < len(src) && src[i+1] == '*' {
				toks = append(toks, token{kind: tokStarStar, pos: i})
				i += 2
			} else {
				toks = append(toks, token{kind: tokStar, pos: i})
				i++
			}
		case c == '/':
			toks = append(toks, token{kind: tokSlash, pos: i})
			i++
		case c == '(':
			toks = append(toks, token{kind: tokLParen, pos: i})
			i++
		case c == ')':
			toks = append(toks, token{kind: tokRParen, pos: i})
			i++
		case c == '=':
			if i+1 < len(src) && src[i+1] == '=' {
				toks = append(toks, token{kind: tokEqEq, pos: i})
				i += 2
			} else {
				return nil, fmt.Errorf("%w: single %q at position %d, did you mean %q", ErrInvalidEquation, "=", i, "==")
			}
		default:
			return nil, fmt.Errorf("%w: unexpected character %q at position %d", ErrInvalidEquation, string(c), i)
		}
	}
	return append(toks, token{kind: tokEOF, pos: len(src)}), nil
}
