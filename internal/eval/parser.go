package eval

import "math"

// parser is a Pratt-style operator-precedence evaluator. Expressions are
// small and ephemeral, so it folds to a float64 directly instead of building
// an AST.
type parser struct {
	toks []Token
	i    int
}

// lbp returns the left binding power of an infix token.
func lbp(t TokenType) (int, bool) {
	switch t {
	case STAR, SLASH, PERCENT:
		return 70, true
	case PLUS, MINUS:
		return 60, true
	}
	return 0, false
}

// unaryBP binds prefix +/- tighter than any infix operator.
const unaryBP = 80

func (p *parser) peek() Token {
	return p.toks[p.i]
}

func (p *parser) next() Token {
	t := p.toks[p.i]
	if t.Type != EOF {
		p.i++
	}
	return t
}

// expression parses and evaluates while the next operator binds tighter
// than rbp.
func (p *parser) expression(rbp int) (float64, error) {
	left, err := p.prefix()
	if err != nil {
		return 0, err
	}
	for {
		bp, isInfix := lbp(p.peek().Type)
		if !isInfix || bp <= rbp {
			return left, nil
		}
		op := p.next()
		right, err := p.expression(bp)
		if err != nil {
			return 0, err
		}
		left, err = apply(op, left, right)
		if err != nil {
			return 0, err
		}
	}
}

func (p *parser) prefix() (float64, error) {
	t := p.next()
	switch t.Type {
	case NUMBER:
		return t.Value, nil
	case MINUS:
		v, err := p.expression(unaryBP)
		return -v, err
	case PLUS:
		return p.expression(unaryBP)
	case LPAREN:
		v, err := p.expression(0)
		if err != nil {
			return 0, err
		}
		if closing := p.next(); closing.Type != RPAREN {
			return 0, &SyntaxError{Pos: closing.Pos, Msg: "expected ')'"}
		}
		return v, nil
	case EOF:
		return 0, &SyntaxError{Pos: t.Pos, Msg: "unexpected end of expression"}
	default:
		return 0, &SyntaxError{Pos: t.Pos, Msg: "unexpected " + describe(t)}
	}
}

func apply(op Token, a, b float64) (float64, error) {
	switch op.Type {
	case PLUS:
		return a + b, nil
	case MINUS:
		return a - b, nil
	case STAR:
		return a * b, nil
	case SLASH:
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	case PERCENT:
		if b == 0 {
			return 0, ErrModuloByZero
		}
		return math.Mod(a, b), nil
	}
	return 0, &SyntaxError{Pos: op.Pos, Msg: "unexpected " + describe(op)}
}

func describe(t Token) string {
	if t.Type == EOF {
		return "end of expression"
	}
	return "'" + t.Lexeme + "'"
}
