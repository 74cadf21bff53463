// Package eval implements the calculator's arithmetic evaluator.
//
// The grammar is fixed to the characters reachable from the keypad: decimal
// literals, "(", ")", "+", "-", "*", "/" and "%", with standard operator
// precedence and double-precision semantics. Tokens outside that closed set
// fail evaluation; nothing is ever delegated to a general-purpose
// interpreter.
package eval

import (
	"errors"
	"fmt"

	"github.com/aretw0/tally/pkg/domain"
)

// ErrDivideByZero is the runtime arithmetic fault for x/0.
var ErrDivideByZero = errors.New("division by zero")

// ErrModuloByZero is the runtime arithmetic fault for x%0.
var ErrModuloByZero = errors.New("modulo by zero")

// SyntaxError reports malformed input at a byte offset.
type SyntaxError struct {
	Pos int
	Msg string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Pos, e.Msg)
}

// Evaluate parses src as an arithmetic expression and returns its value.
// It fails on empty input, on any token outside the closed grammar, on
// malformed syntax, and on division or modulo by zero. It has no side
// effects: the caller's buffer is left untouched so the user can keep
// composing after an error.
func Evaluate(src string) (float64, error) {
	toks, err := lex(src)
	if err != nil {
		return 0, err
	}
	if len(toks) == 1 { // EOF only
		return 0, domain.ErrEmptyExpression
	}

	p := &parser{toks: toks}
	v, err := p.expression(0)
	if err != nil {
		return 0, err
	}
	if trailing := p.peek(); trailing.Type != EOF {
		return 0, &SyntaxError{Pos: trailing.Pos, Msg: "unexpected " + describe(trailing)}
	}
	return v, nil
}
