package eval

import (
	"fmt"
	"strconv"
)

// TokenType represents the kind of token.
type TokenType int

const (
	// EOF terminates every token stream.
	EOF TokenType = iota

	NUMBER

	LPAREN // "("
	RPAREN // ")"

	PLUS    // "+"
	MINUS   // "-"
	STAR    // "*"
	SLASH   // "/"
	PERCENT // "%"
)

// Token is a lexical token with its source position (0-based byte offset).
type Token struct {
	Type   TokenType
	Lexeme string
	Value  float64 // parsed literal, set for NUMBER only
	Pos    int
}

// lex scans src into tokens over the closed calculator grammar: decimal
// literals, parentheses, and the five operators. Anything else is rejected
// here, never forwarded to evaluation. The grammar is intentionally closed
// because the buffer is built from uncontrolled external append calls.
func lex(src string) ([]Token, error) {
	var toks []Token
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(':
			toks = append(toks, Token{Type: LPAREN, Lexeme: "(", Pos: i})
			i++
		case c == ')':
			toks = append(toks, Token{Type: RPAREN, Lexeme: ")", Pos: i})
			i++
		case c == '+':
			toks = append(toks, Token{Type: PLUS, Lexeme: "+", Pos: i})
			i++
		case c == '-':
			toks = append(toks, Token{Type: MINUS, Lexeme: "-", Pos: i})
			i++
		case c == '*':
			toks = append(toks, Token{Type: STAR, Lexeme: "*", Pos: i})
			i++
		case c == '/':
			toks = append(toks, Token{Type: SLASH, Lexeme: "/", Pos: i})
			i++
		case c == '%':
			toks = append(toks, Token{Type: PERCENT, Lexeme: "%", Pos: i})
			i++
		case c >= '0' && c <= '9' || c == '.':
			start := i
			for i < len(src) && (src[i] >= '0' && src[i] <= '9' || src[i] == '.') {
				i++
			}
			lexeme := src[start:i]
			v, err := strconv.ParseFloat(lexeme, 64)
			if err != nil {
				return nil, &SyntaxError{Pos: start, Msg: fmt.Sprintf("invalid number %q", lexeme)}
			}
			toks = append(toks, Token{Type: NUMBER, Lexeme: lexeme, Value: v, Pos: start})
		default:
			return nil, &SyntaxError{Pos: i, Msg: fmt.Sprintf("illegal character %q", rune(src[i]))}
		}
	}
	toks = append(toks, Token{Type: EOF, Pos: len(src)})
	return toks, nil
}
