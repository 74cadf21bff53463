package runtime

import "github.com/aretw0/tally/internal/eval"

// Accumulator owns the in-progress input text. It is the only persistent
// state of the expression side of the engine: created empty, grown by
// Append, reset by Clear, never shrunk otherwise.
type Accumulator struct {
	buffer string
}

// Append concatenates token to the buffer. It performs no validation and
// never fails; grammar rejection happens at evaluation time, not here.
func (a *Accumulator) Append(token string) {
	a.buffer += token
}

// Clear resets the buffer to empty.
func (a *Accumulator) Clear() {
	a.buffer = ""
}

// String returns the buffer verbatim.
func (a *Accumulator) String() string {
	return a.buffer
}

// Evaluate parses the buffer as an arithmetic expression. The buffer is
// left untouched regardless of outcome, so the user can keep composing
// after an error.
func (a *Accumulator) Evaluate() (float64, error) {
	return eval.Evaluate(a.buffer)
}
