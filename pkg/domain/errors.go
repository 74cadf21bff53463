package domain

import "errors"

// ErrUnknownOperation is returned when a conversion is requested for an
// operation id that was never registered. It indicates a caller bug (the id
// must come from the current layout), not a user miskey, and is therefore
// never collapsed into the Error display sentinel.
var ErrUnknownOperation = errors.New("unknown conversion operation")

// ErrEmptyExpression is returned when evaluation is requested on an empty
// input buffer.
var ErrEmptyExpression = errors.New("empty expression")

// DisplayError is the fixed sentinel shown in place of a numeric result when
// an expression or conversion input is invalid. The user corrects the input
// and retries; nothing else is reset.
const DisplayError = "Error"
