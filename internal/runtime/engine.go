package runtime

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/tally/internal/logging"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/registry"
)

// Display precision differs between the two result paths: equals shows
// three decimals, conversions two. Both are fixed presentation choices of
// the engine; the underlying arithmetic is never rounded.
const (
	equalsPrecision  = 3
	convertPrecision = 2
)

// Engine is the core calculator state machine. It owns one Accumulator,
// one conversion Registry and the current Mode, and translates discrete
// external events into display values.
//
// The engine is single-session and provides no internal synchronization;
// a multi-threaded host must serialize access.
type Engine struct {
	acc      Accumulator
	registry *registry.Registry
	mode     domain.Mode
	logger   *slog.Logger
}

// NewEngine creates an engine in Standard mode with an empty buffer.
// A nil logger is replaced with a no-op logger.
func NewEngine(reg *registry.Registry, logger *slog.Logger) *Engine {
	if reg == nil {
		reg = registry.Default()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		registry: reg,
		mode:     domain.ModeStandard,
		logger:   logger,
	}
}

// Registry exposes the engine's conversion table.
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Mode returns the current operating mode.
func (e *Engine) Mode() domain.Mode {
	return e.mode
}

// Buffer returns the accumulator content verbatim.
func (e *Engine) Buffer() string {
	return e.acc.String()
}

// SwitchMode replaces the current mode wholesale and returns the new
// layout. The accumulator is deliberately untouched: whatever the user was
// typing survives the switch.
func (e *Engine) SwitchMode(m domain.Mode) domain.Layout {
	e.mode = m
	e.logger.Debug("mode switched", "mode", m)
	return e.CurrentLayout()
}

// CurrentLayout produces the layout for the current mode. Pure query.
func (e *Engine) CurrentLayout() domain.Layout {
	return e.mode.Layout(e.registry.Names())
}

// Clear resets the accumulator and returns the empty display value.
func (e *Engine) Clear() string {
	e.acc.Clear()
	return ""
}

// Append concatenates token to the accumulator and echoes the buffer back
// unformatted. It accepts any string; invalid input surfaces later, at
// equals or convert time.
func (e *Engine) Append(token string) string {
	e.acc.Append(token)
	return e.acc.String()
}

// Equals evaluates the buffer and returns the result formatted to three
// decimal places, or the Error sentinel on any evaluation failure. The
// buffer is kept either way.
func (e *Engine) Equals() string {
	v, err := e.acc.Evaluate()
	if err != nil {
		e.logger.Debug("evaluation failed", "buffer", e.acc.String(), "error", err)
		return domain.DisplayError
	}
	return formatResult(v, equalsPrecision)
}

// Convert parses the buffer as a bare number and applies the named
// operation, returning the result formatted to two decimal places.
//
// A non-numeric buffer is a user error and yields the Error sentinel with
// a nil error. An unknown operation id is a caller bug (ids must come from
// the current layout), so it is logged and returned as a non-nil error
// rather than masked as an ordinary miskey.
func (e *Engine) Convert(operation string) (string, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(e.acc.String()), 64)
	if err != nil {
		e.logger.Debug("conversion input is not a number", "buffer", e.acc.String())
		return domain.DisplayError, nil
	}

	result, err := e.registry.Convert(operation, v)
	if err != nil {
		e.logger.Error("conversion contract violation", "operation", operation, "error", err)
		return "", err
	}
	return formatResult(result, convertPrecision), nil
}

func formatResult(v float64, precision int) string {
	return fmt.Sprintf("%.*f", precision, v)
}
