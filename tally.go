package tally

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/tally/internal/runtime"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/registry"
	"github.com/aretw0/tally/pkg/units"
)

// Version is the release version of the tally module.
const Version = "0.1.0"

// Engine is the high-level entry point for the Tally library.
// It wraps the internal runtime and provides the event-level API consumers
// call: one method per keypad event plus layout queries.
type Engine struct {
	core      *runtime.Engine
	registry  *registry.Registry
	logger    *slog.Logger
	unitsFile string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRegistry injects a custom conversion registry, replacing the
// built-in table entirely.
func WithRegistry(r *registry.Registry) Option {
	return func(e *Engine) {
		e.registry = r
	}
}

// WithConversion registers an additional conversion operation on top of
// the built-in table. It appears in Convert-mode layouts after the
// built-ins, in option order.
func WithConversion(name string, fn registry.Conversion) Option {
	return func(e *Engine) {
		e.registry.Register(name, fn)
	}
}

// WithUnitsFile loads extra conversions from a YAML units file at
// construction time. See package units for the file format.
func WithUnitsFile(path string) Option {
	return func(e *Engine) {
		e.unitsFile = path
	}
}

// New initializes a new Tally Engine in Standard mode with an empty
// buffer. By default it carries the fixed built-in conversion table.
func New(opts ...Option) (*Engine, error) {
	eng := &Engine{
		registry: registry.Default(),
	}

	for _, opt := range opts {
		opt(eng)
	}

	if eng.unitsFile != "" {
		conversions, err := units.LoadFile(eng.unitsFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load units file: %w", err)
		}
		for _, c := range conversions {
			eng.registry.Register(c.Name, c.Func())
		}
	}

	eng.core = runtime.NewEngine(eng.registry, eng.logger)
	return eng, nil
}

// SwitchMode replaces the current mode and returns the new layout for the
// renderer. The input buffer is not cleared by a mode switch.
func (e *Engine) SwitchMode(mode domain.Mode) domain.Layout {
	return e.core.SwitchMode(mode)
}

// Mode returns the current operating mode.
func (e *Engine) Mode() domain.Mode {
	return e.core.Mode()
}

// CurrentLayout returns the layout of the current mode. Query only, no
// side effects.
func (e *Engine) CurrentLayout() domain.Layout {
	return e.core.CurrentLayout()
}

// PressClear empties the input buffer and returns the empty display value.
func (e *Engine) PressClear() string {
	return e.core.Clear()
}

// PressToken appends a token to the input buffer and returns the buffer
// verbatim. Any string is accepted; validation happens at equals or
// convert time.
func (e *Engine) PressToken(token string) string {
	return e.core.Append(token)
}

// PressEquals evaluates the buffer as an arithmetic expression. On success
// the result is formatted to three decimal places; on any evaluation
// failure the "Error" sentinel is returned. The buffer is not cleared.
func (e *Engine) PressEquals() string {
	return e.core.Equals()
}

// PressConvert applies the named conversion to the buffer parsed as a bare
// number, formatted to two decimal places. A non-numeric buffer returns
// the "Error" sentinel with a nil error; an unknown operation id returns a
// non-nil error because it signals a bug in the calling host, not a user
// miskey.
func (e *Engine) PressConvert(operation string) (string, error) {
	return e.core.Convert(operation)
}

// Buffer returns the current input buffer verbatim.
func (e *Engine) Buffer() string {
	return e.core.Buffer()
}

// Conversions lists the registered operation ids in layout order.
func (e *Engine) Conversions() []string {
	return e.registry.Names()
}
