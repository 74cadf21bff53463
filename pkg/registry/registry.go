package registry

import (
	"fmt"

	"github.com/aretw0/tally/pkg/domain"
)

// Conversion is a pure numeric transform applied by a conversion operation.
// All built-in conversions are total over float64.
type Conversion func(value float64) float64

// Registry manages the available conversion operations. It is populated at
// construction time and read-only afterwards; the engine owns exactly one
// instance per session and serializes access, so no locking is needed.
type Registry struct {
	order       []string
	conversions map[string]Conversion
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		conversions: make(map[string]Conversion),
	}
}

// Default returns a registry holding the fixed conversion table.
//
// The constants are load-bearing: "Cm to In" multiplies by 0.3937 rather
// than dividing by 2.54, so the pair is only approximately inverse.
func Default() *Registry {
	r := NewRegistry()
	r.Register("Mi to Km", func(v float64) float64 { return v * 1.60934 })
	r.Register("Km to Mi", func(v float64) float64 { return v / 1.60934 })
	r.Register("C to F", func(v float64) float64 { return v*9/5 + 32 })
	r.Register("F to C", func(v float64) float64 { return (v - 32) * 5 / 9 })
	r.Register("In to Cm", func(v float64) float64 { return v * 2.54 })
	r.Register("Cm to In", func(v float64) float64 { return v * 0.3937 })
	r.Register("Min to Sec", func(v float64) float64 { return v * 60 })
	r.Register("Sec to Min", func(v float64) float64 { return v / 60 })
	return r
}

// Register adds a conversion to the registry.
// If an operation with the same name exists, it is overwritten in place and
// keeps its original position in Names.
func (r *Registry) Register(name string, fn Conversion) {
	if _, exists := r.conversions[name]; !exists {
		r.order = append(r.order, name)
	}
	r.conversions[name] = fn
}

// Convert looks up an operation by name and applies it to value.
// Returns domain.ErrUnknownOperation if the name was never registered.
func (r *Registry) Convert(name string, value float64) (float64, error) {
	fn, ok := r.conversions[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", domain.ErrUnknownOperation, name)
	}
	return fn(value), nil
}

// Names returns the operation ids in registration order. The order is
// stable and drives the slot assignment in Convert-mode layouts.
func (r *Registry) Names() []string {
	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
