// Package units loads user-defined conversion operations from a
// configuration file.
//
// The built-in conversion table is fixed in code; a units file lets a
// deployment add linear conversions without recompiling:
//
//	conversions:
//	  - name: "Kg to Lb"
//	    factor: 2.20462
//	  - name: "Lb to Kg"
//	    divisor: 2.20462
//	  - name: "K to C"
//	    offset: -273.15
//
// Each entry computes value*factor/divisor + offset; factor and divisor
// default to 1, offset to 0.
package units

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/tally/pkg/registry"
	"gopkg.in/yaml.v3"
)

// Conversion is a single declarative conversion entry.
type Conversion struct {
	Name    string   `yaml:"name" json:"name"`
	Factor  *float64 `yaml:"factor,omitempty" json:"factor,omitempty"`
	Divisor *float64 `yaml:"divisor,omitempty" json:"divisor,omitempty"`
	Offset  float64  `yaml:"offset,omitempty" json:"offset,omitempty"`
}

// ConfigFile represents the structure of units.yaml.
type ConfigFile struct {
	Conversions []Conversion `yaml:"conversions" json:"conversions"`
}

// Func builds the pure transform for this entry.
func (c Conversion) Func() registry.Conversion {
	factor, divisor, offset := 1.0, 1.0, c.Offset
	if c.Factor != nil {
		factor = *c.Factor
	}
	if c.Divisor != nil {
		divisor = *c.Divisor
	}
	return func(v float64) float64 {
		return v*factor/divisor + offset
	}
}

// LoadFile reads a units file (YAML, or JSON by extension), validates it,
// and returns its conversions in file order.
func LoadFile(path string) ([]Conversion, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read units file: %w", err)
	}

	var cfg ConfigFile
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse units file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse units file: %w", err)
		}
	}

	if err := Validate(cfg.Conversions); err != nil {
		return nil, err
	}
	return cfg.Conversions, nil
}

// Validate checks a conversion list for entries the registry would accept
// silently but that are almost certainly configuration mistakes.
func Validate(conversions []Conversion) error {
	seen := make(map[string]bool)
	for i, c := range conversions {
		if strings.TrimSpace(c.Name) == "" {
			return fmt.Errorf("conversion %d: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("conversion %d: duplicate name %q", i, c.Name)
		}
		seen[c.Name] = true

		if c.Divisor != nil && *c.Divisor == 0 {
			return fmt.Errorf("conversion %q: divisor must be nonzero", c.Name)
		}
	}
	return nil
}
