package runtime

import (
	"errors"
	"testing"

	"github.com/aretw0/tally/pkg/domain"
	"github.com/aretw0/tally/pkg/registry"
)

func newTestEngine() *Engine {
	return NewEngine(registry.Default(), nil)
}

func TestEngine_Equals(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   string
	}{
		{"Simple", []string{"2", "+", "2"}, "4.000"},
		{"Precedence", []string{"2", "+", "3", "*", "4"}, "14.000"},
		{"Decimal", []string{"1", "0", "/", "4"}, "2.500"},
		{"DivideByZero", []string{"5", "/", "0"}, "Error"},
		{"ModuloByZero", []string{"5", "%", "0"}, "Error"},
		{"Unparseable", []string{"2", "+", "+"}, "Error"},
		{"Empty", nil, "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			for _, tok := range tt.tokens {
				e.Append(tok)
			}
			if got := e.Equals(); got != tt.want {
				t.Errorf("Equals() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEngine_EqualsKeepsBuffer(t *testing.T) {
	e := newTestEngine()
	e.Append("2+2")

	if got := e.Equals(); got != "4.000" {
		t.Fatalf("Equals() = %q", got)
	}

	// The buffer survives: the user may keep composing.
	if got := e.Append("+1"); got != "2+2+1" {
		t.Errorf("buffer after equals = %q, want %q", got, "2+2+1")
	}
	if got := e.Equals(); got != "5.000" {
		t.Errorf("Equals() = %q, want %q", got, "5.000")
	}
}

func TestEngine_ClearThenEquals(t *testing.T) {
	e := newTestEngine()
	e.Append("123")

	if got := e.Clear(); got != "" {
		t.Errorf("Clear() = %q, want empty", got)
	}
	if got := e.Equals(); got != domain.DisplayError {
		t.Errorf("Equals() after clear = %q, want %q", got, domain.DisplayError)
	}
}

func TestEngine_Convert(t *testing.T) {
	tests := []struct {
		name      string
		buffer    string
		operation string
		want      string
	}{
		{"MilesToKm", "10", "Mi to Km", "16.09"},
		{"CelsiusToFahrenheit", "100", "C to F", "212.00"},
		{"FahrenheitToCelsius", "-40", "F to C", "-40.00"},
		{"SecondsToMinutes", "90", "Sec to Min", "1.50"},
		{"DecimalInput", "2.5", "In to Cm", "6.35"},
		{"WhitespaceTolerated", " 10 ", "Mi to Km", "16.09"},
		{"NotANumber", "abc", "Mi to Km", "Error"},
		{"ExpressionNotAllowed", "2+2", "Mi to Km", "Error"},
		{"EmptyBuffer", "", "Mi to Km", "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine()
			e.Append(tt.buffer)

			got, err := e.Convert(tt.operation)
			if err != nil {
				t.Fatalf("Convert() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Convert(%q) on %q = %q, want %q", tt.operation, tt.buffer, got, tt.want)
			}
		})
	}
}

func TestEngine_ConvertUnknownOperation(t *testing.T) {
	e := newTestEngine()
	e.Append("10")

	// An id missing from the registry is a caller bug: surfaced as an
	// error, never as the user-facing sentinel.
	display, err := e.Convert("Mi to Furlongs")
	if err == nil {
		t.Fatal("expected error for unknown operation")
	}
	if !errors.Is(err, domain.ErrUnknownOperation) {
		t.Errorf("expected ErrUnknownOperation, got %v", err)
	}
	if display == domain.DisplayError {
		t.Error("contract violation must not be masked as the Error sentinel")
	}
}

func TestEngine_SwitchMode(t *testing.T) {
	e := newTestEngine()

	if e.Mode() != domain.ModeStandard {
		t.Fatalf("initial mode = %v, want Standard", e.Mode())
	}

	layout := e.SwitchMode(domain.ModeConvert)
	if !layout.Contains("Mi to Km") {
		t.Error("convert layout missing operation key")
	}

	layout = e.SwitchMode(domain.ModeStandard)
	if layout.Contains("Mi to Km") {
		t.Error("standard layout should not contain operation keys")
	}
	if !layout.Contains("=") {
		t.Error("standard layout missing equals key")
	}
}

func TestEngine_SwitchModeKeepsBuffer(t *testing.T) {
	e := newTestEngine()
	e.Append("42")

	e.SwitchMode(domain.ModeConvert)
	if e.Buffer() != "42" {
		t.Errorf("buffer after mode switch = %q, want %q", e.Buffer(), "42")
	}

	got, err := e.Convert("Min to Sec")
	if err != nil {
		t.Fatalf("Convert failed: %v", err)
	}
	if got != "2520.00" {
		t.Errorf("Convert = %q, want %q", got, "2520.00")
	}
}

func TestEngine_LayoutIdempotent(t *testing.T) {
	e := newTestEngine()
	e.Append("999") // accumulator state must not influence layouts

	first := e.SwitchMode(domain.ModeStandard)
	second := e.SwitchMode(domain.ModeStandard)

	if len(first) != len(second) {
		t.Fatalf("layout lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("layout entry %d differs: %v vs %v", i, first[i], second[i])
		}
	}
}
