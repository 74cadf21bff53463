package domain

import "fmt"

// Mode is the calculator's operating state. It owns no mutable data: a Mode
// value is a pure function from mode identity to a Layout, and switching
// modes replaces the value wholesale.
type Mode string

const (
	// ModeStandard is the arithmetic keypad. It is the initial mode of
	// every session.
	ModeStandard Mode = "Standard"
	// ModeConvert is the unit-conversion keypad.
	ModeConvert Mode = "Convert"
)

// ParseMode converts a mode name into a Mode value.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeStandard:
		return ModeStandard, nil
	case ModeConvert:
		return ModeConvert, nil
	default:
		return "", fmt.Errorf("unknown mode %q", s)
	}
}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// Layout produces the declarative keypad for this mode. The conversions
// slice lists registered operation ids in registration order; it is only
// consulted by ModeConvert.
func (m Mode) Layout(conversions []string) Layout {
	if m == ModeConvert {
		return ConvertLayout(conversions)
	}
	return StandardLayout()
}
