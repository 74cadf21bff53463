package tally_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/tally"
	"github.com/aretw0/tally/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEngine(t *testing.T, opts ...tally.Option) *tally.Engine {
	t.Helper()
	eng, err := tally.New(opts...)
	require.NoError(t, err)
	return eng
}

func TestEngine_StandardFlow(t *testing.T) {
	eng := newEngine(t)

	assert.Equal(t, domain.ModeStandard, eng.Mode())
	assert.Equal(t, "2", eng.PressToken("2"))
	assert.Equal(t, "2+", eng.PressToken("+"))
	assert.Equal(t, "2+2", eng.PressToken("2"))
	assert.Equal(t, "4.000", eng.PressEquals())

	// The buffer survives equals.
	assert.Equal(t, "2+2", eng.Buffer())
	assert.Equal(t, "", eng.PressClear())
	assert.Equal(t, "Error", eng.PressEquals())
}

func TestEngine_DivisionByZero(t *testing.T) {
	eng := newEngine(t)
	eng.PressToken("5")
	eng.PressToken("/")
	eng.PressToken("0")

	assert.Equal(t, "Error", eng.PressEquals())
}

func TestEngine_ConvertFlow(t *testing.T) {
	eng := newEngine(t)
	eng.PressToken("10")
	eng.SwitchMode(domain.ModeConvert)

	display, err := eng.PressConvert("Mi to Km")
	require.NoError(t, err)
	assert.Equal(t, "16.09", display)
}

func TestEngine_ConvertRejectsExpressions(t *testing.T) {
	eng := newEngine(t)
	eng.PressToken("abc")

	display, err := eng.PressConvert("Mi to Km")
	require.NoError(t, err)
	assert.Equal(t, "Error", display)
}

func TestEngine_ConvertUnknownOperation(t *testing.T) {
	eng := newEngine(t)
	eng.PressToken("10")

	_, err := eng.PressConvert("Pints to Litres")
	require.ErrorIs(t, err, domain.ErrUnknownOperation)
}

func TestEngine_LayoutPerMode(t *testing.T) {
	eng := newEngine(t)

	layout := eng.SwitchMode(domain.ModeConvert)
	assert.True(t, layout.Contains("Mi to Km"))
	assert.Equal(t, layout, eng.CurrentLayout())

	layout = eng.SwitchMode(domain.ModeStandard)
	assert.False(t, layout.Contains("Mi to Km"))
	assert.True(t, layout.Contains("="))

	// Switching is idempotent in layout content.
	assert.Equal(t, layout, eng.SwitchMode(domain.ModeStandard))
}

func TestEngine_WithConversion(t *testing.T) {
	eng := newEngine(t, tally.WithConversion("Double", func(v float64) float64 { return v * 2 }))

	layout := eng.SwitchMode(domain.ModeConvert)
	assert.True(t, layout.Contains("Double"))

	eng.PressToken("21")
	display, err := eng.PressConvert("Double")
	require.NoError(t, err)
	assert.Equal(t, "42.00", display)
}

func TestEngine_WithUnitsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
conversions:
  - name: "Kg to Lb"
    factor: 2.20462
`), 0o644))

	eng := newEngine(t, tally.WithUnitsFile(path))

	assert.Contains(t, eng.Conversions(), "Kg to Lb")
	eng.PressToken("10")
	display, err := eng.PressConvert("Kg to Lb")
	require.NoError(t, err)
	assert.Equal(t, "22.05", display)
}

func TestEngine_WithUnitsFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "units.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
conversions:
  - factor: 2
`), 0o644))

	_, err := tally.New(tally.WithUnitsFile(path))
	assert.Error(t, err)
}

func TestEngine_CalculateThenConvert(t *testing.T) {
	eng := newEngine(t)

	for _, key := range []string{"1", "2", "+", "3", "*", "4"} {
		eng.PressToken(key)
	}
	assert.Equal(t, "24.000", eng.PressEquals())

	eng.PressClear()
	eng.PressToken("100")
	eng.SwitchMode(domain.ModeConvert)

	// Every built-in id must round-trip through the facade; a miskeyed id
	// like "Km to Miles" is not in the table and errors instead.
	display, err := eng.PressConvert("Km to Mi")
	require.NoError(t, err)
	assert.Equal(t, "62.14", display)

	_, err = eng.PressConvert("Km to Miles")
	require.ErrorIs(t, err, domain.ErrUnknownOperation)
}

func TestEngine_ModeSwitchKeepsBuffer(t *testing.T) {
	eng := newEngine(t)
	eng.PressToken("37")
	eng.SwitchMode(domain.ModeConvert)

	display, err := eng.PressConvert("C to F")
	require.NoError(t, err)
	assert.Equal(t, "98.60", display)
}
