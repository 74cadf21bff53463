package registry

import (
	"errors"
	"math"
	"testing"

	"github.com/aretw0/tally/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func TestDefault_Formulas(t *testing.T) {
	r := Default()

	tests := []struct {
		op    string
		in    float64
		want  float64
		exact bool
	}{
		{"Mi to Km", 1, 1.60934, false},
		{"Mi to Km", 10, 16.0934, false},
		{"Km to Mi", 1.60934, 1, false},
		{"C to F", 0, 32, true},
		{"C to F", 100, 212, true},
		{"F to C", 32, 0, true},
		{"F to C", -40, -40, true},
		{"C to F", -40, -40, true},
		{"In to Cm", 1, 2.54, false},
		{"Cm to In", 1, 0.3937, false},
		{"Min to Sec", 1, 60, true},
		{"Sec to Min", 90, 1.5, true},
	}

	for _, tt := range tests {
		got, err := r.Convert(tt.op, tt.in)
		require.NoError(t, err, "%s(%v)", tt.op, tt.in)
		if tt.exact {
			assert.Equal(t, tt.want, got, "%s(%v)", tt.op, tt.in)
		} else {
			assert.InDelta(t, tt.want, got, tolerance, "%s(%v)", tt.op, tt.in)
		}
	}
}

func TestDefault_InversePairs(t *testing.T) {
	r := Default()

	pairs := []struct {
		forward, backward string
		// Cm to In uses the rounded 0.3937 factor instead of 1/2.54, so the
		// round trip is only accurate to ~1e-4 relative error.
		delta float64
	}{
		{"Mi to Km", "Km to Mi", tolerance},
		{"C to F", "F to C", tolerance},
		{"In to Cm", "Cm to In", 1e-3},
		{"Min to Sec", "Sec to Min", tolerance},
	}

	values := []float64{-273.15, -40, 0, 0.5, 1, 37, 100, 12345.678}

	for _, p := range pairs {
		for _, v := range values {
			mid, err := r.Convert(p.forward, v)
			require.NoError(t, err)
			back, err := r.Convert(p.backward, mid)
			require.NoError(t, err)

			scale := math.Max(1, math.Abs(v))
			assert.InDelta(t, v, back, p.delta*scale, "%s then %s on %v", p.forward, p.backward, v)
		}
	}
}

func TestConvert_UnknownOperation(t *testing.T) {
	r := Default()

	_, err := r.Convert("Furlongs to Parsecs", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownOperation))
}

func TestRegistry_NamesOrder(t *testing.T) {
	r := NewRegistry()
	r.Register("b", func(v float64) float64 { return v })
	r.Register("a", func(v float64) float64 { return v })
	r.Register("c", func(v float64) float64 { return v })

	assert.Equal(t, []string{"b", "a", "c"}, r.Names())

	// Re-registering keeps the original position.
	r.Register("a", func(v float64) float64 { return v * 2 })
	assert.Equal(t, []string{"b", "a", "c"}, r.Names())

	got, err := r.Convert("a", 3)
	require.NoError(t, err)
	assert.Equal(t, 6.0, got)
}

func TestDefault_NoRounding(t *testing.T) {
	r := Default()

	// Convert must return the raw product; rounding is a presentation
	// concern handled by the engine facade.
	got, err := r.Convert("Mi to Km", 10)
	require.NoError(t, err)
	assert.InDelta(t, 16.0934, got, 1e-12)
	assert.NotEqual(t, 16.09, got)
}
