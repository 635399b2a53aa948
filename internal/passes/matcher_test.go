package passes

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatch(t *testing.T) {
	candidates := []float64{61085.10, 61085.50, 61086.00}

	tests := []struct {
		name   string
		target float64
		want   float64
		ok     bool
	}{
		{"nearest within tolerance", 61085.12, 61085.10, true},
		{"exact hit", 61085.50, 61085.50, true},
		{"just before later pass", 61085.99, 61086.00, true},
		{"nearest beyond tolerance", 61085.55, 0, false},
		{"far before all passes", 61080.00, 0, false},
		{"after all passes", 61086.50, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Match(candidates, tt.target)
			if !tt.ok {
				require.ErrorIs(t, err, ErrNoMatch)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMatchEmpty(t *testing.T) {
	for _, target := range []float64{0, 61085.0, math.MaxFloat64} {
		_, err := Match(nil, target)
		assert.ErrorIs(t, err, ErrNoMatch)

		_, err = Match([]float64{}, target)
		assert.ErrorIs(t, err, ErrNoMatch)
	}
}

func TestMatchTieKeepsFirst(t *testing.T) {
	got, err := Match([]float64{61085.25, 61085.75, 61085.50}, 61085.50)
	require.NoError(t, err)
	assert.Equal(t, 61085.50, got)

	// Equidistant candidates outside tolerance are still rejected.
	_, err = Match([]float64{61085.0, 61086.0}, 61085.5)
	require.ErrorIs(t, err, ErrNoMatch)

	got, err = Match([]float64{61085.5 + 1.0/64, 61085.5 - 1.0/64}, 61085.5)
	require.NoError(t, err)
	assert.Equal(t, 61085.5+1.0/64, got)
}

func TestMatchToleranceBoundary(t *testing.T) {
	// At zero the difference is exactly the candidate value.
	target := 0.0
	atTolerance := target + Tolerance

	_, err := Match([]float64{atTolerance}, target)
	assert.ErrorIs(t, err, ErrNoMatch, "difference equal to tolerance must be rejected")

	inside := math.Nextafter(atTolerance, target)
	got, err := Match([]float64{inside}, target)
	require.NoError(t, err)
	assert.Equal(t, inside, got)
}
