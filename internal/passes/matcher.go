package passes

import (
	"errors"
	"fmt"
	"math"
)

// Tolerance is the largest accepted distance, in days, between the requested
// time and a pass start (30 minutes). The distance must be strictly smaller.
const Tolerance = 1.0 / 48

// ErrNoMatch is returned when no candidate pass starts within Tolerance.
var ErrNoMatch = errors.New("no pass within tolerance")

// Match returns the candidate closest to target. Ties go to the earliest
// candidate in the slice.
func Match(candidates []float64, target float64) (float64, error) {
	if len(candidates) == 0 {
		return 0, fmt.Errorf("%w: no candidate passes", ErrNoMatch)
	}

	best := candidates[0]
	bestDiff := math.Abs(best - target)
	for _, c := range candidates[1:] {
		if d := math.Abs(c - target); d < bestDiff {
			best, bestDiff = c, d
		}
	}

	if !(bestDiff < Tolerance) {
		return 0, fmt.Errorf("%w: nearest pass %v is %.4f days from %v", ErrNoMatch, best, bestDiff, target)
	}
	return best, nil
}
