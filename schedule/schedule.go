package schedule

import (
	"fmt"
	"math"

	"github.com/katalvlaran/psdkit/psd"
)

// ErrBoundTooSmall is returned when the requested maximum diameter is
// below 1 µm (no particle below 1 µm is representable in a bin table).
var ErrBoundTooSmall = fmt.Errorf("schedule: max diameter below 1 µm: %w", psd.ErrInvalidParameter)

// ErrBadLadder is returned when a custom step ladder violates the
// Options invariants (increasing breakpoints, positive non-decreasing steps).
var ErrBadLadder = fmt.Errorf("schedule: invalid step ladder: %w", psd.ErrInvalidParameter)

// Generate produces the ordered integer bin centers for a table bounded
// by dMax. opts == nil selects DefaultOptions.
//
// Algorithm outline:
//  1. r = round(dMax); reject dMax < 1 or non-finite.
//  2. Walk from 1 µm upward, advancing by the ladder step for the
//     current center, collecting every center strictly below r.
//  3. Append r itself — the terminal center ALWAYS equals r.
//  4. Absorb trailing centers while the closing gap is smaller than the
//     gap before it, so spacing stays monotonically non-decreasing.
//
// Postconditions (hard contracts):
//   - strictly increasing positive integers,
//   - consecutive gaps non-decreasing,
//   - the last element equals round(dMax) exactly.
//
// Complexity: O(r / smallest step) time, one backing array.
func Generate(dMax float64, opts *Options) ([]int, error) {
	if math.IsNaN(dMax) || math.IsInf(dMax, 0) || dMax < 1 {
		return nil, fmt.Errorf("%w (got %g)", ErrBoundTooSmall, dMax)
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := o.validate(); err != nil {
		return nil, err
	}

	r := int(math.Round(dMax))
	centers := make([]int, 0, r)
	for d := 1; d < r; d += o.stepAt(d) {
		centers = append(centers, d)
	}
	centers = append(centers, r)

	// Terminal landing: r replaced the natural next center, which can
	// close with too small a gap. Absorb trailing centers until the
	// closing gap is at least the one before it.
	for n := len(centers); n >= 3; n = len(centers) {
		if centers[n-1]-centers[n-2] >= centers[n-2]-centers[n-3] {
			break
		}
		centers = append(centers[:n-2], centers[n-1])
	}
	return centers, nil
}
