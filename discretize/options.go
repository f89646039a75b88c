// Package discretize: configuration and documented defaults (single
// source of truth). Defaults travel through Options explicitly — the
// engine never reads package state at call time.

package discretize

import "github.com/katalvlaran/psdkit/schedule"

const (
	// DefaultMaxDiameter is the bound (µm) applied ONLY when a LogNormal
	// parameter set omits its own DMax. An explicit bound — valid or not —
	// is never replaced by this default: invalid bounds are rejected.
	DefaultMaxDiameter = 75.0

	// DegenerateMassTol is the raw (pre-normalization) mass total at or
	// below which the model is considered to assign no mass to the bin
	// range and the call fails with psd.ErrDegenerateDistribution.
	DegenerateMassTol = 1e-6
)

// Options configures the discretizer.
type Options struct {
	// MaxDiameter is the fallback bound for parameter sets that may omit
	// theirs (LogNormal with DMax == 0).
	MaxDiameter float64

	// Schedule overrides the bin-center step ladder; nil selects
	// schedule.DefaultOptions.
	Schedule *schedule.Options
}

// DefaultOptions returns the production configuration:
// MaxDiameter = DefaultMaxDiameter, default schedule ladder.
func DefaultOptions() Options {
	return Options{MaxDiameter: DefaultMaxDiameter}
}
