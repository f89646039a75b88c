package discretize

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/psdkit/model"
	"github.com/katalvlaran/psdkit/psd"
	"github.com/katalvlaran/psdkit/schedule"
)

// ErrUnknownModel is returned when a params variant outside the closed
// model.Params union reaches the dispatch switch. It cannot happen
// through the public API (the union is sealed) and failing loudly here
// keeps the dispatch exhaustive.
var ErrUnknownModel = fmt.Errorf("discretize: unknown model variant: %w", psd.ErrInvalidParameter)

// Discretize converts params into a discrete particle-size table.
// opts == nil selects DefaultOptions.
//
// Algorithm outline:
//  1. Validate params; resolve the maximum diameter (explicit field, or
//     opts.MaxDiameter for a LogNormal that omitted its own, or the last
//     tabulated diameter for a Custom curve).
//  2. Generate bin centers c_1 < … < c_k with the schedule package.
//  3. Boundaries: lower_1 = 0, lower_i = (c_{i-1}+c_i)/2,
//     upper_i = lower_{i+1}, upper_k = c_k. Spans are half-open (lo, hi].
//  4. Raw mass per bin via Model.MassBetween.
//  5. Renormalize so fractions sum to exactly 1 — always, even when the
//     raw total is already ≈ 1. A raw total ≤ DegenerateMassTol fails
//     with psd.ErrDegenerateDistribution instead.
//
// The returned Distribution is a fresh allocation satisfying
// psd.Distribution.Validate; its maximum diameter equals round(dMax).
// Complexity: O(k) model evaluations for k bins.
func Discretize(params model.Params, opts *Options) (psd.Distribution, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	// Single dispatch over the closed union; anything else fails loudly.
	var dMax float64
	switch p := params.(type) {
	case model.RosinRammler:
		dMax = p.DMax
	case model.LogNormal:
		dMax = p.DMax
		if dMax == 0 {
			dMax = o.MaxDiameter
		}
	case model.FullerThompson:
		dMax = p.DMax
	case model.Custom:
		dMax = p.Points[len(p.Points)-1].Diameter
	default:
		return nil, fmt.Errorf("%w (%T)", ErrUnknownModel, params)
	}

	m, err := params.Model()
	if err != nil {
		return nil, err
	}
	centers, err := schedule.Generate(dMax, o.Schedule)
	if err != nil {
		return nil, err
	}

	masses := make([]float64, len(centers))
	lower := 0.0
	for i, c := range centers {
		upper := float64(c)
		if i+1 < len(centers) {
			upper = (float64(c) + float64(centers[i+1])) / 2
		}
		masses[i] = m.MassBetween(lower, upper)
		lower = upper
	}

	total := floats.Sum(masses)
	if total <= DegenerateMassTol {
		return nil, fmt.Errorf("discretize: raw bin mass total %.3g with bound %g µm: %w",
			total, dMax, psd.ErrDegenerateDistribution)
	}

	dist := make(psd.Distribution, len(centers))
	for i, c := range centers {
		dist[i] = psd.Point{Diameter: c, Fraction: masses[i] / total}
	}
	return dist, nil
}
