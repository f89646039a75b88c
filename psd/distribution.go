package psd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// ClosureTol is the relative tolerance within which a valid Distribution's
// mass fractions must sum to 1.0.
const ClosureTol = 1e-9

// Point is one row of a discrete particle-size table: the bin-center
// diameter in micrometers and the mass fraction assigned to that bin.
type Point struct {
	Diameter int
	Fraction float64
}

// Distribution is an ordered discrete particle-size table.
// Diameters are strictly increasing; fractions sum to 1.0 within
// ClosureTol. Producers return a fresh slice on every call; treat a
// Distribution as an immutable snapshot (Clone before editing).
type Distribution []Point

// Sum returns the total mass fraction across all bins.
func (d Distribution) Sum() float64 {
	fractions := make([]float64, len(d))
	for i, p := range d {
		fractions[i] = p.Fraction
	}
	return floats.Sum(fractions)
}

// Clone returns a deep copy, so the original survives in-place edits.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	copy(out, d)
	return out
}

// Validate checks the Distribution invariants:
//   - at least one point,
//   - diameters positive and strictly increasing,
//   - fractions finite and non-negative,
//   - fractions sum to 1.0 within ClosureTol (relative).
//
// Returns a wrapped sentinel (ErrMalformedTable, ErrOutOfOrder or
// ErrNormalization) naming the first violated condition.
func (d Distribution) Validate() error {
	if len(d) == 0 {
		return fmt.Errorf("psd: empty distribution: %w", ErrMalformedTable)
	}
	prev := 0
	for i, p := range d {
		if p.Diameter < 1 {
			return fmt.Errorf("psd: row %d: diameter %d below 1 µm: %w", i, p.Diameter, ErrMalformedTable)
		}
		if math.IsNaN(p.Fraction) || math.IsInf(p.Fraction, 0) || p.Fraction < 0 {
			return fmt.Errorf("psd: row %d: fraction %g out of range: %w", i, p.Fraction, ErrMalformedTable)
		}
		if p.Diameter <= prev {
			return fmt.Errorf("psd: row %d: diameter %d not above %d: %w", i, p.Diameter, prev, ErrOutOfOrder)
		}
		prev = p.Diameter
	}
	if total := d.Sum(); math.Abs(total-1) > ClosureTol {
		return fmt.Errorf("psd: fractions sum to %.12g: %w", total, ErrNormalization)
	}
	return nil
}

// D50 reports the median diameter: the point at which the running
// cumulative mass fraction first reaches 0.5, linearly interpolated
// between the bracketing bin centers (from 0 when the first bin alone
// crosses the median). A diagnostic value, never used internally.
// Returns the last diameter if the cumulative sum never reaches 0.5
// (only possible on an invalid table) and 0 for an empty table.
func (d Distribution) D50() float64 {
	if len(d) == 0 {
		return 0
	}
	cumulative := 0.0
	prevDiameter := 0.0
	for _, p := range d {
		if cumulative+p.Fraction >= 0.5 {
			// Fractional excess inside this bin locates the crossing.
			t := (0.5 - cumulative) / p.Fraction
			return prevDiameter + t*(float64(p.Diameter)-prevDiameter)
		}
		cumulative += p.Fraction
		prevDiameter = float64(p.Diameter)
	}
	return float64(d[len(d)-1].Diameter)
}
