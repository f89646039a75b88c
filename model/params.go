package model

import (
	"fmt"
	"math"

	"github.com/katalvlaran/psdkit/psd"
)

// Params is the closed union of distribution parameter sets. Exactly four
// variants exist: RosinRammler, LogNormal, FullerThompson and Custom.
// The union is sealed (unexported marker method) so a type switch over it
// is exhaustive.
type Params interface {
	// Validate reports the first out-of-domain parameter, wrapping
	// psd.ErrInvalidParameter. A nil return guarantees Model succeeds.
	Validate() error

	// Model validates and compiles the parameters into an evaluable Model.
	Model() (Model, error)

	isParams()
}

// RosinRammler parameterizes the Rosin-Rammler law
// CDF(d) = 1 − exp(−(d/D50)^N): D50 is the characteristic diameter in µm,
// N the uniformity exponent, DMax the largest representable diameter.
type RosinRammler struct {
	D50  float64
	N    float64
	DMax float64
}

// LogNormal parameterizes a log-normal distribution over diameter.
// Median is the median diameter in µm; Sigma is the geometric standard
// deviation (dimensionless, strictly above 1 — ln Sigma is the standard
// deviation in the natural-log domain). DMax is optional: zero means the
// discretizer's configured default bound applies.
type LogNormal struct {
	Median float64
	Sigma  float64
	DMax   float64
}

// FullerThompson parameterizes the Fuller-Thompson ideal grading curve
// CDF(d) = (d/DMax)^Exponent on [0, DMax]. The classic curve uses
// Exponent = 0.5.
type FullerThompson struct {
	Exponent float64
	DMax     float64
}

// CurvePoint is one ordinate of a Custom tabulated curve: the relative
// mass density read at Diameter. Ordinates need not be normalized; the
// curve's own integral is the unit of mass.
type CurvePoint struct {
	Diameter float64
	Fraction float64
}

// Custom holds an arbitrary tabulated distribution curve, sorted by
// diameter ascending. The largest tabulated diameter acts as DMax.
type Custom struct {
	Points []CurvePoint
}

func (RosinRammler) isParams()   {}
func (LogNormal) isParams()      {}
func (FullerThompson) isParams() {}
func (Custom) isParams()         {}

// validBound reports whether b is a usable maximum diameter (≥ 1 µm,
// finite). Diameters below 1 µm are not representable in a bin table.
func validBound(b float64) bool {
	return b >= 1 && !math.IsInf(b, 1)
}

// Validate checks D50 > 0, N > 0 and DMax ≥ 1.
func (p RosinRammler) Validate() error {
	if !(p.D50 > 0) || math.IsInf(p.D50, 1) {
		return fmt.Errorf("model: rosin-rammler d50 must be positive and finite, got %g: %w", p.D50, psd.ErrInvalidParameter)
	}
	if !(p.N > 0) || math.IsInf(p.N, 1) {
		return fmt.Errorf("model: rosin-rammler n must be positive and finite, got %g: %w", p.N, psd.ErrInvalidParameter)
	}
	if !validBound(p.DMax) {
		return fmt.Errorf("model: rosin-rammler dmax must be ≥ 1 µm, got %g: %w", p.DMax, psd.ErrInvalidParameter)
	}
	return nil
}

// Validate checks Median > 0, Sigma > 1 and DMax ≥ 1 when supplied
// (DMax == 0 defers the bound to the discretizer's configuration).
func (p LogNormal) Validate() error {
	if !(p.Median > 0) || math.IsInf(p.Median, 1) {
		return fmt.Errorf("model: log-normal median must be positive and finite, got %g: %w", p.Median, psd.ErrInvalidParameter)
	}
	if !(p.Sigma > 1) || math.IsInf(p.Sigma, 1) {
		return fmt.Errorf("model: log-normal sigma (geometric std dev) must be > 1, got %g: %w", p.Sigma, psd.ErrInvalidParameter)
	}
	if p.DMax != 0 && !validBound(p.DMax) {
		return fmt.Errorf("model: log-normal dmax must be ≥ 1 µm, got %g: %w", p.DMax, psd.ErrInvalidParameter)
	}
	return nil
}

// Validate checks Exponent > 0 and DMax ≥ 1.
func (p FullerThompson) Validate() error {
	if !(p.Exponent > 0) || math.IsInf(p.Exponent, 1) {
		return fmt.Errorf("model: fuller-thompson exponent must be positive and finite, got %g: %w", p.Exponent, psd.ErrInvalidParameter)
	}
	if !validBound(p.DMax) {
		return fmt.Errorf("model: fuller-thompson dmax must be ≥ 1 µm, got %g: %w", p.DMax, psd.ErrInvalidParameter)
	}
	return nil
}

// Validate checks the tabulated curve: at least two points, diameters
// non-negative and strictly increasing, ordinates non-negative and
// finite, the last diameter ≥ 1 µm, and at least one positive ordinate.
func (p Custom) Validate() error {
	if len(p.Points) < 2 {
		return fmt.Errorf("model: custom curve needs at least 2 points, got %d: %w", len(p.Points), psd.ErrInvalidParameter)
	}
	prev := math.Inf(-1)
	positive := false
	for i, pt := range p.Points {
		if pt.Diameter < 0 || math.IsNaN(pt.Diameter) || math.IsInf(pt.Diameter, 0) {
			return fmt.Errorf("model: custom point %d: diameter %g out of domain: %w", i, pt.Diameter, psd.ErrInvalidParameter)
		}
		if pt.Diameter <= prev {
			return fmt.Errorf("model: custom point %d: diameter %g not above %g: %w", i, pt.Diameter, prev, psd.ErrInvalidParameter)
		}
		if pt.Fraction < 0 || math.IsNaN(pt.Fraction) || math.IsInf(pt.Fraction, 0) {
			return fmt.Errorf("model: custom point %d: ordinate %g out of domain: %w", i, pt.Fraction, psd.ErrInvalidParameter)
		}
		if pt.Fraction > 0 {
			positive = true
		}
		prev = pt.Diameter
	}
	if last := p.Points[len(p.Points)-1].Diameter; !validBound(last) {
		return fmt.Errorf("model: custom curve tops out at %g µm, need ≥ 1: %w", last, psd.ErrInvalidParameter)
	}
	if !positive {
		return fmt.Errorf("model: custom curve carries no mass: %w", psd.ErrInvalidParameter)
	}
	return nil
}
