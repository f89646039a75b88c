package model

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// Model is a compiled, evaluable distribution.
//
// CDF is monotonically non-decreasing with CDF(0) = 0 and values in
// [0, 1]. MassBetween(lo, hi) is the mass carried by the half-open span
// (lo, hi]; for the analytic families it is exactly CDF(hi) − CDF(lo).
// Density is the probability density over diameter; for a Custom curve
// it is the interpolated (unnormalized-then-scaled) tabulated ordinate.
type Model interface {
	Density(d float64) float64
	CDF(d float64) float64
	MassBetween(lo, hi float64) float64
}

// Model compiles the Rosin-Rammler parameters. The law is the Weibull
// distribution over diameter with scale D50 and shape N.
func (p RosinRammler) Model() (Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return cdfModel{distuv.Weibull{K: p.N, Lambda: p.D50}}, nil
}

// Model compiles the log-normal parameters. Mu = ln(Median) and
// Sigma = ln(geometric std dev) in the natural-log domain.
func (p LogNormal) Model() (Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return cdfModel{distuv.LogNormal{Mu: math.Log(p.Median), Sigma: math.Log(p.Sigma)}}, nil
}

// Model compiles the Fuller-Thompson parameters.
func (p FullerThompson) Model() (Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return fullerModel{exponent: p.Exponent, dMax: p.DMax}, nil
}

// distribution is the gonum surface the analytic families share.
type distribution interface {
	CDF(x float64) float64
	Prob(x float64) float64
}

// cdfModel adapts a gonum distuv distribution with a closed-form CDF.
type cdfModel struct {
	dist distribution
}

func (m cdfModel) Density(d float64) float64 {
	if d <= 0 {
		return 0
	}
	return m.dist.Prob(d)
}

func (m cdfModel) CDF(d float64) float64 {
	if d <= 0 {
		return 0
	}
	return m.dist.CDF(d)
}

func (m cdfModel) MassBetween(lo, hi float64) float64 {
	return spanMass(m, lo, hi)
}

// fullerModel evaluates the Fuller-Thompson power law
// CDF(d) = (d/dMax)^exponent on [0, dMax], clamped to 1 above.
type fullerModel struct {
	exponent float64
	dMax     float64
}

func (m fullerModel) Density(d float64) float64 {
	if d <= 0 || d > m.dMax {
		return 0
	}
	// Differentiated power law: a/dMax · (d/dMax)^(a−1).
	return m.exponent / m.dMax * math.Pow(d/m.dMax, m.exponent-1)
}

func (m fullerModel) CDF(d float64) float64 {
	switch {
	case d <= 0:
		return 0
	case d >= m.dMax:
		return 1
	default:
		return math.Pow(d/m.dMax, m.exponent)
	}
}

func (m fullerModel) MassBetween(lo, hi float64) float64 {
	return spanMass(m, lo, hi)
}

// spanMass is the shared CDF-difference span evaluator. Clamps the tiny
// negative differences floating-point CDFs can produce on equal bounds.
func spanMass(m Model, lo, hi float64) float64 {
	if hi <= lo {
		return 0
	}
	mass := m.CDF(hi) - m.CDF(lo)
	if mass < 0 {
		return 0
	}
	return mass
}
