package model

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/interp"

	"github.com/katalvlaran/psdkit/psd"
)

// Model compiles the tabulated curve: a piecewise-linear interpolant over
// the supplied points, integrated by the trapezoid rule. Mass outside the
// tabulated diameter range is zero. The curve's full integral acts as the
// unit of mass, so MassBetween and CDF are normalized regardless of the
// scale the ordinates were recorded in.
func (p Custom) Model() (Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	xs := make([]float64, len(p.Points))
	ys := make([]float64, len(p.Points))
	for i, pt := range p.Points {
		xs[i] = pt.Diameter
		ys[i] = pt.Fraction
	}
	var pl interp.PiecewiseLinear
	if err := pl.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("model: custom curve fit: %v: %w", err, psd.ErrInvalidParameter)
	}
	total := integrate.Trapezoidal(xs, ys)
	if !(total > 0) {
		return nil, fmt.Errorf("model: custom curve carries no mass: %w", psd.ErrInvalidParameter)
	}
	return &customModel{xs: xs, ys: ys, curve: pl, total: total}, nil
}

// customModel evaluates a tabulated curve by linear interpolation and
// trapezoidal integration.
type customModel struct {
	xs    []float64
	ys    []float64
	curve interp.PiecewiseLinear
	total float64
}

// Density returns the tabulated ordinate at d scaled by the curve's full
// integral, so the density integrates to 1 over the tabulated range.
func (m *customModel) Density(d float64) float64 {
	if d < m.xs[0] || d > m.xs[len(m.xs)-1] {
		return 0
	}
	return m.curve.Predict(d) / m.total
}

func (m *customModel) CDF(d float64) float64 {
	return m.MassBetween(0, d)
}

// MassBetween integrates the interpolated curve over (lo, hi] ∩ tabulated
// range, normalized by the full-curve integral.
func (m *customModel) MassBetween(lo, hi float64) float64 {
	last := m.xs[len(m.xs)-1]
	if lo < m.xs[0] {
		lo = m.xs[0]
	}
	if hi > last {
		hi = last
	}
	if hi <= lo {
		return 0
	}

	// Integration nodes: the clamped bounds plus every tabulated abscissa
	// strictly between them, so each trapezoid spans a linear segment.
	first := sort.SearchFloat64s(m.xs, lo)
	if first < len(m.xs) && m.xs[first] == lo {
		first++
	}
	nodes := []float64{lo}
	for i := first; i < len(m.xs) && m.xs[i] < hi; i++ {
		nodes = append(nodes, m.xs[i])
	}
	nodes = append(nodes, hi)

	values := make([]float64, len(nodes))
	for i, x := range nodes {
		values[i] = m.curve.Predict(x)
	}
	return integrate.Trapezoidal(nodes, values) / m.total
}
