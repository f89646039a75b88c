// Package model implements the continuous particle-size-distribution
// families supported by psdkit and compiles them into evaluable models.
//
// 🚀 Supported families
//
//   - RosinRammler — the Rosin-Rammler(-Sperling-Bennett) law, the Weibull
//     distribution over diameter: CDF(d) = 1 − exp(−(d/d50)^n).
//     Standard for ground clinker and most milled powders.
//   - LogNormal — log-normal over diameter, parameterized by the median
//     diameter and the geometric standard deviation (dimensionless, > 1).
//   - FullerThompson — the Fuller-Thompson ideal grading power law,
//     CDF(d) = (d/dMax)^exponent on [0, dMax], 1 beyond.
//   - Custom — an arbitrary tabulated curve of (diameter, ordinate) points;
//     evaluated by piecewise-linear interpolation and trapezoidal
//     integration, so any hand-measured laser-diffraction curve works.
//
// ⚙️ Usage
//
//	p := model.RosinRammler{D50: 15, N: 1.4, DMax: 60}
//	m, err := p.Model() // validates, then compiles
//	mass := m.MassBetween(5, 10)
//
// Params is a closed union: the four variants above are the only
// implementations, which lets the discretizer dispatch with an exhaustive
// type switch that fails loudly on anything else.
//
// All models are pure and deterministic. Validation failures wrap
// psd.ErrInvalidParameter; match with errors.Is.
package model
