// Package discretize converts a continuous particle-size-distribution
// model into a discrete (diameter, mass fraction) table.
//
// 🚀 How it works
//
//	 params ──▶ model.Params.Model() ──▶ schedule.Generate(dMax)
//	                  │                        │
//	                  ▼                        ▼
//	          per-bin mass between      integer bin centers
//	          midpoint boundaries              │
//	                  └────────┬───────────────┘
//	                           ▼
//	              renormalize → psd.Distribution
//
// Bin boundaries sit at the midpoints between consecutive centers; the
// first bin is closed at 0 and the last bin's upper boundary is the last
// center itself. Spans are half-open (lo, hi], applied uniformly.
//
// Renormalization is mandatory and always runs, even when the raw
// integral already sits next to 1 — skipping it is exactly how round-off
// accumulates across many small bins. When the raw total itself is
// negligible (parameters place the whole population outside the bin
// range) the call fails with psd.ErrDegenerateDistribution instead of
// dividing by (near) zero.
//
// Every call is independent: no hidden state, results are fresh
// allocations, concurrent use needs no coordination.
package discretize
