// Package schedule generates the integer bin-center diameters a discrete
// particle-size table samples, bounded by a caller-supplied maximum.
//
// The schedule is deliberately non-uniform: fine 1 µm resolution where
// cement-fineness models change fastest, widening steps toward the top
// size where they flatten. The default ladder steps by 1 below 8 µm, by 2
// below 24, by 4 below 48, by 8 below 96 and by 16 above.
//
// Two properties are hard contracts, not best effort:
//
//   - Exact terminal landing: max(Generate(dMax)) == round(dMax) for every
//     dMax ≥ 1. The closing step is special-cased to land on the bound —
//     never overshoot, never stop short. A table whose top size silently
//     reverts to some default bound corrupts every simulation downstream.
//   - Monotone spacing: consecutive gaps never shrink. When the exact
//     landing would close with a gap smaller than the one before it, the
//     trailing centers are absorbed into the final span instead.
//
// Deterministic, allocation-light, no randomness, no package state.
package schedule
