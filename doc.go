// Package psdkit is your in-memory toolkit for particle-size-distribution
// work in cement and concrete materials science — from continuous PSD
// models down to the discrete bin tables a microstructure generator eats.
//
// 🚀 What is psdkit?
//
//	A small, deterministic library that brings together:
//		• Distribution models: Rosin-Rammler, log-normal, Fuller-Thompson,
//		  and custom tabulated curves
//		• Bin schedules: non-uniform integer diameter ladders (fine near
//		  1 µm, coarse near the top size) that always land exactly on D_max
//		• Discretization: continuous model → (diameter, mass fraction)
//		  table whose fractions sum to exactly 1
//		• Fraction conversion: exact, invertible mass% ↔ volume% mapping
//		• Table codec: a minimal text interchange format with strict
//		  load-time validation
//
// ✨ Why choose psdkit?
//
//   - Pure value-in/value-out – every call is a pure function of its inputs
//   - No hidden defaults – bounds and constants travel through Options
//   - Sentinel errors – every failure matches with errors.Is
//   - Exact contracts – D_max is honored to the micrometer, round-trips
//     are bit-exact, and closure to 1.0 is renormalized, never assumed
//
// Everything is organized under six subpackages:
//
//	psd/        — shared value types (Point, Distribution) & error kinds
//	model/      — continuous distribution families and their math
//	schedule/   — integer bin-center ladders bounded by D_max
//	discretize/ — the model → table engine
//	fraction/   — mass/volume fraction conversion for mineral components
//	tablecodec/ — text table encode/decode with validation
//
// Quick example:
//
//	params := model.RosinRammler{D50: 15, N: 1.4, DMax: 60}
//	opts := discretize.DefaultOptions()
//	table, err := discretize.Discretize(params, &opts)
//	// table sums to 1.0; max diameter is exactly 60.
//
// See each subpackage's doc.go for contracts, complexity and examples,
// and cmd/psdcalc for the command-line front end.
package psdkit
