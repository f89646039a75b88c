// Package psd defines the shared value types and sentinel error kinds
// used across github.com/katalvlaran/psdkit.
//
// The central type is Distribution: an ordered table of
// (integer diameter, mass fraction) points with strictly increasing
// diameters whose fractions sum to 1.0 within 1e-9 relative tolerance.
// Distributions are produced fresh by the discretize package and decoded
// by tablecodec; both uphold the invariants before handing one out.
//
// Concurrency:
//
//	Every function in psdkit is a pure function of its inputs — no
//	package-level mutable state anywhere. Concurrent calls with distinct
//	arguments need no coordination; each call allocates and returns its
//	own result. A Distribution is an immutable snapshot by convention:
//	callers that edit fractions in place (interactive table editors)
//	must Clone first and restore closure themselves before reuse.
//
// Error kinds:
//
//	The five sentinels in errors.go are the package-spanning error
//	taxonomy. Subpackages wrap them with context via fmt.Errorf("…: %w")
//	so errors.Is always matches the kind regardless of origin.
package psd
