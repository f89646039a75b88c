// Package psd: unified sentinel error kinds.
// This file defines ONLY the package-spanning error sentinels. Subpackages
// MUST wrap these with fmt.Errorf("pkg: context: %w", ErrX) at the failure
// boundary and tests MUST check them via errors.Is. No function in psdkit
// panics on user-triggered error conditions.

package psd

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Messages carry the "psd: " prefix for consistent grepping across logs.
// Wrapping adds the originating package and call context; the sentinel at
// the end of the chain identifies the kind.
//
// ERROR PRIORITY (documented, enforced in tests):
// parameter validation -> degeneracy -> codec row shape -> ordering ->
// normalization. A call reports the first violated condition and computes
// nothing afterwards.

var (
	// ErrInvalidParameter is returned when a call receives an out-of-domain
	// scalar: a non-positive scale or shape parameter, a bound below 1 µm,
	// a negative fraction, or a non-positive specific gravity. Detected
	// before any computation proceeds; results are never partially built.
	ErrInvalidParameter = errors.New("psd: invalid parameter")

	// ErrDegenerateDistribution is returned when a model assigns effectively
	// zero mass to every bin of the schedule (e.g. a median far outside the
	// representable diameter range), instead of dividing by the near-zero
	// total and emitting a table of NaNs.
	ErrDegenerateDistribution = errors.New("psd: degenerate distribution")

	// ErrMalformedTable is returned by table decoding when a row has fewer
	// than two fields, a non-numeric field, a non-integral diameter, or a
	// negative or non-finite fraction.
	ErrMalformedTable = errors.New("psd: malformed table")

	// ErrOutOfOrder is returned by table decoding when diameters are not
	// strictly increasing.
	ErrOutOfOrder = errors.New("psd: table diameters out of order")

	// ErrNormalization is returned by table decoding when the mass
	// fractions deviate from unit sum by more than the codec tolerance.
	// Recoverable: callers may renormalize and retry (tablecodec.Renormalize).
	ErrNormalization = errors.New("psd: mass fractions do not sum to 1")
)
