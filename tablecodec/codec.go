package tablecodec

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/psdkit/psd"
)

// NormalizationTol is the absolute deviation from unit sum beyond which
// Decode reports psd.ErrNormalization.
const NormalizationTol = 1e-6

// Encode renders the table in the interchange format. Formatting is
// lossless: every float64 fraction survives a decode unchanged. Encode
// does not validate — pass tables produced by the discretizer or checked
// with psd.Distribution.Validate.
func Encode(dist psd.Distribution) string {
	var b strings.Builder
	for _, p := range dist {
		b.WriteString(strconv.Itoa(p.Diameter))
		b.WriteByte('\t')
		b.WriteString(strconv.FormatFloat(p.Fraction, 'g', -1, 64))
		b.WriteByte('\n')
	}
	return b.String()
}

// EncodeTo writes the encoded table to w.
func EncodeTo(w io.Writer, dist psd.Distribution) error {
	if _, err := io.WriteString(w, Encode(dist)); err != nil {
		return fmt.Errorf("tablecodec: encode: %w", err)
	}
	return nil
}

// Decode parses an encoded table, skipping blank lines, and validates it:
// row shape first (psd.ErrMalformedTable), then diameter ordering
// (psd.ErrOutOfOrder), then unit-sum closure (psd.ErrNormalization).
// Row-shape errors are tagged with the 1-based input line number.
//
// A psd.ErrNormalization verdict returns the parsed rows alongside the
// error — they are structurally sound, only off unit sum — so callers
// that treat normalization as recoverable can Renormalize them directly.
// Every other failure returns a nil Distribution.
func Decode(text string) (psd.Distribution, error) {
	return DecodeFrom(strings.NewReader(text))
}

// DecodeFrom is Decode reading from r.
func DecodeFrom(r io.Reader) (psd.Distribution, error) {
	var dist psd.Distribution
	scanner := bufio.NewScanner(r)
	line := 0
	prev := 0
	sum := 0.0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 {
			return nil, fmt.Errorf("tablecodec: line %d: need 2 fields, got %d: %w", line, len(fields), psd.ErrMalformedTable)
		}
		diameter, err := parseDiameter(fields[0])
		if err != nil {
			return nil, fmt.Errorf("tablecodec: line %d: diameter %q: %w", line, fields[0], psd.ErrMalformedTable)
		}
		frac, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || math.IsNaN(frac) || math.IsInf(frac, 0) || frac < 0 {
			return nil, fmt.Errorf("tablecodec: line %d: fraction %q: %w", line, fields[1], psd.ErrMalformedTable)
		}
		if diameter <= prev {
			return nil, fmt.Errorf("tablecodec: line %d: diameter %d not above %d: %w", line, diameter, prev, psd.ErrOutOfOrder)
		}
		dist = append(dist, psd.Point{Diameter: diameter, Fraction: frac})
		prev = diameter
		sum += frac
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("tablecodec: read: %w", err)
	}
	if len(dist) == 0 {
		return nil, fmt.Errorf("tablecodec: empty table: %w", psd.ErrMalformedTable)
	}
	if math.Abs(sum-1) > NormalizationTol {
		// The rows themselves are sound, so hand them back with the
		// verdict: callers that treat normalization as recoverable can
		// pass them straight to Renormalize.
		return dist, fmt.Errorf("tablecodec: fractions sum to %.9g: %w", sum, psd.ErrNormalization)
	}
	return dist, nil
}

// Renormalize divides every fraction by the current total, for callers
// that choose to repair a psd.ErrNormalization table on load. The input
// is not modified. Fails with psd.ErrDegenerateDistribution when the
// total carries no mass to scale.
func Renormalize(dist psd.Distribution) (psd.Distribution, error) {
	total := dist.Sum()
	if !(total > 0) || math.IsInf(total, 1) || math.IsNaN(total) {
		return nil, fmt.Errorf("tablecodec: cannot renormalize total %g: %w", total, psd.ErrDegenerateDistribution)
	}
	out := dist.Clone()
	for i := range out {
		out[i].Fraction /= total
	}
	return out, nil
}

// parseDiameter accepts a bare integer, or a float with zero fractional
// part ("10.0" from hand-edited tables), as a positive bin diameter.
func parseDiameter(field string) (int, error) {
	if d, err := strconv.Atoi(field); err == nil {
		if d < 1 {
			return 0, fmt.Errorf("diameter below 1")
		}
		return d, nil
	}
	f, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, err
	}
	if f < 1 || f != math.Trunc(f) || f > math.MaxInt32 {
		return 0, fmt.Errorf("diameter %g not a positive integer", f)
	}
	return int(f), nil
}
