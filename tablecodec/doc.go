// Package tablecodec reads and writes the text interchange format for
// discrete particle-size tables: one bin per line, the integer diameter
// and its mass fraction separated by a tab.
//
//	1	0.0004517
//	2	0.0012903
//	…
//	60	0.0003108
//
// No header, no quoting, no escaping — both fields are always numeric.
// Fractions are written with strconv's shortest round-trippable "g"
// formatting, which is what makes Decode(Encode(d)) == d bit-exact.
//
// Decode is strict and the three failure kinds stay distinguishable so a
// caller can react differently to each:
//
//   - psd.ErrMalformedTable — a row with fewer than two fields, a
//     non-numeric or non-integral diameter, or a negative/non-finite
//     fraction (row-tagged; reject outright),
//   - psd.ErrOutOfOrder — diameters not strictly increasing,
//   - psd.ErrNormalization — fractions off unit sum by more than
//     NormalizationTol (recoverable: see Renormalize).
//
// The codec only reports; it never repairs. Decode tolerates blank lines
// and any run of spaces/tabs between fields, since imported tables are
// often hand-edited.
package tablecodec
