package discretize_test

import (
	"testing"

	"github.com/katalvlaran/psdkit/discretize"
	"github.com/katalvlaran/psdkit/model"
)

// benchmarkDiscretize runs the engine repeatedly on params, failing on
// unexpected errors.
func benchmarkDiscretize(b *testing.B, params model.Params) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := discretize.Discretize(params, nil); err != nil {
			b.Fatalf("Discretize failed: %v", err)
		}
	}
}

// BenchmarkDiscretize_RosinRammler measures the common production case.
func BenchmarkDiscretize_RosinRammler(b *testing.B) {
	benchmarkDiscretize(b, model.RosinRammler{D50: 15, N: 1.4, DMax: 60})
}

// BenchmarkDiscretize_LogNormalWide measures a wide table (150 µm bound).
func BenchmarkDiscretize_LogNormalWide(b *testing.B) {
	benchmarkDiscretize(b, model.LogNormal{Median: 10, Sigma: 2, DMax: 150})
}

// BenchmarkDiscretize_Custom measures the tabulated-curve path, which
// pays for interpolation and trapezoid integration per bin.
func BenchmarkDiscretize_Custom(b *testing.B) {
	points := make([]model.CurvePoint, 0, 61)
	for d := 0; d <= 60; d++ {
		points = append(points, model.CurvePoint{Diameter: float64(d), Fraction: float64(d % 7)})
	}
	benchmarkDiscretize(b, model.Custom{Points: points})
}
