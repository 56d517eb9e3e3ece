package weights_test

import (
	"testing"

	"github.com/katalvlaran/geolisa/weights"
)

// BenchmarkQueen_Grid measures Queen.Build on a 60×60 lattice (3600 polygons).
func BenchmarkQueen_Grid(b *testing.B) {
	geoms := grid(60)
	q, err := weights.NewQueen(weights.DefaultTolerance)
	if err != nil {
		b.Fatalf("NewQueen: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = q.Build(geoms); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkRook_Grid measures Rook.Build on the same lattice.
func BenchmarkRook_Grid(b *testing.B) {
	geoms := grid(60)
	r, err := weights.NewRook(weights.DefaultTolerance)
	if err != nil {
		b.Fatalf("NewRook: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = r.Build(geoms); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkDistance_Grid measures the O(N²) pair scan with a short cutoff.
func BenchmarkDistance_Grid(b *testing.B) {
	geoms := grid(30)
	d, err := weights.NewDistance(false, weights.WithCutoff(1.5))
	if err != nil {
		b.Fatalf("NewDistance: %v", err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = d.Build(geoms); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkToSparse_Row measures the row-standardised CSR export.
func BenchmarkToSparse_Row(b *testing.B) {
	q, _ := weights.NewQueen(weights.DefaultTolerance)
	w, err := q.Build(grid(60))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = w.ToSparse(weights.TransformRow); err != nil {
			b.Fatal(err)
		}
	}
}
