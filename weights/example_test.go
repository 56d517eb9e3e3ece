package weights_test

import (
	"fmt"

	"github.com/katalvlaran/geolisa/weights"
	"github.com/paulmach/orb"
)

// ExampleQueen builds contiguity weights for three squares in a row.
func ExampleQueen() {
	geoms := []orb.Geometry{
		orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}},
		orb.Polygon{{{1, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 0}}},
		orb.Polygon{{{2, 0}, {3, 0}, {3, 1}, {2, 1}, {2, 0}}},
	}
	q, err := weights.NewQueen(weights.DefaultTolerance)
	if err != nil {
		fmt.Println(err)
		return
	}
	w, err := q.Build(geoms)
	if err != nil {
		fmt.Println(err)
		return
	}
	for id := 0; id < w.N(); id++ {
		ns, _ := w.Neighbors(id)
		fmt.Println(id, ns)
	}
	// Output:
	// 0 [1]
	// 1 [0 2]
	// 2 [1]
}

// ExampleNewDistance links points closer than a cutoff.
func ExampleNewDistance() {
	b, err := weights.NewDistance(false, weights.WithCutoff(20))
	if err != nil {
		fmt.Println(err)
		return
	}
	w, _ := b.Build([]orb.Geometry{orb.Point{1, 2}, orb.Point{100, 0}, orb.Point{2, 2}})
	fmt.Print(w)
	// Output:
	// weights.Matrix N=3 links=2
	// 0: [2=1]
	// 1: []
	// 2: [0=1]
}

// ExampleMatrix_ToSparse row-standardises W.
func ExampleMatrix_ToSparse() {
	w, _ := weights.FromListRep([]int{0, 0}, []int{1, 2}, []float64{1, 3}, 3)
	csr, _ := w.ToSparse(weights.TransformRow)
	fmt.Println(csr.At(0, 1), csr.At(0, 2), csr.At(1, 0))
	// Output:
	// 0.25 0.75 1
}
