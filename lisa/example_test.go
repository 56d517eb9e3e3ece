package lisa_test

import (
	"fmt"

	"github.com/katalvlaran/geolisa/lisa"
	"github.com/katalvlaran/geolisa/weights"
)

// ExampleCompute runs LISA on ten observations over a fixed neighbourhood.
func ExampleCompute() {
	w, _ := weights.FromListRep(
		[]int{0, 0, 1, 2, 2, 3, 3, 4, 4, 5, 6, 7, 8},
		[]int{1, 3, 4, 3, 6, 4, 7, 5, 8, 9, 7, 8, 9},
		[]float64{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		10,
	)
	values := []float64{2.24, 3.1, 4.55, -5.15, -4.39, 0.46, 5.54, 9.02, -2.09, -3.06}

	res, err := lisa.Compute(w, values, lisa.NewOptions(lisa.WithPermutations(99), lisa.WithSeed(1)))
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := range values {
		fmt.Printf("%d %+.4f %v\n", i, res.MoranValues[i], res.Quadrants[i])
	}
	// Output:
	// 0 -0.1141 HL
	// 1 -0.1994 HL
	// 2 -0.1335 HL
	// 3 -0.5177 LH
	// 4 +0.4810 LL
	// 5 +0.1221 LL
	// 6 +1.1915 HH
	// 7 -0.5814 HL
	// 8 +0.0710 LL
	// 9 +0.3431 LL
}
