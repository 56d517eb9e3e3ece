package weights_test

import (
	"github.com/paulmach/orb"
)

// squares returns four unit-ish squares: 0, 1 and 3 meet around (1,1),
// 0–3 and 1–3 share an edge, 2 is far away.
func squares() []orb.Geometry {
	return []orb.Geometry{
		orb.Polygon{{{1, 1}, {2, 1}, {2, 2}, {1, 2}, {1, 1}}},
		orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}, // open ring
		orb.Polygon{{{10, 10}, {20, 10}, {20, 20}, {10, 20}, {10, 10}}},
		orb.Polygon{{{0, 1}, {1, 1}, {1, 2}, {0, 2}, {0, 1}}},
	}
}

// grid returns an n×n lattice of unit squares in row-major order. Odd cells
// are wound clockwise, even cells counter-clockwise.
func grid(n int) []orb.Geometry {
	out := make([]orb.Geometry, 0, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			fx, fy := float64(x), float64(y)
			ring := orb.Ring{{fx, fy}, {fx + 1, fy}, {fx + 1, fy + 1}, {fx, fy + 1}, {fx, fy}}
			if (x+y)%2 == 1 {
				ring.Reverse()
			}
			out = append(out, orb.Polygon{ring})
		}
	}
	return out
}

// threePoints: 0 and 2 are one unit apart, 1 is far from both.
func threePoints() []orb.Geometry {
	return []orb.Geometry{orb.Point{1, 2}, orb.Point{100, 0}, orb.Point{2, 2}}
}
