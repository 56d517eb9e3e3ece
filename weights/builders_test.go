package weights_test

import (
	"bytes"
	"log/slog"
	"math"
	"testing"

	"github.com/katalvlaran/geolisa/weights"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func neighbors(t *testing.T, w *weights.Matrix, id int) []int {
	t.Helper()
	ns, err := w.Neighbors(id)
	require.NoError(t, err)
	return ns
}

func TestQuantize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		v     float64
		scale float64
		want  int64
	}{
		{"negative_floors_down", -20.23423, 10000, -202343},
		{"positive", 20.23423, 10000, 202342},
		{"zero", 0, 10000, 0},
		{"coarse", 1.99, 1, 1},
		{"coarse_negative", -0.01, 1, -1},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, weights.Quantize(tc.v, tc.scale), tc.name)
	}

	q := weights.QuantizePoint(orb.Point{-20.23423, 1.5}, 10)
	assert.Equal(t, weights.QuantizedCoord{X: -203, Y: 15}, q)
}

func TestQueen_Squares(t *testing.T) {
	t.Parallel()

	q, err := weights.NewQueen(weights.DefaultTolerance)
	require.NoError(t, err)
	w, err := q.Build(squares())
	require.NoError(t, err)

	assert.Equal(t, 4, w.N())
	assert.Equal(t, []int{1, 3}, neighbors(t, w, 0))
	assert.Equal(t, []int{0, 3}, neighbors(t, w, 1))
	assert.Equal(t, []int{}, neighbors(t, w, 2), "island has an empty entry")
	assert.Equal(t, []int{0, 1}, neighbors(t, w, 3))
	assert.True(t, w.IsSymmetric())
	assert.Equal(t, []int{2}, w.Islands())

	v, ok := w.Weight(0, 3)
	assert.True(t, ok)
	assert.Equal(t, 1.0, v)
}

func TestRook_Squares(t *testing.T) {
	t.Parallel()

	r, err := weights.NewRook(weights.DefaultTolerance)
	require.NoError(t, err)
	w, err := r.Build(squares())
	require.NoError(t, err)

	assert.Equal(t, []int{3}, neighbors(t, w, 0), "0 and 1 share only a vertex")
	assert.Equal(t, []int{3}, neighbors(t, w, 1))
	assert.Equal(t, []int{}, neighbors(t, w, 2))
	assert.Equal(t, []int{0, 1}, neighbors(t, w, 3))
	assert.True(t, w.IsSymmetric())
}

func TestRook_SubsetOfQueen(t *testing.T) {
	t.Parallel()

	geoms := grid(3)
	q, _ := weights.NewQueen(weights.DefaultTolerance)
	r, _ := weights.NewRook(weights.DefaultTolerance)
	wq, err := q.Build(geoms)
	require.NoError(t, err)
	wr, err := r.Build(geoms)
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 8}, neighbors(t, wq, 4))
	assert.Equal(t, []int{1, 3, 5, 7}, neighbors(t, wr, 4), "opposite windings still share edges")
	assert.Equal(t, []int{1, 3}, neighbors(t, wr, 0))

	for id := 0; id < len(geoms); id++ {
		for _, d := range neighbors(t, wr, id) {
			ok, err := wq.AreNeighbors(id, d)
			require.NoError(t, err)
			assert.True(t, ok, "rook pair (%d,%d) missing from queen", id, d)
		}
	}
}

func TestContiguity_Points(t *testing.T) {
	t.Parallel()

	geoms := []orb.Geometry{
		orb.Point{0, 0},
		orb.Point{0.00001, 0}, // same key at scale 1e4
		orb.Point{0.5, 0},
		orb.MultiPoint{{3, 3}, {0.5, 0}},
	}
	q, _ := weights.NewQueen(weights.DefaultTolerance)
	wq, err := q.Build(geoms)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, neighbors(t, wq, 0))
	assert.Equal(t, []int{3}, neighbors(t, wq, 2))

	r, _ := weights.NewRook(weights.DefaultTolerance)
	wr, err := r.Build(geoms)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, wr.Islands(), "points have no edges")
}

func TestContiguity_MultiPolygon(t *testing.T) {
	t.Parallel()

	// One MultiPolygon whose two parts touch both neighbours.
	geoms := []orb.Geometry{
		orb.MultiPolygon{
			{{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}}},
			{{{5, 0}, {6, 0}, {6, 1}, {5, 1}, {5, 0}}},
		},
		orb.Polygon{{{1, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 0}}},
		orb.Polygon{{{6, 0}, {7, 0}, {7, 1}, {6, 1}, {6, 0}}},
	}
	r, _ := weights.NewRook(weights.DefaultTolerance)
	w, err := r.Build(geoms)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, neighbors(t, w, 0))
	assert.Equal(t, []int{0}, neighbors(t, w, 1))
}

func TestContiguity_Errors(t *testing.T) {
	t.Parallel()

	for _, s := range []float64{0, -1, math.NaN(), math.Inf(1)} {
		_, err := weights.NewQueen(s)
		assert.ErrorIs(t, err, weights.ErrInvalidTolerance)
		_, err = weights.NewRook(s)
		assert.ErrorIs(t, err, weights.ErrInvalidTolerance)
	}

	q, _ := weights.NewQueen(weights.DefaultTolerance)
	_, err := q.Build(nil)
	assert.ErrorIs(t, err, weights.ErrEmptyGeometrySet)

	_, err = q.Build([]orb.Geometry{orb.Point{0, 0}, orb.LineString{{0, 0}, {1, 1}}})
	assert.ErrorIs(t, err, weights.ErrUnsupportedGeometry)
	assert.Contains(t, err.Error(), "geometry 1")

	r, _ := weights.NewRook(weights.DefaultTolerance)
	_, err = r.Build([]orb.Geometry{nil})
	assert.ErrorIs(t, err, weights.ErrUnsupportedGeometry)
}

func TestDistance_Resolution(t *testing.T) {
	t.Parallel()

	t.Run("cutoff_binary", func(t *testing.T) {
		t.Parallel()
		b, err := weights.NewDistance(false, weights.WithCutoff(20))
		require.NoError(t, err)
		w, err := b.Build(threePoints())
		require.NoError(t, err)
		assert.Equal(t, []int{2}, neighbors(t, w, 0))
		assert.Equal(t, []int{}, neighbors(t, w, 1))
		assert.Equal(t, []int{0}, neighbors(t, w, 2))
		v, _ := w.Weight(2, 0)
		assert.Equal(t, 1.0, v)
	})

	t.Run("cutoff_is_strict", func(t *testing.T) {
		t.Parallel()
		b, err := weights.NewDistance(false, weights.WithCutoff(1))
		require.NoError(t, err)
		w, err := b.Build(threePoints())
		require.NoError(t, err)
		assert.Equal(t, 0, w.NumLinks(), "distance 1 is not < 1")
	})

	t.Run("distance_weight_no_cutoff", func(t *testing.T) {
		t.Parallel()
		b, err := weights.NewDistance(true)
		require.NoError(t, err)
		w, err := b.Build(threePoints())
		require.NoError(t, err)
		assert.Equal(t, 6, w.NumLinks())
		v01, _ := w.Weight(0, 1)
		v10, _ := w.Weight(1, 0)
		assert.InDelta(t, math.Sqrt(99*99+4), v01, 1e-12)
		assert.Equal(t, v01, v10, "both directions carry the identical weight")
		v02, _ := w.Weight(0, 2)
		assert.InDelta(t, 1.0, v02, 1e-12)
		assert.True(t, w.IsSymmetric())
	})

	t.Run("no_rule", func(t *testing.T) {
		t.Parallel()
		_, err := weights.NewDistance(false)
		assert.ErrorIs(t, err, weights.ErrNoAdjacencyRule)
	})
}

func TestDistance_Centroids(t *testing.T) {
	t.Parallel()

	b, err := weights.NewDistance(true, weights.WithCutoff(2))
	require.NoError(t, err)
	w, err := b.Build(squares())
	require.NoError(t, err)
	// Centroids (1.5,1.5), (0.5,0.5), (15,15), (0.5,1.5).
	assert.Equal(t, []int{1, 3}, neighbors(t, w, 0))
	v, _ := w.Weight(0, 3)
	assert.InDelta(t, 1.0, v, 1e-9)
	v, _ = w.Weight(0, 1)
	assert.InDelta(t, math.Sqrt2, v, 1e-9)

	_, err = b.Build([]orb.Geometry{orb.Point{0, 0}, orb.Polygon{}})
	assert.ErrorIs(t, err, weights.ErrDegenerateGeometry)
	_, err = b.Build(nil)
	assert.ErrorIs(t, err, weights.ErrEmptyGeometrySet)
}

func TestDistance_CoincidentCentroidsLogged(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b, err := weights.NewDistance(true, weights.WithLogger(logger))
	require.NoError(t, err)

	w, err := b.Build([]orb.Geometry{orb.Point{1, 1}, orb.Point{1, 1}, orb.Point{4, 5}})
	require.NoError(t, err)
	ok, _ := w.AreNeighbors(0, 1)
	assert.False(t, ok, "zero distance is not a link")
	v, _ := w.Weight(0, 2)
	assert.InDelta(t, 5.0, v, 1e-12)
	assert.Contains(t, buf.String(), "coincident centroids")
	assert.Contains(t, buf.String(), "kind=distance")
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { weights.WithCutoff(0) })
	assert.Panics(t, func() { weights.WithCutoff(math.NaN()) })
	assert.Panics(t, func() { weights.WithLogger(nil) })
}
