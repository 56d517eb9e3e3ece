package weights

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Distance builds weights from centroid distances.
//
// Resolution:
//
//	cutoff  | useDistanceAsWeight | link when        | weight
//	--------+---------------------+------------------+---------
//	set     | false               | dist < cutoff    | 1.0
//	set     | true                | dist < cutoff    | dist
//	unset   | true                | always           | dist
//	unset   | false               | rejected by NewDistance
type Distance struct {
	useDistanceAsWeight bool
	cfg                 builderConfig
}

// NewDistance returns a Distance builder. Without WithCutoff,
// useDistanceAsWeight must be true, otherwise ErrNoAdjacencyRule.
func NewDistance(useDistanceAsWeight bool, opts ...Option) (*Distance, error) {
	cfg := newBuilderConfig(opts...)
	if !cfg.hasCutoff && !useDistanceAsWeight {
		return nil, weightsErrorf("NewDistance", ErrNoAdjacencyRule)
	}
	return &Distance{useDistanceAsWeight: useDistanceAsWeight, cfg: cfg}, nil
}

// Kind returns KindDistance.
func (b *Distance) Kind() Kind { return KindDistance }

// Cutoff returns the distance band and whether one is set.
func (b *Distance) Cutoff() (float64, bool) { return b.cfg.cutoff, b.cfg.hasCutoff }

// Build evaluates every unordered pair once and links it both ways with the
// same weight. Coincident centroids under distance-as-weight would give a
// zero weight and are left unlinked.
//
// Time:   O(N²).
// Memory: O(N + L).
func (b *Distance) Build(geoms []orb.Geometry) (*Matrix, error) {
	const method = "Distance.Build"
	if len(geoms) == 0 {
		return nil, weightsErrorf(method, ErrEmptyGeometrySet)
	}
	cents, err := centroids(method, geoms)
	if err != nil {
		return nil, err
	}

	m := newMatrix(len(geoms))
	var skipped int
	for i := 0; i < len(cents); i++ {
		for j := i + 1; j < len(cents); j++ {
			dist := planar.Distance(cents[i], cents[j])
			if b.cfg.hasCutoff && !(dist < b.cfg.cutoff) {
				continue
			}
			w := 1.0
			if b.useDistanceAsWeight {
				if dist == 0 {
					skipped++
					continue
				}
				w = dist
			}
			m.link(i, j, w)
		}
	}

	if skipped > 0 {
		b.cfg.logger.Debug("coincident centroids left unlinked", "pairs", skipped)
	}
	b.cfg.logger.Debug("weights built",
		"kind", KindDistance, "geometries", len(geoms), "cutoff", b.cfg.cutoff,
		"distance_as_weight", b.useDistanceAsWeight,
		"links", m.NumLinks(), "islands", len(m.Islands()))

	return m, nil
}
