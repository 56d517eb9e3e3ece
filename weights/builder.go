package weights

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/paulmach/orb"
	"gopkg.in/yaml.v3"
)

// Builder turns a geometry set into a weight Matrix.
type Builder interface {
	Kind() Kind
	Build(geoms []orb.Geometry) (*Matrix, error)
}

var (
	_ Builder = (*Queen)(nil)
	_ Builder = (*Rook)(nil)
	_ Builder = (*Distance)(nil)
)

// Kind names a builder family.
type Kind string

const (
	KindQueen    Kind = "queen"
	KindRook     Kind = "rook"
	KindDistance Kind = "distance"
)

// UnmarshalYAML accepts queen, rook or distance (case-insensitive).
func (k *Kind) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	incoming := Kind(strings.ToLower(strings.TrimSpace(s)))
	switch incoming {
	case KindQueen, KindRook, KindDistance:
		*k = incoming
		return nil
	default:
		return fmt.Errorf("kind %q: %w", s, ErrUnknownKind)
	}
}

// Config is the declarative form of a builder, loadable from YAML:
//
//	kind: distance
//	cutoff: 2500
//	use_distance_as_weight: true
type Config struct {
	Kind                Kind     `yaml:"kind"`
	Tolerance           float64  `yaml:"tolerance"`
	Cutoff              *float64 `yaml:"cutoff"`
	UseDistanceAsWeight bool     `yaml:"use_distance_as_weight"`
}

// DefaultConfig returns a Queen configuration at DefaultTolerance.
func DefaultConfig() Config {
	return Config{Kind: KindQueen, Tolerance: DefaultTolerance}
}

// LoadConfig decodes a YAML document over DefaultConfig. Unknown keys are
// rejected; an empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return cfg, nil
}

// NewBuilder instantiates the configured builder. opts are appended after
// the options derived from c, so WithLogger and friends still apply.
func (c Config) NewBuilder(opts ...Option) (Builder, error) {
	const method = "Config.NewBuilder"
	switch c.Kind {
	case KindQueen, KindRook:
		tol := c.Tolerance
		if tol == 0 {
			tol = DefaultTolerance
		}
		if c.Kind == KindQueen {
			return NewQueen(tol, opts...)
		}
		return NewRook(tol, opts...)
	case KindDistance:
		all := make([]Option, 0, len(opts)+1)
		if c.Cutoff != nil {
			if !validCutoff(*c.Cutoff) {
				return nil, fmt.Errorf("%s: cutoff %v: %w", method, *c.Cutoff, ErrInvalidCutoff)
			}
			all = append(all, WithCutoff(*c.Cutoff))
		}
		all = append(all, opts...)
		return NewDistance(c.UseDistanceAsWeight, all...)
	default:
		return nil, fmt.Errorf("%s: %q: %w", method, c.Kind, ErrUnknownKind)
	}
}
