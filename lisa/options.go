package lisa

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"gopkg.in/yaml.v3"
)

// DefaultPermutations is the permutation count used by DefaultOptions.
const DefaultPermutations = 999

// Option configures Options via functional arguments. An invalid Option is
// recorded and surfaced as ErrOptionViolation by Compute.
type Option func(*Options)

// Options holds the LISA engine parameters.
type Options struct {
	// Permutations is the number of conditional permutations per observation (≥ 1).
	Permutations int

	// KeepSimulations retains every simulated statistic in Result.Simulations.
	KeepSimulations bool

	// Method selects full or lookup permutation sampling.
	Method PermutationMethod

	// Seed fixes the random streams; 0 draws a fresh seed per call.
	// The seed actually used is reported in Result.Seed.
	Seed int64

	// Workers bounds parallelism; 0 means runtime.GOMAXPROCS(0).
	Workers int

	// Logger receives debug records; nil discards them.
	Logger *slog.Logger

	err error
}

// DefaultOptions returns:
//   - 999 permutations
//   - lookup sampling
//   - no retained simulations
//   - a fresh seed per call
//   - GOMAXPROCS workers
//   - a discarding logger
func DefaultOptions() Options {
	return Options{
		Permutations: DefaultPermutations,
		Method:       MethodLookup,
		Workers:      runtime.GOMAXPROCS(0),
		Logger:       slog.New(slog.DiscardHandler),
	}
}

// NewOptions applies opts on top of DefaultOptions.
func NewOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithPermutations sets the permutation count. p < 1 is invalid.
func WithPermutations(p int) Option {
	return func(o *Options) {
		if p < 1 {
			o.err = fmt.Errorf("%w: permutations must be >= 1 (%d)", ErrOptionViolation, p)
			return
		}
		o.Permutations = p
	}
}

// WithKeepSimulations retains the simulated statistics.
func WithKeepSimulations(keep bool) Option {
	return func(o *Options) { o.KeepSimulations = keep }
}

// WithMethod selects the permutation method.
func WithMethod(m PermutationMethod) Option {
	return func(o *Options) {
		if !m.valid() {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, m)
			return
		}
		o.Method = m
	}
}

// WithSeed fixes the base seed; 0 restores per-call random seeding.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers bounds parallelism. n == 0 means GOMAXPROCS; n < 0 is invalid.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithLogger routes debug records to l; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolve validates o and fills zero-valued Workers and Logger.
func (o Options) resolve() (Options, error) {
	if o.err != nil {
		return o, o.err
	}
	if o.Permutations < 1 {
		return o, fmt.Errorf("%w: permutations must be >= 1 (%d)", ErrOptionViolation, o.Permutations)
	}
	if !o.Method.valid() {
		return o, fmt.Errorf("%w: %w", ErrOptionViolation, ErrUnknownMethod)
	}
	if o.Workers < 0 {
		return o, fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, o.Workers)
	}
	if o.Workers == 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.DiscardHandler)
	}
	return o, nil
}

// optionsDoc is the YAML form of Options; absent keys keep their defaults.
type optionsDoc struct {
	Permutations    *int               `yaml:"permutations"`
	KeepSimulations *bool              `yaml:"keep_simulations"`
	Method          *PermutationMethod `yaml:"permutation_method"`
	Seed            *int64             `yaml:"seed"`
	Workers         *int               `yaml:"workers"`
}

// LoadOptions decodes a YAML document such as
//
//	permutations: 9999
//	permutation_method: full
//	seed: 42
//
// over DefaultOptions, then applies opts. Unknown keys are rejected.
func LoadOptions(r io.Reader, opts ...Option) (Options, error) {
	var doc optionsDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, lisaErrorf("LoadOptions", err)
	}

	var fromDoc []Option
	if doc.Permutations != nil {
		fromDoc = append(fromDoc, WithPermutations(*doc.Permutations))
	}
	if doc.KeepSimulations != nil {
		fromDoc = append(fromDoc, WithKeepSimulations(*doc.KeepSimulations))
	}
	if doc.Method != nil {
		fromDoc = append(fromDoc, WithMethod(*doc.Method))
	}
	if doc.Seed != nil {
		fromDoc = append(fromDoc, WithSeed(*doc.Seed))
	}
	if doc.Workers != nil {
		fromDoc = append(fromDoc, WithWorkers(*doc.Workers))
	}

	o := NewOptions(append(fromDoc, opts...)...)
	if o.err != nil {
		return Options{}, lisaErrorf("LoadOptions", o.err)
	}
	return o, nil
}
