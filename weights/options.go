// SPDX-License-Identifier: MIT
// Package: geolisa/weights
//
// options.go — functional options shared by the weight builders.
//
// Contract:
//   • Options are functional (type Option func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     builders themselves never panic.
//   • No hidden globals; everything flows through builderConfig.

package weights

import (
	"log/slog"
	"math"
)

// DefaultTolerance is the quantisation scale used when none is configured:
// coordinates equal to 1e-4 map to the same key.
const DefaultTolerance = 10000.0

// Option customises a builder before it runs.
type Option func(*builderConfig)

// builderConfig is the resolved option set of one builder.
type builderConfig struct {
	logger    *slog.Logger
	cutoff    float64
	hasCutoff bool
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes builder diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("weights: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}

// WithCutoff sets the distance band for the Distance builder: pairs with
// centroid distance strictly below d are neighbours. Ignored by contiguity
// builders. Panics unless d is finite and > 0.
func WithCutoff(d float64) Option {
	if !validCutoff(d) {
		panic("weights: WithCutoff(d) requires finite d > 0")
	}
	return func(c *builderConfig) {
		c.cutoff = d
		c.hasCutoff = true
	}
}

func validCutoff(d float64) bool {
	return !math.IsNaN(d) && !math.IsInf(d, 0) && d > 0
}

func validTolerance(s float64) bool {
	return !math.IsNaN(s) && !math.IsInf(s, 0) && s > 0
}
