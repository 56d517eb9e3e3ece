// SPDX-License-Identifier: MIT
// Package: geolisa/lisa
//
// lisa.go — local Moran's I with conditional permutation inference.
//
// Pipeline (strictly ordered):
//  1. standardise values (population mean / std)
//  2. row-standardise W (islands keep a zero row)
//  3. lag = W·z
//  4. quadrant of (z, lag)
//  5. I = z · lag · (N-1)/Σz²
//  6. conditional permutations → pseudo p-values and simulation summary
//
// Concurrency:
//   • Stages 1–5 are sequential and cheap.
//   • Stage 6 fans out over contiguous chunks of observations with an
//     errgroup bounded by Options.Workers. Each chunk owns its scratch and
//     writes only its own output slots.
//   • W, z and the lookup table are read-only while tasks run.

package lisa

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/geolisa/matrix"
	"github.com/katalvlaran/geolisa/weights"
	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// chunksPerWorker oversplits the observation range for load balance.
const chunksPerWorker = 4

// engine is the shared read-only state of one Compute call.
type engine struct {
	n     int
	z     []float64
	norm  float64
	w     *matrix.CSR
	opts  Options
	seed  int64
	table *PermutationTable
	res   *Result
}

// Compute runs LISA for values over w. len(values) must equal w.N().
//
// Errors: ErrNilWeights, ErrEmptyInput, ErrDimensionMismatch,
// ErrNonFiniteInput, ErrZeroVariance, ErrOptionViolation.
//
// Time:   O(N·P·k̄) for P permutations and mean neighbour count k̄.
// Memory: O(N + L), plus O(N·P) when KeepSimulations.
func Compute(w *weights.Matrix, values []float64, opts Options) (*Result, error) {
	const method = "Compute"
	start := time.Now()

	opts, err := opts.resolve()
	if err != nil {
		return nil, lisaErrorf(method, err)
	}
	if w == nil {
		return nil, lisaErrorf(method, ErrNilWeights)
	}
	if len(values) == 0 {
		return nil, lisaErrorf(method, ErrEmptyInput)
	}
	n := w.N()
	if len(values) != n {
		return nil, fmt.Errorf("%s: %d values for N=%d: %w", method, len(values), n, ErrDimensionMismatch)
	}

	z, err := standardize(values)
	if err != nil {
		return nil, lisaErrorf(method, err)
	}
	wr, err := w.ToSparse(weights.TransformRow)
	if err != nil {
		return nil, lisaErrorf(method, err)
	}
	lag, err := wr.MulVec(z)
	if err != nil {
		return nil, lisaErrorf(method, err)
	}

	e := &engine{
		n:    n,
		z:    z,
		norm: float64(n-1) / floats.Dot(z, z),
		w:    wr,
		opts: opts,
		seed: resolveSeed(opts.Seed),
		res:  newResult(n, opts),
	}
	e.res.Seed = e.seed
	e.res.Lags = lag
	for i := 0; i < n; i++ {
		e.res.Quadrants[i] = classify(z[i], lag[i])
		e.res.MoranValues[i] = z[i] * lag[i] * e.norm
	}

	if opts.Method == MethodLookup {
		counts := make([]int, n)
		for i := range counts {
			counts[i] = wr.RowNNZ(i)
		}
		e.table, err = NewPermutationTable(n, opts.Permutations, counts, e.seed, opts.Workers)
		if err != nil {
			return nil, lisaErrorf(method, err)
		}
	}

	if err = e.run(); err != nil {
		return nil, lisaErrorf(method, err)
	}

	opts.Logger.Debug("lisa computed",
		"n", n, "permutations", opts.Permutations, "method", opts.Method,
		"workers", opts.Workers, "seed", e.seed, "elapsed", time.Since(start))

	return e.res, nil
}

// standardize returns (x - mean) / popstd.
func standardize(x []float64) ([]float64, error) {
	mean, std := stat.PopMeanStdDev(x, nil)
	if math.IsNaN(mean) || math.IsInf(mean, 0) || math.IsNaN(std) || math.IsInf(std, 0) {
		return nil, ErrNonFiniteInput
	}
	if std == 0 {
		return nil, ErrZeroVariance
	}

	z := make([]float64, len(x))
	for i, v := range x {
		z[i] = (v - mean) / std
	}
	return z, nil
}

func newResult(n int, opts Options) *Result {
	r := &Result{
		MoranValues:  make([]float64, n),
		Quadrants:    make([]Quadrant, n),
		PValues:      make([]float64, n),
		ExpectedSim:  make([]float64, n),
		StdDevSim:    make([]float64, n),
		ZSim:         make([]float64, n),
		PZSim:        make([]float64, n),
		Permutations: opts.Permutations,
		Method:       opts.Method,
	}
	if opts.KeepSimulations {
		r.Simulations = make([][]float64, n)
	}
	return r
}

// run fans the permutation stage out over chunks of observations.
func (e *engine) run() error {
	workers := e.opts.Workers
	chunk := (e.n + workers*chunksPerWorker - 1) / (workers * chunksPerWorker)
	if chunk < 1 {
		chunk = 1
	}

	g := new(errgroup.Group)
	g.SetLimit(workers)
	for lo := 0; lo < e.n; lo += chunk {
		hi := min(lo+chunk, e.n)
		g.Go(func() error {
			sc := newScratch(e.n, e.opts.Permutations)
			for i := lo; i < hi; i++ {
				if err := e.observe(i, sc); err != nil {
					return err
				}
			}
			return nil
		})
	}

	return g.Wait()
}

// scratch is the per-task working memory.
type scratch struct {
	pool []int     // all-but-self pool, full method only
	idx  []int     // current draw, full method only
	sims []float64 // simulated statistics when they are not retained
}

func newScratch(n, permutations int) *scratch {
	pool := n - 1
	if pool < 0 {
		pool = 0
	}
	return &scratch{
		pool: make([]int, pool),
		idx:  make([]int, 0, pool),
		sims: make([]float64, permutations),
	}
}

// observe simulates observation i and fills its output slots.
func (e *engine) observe(i int, sc *scratch) error {
	cols, vals, err := e.w.Row(i)
	if err != nil {
		return err
	}
	k := len(cols)
	perms := e.opts.Permutations

	sims := sc.sims
	if e.res.Simulations != nil {
		sims = make([]float64, perms)
		e.res.Simulations[i] = sims
	}

	if k == 0 {
		// Islands have no lag to permute: every simulated statistic is zero
		// and the observation carries no evidence either way.
		clear(sims)
		e.res.PValues[i] = 1
		e.fillSummary(i, sims)
		return nil
	}

	scale := e.z[i] * e.norm
	var rng *rand.Rand
	if e.opts.Method == MethodFull {
		rng = streamRNG(e.seed, uint64(i))
		resetPool(sc.pool)
	}

	observed := e.res.MoranValues[i]
	var atOrAbove int
	for p := 0; p < perms; p++ {
		var draw []int
		if e.table != nil {
			if draw, err = e.table.Draw(k, p); err != nil {
				return err
			}
		} else {
			draw = sc.idx[:k]
			sampleInto(draw, sc.pool, rng)
		}

		var s float64
		for t, j := range draw {
			if j >= i {
				j++
			}
			s += vals[t] * e.z[j]
		}
		sims[p] = s * scale
		if sims[p] >= observed {
			atOrAbove++
		}
	}

	e.res.PValues[i] = pseudoP(atOrAbove, perms)
	e.fillSummary(i, sims)
	return nil
}

func (e *engine) fillSummary(i int, sims []float64) {
	s := summarize(sims, e.res.MoranValues[i])
	e.res.ExpectedSim[i] = s.mean
	e.res.StdDevSim[i] = s.std
	e.res.ZSim[i] = s.z
	e.res.PZSim[i] = s.pz
}
