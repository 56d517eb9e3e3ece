package lisa

import (
	"fmt"
	"sort"
	"sync"

	"golang.org/x/sync/errgroup"
)

// PermutationTable holds, for every tabulated neighbour count k, a fixed
// sequence of Permutations draws of k distinct indices into the
// "all-but-self" pool [0, N-1). Index j in the pool of observation i
// stands for observation j when j < i, and for j+1 otherwise.
//
// A table is read-only after construction and safe for concurrent use.
type PermutationTable struct {
	n            int
	permutations int
	draws        map[int][]int // k → Permutations·k indices, draw p at [p·k, (p+1)·k)
}

// NewPermutationTable draws the table for the distinct positive counts in
// counts. Each count is filled by its own task with its own stream derived
// from seed, so the result depends only on (n, permutations, counts, seed).
// workers bounds concurrency; 0 leaves it unbounded.
func NewPermutationTable(n, permutations int, counts []int, seed int64, workers int) (*PermutationTable, error) {
	const method = "NewPermutationTable"
	if permutations < 1 {
		return nil, fmt.Errorf("%s: %w: permutations must be >= 1 (%d)", method, ErrOptionViolation, permutations)
	}
	pool := n - 1

	distinct := make(map[int]struct{})
	for _, k := range counts {
		if k < 0 || k > pool {
			return nil, fmt.Errorf("%s: k=%d with N=%d: %w", method, k, n, ErrNeighborCount)
		}
		if k > 0 {
			distinct[k] = struct{}{}
		}
	}

	t := &PermutationTable{n: n, permutations: permutations, draws: make(map[int][]int, len(distinct))}
	var mu sync.Mutex
	g := new(errgroup.Group)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for k := range distinct {
		g.Go(func() error {
			rng := streamRNG(seed, tableStreamBase|uint64(k))
			buf := make([]int, pool)
			resetPool(buf)
			out := make([]int, permutations*k)
			for p := 0; p < permutations; p++ {
				sampleInto(out[p*k:(p+1)*k], buf, rng)
			}
			mu.Lock()
			t.draws[k] = out
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, lisaErrorf(method, err)
	}

	return t, nil
}

// N returns the observation count the table was drawn for.
func (t *PermutationTable) N() int { return t.n }

// Permutations returns the number of draws per neighbour count.
func (t *PermutationTable) Permutations() int { return t.permutations }

// Counts returns the tabulated neighbour counts in ascending order.
func (t *PermutationTable) Counts() []int {
	out := make([]int, 0, len(t.draws))
	for k := range t.draws {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

// Draw returns draw p for neighbour count k. The slice aliases the table
// and must not be modified.
func (t *PermutationTable) Draw(k, p int) ([]int, error) {
	d, ok := t.draws[k]
	if !ok {
		return nil, fmt.Errorf("Draw: k=%d: %w", k, ErrNeighborCount)
	}
	if p < 0 || p >= t.permutations {
		return nil, fmt.Errorf("Draw: p=%d (permutations=%d): %w", p, t.permutations, ErrOptionViolation)
	}
	return d[p*k : (p+1)*k : (p+1)*k], nil
}
