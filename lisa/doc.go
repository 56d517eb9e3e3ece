// SPDX-License-Identifier: MIT

// Package lisa computes Local Indicators of Spatial Association: the local
// Moran's I statistic of every observation, its Moran scatterplot quadrant
// and a pseudo p-value from a conditional permutation test.
//
// Given a weights.Matrix W over N observations and N values x:
//
//	z   = (x - mean(x)) / popstd(x)
//	lag = rowstd(W) · z
//	I_i = z_i · lag_i · (N-1) / Σ z²
//
// Significance: for each observation i with k_i neighbours, Permutations
// times draw k_i distinct other observations, weight their z values by i's
// own row-standardised weights and scale by z_i·(N-1)/Σz². With c the number
// of simulated values at or above I_i, the pseudo p-value is
//
//	p_i = (min(c, P-c) + 1) / (P + 1)
//
// so p_i lies in [1/(P+1), 1]. Islands (k_i = 0) get p_i = 1.
//
// Two sampling methods are offered. MethodFull draws fresh samples for every
// observation. MethodLookup (the default) draws one table per neighbour
// count and reuses it for every observation with that count; it is faster
// but observations sharing a count are not permuted independently.
//
// Work is spread over Options.Workers goroutines. With a non-zero
// Options.Seed every random stream is derived from (seed, task), so results
// are identical for any worker count.
//
// Example:
//
//	res, err := lisa.Compute(w, values, lisa.NewOptions(lisa.WithSeed(42)))
//	if err != nil { ... }
//	clusters := res.Clusters(0.05)
package lisa
