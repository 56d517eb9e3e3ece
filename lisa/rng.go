// rng.go — RNG utilities for the permutation engine.
//
// Every parallel task owns its *rand.Rand; no source is shared between
// goroutines. Streams are derived from (base seed, stream id) so a fixed
// seed reproduces the same draws regardless of scheduling or worker count.

package lisa

import "math/rand"

// tableStreamBase separates lookup-table streams from per-observation streams.
const tableStreamBase uint64 = 1 << 63

// resolveSeed returns seed, or a fresh random seed when seed == 0.
func resolveSeed(seed int64) int64 {
	for seed == 0 {
		seed = rand.Int63()
	}
	return seed
}

// deriveSeed mixes a parent seed and a stream identifier with a
// SplitMix64 finalizer.
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// streamRNG returns the deterministic stream of id under base.
func streamRNG(base int64, stream uint64) *rand.Rand {
	return rand.New(rand.NewSource(deriveSeed(base, stream)))
}

// resetPool fills pool with 0..len(pool)-1.
func resetPool(pool []int) {
	for i := range pool {
		pool[i] = i
	}
}

// sampleInto writes len(dst) distinct pool entries into dst by a partial
// Fisher–Yates shuffle of pool. pool stays a permutation of its values, so
// it can be reused for the next draw without resetting.
//
// Complexity: O(len(dst)).
func sampleInto(dst, pool []int, rng *rand.Rand) {
	n := len(pool)
	for t := range dst {
		j := t + rng.Intn(n-t)
		pool[t], pool[j] = pool[j], pool[t]
		dst[t] = pool[t]
	}
}
