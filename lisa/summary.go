package lisa

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// pseudoP folds the count of simulations at or above the observed value
// into a two-sided pseudo p-value: (min(c, P-c) + 1) / (P + 1).
func pseudoP(atOrAbove, permutations int) float64 {
	c := atOrAbove
	if rest := permutations - c; rest < c {
		c = rest
	}
	return float64(c+1) / float64(permutations+1)
}

// simSummary describes the simulated distribution of one observation.
type simSummary struct {
	mean, std, z, pz float64
}

// summarize computes mean, population std, the standardised observed
// statistic and its one-tailed normal p-value.
func summarize(sims []float64, observed float64) simSummary {
	mean, err := stats.Mean(sims)
	if err != nil {
		return simSummary{pz: 0.5}
	}
	std, err := stats.StandardDeviationPopulation(sims)
	if err != nil {
		return simSummary{mean: mean, pz: 0.5}
	}

	var z float64
	if std > 0 {
		z = (observed - mean) / std
	}
	return simSummary{mean: mean, std: std, z: z, pz: 1 - distuv.UnitNormal.CDF(math.Abs(z))}
}
