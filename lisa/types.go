package lisa

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Quadrant is the Moran scatterplot quadrant of an observation, from the
// signs of its standardised value z and its spatial lag. Zero counts as
// non-negative on both axes.
type Quadrant int

const (
	// NotSignificant is used by Result.Clusters for observations whose
	// pseudo p-value exceeds the chosen alpha.
	NotSignificant Quadrant = iota
	HH                      // z ≥ 0, lag ≥ 0
	LH                      // z < 0, lag ≥ 0
	LL                      // z < 0, lag < 0
	HL                      // z ≥ 0, lag < 0
)

var quadrantNames = [...]string{"NS", "HH", "LH", "LL", "HL"}

// classify returns the quadrant of (z, lag).
func classify(z, lag float64) Quadrant {
	switch {
	case z >= 0 && lag >= 0:
		return HH
	case z >= 0:
		return HL
	case lag >= 0:
		return LH
	default:
		return LL
	}
}

func (q Quadrant) String() string {
	if q >= 0 && int(q) < len(quadrantNames) {
		return quadrantNames[q]
	}
	return fmt.Sprintf("Quadrant(%d)", int(q))
}

// MarshalText renders the two-letter code.
func (q Quadrant) MarshalText() ([]byte, error) {
	if q < 0 || int(q) >= len(quadrantNames) {
		return nil, fmt.Errorf("lisa: invalid quadrant %d", int(q))
	}
	return []byte(quadrantNames[q]), nil
}

// UnmarshalText parses a two-letter code.
func (q *Quadrant) UnmarshalText(b []byte) error {
	s := strings.ToUpper(string(b))
	for i, name := range quadrantNames {
		if name == s {
			*q = Quadrant(i)
			return nil
		}
	}
	return fmt.Errorf("lisa: unknown quadrant %q", string(b))
}

// PermutationMethod selects how conditional permutations are drawn.
type PermutationMethod int

const (
	// MethodLookup draws one table of permutations per neighbour count and
	// shares it between all observations with that count. Observations with
	// equal counts are therefore not permuted independently; this trades
	// exactness for throughput.
	MethodLookup PermutationMethod = iota
	// MethodFull draws fresh samples for every permutation of every observation.
	MethodFull
)

func (m PermutationMethod) String() string {
	switch m {
	case MethodLookup:
		return "lookup"
	case MethodFull:
		return "full"
	default:
		return fmt.Sprintf("PermutationMethod(%d)", int(m))
	}
}

func (m PermutationMethod) valid() bool {
	return m == MethodLookup || m == MethodFull
}

// ParseMethod accepts "full" or "lookup" in any case.
func ParseMethod(s string) (PermutationMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "lookup":
		return MethodLookup, nil
	case "full":
		return MethodFull, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// MarshalText renders "full" or "lookup".
func (m PermutationMethod) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%d: %w", int(m), ErrUnknownMethod)
	}
	return []byte(m.String()), nil
}

// UnmarshalText is the inverse of MarshalText.
func (m *PermutationMethod) UnmarshalText(b []byte) error {
	parsed, err := ParseMethod(string(b))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

// UnmarshalYAML decodes a scalar method name.
func (m *PermutationMethod) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	return m.UnmarshalText([]byte(s))
}

// Result holds the per-observation LISA output. All slices have length N
// and are indexed by observation id.
type Result struct {
	MoranValues []float64  `json:"moran_val"`
	Quadrants   []Quadrant `json:"quads"`
	Lags        []float64  `json:"lags"`
	PValues     []float64  `json:"p_vals"`
	// Simulations[i] holds the Permutations simulated statistics of
	// observation i; nil unless Options.KeepSimulations.
	Simulations [][]float64 `json:"sims,omitempty"`

	ExpectedSim []float64 `json:"ei_sim"`  // mean of the simulated statistics
	StdDevSim   []float64 `json:"sei_sim"` // population std of the simulated statistics
	ZSim        []float64 `json:"z_sim"`   // (I - ExpectedSim) / StdDevSim, 0 when the std is 0
	PZSim       []float64 `json:"p_z_sim"` // one-tailed normal p-value of |ZSim|

	Permutations int               `json:"permutations"`
	Method       PermutationMethod `json:"permutation_method"`
	Seed         int64             `json:"seed"`
}

// N returns the number of observations.
func (r *Result) N() int { return len(r.MoranValues) }

// Significant reports, per observation, whether PValues[i] ≤ alpha.
func (r *Result) Significant(alpha float64) []bool {
	out := make([]bool, len(r.PValues))
	for i, p := range r.PValues {
		out[i] = p <= alpha
	}
	return out
}

// Clusters returns the quadrant of every significant observation and
// NotSignificant for the rest (the usual LISA cluster map).
func (r *Result) Clusters(alpha float64) []Quadrant {
	out := make([]Quadrant, len(r.Quadrants))
	for i, q := range r.Quadrants {
		if r.PValues[i] <= alpha {
			out[i] = q
		}
	}
	return out
}
