package sim

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"qvecsim/circuit"
)

// ErrBadShots reports a negative shot count.
var ErrBadShots = errors.New("sim: negative shot count")

// Sampler draws measurement samples from final-state probabilities.
// The random source is explicit and injectable so runs are reproducible
// and concurrent samplers never share hidden state.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler returns a sampler over the given source.
func NewSampler(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// NewSeededSampler returns a sampler with a deterministic seed.
func NewSeededSampler(seed int64) *Sampler {
	return NewSampler(rand.NewSource(seed))
}

// Shots simulates the circuit once and draws count independent samples,
// with replacement, from the categorical distribution given by the
// squared amplitude magnitudes. Each sample is a bit-string label of
// length NumQubits, most significant bit first, zero-padded.
func (s *Sampler) Shots(c *circuit.Circuit, count int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadShots, count)
	}

	probs := Probabilities(Run(c))
	cumulative := make([]float64, len(probs))
	total := 0.0
	for i, p := range probs {
		total += p
		cumulative[i] = total
	}

	n := c.NumQubits()
	labels := make([]string, count)
	for i := range labels {
		r := s.rng.Float64() * total
		idx := sort.SearchFloat64s(cumulative, r)
		if idx >= len(probs) {
			idx = len(probs) - 1
		}
		labels[i] = fmt.Sprintf("%0*b", n, idx)
	}
	return labels, nil
}
