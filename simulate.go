package main

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"
)

// ErrInvalidShotCount reports a sampling request with shots <= 0.
var ErrInvalidShotCount = errors.New("invalid shot count")

// probSumTolerance bounds the floating-point drift allowed in a normalized
// distribution.
const probSumTolerance = 1e-9

// bitString renders basis index m over n qubits, qubit 0 leftmost.
func bitString(m, n int) string {
	buf := make([]byte, n)
	for q := 0; q < n; q++ {
		if m&(1<<q) != 0 {
			buf[q] = '1'
		} else {
			buf[q] = '0'
		}
	}
	return string(buf)
}

// Distribution returns the outcome probabilities over the first n qubits of
// the final state, tracing out the auxiliary: for each input pattern the
// squared magnitudes of both auxiliary settings are summed. Every one of the
// 2^n bit-strings gets an entry.
func Distribution(s *StateVector, n int) map[string]float64 {
	aux := 1 << n
	dist := make(map[string]float64, aux)
	for m := 0; m < aux; m++ {
		p := s.probability(m) + s.probability(m|aux)
		dist[bitString(m, n)] = p
	}
	return dist
}

// Sample draws shots independent categorical samples from the distribution.
// A seeded rng makes the draw reproducible; a nil rng uses process entropy.
func Sample(dist map[string]float64, shots int, rng *rand.Rand) (map[string]int, error) {
	if shots <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidShotCount, shots)
	}
	if len(dist) == 0 {
		return nil, errors.New("empty distribution")
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	// Fixed outcome order so equal seeds give equal draws regardless of map
	// iteration order.
	outcomes := make([]string, 0, len(dist))
	for k := range dist {
		outcomes = append(outcomes, k)
	}
	sort.Strings(outcomes)

	cumulative := make([]float64, len(outcomes))
	total := 0.0
	for i, k := range outcomes {
		total += dist[k]
		cumulative[i] = total
	}

	counts := make(map[string]int)
	for shot := 0; shot < shots; shot++ {
		r := rng.Float64() * total
		idx := sort.SearchFloat64s(cumulative, r)
		for idx < len(outcomes) && dist[outcomes[idx]] == 0 {
			idx++
		}
		if idx >= len(outcomes) {
			idx = len(outcomes) - 1
		}
		counts[outcomes[idx]]++
	}
	return counts, nil
}
