package main

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitString(t *testing.T) {
	tests := []struct {
		m, n int
		want string
	}{
		{m: 0, n: 1, want: "0"},
		{m: 1, n: 1, want: "1"},
		{m: 0, n: 3, want: "000"},
		{m: 1, n: 3, want: "100"}, // qubit 0 leftmost
		{m: 4, n: 3, want: "001"},
		{m: 7, n: 3, want: "111"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bitString(tt.m, tt.n))
	}
}

func TestDistributionCoversAllPatterns(t *testing.T) {
	state, err := RunDeutschJozsa(3, OracleBalanced)
	require.NoError(t, err)

	dist := Distribution(state, 3)
	require.Len(t, dist, 8)

	total := 0.0
	for _, p := range dist {
		assert.GreaterOrEqual(t, p, 0.0)
		total += p
	}
	assert.InDelta(t, 1.0, total, probSumTolerance)
}

func TestDistributionTracesOutAuxiliary(t *testing.T) {
	// H on both qubits of a 2-qubit register: the input qubit marginal is
	// uniform whatever the auxiliary does.
	s := NewStateVector(2)
	require.NoError(t, s.ApplyH(0))
	require.NoError(t, s.ApplyH(1))

	dist := Distribution(s, 1)
	assert.InDelta(t, 0.5, dist["0"], probSumTolerance)
	assert.InDelta(t, 0.5, dist["1"], probSumTolerance)
}

func TestSampleCounts(t *testing.T) {
	dist := map[string]float64{"00": 0.25, "01": 0.25, "10": 0.5, "11": 0}
	const shots = 2000

	counts, err := Sample(dist, shots, rand.New(rand.NewSource(11)))
	require.NoError(t, err)

	total := 0
	for key, n := range counts {
		assert.Positive(t, n)
		assert.Greater(t, dist[key], 0.0, "sampled outcome %q has zero probability", key)
		total += n
	}
	assert.Equal(t, shots, total)
	assert.NotContains(t, counts, "11")
}

func TestSampleReproducible(t *testing.T) {
	dist := map[string]float64{"0": 0.3, "1": 0.7}

	first, err := Sample(dist, 500, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	second, err := Sample(dist, 500, rand.New(rand.NewSource(42)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSampleInvalidShots(t *testing.T) {
	dist := map[string]float64{"0": 1}
	for _, shots := range []int{0, -1, -100} {
		_, err := Sample(dist, shots, rand.New(rand.NewSource(1)))
		assert.ErrorIs(t, err, ErrInvalidShotCount, "shots=%d", shots)
	}
}

func TestSampleDeterministicDistribution(t *testing.T) {
	// A point mass always yields that single outcome, for any shot count.
	dist := map[string]float64{"000": 0, "111": 1}
	counts, err := Sample(dist, 1024, nil)
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"111": 1024}, counts)
}
