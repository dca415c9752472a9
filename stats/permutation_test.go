package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func permSum(perm []int) float64 {
	s := 0.0
	for i, p := range perm {
		s += float64(i * p)
	}
	return s
}

func TestNullDistributionDeterministic(t *testing.T) {
	cfg := PermutationConfig{Reps: 50, Seed: 42}

	a, err := NullDistribution(cfg, 10, permSum)
	require.NoError(t, err)
	b, err := NullDistribution(cfg, 10, permSum)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestNullDistributionWorkerIndependent(t *testing.T) {
	serial, err := NullDistribution(PermutationConfig{Reps: 40, Seed: 7, Workers: 1}, 8, permSum)
	require.NoError(t, err)
	parallel, err := NullDistribution(PermutationConfig{Reps: 40, Seed: 7, Workers: 4}, 8, permSum)
	require.NoError(t, err)

	assert.Equal(t, serial, parallel)
}

func TestNullDistributionSeedsDiffer(t *testing.T) {
	a, err := NullDistribution(PermutationConfig{Reps: 20, Seed: 1}, 10, permSum)
	require.NoError(t, err)
	b, err := NullDistribution(PermutationConfig{Reps: 20, Seed: 2}, 10, permSum)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestNullDistributionInvalidReps(t *testing.T) {
	for _, reps := range []int{0, -1} {
		_, err := NullDistribution(PermutationConfig{Reps: reps, Seed: 1}, 10, permSum)

		var invalid *InvalidInputError
		require.ErrorAs(t, err, &invalid)
	}
}

func TestPValue(t *testing.T) {
	null := []float64{0.5, 1.5, 1.0, 0.2}

	// Two null values >= 1.0, so (2+1)/(4+1).
	assert.InDelta(t, 3.0/5.0, PValue(1.0, null), 1e-12)

	// Nothing exceeds the observed statistic: the continuity correction
	// keeps the estimate at 1/(reps+1) rather than zero.
	assert.InDelta(t, 1.0/5.0, PValue(2.0, null), 1e-12)

	// Everything exceeds it.
	assert.InDelta(t, 1.0, PValue(0.0, null), 1e-12)
}

func TestPValueRange(t *testing.T) {
	null, err := NullDistribution(PermutationConfig{Reps: 100, Seed: 3}, 12, permSum)
	require.NoError(t, err)

	p := PValue(null[0], null)
	assert.GreaterOrEqual(t, p, 1.0/101.0)
	assert.LessOrEqual(t, p, 1.0)
}
