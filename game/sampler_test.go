package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandSampler(t *testing.T) {
	sampler := NewRandSampler(9)

	for _, k := range []int{0, 1, 10, 64} {
		sample := sampler.Sample(64, k)
		require.Len(t, sample, k)

		seen := make(map[int]bool)
		for _, idx := range sample {
			require.GreaterOrEqual(t, idx, 0)
			require.Less(t, idx, 64)
			require.False(t, seen[idx], "duplicate index %d", idx)
			seen[idx] = true
		}
	}

	t.Run("same seed, same sample", func(t *testing.T) {
		assert.Equal(t, NewRandSampler(3).Sample(100, 10), NewRandSampler(3).Sample(100, 10))
	})

	t.Run("every index can be chosen", func(t *testing.T) {
		chosen := make(map[int]bool)
		for i := 0; i < 200; i++ {
			chosen[sampler.Sample(9, 1)[0]] = true
		}
		assert.Len(t, chosen, 9)
	})

	t.Run("zero seed is time based", func(t *testing.T) {
		assert.NotZero(t, NewRandSampler(0).Seed())
	})
}

func TestFixedSampler(t *testing.T) {
	sampler := FixedSampler{4, 2}

	sample := sampler.Sample(9, 2)
	sample[0] = 7

	assert.Equal(t, []int{4, 2}, sampler.Sample(9, 2))
}
