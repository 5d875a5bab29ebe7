package game

import (
	"math/rand"
	"time"
)

// Sampler chooses k distinct indices from [0, n), uniformly and without
// replacement. Callers guarantee 0 <= k <= n.
type Sampler interface {
	Sample(n, k int) []int
}

type RandSampler struct {
	seed int64
	rand *rand.Rand
}

func NewRandSampler(seed int64) *RandSampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandSampler{seed: seed, rand: rand.New(rand.NewSource(seed))}
}

// Sample performs a partial Fisher-Yates shuffle over the index range
func (sampler *RandSampler) Sample(n, k int) []int {
	indexes := make([]int, n)
	for i := range indexes {
		indexes[i] = i
	}

	for i := 0; i < k; i++ {
		j := i + sampler.rand.Intn(n-i)
		indexes[i], indexes[j] = indexes[j], indexes[i]
	}

	return indexes[:k]
}

func (sampler *RandSampler) Seed() int64 {
	return sampler.seed
}

// FixedSampler always yields the same indices, ignoring n and k. Used to
// reproduce a known mine layout.
type FixedSampler []int

func (sampler FixedSampler) Sample(n, k int) []int {
	out := make([]int, len(sampler))
	copy(out, sampler)
	return out
}
