package collections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	set := make(Set[int])

	set.Add(1)
	set.Add(2)
	set.Add(2)
	require.Len(t, set, 2)
	assert.True(t, set.Contains(1))
	assert.True(t, set.Contains(2))
	assert.False(t, set.Contains(3))

	set.Remove(1)
	set.Remove(3)
	assert.False(t, set.Contains(1))
	assert.ElementsMatch(t, []int{2}, set.Slice())
}
