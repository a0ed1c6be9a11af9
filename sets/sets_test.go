package sets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CausalDisco/gadjid/sets"
)

func TestFirstShared(t *testing.T) {
	v, ok := sets.FirstShared([]int{1, 3, 5}, []int{2, 3, 4})
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = sets.FirstShared([]int{1, 2}, []int{3, 4})
	assert.False(t, ok)

	_, ok = sets.FirstShared(nil, []int{1})
	assert.False(t, ok)
}

func TestSymDiff(t *testing.T) {
	got := sets.SymDiff([]int{1, 2, 3}, []int{2, 3, 4})
	assert.Equal(t, []int{1, 4}, got)

	got = sets.SymDiff([]int{1, 1, 2}, []int{2})
	assert.Equal(t, []int{1}, got)

	got = sets.SymDiff(nil, nil)
	assert.Empty(t, got)
}

func TestUnion(t *testing.T) {
	got := sets.Union([]int{1, 2, 3}, []int{2, 3, 4})
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	got = sets.Union([]int{1, 1}, []int{1})
	assert.Equal(t, []int{1}, got)

	got = sets.Union(nil, []int{5})
	assert.Equal(t, []int{5}, got)
}
