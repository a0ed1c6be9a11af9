package causalpaths_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CausalDisco/gadjid/causalpaths"
	"github.com/CausalDisco/gadjid/pdag"
)

func TestCausalNodesAndChildren(t *testing.T) {
	// 0 -> 1 -> 3, 0 -> 2 -> 3, 1 -> 2
	m := [][]int8{
		{0, 1, 1, 0},
		{0, 0, 1, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}
	g, err := pdag.FromDenseRowMajor(m)
	require.NoError(t, err)

	nodes := causalpaths.CausalNodes(g, []int{0}, []int{3})
	assert.ElementsMatch(t, []int{1, 2, 3}, nodes)

	children := causalpaths.CausalChildren(g, []int{0}, []int{3})
	assert.ElementsMatch(t, []int{1, 2}, children)
}

func TestCausalNodesExcludesUnrelatedBranch(t *testing.T) {
	// 0 -> 1 -> 3, 0 -> 2 (2 is a child of the treatment but never leads to y)
	m := [][]int8{
		{0, 1, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g, err := pdag.FromDenseRowMajor(m)
	require.NoError(t, err)

	nodes := causalpaths.CausalNodes(g, []int{0}, []int{3})
	assert.ElementsMatch(t, []int{1, 3}, nodes)

	children := causalpaths.CausalChildren(g, []int{0}, []int{3})
	assert.ElementsMatch(t, []int{1}, children)
}
