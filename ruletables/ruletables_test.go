package ruletables_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CausalDisco/gadjid/pdag"
	"github.com/CausalDisco/gadjid/ruletables"
)

func chainDAG(t *testing.T) *pdag.PDAG {
	t.Helper()
	// 0 -> 1 -> 2 -> 3
	m := [][]int8{
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}
	g, err := pdag.FromDenseRowMajor(m)
	require.NoError(t, err)

	return g
}

func TestAncestorsAndDescendants(t *testing.T) {
	g := chainDAG(t)
	anc := ruletables.Ancestors(g, []int{2})
	assert.ElementsMatch(t, []int{0, 1, 2}, anc.Sorted())

	desc := ruletables.Descendants(g, []int{1})
	assert.ElementsMatch(t, []int{1, 2, 3}, desc.Sorted())
}

func TestParentsAndChildren(t *testing.T) {
	// 0 -> 1, 0 -> 2, 3 -> 1
	m := [][]int8{
		{0, 1, 1, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 1, 0, 0},
	}
	g, err := pdag.FromDenseRowMajor(m)
	require.NoError(t, err)

	parents := ruletables.Parents(g, []int{1})
	assert.ElementsMatch(t, []int{0, 3}, parents.Sorted())

	children := ruletables.Children(g, []int{0})
	assert.ElementsMatch(t, []int{1, 2}, children.Sorted())
}

func TestProperAncestors(t *testing.T) {
	g := chainDAG(t)
	// proper ancestors of 3 with respect to treatment {1}: walking up from 3
	// passes through 2 but stops before entering 1 itself.
	pa := ruletables.ProperAncestors(g, []int{1}, []int{3})
	assert.ElementsMatch(t, []int{2, 3}, pa.Sorted())

	// with no treatment in the way, proper ancestors of 3 is plain ancestors.
	pa = ruletables.ProperAncestors(g, nil, []int{3})
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, pa.Sorted())
}
