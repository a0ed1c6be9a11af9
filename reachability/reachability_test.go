package reachability_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CausalDisco/gadjid/pdag"
	"github.com/CausalDisco/gadjid/reachability"
	"github.com/CausalDisco/gadjid/sets"
)

func TestGetNAM_UndirectedHopMarksNotAmenable(t *testing.T) {
	// 0 -> 1, 0 -- 3, 1 -- 2
	m := [][]int8{
		{0, 1, 0, 2},
		{0, 0, 2, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g, err := pdag.FromDenseRowMajor(m)
	require.NoError(t, err)

	nam := reachability.GetNAM(g, []int{0})
	assert.ElementsMatch(t, []int{3}, nam.Sorted())
}

func TestPossibleDescendants(t *testing.T) {
	// 0 -> 1 -- 2, 0 -> 3
	m := [][]int8{
		{0, 1, 0, 1},
		{0, 0, 2, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g, err := pdag.FromDenseRowMajor(m)
	require.NoError(t, err)

	pd := reachability.PossibleDescendants(g, []int{0})
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, pd.Sorted())
}

func TestGetDPDNAM_ContainmentInvariants(t *testing.T) {
	// diamond: 0 -> {1,2} -> 3
	m := [][]int8{
		{0, 1, 1, 0},
		{0, 0, 0, 1},
		{0, 0, 0, 1},
		{0, 0, 0, 0},
	}
	g, err := pdag.FromDenseRowMajor(m)
	require.NoError(t, err)

	d, pd, nam := reachability.GetDPDNAM(g, []int{0})
	for v := range d {
		assert.True(t, pd.Contains(v))
	}
	for v := range nam {
		assert.True(t, pd.Contains(v))
	}
	assert.True(t, d.Contains(0), "T must be a subset of D")
	assert.True(t, pd.Contains(0), "T must be a subset of PD")
	assert.ElementsMatch(t, []int{0, 1, 2, 3}, d.Sorted())
	assert.Empty(t, nam.Sorted())
}

func TestGetPDNAMAgreesWithGetDPDNAM(t *testing.T) {
	// CPDAG: 0 -> 1 -- 2, 0 -> 3
	m := [][]int8{
		{0, 1, 0, 1},
		{0, 0, 2, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}
	g, err := pdag.FromDenseRowMajor(m)
	require.NoError(t, err)

	_, pdFull, namFull := reachability.GetDPDNAM(g, []int{0})
	pdPruned, namPruned := reachability.GetPDNAM(g, []int{0})
	assert.Equal(t, pdFull.Sorted(), pdPruned.Sorted())
	assert.Equal(t, namFull.Sorted(), namPruned.Sorted())
}

func TestGetPDNAMNVA_PostConditions(t *testing.T) {
	// 0 -> 1 -> 2, adjustment set Z = {1}
	m := [][]int8{
		{0, 1, 0},
		{0, 0, 1},
		{0, 0, 0},
	}
	g, err := pdag.FromDenseRowMajor(m)
	require.NoError(t, err)

	z := sets.FromSlice([]int{1})
	pd, nam, nva := reachability.GetPDNAMNVA(g, []int{0}, z)
	assert.True(t, pd.Contains(0), "T must be a subset of PD")
	assert.True(t, pd.Contains(1))
	assert.True(t, pd.Contains(2))
	for v := range nam {
		assert.True(t, nva.Contains(v))
	}

	ivb := reachability.GetInvalidlyUnblocked(g, []int{0}, z, nil)
	union := sets.NewIntSet(0)
	for v := range ivb {
		union.Insert(v)
	}
	for v := range nam {
		union.Insert(v)
	}
	assert.Equal(t, nva.Sorted(), union.Sorted())
}
