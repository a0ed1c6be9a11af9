package metrics

import (
	"github.com/CausalDisco/gadjid/pdag"
	"github.com/CausalDisco/gadjid/ruletables"
	"github.com/CausalDisco/gadjid/sets"
)

// OptimalAdjustmentSet computes O(G, T, Y) from scratch: the set of
// variables that, when adjusted for, identify the causal effect of T on Y
// with the least asymptotic variance among valid adjustment sets.
func OptimalAdjustmentSet(dag *pdag.PDAG, t, y []int) sets.IntSet {
	return optimalAdjustmentSet(dag, t, y, ruletables.Descendants(dag, t))
}

// optimalAdjustmentSet computes O(G, T, Y): the parents of every vertex
// that lies on a directed path from T to Y, excluding T's own descendants.
// dT must be Descendants(dag, t); callers precompute it once per treatment
// and reuse it across every response in the inner loop.
func optimalAdjustmentSet(dag *pdag.PDAG, t, y []int, dT sets.IntSet) sets.IntSet {
	properAnc := ruletables.ProperAncestors(dag, t, y)

	c := make([]int, 0, len(properAnc))
	for v := range properAnc {
		if dT.Contains(v) {
			c = append(c, v)
		}
	}

	parentsOfC := ruletables.Parents(dag, c)

	o := sets.NewIntSet(len(parentsOfC))
	for v := range parentsOfC {
		if !dT.Contains(v) {
			o.Insert(v)
		}
	}

	return o
}
