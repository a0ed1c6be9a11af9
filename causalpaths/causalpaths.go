// Package causalpaths identifies the vertices and edges that lie on a
// causal path between a treatment set and an outcome set.
package causalpaths

import (
	"github.com/CausalDisco/gadjid/pdag"
	"github.com/CausalDisco/gadjid/ruletables"
)

// CausalNodes returns every vertex that is both a proper ancestor of y
// (relative to t) and a descendant of t: the vertices a causal path from t
// to y can actually pass through.
func CausalNodes(dag *pdag.PDAG, t, y []int) []int {
	properAnc := ruletables.ProperAncestors(dag, t, y)
	desc := ruletables.Descendants(dag, t)

	out := make([]int, 0, len(properAnc))
	for v := range properAnc {
		if desc.Contains(v) {
			out = append(out, v)
		}
	}

	return out
}

// CausalChildren returns every child of t that is a proper ancestor of y
// relative to t: the set of vertices a causal path from t to y can start
// with.
func CausalChildren(dag *pdag.PDAG, t, y []int) []int {
	properAnc := ruletables.ProperAncestors(dag, t, y)
	children := ruletables.Children(dag, t)

	out := make([]int, 0, len(children))
	for v := range children {
		if properAnc.Contains(v) {
			out = append(out, v)
		}
	}

	return out
}
