// Package ruletables implements a generic reachability search, gensearch,
// parameterized by a small dispatch table that decides, at every step,
// whether to continue the walk and whether to emit the candidate vertex.
//
// gensearch itself carries no domain knowledge; Ancestors, Descendants,
// Parents, Children and ProperAncestors each supply a RuleTable that
// encodes one query's semantics, the way dfs.DFSOption hooks (OnVisit,
// OnExit) let one traversal implement several behaviors.
//
// Complexity: O(|V| + |E|), a single DFS pass with an explicit stack; no
// recursion, so stack depth is bounded by the number of distinct
// (edge, node) pairs visited.
package ruletables

import (
	"github.com/CausalDisco/gadjid/pdag"
	"github.com/CausalDisco/gadjid/sets"
)

// RuleTable decides, given the edge and vertex just arrived at and a
// candidate next (edge, vertex), whether the walk should continue onward
// and whether the candidate should be emitted into the result set. Lookup
// must be pure and side-effect free.
type RuleTable interface {
	Lookup(curEdge pdag.Edge, cur int, nextEdge pdag.Edge, next int) (cont, emit bool)
}

// Gensearch runs the generalized reachability search described in the
// package doc: starting from starts, it explores children under
// pdag.Incoming and parents under pdag.Outgoing, consulting rt at each
// step. If emitStarts is set, the starting vertices are included in the
// result up front.
func Gensearch(dag *pdag.PDAG, rt RuleTable, starts []int, emitStarts bool) sets.IntSet {
	type frame struct {
		edge pdag.Edge
		node int
	}

	stack := make([]frame, 0, len(starts))
	result := sets.NewIntSet(len(starts))
	for _, s := range starts {
		stack = append(stack, frame{edge: pdag.Init, node: s})
		if emitStarts {
			result.Insert(s)
		}
	}

	visitedIn := sets.NewIntSet(dag.N())
	visitedOut := sets.NewIntSet(dag.N())

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch top.edge {
		case pdag.Incoming:
			visitedIn.Insert(top.node)
		case pdag.Outgoing:
			visitedOut.Insert(top.node)
		}

		for _, step := range [2]struct {
			edge       pdag.Edge
			neighbors  []int
			isIncoming bool
		}{
			{pdag.Incoming, dag.ChildrenOf(top.node), true},
			{pdag.Outgoing, dag.ParentsOf(top.node), false},
		} {
			for _, next := range step.neighbors {
				cont, emit := rt.Lookup(top.edge, top.node, step.edge, next)
				visited := visitedOut
				if step.isIncoming {
					visited = visitedIn
				}
				if cont && !visited.Contains(next) {
					stack = append(stack, frame{edge: step.edge, node: next})
				}
				if emit {
					result.Insert(next)
				}
			}
		}
	}

	return result
}
