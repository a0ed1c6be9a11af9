package ruletables

import (
	"github.com/CausalDisco/gadjid/pdag"
	"github.com/CausalDisco/gadjid/sets"
)

// AncestorsTable continues and emits on any Outgoing step (stepping to a
// parent); it never continues on an Incoming step, which would cross a
// collider and leave pure-ancestor semantics.
type AncestorsTable struct{}

func (AncestorsTable) Lookup(_ pdag.Edge, _ int, nextEdge pdag.Edge, _ int) (cont, emit bool) {
	if nextEdge == pdag.Outgoing {
		return true, true
	}

	return false, false
}

// DescendantsTable mirrors AncestorsTable: continues and emits on any
// Incoming step (stepping to a child).
type DescendantsTable struct{}

func (DescendantsTable) Lookup(_ pdag.Edge, _ int, nextEdge pdag.Edge, _ int) (cont, emit bool) {
	if nextEdge == pdag.Incoming {
		return true, true
	}

	return false, false
}

// ParentsTable emits only the immediate Outgoing step taken from a starting
// vertex; it never continues the walk further.
type ParentsTable struct{}

func (ParentsTable) Lookup(curEdge pdag.Edge, _ int, nextEdge pdag.Edge, _ int) (cont, emit bool) {
	if curEdge == pdag.Init && nextEdge == pdag.Outgoing {
		return false, true
	}

	return false, false
}

// ChildrenTable emits only the immediate Incoming step taken from a
// starting vertex; it never continues the walk further.
type ChildrenTable struct{}

func (ChildrenTable) Lookup(curEdge pdag.Edge, _ int, nextEdge pdag.Edge, _ int) (cont, emit bool) {
	if curEdge == pdag.Init && nextEdge == pdag.Incoming {
		return false, true
	}

	return false, false
}

// ProperAncestorsTable behaves like AncestorsTable but never continues or
// emits into a vertex belonging to the treatment set: it computes ancestors
// that are not reached through a treatment vertex.
type ProperAncestorsTable struct {
	Treatments sets.IntSet
}

func (t ProperAncestorsTable) Lookup(_ pdag.Edge, _ int, nextEdge pdag.Edge, next int) (cont, emit bool) {
	if nextEdge == pdag.Outgoing && !t.Treatments.Contains(next) {
		return true, true
	}

	return false, false
}
