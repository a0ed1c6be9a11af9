package ruletables

import (
	"github.com/CausalDisco/gadjid/pdag"
	"github.com/CausalDisco/gadjid/sets"
)

// Ancestors returns every ancestor of starts, including starts themselves
// (a ∈ Ancestors(a)).
func Ancestors(dag *pdag.PDAG, starts []int) sets.IntSet {
	return Gensearch(dag, AncestorsTable{}, starts, true)
}

// Descendants returns every descendant of starts, including starts
// themselves (a ∈ Descendants(a)).
func Descendants(dag *pdag.PDAG, starts []int) sets.IntSet {
	return Gensearch(dag, DescendantsTable{}, starts, true)
}

// Parents returns the union of parents of every vertex in starts. More
// efficient than calling it once per start and merging results by hand.
func Parents(dag *pdag.PDAG, starts []int) sets.IntSet {
	return Gensearch(dag, ParentsTable{}, starts, false)
}

// Children returns the union of children of every vertex in starts.
func Children(dag *pdag.PDAG, starts []int) sets.IntSet {
	return Gensearch(dag, ChildrenTable{}, starts, false)
}

// ProperAncestors returns the ancestors of responses that are not
// themselves in treatments and are not reached through a treatment vertex.
func ProperAncestors(dag *pdag.PDAG, treatments, responses []int) sets.IntSet {
	return Gensearch(dag, ProperAncestorsTable{Treatments: sets.FromSlice(treatments)}, responses, true)
}
