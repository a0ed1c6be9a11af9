package reachability

import (
	"github.com/CausalDisco/gadjid/pdag"
	"github.com/CausalDisco/gadjid/sets"
)

// walkStatusU is the status alphabet for the unconditioned (no adjustment
// set) engines.
type walkStatusU int

const (
	uInit walkStatusU = iota
	uDirected
	uAM  // possibly-directed, first step was →
	uNAM // possibly-directed, first step was —
)

type frameU struct {
	edge   pdag.Edge
	node   int
	status walkStatusU
}

// nextStepsU enumerates, from the vertex just reached, candidate moves
// toward children (Incoming, from the new vertex's perspective) and
// undirected neighbors (Undirected), excluding the treatment set.
func nextStepsU(dag *pdag.PDAG, t sets.IntSet, v int) []struct {
	edge pdag.Edge
	w    int
} {
	out := make([]struct {
		edge pdag.Edge
		w    int
	}, 0, 4)
	for _, c := range dag.ChildrenOf(v) {
		if !t.Contains(c) {
			out = append(out, struct {
				edge pdag.Edge
				w    int
			}{pdag.Incoming, c})
		}
	}
	for _, u := range dag.UndirectedOf(v) {
		if !t.Contains(u) {
			out = append(out, struct {
				edge pdag.Edge
				w    int
			}{pdag.Undirected, u})
		}
	}

	return out
}

// GetDPDNAM computes, in one pass, D (strict descendants), PD (possible
// descendants) and NAM (not-amenable targets) of the treatment set t.
func GetDPDNAM(dag *pdag.PDAG, t []int) (d, pd, nam sets.IntSet) {
	tset := sets.FromSlice(t)
	d, pd, nam = sets.NewIntSet(len(t)), sets.NewIntSet(len(t)), sets.NewIntSet(0)

	visited := make(map[frameU]struct{})
	stack := make([]frameU, 0, len(t))
	for _, v := range t {
		d.Insert(v)
		pd.Insert(v)
		stack = append(stack, frameU{edge: pdag.Init, node: v, status: uInit})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[top]; ok {
			continue
		}
		visited[top] = struct{}{}

		switch top.status {
		case uDirected:
			d.Insert(top.node)
			pd.Insert(top.node)
		case uAM:
			pd.Insert(top.node)
		case uNAM:
			pd.Insert(top.node)
			nam.Insert(top.node)
		}

		for _, step := range nextStepsU(dag, tset, top.node) {
			var next walkStatusU
			switch top.status {
			case uInit:
				if step.edge == pdag.Incoming {
					next = uDirected
				} else {
					next = uNAM
				}
			case uDirected:
				if step.edge == pdag.Incoming {
					next = uDirected
				} else {
					next = uAM
				}
			case uAM:
				next = uAM
			case uNAM:
				next = uNAM
			}
			nf := frameU{edge: step.edge, node: step.w, status: next}
			if _, ok := visited[nf]; !ok {
				stack = append(stack, nf)
			}
		}
	}

	return d, pd, nam
}

// GetPDNAM computes PD and NAM without tracking the finer D/AM split,
// pruning one status out of the full engine.
func GetPDNAM(dag *pdag.PDAG, t []int) (pd, nam sets.IntSet) {
	tset := sets.FromSlice(t)
	pd, nam = sets.NewIntSet(len(t)), sets.NewIntSet(0)

	visited := make(map[frameU]struct{})
	stack := make([]frameU, 0, len(t))
	for _, v := range t {
		pd.Insert(v)
		stack = append(stack, frameU{edge: pdag.Init, node: v, status: uInit})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[top]; ok {
			continue
		}
		visited[top] = struct{}{}

		switch top.status {
		case uAM:
			pd.Insert(top.node)
		case uNAM:
			pd.Insert(top.node)
			nam.Insert(top.node)
		}

		for _, step := range nextStepsU(dag, tset, top.node) {
			var next walkStatusU
			switch top.status {
			case uInit:
				if step.edge == pdag.Incoming {
					next = uAM
				} else {
					next = uNAM
				}
			case uAM:
				next = uAM
			case uNAM:
				next = uNAM
			}
			nf := frameU{edge: step.edge, node: step.w, status: next}
			if _, ok := visited[nf]; !ok {
				stack = append(stack, nf)
			}
		}
	}

	return pd, nam
}

// GetNAM computes only the not-amenable set, using the linear-in-|E|
// variant: from t itself only undirected edges are followed, and every
// vertex reached from there onward, via undirected edges or directed edges
// toward children, is declared not amenable. Visited state is kept per
// vertex, since every walk it follows starts with an undirected edge.
func GetNAM(dag *pdag.PDAG, t []int) sets.IntSet {
	tset := sets.FromSlice(t)
	notAmenable := sets.NewIntSet(0)
	visited := sets.NewIntSet(0)

	type step struct {
		arrivedBy pdag.Edge
		node      int
	}
	stack := make([]step, 0, len(t))
	for _, v := range t {
		stack = append(stack, step{arrivedBy: pdag.Init, node: v})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited.Insert(top.node)

		if top.arrivedBy == pdag.Init {
			for _, u := range dag.UndirectedOf(top.node) {
				if !visited.Contains(u) && !tset.Contains(u) {
					stack = append(stack, step{arrivedBy: pdag.Undirected, node: u})
				}
			}

			continue
		}

		notAmenable.Insert(top.node)
		for _, u := range dag.UndirectedOf(top.node) {
			if !visited.Contains(u) && !tset.Contains(u) {
				stack = append(stack, step{arrivedBy: pdag.Undirected, node: u})
			}
		}
		for _, c := range dag.ChildrenOf(top.node) {
			if !visited.Contains(c) && !tset.Contains(c) {
				stack = append(stack, step{arrivedBy: pdag.Incoming, node: c})
			}
		}
	}

	return notAmenable
}

// PossibleDescendants returns every vertex reachable from starts via any
// combination of directed and undirected edges (followed forward only),
// including the starts themselves.
func PossibleDescendants(dag *pdag.PDAG, starts []int) sets.IntSet {
	result := sets.FromSlice(starts)
	visited := sets.NewIntSet(0)
	stack := append([]int(nil), starts...)

	for len(stack) > 0 {
		v := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		visited.Insert(v)
		for _, w := range dag.PossibleChildrenOf(v) {
			if !visited.Contains(w) {
				stack = append(stack, w)
				result.Insert(w)
			}
		}
	}

	return result
}
