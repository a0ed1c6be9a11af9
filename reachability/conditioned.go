package reachability

import (
	"github.com/CausalDisco/gadjid/pdag"
	"github.com/CausalDisco/gadjid/sets"
)

// walkStatusC is the status alphabet for the conditioned (adjustment set Z)
// engines.
type walkStatusC int

const (
	cInit walkStatusC = iota
	cPDOpenAM
	cPDBlockedAM
	cPDOpenNAM
	cPDBlockedNAM
	cNonCausalOpen
)

type frameC struct {
	edge   pdag.Edge
	node   int
	status walkStatusC
}

type moveC struct {
	edge    pdag.Edge
	w       int
	blocked bool
}

// nextStepsC enumerates candidate moves from v, given the edge v was
// arrived by and whether v is itself in the adjustment set Z. A collider
// passage (moving on to a parent after arriving from a parent) is blocked
// iff v ∉ Z; any other passage is blocked iff v ∈ Z.
func nextStepsC(dag *pdag.PDAG, t sets.IntSet, arrivedBy pdag.Edge, v int, isAdjustment bool) []moveC {
	out := make([]moveC, 0, 4)

	switch arrivedBy {
	case pdag.Incoming:
		for _, p := range dag.ParentsOf(v) {
			if !t.Contains(p) {
				out = append(out, moveC{edge: pdag.Outgoing, w: p, blocked: !isAdjustment})
			}
		}
	case pdag.Init, pdag.Outgoing, pdag.Undirected:
		for _, p := range dag.ParentsOf(v) {
			if !t.Contains(p) {
				out = append(out, moveC{edge: pdag.Outgoing, w: p, blocked: isAdjustment})
			}
		}
	}

	for _, u := range dag.UndirectedOf(v) {
		if !t.Contains(u) {
			out = append(out, moveC{edge: pdag.Undirected, w: u, blocked: isAdjustment})
		}
	}
	for _, c := range dag.ChildrenOf(v) {
		if !t.Contains(c) {
			out = append(out, moveC{edge: pdag.Incoming, w: c, blocked: isAdjustment})
		}
	}

	return out
}

// GetPDNAMNVA runs the full conditioned walk-status engine and returns PD,
// NAM and NVA relative to treatment t and adjustment set z.
func GetPDNAMNVA(dag *pdag.PDAG, t []int, z sets.IntSet) (pd, nam, nva sets.IntSet) {
	tset := sets.FromSlice(t)
	pd, nam, nva = sets.NewIntSet(len(t)), sets.NewIntSet(0), sets.NewIntSet(0)
	for _, v := range t {
		pd.Insert(v)
	}

	visited := make(map[frameC]struct{})
	stack := make([]frameC, 0, len(t))
	for _, v := range t {
		stack = append(stack, frameC{edge: pdag.Init, node: v, status: cInit})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[top]; ok {
			continue
		}
		visited[top] = struct{}{}

		switch top.status {
		case cPDOpenNAM, cPDBlockedNAM:
			pd.Insert(top.node)
			nam.Insert(top.node)
			nva.Insert(top.node)
		case cPDBlockedAM:
			pd.Insert(top.node)
			nva.Insert(top.node)
		case cPDOpenAM:
			pd.Insert(top.node)
		case cNonCausalOpen:
			nva.Insert(top.node)
		}

		isAdjustment := z.Contains(top.node)
		for _, mv := range nextStepsC(dag, tset, top.edge, top.node, isAdjustment) {
			next, ok := transitionC(top.status, mv)
			if !ok {
				continue
			}
			nf := frameC{edge: mv.edge, node: mv.w, status: next}
			if _, seen := visited[nf]; !seen {
				stack = append(stack, nf)
			}
		}
	}

	return pd, nam, nva
}

func transitionC(status walkStatusC, mv moveC) (walkStatusC, bool) {
	switch status {
	case cInit:
		switch mv.edge {
		case pdag.Incoming:
			return cPDOpenAM, true
		case pdag.Undirected:
			return cPDOpenNAM, true
		case pdag.Outgoing:
			return cNonCausalOpen, true
		}
	case cPDOpenAM, cPDBlockedAM:
		switch mv.edge {
		case pdag.Incoming, pdag.Undirected:
			if mv.blocked {
				return cPDBlockedAM, true
			}

			return status, true
		case pdag.Outgoing:
			if !mv.blocked && status == cPDOpenAM {
				return cNonCausalOpen, true
			}
		}
	case cPDOpenNAM, cPDBlockedNAM:
		switch mv.edge {
		case pdag.Incoming, pdag.Undirected:
			if mv.blocked {
				return cPDBlockedNAM, true
			}

			return status, true
		case pdag.Outgoing:
			if !mv.blocked && status == cPDOpenNAM {
				return cNonCausalOpen, true
			}
		}
	case cNonCausalOpen:
		if !mv.blocked {
			return cNonCausalOpen, true
		}
	}

	return 0, false
}

// GetNAMNVA runs the same machine as GetPDNAMNVA but drops the PD
// bookkeeping, returning only NAM and NVA.
func GetNAMNVA(dag *pdag.PDAG, t []int, z sets.IntSet) (nam, nva sets.IntSet) {
	pd, nam, nva := GetPDNAMNVA(dag, t, z)
	_ = pd

	return nam, nva
}

// walkStatusI is the status alphabet for the invalidly-unblocked engine,
// which drops the amenable/non-amenable distinction kept by GetPDNAMNVA.
type walkStatusI int

const (
	iInit walkStatusI = iota
	iPDOpen
	iPDBlocked
	iNonCausalOpen
)

type frameI struct {
	edge   pdag.Edge
	node   int
	status walkStatusI
}

// GetInvalidlyUnblocked computes IVB: vertices reached by either a blocked
// possibly-directed walk or an unblocked non-causal walk from t, given
// adjustment set z. NVA always equals IVB ∪ NAM. If interest is non-nil,
// the search stops early once every member of interest has been added to
// the result.
func GetInvalidlyUnblocked(dag *pdag.PDAG, t []int, z sets.IntSet, interest sets.IntSet) sets.IntSet {
	tset := sets.FromSlice(t)
	ivb := sets.NewIntSet(0)

	visited := make(map[frameI]struct{})
	stack := make([]frameI, 0, len(t))
	for _, v := range t {
		stack = append(stack, frameI{edge: pdag.Init, node: v, status: iInit})
	}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, ok := visited[top]; ok {
			continue
		}
		visited[top] = struct{}{}

		switch top.status {
		case iPDBlocked, iNonCausalOpen:
			ivb.Insert(top.node)
		}

		if interest != nil && allDecided(ivb, interest) {
			break
		}

		isAdjustment := z.Contains(top.node)
		for _, mv := range nextStepsC(dag, tset, top.edge, top.node, isAdjustment) {
			next, ok := transitionI(top.status, mv)
			if !ok {
				continue
			}
			nf := frameI{edge: mv.edge, node: mv.w, status: next}
			if _, seen := visited[nf]; !seen {
				stack = append(stack, nf)
			}
		}
	}

	return ivb
}

func transitionI(status walkStatusI, mv moveC) (walkStatusI, bool) {
	switch status {
	case iInit:
		switch mv.edge {
		case pdag.Incoming, pdag.Undirected:
			return iPDOpen, true
		case pdag.Outgoing:
			return iNonCausalOpen, true
		}
	case iPDOpen, iPDBlocked:
		switch mv.edge {
		case pdag.Incoming, pdag.Undirected:
			if mv.blocked {
				return iPDBlocked, true
			}

			return status, true
		case pdag.Outgoing:
			if !mv.blocked && status == iPDOpen {
				return iNonCausalOpen, true
			}
		}
	case iNonCausalOpen:
		if !mv.blocked {
			return iNonCausalOpen, true
		}
	}

	return 0, false
}

func allDecided(found, interest sets.IntSet) bool {
	for v := range interest {
		if !found.Contains(v) {
			return false
		}
	}

	return true
}
