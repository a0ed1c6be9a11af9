package pdag

import (
	"context"
	"fmt"
	"sort"

	"github.com/CausalDisco/gadjid/graphio"
	"github.com/CausalDisco/gadjid/sets"
)

// FromEdgelist builds a PDAG of declared size n from a raw triple stream
// under the given layout. It runs graphio.Collect to filter and validate
// the stream, then:
//
//  1. groups each non-zero triple into the appropriate vertex's parent,
//     child, or undirected list, deduplicating undirected edges that were
//     coded from both endpoints;
//  2. sorts every per-vertex list ascending;
//  3. rejects any vertex whose parent/undirected/child lists are not
//     pairwise disjoint (*NotSimpleError);
//  4. runs Kahn's algorithm over the directed subgraph and rejects a cycle
//     (ErrNotAcyclic);
//  5. classifies the result as DAG or CPDAG.
//
// WithContext may be passed to cancel a slow or very large stream; the
// context is checked between triples and between rounds of Kahn's
// algorithm, the way dfs.TopologicalSort checks its own cancellation
// context between vertex visits.
func FromEdgelist(n int, order graphio.Order, raw graphio.Stream, opts ...Option) (*PDAG, error) {
	o := defaultBuildOptions()
	for _, opt := range opts {
		opt(&o)
	}

	triples, err := graphio.CollectContext(o.ctx, order, raw)
	if err != nil {
		return nil, fmt.Errorf("pdag: loading edgelist: %w", err)
	}

	return fromTriples(o.ctx, n, order, triples)
}

// FromDenseRowMajor loads a dense n×n matrix declared row-to-column: a 1 at
// (r, c) encodes r → c, a 2 encodes r — c.
func FromDenseRowMajor(m [][]int8, opts ...Option) (*PDAG, error) {
	return FromEdgelist(len(m), graphio.RowMajor, graphio.NewDenseStream(m, graphio.RowMajor), opts...)
}

// FromDenseColumnMajor loads a dense n×n matrix declared column-to-row: a 1
// at row r, column c encodes c → r, a 2 encodes c — r. Loading the
// transpose of a matrix this way yields the same PDAG as FromDenseRowMajor
// on the matrix itself.
func FromDenseColumnMajor(m [][]int8, opts ...Option) (*PDAG, error) {
	return FromEdgelist(len(m), graphio.ColumnMajor, graphio.NewDenseStream(m, graphio.ColumnMajor), opts...)
}

func fromTriples(ctx context.Context, n int, order graphio.Order, triples []graphio.Triple) (*PDAG, error) {
	parents := make([][]int, n)
	children := make([][]int, n)
	undirected := make([][]int, n)
	undirectedSeen := make(map[[2]int]struct{})

	for i, t := range triples {
		if i%4096 == 0 {
			if err := checkDone(ctx); err != nil {
				return nil, err
			}
		}
		a, b := graphio.Endpoints(order, t)
		switch t.Value {
		case 1:
			children[a] = append(children[a], b)
			parents[b] = append(parents[b], a)
		case 2:
			lo, hi := a, b
			if lo > hi {
				lo, hi = hi, lo
			}
			key := [2]int{lo, hi}
			if _, dup := undirectedSeen[key]; dup {
				continue
			}
			undirectedSeen[key] = struct{}{}
			undirected[a] = append(undirected[a], b)
			undirected[b] = append(undirected[b], a)
		}
	}

	for v := 0; v < n; v++ {
		sort.Ints(parents[v])
		sort.Ints(children[v])
		sort.Ints(undirected[v])
		if err := checkSimple(v, parents[v], undirected[v], children[v]); err != nil {
			return nil, err
		}
	}

	p := &PDAG{
		n:      n,
		offset: make([]int, n+1),
		deg:    make([]degree, n),
	}
	total := 0
	for v := 0; v < n; v++ {
		p.offset[v] = total
		total += len(parents[v]) + len(undirected[v]) + len(children[v])
		p.deg[v] = degree{parents: len(parents[v]), children: len(children[v])}
	}
	p.offset[n] = total
	p.neighbors = make([]int, 0, total)
	for v := 0; v < n; v++ {
		p.neighbors = append(p.neighbors, parents[v]...)
		p.neighbors = append(p.neighbors, undirected[v]...)
		p.neighbors = append(p.neighbors, children[v]...)
	}

	if err := checkAcyclic(ctx, p); err != nil {
		return nil, err
	}

	p.kind = DAG
	for v := 0; v < n; v++ {
		if len(p.UndirectedOf(v)) > 0 {
			p.kind = CPDAG
			break
		}
	}

	return p, nil
}

// checkSimple enforces that parents, undirected and children are pairwise
// disjoint for vertex v (data-model invariant 1).
func checkSimple(v int, parents, undirected, children []int) error {
	if w, ok := sets.FirstShared(parents, undirected); ok {
		return &NotSimpleError{U: v, V: w, Kind: "directed and undirected"}
	}
	if w, ok := sets.FirstShared(parents, children); ok {
		return &NotSimpleError{U: v, V: w, Kind: "both directions"}
	}
	if w, ok := sets.FirstShared(undirected, children); ok {
		return &NotSimpleError{U: v, V: w, Kind: "directed and undirected"}
	}

	return nil
}

// checkAcyclic runs Kahn's algorithm over the directed subgraph (parents,
// children) of p and returns ErrNotAcyclic unless every vertex is removed.
func checkAcyclic(ctx context.Context, p *PDAG) error {
	indeg := make([]int, p.n)
	for v := 0; v < p.n; v++ {
		indeg[v] = len(p.ParentsOf(v))
	}
	queue := make([]int, 0, p.n)
	for v := 0; v < p.n; v++ {
		if indeg[v] == 0 {
			queue = append(queue, v)
		}
	}
	removed := 0
	for len(queue) > 0 {
		if err := checkDone(ctx); err != nil {
			return err
		}
		v := queue[0]
		queue = queue[1:]
		removed++
		for _, c := range p.ChildrenOf(v) {
			indeg[c]--
			if indeg[c] == 0 {
				queue = append(queue, c)
			}
		}
	}
	if removed != p.n {
		return ErrNotAcyclic
	}

	return nil
}
