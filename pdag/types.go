package pdag

// Edge names the kind of edge an engine arrived by, from the current
// vertex's perspective: Incoming means (… → v), Outgoing means (v → …),
// Undirected means (v — …), and Init marks a walk's starting vertex.
type Edge int

const (
	Init Edge = iota
	Incoming
	Outgoing
	Undirected
)

func (e Edge) String() string {
	switch e {
	case Init:
		return "Init"
	case Incoming:
		return "Incoming"
	case Outgoing:
		return "Outgoing"
	case Undirected:
		return "Undirected"
	default:
		return "Edge(?)"
	}
}

// Structure discriminates a PDAG as a DAG (no undirected edges) or a CPDAG
// (at least one undirected edge). The core treats a DAG as a degenerate
// CPDAG; only SID restricts callers to DAGs.
type Structure int

const (
	DAG Structure = iota
	CPDAG
)

func (s Structure) String() string {
	if s == DAG {
		return "DAG"
	}

	return "CPDAG"
}

// degree holds the parent and child counts of one vertex; the undirected
// count is derivable from the slice bounds.
type degree struct {
	parents  int
	children int
}

// PDAG is an immutable, compact adjacency representation. Construct one
// with FromEdgelist, FromDenseRowMajor, or FromDenseColumnMajor; it is safe
// for concurrent read access once built.
type PDAG struct {
	n         int
	offset    []int // len n+1
	neighbors []int // flat, grouped per vertex as parents ‖ undirected ‖ children
	deg       []degree
	kind      Structure
}

// N returns the vertex count.
func (p *PDAG) N() int { return p.n }

// Kind reports whether p was classified as a DAG or a CPDAG.
func (p *PDAG) Kind() Structure { return p.kind }

// ParentsOf returns the sorted, ascending slice of v's parents.
func (p *PDAG) ParentsOf(v int) []int {
	lo := p.offset[v]
	hi := lo + p.deg[v].parents

	return p.neighbors[lo:hi]
}

// UndirectedOf returns the sorted, ascending slice of v's undirected
// neighbors.
func (p *PDAG) UndirectedOf(v int) []int {
	lo := p.offset[v] + p.deg[v].parents
	hi := p.offset[v+1] - p.deg[v].children

	return p.neighbors[lo:hi]
}

// ChildrenOf returns the sorted, ascending slice of v's children.
func (p *PDAG) ChildrenOf(v int) []int {
	hi := p.offset[v+1]
	lo := hi - p.deg[v].children

	return p.neighbors[lo:hi]
}

// PossibleParentsOf returns parents(v) ‖ undirected(v), contiguous in
// memory since they share the leading portion of v's neighbor group.
func (p *PDAG) PossibleParentsOf(v int) []int {
	lo := p.offset[v]
	hi := p.offset[v+1] - p.deg[v].children

	return p.neighbors[lo:hi]
}

// PossibleChildrenOf returns undirected(v) ‖ children(v), contiguous in
// memory since they share the trailing portion of v's neighbor group.
func (p *PDAG) PossibleChildrenOf(v int) []int {
	lo := p.offset[v] + p.deg[v].parents
	hi := p.offset[v+1]

	return p.neighbors[lo:hi]
}

// InOutDegree returns (|parents(v)|, |children(v)|).
func (p *PDAG) InOutDegree(v int) (in, out int) {
	return p.deg[v].parents, p.deg[v].children
}
