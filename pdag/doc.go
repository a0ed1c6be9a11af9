// Package pdag implements a compact, immutable adjacency representation for
// partially directed acyclic graphs (PDAGs): graphs whose edges are either
// directed or undirected, with no directed cycle.
//
// Key features:
//
//   - CSR-like storage: one flat neighbors slice per graph, sliced per
//     vertex into three ascending groups (parents, undirected, children).
//   - O(1) read-side queries: ParentsOf, ChildrenOf, UndirectedOf,
//     PossibleParentsOf, PossibleChildrenOf all return sub-slices of the
//     same backing array, no copies.
//   - Validated construction: simplicity (no two conflicting edge marks on
//     the same pair) and acyclicity (Kahn's algorithm on the directed
//     subgraph) are checked once, at load time.
//   - Immutable after construction: safe to share across goroutines without
//     locking.
//
// Complexity:
//
//   - Construction: O(n + m log m) where m is the number of edges (sorting
//     per-vertex neighbor lists dominates).
//   - Queries: O(1) plus the size of the returned slice.
//
// Errors: see errors.go. Construction surfaces ErrNotAcyclic, *NotSimpleError
// and whatever graphio.Collect itself returned, wrapped with context.
package pdag
