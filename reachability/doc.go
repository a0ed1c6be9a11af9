// Package reachability implements the walk-status-aware depth-first
// engines that classify every vertex reachable from a treatment set by the
// *kind* of walk used to reach it.
//
// Every engine's visited set is keyed by the full (arrival edge, node,
// walk status) triple, never by node alone: a vertex can be the target of
// more than one semantically distinct walk, and collapsing the key to just
// the node would silently prune a legitimate walk through it. This has
// been the source of real bugs on CPDAG inputs historically and is the
// single invariant every engine in this package must preserve.
//
// Complexity: each engine is O(|V| + |E|) — every (edge, node, status)
// triple is visited at most once, and the status alphabet is a small
// constant per engine.
package reachability
