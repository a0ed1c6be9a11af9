// Package gadjid computes distances between causal graphs.
//
// A causal discovery algorithm outputs a guess at the true causal structure
// over a set of variables, usually as a DAG or a CPDAG (a Markov equivalence
// class representative with both directed and undirected edges). Comparing
// that guess to ground truth — or to another guess — requires a distance
// that respects what the graph actually claims about interventions, not just
// how many edges differ.
//
// gadjid provides two families of such distances:
//
//	metrics.SHD                          — Structural Hamming Distance
//	metrics.ParentAID/AncestorAID/OsetAID — Adjustment Identification Distance
//	metrics.SID                          — classical Structural Intervention
//	                                        Distance, a ParentAID restricted
//	                                        to DAG inputs
//
// SHD counts edges that differ directly. The AID family instead asks, for
// every ordered pair of distinct vertices (t, y), whether a graph's implied
// adjustment set for "the causal effect of t on y" would actually identify
// that effect in the other graph — counting a disagreement as a mistake only
// when it would mislead an analyst relying on the guess.
//
// Construction
//
// Graphs are built once through the pdag package, from either a dense
// matrix or a streamed edge list, and validated as acyclic and simple before
// any metric can run:
//
//	g, err := pdag.FromDenseRowMajor(m) // 1 encodes row->col, 2 encodes row--col
//	if err != nil {
//	    // *pdag.NotSimpleError, pdag.ErrNotAcyclic, or a graphio decoding error
//	}
//	result, err := metrics.SHD(truth, g)
//	fmt.Printf("%.3f (%d of %d)\n", result.Fraction, result.Count, g.N()*(g.N()-1)/2)
//
// Supporting packages
//
//	graphio/       — triple-stream decoding shared by every pdag constructor
//	sets/          — map-backed integer sets and sorted-slice merge helpers
//	ruletables/    — a generic reachability DFS parameterized by small lookup
//	                 tables (Ancestors, Descendants, Parents, Children)
//	reachability/  — the conditioned and unconditioned walks the AID family
//	                 is built on: amenability, possible descendants, blocking
//	causalpaths/   — d-connection-free causal-path enumeration, standalone
//	workerpool/    — per-treatment parallelism shared by every metric
package gadjid
