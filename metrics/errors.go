package metrics

import "errors"

// ErrSizeMismatch is returned when two graphs passed to the same metric
// call have a different vertex count.
var ErrSizeMismatch = errors.New("metrics: truth and guess have different vertex counts")

// ErrTooSmall is returned by an AID call on a graph with fewer than two
// vertices, since no ordered pair exists to grade.
var ErrTooSmall = errors.New("metrics: need at least two vertices")

// ErrTruthNotDAG is returned by SID when the truth graph carries at least
// one undirected edge.
var ErrTruthNotDAG = errors.New("metrics: truth is not a DAG")

// ErrGuessNotDAG is returned by SID when the guess graph carries at least
// one undirected edge.
var ErrGuessNotDAG = errors.New("metrics: guess is not a DAG")
