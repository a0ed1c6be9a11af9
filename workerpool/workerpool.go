// Package workerpool fans work out across a bounded number of goroutines,
// the way the per-treatment passes of a distance computation are spread
// across cores.
package workerpool

import (
	"os"
	"runtime"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// EnvNumThreads names the environment variable that overrides the worker
// count. When unset or not a positive integer, NumWorkers falls back to
// runtime.NumCPU().
const EnvNumThreads = "GADJID_NUM_THREADS"

// NumWorkers returns the configured degree of parallelism.
func NumWorkers() int {
	if raw, ok := os.LookupEnv(EnvNumThreads); ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			return n
		}
	}

	return runtime.NumCPU()
}

// Map applies f to every index in [0, n) using up to NumWorkers()
// goroutines, blocking until all calls complete. Every call runs even after
// one has failed; the first non-nil error returned by any call is
// propagated.
func Map(n int, f func(i int) error) error {
	if n <= 0 {
		return nil
	}

	workers := NumWorkers()
	if workers > n {
		workers = n
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			return f(i)
		})
	}

	return g.Wait()
}

// SumInts calls f once per index in [0, n) across up to NumWorkers()
// goroutines and returns the sum of every result. Used by the metric
// package's per-treatment mistake tally, where each task's return value is
// a task-local count that combines by addition regardless of scheduling
// order.
func SumInts(n int, f func(i int) int) int {
	if n <= 0 {
		return 0
	}

	workers := NumWorkers()
	if workers > n {
		workers = n
	}

	partial := make([]int, n)
	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			partial[i] = f(i)

			return nil
		})
	}
	_ = g.Wait()

	total := 0
	for _, v := range partial {
		total += v
	}

	return total
}
