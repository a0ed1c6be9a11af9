package metrics

import (
	"github.com/CausalDisco/gadjid/pdag"
	"github.com/CausalDisco/gadjid/sets"
	"github.com/CausalDisco/gadjid/workerpool"
)

// SHD computes the structural Hamming distance between truth and guess:
// for every vertex, only lower-indexed neighbors are considered so each
// unordered pair is counted once; the parent, undirected and child sets
// below that vertex are symmetric-differenced and unioned across the three
// kinds, and the per-vertex mismatch counts are summed. The result is
// normalized by n·(n−1)/2.
func SHD(truth, guess *pdag.PDAG) (Result, error) {
	if err := checkSameSize(truth, guess); err != nil {
		return Result{}, err
	}

	n := truth.N()
	if n <= 1 {
		return Result{Fraction: 0, Count: 0}, nil
	}

	total := workerpool.SumInts(n, func(v int) int {
		return shdAtVertex(truth, guess, v)
	})

	return normalize(total, n*(n-1)/2), nil
}

func shdAtVertex(truth, guess *pdag.PDAG, v int) int {
	below := func(xs []int) []int {
		out := make([]int, 0, len(xs))
		for _, x := range xs {
			if x < v {
				out = append(out, x)
			}
		}

		return out
	}

	parentsDiff := sets.SymDiff(below(truth.ParentsOf(v)), below(guess.ParentsOf(v)))
	undirectedDiff := sets.SymDiff(below(truth.UndirectedOf(v)), below(guess.UndirectedOf(v)))
	childrenDiff := sets.SymDiff(below(truth.ChildrenOf(v)), below(guess.ChildrenOf(v)))

	disagreeing := sets.Union(sets.Union(parentsDiff, undirectedDiff), childrenDiff)

	return len(disagreeing)
}
