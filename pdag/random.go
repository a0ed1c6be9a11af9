package pdag

import "math/rand"

// RandomDAG samples a uniformly random labeled DAG on n vertices: a random
// permutation of [0, n) fixes a topological order, then each upper-triangle
// entry (in permuted coordinates) is included independently with
// probability p. Used by property-based tests to generate the universal
// properties in bulk; not part of the metric computation itself.
func RandomDAG(p float64, n int, rng *rand.Rand) *PDAG {
	perm := rng.Perm(n)
	m := make([][]int8, n)
	for i := range m {
		m[i] = make([]int8, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				m[perm[i]][perm[j]] = 1
			}
		}
	}
	dag, err := FromDenseRowMajor(m)
	if err != nil {
		// construction from a DAG-by-design matrix cannot fail; a failure
		// here indicates a bug in RandomDAG itself, not caller input.
		panic(err)
	}

	return dag
}
