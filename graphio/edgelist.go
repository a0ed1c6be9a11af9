package graphio

import "context"

// Collect drains s, dropping zero-valued cells, validating every remaining
// value and rejecting the diagonal, and enforcing that consecutive triples
// are strictly increasing in (Outer, Inner) lexicographic order. The
// returned slice is ready to feed pdag construction.
//
// Errors:
//
//   - *BadValueError  — a cell held a value outside {0, 1, 2}.
//   - *SelfLoopError  — a non-zero cell sat on the diagonal.
//   - *OutOfOrderError — the declared layout's monotonicity was violated.
func Collect(order Order, s Stream) ([]Triple, error) {
	return CollectContext(context.Background(), order, s)
}

// CollectContext is Collect with a cancellation context, checked between
// triples; ctx.Err() is returned the first time it is found done.
func CollectContext(ctx context.Context, order Order, s Stream) ([]Triple, error) {
	out := make([]Triple, 0)
	havePrev := false
	var prev Triple

	for i := 0; ; i++ {
		if i%4096 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}
		t, ok := s.Next()
		if !ok {
			break
		}
		if t.Value == 0 {
			continue
		}
		if t.Value != 1 && t.Value != 2 {
			return nil, &BadValueError{Row: rowOf(order, t), Col: colOf(order, t), Value: t.Value}
		}
		if t.Outer == t.Inner {
			return nil, &SelfLoopError{V: t.Outer, Value: t.Value}
		}
		if havePrev && !lexLess(prev, t) {
			return nil, &OutOfOrderError{Prev: [2]int{prev.Outer, prev.Inner}, Next: [2]int{t.Outer, t.Inner}}
		}
		out = append(out, t)
		prev = t
		havePrev = true
	}

	return out, nil
}

func lexLess(a, b Triple) bool {
	if a.Outer != b.Outer {
		return a.Outer < b.Outer
	}

	return a.Inner < b.Inner
}

// rowOf/colOf translate a triple's (Outer, Inner) back to matrix (row, col)
// for error messages, given the declared layout.
func rowOf(order Order, t Triple) int {
	if order == RowMajor {
		return t.Outer
	}

	return t.Inner
}

func colOf(order Order, t Triple) int {
	if order == RowMajor {
		return t.Inner
	}

	return t.Outer
}

// Endpoints resolves a Triple to the (source, destination) pair it encodes
// for a directed edge (Value == 1), independent of the declared layout.
func Endpoints(order Order, t Triple) (from, to int) {
	if order == RowMajor {
		return t.Outer, t.Inner
	}

	return t.Inner, t.Outer
}

// UndirectedPair resolves a Triple of Value == 2 to its unordered endpoints.
func UndirectedPair(t Triple) (a, b int) {
	return t.Outer, t.Inner
}
