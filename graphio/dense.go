package graphio

// denseStream walks an n×n dense matrix row by row, yielding m[i][j] as the
// triple (Outer: i, Inner: j) under both layouts. The layout only decides
// how a triple is read: under ColumnMajor the row index of m is the column
// of the described graph, so m is the transpose of the row-to-column
// matrix of the same graph.
type denseStream struct {
	m     [][]int8
	n     int
	order Order
	outer int
	inner int
}

// NewDenseStream returns a Stream over a dense n×n matrix under the given
// layout. m must be square; callers typically pass this straight to
// Collect.
func NewDenseStream(m [][]int8, order Order) Stream {
	return &denseStream{m: m, n: len(m), order: order}
}

func (d *denseStream) Next() (Triple, bool) {
	if d.outer >= d.n {
		return Triple{}, false
	}
	v := d.m[d.outer][d.inner]
	t := Triple{Outer: d.outer, Inner: d.inner, Value: v}
	d.inner++
	if d.inner >= d.n {
		d.inner = 0
		d.outer++
	}

	return t, true
}

// CollectDense is a convenience combining NewDenseStream and Collect.
func CollectDense(m [][]int8, order Order) ([]Triple, error) {
	return Collect(order, NewDenseStream(m, order))
}
