package gridpath

import "github.com/katalvlaran/gridpath/search"

// DenseTable is a search.CostTable backed by a row-major slice, one entry
// per grid cell, pre-filled with search.Infinity.
// Memory: O(W×H).
type DenseTable struct {
	grid  *Grid
	costs []int64
}

// NewDenseTable allocates a table for g with every cell at search.Infinity.
func NewDenseTable(g *Grid) *DenseTable {
	costs := make([]int64, g.Width*g.Height)
	for i := range costs {
		costs[i] = search.Infinity
	}
	return &DenseTable{grid: g, costs: costs}
}

// Lookup returns the recorded cost of c. c must be in bounds.
func (t *DenseTable) Lookup(c Cell) int64 {
	return t.costs[t.grid.index(c)]
}

// Update records cost for c. c must be in bounds.
func (t *DenseTable) Update(c Cell, cost int64) {
	t.costs[t.grid.index(c)] = cost
}

// Reached returns the number of cells with a finite cost.
func (t *DenseTable) Reached() int {
	n := 0
	for _, c := range t.costs {
		if c != search.Infinity {
			n++
		}
	}
	return n
}
