package search

// CostTable records the best known cost per position for one search run.
//
// Lookup must return Infinity for positions that were never updated.
// Run only calls Update with a cost strictly lower than the current Lookup
// value, so entries only ever decrease.
type CostTable[P any] interface {
	Lookup(p P) int64
	Update(p P, cost int64)
}

// MapCostTable is a hash-backed CostTable for arbitrary comparable positions.
// Absent keys read as Infinity.
type MapCostTable[P comparable] struct {
	costs map[P]int64
}

// NewMapCostTable returns an empty MapCostTable.
func NewMapCostTable[P comparable]() *MapCostTable[P] {
	return &MapCostTable[P]{costs: make(map[P]int64)}
}

// Lookup returns the recorded cost of p, or Infinity if p was never updated.
func (t *MapCostTable[P]) Lookup(p P) int64 {
	c, ok := t.costs[p]
	if !ok {
		return Infinity
	}

	return c
}

// Update records cost for p.
func (t *MapCostTable[P]) Update(p P, cost int64) {
	t.costs[p] = cost
}

// Len returns the number of positions with a finite cost.
func (t *MapCostTable[P]) Len() int { return len(t.costs) }

// CostTableFuncs adapts a lookup/update function pair to CostTable.
// Both fields must be set.
type CostTableFuncs[P any] struct {
	LookupFn func(p P) int64
	UpdateFn func(p P, cost int64)
}

// Lookup calls LookupFn.
func (f CostTableFuncs[P]) Lookup(p P) int64 { return f.LookupFn(p) }

// Update calls UpdateFn.
func (f CostTableFuncs[P]) Update(p P, cost int64) { f.UpdateFn(p, cost) }
