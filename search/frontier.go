package search

// frontier is a min-heap of States ordered by Cost ascending, ties broken by
// position order. It implements heap.Interface and tolerates several entries
// for the same position (lazy decrease-key).
type frontier[P Position[P]] []State[P]

// Len returns the number of entries in the heap.
func (f frontier[P]) Len() int { return len(f) }

// Less orders by cost, then by position.
func (f frontier[P]) Less(i, j int) bool {
	if f[i].Cost != f[j].Cost {
		return f[i].Cost < f[j].Cost
	}

	return f[i].Pos.Compare(f[j].Pos) < 0
}

// Swap swaps two entries.
func (f frontier[P]) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push appends x; called by heap.Push.
func (f *frontier[P]) Push(x any) { *f = append(*f, x.(State[P])) }

// Pop removes the last entry; called by heap.Pop.
func (f *frontier[P]) Pop() any {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]

	return item
}
