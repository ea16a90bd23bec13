package gridpath

import "github.com/katalvlaran/gridpath/search"

// IsValidMove reports whether moving from pos by off is allowed: the
// destination must be inside the grid and the source cell pos must be
// passable. The destination's marker is deliberately not checked.
// Complexity: O(1).
func (g *Grid) IsValidMove(pos Cell, off Offset) bool {
	if !g.InBounds(pos.Add(off)) {
		return false
	}
	return g.Passable(pos)
}

// Expander is the grid's expansion policy for search.Run.
// It is stateless apart from the read-only grid and is safe for concurrent use.
type Expander struct {
	grid *Grid
}

// NewExpander returns the expansion policy of g.
func NewExpander(g *Grid) Expander {
	return Expander{grid: g}
}

// Expand emits, for each offset of the grid's connectivity in order, the
// neighbour of s.Pos reachable by a valid move, at cost s.Cost + StepCost.
func (e Expander) Expand(s search.State[Cell]) []search.State[Cell] {
	offsets := e.grid.Offsets()
	next := make([]search.State[Cell], 0, len(offsets))
	for _, off := range offsets {
		if !e.grid.IsValidMove(s.Pos, off) {
			continue
		}
		next = append(next, search.State[Cell]{
			Cost: s.Cost + e.grid.StepCost,
			Pos:  s.Pos.Add(off),
		})
	}
	return next
}
