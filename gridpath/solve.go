package gridpath

import "github.com/katalvlaran/gridpath/search"

// seedCost is the cost of standing on the start cell: path costs count
// cells, not moves.
const seedCost int64 = 1

// ShortestPath returns the cost of a cheapest path from Start to Goal, with
// the start cell itself counted as seedCost. With the default StepCost of 1
// this is the number of cells on the path. found is false when the goal is
// unreachable. A fresh DenseTable is used for every call.
func ShortestPath(g *Grid, opts ...search.Option[Cell]) (int64, bool, error) {
	return ShortestPathWith(g, NewDenseTable(g), opts...)
}

// ShortestPathWith is ShortestPath with a caller-supplied cost table, which
// must be empty (all search.Infinity) and is left populated on return.
func ShortestPathWith(g *Grid, costs search.CostTable[Cell], opts ...search.Option[Cell]) (int64, bool, error) {
	start := search.State[Cell]{Cost: seedCost, Pos: g.Start()}
	return search.Run[Cell](NewExpander(g), costs, start, g.Goal(), opts...)
}

// Solve returns the number of passable cells that are not on a shortest
// path from Start to Goal: WhiteCount minus the number of cells on the path.
// The cell count is recovered from the path cost, so the answer does not
// depend on StepCost.
// found is false when no path exists, including when Start or Goal is
// impassable. The move rule alone only checks the cell being left, so
// ShortestPath can still report a path ending on an impassable Goal; Solve
// does not count such a path.
//
// Complexity: O(W×H×d×log(W×H)) time, O(W×H) memory.
func Solve(g *Grid, opts ...search.Option[Cell]) (int, bool, error) {
	if !g.Passable(g.Start()) || !g.Passable(g.Goal()) {
		return 0, false, nil
	}
	cost, found, err := ShortestPath(g, opts...)
	if err != nil || !found {
		return 0, false, err
	}

	cells := (cost-seedCost)/g.StepCost + 1
	return g.WhiteCount() - int(cells), true, nil
}
