// Package search provides a generic best-first (Dijkstra-style) shortest-path
// engine over an abstract state space.
//
// Overview:
//
//   - Run computes the minimum cost from a start State to a single goal position.
//   - The engine knows nothing about grids, graphs or puzzles. Everything
//     domain-specific is injected:
//     • Position:  any comparable, totally ordered type (see Position).
//     • CostTable: how the best known cost per position is looked up and updated.
//     • Expander:  how successor states (and their costs) are generated.
//   - The frontier is a min-heap ordered by cost, ties broken by position order,
//     so results and pop sequences are reproducible.
//
// Algorithm:
//
//  1. Seed the frontier with the start state.
//  2. Pop the cheapest entry. If it sits on the goal, its cost is optimal: return it.
//  3. If its cost exceeds the table entry for its position, it is stale: discard.
//  4. Otherwise expand it and relax every successor whose cost is strictly lower
//     than the table entry (update table, push successor).
//  5. An empty frontier means the goal is unreachable (found == false, no error).
//
// The engine uses the "lazy decrease-key" strategy: improved positions are pushed
// again and the outdated entries are filtered when popped.
//
// Complexity:
//
//   - Time:  O((V + E) log E) where V = reachable positions, E = generated successors.
//   - Space: O(V + E) for the cost table and the frontier.
//
// Errors (sentinel):
//
//   - ErrNilExpander:     expansion policy is nil.
//   - ErrNilCostTable:    cost table is nil.
//   - ErrNegativeCost:    start cost is negative.
//   - ErrNegativeStep:    an expansion produced a successor cheaper than its parent.
//   - ErrOptionViolation: an invalid Option was supplied.
//
// Example usage:
//
//	cost, found, err := search.Run(
//	    expander,
//	    search.NewMapCostTable[node](),
//	    search.State[node]{Cost: 0, Pos: start},
//	    goal,
//	)
//
// Thread safety:
//
//   - A single Run owns its frontier and cost table; do not share a CostTable
//     between concurrent runs. Expanders must be safe for concurrent use only if
//     the caller runs several searches in parallel over the same expander.
package search
