// Package gridpath instantiates the generic search engine for rectangular
// grids of passable (".") and impassable ("#") cells.
//
// What:
//
//   - Grid wraps a validated, immutable rectangular [][]Marker.
//   - Expander is the grid's expansion policy: unit (StepCost) moves to the
//     4 (Conn4) or 8 (Conn8) neighbouring cells.
//   - DenseTable is a row-major cost table pre-filled with search.Infinity.
//   - ShortestPath returns the number of cells on a shortest path from the
//     top-left to the bottom-right cell.
//   - Solve returns WhiteCount - ShortestPath: the passable cells that are not
//     on the optimal path.
//
// Move rule:
//
//	A move from pos by off is valid when pos+off is inside the grid and the
//	source cell pos is passable. The destination is not inspected: an
//	impassable cell may be entered but never left.
//
// Complexity:
//
//   - ShortestPath / Solve: O(W×H×d×log(W×H)) time, O(W×H) memory (d = 4 or 8).
//   - NewGrid / FromLines / ParseReader: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:      no rows or no columns.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrUnknownMarker:  a character other than '.' or '#'.
//   - ErrHeaderMismatch: an "H W" header that disagrees with the rows.
//   - ErrBadStepCost:    GridOptions.StepCost ≤ 0.
package gridpath
