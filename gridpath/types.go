// Package gridpath defines core types, options, and sentinel errors
// for grid shortest-path solving.
package gridpath

import (
	"cmp"
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridpath: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridpath: all rows must have the same length")
	// ErrUnknownMarker indicates a cell character that is neither '.' nor '#'.
	ErrUnknownMarker = errors.New("gridpath: unknown cell marker")
	// ErrHeaderMismatch indicates an "H W" header that disagrees with the rows that follow.
	ErrHeaderMismatch = errors.New("gridpath: header does not match grid dimensions")
	// ErrBadStepCost indicates a non-positive step cost.
	ErrBadStepCost = errors.New("gridpath: step cost must be positive")
)

// Marker is the content of one grid cell.
type Marker byte

const (
	// Passable ("white") cell.
	Passable Marker = '.'
	// Impassable ("black") cell.
	Impassable Marker = '#'
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: up, down, right, left.
	Conn4 Connectivity = iota
	// Conn8 adds the four diagonals to Conn4.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

// ParseConnectivity maps "4"/"8" to a Connectivity.
func ParseConnectivity(s string) (Connectivity, error) {
	switch s {
	case "4", "":
		return Conn4, nil
	case "8":
		return Conn8, nil
	}
	return Conn4, fmt.Errorf("gridpath: unknown connectivity %q", s)
}

// Cell is a grid position. Cells are ordered row-major.
type Cell struct {
	Row, Col int
}

// Compare orders cells row-major: by Row, then by Col.
func (c Cell) Compare(o Cell) int {
	if r := cmp.Compare(c.Row, o.Row); r != 0 {
		return r
	}
	return cmp.Compare(c.Col, o.Col)
}

// Add returns c shifted by off.
func (c Cell) Add(off Offset) Cell {
	return Cell{Row: c.Row + off.DRow, Col: c.Col + off.DCol}
}

// String formats the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Offset is a relative move between cells.
type Offset struct {
	DRow, DCol int
}

var (
	// conn4Offsets lists up, down, right, left.
	conn4Offsets = []Offset{{-1, 0}, {1, 0}, {0, 1}, {0, -1}}
	// conn8Offsets appends the diagonals.
	conn8Offsets = []Offset{{-1, 0}, {1, 0}, {0, 1}, {0, -1}, {-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
)

// GridOptions contains tunable parameters for grid solving.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
	// StepCost is the cost of a single move. Must be > 0.
	StepCost int64
}

// DefaultGridOptions returns a GridOptions with default settings:
// Conn=Conn4, StepCost=1.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn:     Conn4,
		StepCost: 1,
	}
}

// Grid is an immutable rectangular grid of markers.
// cells[r][c] holds the marker at row r, column c.
type Grid struct {
	Width, Height int
	Conn          Connectivity
	StepCost      int64
	cells         [][]Marker
	offsets       []Offset
}
