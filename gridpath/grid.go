// Package gridpath provides construction and read-only accessors for Grid.
package gridpath

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of markers.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if rows has no rows or no columns,
// ErrNonRectangular if any row length differs,
// ErrUnknownMarker for markers other than Passable/Impassable,
// ErrBadStepCost if opts.StepCost ≤ 0.
// Complexity: O(W×H) time and memory.
func NewGrid(rows [][]Marker, opts GridOptions) (*Grid, error) {
	if opts.StepCost <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadStepCost, opts.StepCost)
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	cells := make([][]Marker, h)
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, m := range row {
			if m != Passable && m != Impassable {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownMarker, rune(m), r, c)
			}
		}
		cells[r] = make([]Marker, w)
		copy(cells[r], row)
	}

	offsets := conn4Offsets
	if opts.Conn == Conn8 {
		offsets = conn8Offsets
	}

	return &Grid{
		Width:    w,
		Height:   h,
		Conn:     opts.Conn,
		StepCost: opts.StepCost,
		cells:    cells,
		offsets:  offsets,
	}, nil
}

// FromLines builds a Grid from text rows such as "..#".
func FromLines(lines []string, opts GridOptions) (*Grid, error) {
	rows := make([][]Marker, len(lines))
	for i, line := range lines {
		rows[i] = []Marker(line)
	}

	return NewGrid(rows, opts)
}

// ParseReader reads a grid from r, one row per line. Blank lines and
// surrounding whitespace are ignored. An optional first line "H W" declares
// the dimensions; the rows that follow must match it (ErrHeaderMismatch).
func ParseReader(r io.Reader, opts GridOptions) (*Grid, error) {
	var (
		lines     []string
		h, w      int
		hasHeader bool
	)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if len(lines) == 0 && !hasHeader {
			if hh, ww, ok := parseHeader(line); ok {
				h, w, hasHeader = hh, ww, true
				continue
			}
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridpath: read grid: %w", err)
	}

	if hasHeader {
		if len(lines) != h {
			return nil, fmt.Errorf("%w: header declares %d rows, got %d", ErrHeaderMismatch, h, len(lines))
		}
		for i, line := range lines {
			if len(line) != w {
				return nil, fmt.Errorf("%w: header declares width %d, row %d has %d", ErrHeaderMismatch, w, i, len(line))
			}
		}
	}

	return FromLines(lines, opts)
}

// parseHeader recognises "H W" with two non-negative integers.
func parseHeader(line string) (h, w int, ok bool) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(fields[0])
	if err != nil || h < 0 {
		return 0, 0, false
	}
	w, err = strconv.Atoi(fields[1])
	if err != nil || w < 0 {
		return 0, 0, false
	}

	return h, w, true
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// At returns the marker at c. c must be in bounds.
func (g *Grid) At(c Cell) Marker {
	return g.cells[c.Row][c.Col]
}

// Passable reports whether c is in bounds and passable.
func (g *Grid) Passable(c Cell) bool {
	return g.InBounds(c) && g.cells[c.Row][c.Col] == Passable
}

// WhiteCount returns the number of passable cells.
// Complexity: O(W×H).
func (g *Grid) WhiteCount() int {
	n := 0
	for _, row := range g.cells {
		for _, m := range row {
			if m == Passable {
				n++
			}
		}
	}
	return n
}

// Start returns the top-left cell.
func (g *Grid) Start() Cell { return Cell{Row: 0, Col: 0} }

// Goal returns the bottom-right cell.
func (g *Grid) Goal() Cell { return Cell{Row: g.Height - 1, Col: g.Width - 1} }

// Offsets returns the move offsets for the grid's connectivity.
// The returned slice must not be modified.
func (g *Grid) Offsets() []Offset {
	return g.offsets
}

// index maps c to a row-major index: Row*Width + Col.
func (g *Grid) index(c Cell) int {
	return c.Row*g.Width + c.Col
}

// String renders the grid as newline-separated rows.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.Height * (g.Width + 1))
	for r, row := range g.cells {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, m := range row {
			sb.WriteByte(byte(m))
		}
	}
	return sb.String()
}
