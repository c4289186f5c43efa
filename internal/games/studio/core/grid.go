package core

import "fmt"

// Cell is the content of one grid position.
// Properties is a copy of the block definition taken when the block was placed,
// so later catalog changes never reach cells already on the grid.
type Cell struct {
	Type        string
	RenderClass string
	Properties  BlockDef
}

// EmptyCell returns the cell every position holds before anything is painted.
func EmptyCell() Cell {
	return Cell{Type: EmptyID}
}

// CellFor returns the cell produced by placing def.
func CellFor(def BlockDef) Cell {
	return Cell{Type: def.ID, RenderClass: def.RenderClass, Properties: def}
}

// IsEmpty reports whether the cell holds no block.
func (c Cell) IsEmpty() bool {
	return c.Type == EmptyID
}

// Grid is an immutable rectangular board of cells.
//
// Set returns a new Grid and leaves the receiver untouched. Rows that are not
// modified are shared between the old and new values, and rows are never
// written after construction, so any Grid value can be kept as a snapshot.
type Grid struct {
	width  int
	height int
	rows   [][]Cell
}

// NewGrid creates a grid filled with empty cells.
// Non-positive dimensions are raised to 1 so a grid is never degenerate.
func NewGrid(width, height int) Grid {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}

	rows := make([][]Cell, height)
	for y := range rows {
		row := make([]Cell, width)
		for x := range row {
			row[x] = EmptyCell()
		}
		rows[y] = row
	}
	return Grid{width: width, height: height, rows: rows}
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) lies inside the grid.
func (g Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Get returns the cell at (x, y).
func (g Grid) Get(x, y int) (Cell, error) {
	if !g.InBounds(x, y) {
		return Cell{}, fmt.Errorf("get (%d,%d) in %dx%d grid: %w", x, y, g.width, g.height, ErrOutOfBounds)
	}
	return g.rows[y][x], nil
}

// At returns the cell at c, or the empty cell when c is out of bounds.
// Renderers use it where bounds were already checked.
func (g Grid) At(c Coord) Cell {
	if !g.InBounds(c.X, c.Y) {
		return EmptyCell()
	}
	return g.rows[c.Y][c.X]
}

// Set returns a copy of the grid with the cell at (x, y) replaced.
// On error the returned grid is the receiver unchanged.
func (g Grid) Set(x, y int, cell Cell) (Grid, error) {
	if !g.InBounds(x, y) {
		return g, fmt.Errorf("set (%d,%d) in %dx%d grid: %w", x, y, g.width, g.height, ErrOutOfBounds)
	}

	row := make([]Cell, g.width)
	copy(row, g.rows[y])
	row[x] = cell

	rows := make([][]Cell, g.height)
	copy(rows, g.rows)
	rows[y] = row

	return Grid{width: g.width, height: g.height, rows: rows}, nil
}

// FillRow returns a copy of the grid with every cell of row y replaced.
func (g Grid) FillRow(y int, cell Cell) (Grid, error) {
	if y < 0 || y >= g.height {
		return g, fmt.Errorf("fill row %d in %dx%d grid: %w", y, g.width, g.height, ErrOutOfBounds)
	}

	row := make([]Cell, g.width)
	for x := range row {
		row[x] = cell
	}

	rows := make([][]Cell, g.height)
	copy(rows, g.rows)
	rows[y] = row

	return Grid{width: g.width, height: g.height, rows: rows}, nil
}

// Clone returns a deep copy that shares no rows with the receiver.
func (g Grid) Clone() Grid {
	rows := make([][]Cell, len(g.rows))
	for y, r := range g.rows {
		rows[y] = append([]Cell(nil), r...)
	}
	return Grid{width: g.width, height: g.height, rows: rows}
}

// Equal returns true if two grids have the same dimensions and contents.
func (g Grid) Equal(other Grid) bool {
	if g.width != other.width || g.height != other.height {
		return false
	}
	for y := range g.rows {
		for x := range g.rows[y] {
			if g.rows[y][x] != other.rows[y][x] {
				return false
			}
		}
	}
	return true
}

// Count returns the number of cells matching pred.
func (g Grid) Count(pred func(Cell) bool) int {
	n := 0
	for _, row := range g.rows {
		for _, c := range row {
			if pred(c) {
				n++
			}
		}
	}
	return n
}

// IsZero reports whether the grid was never initialised.
func (g Grid) IsZero() bool {
	return g.rows == nil
}
