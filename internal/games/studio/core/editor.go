package core

import (
	"fmt"
)

// EditRules restricts where blocks may be placed.
type EditRules struct {
	// ProtectedRows lists rows that cannot be painted (the platformer ground).
	ProtectedRows []int
}

func (r EditRules) protected(y int) bool {
	for _, row := range r.ProtectedRows {
		if row == y {
			return true
		}
	}
	return false
}

// PlaceBlock returns g with def placed at (x, y).
// With a nil def, an out-of-range coordinate or a protected row it returns g
// unchanged together with the reason; the announcement explains the refusal
// where the player should hear one.
func PlaceBlock(g Grid, x, y int, def *BlockDef, rules EditRules) (Grid, Announcement, error) {
	if def == nil {
		return g, Announcement{
			Category: CategoryBlocked,
			Message:  "Select a block first",
		}, ErrNoBlockSelected
	}
	if !g.InBounds(x, y) {
		return g, Announcement{}, fmt.Errorf("place %s at (%d,%d): %w", def.ID, x, y, ErrOutOfBounds)
	}
	if rules.protected(y) {
		return g, Announcement{
			Category: CategoryBlocked,
			Message:  fmt.Sprintf("Row %d is the ground and cannot be changed", y+1),
			Cell:     cellContext(x, y, g.At(C(x, y))),
		}, fmt.Errorf("place %s on row %d: %w", def.ID, y, ErrImmutableCell)
	}

	cell := CellFor(*def)
	name := def.Name
	if def.ID == EmptyID {
		cell = EmptyCell()
		name = "Eraser"
	}

	next, err := g.Set(x, y, cell)
	if err != nil {
		return g, Announcement{}, err
	}

	msg := placementMessage(name, x, y)
	if def.ID == EmptyID {
		msg = fmt.Sprintf("Cleared row %d, column %d", y+1, x+1)
	}
	return next, Announcement{
		Category: CategoryPlacement,
		Message:  msg,
		Cell:     cellContext(x, y, cell),
	}, nil
}

// Editor owns the edited grid, its history and the palette selection.
type Editor struct {
	catalog  *Catalog
	history  *History
	grid     Grid
	width    int
	height   int
	rules    EditRules
	ground   *BlockDef
	selected *BlockDef
}

// EditorOptions configures a new Editor.
type EditorOptions struct {
	Width      int
	Height     int
	MaxHistory int
	// Ground, when set, is laid on the bottom row which then becomes protected.
	Ground *BlockDef
}

// NewEditor creates an editor with a fresh grid recorded as history entry 0.
func NewEditor(catalog *Catalog, opts EditorOptions) *Editor {
	e := &Editor{
		catalog: catalog,
		history: NewHistory(opts.MaxHistory),
		width:   opts.Width,
		height:  opts.Height,
		ground:  opts.Ground,
	}
	e.grid = e.blankGrid()
	if e.ground != nil {
		e.rules.ProtectedRows = []int{e.grid.Height() - 1}
	}
	e.history.Record(e.grid)
	return e
}

// blankGrid is an empty grid with the ground row laid when configured.
func (e *Editor) blankGrid() Grid {
	g := NewGrid(e.width, e.height)
	if e.ground != nil {
		g, _ = g.FillRow(g.Height()-1, CellFor(*e.ground))
	}
	return g
}

// Select makes id the active block. EmptyID selects the eraser.
func (e *Editor) Select(id string) (BlockDef, error) {
	if id == EmptyID {
		def := BlockDef{ID: EmptyID, Name: "Eraser", RenderClass: ""}
		e.selected = &def
		return def, nil
	}
	def, ok := e.catalog.Lookup(id)
	if !ok {
		return BlockDef{}, fmt.Errorf("select %q: %w", id, ErrUnknownBlock)
	}
	e.selected = &def
	return def, nil
}

// Deselect clears the active block.
func (e *Editor) Deselect() {
	e.selected = nil
}

// Selected returns the active block, or nil.
func (e *Editor) Selected() *BlockDef {
	if e.selected == nil {
		return nil
	}
	def := *e.selected
	return &def
}

// Paint places the selected block at (x, y) and records the result.
// Painting a cell with the block it already holds changes nothing and records
// nothing, so dragging over a painted cell does not flood the history.
func (e *Editor) Paint(x, y int) (Announcement, error) {
	next, ann, err := PlaceBlock(e.grid, x, y, e.selected, e.rules)
	if err != nil {
		return ann, err
	}
	if next.At(C(x, y)) == e.grid.At(C(x, y)) {
		return Announcement{}, nil
	}
	e.grid = next
	e.history.Record(next)
	return ann, nil
}

// Reset replaces the grid with a blank one as a new, undoable history entry.
func (e *Editor) Reset() Announcement {
	e.grid = e.blankGrid()
	e.history.Record(e.grid)
	return Announcement{Category: CategoryPlacement, Message: "Grid cleared"}
}

// Undo restores the previous snapshot. It returns false at the oldest entry.
func (e *Editor) Undo() (Announcement, bool) {
	g, ok := e.history.Undo()
	if !ok {
		return Announcement{Category: CategoryBlocked, Message: "Nothing to undo"}, false
	}
	e.grid = g
	return Announcement{Category: CategoryPlacement, Message: "Undone"}, true
}

// Redo restores the next snapshot. It returns false at the newest entry.
func (e *Editor) Redo() (Announcement, bool) {
	g, ok := e.history.Redo()
	if !ok {
		return Announcement{Category: CategoryBlocked, Message: "Nothing to redo"}, false
	}
	e.grid = g
	return Announcement{Category: CategoryPlacement, Message: "Redone"}, true
}

// Grid returns the edited grid.
func (e *Editor) Grid() Grid {
	return e.grid
}

// History exposes the undo log for the UI (button states).
func (e *Editor) History() *History {
	return e.history
}

// Rules returns the edit restrictions in force.
func (e *Editor) Rules() EditRules {
	return e.rules
}

// Catalog returns the block catalog.
func (e *Editor) Catalog() *Catalog {
	return e.catalog
}
