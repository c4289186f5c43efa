package core_test

import (
	"errors"
	"testing"

	"github.com/vovakirdan/tile-studio/internal/games/studio/core"
)

var (
	wallDef  = core.BlockDef{ID: "wall", Name: "Wall", RenderClass: "wall", Solid: true}
	waterDef = core.BlockDef{ID: "water", Name: "Water", RenderClass: "water", Hazard: true}
	coinDef  = core.BlockDef{ID: "coin", Name: "Coin", RenderClass: "coin", Collectible: true, Points: 10}
	doorDef  = core.BlockDef{ID: "door", Name: "Door", RenderClass: "door", Interactive: true}
)

// place builds a grid from a map of positions to definitions.
func place(t *testing.T, w, h int, blocks map[core.Coord]core.BlockDef) core.Grid {
	t.Helper()
	g := core.NewGrid(w, h)
	for pos, def := range blocks {
		var err error
		g, err = g.Set(pos.X, pos.Y, core.CellFor(def))
		if err != nil {
			t.Fatalf("set %v: %v", pos, err)
		}
	}
	return g
}

func TestMoveIntoEmpty(t *testing.T) {
	g := core.NewGrid(5, 5)
	a := core.NewActor(core.C(0, 0), 3)

	a, res, err := core.Move(a, g, 1, 0, core.C(0, 0))
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if res.Outcome != core.OutcomeMoved {
		t.Errorf("expected moved, got %v", res.Outcome)
	}
	if a.Pos != core.C(1, 0) {
		t.Errorf("expected (1,0), got %v", a.Pos)
	}
	if res.Announcement.Message != "Player at row 1, column 2" {
		t.Errorf("unexpected announcement %q", res.Announcement.Message)
	}
}

func TestMoveOutOfBounds(t *testing.T) {
	g := core.NewGrid(3, 3)
	a := core.NewActor(core.C(0, 0), 3)

	next, res, err := core.Move(a, g, -1, 0, core.C(0, 0))
	if !errors.Is(err, core.ErrOutOfBounds) {
		t.Errorf("expected ErrOutOfBounds, got %v", err)
	}
	if res.Outcome != core.OutcomeBlocked {
		t.Errorf("expected blocked, got %v", res.Outcome)
	}
	if next != a {
		t.Error("actor changed on an out-of-bounds move")
	}
}

func TestMoveRejectsDiagonal(t *testing.T) {
	g := core.NewGrid(3, 3)
	a := core.NewActor(core.C(1, 1), 3)

	for _, d := range [][2]int{{1, 1}, {0, 0}, {2, 0}, {0, -2}} {
		next, _, err := core.Move(a, g, d[0], d[1], core.C(0, 0))
		if !errors.Is(err, core.ErrInvalidTransition) {
			t.Errorf("move %v: expected ErrInvalidTransition, got %v", d, err)
		}
		if next != a {
			t.Errorf("move %v changed the actor", d)
		}
	}
}

func TestMoveIntoSolidNeverMoves(t *testing.T) {
	// Walls on every side of the centre, from every direction.
	g := place(t, 3, 3, map[core.Coord]core.BlockDef{
		core.C(1, 0): wallDef,
		core.C(0, 1): wallDef,
		core.C(2, 1): wallDef,
		core.C(1, 2): wallDef,
	})
	a := core.NewActor(core.C(1, 1), 3)

	for _, d := range []core.Dir{core.DirUp, core.DirRight, core.DirDown, core.DirLeft} {
		dx, dy := d.Delta()
		next, res, err := core.Move(a, g, dx, dy, core.C(0, 0))
		if err != nil {
			t.Fatalf("%v: %v", d, err)
		}
		if res.Outcome != core.OutcomeBlocked {
			t.Errorf("%v: expected blocked, got %v", d, res.Outcome)
		}
		if next.Pos != a.Pos {
			t.Errorf("%v: actor moved to %v", d, next.Pos)
		}
	}
}

func TestMoveCollectsOnce(t *testing.T) {
	g := place(t, 3, 1, map[core.Coord]core.BlockDef{core.C(1, 0): coinDef})
	a := core.NewActor(core.C(0, 0), 3)

	a, res, err := core.Move(a, g, 1, 0, core.C(0, 0))
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if res.Outcome != core.OutcomeCollected || res.Clear == nil {
		t.Fatalf("expected a collection with a clear request, got %+v", res)
	}
	if a.Score != 10 {
		t.Errorf("expected score 10, got %d", a.Score)
	}

	// The grid owner empties the cell; walking back over it adds nothing.
	g, _ = g.Set(res.Clear.X, res.Clear.Y, core.EmptyCell())
	a, _, _ = core.Move(a, g, 1, 0, core.C(0, 0))
	a, _, _ = core.Move(a, g, -1, 0, core.C(0, 0))
	if a.Score != 10 {
		t.Errorf("revisit changed score to %d", a.Score)
	}
}

func TestMoveHazardRespawns(t *testing.T) {
	tests := []struct {
		name  string
		start core.Coord
		dx    int
		dy    int
	}{
		{"from the left", core.C(1, 1), 1, 0},
		{"from above", core.C(2, 0), 0, 1},
		{"from the right", core.C(3, 1), -1, 0},
		{"from below", core.C(2, 2), 0, -1},
	}

	g := place(t, 4, 3, map[core.Coord]core.BlockDef{core.C(2, 1): waterDef})

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := core.NewActor(tt.start, 3)
			a, res, err := core.Move(a, g, tt.dx, tt.dy, core.C(0, 0))
			if err != nil {
				t.Fatalf("Move: %v", err)
			}
			if res.Outcome != core.OutcomeHazard {
				t.Errorf("expected hazard, got %v", res.Outcome)
			}
			if a.Pos != core.C(0, 0) {
				t.Errorf("expected respawn at (0,0), got %v", a.Pos)
			}
			if a.Lives != 2 {
				t.Errorf("expected 2 lives, got %d", a.Lives)
			}
		})
	}
}

func TestMoveOntoInteractive(t *testing.T) {
	g := place(t, 2, 1, map[core.Coord]core.BlockDef{core.C(1, 0): doorDef})
	a := core.NewActor(core.C(0, 0), 3)

	a, res, err := core.Move(a, g, 1, 0, core.C(0, 0))
	if err != nil {
		t.Fatalf("Move: %v", err)
	}
	if res.Outcome != core.OutcomeInteracted {
		t.Errorf("expected interacted, got %v", res.Outcome)
	}
	if a.Pos != core.C(1, 0) {
		t.Errorf("actor should stand on the door, got %v", a.Pos)
	}
}
