package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tile-studio/internal/games/studio/core"
)

func gridWith(t *testing.T, base core.Grid, x, y int, id string) core.Grid {
	t.Helper()
	next, err := base.Set(x, y, core.CellFor(core.BlockDef{ID: id, Name: id}))
	require.NoError(t, err)
	return next
}

func TestHistoryStartsEmpty(t *testing.T) {
	h := core.NewHistory(0)

	assert.Equal(t, -1, h.Cursor())
	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())

	_, ok := h.Current()
	assert.False(t, ok)
}

func TestHistoryRecordDiscardsRedoBranch(t *testing.T) {
	base := core.NewGrid(3, 3)
	a := gridWith(t, base, 0, 0, "a")
	b := gridWith(t, a, 1, 0, "b")
	c := gridWith(t, a, 2, 0, "c")

	h := core.NewHistory(0)
	h.Record(a)
	h.Record(b)

	undone, ok := h.Undo()
	require.True(t, ok)
	assert.True(t, undone.Equal(a))

	h.Record(c)

	_, ok = h.Redo()
	assert.False(t, ok, "redo must be unavailable after recording over a branch")
	assert.Equal(t, 2, h.Len())

	cur, _ := h.Current()
	assert.True(t, cur.Equal(c))
}

func TestHistoryUndoRedoInverse(t *testing.T) {
	base := core.NewGrid(3, 3)
	a := gridWith(t, base, 0, 0, "a")
	b := gridWith(t, a, 1, 1, "b")
	c := gridWith(t, b, 2, 2, "c")

	h := core.NewHistory(0)
	for _, g := range []core.Grid{a, b, c} {
		h.Record(g)
	}
	_, ok := h.Undo()
	require.True(t, ok)

	// Cursor is on b, strictly inside the log.
	before, _ := h.Current()
	_, ok = h.Undo()
	require.True(t, ok)
	after, ok := h.Redo()
	require.True(t, ok)

	assert.True(t, after.Equal(before))
	assert.Equal(t, 1, h.Cursor())
}

func TestHistoryNoOpAtEnds(t *testing.T) {
	h := core.NewHistory(0)
	g := core.NewGrid(2, 2)
	h.Record(g)

	got, ok := h.Undo()
	assert.False(t, ok)
	assert.True(t, got.Equal(g))

	got, ok = h.Redo()
	assert.False(t, ok)
	assert.True(t, got.Equal(g))
	assert.Equal(t, 0, h.Cursor())
}

func TestHistorySnapshotIndependence(t *testing.T) {
	h := core.NewHistory(0)
	live := core.NewGrid(3, 3)
	h.Record(live)

	live = gridWith(t, live, 1, 1, "wall")

	snap, _ := h.Current()
	assert.True(t, snap.At(core.C(1, 1)).IsEmpty(), "recorded snapshot changed after the live grid was edited")
	assert.Equal(t, "wall", live.At(core.C(1, 1)).Type)
}

func TestHistoryMaxEntries(t *testing.T) {
	h := core.NewHistory(3)
	g := core.NewGrid(5, 1)

	for x := 0; x < 5; x++ {
		g = gridWith(t, g, x, 0, "wall")
		h.Record(g)
	}

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Cursor())

	// Only two undos remain.
	_, ok := h.Undo()
	assert.True(t, ok)
	_, ok = h.Undo()
	assert.True(t, ok)
	_, ok = h.Undo()
	assert.False(t, ok)
}
