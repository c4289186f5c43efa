package core

// History is a linear undo/redo log of grid snapshots.
//
// Entries after the cursor are redo targets. Recording while the cursor is
// not at the end discards them first; there is no branching.
type History struct {
	entries    []Grid
	current    int
	maxEntries int
}

// NewHistory creates an empty history. maxEntries <= 0 means unlimited;
// otherwise the oldest entries are dropped once the limit is exceeded.
func NewHistory(maxEntries int) *History {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &History{current: -1, maxEntries: maxEntries}
}

// Record appends a snapshot after discarding everything past the cursor and
// moves the cursor onto it. It is the only way entries are added.
func (h *History) Record(g Grid) {
	h.entries = append(h.entries[:h.current+1], g)
	h.current = len(h.entries) - 1

	if h.maxEntries > 0 && len(h.entries) > h.maxEntries {
		drop := len(h.entries) - h.maxEntries
		h.entries = append([]Grid(nil), h.entries[drop:]...)
		h.current -= drop
	}
}

// Undo moves the cursor back one entry and returns the snapshot there.
// At the first entry it is a no-op returning the current snapshot and false.
func (h *History) Undo() (Grid, bool) {
	if h.current <= 0 {
		g, _ := h.Current()
		return g, false
	}
	h.current--
	return h.entries[h.current], true
}

// Redo moves the cursor forward one entry and returns the snapshot there.
// At the last entry it is a no-op returning the current snapshot and false.
func (h *History) Redo() (Grid, bool) {
	if h.current >= len(h.entries)-1 {
		g, _ := h.Current()
		return g, false
	}
	h.current++
	return h.entries[h.current], true
}

// Current returns the snapshot under the cursor; false when nothing was recorded.
func (h *History) Current() (Grid, bool) {
	if h.current < 0 {
		return Grid{}, false
	}
	return h.entries[h.current], true
}

// CanUndo reports whether Undo would move the cursor.
func (h *History) CanUndo() bool {
	return h.current > 0
}

// CanRedo reports whether Redo would move the cursor.
func (h *History) CanRedo() bool {
	return h.current >= 0 && h.current < len(h.entries)-1
}

// Len returns the number of stored entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Cursor returns the index of the current entry, -1 when empty.
func (h *History) Cursor() int {
	return h.current
}
