package core

// Action is a key press translated into what it means to a game.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow - cursor/actor up
	ActionDown              // S, Down arrow - cursor/actor down
	ActionLeft              // A, Left arrow - cursor/actor left
	ActionRight             // D, Right arrow - cursor/actor right
	ActionJump              // Space - jump (platformer play mode)
	ActionConfirm           // Enter, Space - paint at cursor (edit mode)
	ActionUndo              // U, Ctrl+Z
	ActionRedo              // Y, Ctrl+Y
	ActionReset             // X - reset the grid
	ActionToggleMode        // Tab - switch between edit and play
	ActionNextBlock         // ] - select next palette block
	ActionPrevBlock         // [ - select previous palette block
	ActionBack              // Esc - back to menu
	ActionQuit              // Q, Ctrl+C - exit
)

var actionNames = [...]string{
	"None", "Up", "Down", "Left", "Right", "Jump", "Confirm", "Undo", "Redo",
	"Reset", "ToggleMode", "NextBlock", "PrevBlock", "Back", "Quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// PointerKind distinguishes mouse press, drag motion and release.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerMotion
	PointerRelease
)

// PointerEvent is a mouse event in screen coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// InputFrame is the input gathered between two simulation ticks.
type InputFrame struct {
	actions uint32 // bit per Action
	// Slot is a 1-based palette slot chosen with the number keys, 0 for none.
	Slot int
	// Pointers holds mouse events in arrival order; drag painting depends on it.
	Pointers []PointerEvent
}

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set marks a as triggered. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a > ActionNone && int(a) < len(actionNames) {
		f.actions |= 1 << a
	}
}

// Has reports whether a was triggered.
func (f InputFrame) Has(a Action) bool {
	return a > ActionNone && int(a) < len(actionNames) && f.actions&(1<<a) != 0
}

// SelectSlot records a palette slot choice.
func (f *InputFrame) SelectSlot(slot int) {
	f.Slot = slot
}

// AddPointer appends a mouse event.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointers = append(f.Pointers, ev)
}

// Empty reports whether the frame carries no input at all.
func (f InputFrame) Empty() bool {
	return f.actions == 0 && f.Slot == 0 && len(f.Pointers) == 0
}

// Clear empties the frame, keeping the pointer slice for reuse.
func (f *InputFrame) Clear() {
	f.actions, f.Slot = 0, 0
	f.Pointers = f.Pointers[:0]
}

// Clone returns a copy that shares no memory with f.
func (f InputFrame) Clone() InputFrame {
	f.Pointers = append([]PointerEvent(nil), f.Pointers...)
	return f
}
