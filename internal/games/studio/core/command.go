package core

// CommandKind enumerates the studio's command vocabulary.
type CommandKind int

const (
	CmdSelectBlock CommandKind = iota
	CmdPaintCell
	CmdUndo
	CmdRedo
	CmdResetGrid
	CmdToggleMode
	CmdMoveIntent
	CmdJump
)

// String returns the command name.
func (k CommandKind) String() string {
	switch k {
	case CmdSelectBlock:
		return "selectBlock"
	case CmdPaintCell:
		return "paintCell"
	case CmdUndo:
		return "undo"
	case CmdRedo:
		return "redo"
	case CmdResetGrid:
		return "resetGrid"
	case CmdToggleMode:
		return "toggleMode"
	case CmdMoveIntent:
		return "moveIntent"
	case CmdJump:
		return "jumpRequest"
	default:
		return "unknown"
	}
}

// Command is one discrete input for the studio. Input adapters build
// commands from device events; only the fields of the kind are meaningful.
type Command struct {
	Kind    CommandKind
	BlockID string
	X, Y    int
	Dir     Dir
}

// SelectBlock selects the palette block with the given id.
func SelectBlock(id string) Command {
	return Command{Kind: CmdSelectBlock, BlockID: id}
}

// PaintCell paints the selected block at (x, y).
func PaintCell(x, y int) Command {
	return Command{Kind: CmdPaintCell, X: x, Y: y}
}

// Undo steps the history back.
func Undo() Command {
	return Command{Kind: CmdUndo}
}

// Redo steps the history forward.
func Redo() Command {
	return Command{Kind: CmdRedo}
}

// ResetGrid clears the grid as an undoable action.
func ResetGrid() Command {
	return Command{Kind: CmdResetGrid}
}

// ToggleMode switches between edit and play.
func ToggleMode() Command {
	return Command{Kind: CmdToggleMode}
}

// MoveIntent moves the actor one cell (top-down) or latches the horizontal
// direction (platformer). DirNone releases a latched direction.
func MoveIntent(d Dir) Command {
	return Command{Kind: CmdMoveIntent, Dir: d}
}

// JumpRequest starts a platformer jump.
func JumpRequest() Command {
	return Command{Kind: CmdJump}
}

// Result reports the effect of a command or tick.
type Result struct {
	// Changed is true when the grid, the actor or the mode changed.
	Changed      bool
	Announcement Announcement
	// Err is the recoverable reason a command was ignored, nil on success.
	Err error
}
