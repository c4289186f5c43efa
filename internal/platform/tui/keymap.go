package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-studio/internal/core"
)

// StudioKeyMap defines the key bindings of the studio screen.
type StudioKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Paint      key.Binding
	Jump       key.Binding
	Undo       key.Binding
	Redo       key.Binding
	Reset      key.Binding
	ToggleMode key.Binding
	NextBlock  key.Binding
	PrevBlock  key.Binding
	Slot       key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Back       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k StudioKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ToggleMode, k.Paint, k.Undo, k.Redo, k.Slot, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k StudioKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Paint, k.Jump, k.ToggleMode},
		{k.Undo, k.Redo, k.Reset},
		{k.Slot, k.NextBlock, k.PrevBlock},
		{k.Screenshot, k.Back, k.Quit},
	}
}

// DefaultStudioKeyMap returns default key bindings.
func DefaultStudioKeyMap() StudioKeyMap {
	return StudioKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Paint: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter/space", "paint"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "jump"),
		),
		Undo: key.NewBinding(
			key.WithKeys("u", "ctrl+z"),
			key.WithHelp("u", "undo"),
		),
		Redo: key.NewBinding(
			key.WithKeys("y", "ctrl+y"),
			key.WithHelp("y", "redo"),
		),
		Reset: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear grid"),
		),
		ToggleMode: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "play/edit"),
		),
		NextBlock: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next block"),
		),
		PrevBlock: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev block"),
		),
		Slot: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
			key.WithHelp("1-9", "select block"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to studio actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys StudioKeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultStudioKeyMap()}
}

// Keys returns the bindings in use.
func (km *KeyMapper) Keys() StudioKeyMap {
	return km.keys
}

// MapKey translates a key message to an action. play selects the meaning of
// keys shared between modes: space paints in edit mode and jumps in play.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, play bool) core.Action {
	k := km.keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.ToggleMode):
		return core.ActionToggleMode
	case play && key.Matches(msg, k.Jump):
		return core.ActionJump
	case key.Matches(msg, k.Paint):
		return core.ActionConfirm
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Undo):
		return core.ActionUndo
	case key.Matches(msg, k.Redo):
		return core.ActionRedo
	case key.Matches(msg, k.Reset):
		return core.ActionReset
	case key.Matches(msg, k.NextBlock):
		return core.ActionNextBlock
	case key.Matches(msg, k.PrevBlock):
		return core.ActionPrevBlock
	}
	return core.ActionNone
}

// MapSlot returns the 1-based palette slot of a number key, or 0.
func (km *KeyMapper) MapSlot(msg tea.KeyMsg) int {
	if !key.Matches(msg, km.keys.Slot) {
		return 0
	}
	s := msg.String()
	return int(s[0] - '0')
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionScoreboard
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
