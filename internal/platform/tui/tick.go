// Package tui runs studio variants in a terminal with Bubble Tea: the tick
// loop, key and mouse mapping, side-effect delivery, the menu and
// scoreboard screens and the SSH server that serves them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one simulation step.
type TickMsg time.Time

// tickCmd schedules the next TickMsg for a simulation running at rate
// ticks per second. Rates below one are treated as one.
func tickCmd(rate int) tea.Cmd {
	return tea.Tick(time.Second/time.Duration(max(rate, 1)), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
