package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-studio/internal/core"
	"github.com/vovakirdan/tile-studio/internal/registry"
	"github.com/vovakirdan/tile-studio/internal/storage"
)

// MenuItem represents a selectable studio variant in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Best   int // high score, 0 when none is recorded
}

// MenuModel lists the registered variants with their best scores.
type MenuModel struct {
	items     []MenuItem
	cursor    int
	width     int
	keyMapper *KeyMapper

	quitting  bool
	selected  *MenuItem
	wantBoard bool
}

// NewMenuModel builds the menu from the registry. Best scores come from
// store when it is not nil.
func NewMenuModel(store *storage.Store, cfg core.RuntimeConfig) MenuModel {
	var items []MenuItem
	for _, info := range registry.List() {
		item := MenuItem{GameID: info.ID, Title: info.Title}
		if store != nil {
			item.Best, _ = store.HighScore(info.ID)
		}
		items = append(items, item)
	}
	return MenuModel{
		items:     items,
		width:     cfg.ScreenW,
		keyMapper: NewKeyMapper(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}
	return m, nil
}

// handleKey moves the cursor with wrap-around and finishes the menu on
// select, scoreboard or quit.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.items)
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionUp:
		if n > 0 {
			m.cursor = (m.cursor + n - 1) % n
		}
	case MenuActionDown:
		if n > 0 {
			m.cursor = (m.cursor + 1) % n
		}
	case MenuActionSelect:
		if n == 0 {
			return m, nil
		}
		item := m.items[m.cursor]
		m.selected = &item
		return m, tea.Quit
	case MenuActionScoreboard:
		m.wantBoard = true
		return m, tea.Quit
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

var (
	menuTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 2)
	menuItemStyle   = lipgloss.NewStyle().PaddingLeft(2)
	menuActiveStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).PaddingLeft(1).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("57"))
	menuBlurbStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// variantBlurbs describes the registered variants under their titles.
var variantBlurbs = map[string]string{
	"studio":     "Walk a top-down level one cell at a time",
	"platformer": "Run and jump under gravity",
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	lines := []string{
		"",
		menuTitleStyle.Render("T I L E   S T U D I O"),
		menuBlurbStyle.Render("Build a level, then play it"),
		"",
	}

	for i, item := range m.items {
		label := item.Title
		if item.Best > 0 {
			label += fmt.Sprintf("  (best %d)", item.Best)
		}
		entry := label
		if blurb := variantBlurbs[item.GameID]; blurb != "" {
			entry += "\n" + menuBlurbStyle.Render(blurb)
		}
		if i == m.cursor {
			lines = append(lines, menuActiveStyle.Render(entry))
		} else {
			lines = append(lines, menuItemStyle.Render(entry))
		}
	}

	lines = append(lines, "", menuBlurbStyle.Render("↑/↓ choose · enter open · tab records · q quit"))
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Selected returns the chosen variant, or nil.
func (m MenuModel) Selected() *MenuItem { return m.selected }

// IsQuitting reports whether the user quit.
func (m MenuModel) IsQuitting() bool { return m.quitting }

// WantsScoreboard reports whether the user opened the scoreboard.
func (m MenuModel) WantsScoreboard() bool { return m.wantBoard }
