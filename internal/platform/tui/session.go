package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tile-studio/internal/core"
	"github.com/vovakirdan/tile-studio/internal/registry"
	"github.com/vovakirdan/tile-studio/internal/storage"
)

// SessionModel is the root model of one SSH connection. It starts on the
// menu, opens a variant or the scoreboard from there and returns to the
// menu when they are left with Back.
type SessionModel struct {
	store      *storage.Store
	dispatcher *Dispatcher
	config     core.RuntimeConfig
	username   string

	menu   MenuModel
	board  *ScoreboardModel
	studio *Model
	done   bool
}

// NewSessionModel creates the session for username.
func NewSessionModel(store *storage.Store, dispatcher *Dispatcher, cfg core.RuntimeConfig, username string) SessionModel {
	return SessionModel{
		store:      store,
		dispatcher: dispatcher,
		config:     cfg,
		username:   username,
		menu:       NewMenuModel(store, cfg),
	}
}

func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update forwards msg to the active screen. The sub-models end with
// tea.Quit when they finish; those commands are dropped here and the
// session switches screens instead.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW, m.config.ScreenH = size.Width, size.Height
	}

	switch {
	case m.studio != nil:
		next, cmd := m.studio.Update(msg)
		studio := next.(Model)
		m.studio = &studio
		switch {
		case studio.IsQuitting():
			return m.quit()
		case studio.BackToMenu():
			return m.toMenu()
		}
		return m, cmd

	case m.board != nil:
		next, cmd := m.board.Update(msg)
		board := next.(ScoreboardModel)
		m.board = &board
		switch {
		case board.IsQuitting():
			return m.quit()
		case board.IsGoingBack():
			return m.toMenu()
		}
		return m, cmd
	}

	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)
	switch {
	case m.menu.IsQuitting():
		return m.quit()
	case m.menu.WantsScoreboard():
		board := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.board = &board
		return m, board.Init()
	case m.menu.Selected() != nil:
		return m.open(m.menu.Selected().GameID)
	}
	return m, cmd
}

func (m SessionModel) open(id string) (tea.Model, tea.Cmd) {
	game, err := registry.Create(id)
	if err != nil {
		return m.toMenu()
	}
	studio := NewModel(game, ModelOptions{
		Config:     m.config,
		Dispatcher: m.dispatcher,
		Player:     m.username,
	})
	m.studio = &studio
	return m, studio.Init()
}

func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	m.studio, m.board = nil, nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

func (m SessionModel) quit() (tea.Model, tea.Cmd) {
	m.done = true
	return m, tea.Quit
}

func (m SessionModel) View() string {
	switch {
	case m.done:
		return ""
	case m.studio != nil:
		return m.studio.View()
	case m.board != nil:
		return m.board.View()
	}
	return m.menu.View()
}

// RunSession runs the menu flow in the local terminal until the user quits.
func RunSession(store *storage.Store, dispatcher *Dispatcher, cfg core.RuntimeConfig, player string) error {
	_, err := tea.NewProgram(
		NewSessionModel(store, dispatcher, cfg, player),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	).Run()
	return err
}
