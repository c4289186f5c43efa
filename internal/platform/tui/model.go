package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-studio/internal/core"
	"github.com/vovakirdan/tile-studio/internal/registry"
)

// holdDuration covers the keyboard auto-repeat delay. Terminals send no key
// release, so a held direction stays active until it stops repeating.
const holdDuration = 400 * time.Millisecond

var dimHelpStyle = lipgloss.NewStyle().Faint(true)

// ModelOptions configures a Model.
type ModelOptions struct {
	Config     core.RuntimeConfig
	Dispatcher *Dispatcher // may be nil
	Player     string
	// QuitOnBack ends the program on Esc instead of waiting for a menu.
	QuitOnBack bool
}

// Model is the Bubble Tea model running one studio variant.
// It is used directly by `studio play` and inside SessionModel.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	dispatcher *Dispatcher
	player     string
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	quitOnBack bool

	holdLeft  int // ticks a held left key stays active
	holdRight int

	playStarted time.Time
	quitting    bool
	backToMenu  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, opts ModelOptions) Model {
	cfg := opts.Config
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		dispatcher: opts.Dispatcher,
		player:     opts.Player,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
		quitOnBack: opts.QuitOnBack,
	}
	m.help.Width = cfg.ScreenW
	m.screen = core.NewScreen(cfg.ScreenW, m.gameHeight())
	m.game.Reset(m.gameConfig())
	m.gameState = m.game.State()
	return m
}

// gameHeight is the screen height left for the game below the help bar.
func (m Model) gameHeight() int {
	h := m.config.ScreenH - lipgloss.Height(m.helpView())
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) gameConfig() core.RuntimeConfig {
	cfg := m.config
	cfg.ScreenH = m.gameHeight()
	return cfg
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg.Width, msg.Height)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keyMapper.Keys()
	switch {
	case key.Matches(msg, keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.handleResize(m.config.ScreenW, m.config.ScreenH)
	}

	if slot := m.keyMapper.MapSlot(msg); slot > 0 {
		m.inputFrame.SelectSlot(slot)
		return m, nil
	}

	action := m.keyMapper.MapKey(msg, m.gameState.Mode == "play")
	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionBack:
		m.backToMenu = true
		if m.quitOnBack {
			m.quitting = true
			return m, tea.Quit
		}
		return m, nil
	case core.ActionNone:
		return m, nil
	}

	if m.gameState.HoldInput {
		hold := m.holdTicks()
		switch action {
		case core.ActionLeft:
			m.holdLeft, m.holdRight = hold, 0
			return m, nil
		case core.ActionRight:
			m.holdRight, m.holdLeft = hold, 0
			return m, nil
		}
	}

	m.inputFrame.Set(action)
	return m, nil
}

func (m Model) holdTicks() int {
	n := int(holdDuration * time.Duration(m.config.TickRate) / time.Second)
	if n < 1 {
		n = 1
	}
	return n
}

// handleMouse turns left-button mouse events into pointer events.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
		return m, nil
	}

	ev := core.PointerEvent{X: msg.X, Y: msg.Y}
	switch msg.Action {
	case tea.MouseActionPress:
		ev.Kind = core.PointerPress
	case tea.MouseActionMotion:
		ev.Kind = core.PointerMotion
	case tea.MouseActionRelease:
		ev.Kind = core.PointerRelease
	default:
		return m, nil
	}
	m.inputFrame.AddPointer(ev)
	return m, nil
}

// handleResize adapts the screen; games that can resize keep their level.
func (m Model) handleResize(width, height int) (tea.Model, tea.Cmd) {
	m.config.ScreenW = width
	m.config.ScreenH = height
	m.help.Width = width

	h := m.gameHeight()
	m.screen.Resize(width, h)
	if r, ok := m.game.(registry.Resizer); ok {
		r.Resize(width, h)
	} else {
		m.game.Reset(m.gameConfig())
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.holdLeft > 0 {
		m.inputFrame.Set(core.ActionLeft)
		m.holdLeft--
	}
	if m.holdRight > 0 {
		m.inputFrame.Set(core.ActionRight)
		m.holdRight--
	}

	wasPlaying := m.gameState.Mode == "play"
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	playing := m.gameState.Mode == "play"
	if playing && !wasPlaying {
		m.playStarted = time.Now()
	}
	if !m.gameState.HoldInput {
		m.holdLeft, m.holdRight = 0, 0
	}

	if m.dispatcher != nil && len(result.Events) > 0 {
		from := Delivery{Variant: m.game.ID(), Player: m.player}
		if !m.playStarted.IsZero() {
			from.Played = time.Since(m.playStarted)
		}
		m.dispatcher.Deliver(from, result.Events)
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.screen.Clear()
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".studio", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, editing continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// helpView renders the help bar. Undo and redo are dimmed when the history
// has nothing to step to.
func (m Model) helpView() string {
	keys := m.keyMapper.Keys()
	if m.help.ShowAll {
		return m.help.FullHelpView(keys.FullHelp())
	}

	play := m.gameState.Mode == "play"
	bindings := keys.ShortHelp()
	if play {
		bindings[1] = keys.Jump
	}

	styles := m.help.Styles
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		keyStyle, descStyle := styles.ShortKey, styles.ShortDesc
		if !m.available(b, play) {
			keyStyle, descStyle = dimHelpStyle, dimHelpStyle
		}
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}
	return strings.Join(parts, styles.ShortSeparator.Render(" • "))
}

func (m Model) available(b key.Binding, play bool) bool {
	keys := m.keyMapper.Keys()
	switch b.Help().Desc {
	case keys.Undo.Help().Desc:
		return !play && m.gameState.CanUndo
	case keys.Redo.Help().Desc:
		return !play && m.gameState.CanRedo
	case keys.Slot.Help().Desc:
		return !play
	}
	return true
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)

	return RenderScreen(m.screen) + "\n" + m.helpView()
}

// State returns the game state after the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, opts ModelOptions) error {
	opts.QuitOnBack = true
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release for painting
	)

	_, err := p.Run()
	return err
}
