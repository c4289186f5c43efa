package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tile-studio/internal/registry"
	"github.com/vovakirdan/tile-studio/internal/storage"
)

const (
	boardTopLimit    = 50
	boardRecentLimit = 50
	boardChrome      = 10 // title, stats, tabs, borders and help
)

// boardView selects which records the scoreboard table lists.
type boardView int

const (
	viewTopScores boardView = iota
	viewRecent
)

func (v boardView) String() string {
	if v == viewRecent {
		return "Recent sessions"
	}
	return "Top scores"
}

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ScoreboardKeyMap holds the scoreboard bindings.
type ScoreboardKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	NextVariant key.Binding
	PrevVariant key.Binding
	SwitchView  key.Binding
	Back        key.Binding
	Quit        key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextVariant, k.SwitchView, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.NextVariant, k.PrevVariant, k.SwitchView},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextVariant: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next variant")),
		PrevVariant: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev variant")),
		SwitchView:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "scores/sessions")),
		Back:        key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows per-variant records: the best scores or the latest
// play sessions, with a stats summary line.
type ScoreboardModel struct {
	variants []registry.GameInfo
	current  int
	view     boardView

	store    *storage.Store
	scores   []storage.ScoreEntry
	sessions []storage.SessionRecord
	stats    *storage.VariantStats
	loadErr  error

	table table.Model
	help  help.Model
	keys  ScoreboardKeyMap

	width, height int
	quitting      bool
	goingBack     bool
}

// NewScoreboardModel creates a scoreboard over store. A nil store shows
// empty tables.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		variants: registry.List(),
		store:    store,
		keys:     DefaultScoreboardKeyMap(),
		help:     help.New(),
		width:    width,
		height:   height,
	}
	m.help.Width = width
	m.reload()
	return m
}

// Variant returns the ID of the variant on display.
func (m ScoreboardModel) Variant() string {
	if len(m.variants) == 0 {
		return ""
	}
	return m.variants[m.current].ID
}

func (m *ScoreboardModel) reload() {
	m.scores, m.sessions, m.stats, m.loadErr = nil, nil, nil, nil
	variant := m.Variant()
	if m.store != nil && variant != "" {
		var err error
		if m.view == viewRecent {
			m.sessions, err = m.store.RecentSessions(variant, boardRecentLimit)
		} else {
			m.scores, err = m.store.TopScores(variant, boardTopLimit)
		}
		if err != nil {
			m.loadErr = err
		}
		if stats, err := m.store.GetVariantStats(variant); err == nil {
			m.stats = stats
		}
	}
	m.table = m.buildTable()
}

func (m ScoreboardModel) columns() []table.Column {
	if m.view == viewRecent {
		return []table.Column{
			{Title: "When", Width: 13},
			{Title: "Player", Width: 12},
			{Title: "Score", Width: 6},
			{Title: "Lives", Width: 6},
			{Title: "Deaths", Width: 7},
			{Title: "Time", Width: 8},
			{Title: "End", Width: 9},
		}
	}
	dateW := min(max(m.width-30, 12), 20)
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Score", Width: 10},
		{Title: "Date", Width: dateW},
	}
}

func (m ScoreboardModel) rows() []table.Row {
	var rows []table.Row
	if m.view == viewRecent {
		for _, s := range m.sessions {
			end := "finished"
			if s.GameOver {
				end = "game over"
			}
			rows = append(rows, table.Row{
				s.CreatedAt.Format("Jan 02 15:04"),
				s.Player,
				fmt.Sprint(s.Score),
				fmt.Sprint(s.Lives),
				fmt.Sprint(s.Deaths),
				s.Duration.Round(time.Second).String(),
				end,
			})
		}
		return rows
	}
	for i, s := range m.scores {
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprint(s.Score),
			s.CreatedAt.Format("Jan 02 15:04"),
		})
	}
	return rows
}

func (m ScoreboardModel) buildTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(m.rows()),
		table.WithFocused(true),
		table.WithHeight(max(m.height-boardChrome, 3)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

func (m *ScoreboardModel) cycle(delta int) {
	if len(m.variants) == 0 {
		return
	}
	n := len(m.variants)
	m.current = ((m.current+delta)%n + n) % n
	m.reload()
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextVariant):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevVariant):
			m.cycle(-1)
			return m, nil
		case key.Matches(msg, m.keys.SwitchView):
			m.view = 1 - m.view
			m.reload()
			return m, nil
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table = m.buildTable()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "RECORDS"
	if len(m.variants) > 0 {
		title += " · " + m.variants[m.current].Title
	}

	body := m.table.View()
	switch {
	case m.loadErr != nil:
		body = boardMutedStyle.Render("Could not load records: " + m.loadErr.Error())
	case len(m.table.Rows()) == 0:
		body = boardMutedStyle.Italic(true).Padding(1, 2).
			Render("Nothing recorded yet.\nPlay a level to set a score.")
	}

	sections := []string{
		boardTitleStyle.Render(title),
		boardMutedStyle.Render(m.statsLine()),
		"",
		m.tabs(),
		boardFrameStyle.Render(body),
		boardMutedStyle.Render(m.help.View(m.keys)),
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (m ScoreboardModel) tabs() string {
	var names []string
	for i, v := range m.variants {
		if i == m.current {
			names = append(names, boardActiveTab.Render(v.Title))
		} else {
			names = append(names, boardTabStyle.Render(v.Title))
		}
	}
	return strings.Join(names, " ") + "   " + boardMutedStyle.Render("["+m.view.String()+"]")
}

// statsLine summarizes the recorded sessions of the current variant.
func (m ScoreboardModel) statsLine() string {
	st := m.stats
	if st == nil || st.SessionCount == 0 {
		return "No sessions played yet"
	}
	line := fmt.Sprintf("%d sessions · best %d · avg %.1f · %d deaths · %d game overs",
		st.SessionCount, st.HighScore, st.AvgScore, st.TotalDeaths, st.GameOvers)
	if !st.LastPlayed.IsZero() {
		line += " · last " + st.LastPlayed.Format("Jan 02 15:04")
	}
	return line
}

// IsGoingBack reports whether the user asked to return to the menu.
func (m ScoreboardModel) IsGoingBack() bool { return m.goingBack }

// IsQuitting reports whether the user asked to quit.
func (m ScoreboardModel) IsQuitting() bool { return m.quitting }

// RunScoreboard shows the scoreboard full screen and reports whether the
// user went back to the menu rather than quitting.
func RunScoreboard(store *storage.Store, width, height int) (bool, error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(ScoreboardModel)
	return ok && m.IsGoingBack(), nil
}
