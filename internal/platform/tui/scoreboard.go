package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rgballs/internal/storage"
)

// Results layout constants
const (
	maxAttempts = 100 // Attempts shown in the history view
)

// resultsView selects the table shown on the results screen.
type resultsView int

const (
	viewLevels resultsView = iota
	viewAttempts
)

// ScoreboardKeyMap defines the key bindings for the results screen.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab", "left", "right"),
			key.WithHelp("tab", "levels/history"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the results screen: best
// results and attempt counts per level, and the recent attempt history.
type ScoreboardModel struct {
	names     []string // level names by index
	store     *storage.Store
	levelRows []table.Row
	history   []table.Row
	view      resultsView
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates the results screen for the named levels.
func NewScoreboardModel(store *storage.Store, names []string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		names:  names,
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	m.load()
	m.table = m.createTable()
	return m
}

func (m *ScoreboardModel) columns() []table.Column {
	if m.view == viewAttempts {
		return []table.Column{
			{Title: "Level", Width: 6},
			{Title: "Outcome", Width: 10},
			{Title: "Stars", Width: 6},
			{Title: "Steps", Width: 6},
			{Title: "Date", Width: 14},
			{Title: "Run", Width: 10},
		}
	}

	nameWidth := 20
	if m.width > 90 {
		nameWidth = min(40, m.width-66)
	}
	return []table.Column{
		{Title: "Level", Width: 6},
		{Title: "Name", Width: nameWidth},
		{Title: "Stars", Width: 6},
		{Title: "Steps", Width: 6},
		{Title: "Tries", Width: 6},
		{Title: "Wins", Width: 6},
		{Title: "Best", Width: 6},
	}
}

// createTable creates a table for the current view.
func (m *ScoreboardModel) createTable() table.Model {
	rows := m.levelRows
	if m.view == viewAttempts {
		rows = m.history
	}

	t := table.New(
		table.WithColumns(m.columns()),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Leave room for header, help, and margins
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

// load reads results, per-level stats and the attempt history.
func (m *ScoreboardModel) load() {
	m.levelRows = nil
	m.history = nil
	if m.store == nil {
		return
	}

	best := make(map[int]storage.LevelResult)
	if results, err := m.store.Results(); err == nil {
		for _, r := range results {
			best[r.Level] = r
		}
	}

	for i, name := range m.names {
		row := table.Row{fmt.Sprintf("%d", i+1), name, "-", "-", "0", "0", "-"}
		if r, ok := best[i]; ok {
			row[2] = r.Stars.String()
			row[3] = fmt.Sprintf("%d", r.Steps)
		}
		if st, err := m.store.Stats(i); err == nil {
			row[4] = fmt.Sprintf("%d", st.Attempts)
			row[5] = fmt.Sprintf("%d", st.Wins)
			if st.BestRun > 0 {
				row[6] = fmt.Sprintf("%d", st.BestRun)
			}
		}
		m.levelRows = append(m.levelRows, row)
	}

	attempts, err := m.store.RecentAttempts(maxAttempts)
	if err != nil {
		return
	}
	for _, a := range attempts {
		run := a.RunID
		if len(run) > 8 {
			run = run[:8]
		}
		m.history = append(m.history, table.Row{
			fmt.Sprintf("%d", a.Level+1),
			a.Outcome.String(),
			a.Stars.String(),
			fmt.Sprintf("%d", a.Steps),
			a.CreatedAt.Format("Jan 02 15:04"),
			run,
		})
	}
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Switch):
			if m.view == viewLevels {
				m.view = viewAttempts
			} else {
				m.view = viewLevels
			}
			m.table = m.createTable()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "RESULTS - Levels"
	if m.view == viewAttempts {
		title = "RESULTS - Recent attempts"
	}

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(centerText(title, m.width)),
		tableStyle.Render(m.renderTableContent()),
		helpStyle.Render(m.help.View(m.keys)),
	)
}

// renderTableContent renders the table or empty message.
func (m ScoreboardModel) renderTableContent() string {
	empty := len(m.levelRows) == 0
	if m.view == viewAttempts {
		empty = len(m.history) == 0
	}
	if empty {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		return emptyStyle.Render("Nothing recorded yet.\nFinish a level to see it here!")
	}

	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the results screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, names []string, width, height int) (goBack bool, err error) {
	model := NewScoreboardModel(store, names, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}

	return m.IsGoingBack(), nil
}
