package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rgballs/internal/engine"
)

// SummaryChoice is what the player picked on the end-of-level screen.
type SummaryChoice int

const (
	ChoiceMenu SummaryChoice = iota
	ChoiceRetry
	ChoiceNext
)

// SummaryKeyMap defines the key bindings of the end-of-level screen.
type SummaryKeyMap struct {
	Next  key.Binding
	Retry key.Binding
	Menu  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k SummaryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Retry, k.Menu}
}

// FullHelp returns key bindings for the full help view.
func (k SummaryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultSummaryKeyMap returns the bindings for a result. The next-level
// binding is only enabled after a win.
func DefaultSummaryKeyMap(won bool) SummaryKeyMap {
	k := SummaryKeyMap{
		Next: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "next level"),
		),
		Retry: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "retry"),
		),
		Menu: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "menu"),
		),
	}
	k.Next.SetEnabled(won)
	return k
}

// SummaryModel shows the outcome of an attempt.
type SummaryModel struct {
	result engine.Result
	title  string
	index  int
	saved  bool // a new best result was stored
	choice SummaryChoice
	keys   SummaryKeyMap
	help   help.Model
	theme  Theme
	width  int
	done   bool
}

// NewSummaryModel creates the end-of-level screen.
func NewSummaryModel(r engine.Result, index int, title string, saved bool, width int) SummaryModel {
	return SummaryModel{
		result: r,
		title:  title,
		index:  index,
		saved:  saved,
		keys:   DefaultSummaryKeyMap(r.Outcome == engine.OutcomeWin),
		help:   help.New(),
		theme:  DefaultTheme(),
		width:  width,
	}
}

// Init initializes the summary model.
func (m SummaryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the summary screen.
func (m SummaryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Next):
			m.choice = ChoiceNext
		case key.Matches(msg, m.keys.Retry):
			m.choice = ChoiceRetry
		case key.Matches(msg, m.keys.Menu):
			m.choice = ChoiceMenu
		default:
			return m, nil
		}
		m.done = true
		return m, tea.Quit

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	}
	return m, nil
}

// View renders the summary.
func (m SummaryModel) View() string {
	if m.done {
		return ""
	}
	t := m.theme
	r := m.result

	var b strings.Builder
	b.WriteString("\n")
	heading := fmt.Sprintf("Level %d: %s", m.index+1, m.title)
	b.WriteString(centerText(t.MenuTitle.Render(heading), m.width))
	b.WriteString("\n\n")

	if r.Outcome == engine.OutcomeWin {
		b.WriteString(centerText(t.WinBanner.Render("LEVEL COMPLETE"), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(m.starLine(r.Stars[0], "Level completed"), m.width))
		b.WriteString("\n")
		b.WriteString(centerText(m.starLine(r.Stars[1], "All diamonds collected"), m.width))
		b.WriteString("\n")
		budget := fmt.Sprintf("Within %d steps (took %d)", r.Budget, r.Steps)
		b.WriteString(centerText(m.starLine(r.Stars[2], budget), m.width))
		b.WriteString("\n")
		if m.saved {
			b.WriteString("\n")
			b.WriteString(centerText(t.HUDStatus.Render("New best result saved"), m.width))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(centerText(t.LoseBanner.Render("YOU DIED"), m.width))
		b.WriteString("\n\n")
		b.WriteString(centerText(t.HUDValue.Render(fmt.Sprintf("%d steps taken", r.Steps)), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(centerText(helpStyle.Render(m.help.View(m.keys)), m.width))
	return b.String()
}

func (m SummaryModel) starLine(earned bool, label string) string {
	style := m.theme.MenuItemLocked
	if earned {
		style = m.theme.HUDValue
	}
	return fmt.Sprintf("%s %-28s", m.theme.Star(earned), style.Render(label))
}

// Choice returns what the player picked.
func (m SummaryModel) Choice() SummaryChoice {
	return m.choice
}

// RunSummary shows the outcome of an attempt and returns the player's choice.
func RunSummary(r engine.Result, index int, title string, saved bool, width int) (SummaryChoice, error) {
	model := NewSummaryModel(r, index, title, saved, width)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return ChoiceMenu, err
	}

	if m, ok := finalModel.(SummaryModel); ok {
		return m.Choice(), nil
	}
	return ChoiceMenu, nil
}
