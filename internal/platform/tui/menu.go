package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rgballs/internal/core"
	"github.com/vovakirdan/rgballs/internal/engine"
)

// pageSize is how far PgUp/PgDown move the level cursor.
const pageSize = 5

// LevelEntry is one level in the picker.
type LevelEntry struct {
	Index int
	Name  string
	Stars engine.Stars
	Won   bool
}

// MenuModel is the Bubble Tea model for the level picker. Levels past the
// first unwon one are locked.
type MenuModel struct {
	levels    []LevelEntry
	cursor    int
	unlocked  int
	width     int
	height    int
	config    core.RuntimeConfig
	theme     Theme
	keyMapper *KeyMapper

	quitting       bool
	selected       bool
	openScoreboard bool
}

// NewMenuModel creates the level picker with the cursor on start.
func NewMenuModel(levels []LevelEntry, unlocked, start int, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		levels:    levels,
		unlocked:  unlocked,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		theme:     DefaultTheme(),
		keyMapper: NewKeyMapper(),
	}
	m.cursor = m.clamp(start)
	return m
}

// maxLevel returns the highest index the cursor may reach.
func (m MenuModel) maxLevel() int {
	return min(m.unlocked, len(m.levels)-1)
}

func (m MenuModel) clamp(i int) int {
	return core.Clamp(i, 0, max(0, m.maxLevel()))
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for level selection.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionPrev:
		m.cursor = m.clamp(m.cursor - 1)

	case MenuActionNext:
		m.cursor = m.clamp(m.cursor + 1)

	case MenuActionPageUp:
		m.cursor = m.clamp(m.cursor + pageSize)

	case MenuActionPageDown:
		m.cursor = m.clamp(m.cursor - pageSize)

	case MenuActionSelect:
		if len(m.levels) > 0 {
			m.selected = true
			return m, tea.Quit
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	t := m.theme

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(t.MenuTitle.Render("  R G B A L L S  "), m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(t.MenuDescription.Render("No levels found"), m.width))
		b.WriteString("\n")
		return b.String()
	}

	cur := m.levels[m.cursor]
	b.WriteString(centerText(t.MenuLevel.Render(fmt.Sprintf("< Level %d >", cur.Index+1)), m.width))
	b.WriteString("\n")
	b.WriteString(centerText(t.MenuDescription.Render(cur.Name), m.width))
	b.WriteString("\n")
	if cur.Won {
		b.WriteString(centerText(t.RenderStars(cur.Stars), m.width))
	} else {
		b.WriteString(centerText(t.MenuItemNormal.Render("not completed"), m.width))
	}
	b.WriteString("\n\n")

	b.WriteString(centerText(m.renderStrip(), m.width))
	b.WriteString("\n\n")

	won := 0
	for _, l := range m.levels {
		if l.Won {
			won++
		}
	}
	progress := fmt.Sprintf("%d of %d levels completed", won, len(m.levels))
	b.WriteString(centerText(t.MenuDescription.Render(progress), m.width))
	b.WriteString("\n\n")

	controls := "Left/Right: Level  |  PgUp/PgDn: Skip 5  |  Enter: Play  |  Tab: Results  |  Q: Quit"
	b.WriteString(centerText(t.HUDControls.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// renderStrip draws the levels around the cursor as a row of numbers.
func (m MenuModel) renderStrip() string {
	t := m.theme
	lo := max(0, m.cursor-pageSize)
	hi := min(len(m.levels)-1, m.cursor+pageSize)

	cells := make([]string, 0, hi-lo+1)
	for i := lo; i <= hi; i++ {
		label := fmt.Sprintf(" %d ", i+1)
		switch {
		case i == m.cursor:
			cells = append(cells, t.MenuItemActive.Render(label))
		case i > m.unlocked:
			cells = append(cells, t.MenuItemLocked.Render(label))
		case m.levels[i].Stars == engine.PerfectStars:
			cells = append(cells, t.StarOn.Render(label))
		default:
			cells = append(cells, t.MenuItemNormal.Render(label))
		}
	}
	return strings.Join(cells, "")
}

// Cursor returns the highlighted level index.
func (m MenuModel) Cursor() int {
	return m.cursor
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested the results table.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Level           int
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the level picker and returns the selection result.
func RunMenu(levels []LevelEntry, unlocked, start int, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(levels, unlocked, start, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{
		Level:  m.Cursor(),
		Config: m.Config(),
	}

	switch {
	case m.WantsScoreboard():
		result.WantsScoreboard = true
	case m.IsQuitting(), !m.selected:
		result.Quit = true
	}
	return result, nil
}
