package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rgballs/internal/core"
	"github.com/vovakirdan/rgballs/internal/engine"
	"github.com/vovakirdan/rgballs/internal/preview"
)

// statusFrames is how long a status line stays visible.
const statusFrames = 120

// PlayModel is the Bubble Tea model for one attempt at a level.
//
// Terminals deliver key presses and auto-repeats but no releases, so a
// direction counts as held for HoldFrames frames after its last event.
type PlayModel struct {
	session   *engine.Session
	title     string
	index     int
	board     *core.Screen
	config    core.RuntimeConfig
	theme     Theme
	keyMapper *KeyMapper
	logger    *log.Logger

	pressed core.InputFrame     // one-shot actions for the next frame
	held    map[core.Action]int // remaining frames per held direction

	status      string
	statusTimer int
	quitting    bool
}

// NewPlayModel creates the play screen for a running session.
func NewPlayModel(s *engine.Session, index int, title string, cfg core.RuntimeConfig, logger *log.Logger) PlayModel {
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	s.World().Player().HUD = engine.HUDMode(cfg.HUD)
	return PlayModel{
		session:   s,
		title:     title,
		index:     index,
		board:     core.NewScreen(cfg.ViewW, cfg.ViewH),
		config:    cfg,
		theme:     DefaultTheme(),
		keyMapper: NewKeyMapper(),
		logger:    logger,
		pressed:   core.NewInputFrame(),
		held:      make(map[core.Action]int),
	}
}

// Init starts the tick loop.
func (m PlayModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+s":
		m.saveScreenshot(false)
		return m, nil
	case "ctrl+p":
		m.saveScreenshot(true)
		return m, nil
	}

	action := m.keyMapper.MapKey(msg)
	switch {
	case action == core.ActionNone:
		return m, nil
	case action == core.ActionQuit && m.session.State() == engine.StateMessage:
		// A pending message swallows every action except confirm.
		m.quitting = true
		return m, tea.Quit
	case action.Directional():
		m.hold(action)
	default:
		m.pressed.Set(action)
	}
	return m, nil
}

// hold marks a direction as held. A new direction replaces the others,
// since terminals only repeat the last key pressed.
func (m PlayModel) hold(a core.Action) {
	for other := range m.held {
		if other != a {
			delete(m.held, other)
		}
	}
	m.held[a] = m.config.HoldFrames
}

// frame assembles this tick's input and ages the held directions.
func (m *PlayModel) frame() core.InputFrame {
	in := m.pressed.Clone()
	m.pressed.Clear()
	for a, left := range m.held {
		in.Set(a)
		if left <= 1 {
			delete(m.held, a)
		} else {
			m.held[a] = left - 1
		}
	}
	return in
}

func (m PlayModel) handleTick() (tea.Model, tea.Cmd) {
	state := m.session.Step(m.frame())

	if m.session.ReleaseHeld() {
		clear(m.held)
	}
	if m.statusTimer > 0 {
		m.statusTimer--
	}

	if state.Terminal() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.config.TickRate)
}

// Result returns the outcome of the attempt.
func (m PlayModel) Result() engine.Result {
	return m.session.Result()
}

// saveScreenshot writes the whole map to ~/.rgballs/screenshots, as text
// or as a PNG image.
func (m *PlayModel) saveScreenshot(image bool) {
	dir := filepath.Join(os.Getenv("HOME"), ".rgballs", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.setStatus("screenshot failed")
		m.logger.Warn("cannot create screenshot directory", "dir", dir, "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	base := filepath.Join(dir, fmt.Sprintf("level_%04d_%s", m.index, timestamp))

	var err error
	path := base + ".txt"
	if image {
		path = base + ".png"
		err = preview.SavePNG(path, m.session.World(), preview.DefaultTileSize)
	} else {
		err = os.WriteFile(path, []byte(preview.RenderASCII(m.session.World())+"\n"), 0o600)
	}
	if err != nil {
		m.setStatus("screenshot failed")
		m.logger.Warn("cannot save screenshot", "path", path, "err", err)
		return
	}
	m.setStatus("saved " + filepath.Base(path))
	m.logger.Debug("screenshot saved", "path", path)
}

func (m *PlayModel) setStatus(s string) {
	m.status = s
	m.statusTimer = statusFrames
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}

	w := m.session.World()
	p := w.Player()
	g := w.Grid()

	view := core.Viewport(p.Pos.X, p.Pos.Y, m.config.ViewW, m.config.ViewH, g.Width(), g.Height())
	m.board.Resize(view.W, view.H)
	m.board.Clear()
	preview.Draw(m.board, w, view, 0, 0)
	board := RenderScreen(m.board)

	if side := m.renderHUD(p); side != "" {
		board = lipgloss.JoinHorizontal(lipgloss.Top, board, "  ", side)
	}

	sections := []string{m.renderHeader(), board}
	if text, ok := w.Message(); ok {
		sections = append(sections, m.renderMessage(text))
	}
	if m.statusTimer > 0 {
		sections = append(sections, m.theme.HUDStatus.Render(m.status))
	}
	sections = append(sections, m.renderControls())
	return strings.Join(sections, "\n")
}

func (m PlayModel) renderHeader() string {
	t := m.theme
	sep := t.HUDSeparator.Render(" │ ")
	return t.HUDTitle.Render(fmt.Sprintf("Level %d", m.index+1)) + sep + t.HUDValue.Render(m.title)
}

func (m PlayModel) renderHUD(p *engine.Player) string {
	switch p.HUD {
	case engine.HUDStats:
		return m.renderStats(p)
	case engine.HUDInventory:
		return m.renderInventory(p)
	}
	return ""
}

func (m PlayModel) renderStats(p *engine.Player) string {
	t := m.theme
	w := m.session.World()

	lines := []string{t.HUDTitle.Render("STATUS")}
	steps := fmt.Sprintf("%d", p.Steps)
	if budget := m.session.Budget(); budget > 0 {
		steps = fmt.Sprintf("%d/%d", p.Steps, budget)
	}
	lines = append(lines, "Steps    "+t.HUDValue.Render(steps))

	left := w.BallsLeft()
	balls := make([]string, 0, engine.ColorCount)
	for _, c := range engine.Colors {
		balls = append(balls, t.Balls[c].Render(fmt.Sprintf("o%d", left[c])))
	}
	lines = append(lines, "Balls    "+strings.Join(balls, " "))
	lines = append(lines, "Diamonds "+t.HUDValue.Render(fmt.Sprintf("%d", w.DiamondsLeft())))
	return strings.Join(lines, "\n")
}

func (m PlayModel) renderInventory(p *engine.Player) string {
	t := m.theme
	lines := []string{t.HUDTitle.Render("ITEMS")}

	entries := p.Inventory.Entries()
	if len(entries) == 0 {
		lines = append(lines, t.HUDControls.Render("(empty)"))
	}
	for i, e := range entries {
		line := fmt.Sprintf("%-11s x%d", e.Item.Name(), e.Count)
		if i == p.Inventory.SelectedIndex() {
			line = t.HUDSelected.Render("> " + line)
		} else {
			line = t.HUDValue.Render("  " + line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m PlayModel) renderMessage(text string) string {
	t := m.theme
	body := t.OverlayText.Render(text) + "\n\n" + t.HUDControls.Render("ENTER to continue")
	return t.OverlayBorder.Render(body)
}

func (m PlayModel) renderControls() string {
	return m.theme.HUDControls.Render(
		"WASD/Arrows: Move • Space: Use • Z/X: Item • H: HUD • R: Restart • Q: Quit")
}

// RunPlay runs one attempt at a level and returns its result.
func RunPlay(s *engine.Session, index int, title string, cfg core.RuntimeConfig, logger *log.Logger) (engine.Result, error) {
	model := NewPlayModel(s, index, title, cfg, logger)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return engine.Result{}, err
	}

	if m, ok := finalModel.(PlayModel); ok {
		return m.Result(), nil
	}
	return s.Result(), nil
}
