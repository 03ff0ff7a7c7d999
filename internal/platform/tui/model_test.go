package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/rgballs/internal/core"
	"github.com/vovakirdan/rgballs/internal/engine"
)

// newTestModel builds a 4x2 meadow with the player in the top-left corner
// and an unseated ball in the bottom-right one.
func newTestModel(t *testing.T) PlayModel {
	t.Helper()
	g, err := engine.NewGrid([]string{"....", "...."})
	if err != nil {
		t.Fatalf("NewGrid failed: %v", err)
	}
	w := engine.NewWorld(g)
	w.Register(engine.NewPlayer(engine.C(1, 1)))
	w.Register(engine.NewBall(engine.C(4, 2), engine.Blue))

	cfg := core.DefaultConfig()
	return NewPlayModel(engine.NewSession(w, 10), 0, "Meadow", cfg, nil)
}

func send(m PlayModel, msgs ...tea.Msg) PlayModel {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(PlayModel)
	}
	return m
}

func ticks(m PlayModel, n int) PlayModel {
	for range n {
		m = send(m, TickMsg{})
	}
	return m
}

func TestPlayModelHeldDirection(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyRight})
	m = ticks(m, 8)

	p := m.session.World().Player()
	if p.Pos != engine.C(2, 1) {
		t.Fatalf("player at %v after one held step, expected (2,1)", p.Pos)
	}
	if len(m.held) != 0 {
		t.Errorf("hold should expire after %d frames, still held: %v", m.config.HoldFrames, m.held)
	}

	m = ticks(m, 10)
	if p.Pos != engine.C(2, 1) || p.Steps != 1 {
		t.Errorf("released key kept moving: pos %v, steps %d", p.Pos, p.Steps)
	}
}

func TestPlayModelNewDirectionReplacesHeld(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown})
	if len(m.held) != 1 || m.held[core.ActionDown] == 0 {
		t.Errorf("held = %v, expected only Down", m.held)
	}
}

func TestPlayModelOneShotActions(t *testing.T) {
	m := newTestModel(t)
	p := m.session.World().Player()
	if p.HUD != engine.HUDStats {
		t.Fatalf("initial HUD = %v, expected counters from config", p.HUD)
	}

	m = send(m, runeKey('h'), TickMsg{})
	if p.HUD != engine.HUDInventory {
		t.Errorf("HUD after toggle = %v, expected inventory", p.HUD)
	}
	if !m.pressed.Empty() {
		t.Error("one-shot actions should be cleared after a frame")
	}

	m = send(m, TickMsg{})
	if p.HUD != engine.HUDInventory {
		t.Errorf("toggle should fire once, HUD = %v", p.HUD)
	}
}

func TestPlayModelQuit(t *testing.T) {
	m := newTestModel(t)
	m = send(m, runeKey('q'), TickMsg{})

	if got := m.Result().Outcome; got != engine.OutcomeAborted {
		t.Errorf("outcome = %v, expected aborted", got)
	}
	if !m.quitting {
		t.Error("model should quit after a terminal state")
	}
}

func TestPlayModelView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()

	for _, want := range []string{"Level 1", "Meadow", "STATUS", "0/10", "@"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q:\n%s", want, view)
		}
	}
}

func TestMenuCursorClamp(t *testing.T) {
	levels := make([]LevelEntry, 10)
	for i := range levels {
		levels[i] = LevelEntry{Index: i, Name: "level"}
	}
	m := NewMenuModel(levels, 3, 9, core.DefaultConfig())
	if m.Cursor() != 3 {
		t.Fatalf("start cursor = %d, expected clamp to unlocked 3", m.Cursor())
	}

	press := func(msg tea.KeyMsg) {
		next, _ := m.Update(msg)
		m = next.(MenuModel)
	}

	press(tea.KeyMsg{Type: tea.KeyRight})
	if m.Cursor() != 3 {
		t.Errorf("cursor moved past unlocked level: %d", m.Cursor())
	}
	press(tea.KeyMsg{Type: tea.KeyPgDown})
	if m.Cursor() != 0 {
		t.Errorf("PgDown cursor = %d, expected 0", m.Cursor())
	}
	press(tea.KeyMsg{Type: tea.KeyPgUp})
	if m.Cursor() != 3 {
		t.Errorf("PgUp cursor = %d, expected 3", m.Cursor())
	}
	press(tea.KeyMsg{Type: tea.KeyLeft})
	if m.Cursor() != 2 {
		t.Errorf("Left cursor = %d, expected 2", m.Cursor())
	}
}

func TestMenuUnlockedPastLastLevel(t *testing.T) {
	levels := []LevelEntry{{Index: 0}, {Index: 1}}
	m := NewMenuModel(levels, 2, 5, core.DefaultConfig())
	if m.Cursor() != 1 {
		t.Errorf("cursor = %d, expected last level 1", m.Cursor())
	}
}
