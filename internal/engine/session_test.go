package engine

import (
	"testing"

	"github.com/vovakirdan/rgballs/internal/core"
)

var idle = core.NewInputFrame()

func press(actions ...core.Action) core.InputFrame {
	return core.FrameOf(actions...)
}

// newTestSession builds a session over rows with the player at (1,1) and
// an unreachable ball in the bottom-right corner, so the run is not won
// by default.
func newTestSession(t *testing.T, budget int, rows ...string) *Session {
	t.Helper()
	w := newTestWorld(t, rows...)
	withPlayer(w, C(1, 1))
	last := C(w.Grid().Width()-2, w.Grid().Height()-2)
	w.Register(NewBall(last, Blue))
	return NewSession(w, budget)
}

func TestSessionQuitAndRestart(t *testing.T) {
	tests := []struct {
		action  core.Action
		state   State
		outcome Outcome
	}{
		{core.ActionQuit, StateAborted, OutcomeAborted},
		{core.ActionRestart, StateRetry, OutcomeRetry},
	}
	for _, tc := range tests {
		t.Run(tc.state.String(), func(t *testing.T) {
			s := newTestSession(t, 0, "...", "...")
			if s.RunID == "" {
				t.Error("session should have a run ID")
			}
			if got := s.Step(press(tc.action, core.ActionRight)); got != tc.state {
				t.Fatalf("Step() = %s, expected %s", got, tc.state)
			}
			if s.World().Frame() != 0 {
				t.Error("a finished run should not simulate")
			}
			if s.Step(idle) != tc.state || !s.State().Terminal() {
				t.Error("terminal state should stick")
			}
			if r := s.Result(); r.Outcome != tc.outcome || r.Stars != (Stars{}) {
				t.Errorf("Result() = %+v", r)
			}
		})
	}
}

func TestSessionWalk(t *testing.T) {
	s := newTestSession(t, 0, "...", "...")
	p := s.World().Player()

	if got := s.Step(press(core.ActionRight)); got != StateMoving {
		t.Fatalf("Step() = %s, expected moving", got)
	}
	for range 7 {
		s.Step(idle)
	}
	if s.State() != StateIdle || p.Pos != C(2, 1) {
		t.Fatalf("state %s pos %s", s.State(), p.Pos)
	}

	// up beats right when both are held
	s.Step(press(core.ActionRight, core.ActionUp))
	if p.Facing != DirUp || p.Moving() {
		t.Errorf("facing %s moving %v", p.Facing, p.Moving())
	}

	snap := s.Snapshot()
	if snap.PlayerX != 2 || snap.PlayerY != 1 || snap.Steps != 1 || snap.Frame != 9 {
		t.Errorf("Snapshot() = %+v", snap)
	}
	if snap.BallsLeft != [ColorCount]int{0, 0, 1} || snap.Entities[LayerMain] != 1 {
		t.Errorf("Snapshot() = %+v", snap)
	}
}

func TestSessionMessagePauses(t *testing.T) {
	s := newTestSession(t, 0, "...", "...")
	w := s.World()
	w.Register(NewEnvelope(C(2, 1), "read me"))

	if got := s.Step(press(core.ActionRight)); got != StateMessage {
		t.Fatalf("Step() = %s, expected message", got)
	}
	if !s.ReleaseHeld() || s.ReleaseHeld() {
		t.Error("message should release held keys once")
	}
	frame := w.Frame()
	if s.Step(press(core.ActionDown)) != StateMessage || w.Frame() != frame {
		t.Error("simulation should pause while a message is shown")
	}
	if got := s.Step(press(core.ActionConfirm)); got != StateIdle {
		t.Errorf("Step(confirm) = %s, expected idle", got)
	}
	if _, ok := w.Message(); ok {
		t.Error("confirm should dismiss the message")
	}
}

func TestSessionWin(t *testing.T) {
	tests := []struct {
		name   string
		budget int
		gem    bool
		stars  Stars
	}{
		{"perfect", 0, false, PerfectStars},
		{"missed diamond", 0, true, Stars{true, false, true}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, "..r", "...")
			withPlayer(w, C(1, 1))
			w.Register(NewBall(C(2, 1), Red))
			if tc.gem {
				w.Register(NewDiamond(C(3, 2)))
			}
			s := NewSession(w, tc.budget)

			s.Step(press(core.ActionRight))
			for range 2 {
				s.Step(idle)
			}
			if s.State().Terminal() {
				t.Fatal("won before the ball arrived")
			}
			if got := s.Step(idle); got != StateWin {
				t.Fatalf("Step() = %s, expected win", got)
			}
			r := s.Result()
			if r.Outcome != OutcomeWin || r.Stars != tc.stars {
				t.Errorf("Result() = %+v, expected stars %s", r, tc.stars)
			}
		})
	}
}

func TestSessionLose(t *testing.T) {
	s := newTestSession(t, 0, "...", "...")
	s.World().Register(NewCannon(C(2, 1), DirLeft, constant(1), constant(GunSpeed)))

	s.Step(idle)
	if got := s.Step(idle); got != StateLose {
		t.Fatalf("Step() = %s, expected lose", got)
	}
	if s.Result().Outcome != OutcomeLose {
		t.Errorf("Result() = %+v", s.Result())
	}
}

func TestSessionOneShotActions(t *testing.T) {
	s := newTestSession(t, 0, "._.", "...")
	p := s.World().Player()
	p.Facing = DirRight
	p.Inventory.Add(LilyPlant{}, 1)
	p.Inventory.Add(Gun{}, 1)

	s.Step(press(core.ActionToggleHUD))
	if p.HUD != HUDInventory {
		t.Errorf("HUD = %d, expected inventory", p.HUD)
	}
	s.Step(press(core.ActionNextItem))
	if p.Inventory.SelectedIndex() != 0 {
		t.Errorf("SelectedIndex() = %d after next", p.Inventory.SelectedIndex())
	}
	s.Step(press(core.ActionPrevItem))
	if p.Inventory.SelectedIndex() != 1 {
		t.Errorf("SelectedIndex() = %d after previous", p.Inventory.SelectedIndex())
	}
	s.Step(press(core.ActionUseItem))
	if s.World().TileAt(C(2, 1)) != Lily {
		t.Error("use should plant the lily")
	}
	if p.Inventory.Len() != 1 {
		t.Errorf("Len() = %d after using the last lily", p.Inventory.Len())
	}
}

func TestNewSessionWithoutPlayer(t *testing.T) {
	w := newTestWorld(t, ".")
	expectPanic(t, "NewSession", func() { NewSession(w, 0) })
}

func TestStars(t *testing.T) {
	tests := []struct {
		in    string
		stars Stars
		count int
	}{
		{"___", Stars{}, 0},
		{"*_*", Stars{true, false, true}, 2},
		{"***", PerfectStars, 3},
	}
	for _, tc := range tests {
		s, err := ParseStars(tc.in)
		if err != nil || s != tc.stars {
			t.Errorf("ParseStars(%q) = %v, %v", tc.in, s, err)
		}
		if s.String() != tc.in || s.Count() != tc.count {
			t.Errorf("%v: String %q Count %d", s, s.String(), s.Count())
		}
	}
	for _, bad := range []string{"", "**", "*x*", "****"} {
		if _, err := ParseStars(bad); err == nil {
			t.Errorf("ParseStars(%q) should fail", bad)
		}
	}

	if Rate(false, 0, 0, 10) != (Stars{}) {
		t.Error("a loss earns nothing")
	}
	if got := Rate(true, 0, 11, 10); got != (Stars{true, true, false}) {
		t.Errorf("Rate over budget = %s", got)
	}
}
