package engine

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/vovakirdan/rgballs/internal/core"
)

// State is the session state machine.
type State uint8

const (
	StateIdle State = iota
	StateMoving
	StateMessage
	StateWin
	StateLose
	StateRetry
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMoving:
		return "moving"
	case StateMessage:
		return "message"
	case StateWin:
		return "win"
	case StateLose:
		return "lose"
	case StateRetry:
		return "retry"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Terminal reports whether the run is over.
func (s State) Terminal() bool {
	return s >= StateWin
}

// Outcome is how a level attempt ended.
type Outcome uint8

const (
	OutcomeWin Outcome = iota
	OutcomeLose
	OutcomeRetry
	OutcomeAborted
	OutcomeLevelNotFound
)

func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "win"
	case OutcomeLose:
		return "lose"
	case OutcomeRetry:
		return "retry"
	case OutcomeAborted:
		return "aborted"
	case OutcomeLevelNotFound:
		return "level_not_found"
	default:
		return "unknown"
	}
}

// Stars is the three-slot rating: completed, all diamonds, within budget.
type Stars [3]bool

// PerfectStars is the best possible rating.
var PerfectStars = Stars{true, true, true}

// String renders the rating as e.g. "*_*".
func (s Stars) String() string {
	var sb strings.Builder
	for _, earned := range s {
		if earned {
			sb.WriteByte('*')
		} else {
			sb.WriteByte('_')
		}
	}
	return sb.String()
}

// Count returns the number of earned stars.
func (s Stars) Count() int {
	n := 0
	for _, earned := range s {
		if earned {
			n++
		}
	}
	return n
}

// ParseStars reads the form produced by String.
func ParseStars(v string) (Stars, error) {
	var s Stars
	if len(v) != len(s) {
		return s, fmt.Errorf("stars %q: want %d characters", v, len(s))
	}
	for i := range s {
		switch v[i] {
		case '*':
			s[i] = true
		case '_':
		default:
			return Stars{}, fmt.Errorf("stars %q: bad character %q", v, v[i])
		}
	}
	return s, nil
}

// Rate computes the rating of a finished run.
func Rate(won bool, diamondsLeft, steps, budget int) Stars {
	if !won {
		return Stars{}
	}
	return Stars{true, diamondsLeft == 0, steps <= budget}
}

// Result summarizes a finished run.
type Result struct {
	Outcome Outcome
	Stars   Stars
	Steps   int
	Budget  int
}

// Session drives one attempt at a level, one frame per Step.
type Session struct {
	RunID  string
	world  *World
	budget int
	state  State
}

// NewSession starts a run over a fully registered world.
func NewSession(w *World, budget int) *Session {
	if w.Player() == nil {
		invariant("session without a player")
	}
	return &Session{
		RunID:  uuid.NewString(),
		world:  w,
		budget: budget,
	}
}

// World returns the simulated world.
func (s *Session) World() *World { return s.world }

// State returns the current state.
func (s *Session) State() State { return s.state }

// Budget returns the step budget for the third star.
func (s *Session) Budget() int { return s.budget }

// ReleaseHeld reports, once, that the input source should drop any held
// directions.
func (s *Session) ReleaseHeld() bool {
	return s.world.takeRelease()
}

// Step runs one frame: one-shot actions, the player's move decision, the
// update pass, then the terminal checks. Held directions are read from
// the movement actions in the frame.
func (s *Session) Step(in core.InputFrame) State {
	if s.state.Terminal() {
		return s.state
	}
	w := s.world
	p := w.Player()
	w.beginFrame()

	if _, ok := w.Message(); ok {
		if in.Has(core.ActionConfirm) {
			w.DismissMessage()
		} else {
			s.state = StateMessage
			return s.state
		}
	}

	switch {
	case in.Has(core.ActionQuit):
		return s.finish(StateAborted)
	case in.Has(core.ActionRestart):
		return s.finish(StateRetry)
	}
	if in.Has(core.ActionToggleHUD) {
		p.SwitchHUD()
	}
	if in.Has(core.ActionPrevItem) {
		p.Inventory.SelectPrevious()
	}
	if in.Has(core.ActionNextItem) {
		p.Inventory.SelectNext()
	}
	if in.Has(core.ActionUseItem) {
		p.UseItem(w)
	}

	if !p.Moving() {
		if d, ok := heldDirection(in); ok {
			p.BeforeStep(w, d)
		}
	}

	w.Update()

	switch {
	case w.AllSeated():
		return s.finish(StateWin)
	case p.Dead:
		return s.finish(StateLose)
	}

	if _, ok := w.Message(); ok {
		s.state = StateMessage
	} else if p.Moving() {
		s.state = StateMoving
	} else {
		s.state = StateIdle
	}
	return s.state
}

func (s *Session) finish(st State) State {
	s.state = st
	p := s.world.Player()
	s.world.log.Info("run finished", "run", s.RunID, "state", st, "steps", p.Steps, "frame", s.world.Frame())
	return st
}

// Result returns the outcome of a finished run. Before the run ends it
// reports an abort with no stars.
func (s *Session) Result() Result {
	p := s.world.Player()
	r := Result{Steps: p.Steps, Budget: s.budget}
	switch s.state {
	case StateWin:
		r.Outcome = OutcomeWin
		r.Stars = Rate(true, s.world.DiamondsLeft(), p.Steps, s.budget)
	case StateLose:
		r.Outcome = OutcomeLose
	case StateRetry:
		r.Outcome = OutcomeRetry
	default:
		r.Outcome = OutcomeAborted
	}
	return r
}

var dirActions = map[Dir]core.Action{
	DirUp:    core.ActionUp,
	DirDown:  core.ActionDown,
	DirLeft:  core.ActionLeft,
	DirRight: core.ActionRight,
}

func heldDirection(in core.InputFrame) (Dir, bool) {
	for _, d := range inputPriority {
		if in.Has(dirActions[d]) {
			return d, true
		}
	}
	return DirUp, false
}

// Snapshot captures the observable session state for tests and replays.
type Snapshot struct {
	Frame        uint64
	State        State
	PlayerX      int
	PlayerY      int
	Facing       Dir
	Steps        int
	BallsLeft    [ColorCount]int
	DiamondsLeft int
	Entities     [layerCount]int
	Events       int
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	w := s.world
	p := w.Player()
	snap := Snapshot{
		Frame:        w.Frame(),
		State:        s.state,
		PlayerX:      p.Pos.X,
		PlayerY:      p.Pos.Y,
		Facing:       p.Facing,
		Steps:        p.Steps,
		BallsLeft:    w.BallsLeft(),
		DiamondsLeft: w.DiamondsLeft(),
		Events:       w.EventCount(),
	}
	for i := range snap.Entities {
		snap.Entities[i] = w.Count(i)
	}
	return snap
}
