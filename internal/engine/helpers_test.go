package engine

import "testing"

func newTestWorld(t *testing.T, rows ...string) *World {
	t.Helper()
	g, err := NewGrid(rows)
	if err != nil {
		t.Fatalf("NewGrid(%q) failed: %v", rows, err)
	}
	return NewWorld(g)
}

// withPlayer registers a player at pos.
func withPlayer(w *World, pos Coord) *Player {
	p := NewPlayer(pos)
	w.Register(p)
	return p
}

// frames runs n update passes.
func frames(w *World, n int) {
	for range n {
		w.beginFrame()
		w.Update()
	}
}

// walk moves the player one tile (or touches what is ahead) and runs
// frames until the player is idle again.
func walk(t *testing.T, w *World, p *Player, d Dir) {
	t.Helper()
	p.BeforeStep(w, d)
	for i := 0; p.Moving(); i++ {
		if i > 2*TileUnits/p.StepSize() {
			t.Fatalf("player stuck moving %s from %s", d, p.Pos)
		}
		frames(w, 1)
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
