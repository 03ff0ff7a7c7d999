package engine

import "testing"

func TestEventTimes(t *testing.T) {
	tests := []struct {
		name      string
		times     int
		visits    int
		fired     int
		remaining bool
	}{
		{"zero means once", 0, 2, 1, false},
		{"twice", 2, 3, 2, false},
		{"unlimited", -1, 3, 3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, "..")
			p := withPlayer(w, C(1, 1))
			fired := 0
			w.AddEvent(NewEvent(C(2, 1), func(*World, *Event) { fired++ }, tc.times, nil))

			for range tc.visits {
				walk(t, w, p, DirRight)
				walk(t, w, p, DirLeft)
			}
			if fired != tc.fired {
				t.Errorf("fired %d times, expected %d", fired, tc.fired)
			}
			if got := w.EventAt(C(2, 1)) != nil; got != tc.remaining {
				t.Errorf("event present = %v, expected %v", got, tc.remaining)
			}
		})
	}
}

func TestEventFiresOnTeleport(t *testing.T) {
	w := newTestWorld(t, "....")
	p := withPlayer(w, C(1, 1))
	w.Register(NewPortal(C(2, 1), C(4, 1)))
	var got Coord
	w.AddEvent(NewEvent(C(4, 1), func(_ *World, e *Event) { got = e.Pos }, 0, nil))

	walk(t, w, p, DirRight)
	if got != C(4, 1) {
		t.Error("teleport arrival should trigger the destination event")
	}
	if w.EventCount() != 0 {
		t.Errorf("EventCount() = %d, expected 0", w.EventCount())
	}
}

func TestEventRebindsOwnTile(t *testing.T) {
	w := newTestWorld(t, "..")
	p := withPlayer(w, C(1, 1))
	second := 0
	w.AddEvent(NewEvent(C(2, 1), func(w *World, e *Event) {
		w.AddEvent(NewEvent(e.Pos, func(*World, *Event) { second++ }, 0, nil))
	}, 0, nil))

	walk(t, w, p, DirRight)
	if w.EventAt(C(2, 1)) == nil {
		t.Fatal("event bound by the effect was dropped")
	}
	walk(t, w, p, DirLeft)
	walk(t, w, p, DirRight)
	if second != 1 || w.EventCount() != 0 {
		t.Errorf("second event fired %d times, %d events left", second, w.EventCount())
	}
}
