package engine

// EventFunc is the effect of a tile event.
type EventFunc func(w *World, e *Event)

// Event fires when the player finishes a move onto Pos. It is removed once
// Remaining reaches zero; a negative count never runs out.
type Event struct {
	Pos       Coord
	Effect    EventFunc
	Remaining int
	Data      any
}

// NewEvent creates an event that fires times times (0 means once).
func NewEvent(pos Coord, effect EventFunc, times int, data any) *Event {
	if times == 0 {
		times = 1
	}
	return &Event{Pos: pos, Effect: effect, Remaining: times, Data: data}
}

func (e *Event) trigger(w *World) {
	w.log.Debug("event triggered", "pos", e.Pos, "remaining", e.Remaining)
	if e.Effect != nil {
		e.Effect(w, e)
	}
	e.Remaining--
	// the effect may have bound a new event to this tile
	if e.Remaining == 0 && w.events[e.Pos] == e {
		delete(w.events, e.Pos)
	}
}
