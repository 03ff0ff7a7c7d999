package engine

import (
	"io"

	"github.com/charmbracelet/log"
)

// World owns the terrain, the three entity layers, the tile events and the
// win counters of one level attempt.
type World struct {
	grid         *Grid
	layers       [layerCount]*layer
	events       map[Coord]*Event
	ballsLeft    [ColorCount]int
	diamondsLeft int
	player       *Player
	live         map[ID]Entity
	nextID       ID
	frame        uint64
	foreground   []Draw

	message     string
	hasMessage  bool
	releaseHeld bool

	log *log.Logger
}

// Option configures a World.
type Option func(*World)

// WithLogger routes engine diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// NewWorld creates an empty world over g.
func NewWorld(g *Grid, opts ...Option) *World {
	w := &World{
		grid:   g,
		events: make(map[Coord]*Event),
		live:   make(map[ID]Entity),
		log:    log.New(io.Discard),
	}
	for i := range w.layers {
		w.layers[i] = newLayer()
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Grid returns the terrain map.
func (w *World) Grid() *Grid { return w.grid }

// TileAt returns the terrain at c.
func (w *World) TileAt(c Coord) Terrain { return w.grid.At(c) }

// SetTile replaces the terrain at c.
func (w *World) SetTile(c Coord, t Terrain) { w.grid.Set(c, t) }

// Player returns the player, or nil before one is registered.
func (w *World) Player() *Player { return w.player }

// Frame returns the number of completed update passes.
func (w *World) Frame() uint64 { return w.frame }

// BallsLeft returns the unseated ball count per color.
func (w *World) BallsLeft() [ColorCount]int { return w.ballsLeft }

// DiamondsLeft returns the number of diamonds not yet collected.
func (w *World) DiamondsLeft() int { return w.diamondsLeft }

// AllSeated reports whether every color counter is zero.
func (w *World) AllSeated() bool {
	return w.ballsLeft == [ColorCount]int{}
}

// At returns the occupant of a layer slot, or nil.
func (w *World) At(layer int, c Coord) Entity {
	return w.layers[layer].get(c)
}

// IsFree reports whether the layer slot is empty and the player is not
// standing on c.
func (w *World) IsFree(c Coord, layer int) bool {
	if w.layers[layer].get(c) != nil {
		return false
	}
	return w.player == nil || w.player.Pos != c
}

// PlayerAt reports whether the player stands on c.
func (w *World) PlayerAt(c Coord) bool {
	return w.player != nil && w.player.Pos == c
}

// Entities returns the occupants of a layer in iteration order.
func (w *World) Entities(layer int) []Entity {
	return w.layers[layer].values()
}

// Count returns the number of occupied slots on a layer.
func (w *World) Count(layer int) int {
	return w.layers[layer].len()
}

// Lookup returns a live entity by ID.
func (w *World) Lookup(id ID) Entity {
	return w.live[id]
}

// Resolve maps a reservation to the entity that owns it. Other entities,
// and nil, are returned unchanged.
func (w *World) Resolve(e Entity) Entity {
	if e == nil {
		return nil
	}
	if owner := e.Meta().owner; owner != 0 {
		if o, ok := w.live[owner]; ok {
			return o
		}
		return nil
	}
	return e
}

// Register adds an entity to the world. A ball already resting on a pad
// of its color is seated and not counted; every other ball adds one to its
// color counter. Diamonds add to the diamond counter. It panics when the
// entity was registered before or its slot is taken.
func (w *World) Register(e Entity) {
	b := e.Meta()
	if b.id != 0 {
		invariant("%s %s registered twice", e.Kind(), b.Pos)
	}
	w.nextID++
	b.id = w.nextID
	w.live[b.id] = e

	switch v := e.(type) {
	case *Player:
		if w.player != nil {
			invariant("second player at %s", b.Pos)
		}
		w.player = v
		return
	case *Ball:
		if w.TileAt(v.Pos).Seats(v.Color) {
			v.Seated = true
		} else {
			w.ballsLeft[v.Color]++
		}
	case *Diamond:
		w.diamondsLeft++
	}

	if w.layers[b.layer].get(b.Pos) != nil {
		invariant("%s at %s: layer %d slot taken", e.Kind(), b.Pos, b.layer)
	}
	w.layers[b.layer].put(b.Pos, e)
	w.log.Debug("entity registered", "kind", e.Kind(), "pos", b.Pos, "id", b.id)
}

// Unregister removes an entity from its layer. Counters are untouched.
func (w *World) Unregister(e Entity) {
	b := e.Meta()
	w.layers[b.layer].popIf(b.Pos, e)
	delete(w.live, b.id)
}

// AddEvent binds an event to its tile, replacing any previous one.
func (w *World) AddEvent(e *Event) {
	w.events[e.Pos] = e
}

// EventAt returns the event bound to c, or nil.
func (w *World) EventAt(c Coord) *Event {
	return w.events[c]
}

// EventCount returns the number of pending events.
func (w *World) EventCount() int {
	return len(w.events)
}

// Push queues a draw request for the current frame.
func (w *World) Push(d Draw) {
	w.foreground = append(w.foreground, d)
}

// Foreground returns the draw requests queued this frame.
func (w *World) Foreground() []Draw {
	return w.foreground
}

// ShowMessage asks the front end to display text until the player
// dismisses it. The simulation pauses meanwhile.
func (w *World) ShowMessage(text string) {
	w.message = text
	w.hasMessage = true
}

// Message returns the pending message, if any.
func (w *World) Message() (string, bool) {
	return w.message, w.hasMessage
}

// DismissMessage clears the pending message.
func (w *World) DismissMessage() {
	w.message = ""
	w.hasMessage = false
}

// ReleaseHeld asks the input source to forget held directions.
func (w *World) ReleaseHeld() {
	w.releaseHeld = true
}

func (w *World) takeRelease() bool {
	r := w.releaseHeld
	w.releaseHeld = false
	return r
}

// Update runs one logic pass: the player first, then every entity on
// layers 0, 1 and 2 in slot order. Entities removed earlier in the pass
// are skipped.
func (w *World) Update() {
	if w.player != nil {
		w.player.Update(w)
	}
	for _, l := range w.layers {
		for _, e := range l.values() {
			if !w.present(e) {
				continue
			}
			e.Update(w)
		}
	}
	w.frame++
}

// present reports whether e is still reachable this frame. Reservations
// are not indexed by ID, so their slot is checked instead.
func (w *World) present(e Entity) bool {
	b := e.Meta()
	if b.owner != 0 {
		return w.layers[b.layer].get(b.Pos) == e
	}
	_, ok := w.live[b.id]
	return ok
}

func (w *World) beginFrame() {
	w.foreground = w.foreground[:0]
}

// commit is the commit phase of the movement protocol. It reserves the
// destination slot on the mover's layer and starts the move. Callers check
// the slot first; committing onto a taken slot panics.
func (w *World) commit(m mover, d Dir) *Reservation {
	b := m.Meta()
	dest := b.Pos.Step(d)
	if w.layers[b.layer].get(dest) != nil {
		invariant("%s at %s committed onto taken slot %s", m.Kind(), b.Pos, dest)
	}
	r := newReservation(dest, b.layer, b.id)
	w.layers[b.layer].put(dest, r)
	m.motion().start(d)
	return r
}

// progress is the progress phase for movers that live in a layer slot.
// On arrival the mover replaces its reservation and AfterStep runs.
func (w *World) progress(m mover) {
	mv := m.motion()
	d := mv.heading
	if !mv.advance() {
		return
	}
	l := w.layers[mv.layer]
	l.popIf(mv.Pos, m)
	mv.Pos = mv.Pos.Step(d)
	if occ := l.get(mv.Pos); occ != nil && occ.Meta().owner != mv.id {
		invariant("%s arrived on %s held by %s", m.Kind(), mv.Pos, occ.Kind())
	}
	l.put(mv.Pos, m)
	m.AfterStep(w)
}
