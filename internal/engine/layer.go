package engine

import "slices"

// Layer indices.
const (
	LayerGround  = 0
	LayerMain    = 1
	LayerOverlay = 2
	layerCount   = 3
)

type slot struct {
	e   Entity
	seq uint64
}

// layer maps coordinates to at most one entity and remembers the order in
// which slots were first filled. Overwriting an occupied slot keeps its
// place in that order; popping a slot forgets it.
type layer struct {
	slots map[Coord]*slot
	next  uint64
}

func newLayer() *layer {
	return &layer{slots: make(map[Coord]*slot)}
}

func (l *layer) get(c Coord) Entity {
	if s, ok := l.slots[c]; ok {
		return s.e
	}
	return nil
}

func (l *layer) put(c Coord, e Entity) {
	if s, ok := l.slots[c]; ok {
		s.e = e
		return
	}
	l.next++
	l.slots[c] = &slot{e: e, seq: l.next}
}

func (l *layer) pop(c Coord) Entity {
	s, ok := l.slots[c]
	if !ok {
		return nil
	}
	delete(l.slots, c)
	return s.e
}

// popIf removes the slot at c only when it holds e.
func (l *layer) popIf(c Coord, e Entity) bool {
	if s, ok := l.slots[c]; ok && s.e == e {
		delete(l.slots, c)
		return true
	}
	return false
}

func (l *layer) len() int {
	return len(l.slots)
}

// values returns the occupants in slot order. The result is a copy, so the
// caller may mutate the layer while iterating it.
func (l *layer) values() []Entity {
	ordered := make([]*slot, 0, len(l.slots))
	for _, s := range l.slots {
		ordered = append(ordered, s)
	}
	slices.SortFunc(ordered, func(a, b *slot) int {
		switch {
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})

	out := make([]Entity, len(ordered))
	for i, s := range ordered {
		out[i] = s.e
	}
	return out
}
