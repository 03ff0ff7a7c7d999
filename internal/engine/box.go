package engine

import "fmt"

// Drowning animation: boxDrownImages sprites shown boxDrownRate frames each.
const (
	boxDrownRate   = 6
	boxDrownImages = 6
	BoxDrownFrames = boxDrownRate * boxDrownImages
)

// Box is pushed one tile at a time and sinks in water.
type Box struct {
	Mover
	drowning int
}

// NewBox creates a box at pos.
func NewBox(pos Coord) *Box {
	return &Box{Mover: newMover(pos, BoxSpeed)}
}

func (b *Box) Kind() Kind { return KindBox }

// Drowning reports whether the sinking animation has started.
func (b *Box) Drowning() bool { return b.drowning > 0 }

func (b *Box) Sprite() string {
	if b.drowning > 0 {
		return fmt.Sprintf("box_drowning_%d", min(b.drowning/boxDrownRate+1, boxDrownImages))
	}
	return "box"
}

func (b *Box) BeforeStep(w *World, d Dir) {
	if b.drowning > 0 || b.moving {
		return
	}
	dest := b.Pos.Step(d)
	if !w.IsFree(dest, b.layer) || w.TileAt(dest) == Wall {
		return
	}
	w.commit(b, d)
}

// AfterStep starts drowning on water. A lily sinks with the box and leaves
// open water behind.
func (b *Box) AfterStep(w *World) {
	switch w.TileAt(b.Pos) {
	case Water:
		b.drowning = 1
	case Lily:
		b.drowning = 1
		w.SetTile(b.Pos, Water)
	}
}

func (b *Box) OnTouch(w *World, d Dir) {
	b.BeforeStep(w, d)
}

func (b *Box) Update(w *World) {
	if b.drowning == 0 {
		w.progress(b)
		return
	}
	b.drowning++
	if b.drowning >= BoxDrownFrames {
		w.Unregister(b)
	}
}
