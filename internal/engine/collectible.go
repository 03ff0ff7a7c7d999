package engine

import "fmt"

const (
	diamondFrames    = 3
	animationPeriod  = 60
	portalFrames     = 2
	portalAlertTicks = 60
)

// Diamond is an optional collectible counted for the second star.
type Diamond struct {
	Base
	frame int
	timer int
}

// NewDiamond creates a diamond at pos.
func NewDiamond(pos Coord) *Diamond {
	return &Diamond{Base: Base{Pos: pos, layer: LayerMain}}
}

func (d *Diamond) Kind() Kind { return KindDiamond }

func (d *Diamond) Sprite() string { return fmt.Sprintf("diamond_%d", d.frame+1) }

func (d *Diamond) OnTouch(w *World, _ Dir) {
	w.diamondsLeft--
	w.Unregister(d)
}

func (d *Diamond) Update(*World) {
	d.timer++
	if d.timer == animationPeriod {
		d.timer = 0
		d.frame = (d.frame + 1) % diamondFrames
	}
}

// Envelope holds a message shown when the player picks it up.
type Envelope struct {
	Base
	Text string
}

// NewEnvelope creates an envelope carrying text.
func NewEnvelope(pos Coord, text string) *Envelope {
	return &Envelope{Base: Base{Pos: pos, layer: LayerMain}, Text: text}
}

func (e *Envelope) Kind() Kind { return KindEnvelope }

func (e *Envelope) Sprite() string { return "envelope" }

func (e *Envelope) OnTouch(w *World, _ Dir) {
	w.Unregister(e)
	w.ReleaseHeld()
	w.ShowMessage(e.Text)
}
