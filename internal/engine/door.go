package engine

// Condition decides whether a door opens. Both door hooks use the same
// signature; the door carries whatever parameters the condition needs.
type Condition func(w *World, d *Door) bool

// Door blocks its tile until a condition holds, then removes itself.
// WhenUpdated is checked every frame, WhenTouched when the player walks
// into it. Either may be nil.
type Door struct {
	Base
	WhenUpdated Condition
	WhenTouched Condition
	Params      map[string]string
}

// NewDoor creates a locked door at pos.
func NewDoor(pos Coord, onUpdate, onTouch Condition, params map[string]string) *Door {
	return &Door{
		Base:        Base{Pos: pos, layer: LayerMain},
		WhenUpdated: onUpdate,
		WhenTouched: onTouch,
		Params:      params,
	}
}

func (d *Door) Kind() Kind { return KindDoor }

func (d *Door) Sprite() string { return "door_locked" }

func (d *Door) Update(w *World) {
	if d.WhenUpdated != nil && d.WhenUpdated(w, d) {
		d.open(w)
	}
}

func (d *Door) OnTouch(w *World, _ Dir) {
	if d.WhenTouched != nil && d.WhenTouched(w, d) {
		d.open(w)
	}
}

func (d *Door) open(w *World) {
	w.log.Debug("door opened", "pos", d.Pos)
	w.Unregister(d)
}
