package engine

// LittleDevil chases the player greedily: it tries the axis with the larger
// distance first and falls back to the other one. Health zero means it
// cannot be killed.
type LittleDevil struct {
	Mover
	Health      int
	reservation *Reservation
}

// NewLittleDevil creates a devil at pos.
func NewLittleDevil(pos Coord, speed float64, health int) (*LittleDevil, error) {
	if err := checkSpeed(speed); err != nil {
		return nil, err
	}
	return &LittleDevil{Mover: newMover(pos, speed), Health: health}, nil
}

func (l *LittleDevil) Kind() Kind { return KindLittleDevil }

func (l *LittleDevil) Sprite() string { return "little_devil" }

func (l *LittleDevil) Update(w *World) {
	if !l.moving {
		l.chase(w)
	}
	w.progress(l)
}

func (l *LittleDevil) chase(w *World) {
	target := w.Player().Pos
	dx, dy := target.X-l.Pos.X, target.Y-l.Pos.Y

	var xDir, yDir Dir
	hasX, hasY := dx != 0, dy != 0
	if dx < 0 {
		xDir = DirLeft
	} else {
		xDir = DirRight
	}
	if dy < 0 {
		yDir = DirUp
	} else {
		yDir = DirDown
	}

	first, second := xDir, yDir
	hasFirst, hasSecond := hasX, hasY
	if abs(dx) < abs(dy) {
		first, second = yDir, xDir
		hasFirst, hasSecond = hasY, hasX
	}

	if hasFirst && l.try(w, first) {
		return
	}
	if hasSecond {
		l.try(w, second)
	}
}

// try commits to d unless a wall or any main-layer occupant is in the way.
// The player's own tile is not an obstacle.
func (l *LittleDevil) try(w *World, d Dir) bool {
	dest := l.Pos.Step(d)
	if w.TileAt(dest) == Wall || w.At(l.layer, dest) != nil {
		return false
	}
	l.reservation = w.commit(l, d)
	return true
}

func (l *LittleDevil) AfterStep(w *World) {
	l.reservation = nil
	if w.PlayerAt(l.Pos) {
		w.Player().OnHit(w, l.heading.Opposite())
	}
}

// OnHit costs one health point. At zero the devil is removed together with
// any reservation it holds.
func (l *LittleDevil) OnHit(w *World, _ Dir) {
	if l.Health <= 0 {
		return
	}
	l.Health--
	if l.Health > 0 {
		return
	}
	w.Unregister(l)
	if l.reservation != nil {
		l.reservation.Destroy(w)
		l.reservation = nil
	}
}

// HellEntrance sits on the ground layer and spawns little devils. When its
// period elapses it hits a player standing on it, waits while the tile is
// occupied, and otherwise releases a devil.
type HellEntrance struct {
	Base
	Frequency int
	Speed     float64
	Health    int
	counter   int
}

// NewHellEntrance creates a spawner at pos.
func NewHellEntrance(pos Coord, frequency int, speed float64, health int) (*HellEntrance, error) {
	if err := checkSpeed(speed); err != nil {
		return nil, err
	}
	if frequency < 1 {
		return nil, ConfigError{Code: CodeBadValue, Message: "hell entrance frequency must be positive"}
	}
	return &HellEntrance{
		Base:      Base{Pos: pos, layer: LayerGround},
		Frequency: frequency,
		Speed:     speed,
		Health:    health,
	}, nil
}

func (h *HellEntrance) Kind() Kind { return KindHellEntrance }

func (h *HellEntrance) Sprite() string { return "hell_entrance" }

func (h *HellEntrance) Update(w *World) {
	if h.counter > 0 {
		h.counter--
	}
	if h.counter > 0 {
		return
	}

	if w.PlayerAt(h.Pos) {
		p := w.Player()
		p.OnHit(w, p.Facing)
		return
	}
	if occupant := w.At(LayerMain, h.Pos); occupant != nil {
		if owner := w.Resolve(occupant); owner != nil && owner.Kind() == KindPlayer {
			p := w.Player()
			p.OnHit(w, p.Facing)
		}
		return
	}

	devil := &LittleDevil{Mover: newMover(h.Pos, h.Speed), Health: h.Health}
	w.Register(devil)
	h.counter = h.Frequency
}
