package engine

// Schedule maps a shot number to a value, such as the delay before the
// next shot or the speed of the cannonball.
type Schedule[T any] func(shot int) T

// Cannon fires cannonballs in a fixed direction.
type Cannon struct {
	Base
	Facing  Dir
	DelayOf Schedule[int]
	SpeedOf Schedule[float64]
	shots   int
	delay   int
}

// NewCannon creates a cannon at pos. The first shot waits delay(0) frames.
func NewCannon(pos Coord, facing Dir, delay Schedule[int], speed Schedule[float64]) *Cannon {
	return &Cannon{
		Base:    Base{Pos: pos, layer: LayerMain},
		Facing:  facing,
		DelayOf: delay,
		SpeedOf: speed,
		delay:   delay(0),
	}
}

func (c *Cannon) Kind() Kind { return KindCannon }

func (c *Cannon) Sprite() string { return "cannon_" + c.Facing.String() }

// Shots returns the number of shots fired.
func (c *Cannon) Shots() int { return c.shots }

// Update counts down and fires. A player right in front of the muzzle is
// hit on every frame the cannon is ready.
func (c *Cannon) Update(w *World) {
	if c.delay > 0 {
		c.delay--
		return
	}

	target := c.Pos.Step(c.Facing)
	if w.PlayerAt(target) {
		w.Player().OnHit(w, c.Facing.Opposite())
		return
	}
	if w.TileAt(target) != Wall {
		occupant := w.At(c.layer, target)
		if owner := w.Resolve(occupant); owner != nil {
			owner.OnHit(w, c.Facing.Opposite())
		} else if occupant == nil {
			ball := mustCannonball(target, c.Facing, c.SpeedOf(c.shots))
			w.Register(ball)
		}
	}
	c.shots++
	c.delay = c.DelayOf(c.shots)
}

// Cannonball flies straight until it hits something or a wall.
type Cannonball struct {
	Mover
}

// NewCannonball launches a cannonball from pos in direction d.
func NewCannonball(pos Coord, d Dir, speed float64) (*Cannonball, error) {
	if err := checkSpeed(speed); err != nil {
		return nil, err
	}
	cb := &Cannonball{Mover: newMover(pos, speed)}
	cb.start(d)
	return cb, nil
}

func mustCannonball(pos Coord, d Dir, speed float64) *Cannonball {
	cb, err := NewCannonball(pos, d, max(speed, MinSpeed))
	if err != nil {
		invariant("cannonball: %v", err)
	}
	return cb
}

func (c *Cannonball) Kind() Kind { return KindCannonball }

func (c *Cannonball) Sprite() string { return "cannonball" }

// Update advances the flight. The ball leaves its slot on arrival and only
// takes the new one back if it survives AfterStep.
func (c *Cannonball) Update(w *World) {
	d := c.heading
	if !c.advance() {
		return
	}
	w.layers[c.layer].popIf(c.Pos, c)
	c.Pos = c.Pos.Step(d)
	c.heading = d
	c.AfterStep(w)
}

func (c *Cannonball) AfterStep(w *World) {
	from := c.heading.Opposite()
	if w.PlayerAt(c.Pos) {
		w.Player().OnHit(w, from)
	}
	occupant := w.At(c.layer, c.Pos)
	if occupant != nil {
		if owner := w.Resolve(occupant); owner != nil {
			owner.OnHit(w, from)
		}
		w.Unregister(c)
		return
	}
	if w.TileAt(c.Pos) == Wall {
		w.Unregister(c)
		return
	}
	w.layers[c.layer].put(c.Pos, c)
	c.start(c.heading)
}
