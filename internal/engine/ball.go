package engine

// Ball is pushed by the player and glides until something stops it.
type Ball struct {
	Mover
	Color  Color
	Seated bool
}

// NewBall creates a ball of color c at pos.
func NewBall(pos Coord, c Color) *Ball {
	return &Ball{
		Mover: newMover(pos, BallSpeed),
		Color: c,
	}
}

func (b *Ball) Kind() Kind { return KindBall }

func (b *Ball) Sprite() string { return b.Color.String() + "_ball" }

// BeforeStep starts a slide unless the ball sits on a magnetic pad or the
// tile ahead is taken or a wall. Leaving a pad while seated puts the ball
// back on its color counter.
func (b *Ball) BeforeStep(w *World, d Dir) {
	if b.moving || w.TileAt(b.Pos).IsMagnetic() {
		return
	}
	dest := b.Pos.Step(d)
	if !w.IsFree(dest, b.layer) || w.TileAt(dest) == Wall {
		return
	}
	if b.Seated {
		b.Seated = false
		w.ballsLeft[b.Color]++
	}
	w.commit(b, d)
}

// AfterStep decides whether the slide goes on. Sand and obstacles stop the
// ball, a stopped ball on a matching pad is seated, and a magnetic pad of
// its color catches it outright.
func (b *Ball) AfterStep(w *World) {
	d := b.heading
	here := w.TileAt(b.Pos)
	ahead := b.Pos.Step(d)
	sliding := here != Sand && w.IsFree(ahead, b.layer) && w.TileAt(ahead) != Wall

	switch {
	case here.Captures(b.Color):
		b.seat(w)
	case !sliding:
		if here.Seats(b.Color) {
			b.seat(w)
		}
	default:
		b.BeforeStep(w, d)
	}
}

func (b *Ball) seat(w *World) {
	if b.Seated {
		return
	}
	b.Seated = true
	w.ballsLeft[b.Color]--
}

func (b *Ball) OnTouch(w *World, d Dir) {
	b.BeforeStep(w, d)
}

func (b *Ball) Update(w *World) {
	w.progress(b)
}
