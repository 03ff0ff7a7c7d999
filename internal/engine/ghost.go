package engine

// Ghost patrols a closed loop of waypoints on the overlay layer, passing
// over everything on the main layer. It kills the player by sharing a tile.
type Ghost struct {
	Mover
	Path   []Coord
	target int
}

// NewGhost creates a ghost at pos. The start position becomes the first
// waypoint of the loop.
func NewGhost(pos Coord, speed float64, path []Coord) (*Ghost, error) {
	if err := checkSpeed(speed); err != nil {
		return nil, err
	}
	g := &Ghost{
		Mover: newMover(pos, speed),
		Path:  append([]Coord{pos}, path...),
	}
	g.layer = LayerOverlay
	return g, nil
}

func (g *Ghost) Kind() Kind { return KindGhost }

func (g *Ghost) Sprite() string { return "ghost" }

// Target returns the waypoint the ghost is heading for.
func (g *Ghost) Target() Coord { return g.Path[g.target] }

func (g *Ghost) Update(w *World) {
	if !g.moving {
		if g.Pos == g.Path[g.target] {
			g.target = (g.target + 1) % len(g.Path)
		}
		g.aim(w)
	}
	w.progress(g)
}

// aim commits one tile toward the current waypoint, vertical axis first.
// Another ghost in the way makes it wait.
func (g *Ghost) aim(w *World) {
	goal := g.Path[g.target]
	var d Dir
	switch {
	case g.Pos.Y > goal.Y:
		d = DirUp
	case g.Pos.Y < goal.Y:
		d = DirDown
	case g.Pos.X > goal.X:
		d = DirLeft
	case g.Pos.X < goal.X:
		d = DirRight
	default:
		return
	}
	if w.At(g.layer, g.Pos.Step(d)) != nil {
		return
	}
	w.commit(g, d)
}

func (g *Ghost) AfterStep(w *World) {
	below := w.Resolve(w.At(LayerMain, g.Pos))
	if w.PlayerAt(g.Pos) || (below != nil && below.Kind() == KindPlayer) {
		w.Player().OnHit(w, g.heading.Opposite())
		return
	}
	if g.Pos != g.Path[g.target] {
		g.aim(w)
	}
}
