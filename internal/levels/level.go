package levels

import (
	"fmt"

	"github.com/vovakirdan/rgballs/internal/engine"
	"github.com/vovakirdan/rgballs/internal/levels/formats"
)

// Level is a parsed level file. Build creates a fresh world from it for
// every attempt.
type Level struct {
	Index int
	File  *formats.LevelFile
}

// Name returns the display name, falling back to the index.
func (l *Level) Name() string {
	if l.File.Name != "" {
		return l.File.Name
	}
	return fmt.Sprintf("Level %d", l.Index+1)
}

// Budget returns the step budget for the third star.
func (l *Level) Budget() int {
	return l.File.Steps
}

// Build constructs the world: terrain, then the player with its starting
// inventory, then entities in file order, then tile events. Any
// configuration error aborts the build.
func (l *Level) Build(opts ...engine.Option) (*engine.World, error) {
	lf := l.File
	g, err := engine.NewGrid(lf.Tiles)
	if err != nil {
		return nil, l.wrap(err)
	}
	w := engine.NewWorld(g, opts...)

	start := engine.C(lf.Player.X, lf.Player.Y)
	if err := placeable(g, start); err != nil {
		return nil, l.wrap(fmt.Errorf("player: %w", err))
	}
	if !g.At(start).Walkable() {
		return nil, l.wrap(engine.ConfigError{
			Code:    engine.CodeBadGeometry,
			Message: fmt.Sprintf("player starts on %s at %s", g.At(start), start),
		})
	}
	p := engine.NewPlayer(start)
	if lf.Player.Facing != "" {
		if p.Facing, err = engine.ParseDir(lf.Player.Facing); err != nil {
			return nil, l.wrap(fmt.Errorf("player: %w", err))
		}
	}
	for _, stack := range lf.Inventory {
		item, err := engine.ParseItem(stack.Item)
		if err != nil {
			return nil, l.wrap(fmt.Errorf("inventory: %w", err))
		}
		count := stack.Count
		if count == 0 {
			count = 1
		}
		p.Inventory.Add(item, count)
	}
	w.Register(p)

	for _, spec := range lf.Entities {
		e, err := buildEntity(spec)
		if err != nil {
			return nil, l.wrap(err)
		}
		if err := l.place(w, e); err != nil {
			return nil, l.wrap(fmt.Errorf("%s: %w", spec.Kind, err))
		}
	}

	for _, spec := range lf.Events {
		ev, err := buildEvent(spec)
		if err != nil {
			return nil, l.wrap(err)
		}
		if err := placeable(g, ev.Pos); err != nil {
			return nil, l.wrap(fmt.Errorf("%s event: %w", spec.Effect, err))
		}
		w.AddEvent(ev)
	}

	return w, nil
}

// place registers e after the checks Register would otherwise panic on.
func (l *Level) place(w *engine.World, e engine.Entity) error {
	b := e.Meta()
	if err := placeable(w.Grid(), b.Pos); err != nil {
		return err
	}
	for _, c := range destinations(e) {
		if err := placeable(w.Grid(), c); err != nil {
			return err
		}
	}
	if w.At(b.Layer(), b.Pos) != nil {
		return engine.ConfigError{
			Code:    engine.CodeBadGeometry,
			Message: fmt.Sprintf("%s already holds an entity on layer %d", b.Pos, b.Layer()),
		}
	}
	if b.Layer() == engine.LayerMain && w.PlayerAt(b.Pos) {
		return engine.ConfigError{
			Code:    engine.CodeBadGeometry,
			Message: fmt.Sprintf("%s is the player's start", b.Pos),
		}
	}
	w.Register(e)
	return nil
}

// destinations lists the coordinates other than its own position that an
// entity will visit or send the player to.
func destinations(e engine.Entity) []engine.Coord {
	switch e := e.(type) {
	case *engine.Portal:
		return []engine.Coord{e.Dest}
	case *engine.Ghost:
		return e.Path
	}
	return nil
}

func placeable(g *engine.Grid, c engine.Coord) error {
	if !g.InBounds(c) {
		return engine.ConfigError{
			Code:    engine.CodeBadGeometry,
			Message: fmt.Sprintf("%s is outside the %dx%d map", c, g.Width(), g.Height()),
		}
	}
	return nil
}

func (l *Level) wrap(err error) error {
	return fmt.Errorf("level %d (%s): %w", l.Index, l.Name(), err)
}
