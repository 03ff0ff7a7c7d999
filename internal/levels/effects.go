package levels

import (
	"fmt"

	"github.com/vovakirdan/rgballs/internal/engine"
	"github.com/vovakirdan/rgballs/internal/levels/formats"
	"github.com/vovakirdan/rgballs/internal/registry"
)

// EffectFactory validates an event description and returns its effect.
type EffectFactory func(spec formats.EventSpec) (engine.EventFunc, error)

// Effects holds the tile event effects a level file may name.
var Effects = registry.New[EffectFactory]("event effect")

func init() {
	Effects.RegisterTitled("message", "Show a message", messageEffect)
	Effects.RegisterTitled("give", "Give the player an item", giveEffect)
	Effects.RegisterTitled("set_tile", "Change a tile", setTileEffect)
	Effects.RegisterTitled("spawn", "Spawn an entity", spawnEffect)
}

func buildEvent(spec formats.EventSpec) (*engine.Event, error) {
	factory, err := Effects.Get(spec.Effect)
	if err != nil {
		return nil, err
	}
	fn, err := factory(spec)
	if err != nil {
		return nil, fmt.Errorf("%s event at (%d,%d): %w", spec.Effect, spec.X, spec.Y, err)
	}
	return engine.NewEvent(engine.C(spec.X, spec.Y), fn, spec.Times, spec), nil
}

func messageEffect(spec formats.EventSpec) (engine.EventFunc, error) {
	if spec.Text == "" {
		return nil, badValue("message without text")
	}
	text := spec.Text
	return func(w *engine.World, _ *engine.Event) {
		w.ReleaseHeld()
		w.ShowMessage(text)
	}, nil
}

func giveEffect(spec formats.EventSpec) (engine.EventFunc, error) {
	item, err := engine.ParseItem(spec.Item)
	if err != nil {
		return nil, err
	}
	count := spec.Count
	if count == 0 {
		count = 1
	}
	if count < 0 {
		return nil, badValue("negative item count %d", count)
	}
	return func(w *engine.World, _ *engine.Event) {
		w.Player().Inventory.Add(item, count)
	}, nil
}

func setTileEffect(spec formats.EventSpec) (engine.EventFunc, error) {
	if len(spec.Tile) != 1 {
		return nil, badValue("tile must be a single terrain code, got %q", spec.Tile)
	}
	t, err := engine.ParseTerrain(rune(spec.Tile[0]))
	if err != nil {
		return nil, err
	}
	target := engine.C(spec.X, spec.Y)
	if spec.Target != nil {
		target = engine.C(spec.Target.X, spec.Target.Y)
	}
	return func(w *engine.World, _ *engine.Event) {
		if w.Grid().InBounds(target) {
			w.SetTile(target, t)
		}
	}, nil
}

// spawnEffect registers a fresh entity each time the event fires. It is
// skipped while the target slot is taken or the player stands on a
// main-layer target.
func spawnEffect(spec formats.EventSpec) (engine.EventFunc, error) {
	if spec.Spawn == nil {
		return nil, badValue("spawn without entity")
	}
	child := *spec.Spawn
	if _, err := buildEntity(child); err != nil {
		return nil, err
	}
	return func(w *engine.World, _ *engine.Event) {
		e, err := buildEntity(child)
		if err != nil {
			return
		}
		pos := e.Meta().Pos
		layer := e.Meta().Layer()
		if !w.Grid().InBounds(pos) || w.At(layer, pos) != nil {
			return
		}
		if layer == engine.LayerMain && w.PlayerAt(pos) {
			return
		}
		w.Register(e)
	}, nil
}
