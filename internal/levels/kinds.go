package levels

import (
	"fmt"

	"github.com/vovakirdan/rgballs/internal/engine"
	"github.com/vovakirdan/rgballs/internal/levels/formats"
	"github.com/vovakirdan/rgballs/internal/registry"
)

// Builder constructs an entity of one kind from its level description.
type Builder func(spec formats.EntitySpec) (engine.Entity, error)

// Kinds holds the entity kinds a level file may name.
var Kinds = registry.New[Builder]("entity kind")

// Default parameters for kinds whose fields are optional.
const (
	defaultCannonDelay  = 60
	defaultDevilHealth  = 0
	defaultSpawnHealth  = 1
	defaultHellInterval = 180
)

func init() {
	Kinds.RegisterTitled("ball", "Ball", buildBall)
	Kinds.RegisterTitled("box", "Box", buildBox)
	Kinds.RegisterTitled("diamond", "Diamond", buildDiamond)
	Kinds.RegisterTitled("envelope", "Envelope", buildEnvelope)
	Kinds.RegisterTitled("portal", "Portal", buildPortal)
	Kinds.RegisterTitled("cannon", "Cannon", buildCannon)
	Kinds.RegisterTitled("door", "Door", buildDoor)
	Kinds.RegisterTitled("little_devil", "Little Devil", buildLittleDevil)
	Kinds.RegisterTitled("ghost", "Ghost", buildGhost)
	Kinds.RegisterTitled("hell_entrance", "Hell Entrance", buildHellEntrance)
}

// buildEntity looks up the kind and builds the entity.
func buildEntity(spec formats.EntitySpec) (engine.Entity, error) {
	build, err := Kinds.Get(spec.Kind)
	if err != nil {
		return nil, err
	}
	e, err := build(spec)
	if err != nil {
		return nil, fmt.Errorf("%s at (%d,%d): %w", spec.Kind, spec.X, spec.Y, err)
	}
	return e, nil
}

func at(spec formats.EntitySpec) engine.Coord {
	return engine.C(spec.X, spec.Y)
}

func badValue(format string, args ...any) error {
	return engine.ConfigError{Code: engine.CodeBadValue, Message: fmt.Sprintf(format, args...)}
}

func buildBall(spec formats.EntitySpec) (engine.Entity, error) {
	c, err := engine.ParseColor(spec.Color)
	if err != nil {
		return nil, err
	}
	return engine.NewBall(at(spec), c), nil
}

func buildBox(spec formats.EntitySpec) (engine.Entity, error) {
	return engine.NewBox(at(spec)), nil
}

func buildDiamond(spec formats.EntitySpec) (engine.Entity, error) {
	return engine.NewDiamond(at(spec)), nil
}

func buildEnvelope(spec formats.EntitySpec) (engine.Entity, error) {
	if spec.Text == "" {
		return nil, badValue("envelope without text")
	}
	return engine.NewEnvelope(at(spec), spec.Text), nil
}

func buildPortal(spec formats.EntitySpec) (engine.Entity, error) {
	if spec.Dest == nil {
		return nil, badValue("portal without dest")
	}
	return engine.NewPortal(at(spec), engine.C(spec.Dest.X, spec.Dest.Y)), nil
}

func buildCannon(spec formats.EntitySpec) (engine.Entity, error) {
	facing, err := engine.ParseDir(spec.Facing)
	if err != nil {
		return nil, err
	}

	delays := spec.Delays
	if len(delays) == 0 {
		delays = []int{defaultCannonDelay}
	}
	for _, d := range delays {
		if d < 1 {
			return nil, badValue("cannon delay %d must be positive", d)
		}
	}

	speeds := spec.Speeds
	if len(speeds) == 0 {
		speeds = []float64{engine.GunSpeed}
	}
	for _, s := range speeds {
		if !(s >= engine.MinSpeed) {
			return nil, badValue("cannonball speed %.2f below minimum %.2f tiles/s", s, engine.MinSpeed)
		}
	}

	return engine.NewCannon(at(spec), facing, cycle(delays), cycle(speeds)), nil
}

// cycle turns a list into a schedule that repeats it.
func cycle[T any](values []T) engine.Schedule[T] {
	return func(shot int) T {
		return values[shot%len(values)]
	}
}

func buildDoor(spec formats.EntitySpec) (engine.Entity, error) {
	if spec.Open == nil && spec.Unlock == nil {
		return nil, badValue("door that never opens")
	}
	params := make(map[string]string)
	onUpdate, err := condition(spec.Open, params)
	if err != nil {
		return nil, err
	}
	onTouch, err := condition(spec.Unlock, params)
	if err != nil {
		return nil, err
	}
	return engine.NewDoor(at(spec), onUpdate, onTouch, params), nil
}

func buildLittleDevil(spec formats.EntitySpec) (engine.Entity, error) {
	health := defaultDevilHealth
	if spec.Health != nil {
		health = *spec.Health
	}
	if health < 0 {
		return nil, badValue("negative health %d", health)
	}
	return engine.NewLittleDevil(at(spec), spec.Speed, health)
}

func buildGhost(spec formats.EntitySpec) (engine.Entity, error) {
	path := make([]engine.Coord, len(spec.Path))
	for i, p := range spec.Path {
		path[i] = engine.C(p.X, p.Y)
	}
	return engine.NewGhost(at(spec), spec.Speed, path)
}

func buildHellEntrance(spec formats.EntitySpec) (engine.Entity, error) {
	health := defaultSpawnHealth
	if spec.Health != nil {
		health = *spec.Health
	}
	if health < 0 {
		return nil, badValue("negative health %d", health)
	}
	freq := spec.Frequency
	if freq == 0 {
		freq = defaultHellInterval
	}
	return engine.NewHellEntrance(at(spec), freq, spec.Speed, health)
}
