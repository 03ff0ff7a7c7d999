package levels

import (
	"fmt"
	"maps"
	"strconv"

	"github.com/vovakirdan/rgballs/internal/engine"
	"github.com/vovakirdan/rgballs/internal/levels/formats"
	"github.com/vovakirdan/rgballs/internal/registry"
)

// ConditionFactory validates condition parameters and returns the check.
type ConditionFactory func(params map[string]string) (engine.Condition, error)

// Conditions holds the door conditions a level file may name.
var Conditions = registry.New[ConditionFactory]("door condition")

func init() {
	Conditions.RegisterTitled("always", "Always open", func(map[string]string) (engine.Condition, error) {
		return func(*engine.World, *engine.Door) bool { return true }, nil
	})
	Conditions.RegisterTitled("all_balls_seated", "Every ball is seated", func(map[string]string) (engine.Condition, error) {
		return func(w *engine.World, _ *engine.Door) bool { return w.AllSeated() }, nil
	})
	Conditions.RegisterTitled("diamonds_collected", "Every diamond is collected", func(map[string]string) (engine.Condition, error) {
		return func(w *engine.World, _ *engine.Door) bool { return w.DiamondsLeft() == 0 }, nil
	})
	Conditions.RegisterTitled("color_seated", "Every ball of a color is seated", colorSeated)
	Conditions.RegisterTitled("holds_item", "The player carries an item", holdsItem)
	Conditions.RegisterTitled("steps_at_least", "The player walked enough steps", stepsAtLeast)
}

// condition builds the named condition and records its parameters on the
// door. A nil spec yields a nil condition.
func condition(spec *formats.ConditionSpec, doorParams map[string]string) (engine.Condition, error) {
	if spec == nil {
		return nil, nil
	}
	factory, err := Conditions.Get(spec.When)
	if err != nil {
		return nil, err
	}
	cond, err := factory(spec.Params)
	if err != nil {
		return nil, fmt.Errorf("condition %s: %w", spec.When, err)
	}
	maps.Copy(doorParams, spec.Params)
	return cond, nil
}

func colorSeated(params map[string]string) (engine.Condition, error) {
	c, err := engine.ParseColor(params["color"])
	if err != nil {
		return nil, err
	}
	return func(w *engine.World, _ *engine.Door) bool {
		return w.BallsLeft()[c] == 0
	}, nil
}

func holdsItem(params map[string]string) (engine.Condition, error) {
	item, err := engine.ParseItem(params["item"])
	if err != nil {
		return nil, err
	}
	count, err := positive(params, "count", 1)
	if err != nil {
		return nil, err
	}
	name := item.Name()
	return func(w *engine.World, _ *engine.Door) bool {
		return w.Player().Inventory.Count(name) >= count
	}, nil
}

func stepsAtLeast(params map[string]string) (engine.Condition, error) {
	n, err := positive(params, "count", 1)
	if err != nil {
		return nil, err
	}
	return func(w *engine.World, _ *engine.Door) bool {
		return w.Player().Steps >= n
	}, nil
}

// positive reads an optional positive integer parameter.
func positive(params map[string]string, key string, def int) (int, error) {
	v, ok := params[key]
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, badValue("%s must be a positive integer, got %q", key, v)
	}
	return n, nil
}
