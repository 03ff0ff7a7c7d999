package engine

import (
	"fmt"
	"strings"
)

// Item is something the player carries and uses. Use reports whether the
// item took effect and should be consumed.
type Item interface {
	Name() string
	Icon() string
	Use(w *World) bool
}

// ParseItem returns the item with the given display name or slug
// ("Speed Pill" or "speed_pill").
func ParseItem(name string) (Item, error) {
	switch strings.ToLower(strings.ReplaceAll(name, " ", "_")) {
	case "gun":
		return Gun{}, nil
	case "speed_pill":
		return SpeedPill{}, nil
	case "lily_plant":
		return LilyPlant{}, nil
	}
	return nil, ConfigError{
		Code:    CodeUnknownItem,
		Message: fmt.Sprintf("%q is not an item", name),
	}
}

// Gun shoots in the facing direction. An occupant directly ahead is hit
// point-blank; otherwise a cannonball is launched.
type Gun struct{}

func (Gun) Name() string { return "Gun" }
func (Gun) Icon() string { return "cannonball" }

func (Gun) Use(w *World) bool {
	p := w.Player()
	target := p.Pos.Step(p.Facing)
	if w.TileAt(target) == Wall {
		return false
	}
	if occ := w.Resolve(w.At(LayerMain, target)); occ != nil {
		occ.OnHit(w, p.Facing.Opposite())
		return true
	}
	if w.At(LayerMain, target) != nil {
		// orphaned reservation; the shot is wasted
		return true
	}
	w.Register(mustCannonball(target, p.Facing, GunSpeed))
	return true
}

// SpeedPill permanently speeds up the player.
type SpeedPill struct{}

func (SpeedPill) Name() string { return "Speed Pill" }
func (SpeedPill) Icon() string { return "speed_pill" }

func (SpeedPill) Use(w *World) bool {
	w.Player().ModifySpeed(SpeedPillBoost)
	return true
}

// LilyPlant turns an empty water tile ahead into walkable lily.
type LilyPlant struct{}

func (LilyPlant) Name() string { return "Lily Plant" }
func (LilyPlant) Icon() string { return "lily" }

func (LilyPlant) Use(w *World) bool {
	p := w.Player()
	target := p.Pos.Step(p.Facing)
	if w.TileAt(target) != Water || w.At(LayerMain, target) != nil {
		return false
	}
	w.SetTile(target, Lily)
	return true
}
