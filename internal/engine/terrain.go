package engine

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Terrain is a single-character tile code.
type Terrain byte

const (
	Wall     Terrain = '#'
	Grass    Terrain = '.'
	Water    Terrain = '_'
	Sand     Terrain = '~'
	Lily     Terrain = 'l'
	PadRed   Terrain = 'r'
	PadGreen Terrain = 'g'
	PadBlue  Terrain = 'b'
	PadAny   Terrain = 'u'
	MagRed   Terrain = 'R'
	MagGreen Terrain = 'G'
	MagBlue  Terrain = 'B'
	MagAny   Terrain = 'U'
)

var (
	knownTerrain = setOf(Wall, Grass, Water, Sand, Lily,
		PadRed, PadGreen, PadBlue, PadAny, MagRed, MagGreen, MagBlue, MagAny)
	magneticTerrain = setOf(MagRed, MagGreen, MagBlue, MagAny)
	// the player cannot walk into these
	blockingTerrain = setOf(Wall, Water)
)

func setOf(ts ...Terrain) mapset.Set[Terrain] {
	s := mapset.New[Terrain]()
	for _, t := range ts {
		s.Put(t)
	}
	return s
}

// ParseTerrain validates a terrain code.
func ParseTerrain(r rune) (Terrain, error) {
	if r > 0x7f || !knownTerrain.Has(Terrain(r)) {
		return 0, ConfigError{
			Code:    CodeUnknownTerrain,
			Message: fmt.Sprintf("%q is not a terrain code", r),
		}
	}
	return Terrain(r), nil
}

func (t Terrain) String() string { return string(rune(t)) }

// IsMagnetic reports whether a ball resting here is held in place.
func (t Terrain) IsMagnetic() bool {
	return magneticTerrain.Has(t)
}

// Walkable reports whether the player may enter the tile.
func (t Terrain) Walkable() bool {
	return !blockingTerrain.Has(t)
}

// Seats reports whether a ball of color c counts as placed on this tile.
// Both plain and magnetic pads of the ball's color, and the universal pads,
// qualify.
func (t Terrain) Seats(c Color) bool {
	switch t {
	case PadAny, MagAny:
		return true
	case c.pad(), c.magneticPad():
		return true
	}
	return false
}

// Captures reports whether a ball of color c is stopped on this tile
// regardless of momentum.
func (t Terrain) Captures(c Color) bool {
	return t == MagAny || t == c.magneticPad()
}

// Color is a ball color.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
)

// ColorCount is the number of ball colors.
const ColorCount = 3

// Colors lists the ball colors in counter order.
var Colors = [ColorCount]Color{Red, Green, Blue}

// ParseColor converts a color name into a Color.
func ParseColor(s string) (Color, error) {
	switch s {
	case "red":
		return Red, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	}
	return Red, ConfigError{
		Code:    CodeUnknownColor,
		Message: fmt.Sprintf("%q is not a color", s),
	}
}

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Green:
		return "green"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

func (c Color) pad() Terrain {
	return [...]Terrain{PadRed, PadGreen, PadBlue}[c]
}

func (c Color) magneticPad() Terrain {
	return [...]Terrain{MagRed, MagGreen, MagBlue}[c]
}
