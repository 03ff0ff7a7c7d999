// Package preview draws a world without running it: into a colored text
// screen for the terminal front end, as plain text for screenshots and
// golden tests, and as a PNG image for offline level previews.
package preview

import (
	"github.com/vovakirdan/rgballs/internal/core"
	"github.com/vovakirdan/rgballs/internal/engine"
)

// Glyph is one drawn cell.
type Glyph struct {
	Rune  rune
	Color core.Color
}

var terrainGlyphs = map[engine.Terrain]Glyph{
	engine.Wall:     {'#', core.ColorGray},
	engine.Grass:    {'.', core.ColorGreen},
	engine.Water:    {'~', core.ColorBlue},
	engine.Sand:     {':', core.ColorYellow},
	engine.Lily:     {'"', core.ColorBrightGreen},
	engine.PadRed:   {'r', core.ColorBrightRed},
	engine.PadGreen: {'g', core.ColorBrightGreen},
	engine.PadBlue:  {'b', core.ColorBrightBlue},
	engine.PadAny:   {'u', core.ColorWhite},
	engine.MagRed:   {'R', core.ColorBrightRed},
	engine.MagGreen: {'G', core.ColorBrightGreen},
	engine.MagBlue:  {'B', core.ColorBrightBlue},
	engine.MagAny:   {'U', core.ColorWhite},
}

// ballColors maps ball colors to screen colors.
var ballColors = [engine.ColorCount]core.Color{
	engine.Red:   core.ColorBrightRed,
	engine.Green: core.ColorBrightGreen,
	engine.Blue:  core.ColorBrightBlue,
}

var cannonRunes = [...]rune{
	engine.DirUp:    '^',
	engine.DirRight: '>',
	engine.DirDown:  'v',
	engine.DirLeft:  '<',
}

// AlertGlyph marks a blocked portal destination.
var AlertGlyph = Glyph{'!', core.ColorBrightYellow}

// TerrainGlyph returns how a tile is drawn.
func TerrainGlyph(t engine.Terrain) Glyph {
	if g, ok := terrainGlyphs[t]; ok {
		return g
	}
	return Glyph{'?', core.ColorDefault}
}

// EntityGlyph returns how an entity is drawn. Reservations are invisible
// and report false.
func EntityGlyph(e engine.Entity) (Glyph, bool) {
	switch v := e.(type) {
	case *engine.Player:
		if v.Dead {
			return Glyph{'X', core.ColorBrightRed}, true
		}
		return Glyph{'@', core.ColorBrightWhite}, true
	case *engine.Ball:
		if v.Seated {
			return Glyph{'O', ballColors[v.Color]}, true
		}
		return Glyph{'o', ballColors[v.Color]}, true
	case *engine.Box:
		if v.Drowning() {
			return Glyph{'-', core.ColorBrown}, true
		}
		return Glyph{'=', core.ColorBrown}, true
	case *engine.Diamond:
		return Glyph{'*', core.ColorBrightCyan}, true
	case *engine.Envelope:
		return Glyph{'e', core.ColorWhite}, true
	case *engine.Portal:
		if v.Blocked() {
			return Glyph{'0', core.ColorRed}, true
		}
		return Glyph{'0', core.ColorBrightMagenta}, true
	case *engine.Cannon:
		return Glyph{cannonRunes[v.Facing], core.ColorGray}, true
	case *engine.Cannonball:
		return Glyph{'•', core.ColorBrightWhite}, true
	case *engine.Door:
		return Glyph{'+', core.ColorOrange}, true
	case *engine.LittleDevil:
		return Glyph{'d', core.ColorBrightRed}, true
	case *engine.Ghost:
		return Glyph{'&', core.ColorBrightWhite}, true
	case *engine.HellEntrance:
		return Glyph{'%', core.ColorRed}, true
	}
	return Glyph{}, false
}
