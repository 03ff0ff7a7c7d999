package preview

import (
	"github.com/vovakirdan/rgballs/internal/core"
	"github.com/vovakirdan/rgballs/internal/engine"
)

// GlyphAt returns the topmost glyph of a tile: the overlay layer, then the
// player, the main layer, the ground layer and finally the terrain.
func GlyphAt(w *engine.World, c engine.Coord) Glyph {
	if g, ok := layerGlyph(w, engine.LayerOverlay, c); ok {
		return g
	}
	if w.PlayerAt(c) {
		g, _ := EntityGlyph(w.Player())
		return g
	}
	if g, ok := layerGlyph(w, engine.LayerMain, c); ok {
		return g
	}
	if g, ok := layerGlyph(w, engine.LayerGround, c); ok {
		return g
	}
	return TerrainGlyph(w.TileAt(c))
}

func layerGlyph(w *engine.World, layer int, c engine.Coord) (Glyph, bool) {
	e := w.At(layer, c)
	if e == nil {
		return Glyph{}, false
	}
	return EntityGlyph(e)
}

// Draw paints the part of the world inside view onto s, with the view's
// top-left tile at screen position (x, y). Foreground draw requests of the
// current frame are painted last.
func Draw(s *core.Screen, w *engine.World, view core.Rect, x, y int) {
	for ty := view.Y; ty < view.Bottom(); ty++ {
		for tx := view.X; tx < view.Right(); tx++ {
			g := GlyphAt(w, engine.C(tx, ty))
			s.SetColor(x+tx-view.X, y+ty-view.Y, g.Rune, g.Color)
		}
	}
	for _, d := range w.Foreground() {
		if view.Contains(d.Pos.X, d.Pos.Y) {
			s.SetColor(x+d.Pos.X-view.X, y+d.Pos.Y-view.Y, AlertGlyph.Rune, AlertGlyph.Color)
		}
	}
}

// RenderASCII returns the whole world as uncolored text, one line per row.
func RenderASCII(w *engine.World) string {
	g := w.Grid()
	s := core.NewScreen(g.Width(), g.Height())
	Draw(s, w, core.NewRect(0, 0, g.Width(), g.Height()), 0, 0)
	return s.String()
}
