package preview

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"math"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/rgballs/internal/core"
	"github.com/vovakirdan/rgballs/internal/engine"
)

// DefaultTileSize is the edge of one tile in pixels.
const DefaultTileSize = 32

var (
	background = color.RGBA{12, 12, 28, 255}
	gridLine   = color.RGBA{30, 30, 45, 255}
)

// rgba converts a screen color for image export.
func rgba(c core.Color, alpha uint8) color.NRGBA {
	r, g, b := c.RGB()
	return color.NRGBA{r, g, b, alpha}
}

// Image renders the world to an image with tile pixels per tile. Entities
// in mid-move are drawn at their sub-tile offset.
func Image(w *engine.World, tile int) image.Image {
	if tile <= 0 {
		tile = DefaultTileSize
	}
	g := w.Grid()
	dc := gg.NewContext(g.Width()*tile, g.Height()*tile)
	t := float64(tile)

	dc.SetColor(background)
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	dc.Fill()

	for y := range g.Height() {
		for x := range g.Width() {
			drawTile(dc, w.TileAt(engine.C(x, y)), float64(x)*t, float64(y)*t, t)
		}
	}

	dc.SetColor(gridLine)
	dc.SetLineWidth(1)
	for x := 0; x <= g.Width(); x++ {
		dc.DrawLine(float64(x)*t, 0, float64(x)*t, float64(dc.Height()))
		dc.Stroke()
	}
	for y := 0; y <= g.Height(); y++ {
		dc.DrawLine(0, float64(y)*t, float64(dc.Width()), float64(y)*t)
		dc.Stroke()
	}

	for _, e := range w.Entities(engine.LayerGround) {
		drawEntity(dc, e, t)
	}
	for _, e := range w.Entities(engine.LayerMain) {
		drawEntity(dc, e, t)
	}
	if p := w.Player(); p != nil {
		drawEntity(dc, p, t)
	}
	for _, e := range w.Entities(engine.LayerOverlay) {
		drawEntity(dc, e, t)
	}
	for _, d := range w.Foreground() {
		cx, cy := (float64(d.Pos.X)+0.5)*t, (float64(d.Pos.Y)+0.5)*t
		dc.SetColor(rgba(AlertGlyph.Color, 255))
		dc.SetLineWidth(t / 8)
		dc.DrawCircle(cx, cy, t*0.45)
		dc.Stroke()
	}

	return dc.Image()
}

// EncodePNG writes the rendered world as PNG.
func EncodePNG(out io.Writer, w *engine.World, tile int) error {
	dc := gg.NewContextForImage(Image(w, tile))
	if err := dc.EncodePNG(out); err != nil {
		return fmt.Errorf("preview: cannot encode png: %w", err)
	}
	return nil
}

// SavePNG renders the world into a PNG file.
func SavePNG(path string, w *engine.World, tile int) error {
	dc := gg.NewContextForImage(Image(w, tile))
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("preview: cannot save %s: %w", path, err)
	}
	return nil
}

func drawTile(dc *gg.Context, tr engine.Terrain, x, y, t float64) {
	glyph := TerrainGlyph(tr)
	base := glyph.Color
	switch tr {
	case engine.PadRed, engine.PadGreen, engine.PadBlue, engine.PadAny,
		engine.MagRed, engine.MagGreen, engine.MagBlue, engine.MagAny:
		base = core.ColorGreen
	}

	dc.SetColor(rgba(base, 255))
	dc.DrawRectangle(x, y, t, t)
	dc.Fill()

	switch {
	case tr.IsMagnetic():
		dc.SetColor(rgba(glyph.Color, 255))
		dc.SetLineWidth(t / 10)
		dc.DrawRectangle(x+t*0.15, y+t*0.15, t*0.7, t*0.7)
		dc.Stroke()
		dc.DrawCircle(x+t/2, y+t/2, t*0.1)
		dc.Fill()
	case base != glyph.Color:
		dc.SetColor(rgba(glyph.Color, 255))
		dc.DrawRectangle(x+t*0.2, y+t*0.2, t*0.6, t*0.6)
		dc.Fill()
	case tr == engine.Lily:
		dc.SetColor(rgba(core.ColorBlue, 255))
		dc.DrawRectangle(x, y, t, t)
		dc.Fill()
		dc.SetColor(rgba(glyph.Color, 255))
		dc.DrawCircle(x+t/2, y+t/2, t*0.4)
		dc.Fill()
	}
}

func drawEntity(dc *gg.Context, e engine.Entity, t float64) {
	glyph, ok := EntityGlyph(e)
	if !ok {
		return
	}
	pos := e.Meta().Pos
	ox, oy := e.Offset()
	cx := (float64(pos.X) + 0.5 + float64(ox)/engine.TileUnits) * t
	cy := (float64(pos.Y) + 0.5 + float64(oy)/engine.TileUnits) * t
	fill := rgba(glyph.Color, 255)

	switch v := e.(type) {
	case *engine.Player:
		dc.SetColor(fill)
		dc.DrawCircle(cx, cy, t*0.35)
		dc.Fill()
		dx, dy := v.Facing.Delta()
		dc.SetColor(background)
		dc.DrawCircle(cx+float64(dx)*t*0.2, cy+float64(dy)*t*0.2, t*0.08)
		dc.Fill()
	case *engine.Ball:
		dc.SetColor(fill)
		dc.DrawCircle(cx, cy, t*0.4)
		dc.Fill()
		if v.Seated {
			dc.SetColor(rgba(core.ColorBrightWhite, 255))
			dc.SetLineWidth(t / 16)
			dc.DrawCircle(cx, cy, t*0.4)
			dc.Stroke()
		}
	case *engine.Box:
		if v.Drowning() {
			fill.A = 128
		}
		dc.SetColor(fill)
		dc.DrawRectangle(cx-t*0.4, cy-t*0.4, t*0.8, t*0.8)
		dc.Fill()
	case *engine.Diamond:
		dc.SetColor(fill)
		dc.DrawRegularPolygon(4, cx, cy, t*0.35, 0)
		dc.Fill()
	case *engine.Portal, *engine.HellEntrance:
		dc.SetColor(fill)
		dc.SetLineWidth(t / 8)
		dc.DrawCircle(cx, cy, t*0.35)
		dc.Stroke()
	case *engine.Cannon:
		dc.SetColor(fill)
		dc.DrawRectangle(cx-t*0.3, cy-t*0.3, t*0.6, t*0.6)
		dc.Fill()
		dx, dy := v.Facing.Delta()
		dc.SetLineWidth(t / 6)
		dc.DrawLine(cx, cy, cx+float64(dx)*t*0.5, cy+float64(dy)*t*0.5)
		dc.Stroke()
	case *engine.Cannonball:
		dc.SetColor(fill)
		dc.DrawCircle(cx, cy, t*0.15)
		dc.Fill()
	case *engine.LittleDevil:
		dc.SetColor(fill)
		dc.DrawRegularPolygon(3, cx, cy, t*0.4, -math.Pi/2)
		dc.Fill()
	case *engine.Ghost:
		fill.A = 160
		dc.SetColor(fill)
		dc.DrawCircle(cx, cy, t*0.4)
		dc.Fill()
	default:
		dc.SetColor(fill)
		dc.DrawRectangle(cx-t*0.35, cy-t*0.25, t*0.7, t*0.5)
		dc.Fill()
	}
}
