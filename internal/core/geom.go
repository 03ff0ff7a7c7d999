// Package core provides the platform-neutral types shared by the engine and
// the front ends: input frames, screen buffers, and viewport geometry.
// It has no dependency on Bubble Tea so the simulation stays testable.
package core

// Rect represents an axis-aligned rectangle in cell coordinates.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport returns a w×h window centered on (cx, cy) and clamped to a
// world of worldW×worldH cells. A world smaller than the window is
// anchored at the origin.
func Viewport(cx, cy, w, h, worldW, worldH int) Rect {
	x := Clamp(cx-w/2, 0, max(0, worldW-w))
	y := Clamp(cy-h/2, 0, max(0, worldH-h))
	return NewRect(x, y, min(w, worldW), min(h, worldH))
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
