package engine

import (
	"fmt"
	"strings"
)

// Grid is the terrain map. It is always surrounded by a ring of walls, so
// every coordinate an entity can reach is in bounds.
type Grid struct {
	width  int
	height int
	cells  []Terrain
}

// NewGrid builds a grid from level rows, wrapping them in a wall ring.
// All rows must have the same width.
func NewGrid(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ConfigError{Code: CodeBadGeometry, Message: "level has no tiles"}
	}

	inner := len(rows[0])
	g := &Grid{
		width:  inner + 2,
		height: len(rows) + 2,
	}
	g.cells = make([]Terrain, g.width*g.height)
	for i := range g.cells {
		g.cells[i] = Wall
	}

	for y, row := range rows {
		if len(row) != inner {
			return nil, ConfigError{
				Code:    CodeBadGeometry,
				Message: fmt.Sprintf("row %d has width %d, expected %d", y, len(row), inner),
			}
		}
		for x, r := range row {
			t, err := ParseTerrain(r)
			if err != nil {
				return nil, fmt.Errorf("row %d col %d: %w", y, x, err)
			}
			g.cells[(y+1)*g.width+x+1] = t
		}
	}

	return g, nil
}

// Width returns the bordered width.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the bordered height.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether c lies inside the bordered rectangle.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// At returns the terrain at c. It panics outside the map.
func (g *Grid) At(c Coord) Terrain {
	if !g.InBounds(c) {
		invariant("tile %s outside %dx%d map", c, g.width, g.height)
	}
	return g.cells[c.Y*g.width+c.X]
}

// Set replaces the terrain at c. It panics outside the map.
func (g *Grid) Set(c Coord, t Terrain) {
	if !g.InBounds(c) {
		invariant("tile %s outside %dx%d map", c, g.width, g.height)
	}
	g.cells[c.Y*g.width+c.X] = t
}

// Rows returns the bordered map as strings, top to bottom.
func (g *Grid) Rows() []string {
	rows := make([]string, g.height)
	var sb strings.Builder
	for y := range g.height {
		sb.Reset()
		for x := range g.width {
			sb.WriteByte(byte(g.cells[y*g.width+x]))
		}
		rows[y] = sb.String()
	}
	return rows
}
