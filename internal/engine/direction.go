// Package engine is the RGBalls simulation core: a three-layer tile world,
// the two-phase movement protocol and the closed set of entity kinds that
// live in it. It has no UI dependencies and is deterministic for a given
// stream of input frames.
package engine

import "fmt"

// Dir represents one of the four grid directions.
type Dir uint8

const (
	DirUp Dir = iota
	DirRight
	DirDown
	DirLeft
)

// String returns the lowercase name of the direction.
func (d Dir) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// ParseDir converts a direction name into a Dir.
func ParseDir(s string) (Dir, error) {
	switch s {
	case "up":
		return DirUp, nil
	case "right":
		return DirRight, nil
	case "down":
		return DirDown, nil
	case "left":
		return DirLeft, nil
	}
	return DirUp, ConfigError{
		Code:    CodeUnknownDirection,
		Message: fmt.Sprintf("%q is not a direction", s),
	}
}

// Delta returns the (dx, dy) offset for moving one step in this direction.
// Up decreases Y, Down increases Y (screen coordinates).
func (d Dir) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// Opposite returns the opposite direction.
func (d Dir) Opposite() Dir {
	return (d + 2) % 4
}

// RotateLeft turns 90 degrees counter-clockwise.
func (d Dir) RotateLeft() Dir {
	return (d + 3) % 4
}

// RotateRight turns 90 degrees clockwise.
func (d Dir) RotateRight() Dir {
	return (d + 1) % 4
}

// inputPriority is the order in which held arrows are honoured.
var inputPriority = [...]Dir{DirUp, DirDown, DirLeft, DirRight}
