package engine

import (
	"fmt"
	"math"
)

// Sub-tile geometry. A tile is TileUnits long and the simulation runs at
// FrameRate frames per second, so every stock speed yields a whole number
// of units per frame.
const (
	TileUnits = 3600
	FrameRate = 60

	// MinSpeed keeps a move shorter than a reservation's lifetime.
	MinSpeed = 0.5
)

// Stock speeds in tiles per second.
const (
	BallSpeed       = 16.0
	BoxSpeed        = 16.0 / 3
	PlayerSpeed     = 8.0
	GunSpeed        = 8.0
	SpeedPillBoost  = 2.0
	reservationLife = 150
)

// StepFor converts a speed in tiles per second to units per frame.
func StepFor(tilesPerSecond float64) int {
	return int(math.Round(tilesPerSecond * TileUnits / FrameRate))
}

func checkSpeed(tilesPerSecond float64) error {
	if tilesPerSecond < MinSpeed || math.IsNaN(tilesPerSecond) || math.IsInf(tilesPerSecond, 0) {
		return ConfigError{
			Code:    CodeBadValue,
			Message: fmt.Sprintf("speed %.2f below minimum %.2f tiles/s", tilesPerSecond, MinSpeed),
		}
	}
	return nil
}

// Mover is the motion state shared by moving entities. While idle the
// progress is zero; while committed it grows by the step size each frame
// and stays below TileUnits.
type Mover struct {
	Base
	heading  Dir
	moving   bool
	progress int
	step     int
}

func newMover(pos Coord, tilesPerSecond float64) Mover {
	return Mover{
		Base: Base{Pos: pos, layer: LayerMain},
		step: StepFor(tilesPerSecond),
	}
}

// Moving reports whether a move is committed.
func (m *Mover) Moving() bool { return m.moving }

// Heading returns the direction of the current or last move.
func (m *Mover) Heading() Dir { return m.heading }

// Progress returns the distance covered toward the destination, in units.
func (m *Mover) Progress() int { return m.progress }

// StepSize returns the units covered per frame.
func (m *Mover) StepSize() int { return m.step }

// ModifySpeed adds delta tiles per second to the speed.
func (m *Mover) ModifySpeed(delta float64) {
	m.step += StepFor(delta)
}

// Offset returns the signed displacement from Pos along the heading.
func (m *Mover) Offset() (dx, dy int) {
	if !m.moving {
		return 0, 0
	}
	ux, uy := m.heading.Delta()
	return ux * m.progress, uy * m.progress
}

func (m *Mover) motion() *Mover { return m }

func (m *Mover) start(d Dir) {
	m.heading = d
	m.moving = true
	m.progress = 0
}

func (m *Mover) stop() {
	m.moving = false
	m.progress = 0
}

// advance moves one frame and reports arrival. On arrival the mover is
// idle again with zero progress.
func (m *Mover) advance() bool {
	if !m.moving {
		return false
	}
	m.progress += m.step
	if m.progress < TileUnits {
		return false
	}
	m.stop()
	return true
}

type mover interface {
	Entity
	motion() *Mover
}
