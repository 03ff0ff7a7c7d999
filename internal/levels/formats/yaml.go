// Package formats defines the on-disk level schema and its YAML codec.
package formats

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Point is a bordered grid coordinate; the first inner cell is (1, 1).
type Point struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// LevelFile is the decoded form of one NNNN.yaml file.
type LevelFile struct {
	ID        int          `yaml:"id"`
	Name      string       `yaml:"name"`
	Steps     int          `yaml:"steps"`
	Tiles     []string     `yaml:"tiles"`
	Player    PlayerSpec   `yaml:"player"`
	Inventory []ItemSpec   `yaml:"inventory,omitempty"`
	Entities  []EntitySpec `yaml:"entities,omitempty"`
	Events    []EventSpec  `yaml:"events,omitempty"`
}

// PlayerSpec places the player.
type PlayerSpec struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Facing string `yaml:"facing,omitempty"`
}

// ItemSpec is a stack in the starting inventory.
type ItemSpec struct {
	Item  string `yaml:"item"`
	Count int    `yaml:"count"`
}

// EntitySpec describes one entity. Only the fields its kind uses are read.
type EntitySpec struct {
	Kind string `yaml:"kind"`
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`

	Color     string         `yaml:"color,omitempty"`     // ball
	Text      string         `yaml:"text,omitempty"`      // envelope
	Dest      *Point         `yaml:"dest,omitempty"`      // portal
	Facing    string         `yaml:"facing,omitempty"`    // cannon
	Delays    []int          `yaml:"delays,omitempty"`    // cannon, cycled per shot
	Speeds    []float64      `yaml:"speeds,omitempty"`    // cannon, cycled per shot
	Speed     float64        `yaml:"speed,omitempty"`     // little_devil, ghost, hell_entrance
	Health    *int           `yaml:"health,omitempty"`    // little_devil, hell_entrance
	Frequency int            `yaml:"frequency,omitempty"` // hell_entrance
	Path      []Point        `yaml:"path,omitempty"`      // ghost
	Open      *ConditionSpec `yaml:"open,omitempty"`      // door, checked every frame
	Unlock    *ConditionSpec `yaml:"unlock,omitempty"`    // door, checked on touch
}

// ConditionSpec names a door condition and its parameters.
type ConditionSpec struct {
	When   string            `yaml:"when"`
	Params map[string]string `yaml:"params,omitempty"`
}

// EventSpec binds an effect to a tile.
type EventSpec struct {
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
	Effect string `yaml:"effect"`
	Times  int    `yaml:"times,omitempty"` // 0 once, negative unlimited

	Text   string      `yaml:"text,omitempty"`   // message
	Item   string      `yaml:"item,omitempty"`   // give
	Count  int         `yaml:"count,omitempty"`  // give
	Tile   string      `yaml:"tile,omitempty"`   // set_tile
	Target *Point      `yaml:"target,omitempty"` // set_tile, defaults to the event tile
	Spawn  *EntitySpec `yaml:"spawn,omitempty"`  // spawn
}

// ErrEmptyLevel is returned for a document without tiles.
var ErrEmptyLevel = errors.New("formats: level has no tiles")

// Decode reads one level document. Unknown keys are rejected so typos in
// hand-written levels surface early.
func Decode(r io.Reader) (*LevelFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var lf LevelFile
	if err := dec.Decode(&lf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyLevel
		}
		return nil, fmt.Errorf("formats: cannot parse level: %w", err)
	}
	if err := lf.check(); err != nil {
		return nil, err
	}
	return &lf, nil
}

// Parse decodes a level from bytes.
func Parse(data []byte) (*LevelFile, error) {
	return Decode(bytes.NewReader(data))
}

// Encode writes a level document.
func Encode(w io.Writer, lf *LevelFile) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(lf); err != nil {
		return fmt.Errorf("formats: cannot encode level: %w", err)
	}
	return enc.Close()
}

// check validates the shape of the document. Codes, kinds and
// coordinates are validated when the level is built.
func (lf *LevelFile) check() error {
	if len(lf.Tiles) == 0 {
		return ErrEmptyLevel
	}
	if lf.Steps < 0 {
		return fmt.Errorf("formats: negative step budget %d", lf.Steps)
	}
	for i, e := range lf.Entities {
		if e.Kind == "" {
			return fmt.Errorf("formats: entity %d has no kind", i)
		}
	}
	for i, ev := range lf.Events {
		if ev.Effect == "" {
			return fmt.Errorf("formats: event %d has no effect", i)
		}
	}
	return nil
}
