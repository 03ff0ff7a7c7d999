package formats

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

const sample = `
id: 3
name: Corner Pocket
steps: 12
tiles:
  - "..r"
  - "..."
player: {x: 1, y: 1, facing: right}
inventory:
  - {item: gun, count: 2}
entities:
  - {kind: ball, x: 2, y: 2, color: red}
  - kind: door
    x: 3
    y: 2
    open: {when: color_seated, params: {color: red}}
events:
  - {x: 1, y: 2, effect: message, text: hello}
`

func TestParse(t *testing.T) {
	lf, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	if lf.ID != 3 || lf.Name != "Corner Pocket" || lf.Steps != 12 {
		t.Errorf("header = %d %q %d", lf.ID, lf.Name, lf.Steps)
	}
	if len(lf.Tiles) != 2 || lf.Tiles[0] != "..r" {
		t.Errorf("Tiles = %q", lf.Tiles)
	}
	if lf.Player != (PlayerSpec{X: 1, Y: 1, Facing: "right"}) {
		t.Errorf("Player = %+v", lf.Player)
	}
	if len(lf.Inventory) != 1 || lf.Inventory[0].Count != 2 {
		t.Errorf("Inventory = %+v", lf.Inventory)
	}
	if len(lf.Entities) != 2 {
		t.Fatalf("Entities = %+v", lf.Entities)
	}
	door := lf.Entities[1]
	if door.Open == nil || door.Open.When != "color_seated" || door.Open.Params["color"] != "red" {
		t.Errorf("door condition = %+v", door.Open)
	}
	if len(lf.Events) != 1 || lf.Events[0].Text != "hello" || lf.Events[0].Times != 0 {
		t.Errorf("Events = %+v", lf.Events)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		substr string
	}{
		{"empty document", "", "no tiles"},
		{"no tiles", "name: x\nsteps: 3\n", "no tiles"},
		{"unknown key", "tiles: [\".\"]\ncolour: red\n", "cannot parse"},
		{"negative budget", "tiles: [\".\"]\nsteps: -1\n", "negative step budget"},
		{"kindless entity", "tiles: [\".\"]\nentities: [{x: 1, y: 1}]\n", "no kind"},
		{"effectless event", "tiles: [\".\"]\nevents: [{x: 1, y: 1}]\n", "no effect"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.input))
			if err == nil || !strings.Contains(err.Error(), tc.substr) {
				t.Errorf("Parse() error = %v, expected %q", err, tc.substr)
			}
		})
	}

	if _, err := Parse(nil); !errors.Is(err, ErrEmptyLevel) {
		t.Errorf("Parse(nil) = %v, expected ErrEmptyLevel", err)
	}
}

func TestEncodeDecodesBack(t *testing.T) {
	lf, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(&buf, lf); err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	again, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode() of encoded level failed: %v\n%s", err, buf.String())
	}
	if again.Name != lf.Name || len(again.Entities) != len(lf.Entities) {
		t.Errorf("re-decoded level differs: %+v", again)
	}
}
