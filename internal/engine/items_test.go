package engine

import (
	"errors"
	"testing"
)

func TestParseItem(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"gun", "Gun"},
		{"Speed Pill", "Speed Pill"},
		{"speed_pill", "Speed Pill"},
		{"lily_plant", "Lily Plant"},
	}
	for _, tc := range tests {
		item, err := ParseItem(tc.in)
		if err != nil || item.Name() != tc.expected {
			t.Errorf("ParseItem(%q) = %v, %v", tc.in, item, err)
		}
	}

	_, err := ParseItem("sword")
	var cerr ConfigError
	if !errors.As(err, &cerr) || cerr.Code != CodeUnknownItem {
		t.Errorf("ParseItem(sword) error = %v", err)
	}
}

func TestInventoryOrdering(t *testing.T) {
	inv := NewInventory()
	if _, ok := inv.Selected(); ok {
		t.Fatal("empty inventory has a selection")
	}

	inv.Add(SpeedPill{}, 1)
	inv.Add(Gun{}, 2)
	inv.Add(LilyPlant{}, 1)
	inv.Add(Gun{}, 1)
	inv.Add(LilyPlant{}, 0)

	names := []string{}
	for _, e := range inv.Entries() {
		names = append(names, e.Item.Name())
	}
	if len(names) != 3 || names[0] != "Gun" || names[1] != "Lily Plant" || names[2] != "Speed Pill" {
		t.Fatalf("Entries() = %v", names)
	}
	if inv.Count("Gun") != 3 || inv.Count("Lily Plant") != 1 || inv.Count("Bomb") != 0 {
		t.Error("Count() wrong")
	}

	cur, _ := inv.Selected()
	if inv.SelectedIndex() != 2 || cur.Item.Name() != "Speed Pill" {
		t.Errorf("selection should follow the first stack, got %d %s", inv.SelectedIndex(), cur.Item.Name())
	}
	inv.SelectNext()
	if inv.SelectedIndex() != 0 {
		t.Errorf("SelectNext() should wrap, got %d", inv.SelectedIndex())
	}
	inv.SelectPrevious()
	inv.SelectPrevious()
	if inv.SelectedIndex() != 1 {
		t.Errorf("SelectPrevious() = %d, expected 1", inv.SelectedIndex())
	}
}

func TestInventoryUseConsumes(t *testing.T) {
	w := newTestWorld(t, "...")
	p := withPlayer(w, C(1, 1))
	p.Inventory.Add(Gun{}, 1)
	p.Inventory.Add(SpeedPill{}, 1)
	p.Inventory.SelectNext()

	if !p.UseItem(w) {
		t.Fatal("speed pill should be used")
	}
	if p.StepSize() != StepFor(PlayerSpeed+SpeedPillBoost) {
		t.Errorf("StepSize() = %d after speed pill", p.StepSize())
	}
	if p.Inventory.Len() != 1 || p.Inventory.SelectedIndex() != 0 {
		t.Errorf("empty stack should be dropped, len %d selected %d", p.Inventory.Len(), p.Inventory.SelectedIndex())
	}

	p.BeforeStep(w, DirRight)
	if p.UseItem(w) {
		t.Error("items cannot be used while walking")
	}
}

func TestLilyPlant(t *testing.T) {
	w := newTestWorld(t, "._.")
	p := withPlayer(w, C(1, 1))
	p.Facing = DirRight
	p.Inventory.Add(LilyPlant{}, 2)

	if !p.UseItem(w) || w.TileAt(C(2, 1)) != Lily {
		t.Fatal("lily plant should cover the water")
	}
	if p.UseItem(w) {
		t.Error("lily plant needs open water")
	}
	if p.Inventory.Count("Lily Plant") != 1 {
		t.Error("failed use should not consume")
	}

	walk(t, w, p, DirRight)
	if p.Pos != C(2, 1) {
		t.Error("lily should be walkable")
	}
}

func TestGun(t *testing.T) {
	w := newTestWorld(t, "....")
	p := withPlayer(w, C(1, 1))
	p.Facing = DirRight
	devil, _ := NewLittleDevil(C(2, 1), 1, 1)
	w.Register(devil)

	if !(Gun{}).Use(w) || w.Lookup(devil.ID()) != nil {
		t.Fatal("point-blank shot should kill the devil")
	}
	if !(Gun{}).Use(w) {
		t.Fatal("shot into open ground should fire")
	}
	if cb := w.At(LayerMain, C(2, 1)); cb == nil || cb.Kind() != KindCannonball {
		t.Errorf("expected a cannonball at (2,1), got %v", cb)
	}

	p.Facing = DirUp
	if (Gun{}).Use(w) {
		t.Error("shooting a wall should not use the gun")
	}
}
