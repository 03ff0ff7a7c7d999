package engine

import (
	"errors"
	"testing"
)

func TestDevilHealth(t *testing.T) {
	tests := []struct {
		name   string
		health int
		hits   int
		alive  bool
	}{
		{"survives first hit", 2, 1, true},
		{"dies on second hit", 2, 2, false},
		{"zero health is invulnerable", 0, 5, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newTestWorld(t, "#..")
			withPlayer(w, C(2, 1))
			devil, err := NewLittleDevil(C(3, 1), 1, tc.health)
			if err != nil {
				t.Fatal(err)
			}
			w.Register(devil)
			for range tc.hits {
				devil.OnHit(w, DirLeft)
			}
			if alive := w.Lookup(devil.ID()) != nil; alive != tc.alive {
				t.Errorf("alive = %v, expected %v", alive, tc.alive)
			}
		})
	}
}

func TestDevilKilledMidMoveFreesReservation(t *testing.T) {
	w := newTestWorld(t, "....")
	withPlayer(w, C(1, 1))
	devil, _ := NewLittleDevil(C(3, 1), 1, 1)
	w.Register(devil)

	frames(w, 1)
	if !devil.Moving() || w.Resolve(w.At(LayerMain, C(2, 1))) != devil {
		t.Fatal("devil should be heading for (2,1)")
	}
	devil.OnHit(w, DirLeft)
	if w.At(LayerMain, C(2, 1)) != nil || w.At(LayerMain, C(3, 1)) != nil {
		t.Error("dead devil left slots behind")
	}
}

func TestDevilCatchesPlayer(t *testing.T) {
	w := newTestWorld(t, "...", "...")
	p := withPlayer(w, C(1, 1))
	devil, _ := NewLittleDevil(C(2, 2), BallSpeed, 0)
	w.Register(devil)

	// dx and dy tie, so the x axis goes first
	frames(w, 1)
	if devil.Heading() != DirLeft {
		t.Errorf("heading %s, expected left", devil.Heading())
	}
	frames(w, 15)
	if !p.Dead {
		t.Errorf("player should be caught, devil at %s", devil.Pos)
	}
}

func TestDevilFallsBackToOtherAxis(t *testing.T) {
	w := newTestWorld(t, "....", "....")
	withPlayer(w, C(1, 1))
	w.Register(NewBox(C(3, 2)))
	devil, _ := NewLittleDevil(C(4, 2), 1, 0)
	w.Register(devil)

	frames(w, 1)
	if devil.Heading() != DirUp || !devil.Moving() {
		t.Errorf("devil should go around the box, heading %s", devil.Heading())
	}
}

func TestNewLittleDevilRejectsSlowSpeed(t *testing.T) {
	_, err := NewLittleDevil(C(1, 1), MinSpeed/2, 1)
	var cerr ConfigError
	if !errors.As(err, &cerr) || cerr.Code != CodeBadValue {
		t.Errorf("error = %v, expected BAD_VALUE", err)
	}
}

func constant[T any](v T) Schedule[T] {
	return func(int) T { return v }
}

func TestCannonFiresAfterDelay(t *testing.T) {
	w := newTestWorld(t, ".....")
	p := withPlayer(w, C(1, 1))
	delays := func(shot int) int {
		if shot == 0 {
			return 3
		}
		return 1000
	}
	c := NewCannon(C(5, 1), DirLeft, delays, constant(GunSpeed))
	w.Register(c)

	frames(w, 3)
	if c.Shots() != 0 {
		t.Fatal("cannon fired early")
	}
	frames(w, 1)
	if c.Shots() != 1 {
		t.Fatal("cannon should fire on its fourth update")
	}
	if ball := w.At(LayerMain, C(4, 1)); ball == nil || ball.Kind() != KindCannonball {
		t.Fatalf("expected a cannonball at (4,1), got %v", ball)
	}

	frames(w, 30)
	if !p.Dead {
		t.Error("cannonball should hit the player")
	}
}

func TestCannonPointBlank(t *testing.T) {
	w := newTestWorld(t, "...")
	p := withPlayer(w, C(1, 1))
	w.Register(NewCannon(C(2, 1), DirLeft, constant(1), constant(GunSpeed)))

	frames(w, 1)
	if p.Dead {
		t.Fatal("cannon fired during its delay")
	}
	frames(w, 1)
	if !p.Dead {
		t.Error("adjacent cannon should hit the player")
	}
}

func TestCannonballHitsOccupant(t *testing.T) {
	w := newTestWorld(t, ".....")
	withPlayer(w, C(1, 1))
	cb, err := NewCannonball(C(4, 1), DirLeft, GunSpeed)
	if err != nil {
		t.Fatal(err)
	}
	w.Register(cb)
	w.Register(NewBox(C(3, 1)))

	frames(w, 8)
	if w.Lookup(cb.ID()) != nil {
		t.Error("cannonball should break on the box")
	}
	if w.At(LayerMain, C(3, 1)) == nil {
		t.Error("box should survive")
	}
}

func TestPortal(t *testing.T) {
	w := newTestWorld(t, ".....")
	p := withPlayer(w, C(1, 1))
	w.Register(NewPortal(C(2, 1), C(4, 1)))

	walk(t, w, p, DirRight)
	if p.Pos != C(4, 1) || p.Steps != 1 {
		t.Errorf("player at %s steps %d, expected (4,1) and 1", p.Pos, p.Steps)
	}
	if !w.takeRelease() || w.takeRelease() {
		t.Error("teleport should release held keys once")
	}
}

func TestPortalBlocked(t *testing.T) {
	w := newTestWorld(t, ".....")
	p := withPlayer(w, C(1, 1))
	portal := NewPortal(C(2, 1), C(4, 1))
	w.Register(portal)
	w.Register(NewBox(C(4, 1)))

	walk(t, w, p, DirRight)
	if p.Pos != C(1, 1) || !portal.Blocked() || portal.Sprite() != "portal_blocked" {
		t.Fatal("blocked portal should not teleport")
	}

	frames(w, 1)
	fg := w.Foreground()
	if len(fg) != 1 || fg[0] != (Draw{Pos: C(4, 1), Sprite: "alert"}) {
		t.Errorf("Foreground() = %v", fg)
	}
	frames(w, portalAlertTicks-2)
	if !portal.Blocked() {
		t.Fatal("alert ended early")
	}
	frames(w, 1)
	if portal.Blocked() {
		t.Error("alert should end")
	}
	frames(w, 1)
	if len(w.Foreground()) != 0 {
		t.Error("alert draw should stop")
	}
}

func TestPortalIntoWaterBlocked(t *testing.T) {
	w := newTestWorld(t, "..._")
	p := withPlayer(w, C(1, 1))
	portal := NewPortal(C(2, 1), C(4, 1))
	w.Register(portal)

	walk(t, w, p, DirRight)
	if p.Pos != C(1, 1) || !portal.Blocked() {
		t.Errorf("player at %s blocked %v, expected a refused teleport", p.Pos, portal.Blocked())
	}
}

func TestGhostPatrol(t *testing.T) {
	w := newTestWorld(t, "....", "....")
	p := withPlayer(w, C(4, 2))
	w.Register(NewBox(C(2, 1)))
	ghost, err := NewGhost(C(1, 1), BallSpeed, []Coord{C(3, 1)})
	if err != nil {
		t.Fatal(err)
	}
	w.Register(ghost)

	if len(ghost.Path) != 2 || ghost.Path[0] != C(1, 1) {
		t.Fatalf("Path = %v, expected start prepended", ghost.Path)
	}
	frames(w, 8)
	if ghost.Pos != C(3, 1) || ghost.Moving() {
		t.Fatalf("ghost at %s, expected (3,1)", ghost.Pos)
	}
	if w.At(LayerMain, C(2, 1)).Kind() != KindBox {
		t.Error("ghost should pass over the box")
	}
	if p.Dead {
		t.Error("player should be safe")
	}

	frames(w, 1)
	if ghost.Target() != C(1, 1) || ghost.Heading() != DirLeft {
		t.Errorf("ghost should head back, target %s heading %s", ghost.Target(), ghost.Heading())
	}
}

func TestGhostVerticalFirstAndKills(t *testing.T) {
	w := newTestWorld(t, "...", "...")
	p := withPlayer(w, C(3, 2))
	ghost, _ := NewGhost(C(1, 1), BallSpeed, []Coord{C(3, 2)})
	w.Register(ghost)

	frames(w, 1)
	if ghost.Heading() != DirDown {
		t.Errorf("heading %s, expected down", ghost.Heading())
	}
	frames(w, 11)
	if !p.Dead {
		t.Errorf("ghost at %s should have caught the player", ghost.Pos)
	}
}

func TestHellEntrance(t *testing.T) {
	w := newTestWorld(t, ".....")
	withPlayer(w, C(1, 1))
	h, err := NewHellEntrance(C(4, 1), 100, 1, 3)
	if err != nil {
		t.Fatal(err)
	}
	w.Register(h)

	frames(w, 1)
	devil, ok := w.At(LayerMain, C(4, 1)).(*LittleDevil)
	if !ok {
		t.Fatal("entrance should spawn a devil on its first update")
	}
	if devil.Health != 3 || !devil.Moving() {
		t.Errorf("devil health %d moving %v", devil.Health, devil.Moving())
	}

	// the next devil waits for the period
	frames(w, 98)
	if n := len(devils(w)); n != 1 {
		t.Errorf("%d devils before the period elapsed", n)
	}
}

func TestHellEntranceHitsPlayer(t *testing.T) {
	w := newTestWorld(t, "...")
	p := withPlayer(w, C(2, 1))
	h, _ := NewHellEntrance(C(2, 1), 10, 1, 1)
	w.Register(h)

	frames(w, 1)
	if !p.Dead {
		t.Error("player on the entrance should be hit")
	}
	if len(devils(w)) != 0 {
		t.Error("no devil should spawn under the player")
	}
}

func TestNewHellEntranceRejectsFrequency(t *testing.T) {
	if _, err := NewHellEntrance(C(1, 1), 0, 1, 1); err == nil {
		t.Error("expected an error for zero frequency")
	}
}

func devils(w *World) []*LittleDevil {
	var out []*LittleDevil
	for _, e := range w.Entities(LayerMain) {
		if d, ok := e.(*LittleDevil); ok {
			out = append(out, d)
		}
	}
	return out
}

func TestDoor(t *testing.T) {
	w := newTestWorld(t, "...")
	p := withPlayer(w, C(1, 1))
	open := false
	door := NewDoor(C(2, 1), func(*World, *Door) bool { return open }, nil, nil)
	w.Register(door)

	walk(t, w, p, DirRight)
	frames(w, 5)
	if w.At(LayerMain, C(2, 1)) != door {
		t.Fatal("locked door should stay")
	}
	open = true
	frames(w, 1)
	if w.At(LayerMain, C(2, 1)) != nil {
		t.Fatal("door should open when its condition holds")
	}
	walk(t, w, p, DirRight)
	if p.Pos != C(2, 1) {
		t.Error("player should walk through the open door")
	}
}

func TestDoorOpensOnTouch(t *testing.T) {
	w := newTestWorld(t, "...")
	p := withPlayer(w, C(1, 1))
	p.Inventory.Add(Gun{}, 1)
	door := NewDoor(C(2, 1), nil, func(w *World, d *Door) bool {
		return w.Player().Inventory.Count(d.Params["item"]) > 0
	}, map[string]string{"item": "Gun"})
	w.Register(door)

	walk(t, w, p, DirRight)
	if w.At(LayerMain, C(2, 1)) != nil {
		t.Fatal("door should open on touch")
	}
	if p.Pos != C(1, 1) {
		t.Error("opening a door should not move the player")
	}
}
