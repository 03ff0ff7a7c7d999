package engine

// HUDMode selects what the front end overlays on the map.
type HUDMode uint8

const (
	HUDOff HUDMode = iota
	HUDStats
	HUDInventory
	hudModes
)

// Player is the user-controlled mover. It is tracked by the world directly
// rather than through a layer slot, but is exclusive on the main layer.
type Player struct {
	Mover
	Steps     int
	Dead      bool
	Facing    Dir
	HUD       HUDMode
	Inventory *Inventory
}

// NewPlayer creates a player at pos facing down.
func NewPlayer(pos Coord) *Player {
	return &Player{
		Mover:     newMover(pos, PlayerSpeed),
		Facing:    DirDown,
		HUD:       HUDStats,
		Inventory: NewInventory(),
	}
}

func (p *Player) Kind() Kind { return KindPlayer }

func (p *Player) Sprite() string {
	return "player_" + p.Facing.String()
}

// BeforeStep turns the player and either touches the occupant ahead or
// starts walking onto free walkable ground.
func (p *Player) BeforeStep(w *World, d Dir) {
	if p.moving {
		return
	}
	p.Facing = d
	dest := p.Pos.Step(d)
	if occ := w.At(p.layer, dest); occ != nil {
		occ.OnTouch(w, d)
		return
	}
	if !w.TileAt(dest).Walkable() {
		return
	}
	w.commit(p, d)
}

// AfterStep counts the step and fires the event bound to the new tile.
func (p *Player) AfterStep(w *World) {
	p.stop()
	p.Steps++
	if e := w.EventAt(p.Pos); e != nil {
		e.trigger(w)
	}
}

func (p *Player) OnHit(w *World, d Dir) {
	if !p.Dead {
		w.log.Debug("player hit", "pos", p.Pos, "from", d)
	}
	p.Dead = true
}

// Update advances a committed walk. On arrival the player takes over the
// tile from its reservation.
func (p *Player) Update(w *World) {
	d := p.heading
	if !p.advance() {
		return
	}
	p.Pos = p.Pos.Step(d)
	if occ := w.At(p.layer, p.Pos); occ != nil && occ.Meta().owner == p.id {
		w.layers[p.layer].pop(p.Pos)
	}
	p.AfterStep(w)
}

// TeleportTo moves the idle player to dest and runs the arrival hook.
func (p *Player) TeleportTo(w *World, dest Coord) {
	p.stop()
	p.Pos = dest
	p.AfterStep(w)
}

// SwitchHUD cycles through the HUD modes.
func (p *Player) SwitchHUD() {
	p.HUD = (p.HUD + 1) % hudModes
}

// UseItem applies the selected item. Nothing happens while walking.
func (p *Player) UseItem(w *World) bool {
	if p.moving {
		return false
	}
	return p.Inventory.Use(w)
}
