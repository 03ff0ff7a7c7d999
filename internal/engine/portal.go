package engine

import "fmt"

// Portal sends the player to Dest when it is free and walkable. Otherwise
// it shows a blocked state and flags the destination for a while.
type Portal struct {
	Base
	Dest  Coord
	frame int
	timer int
	alert int
}

// NewPortal creates a portal at pos leading to dest.
func NewPortal(pos, dest Coord) *Portal {
	return &Portal{Base: Base{Pos: pos, layer: LayerMain}, Dest: dest}
}

func (p *Portal) Kind() Kind { return KindPortal }

// Blocked reports whether the blocked state is showing.
func (p *Portal) Blocked() bool { return p.alert > 0 }

func (p *Portal) Sprite() string {
	if p.alert > 0 {
		return "portal_blocked"
	}
	return fmt.Sprintf("portal_%d", p.frame+1)
}

func (p *Portal) OnTouch(w *World, _ Dir) {
	if w.IsFree(p.Dest, p.layer) && w.TileAt(p.Dest).Walkable() {
		w.log.Debug("teleport", "from", p.Pos, "to", p.Dest)
		w.ReleaseHeld()
		w.Player().TeleportTo(w, p.Dest)
		return
	}
	p.alert = 1
}

func (p *Portal) Update(w *World) {
	if p.alert > 0 {
		w.Push(Draw{Pos: p.Dest, Sprite: "alert"})
		p.alert++
		if p.alert > portalAlertTicks {
			p.alert = 0
		}
		return
	}
	p.timer++
	if p.timer == animationPeriod {
		p.timer = 0
		p.frame = (p.frame + 1) % portalFrames
	}
}
