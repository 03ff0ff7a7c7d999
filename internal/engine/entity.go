package engine

// Kind tags every entity variant.
type Kind uint8

const (
	KindReservation Kind = iota
	KindPlayer
	KindBall
	KindBox
	KindDiamond
	KindEnvelope
	KindPortal
	KindCannon
	KindCannonball
	KindDoor
	KindLittleDevil
	KindGhost
	KindHellEntrance
)

var kindNames = [...]string{
	KindReservation:  "reservation",
	KindPlayer:       "player",
	KindBall:         "ball",
	KindBox:          "box",
	KindDiamond:      "diamond",
	KindEnvelope:     "envelope",
	KindPortal:       "portal",
	KindCannon:       "cannon",
	KindCannonball:   "cannonball",
	KindDoor:         "door",
	KindLittleDevil:  "little_devil",
	KindGhost:        "ghost",
	KindHellEntrance: "hell_entrance",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ID identifies a live entity. Zero means "not registered".
type ID uint64

// Entity is the behavior contract shared by every variant. Embedding Base
// supplies no-op hooks, so a variant only implements what it needs.
type Entity interface {
	Meta() *Base
	Kind() Kind

	// BeforeStep validates and, if allowed, starts a move in direction d.
	BeforeStep(w *World, d Dir)
	// AfterStep runs when a move completes on the new tile.
	AfterStep(w *World)
	// OnTouch runs when the player walks into the entity from direction d.
	OnTouch(w *World, d Dir)
	// OnHit runs when a projectile or hazard strikes from direction d.
	OnHit(w *World, d Dir)
	// Update runs once per frame.
	Update(w *World)

	// Sprite names the image the front end should draw.
	Sprite() string
	// Offset is the signed sub-tile displacement in TileUnits.
	Offset() (dx, dy int)
}

// Base holds the attributes every entity has.
type Base struct {
	Pos   Coord
	Data  any
	id    ID
	layer int
	owner ID
}

// Meta returns the shared attributes.
func (b *Base) Meta() *Base { return b }

// ID returns the registration identifier.
func (b *Base) ID() ID { return b.id }

// Layer returns the layer the entity lives on.
func (b *Base) Layer() int { return b.layer }

func (b *Base) BeforeStep(*World, Dir) {}
func (b *Base) AfterStep(*World)       {}
func (b *Base) OnTouch(*World, Dir)    {}
func (b *Base) OnHit(*World, Dir)      {}
func (b *Base) Update(*World)          {}
func (b *Base) Sprite() string         { return "" }
func (b *Base) Offset() (int, int)     { return 0, 0 }

// Draw is a one-frame draw request for the foreground queue.
type Draw struct {
	Pos    Coord
	Sprite string
}
