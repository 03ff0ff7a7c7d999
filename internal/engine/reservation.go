package engine

// Reservation is the invisible placeholder written into a destination slot
// when a move is committed. It blocks the slot until its owner arrives and
// overwrites it. If that never happens it removes itself after a fixed
// number of frames.
type Reservation struct {
	Base
	ttl int
}

func newReservation(pos Coord, layer int, owner ID) *Reservation {
	return &Reservation{
		Base: Base{Pos: pos, layer: layer, owner: owner},
		ttl:  reservationLife,
	}
}

func (r *Reservation) Kind() Kind { return KindReservation }

// Owner returns the ID of the entity the slot is reserved for.
func (r *Reservation) Owner() ID { return r.owner }

// TTL returns the frames left before the reservation expires.
func (r *Reservation) TTL() int { return r.ttl }

func (r *Reservation) Update(w *World) {
	r.ttl--
	if r.ttl <= 0 {
		w.log.Warn("reservation expired", "pos", r.Pos, "owner", r.owner)
		r.Destroy(w)
	}
}

// Destroy frees the slot if it is still held by this reservation.
func (r *Reservation) Destroy(w *World) {
	w.layers[r.layer].popIf(r.Pos, r)
}
