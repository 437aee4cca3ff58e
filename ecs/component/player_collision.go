package component

// PlayerContact is rebuilt from physics contacts every tick.
type PlayerContact struct {
	Grounded bool
	// Platform is the platform under the player's feet, 0 if none.
	Platform uint64
	OnMoving bool
	// Hot is the hot platform touched this tick, 0 if none.
	Hot uint64
}

var PlayerContactComponent = NewComponent[PlayerContact]()
