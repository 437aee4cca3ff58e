package component

// Checkpoint becomes the player's respawn anchor the first time it is
// touched. X/Y is its center.
type Checkpoint struct {
	ID        string
	X         float64
	Y         float64
	Activated bool
}

var CheckpointComponent = NewComponent[Checkpoint]()

// EndFlag completes the level on overlap.
type EndFlag struct{}

var EndFlagComponent = NewComponent[EndFlag]()
