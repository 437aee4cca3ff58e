package component

// DeathRequest marks the player as having died this tick. The death system
// consumes it; repeated requests in one tick collapse into one death.
type DeathRequest struct {
	Cause  string
	Source uint64
}

var DeathRequestComponent = NewComponent[DeathRequest]()
