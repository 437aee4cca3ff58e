package component

// MoveMode selects what a moving platform does when it reaches either end of
// its path.
type MoveMode int

const (
	MoveLoop MoveMode = iota
	MoveOnce
)

func (m MoveMode) String() string {
	if m == MoveOnce {
		return "once"
	}
	return "loop"
}

// MovingPlatform is the kinematic state of a platform travelling along a
// straight line from its start anchor. StartX/StartY is the center at load
// time and never changes. Speed is in pixels per 1/60s tick.
type MovingPlatform struct {
	StartX    float64
	StartY    float64
	DirX      float64
	DirY      float64
	Distance  float64
	Speed     float64
	Mode      MoveMode
	Direction int

	RequireTrigger  bool
	TriggerDistance float64
	Triggered       bool
	ResetOnDeath    bool

	// InitialVX/InitialVY is the velocity computed at load, restored on reset.
	InitialVX float64
	InitialVY float64
	VX        float64
	VY        float64

	// Flips counts direction reversals since load or the last reset.
	Flips int
}

var MovingPlatformComponent = NewComponent[MovingPlatform]()
