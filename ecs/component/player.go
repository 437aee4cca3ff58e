package component

// Player holds movement tuning.
type Player struct {
	MoveSpeed    float64
	JumpSpeed    float64
	ClimbSpeed   float64
	StickyFactor float64
	StickyGap    float64
}

var PlayerComponent = NewComponent[Player]()
