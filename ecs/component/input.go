package component

// Input stores per-frame input state for an entity. MoveY is negative for
// up while climbing.
type Input struct {
	MoveX       float64
	MoveY       float64
	Jump        bool
	JumpPressed bool
}

var InputComponent = NewComponent[Input]()
