package component

// SupportKind is what is currently holding the player up.
type SupportKind int

const (
	Airborne SupportKind = iota
	Grounded
	OnMovingPlatform
	OnLadder
)

func (k SupportKind) String() string {
	switch k {
	case Grounded:
		return "grounded"
	case OnMovingPlatform:
		return "on-moving-platform"
	case OnLadder:
		return "on-ladder"
	default:
		return "airborne"
	}
}

// Support is a tagged union: Entity is the moving platform or ladder for
// OnMovingPlatform and OnLadder, and 0 otherwise.
type Support struct {
	Kind   SupportKind
	Entity uint64
}

// CheckpointRef is the respawn anchor recorded when a checkpoint activates.
type CheckpointRef struct {
	Entity uint64
	X      float64
	Y      float64
}

// PlayerRun is the per-level run state: lives, respawn anchors and terminal
// latches. CurrentCheckpoint is nil until the first activation and never
// returns to nil afterwards.
type PlayerRun struct {
	Lives             int
	MaxLives          int
	SpawnX            float64
	SpawnY            float64
	CurrentCheckpoint *CheckpointRef
	Support           Support
	LevelComplete     bool
	GameOver          bool
	Deaths            int
}

// RespawnPoint returns the checkpoint when one is active, the spawn point
// otherwise.
func (r *PlayerRun) RespawnPoint() (float64, float64) {
	if r.CurrentCheckpoint != nil {
		return r.CurrentCheckpoint.X, r.CurrentCheckpoint.Y
	}
	return r.SpawnX, r.SpawnY
}

func (r *PlayerRun) Halted() bool {
	return r.GameOver || r.LevelComplete
}

var PlayerRunComponent = NewComponent[PlayerRun]()
