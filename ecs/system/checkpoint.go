package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// CheckpointSystem activates checkpoints the player overlaps. Activation is
// one-way, so standing inside an active checkpoint is a no-op.
type CheckpointSystem struct{}

func NewCheckpointSystem() *CheckpointSystem { return &CheckpointSystem{} }

func (s *CheckpointSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, run, ok := playerRun(w)
	if !ok {
		return
	}
	box, ok := entityBox(w, player)
	if !ok {
		return
	}

	ecs.ForEach(w, component.CheckpointComponent.Kind(), func(e ecs.Entity, cp *component.Checkpoint) {
		if cp.Activated {
			return
		}
		cb, ok := entityBox(w, e)
		if !ok || !box.Overlaps(cb) {
			return
		}
		ActivateCheckpoint(w, run, e, cp)
	})
}

// ActivateCheckpoint makes cp the respawn anchor. It does nothing for an
// already activated checkpoint.
func ActivateCheckpoint(w *ecs.World, run *component.PlayerRun, e ecs.Entity, cp *component.Checkpoint) bool {
	if cp.Activated {
		return false
	}
	cp.Activated = true
	run.CurrentCheckpoint = &component.CheckpointRef{Entity: uint64(e), X: cp.X, Y: cp.Y}
	log.Debug("checkpoint: activated", "id", cp.ID, "x", cp.X, "y", cp.Y)
	w.Events().Push(ecs.Event{
		Type: ecs.EventCheckpointActivated,
		Data: ecs.CheckpointEvent{Checkpoint: e, X: cp.X, Y: cp.Y},
	})
	return true
}
