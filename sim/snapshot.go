package sim

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// Snapshot is a read-only copy of the state a host shows to the player.
type Snapshot struct {
	Tick    uint64
	Elapsed float64

	PlayerX   float64
	PlayerY   float64
	VelocityX float64
	VelocityY float64
	Support   component.Support

	Lives      int
	MaxLives   int
	Deaths     int
	Checkpoint *component.CheckpointRef

	LevelIndex    int
	LevelComplete bool
	GameOver      bool
	Paused        bool
}

func (s *Simulation) Snapshot() Snapshot {
	var snap Snapshot
	if s == nil || s.world == nil {
		return snap
	}
	w := s.world
	snap.Paused = s.paused
	snap.LevelIndex = s.opts.LevelIndex

	if e, ok := w.First(component.ClockComponent.Kind()); ok {
		clock, _ := ecs.Get(w, e, component.ClockComponent.Kind())
		snap.Tick, snap.Elapsed = clock.Tick, clock.Elapsed
	}

	player := s.report.Player
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		snap.PlayerX, snap.PlayerY = t.X, t.Y
	}
	if v, ok := ecs.Get(w, player, component.VelocityComponent.Kind()); ok {
		snap.VelocityX, snap.VelocityY = v.X, v.Y
	}
	if run, ok := ecs.Get(w, player, component.PlayerRunComponent.Kind()); ok {
		snap.Support = run.Support
		snap.Lives = run.Lives
		snap.MaxLives = run.MaxLives
		snap.Deaths = run.Deaths
		snap.LevelComplete = run.LevelComplete
		snap.GameOver = run.GameOver
		if run.CurrentCheckpoint != nil {
			cp := *run.CurrentCheckpoint
			snap.Checkpoint = &cp
		}
	}
	return snap
}
