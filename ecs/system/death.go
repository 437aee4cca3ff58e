package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// DeathSystem consumes the player's death request: it spends a life, then
// either ends the run or respawns the player and resets the level's
// resettable state.
type DeathSystem struct{}

func NewDeathSystem() *DeathSystem { return &DeathSystem{} }

func (s *DeathSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := playerEntity(w)
	if !ok {
		return
	}
	req, ok := ecs.Get(w, player, component.DeathRequestComponent.Kind())
	if !ok {
		return
	}
	cause, source := req.Cause, ecs.Entity(req.Source)
	_ = ecs.Remove(w, player, component.DeathRequestComponent.Kind())

	run, ok := ecs.Get(w, player, component.PlayerRunComponent.Kind())
	if !ok || run.Halted() {
		return
	}

	run.Lives--
	run.Deaths++
	log.Info("player: died", "cause", cause, "lives", run.Lives)
	w.Events().Push(ecs.Event{Type: ecs.EventDeath, Data: ecs.DeathEvent{Cause: cause, Source: source}})
	w.Events().Push(ecs.Event{Type: ecs.EventLivesChanged, Data: ecs.LivesChangedEvent{Remaining: run.Lives, Max: run.MaxLives}})

	if run.Lives <= 0 {
		run.GameOver = true
		run.Support = component.Support{Kind: component.Airborne}
		freezePlayer(w, player)
		log.Info("player: game over", "deaths", run.Deaths)
		w.Events().Push(ecs.Event{Type: ecs.EventGameOver})
		return
	}

	Respawn(w, player, run)
	ResetWorld(w)
}

// Respawn moves the player to its current checkpoint, or the spawn point
// when none has been activated, and clears its motion and support state.
func Respawn(w *ecs.World, player ecs.Entity, run *component.PlayerRun) {
	x, y := run.RespawnPoint()
	if t, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
		t.X, t.Y = x, y
	}
	setVelocity(w, player, 0, 0)
	run.Support = component.Support{Kind: component.Airborne}
	if pc, ok := ecs.Get(w, player, component.PlayerContactComponent.Kind()); ok {
		*pc = component.PlayerContact{}
	}
	if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent.Kind()); ok {
		body.GravityDisabled = false
	}
	log.Debug("player: respawned", "x", x, "y", y, "checkpoint", run.CurrentCheckpoint != nil)
}

// ResetWorld restores every reset-on-death moving platform and re-arms every
// platform effect.
func ResetWorld(w *ecs.World) {
	ecs.ForEach2(w, component.MovingPlatformComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, mp *component.MovingPlatform, t *component.Transform) {
		if !mp.ResetOnDeath {
			return
		}
		ResetPlatform(mp, t)
		setVelocity(w, e, 0, 0)
		PropagateAttachments(w, e)
	})
	ecs.ForEach(w, component.PlatformEffectComponent.Kind(), func(e ecs.Entity, _ *component.PlatformEffect) {
		ResetEffect(w, e)
	})
}
