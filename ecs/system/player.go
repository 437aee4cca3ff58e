package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

func playerEntity(w *ecs.World) (ecs.Entity, bool) {
	return w.First(component.PlayerTagComponent.Kind())
}

// playerRun returns the player and its run state while the run is still
// live. Halted runs return false.
func playerRun(w *ecs.World) (ecs.Entity, *component.PlayerRun, bool) {
	player, ok := playerEntity(w)
	if !ok {
		return 0, nil, false
	}
	run, ok := ecs.Get(w, player, component.PlayerRunComponent.Kind())
	if !ok || run.Halted() {
		return 0, nil, false
	}
	return player, run, true
}

func entityBox(w *ecs.World, e ecs.Entity) (common.AABB, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.AABB{}, false
	}
	s, ok := ecs.Get(w, e, component.ShapeComponent.Kind())
	if !ok {
		return common.AABB{}, false
	}
	return s.Bounds(t), true
}

func entityCenter(w *ecs.World, e ecs.Entity) (float64, float64, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, 0, false
	}
	if s, ok := ecs.Get(w, e, component.ShapeComponent.Kind()); ok {
		x, y := s.Center(t)
		return x, y, true
	}
	return t.X, t.Y, true
}

// requestDeath marks the player as dead this tick. Only the first request
// of a tick is kept.
func requestDeath(w *ecs.World, player ecs.Entity, cause string, source ecs.Entity) {
	if ecs.Has(w, player, component.DeathRequestComponent.Kind()) {
		return
	}
	log.Debug("death: requested", "cause", cause, "source", source)
	_ = ecs.Add(w, player, component.DeathRequestComponent.Kind(), &component.DeathRequest{
		Cause:  cause,
		Source: uint64(source),
	})
}

// freezePlayer takes the player out of the physics simulation.
func freezePlayer(w *ecs.World, player ecs.Entity) {
	_ = ecs.Remove(w, player, component.PhysicsBodyComponent.Kind())
	if v, ok := ecs.Get(w, player, component.VelocityComponent.Kind()); ok {
		v.X, v.Y = 0, 0
	}
}
