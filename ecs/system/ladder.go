package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// LadderSystem tests the player center against every ladder's stored
// bounds each tick. Climbing disables gravity; leaving restores it.
type LadderSystem struct{}

func NewLadderSystem() *LadderSystem { return &LadderSystem{} }

func (s *LadderSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, run, ok := playerRun(w)
	if !ok {
		return
	}
	px, py, ok := entityCenter(w, player)
	if !ok {
		return
	}

	var ladder ecs.Entity
	ecs.ForEach(w, component.LadderComponent.Kind(), func(e ecs.Entity, l *component.Ladder) {
		if ladder == 0 && l.Bounds.Contains(px, py) {
			ladder = e
		}
	})

	body, hasBody := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	switch {
	case ladder != 0:
		if run.Support.Kind != component.OnLadder || run.Support.Entity != uint64(ladder) {
			log.Debug("ladder: entered", "ladder", ladder)
		}
		run.Support = component.Support{Kind: component.OnLadder, Entity: uint64(ladder)}
		if hasBody {
			body.GravityDisabled = true
		}
	case run.Support.Kind == component.OnLadder:
		log.Debug("ladder: left", "ladder", run.Support.Entity)
		run.Support = component.Support{Kind: component.Airborne}
		if hasBody {
			body.GravityDisabled = false
		}
	}
}
