package system

import (
	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// FallSystem kills the player once its center drops below the level's
// death boundary.
type FallSystem struct{}

func NewFallSystem() *FallSystem { return &FallSystem{} }

func (s *FallSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, _, ok := playerRun(w)
	if !ok {
		return
	}
	be, ok := w.First(component.LevelBoundsComponent.Kind())
	if !ok {
		return
	}
	bounds, _ := ecs.Get(w, be, component.LevelBoundsComponent.Kind())
	if _, y, ok := entityCenter(w, player); ok && y > bounds.DeathY {
		requestDeath(w, player, causeFell, 0)
	}
}

// EndFlagSystem completes the level when the player reaches the end flag.
type EndFlagSystem struct{}

func NewEndFlagSystem() *EndFlagSystem { return &EndFlagSystem{} }

func (s *EndFlagSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, run, ok := playerRun(w)
	if !ok {
		return
	}
	// a death this tick wins over touching the flag
	if ecs.Has(w, player, component.DeathRequestComponent.Kind()) {
		return
	}
	box, ok := entityBox(w, player)
	if !ok {
		return
	}

	reached := false
	for _, e := range w.Query(component.EndFlagComponent.Kind()) {
		if fb, ok := entityBox(w, e); ok && box.Overlaps(fb) {
			reached = true
			break
		}
	}
	if !reached {
		return
	}

	run.LevelComplete = true
	freezePlayer(w, player)

	index := 0
	if be, ok := w.First(component.LevelBoundsComponent.Kind()); ok {
		bounds, _ := ecs.Get(w, be, component.LevelBoundsComponent.Kind())
		index = bounds.Index
	}
	log.Info("level: complete", "level", index, "deaths", run.Deaths)
	w.Events().Push(ecs.Event{Type: ecs.EventLevelComplete, Data: ecs.LevelCompleteEvent{LevelIndex: index}})
}
