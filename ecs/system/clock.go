package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// ClockSystem advances simulation time and fires deferred timers that came
// due. It must run first so every later system sees the same tick.
type ClockSystem struct{}

func NewClockSystem() *ClockSystem { return &ClockSystem{} }

func (s *ClockSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	clock, ok := clockOf(w)
	if !ok || clock.Dt <= 0 {
		return
	}
	clock.Elapsed += clock.Dt
	clock.Tick++
	w.Timers().Advance(w, clock.Elapsed)
}

func clockOf(w *ecs.World) (*component.Clock, bool) {
	e, ok := ecs.First(w, component.ClockComponent.Kind())
	if !ok {
		return nil, false
	}
	return ecs.Get(w, e, component.ClockComponent.Kind())
}

func clockDt(w *ecs.World) float64 {
	if clock, ok := clockOf(w); ok {
		return clock.Dt
	}
	return 0
}
