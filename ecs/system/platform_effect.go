package system

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

var (
	defaultStickyColor = color.RGBA{R: 0x27, G: 0xae, B: 0x60, A: 0xff}
	defaultHotColor    = color.RGBA{R: 0xff, G: 0x45, B: 0x00, A: 0xff}
)

// PlatformEffectSystem arms, triggers and schedules the delayed effects of
// trigger-effect platforms.
type PlatformEffectSystem struct {
	StickyColor color.RGBA
	HotColor    color.RGBA
}

func NewPlatformEffectSystem() *PlatformEffectSystem {
	return &PlatformEffectSystem{StickyColor: defaultStickyColor, HotColor: defaultHotColor}
}

// WithColors takes the sticky and hot tints from the world spec's color
// table, keeping the built-in tint for any key it lacks.
func (s *PlatformEffectSystem) WithColors(world prefabs.WorldSpec) *PlatformEffectSystem {
	if c, ok := world.ColorFor(levels.EffectSticky); ok {
		s.StickyColor = c
	}
	if c, ok := world.ColorFor(levels.EffectHot); ok {
		s.HotColor = c
	}
	return s
}

func (s *PlatformEffectSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	clock, ok := clockOf(w)
	if !ok {
		return
	}

	px, py, hasPlayer := 0.0, 0.0, false
	if player, _, ok := playerRun(w); ok {
		px, py, hasPlayer = entityCenter(w, player)
	}

	ecs.ForEach(w, component.PlatformEffectComponent.Kind(), func(e ecs.Entity, fx *component.PlatformEffect) {
		captureEffectRuntime(w, e)
		if fx.Triggered || !hasPlayer {
			return
		}
		cx, cy, ok := entityCenter(w, e)
		if !ok || common.Distance(px, py, cx, cy) > fx.TriggerDistance {
			return
		}
		fx.Triggered = true
		log.Debug("platform effect: triggered", "entity", e, "effect", fx.Type, "timeout", fx.Timeout)
		w.Timers().Schedule(clock.Elapsed+fx.Timeout, e, fx.Arm, s.activate)
	})
}

// activate runs from the timer queue. The token is the arm generation the
// timer was scheduled under; a reset since then makes the timer stale.
func (s *PlatformEffectSystem) activate(w *ecs.World, e ecs.Entity, token uint32) {
	fx, ok := ecs.Get(w, e, component.PlatformEffectComponent.Kind())
	if !ok || fx.Arm != token || !fx.Triggered || fx.Active {
		return
	}
	fx.Active = true
	log.Debug("platform effect: active", "entity", e, "effect", fx.Type)

	app, _ := ecs.Get(w, e, component.AppearanceComponent.Kind())
	switch fx.Type {
	case component.EffectCollapse:
		captureEffectRuntime(w, e)
		_ = ecs.Remove(w, e, component.PhysicsBodyComponent.Kind())
		if app != nil {
			app.Hidden = true
		}
	case component.EffectSticky:
		if p, ok := ecs.Get(w, e, component.PlatformComponent.Kind()); ok {
			p.Sticky = true
		}
		if app != nil {
			app.Color = s.StickyColor
		}
	case component.EffectHot:
		if p, ok := ecs.Get(w, e, component.PlatformComponent.Kind()); ok {
			p.Hot = true
		}
		if app != nil {
			app.Color = s.HotColor
		}
	}
}

// captureEffectRuntime caches the platform's physics body the first time it
// is seen so a collapse can be undone.
func captureEffectRuntime(w *ecs.World, e ecs.Entity) *component.PlatformEffectRuntime {
	rt, ok := ecs.Get(w, e, component.PlatformEffectRuntimeComponent.Kind())
	if !ok {
		rt = &component.PlatformEffectRuntime{}
		if err := ecs.Add(w, e, component.PlatformEffectRuntimeComponent.Kind(), rt); err != nil {
			return nil
		}
	}
	if rt.Initialized {
		return rt
	}
	if body, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind()); ok {
		template := *body
		template.Body = nil
		template.Shape = nil
		rt.HasPhysicsBody = true
		rt.PhysicsTemplate = template
	}
	rt.Initialized = true
	return rt
}

// ResetEffect returns a platform effect to armed, undoing whatever its
// activation changed. Pending timers from before the reset become stale.
func ResetEffect(w *ecs.World, e ecs.Entity) {
	fx, ok := ecs.Get(w, e, component.PlatformEffectComponent.Kind())
	if !ok {
		return
	}
	fx.Arm++
	fx.Triggered = false
	fx.Active = false

	if rt, ok := ecs.Get(w, e, component.PlatformEffectRuntimeComponent.Kind()); ok && rt.HasPhysicsBody {
		if !ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			template := rt.PhysicsTemplate
			template.Body = nil
			template.Shape = nil
			_ = ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &template)
		}
	}
	if p, ok := ecs.Get(w, e, component.PlatformComponent.Kind()); ok {
		p.Sticky = false
		p.Hot = false
	}
	if app, ok := ecs.Get(w, e, component.AppearanceComponent.Kind()); ok {
		app.Hidden = false
		app.Color = app.Original
	}
}
