package entity

import (
	"fmt"
	"math"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// NewPlatform builds a solid platform. Attached platforms use a kinematic
// body so riders are carried along with their parent.
func NewPlatform(w *ecs.World, o levels.Object, world prefabs.WorldSpec) (ecs.Entity, error) {
	e, err := placeObject(w, o, world, false)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{}); err != nil {
		return 0, fmt.Errorf("platform: add platform: %w", err)
	}
	if err := addBody(w, e, o.Attached()); err != nil {
		return 0, fmt.Errorf("platform: add body: %w", err)
	}

	if o.HasTriggerEffect && !o.Attached() {
		fx := &component.PlatformEffect{
			Type:            effectType(o.EffectType),
			TriggerDistance: o.EffectTriggerDistance,
			Timeout:         o.EffectTimeout,
		}
		if err := ecs.Add(w, e, component.PlatformEffectComponent.Kind(), fx); err != nil {
			return 0, fmt.Errorf("platform: add effect: %w", err)
		}
		log.Debug("level: platform with trigger effect", "object", o.ID, "effect", fx.Type)
	}
	return e, nil
}

// NewMovingPlatform builds a platform that travels MoveDistance along the
// direction given by its rotation, starting from its center. Rotation only
// steers the path; the body stays axis aligned at its authored size.
func NewMovingPlatform(w *ecs.World, o levels.Object, world prefabs.WorldSpec) (ecs.Entity, error) {
	flat := o
	flat.Rotation = 0
	e, err := placeObject(w, flat, world, false)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.PlatformComponent.Kind(), &component.Platform{Moving: true}); err != nil {
		return 0, fmt.Errorf("moving platform: add platform: %w", err)
	}
	if err := addBody(w, e, true); err != nil {
		return 0, fmt.Errorf("moving platform: add body: %w", err)
	}

	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	dirY, dirX := math.Sincos(common.DegToRad(o.Rotation))
	mp := &component.MovingPlatform{
		StartX:          t.X,
		StartY:          t.Y,
		DirX:            dirX,
		DirY:            dirY,
		Distance:        o.MoveDistance,
		Speed:           o.MoveSpeed,
		Mode:            moveMode(o.MoveMode),
		Direction:       1,
		RequireTrigger:  o.RequireTrigger,
		TriggerDistance: o.TriggerDistance,
		ResetOnDeath:    o.ResetOnDeath,
	}
	if !mp.RequireTrigger {
		mp.InitialVX = dirX * mp.Speed * 60
		mp.InitialVY = dirY * mp.Speed * 60
	}
	mp.VX, mp.VY = mp.InitialVX, mp.InitialVY

	if err := ecs.Add(w, e, component.MovingPlatformComponent.Kind(), mp); err != nil {
		return 0, fmt.Errorf("moving platform: add motion: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("moving platform: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.AttachmentsComponent.Kind(), &component.Attachments{}); err != nil {
		return 0, fmt.Errorf("moving platform: add attachments: %w", err)
	}

	log.Debug("level: moving platform", "object", o.ID, "rotation", o.Rotation, "dir_x", dirX, "dir_y", dirY)
	return e, nil
}

func moveMode(s string) component.MoveMode {
	if s == levels.MoveModeOnce {
		return component.MoveOnce
	}
	return component.MoveLoop
}

func effectType(s string) component.EffectType {
	switch s {
	case levels.EffectSticky:
		return component.EffectSticky
	case levels.EffectHot:
		return component.EffectHot
	default:
		return component.EffectCollapse
	}
}
