package system

import (
	"math"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

type PlayerControllerSystem struct{}

func NewPlayerControllerSystem() *PlayerControllerSystem {
	return &PlayerControllerSystem{}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, run, ok := playerRun(w)
	if !ok {
		return
	}
	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	if !ok {
		return
	}
	tuning, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	vel, ok := ecs.Get(w, player, component.VelocityComponent.Kind())
	if !ok {
		return
	}

	if run.Support.Kind == component.OnLadder {
		vel.X = axis(input.MoveX) * tuning.ClimbSpeed
		vel.Y = axis(input.MoveY) * tuning.ClimbSpeed
		return
	}

	speed := tuning.MoveSpeed
	if onStickyPlatform(w, player, tuning.StickyGap) {
		speed *= tuning.StickyFactor
	}
	vel.X = axis(input.MoveX) * speed

	contact, _ := ecs.Get(w, player, component.PlayerContactComponent.Kind())
	grounded := contact != nil && contact.Grounded
	if input.Jump && (grounded || run.Support.Kind == component.OnMovingPlatform) {
		vel.Y = -tuning.JumpSpeed
		run.Support = component.Support{Kind: component.Airborne}
		if contact != nil {
			contact.Grounded = false
			contact.OnMoving = false
		}
	}
}

func axis(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// onStickyPlatform reports whether the player stands on an active sticky
// platform: feet within gap of its top and horizontal footprints overlapping.
func onStickyPlatform(w *ecs.World, player ecs.Entity, gap float64) bool {
	contact, ok := ecs.Get(w, player, component.PlayerContactComponent.Kind())
	if !ok || !contact.Grounded {
		return false
	}
	box, ok := entityBox(w, player)
	if !ok {
		return false
	}

	sticky := false
	ecs.ForEach3(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), component.ShapeComponent.Kind(), func(e ecs.Entity, p *component.Platform, t *component.Transform, s *component.Shape) {
		if sticky || !p.Sticky {
			return
		}
		pb := s.RotatedBounds(t)
		overlapX := box.Right() > pb.X && box.X < pb.Right()
		if overlapX && math.Abs(box.Bottom()-pb.Y) < gap {
			sticky = true
		}
	})
	return sticky
}
