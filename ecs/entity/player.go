package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/prefabs"
)

var defaultPlayerColor = color.RGBA{R: 0x34, G: 0x98, B: 0xdb, A: 0xff}

// NewPlayerAt creates the player with its center at (x, y). The spawn point
// recorded in PlayerRun is the same point.
func NewPlayerAt(w *ecs.World, x, y float64, spec prefabs.PlayerSpec, world prefabs.WorldSpec) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)

	if err := ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add tag: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.ShapeComponent.Kind(), &component.Shape{
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
	}); err != nil {
		return 0, fmt.Errorf("player: add shape: %w", err)
	}

	c := defaultPlayerColor
	if spec.Color != nil && spec.Color.Color != nil {
		c = color.RGBAModel.Convert(spec.Color.Color).(color.RGBA)
	}
	if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Color: c, Original: c}); err != nil {
		return 0, fmt.Errorf("player: add appearance: %w", err)
	}

	if err := ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    spec.Collider.Width,
		Height:   spec.Collider.Height,
		Mass:     spec.Collider.Mass,
		Friction: spec.Collider.Friction,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
		return 0, fmt.Errorf("player: add velocity: %w", err)
	}
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerComponent.Kind(), &component.Player{
		MoveSpeed:    spec.MoveSpeed,
		JumpSpeed:    spec.JumpSpeed,
		ClimbSpeed:   spec.ClimbSpeed,
		StickyFactor: spec.StickyFactor,
		StickyGap:    world.StickyGap,
	}); err != nil {
		return 0, fmt.Errorf("player: add tuning: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerContactComponent.Kind(), &component.PlayerContact{}); err != nil {
		return 0, fmt.Errorf("player: add contact: %w", err)
	}
	if err := ecs.Add(w, e, component.PlayerRunComponent.Kind(), &component.PlayerRun{
		Lives:    spec.Lives,
		MaxLives: spec.Lives,
		SpawnX:   x,
		SpawnY:   y,
	}); err != nil {
		return 0, fmt.Errorf("player: add run state: %w", err)
	}

	return e, nil
}
