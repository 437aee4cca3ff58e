package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// NewLadder stores the ladder's world bounds once; ladders are never rotated
// for climbing purposes.
func NewLadder(w *ecs.World, o levels.Object, world prefabs.WorldSpec) (ecs.Entity, error) {
	e, err := placeObject(w, o, world, false)
	if err != nil {
		return 0, err
	}
	s, _ := ecs.Get(w, e, component.ShapeComponent.Kind())
	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if err := ecs.Add(w, e, component.LadderComponent.Kind(), &component.Ladder{Bounds: s.Bounds(t)}); err != nil {
		return 0, fmt.Errorf("ladder: add ladder: %w", err)
	}
	return e, nil
}

func NewCheckpoint(w *ecs.World, o levels.Object, world prefabs.WorldSpec) (ecs.Entity, error) {
	e, err := placeObject(w, o, world, false)
	if err != nil {
		return 0, err
	}
	t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	if err := ecs.Add(w, e, component.CheckpointComponent.Kind(), &component.Checkpoint{
		ID: o.ID,
		X:  t.X,
		Y:  t.Y,
	}); err != nil {
		return 0, fmt.Errorf("checkpoint: add checkpoint: %w", err)
	}
	return e, nil
}

func NewEndFlag(w *ecs.World, o levels.Object, world prefabs.WorldSpec) (ecs.Entity, error) {
	e, err := placeObject(w, o, world, false)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.EndFlagComponent.Kind(), &component.EndFlag{}); err != nil {
		return 0, fmt.Errorf("end flag: add flag: %w", err)
	}
	return e, nil
}

func NewStartMarker(w *ecs.World, o levels.Object, world prefabs.WorldSpec) (ecs.Entity, error) {
	e, err := placeObject(w, o, world, false)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.StartMarkerComponent.Kind(), &component.StartMarker{}); err != nil {
		return 0, fmt.Errorf("start position: add marker: %w", err)
	}
	return e, nil
}
