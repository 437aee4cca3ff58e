package entity

import (
	"fmt"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

func NewDeadlyFloor(w *ecs.World, o levels.Object, world prefabs.WorldSpec) (ecs.Entity, error) {
	return newHazard(w, o, world, component.HazardDeadlyFloor, false)
}

func NewTrap(w *ecs.World, o levels.Object, world prefabs.WorldSpec) (ecs.Entity, error) {
	return newHazard(w, o, world, component.HazardTrap, false)
}

// NewSpikeStrip builds a row of SpikeCount spikes, SpikeSize wide and tall
// each. Unrotated strips keep their origin at the top-left corner.
func NewSpikeStrip(w *ecs.World, o levels.Object, world prefabs.WorldSpec) (ecs.Entity, error) {
	e, err := newHazard(w, o, world, component.HazardSpike, o.Rotation == 0)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.SpikeStripComponent.Kind(), &component.SpikeStrip{
		Count: o.SpikeCount,
		Size:  o.SpikeSize,
	}); err != nil {
		return 0, fmt.Errorf("spike: add strip: %w", err)
	}
	return e, nil
}

func newHazard(w *ecs.World, o levels.Object, world prefabs.WorldSpec, kind component.HazardKind, topLeft bool) (ecs.Entity, error) {
	e, err := placeObject(w, o, world, topLeft)
	if err != nil {
		return 0, err
	}
	if err := ecs.Add(w, e, component.HazardComponent.Kind(), &component.Hazard{Kind: kind}); err != nil {
		return 0, fmt.Errorf("%s: add hazard: %w", kind, err)
	}
	return e, nil
}
