package entity

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

var fallbackColor = color.RGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff}

// placeObject creates an entity with the transform, shape and appearance of
// o. The transform origin is the footprint center, or the top-left corner
// when topLeft is set; rotation always pivots on the center.
func placeObject(w *ecs.World, o levels.Object, world prefabs.WorldSpec, topLeft bool) (ecs.Entity, error) {
	width, height := o.Footprint()
	if width <= 0 || height <= 0 {
		return 0, fmt.Errorf("%s: invalid size %vx%v", o.Type, width, height)
	}

	e := ecs.CreateEntity(w)

	tr := &component.Transform{
		X:        o.X + width/2,
		Y:        o.Y + height/2,
		Rotation: common.DegToRad(o.Rotation),
	}
	if topLeft {
		tr.X, tr.Y = o.X, o.Y
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), tr); err != nil {
		return 0, fmt.Errorf("%s: add transform: %w", o.Type, err)
	}

	if err := ecs.Add(w, e, component.ShapeComponent.Kind(), &component.Shape{
		Width:        width,
		Height:       height,
		AlignTopLeft: topLeft,
	}); err != nil {
		return 0, fmt.Errorf("%s: add shape: %w", o.Type, err)
	}

	c := objectColor(o, world)
	if err := ecs.Add(w, e, component.AppearanceComponent.Kind(), &component.Appearance{Color: c, Original: c}); err != nil {
		return 0, fmt.Errorf("%s: add appearance: %w", o.Type, err)
	}

	return e, nil
}

func objectColor(o levels.Object, world prefabs.WorldSpec) color.RGBA {
	if o.Color != "" {
		c, err := common.ParseHexColor(o.Color)
		if err == nil {
			return c
		}
		log.Warn("level: bad color, using default", "object", o.ID, "color", o.Color)
	}
	if c, ok := world.ColorFor(o.Type); ok {
		return c
	}
	return fallbackColor
}

// addBody gives e a collision box matching the rotated footprint.
func addBody(w *ecs.World, e ecs.Entity, kinematic bool) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return fmt.Errorf("body: missing transform")
	}
	s, ok := ecs.Get(w, e, component.ShapeComponent.Kind())
	if !ok {
		return fmt.Errorf("body: missing shape")
	}
	bw, bh := common.RotatedExtents(s.Width, s.Height, t.Rotation)
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:     bw,
		Height:    bh,
		Friction:  1,
		Static:    !kinematic,
		Kinematic: kinematic,
	})
}
