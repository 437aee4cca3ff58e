package component

import "github.com/milk9111/platformer/common"

// Shape is the authored, unrotated footprint of an entity.
type Shape struct {
	Width        float64
	Height       float64
	AlignTopLeft bool
}

// Center returns the rotation pivot of the shape.
func (s Shape) Center(t *Transform) (float64, float64) {
	if t == nil {
		return 0, 0
	}
	if s.AlignTopLeft {
		return t.X + s.Width/2, t.Y + s.Height/2
	}
	return t.X, t.Y
}

func (s Shape) TopLeft(t *Transform) (float64, float64) {
	cx, cy := s.Center(t)
	return cx - s.Width/2, cy - s.Height/2
}

// Bounds ignores rotation.
func (s Shape) Bounds(t *Transform) common.AABB {
	x, y := s.TopLeft(t)
	return common.AABB{X: x, Y: y, W: s.Width, H: s.Height}
}

// RotatedBounds is the axis aligned box enclosing the rotated shape.
func (s Shape) RotatedBounds(t *Transform) common.AABB {
	cx, cy := s.Center(t)
	rot := 0.0
	if t != nil {
		rot = t.Rotation
	}
	return common.RotatedAABB(cx, cy, s.Width, s.Height, rot)
}

// OriginOffset is the vector from the shape's top-left corner to its
// transform origin.
func (s Shape) OriginOffset() (float64, float64) {
	if s.AlignTopLeft {
		return 0, 0
	}
	return s.Width / 2, s.Height / 2
}

var ShapeComponent = NewComponent[Shape]()
