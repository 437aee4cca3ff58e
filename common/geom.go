package common

import "math"

// NearZeroRotationDeg is the rotation below which a shape is treated as
// axis aligned by the exact hazard test.
const NearZeroRotationDeg = 1.0

// AABB is an axis aligned box with a top-left origin.
type AABB struct {
	X float64
	Y float64
	W float64
	H float64
}

func AABBFromCenter(cx, cy, w, h float64) AABB {
	return AABB{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

func (b AABB) Right() float64  { return b.X + b.W }
func (b AABB) Bottom() float64 { return b.Y + b.H }

func (b AABB) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Overlaps reports a strict overlap; touching edges do not count.
func (b AABB) Overlaps(o AABB) bool {
	return b.X < o.X+o.W && b.X+b.W > o.X && b.Y < o.Y+o.H && b.Y+b.H > o.Y
}

// Contains is inclusive on every edge.
func (b AABB) Contains(px, py float64) bool {
	return px >= b.X && px <= b.X+b.W && py >= b.Y && py <= b.Y+b.H
}

// RotatedExtents returns the size of the axis aligned box enclosing a w×h
// rectangle rotated by angle radians.
func RotatedExtents(w, h, angle float64) (float64, float64) {
	sin, cos := math.Abs(math.Sin(angle)), math.Abs(math.Cos(angle))
	return w*cos + h*sin, w*sin + h*cos
}

// RotatedAABB is the enclosing box of a w×h rectangle rotated around its
// center (cx, cy).
func RotatedAABB(cx, cy, w, h, angle float64) AABB {
	rw, rh := RotatedExtents(w, h, angle)
	return AABBFromCenter(cx, cy, rw, rh)
}

// PointInRotatedRect tests (px, py) against a w×h rectangle centered at
// (cx, cy) and rotated by angle radians. Shapes within
// NearZeroRotationDeg of axis aligned always pass; callers are expected to
// have run a broad-phase box test first.
func PointInRotatedRect(px, py, cx, cy, w, h, angle float64) bool {
	if math.Abs(RadToDeg(angle)) < NearZeroRotationDeg {
		return true
	}
	lx, ly := RotatePoint(px, py, cx, cy, -angle)
	return math.Abs(lx-cx) <= w/2 && math.Abs(ly-cy) <= h/2
}
