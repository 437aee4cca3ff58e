package common

import "math"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

func RadToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// Distance returns the euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// RotatePoint rotates (px, py) by angle radians around (cx, cy).
func RotatePoint(px, py, cx, cy, angle float64) (float64, float64) {
	sin, cos := math.Sincos(angle)
	dx := px - cx
	dy := py - cy
	return cx + dx*cos - dy*sin, cy + dx*sin + dy*cos
}
