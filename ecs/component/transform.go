package component

// Transform places an entity in world space. X and Y are the entity origin,
// which is the shape center unless Shape.AlignTopLeft is set. Rotation is in
// radians, clockwise in screen space.
type Transform struct {
	X        float64
	Y        float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
