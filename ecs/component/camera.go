package component

// Camera is the host viewport. Its Transform is the world position of the
// view's top-left corner.
type Camera struct {
	Zoom       float64
	Smoothness float64
	ViewWidth  float64
	ViewHeight float64
}

var CameraComponent = NewComponent[Camera]()
