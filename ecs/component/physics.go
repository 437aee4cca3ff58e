package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Width and Height describe the collision box, which for rotated shapes is
// the rotated bounding box centered on the shape's pivot.
type PhysicsBody struct {
	Body            *cp.Body
	Shape           *cp.Shape
	Width           float64
	Height          float64
	Mass            float64
	Friction        float64
	Elasticity      float64
	Static          bool
	Kinematic       bool
	GravityDisabled bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

// Velocity is the per-second displacement the kinematic engine applied to an
// entity on the current tick.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()
