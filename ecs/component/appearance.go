package component

import "image/color"

// Appearance is what a host renderer needs to draw an entity. Original is the
// authored color so effects can be undone.
type Appearance struct {
	Color    color.RGBA
	Original color.RGBA
	Hidden   bool
}

var AppearanceComponent = NewComponent[Appearance]()
