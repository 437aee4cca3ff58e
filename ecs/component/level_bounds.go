package component

// LevelBounds stores the world-space bounds of the current level and the Y
// below which the player has fallen out of it.
type LevelBounds struct {
	Index  int
	Width  float64
	Height float64
	DeathY float64
}

var LevelBoundsComponent = NewComponent[LevelBounds]()
