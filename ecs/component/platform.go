package component

// Platform is a solid surface the player can stand on. Sticky and Hot are
// set while a trigger effect of that type is active.
type Platform struct {
	Moving bool
	Sticky bool
	Hot    bool
}

var PlatformComponent = NewComponent[Platform]()
