package component

type EffectType int

const (
	EffectCollapse EffectType = iota
	EffectSticky
	EffectHot
)

func (t EffectType) String() string {
	switch t {
	case EffectSticky:
		return "sticky"
	case EffectHot:
		return "hot"
	default:
		return "collapse"
	}
}

// PlatformEffect is the armed → triggered → active latch of a platform with
// a delayed effect. Arm increments on every reset so timers scheduled before
// the reset can tell they are stale.
type PlatformEffect struct {
	Type            EffectType
	TriggerDistance float64
	Timeout         float64
	Triggered       bool
	Active          bool
	Arm             uint32
}

var PlatformEffectComponent = NewComponent[PlatformEffect]()

// PlatformEffectRuntime caches the physics body removed by a collapse so a
// reset can put it back.
type PlatformEffectRuntime struct {
	Initialized     bool
	HasPhysicsBody  bool
	PhysicsTemplate PhysicsBody
}

var PlatformEffectRuntimeComponent = NewComponent[PlatformEffectRuntime]()
