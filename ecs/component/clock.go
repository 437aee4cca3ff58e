package component

// Clock is the simulation time source. Dt is set by the host before each
// tick; Elapsed and Tick advance inside the tick.
type Clock struct {
	Dt      float64
	Elapsed float64
	Tick    uint64
}

var ClockComponent = NewComponent[Clock]()
