package component

type HazardKind int

const (
	HazardDeadlyFloor HazardKind = iota
	HazardSpike
	HazardTrap
)

func (k HazardKind) String() string {
	switch k {
	case HazardSpike:
		return "spike"
	case HazardTrap:
		return "trap"
	default:
		return "deadly-floor"
	}
}

// Hazard kills the player on contact. Its footprint comes from the entity's
// Shape and Transform.
type Hazard struct {
	Kind HazardKind
}

var HazardComponent = NewComponent[Hazard]()

// SpikeStrip describes a row of triangular spikes along the shape width.
type SpikeStrip struct {
	Count int
	Size  float64
}

var SpikeStripComponent = NewComponent[SpikeStrip]()
