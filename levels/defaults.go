package levels

const (
	DefaultWorldWidth  = 2400
	DefaultWorldHeight = 600

	DefaultMoveDistance          = 200
	DefaultMoveSpeed             = 2
	DefaultTriggerDistance       = 200
	DefaultSpikeCount            = 5
	DefaultSpikeSize             = 30
	DefaultEffectTriggerDistance = 200
	DefaultEffectTimeout         = 3
)

// default footprints for marker objects placed without a size
var markerSizes = map[string][2]float64{
	TypeStartPosition: {40, 40},
	TypeEndFlag:       {40, 60},
	TypeCheckpoint:    {30, 50},
}

// ApplyDefaults fills every unset optional field. It is idempotent.
func (l *Level) ApplyDefaults() {
	if l == nil {
		return
	}
	if l.WorldWidth <= 0 {
		l.WorldWidth = DefaultWorldWidth
	}
	if l.WorldHeight <= 0 {
		l.WorldHeight = DefaultWorldHeight
	}
	for i := range l.Objects {
		l.Objects[i].applyDefaults()
	}
}

func (o *Object) applyDefaults() {
	switch o.Type {
	case TypeSpike:
		if o.SpikeCount <= 0 {
			o.SpikeCount = DefaultSpikeCount
		}
		if o.SpikeSize <= 0 {
			o.SpikeSize = DefaultSpikeSize
		}
	case TypeMovingPlatform:
		if o.MoveDistance <= 0 {
			o.MoveDistance = DefaultMoveDistance
		}
		if o.MoveSpeed <= 0 {
			o.MoveSpeed = DefaultMoveSpeed
		}
		if o.MoveMode == "" {
			o.MoveMode = MoveModeLoop
		}
		if o.TriggerDistance <= 0 {
			o.TriggerDistance = DefaultTriggerDistance
		}
	case TypeStartPosition, TypeEndFlag, TypeCheckpoint:
		size := markerSizes[o.Type]
		if o.Width <= 0 {
			o.Width = size[0]
		}
		if o.Height <= 0 {
			o.Height = size[1]
		}
	}

	if o.HasTriggerEffect {
		if o.EffectTriggerDistance <= 0 {
			o.EffectTriggerDistance = DefaultEffectTriggerDistance
		}
		if o.EffectType == "" {
			o.EffectType = EffectCollapse
		}
		if o.EffectTimeout <= 0 {
			o.EffectTimeout = DefaultEffectTimeout
		}
	}
}
