package levels

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
)

// Object types understood by the loader.
const (
	TypePlatform       = "platform"
	TypeMovingPlatform = "moving-platform"
	TypeDeadlyFloor    = "deadly-floor"
	TypeSpike          = "spike"
	TypeTrap           = "trap"
	TypeLadder         = "ladder"
	TypeStartPosition  = "start-position"
	TypeEndFlag        = "end-flag"
	TypeCheckpoint     = "checkpoint"
)

const (
	MoveModeLoop = "loop"
	MoveModeOnce = "once"

	EffectCollapse = "collapse"
	EffectSticky   = "sticky"
	EffectHot      = "hot"
)

// Level is the declarative description of a level as exported by the editor.
type Level struct {
	WorldWidth  float64  `json:"worldWidth"`
	WorldHeight float64  `json:"worldHeight"`
	Objects     []Object `json:"objects"`
}

// Object is one placed level object. X and Y are the top-left corner of the
// unrotated footprint. Numeric fields left at zero take the defaults applied
// by ApplyDefaults.
type Object struct {
	ID       string  `json:"id,omitempty"`
	Name     string  `json:"name,omitempty"`
	Type     string  `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Color    string  `json:"color,omitempty"`
	Rotation float64 `json:"rotation,omitempty"`

	SpikeCount int     `json:"spikeCount,omitempty"`
	SpikeSize  float64 `json:"spikeSize,omitempty"`

	ParentID  string  `json:"parentId,omitempty"`
	RelativeX float64 `json:"relativeX,omitempty"`
	RelativeY float64 `json:"relativeY,omitempty"`

	MoveDistance    float64 `json:"moveDistance,omitempty"`
	MoveSpeed       float64 `json:"moveSpeed,omitempty"`
	MoveMode        string  `json:"moveMode,omitempty"`
	RequireTrigger  bool    `json:"requireTrigger,omitempty"`
	TriggerDistance float64 `json:"triggerDistance,omitempty"`
	ResetOnDeath    bool    `json:"resetOnDeath,omitempty"`

	HasTriggerEffect      bool    `json:"hasTriggerEffect,omitempty"`
	EffectTriggerDistance float64 `json:"effectTriggerDistance,omitempty"`
	EffectType            string  `json:"effectType,omitempty"`
	EffectTimeout         float64 `json:"effectTimeout,omitempty"`
}

// Footprint returns the unrotated width and height of the object. Spikes
// derive theirs from the spike count and size.
func (o Object) Footprint() (float64, float64) {
	if o.Type == TypeSpike {
		return float64(o.SpikeCount) * o.SpikeSize, o.SpikeSize
	}
	return o.Width, o.Height
}

func (o Object) Attached() bool {
	return o.ParentID != ""
}

// Parse decodes a level file. Defaults are not applied.
func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal level: %w", err)
	}
	return &lvl, nil
}

// LoadFile reads, parses and defaults a level from disk.
func LoadFile(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	lvl, err := Parse(data)
	if err != nil {
		return nil, err
	}
	lvl.ApplyDefaults()
	return lvl, nil
}

// Start returns the first start-position object.
func (l *Level) Start() (Object, bool) {
	for _, o := range l.Objects {
		if o.Type == TypeStartPosition && !o.Attached() {
			return o, true
		}
	}
	return Object{}, false
}

// DeathBoundary is the Y below which the player has fallen out of the level:
// the lower of the world floor and the lowest placed object, plus margin.
func (l *Level) DeathBoundary(margin float64) float64 {
	lowest := l.WorldHeight
	for _, o := range l.Objects {
		if o.Attached() {
			continue
		}
		w, h := o.Footprint()
		rad := o.Rotation * math.Pi / 180
		var bottom float64
		if o.Type == TypeMovingPlatform {
			// axis aligned body, lowest point of the path
			bottom = o.Y + h + math.Max(0, math.Sin(rad)*o.MoveDistance)
		} else {
			rh := w*math.Abs(math.Sin(rad)) + h*math.Abs(math.Cos(rad))
			bottom = o.Y + h/2 + rh/2
		}
		if bottom > lowest {
			lowest = bottom
		}
	}
	return lowest + margin
}
