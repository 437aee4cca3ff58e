package prefabs

import (
	"fmt"
	"image/color"

	"github.com/milk9111/platformer/common"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name         string       `yaml:"name"`
	MoveSpeed    float64      `yaml:"move_speed"`
	JumpSpeed    float64      `yaml:"jump_speed"`
	ClimbSpeed   float64      `yaml:"climb_speed"`
	StickyFactor float64      `yaml:"sticky_factor"`
	Gravity      float64      `yaml:"gravity"`
	Lives        int          `yaml:"lives"`
	Collider     ColliderSpec `yaml:"collider"`
	Color        *YAMLColor   `yaml:"color"`
}

type ColliderSpec struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`
}

// DefaultPlayerSpec mirrors player.yaml and backs any field the file omits.
func DefaultPlayerSpec() PlayerSpec {
	return PlayerSpec{
		Name:         "player",
		MoveSpeed:    200,
		JumpSpeed:    330,
		ClimbSpeed:   150,
		StickyFactor: 0.3,
		Gravity:      1000,
		Lives:        10,
		Collider:     ColliderSpec{Width: 14, Height: 30, Mass: 1},
	}
}

func LoadPlayerSpec() (PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return DefaultPlayerSpec(), err
	}
	spec.fill(DefaultPlayerSpec())
	return spec, nil
}

func (s *PlayerSpec) fill(d PlayerSpec) {
	if s.MoveSpeed <= 0 {
		s.MoveSpeed = d.MoveSpeed
	}
	if s.JumpSpeed <= 0 {
		s.JumpSpeed = d.JumpSpeed
	}
	if s.ClimbSpeed <= 0 {
		s.ClimbSpeed = d.ClimbSpeed
	}
	if s.StickyFactor <= 0 {
		s.StickyFactor = d.StickyFactor
	}
	if s.Gravity == 0 {
		s.Gravity = d.Gravity
	}
	if s.Lives <= 0 {
		s.Lives = d.Lives
	}
	if s.Collider.Width <= 0 || s.Collider.Height <= 0 {
		s.Collider.Width = d.Collider.Width
		s.Collider.Height = d.Collider.Height
	}
	if s.Collider.Mass <= 0 {
		s.Collider.Mass = d.Collider.Mass
	}
}

// WorldSpec holds the rules shared by every level.
type WorldSpec struct {
	SpawnX      float64               `yaml:"spawn_x"`
	SpawnY      float64               `yaml:"spawn_y"`
	DeathMargin float64               `yaml:"death_margin"`
	StickyGap   float64               `yaml:"sticky_gap"`
	FixedStep   float64               `yaml:"fixed_step"`
	Colors      map[string]*YAMLColor `yaml:"colors"`
}

func DefaultWorldSpec() WorldSpec {
	return WorldSpec{
		SpawnX:      100,
		SpawnY:      450,
		DeathMargin: 200,
		StickyGap:   5,
		FixedStep:   1.0 / 60.0,
	}
}

func LoadWorldSpec() (WorldSpec, error) {
	spec, err := LoadSpec[WorldSpec]("world.yaml")
	if err != nil {
		return DefaultWorldSpec(), err
	}
	d := DefaultWorldSpec()
	if spec.SpawnX == 0 && spec.SpawnY == 0 {
		spec.SpawnX, spec.SpawnY = d.SpawnX, d.SpawnY
	}
	if spec.DeathMargin <= 0 {
		spec.DeathMargin = d.DeathMargin
	}
	if spec.StickyGap <= 0 {
		spec.StickyGap = d.StickyGap
	}
	if spec.FixedStep <= 0 {
		spec.FixedStep = d.FixedStep
	}
	return spec, nil
}

// ColorFor returns the configured default color for an object type.
func (s WorldSpec) ColorFor(objectType string) (color.RGBA, bool) {
	c, ok := s.Colors[objectType]
	if !ok || c == nil || c.Color == nil {
		return color.RGBA{}, false
	}
	return color.RGBAModel.Convert(c.Color).(color.RGBA), true
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	rgba, err := common.ParseHexColor(value.Value)
	if err != nil {
		return err
	}
	c.Color = rgba
	return nil
}
