// Package sim wraps a level's ECS world and its system schedule behind the
// small surface a host needs: step, restart, pause, input and signals.
package sim

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/ecs/system"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

// Options configures a simulation. A zero ViewWidth or ViewHeight means no
// camera entity is created.
type Options struct {
	LevelIndex int
	Player     prefabs.PlayerSpec
	World      prefabs.WorldSpec
	ViewWidth  float64
	ViewHeight float64
}

// DefaultOptions uses the embedded prefab specs for level 1.
func DefaultOptions() Options {
	load := entity.DefaultLoadOptions()
	return Options{LevelIndex: load.LevelIndex, Player: load.Player, World: load.World}
}

type Simulation struct {
	level    *levels.Level
	opts     Options
	listener Listener

	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	report    *entity.LoadReport
	camera    ecs.Entity
	paused    bool
}

// New builds a simulation for lvl. Load diagnostics are delivered to l
// before New returns.
func New(lvl *levels.Level, opts Options, l Listener) (*Simulation, error) {
	if lvl == nil {
		return nil, fmt.Errorf("sim: nil level")
	}
	if opts.World.FixedStep <= 0 {
		opts.World.FixedStep = prefabs.DefaultWorldSpec().FixedStep
	}
	s := &Simulation{level: lvl, opts: opts, listener: l}
	if err := s.build(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Simulation) build() error {
	w := ecs.NewWorld()
	report, err := entity.LoadLevelToWorld(w, s.level, entity.LoadOptions{
		LevelIndex: s.opts.LevelIndex,
		Player:     s.opts.Player,
		World:      s.opts.World,
	})
	if err != nil {
		return fmt.Errorf("sim: load level: %w", err)
	}

	s.camera = 0
	if s.opts.ViewWidth > 0 && s.opts.ViewHeight > 0 {
		x, y := s.spawn(w, report.Player)
		cam, err := entity.NewCamera(w, x, y, s.opts.ViewWidth, s.opts.ViewHeight)
		if err != nil {
			return fmt.Errorf("sim: create camera: %w", err)
		}
		s.camera = cam
	}

	if s.world != nil {
		s.world.Timers().Clear()
	}
	s.world = w
	s.report = report
	s.physics = system.NewPhysicsSystem(s.opts.Player.Gravity)
	s.scheduler = NewSchedule(s.physics, s.opts.World)

	dispatch(s.listener, w.Events().Drain())
	return nil
}

func (s *Simulation) spawn(w *ecs.World, player ecs.Entity) (float64, float64) {
	if run, ok := ecs.Get(w, player, component.PlayerRunComponent.Kind()); ok {
		return run.SpawnX, run.SpawnY
	}
	return s.opts.World.SpawnX, s.opts.World.SpawnY
}

// NewSchedule returns the per-tick system order. Platforms move and carry
// their children before physics and every contact test.
func NewSchedule(physics *system.PhysicsSystem, world prefabs.WorldSpec) *ecs.Scheduler {
	return ecs.NewScheduler(
		system.NewClockSystem(),
		system.NewLadderSystem(),
		system.NewPlayerControllerSystem(),
		system.NewMovingPlatformSystem(),
		system.NewAttachmentSystem(),
		physics,
		system.NewHazardSystem(),
		system.NewCheckpointSystem(),
		system.NewPlatformEffectSystem().WithColors(world),
		system.NewFallSystem(),
		system.NewEndFlagSystem(),
		system.NewDeathSystem(),
		system.NewCameraSystem(),
	)
}

// Step advances the simulation by one tick of dt seconds. A non-positive dt
// uses the configured fixed step. It returns false, without ticking, while
// paused or once the run has ended.
func (s *Simulation) Step(dt float64) bool {
	if s == nil || s.paused || s.Halted() {
		return false
	}
	if dt <= 0 {
		dt = s.opts.World.FixedStep
	}
	if e, ok := s.world.First(component.ClockComponent.Kind()); ok {
		clock, _ := ecs.Get(s.world, e, component.ClockComponent.Kind())
		clock.Dt = dt
	}
	s.scheduler.Update(s.world)
	dispatch(s.listener, s.world.Events().Drain())
	return true
}

// Restart rebuilds the level from scratch: fresh world, fresh physics space,
// full lives. Pending effect timers on the old world are cancelled.
func (s *Simulation) Restart() error {
	if s == nil {
		return fmt.Errorf("sim: nil simulation")
	}
	log.Info("sim: restart", "level", s.opts.LevelIndex)
	paused := s.paused
	if err := s.build(); err != nil {
		return err
	}
	s.paused = paused
	return nil
}

// Reload swaps in a new level and restarts.
func (s *Simulation) Reload(lvl *levels.Level) error {
	if lvl == nil {
		return fmt.Errorf("sim: nil level")
	}
	s.level = lvl
	return s.Restart()
}

func (s *Simulation) SetPaused(paused bool) {
	if s != nil {
		s.paused = paused
	}
}

func (s *Simulation) Paused() bool {
	return s != nil && s.paused
}

// Halted reports whether the run ended in a completion or a game over.
func (s *Simulation) Halted() bool {
	run, ok := s.run()
	return ok && run.Halted()
}

// SetInput replaces the player's input for the next tick.
func (s *Simulation) SetInput(in component.Input) {
	if s == nil {
		return
	}
	if input, ok := ecs.Get(s.world, s.report.Player, component.InputComponent.Kind()); ok {
		*input = in
	}
}

func (s *Simulation) World() *ecs.World {
	if s == nil {
		return nil
	}
	return s.world
}

func (s *Simulation) Physics() *system.PhysicsSystem {
	if s == nil {
		return nil
	}
	return s.physics
}

// Camera returns the camera entity when the simulation was built with a view.
func (s *Simulation) Camera() (ecs.Entity, bool) {
	if s == nil || s.camera == 0 {
		return 0, false
	}
	return s.camera, true
}

func (s *Simulation) Report() *entity.LoadReport {
	if s == nil {
		return nil
	}
	return s.report
}

func (s *Simulation) Level() *levels.Level {
	if s == nil {
		return nil
	}
	return s.level
}

func (s *Simulation) run() (*component.PlayerRun, bool) {
	if s == nil || s.world == nil || s.report == nil {
		return nil, false
	}
	return ecs.Get(s.world, s.report.Player, component.PlayerRunComponent.Kind())
}
