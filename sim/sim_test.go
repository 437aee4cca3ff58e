package sim

import (
	"math"
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

type recorder struct {
	signals   []string
	causes    []string
	lives     [][2]int
	diags     []levels.Diagnostic
	completed []int
	points    [][2]float64
}

func (r *recorder) hooks() Hooks {
	return Hooks{
		LevelComplete: func(i int) {
			r.signals = append(r.signals, "complete")
			r.completed = append(r.completed, i)
		},
		GameOver: func() { r.signals = append(r.signals, "gameover") },
		LivesChanged: func(remaining, maxLives int) {
			r.signals = append(r.signals, "lives")
			r.lives = append(r.lives, [2]int{remaining, maxLives})
		},
		CheckpointActivated: func(x, y float64) {
			r.signals = append(r.signals, "checkpoint")
			r.points = append(r.points, [2]float64{x, y})
		},
		Death: func(cause string) {
			r.signals = append(r.signals, "death")
			r.causes = append(r.causes, cause)
		},
		Diagnostic: func(d levels.Diagnostic) { r.diags = append(r.diags, d) },
	}
}

func testOptions(lives int) Options {
	player := prefabs.DefaultPlayerSpec()
	player.Lives = lives
	return Options{LevelIndex: 3, Player: player, World: prefabs.DefaultWorldSpec()}
}

func newTestSim(t *testing.T, objects []levels.Object, lives int) (*Simulation, *recorder) {
	t.Helper()
	lvl := &levels.Level{WorldWidth: 1000, WorldHeight: 600, Objects: objects}
	lvl.ApplyDefaults()
	rec := &recorder{}
	s, err := New(lvl, testOptions(lives), rec.hooks())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s, rec
}

func stepN(s *Simulation, n int) {
	for i := 0; i < n; i++ {
		s.Step(0)
	}
}

func TestFallingOffTheMapEndsTheGame(t *testing.T) {
	s, rec := newTestSim(t, nil, 1)

	stepN(s, 600)

	snap := s.Snapshot()
	if !snap.GameOver || snap.Lives != 0 || snap.Deaths != 1 {
		t.Fatalf("expected game over after one fall, got %+v", snap)
	}
	want := []string{"death", "lives", "gameover"}
	if len(rec.signals) != len(want) {
		t.Fatalf("expected signals %v, got %v", want, rec.signals)
	}
	for i := range want {
		if rec.signals[i] != want[i] {
			t.Fatalf("expected signals %v, got %v", want, rec.signals)
		}
	}
	if rec.causes[0] != "Fell off map" || rec.lives[0] != [2]int{0, 1} {
		t.Fatalf("unexpected death payloads %v %v", rec.causes, rec.lives)
	}

	tick := snap.Tick
	if s.Step(0) {
		t.Fatalf("halted simulation should not step")
	}
	if s.Snapshot().Tick != tick {
		t.Fatalf("tick advanced after game over")
	}
}

func TestFallRespawnsAtSpawn(t *testing.T) {
	s, rec := newTestSim(t, nil, 3)

	for i := 0; i < 600 && len(rec.causes) == 0; i++ {
		s.Step(0)
	}
	if len(rec.causes) != 1 {
		t.Fatalf("expected one death, got %v", rec.causes)
	}
	snap := s.Snapshot()
	if snap.GameOver || snap.Lives != 2 {
		t.Fatalf("expected 2 lives left, got %+v", snap)
	}
	if snap.PlayerX != 100 || snap.PlayerY != 450 || snap.VelocityY != 0 {
		t.Fatalf("expected respawn at (100,450) at rest, got (%v,%v) vy %v", snap.PlayerX, snap.PlayerY, snap.VelocityY)
	}
}

func TestPlayerLandsOnPlatform(t *testing.T) {
	s, _ := newTestSim(t, []levels.Object{
		{ID: "floor", Type: levels.TypePlatform, X: 0, Y: 500, Width: 400, Height: 40},
	}, 3)

	stepN(s, 120)

	snap := s.Snapshot()
	if snap.Support.Kind != component.Grounded {
		t.Fatalf("expected grounded player, got %s", snap.Support.Kind)
	}
	if math.Abs(snap.PlayerY-485) > 2 {
		t.Fatalf("expected player resting at y≈485, got %v", snap.PlayerY)
	}
	if snap.Deaths != 0 {
		t.Fatalf("unexpected deaths %d", snap.Deaths)
	}
}

func TestSignalsForCheckpointAndEndFlag(t *testing.T) {
	s, rec := newTestSim(t, []levels.Object{
		{ID: "cp", Type: levels.TypeCheckpoint, X: 85, Y: 425, Width: 30, Height: 50},
		{ID: "end", Type: levels.TypeEndFlag, X: 80, Y: 420, Width: 40, Height: 60},
	}, 3)

	if !s.Step(0) {
		t.Fatalf("first step should tick")
	}
	if len(rec.points) != 1 || rec.points[0] != [2]float64{100, 450} {
		t.Fatalf("expected checkpoint at (100,450), got %v", rec.points)
	}
	if len(rec.completed) != 1 || rec.completed[0] != 3 {
		t.Fatalf("expected completion of level 3, got %v", rec.completed)
	}
	if !s.Halted() || s.Step(0) {
		t.Fatalf("simulation should halt after completion")
	}
}

func TestLoadDiagnosticsAreDelivered(t *testing.T) {
	_, rec := newTestSim(t, []levels.Object{
		{ID: "orphan", Type: levels.TypeSpike, ParentID: "missing"},
	}, 3)

	if len(rec.diags) != 1 || rec.diags[0].Kind != levels.DiagnosticDanglingParent {
		t.Fatalf("expected one dangling parent diagnostic, got %v", rec.diags)
	}
}

func TestPauseAndRestart(t *testing.T) {
	s, _ := newTestSim(t, nil, 3)
	stepN(s, 10)

	s.SetPaused(true)
	if s.Step(0) {
		t.Fatalf("paused simulation should not step")
	}
	if got := s.Snapshot().Tick; got != 10 {
		t.Fatalf("expected tick 10, got %d", got)
	}
	s.SetPaused(false)

	old := s.World()
	fired := false
	old.Timers().Schedule(0, s.Report().Player, 0, func(*ecs.World, ecs.Entity, uint32) { fired = true })

	if err := s.Restart(); err != nil {
		t.Fatalf("Restart failed: %v", err)
	}
	snap := s.Snapshot()
	if snap.Tick != 0 || snap.PlayerY != 450 || snap.Lives != 3 {
		t.Fatalf("restart should rebuild the level, got %+v", snap)
	}
	if s.World().Timers().Len() != 0 {
		t.Fatalf("restart should drop pending timers")
	}
	if old.Timers().Len() != 0 {
		t.Fatalf("restart should cancel timers left on the old world")
	}
	old.Timers().Advance(old, 10)
	if fired {
		t.Fatalf("cancelled timer fired")
	}
}

func TestSetInputMovesPlayer(t *testing.T) {
	s, _ := newTestSim(t, []levels.Object{
		{ID: "floor", Type: levels.TypePlatform, X: 0, Y: 500, Width: 800, Height: 40},
	}, 3)
	stepN(s, 60)
	x := s.Snapshot().PlayerX

	s.SetInput(component.Input{MoveX: 1})
	stepN(s, 30)

	if got := s.Snapshot().PlayerX; got <= x+20 {
		t.Fatalf("expected the player to walk right from %v, got %v", x, got)
	}
}

func TestCameraOnlyWithView(t *testing.T) {
	s, _ := newTestSim(t, nil, 3)
	if _, ok := s.Camera(); ok {
		t.Fatalf("expected no camera without a view size")
	}

	lvl := &levels.Level{WorldWidth: 1000, WorldHeight: 600}
	lvl.ApplyDefaults()
	opts := testOptions(3)
	opts.ViewWidth, opts.ViewHeight = 640, 360
	s, err := New(lvl, opts, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	cam, ok := s.Camera()
	if !ok {
		t.Fatalf("expected a camera entity")
	}
	if _, ok := ecs.Get(s.World(), cam, component.CameraComponent.Kind()); !ok {
		t.Fatalf("camera entity has no Camera component")
	}
}

func entityPos(t *testing.T, s *Simulation, id string) (float64, float64) {
	t.Helper()
	e, ok := s.Report().Entities[id]
	if !ok {
		t.Fatalf("no entity for %q", id)
	}
	tr, ok := ecs.Get(s.World(), e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("%q has no transform", id)
	}
	return tr.X, tr.Y
}

func TestRiderTravelsWithMovingPlatform(t *testing.T) {
	s, _ := newTestSim(t, []levels.Object{
		{ID: "mover", Type: levels.TypeMovingPlatform, X: 40, Y: 470, Width: 120, Height: 20, MoveDistance: 400, MoveSpeed: 1, MoveMode: levels.MoveModeLoop},
	}, 3)
	stepN(s, 20)

	snap := s.Snapshot()
	if snap.Support.Kind != component.OnMovingPlatform {
		t.Fatalf("expected the player to land on the mover, got %s", snap.Support.Kind)
	}
	startPlayer := snap.PlayerX
	startMover, _ := entityPos(t, s, "mover")

	stepN(s, 100)

	snap = s.Snapshot()
	moverX, _ := entityPos(t, s, "mover")
	if moverX-startMover < 90 {
		t.Fatalf("expected the mover to travel about 100px, got %v", moverX-startMover)
	}
	if got, want := snap.PlayerX-startPlayer, moverX-startMover; math.Abs(got-want) > 1 {
		t.Fatalf("expected rider to move %v with the platform, moved %v", want, got)
	}
	if snap.Support.Kind != component.OnMovingPlatform || snap.Support.Entity != uint64(s.Report().Entities["mover"]) {
		t.Fatalf("expected to still ride the mover, got %+v", snap.Support)
	}
	if snap.Deaths != 0 {
		t.Fatalf("unexpected deaths %d", snap.Deaths)
	}
}

func TestRiderStaysOnElevator(t *testing.T) {
	s, _ := newTestSim(t, []levels.Object{
		{ID: "lift", Type: levels.TypeMovingPlatform, X: 40, Y: 470, Width: 120, Height: 20, Rotation: -90, MoveDistance: 150, MoveSpeed: 1, MoveMode: levels.MoveModeLoop},
	}, 3)

	lift := s.Report().Entities["lift"]
	body, _ := ecs.Get(s.World(), lift, component.PhysicsBodyComponent.Kind())
	if math.Abs(body.Width-120) > 1e-9 || math.Abs(body.Height-20) > 1e-9 {
		t.Fatalf("expected the lift body to keep its 120x20 size, got %vx%v", body.Width, body.Height)
	}

	highest := math.Inf(1)
	for i := 0; i < 240; i++ {
		s.Step(0)
		if i < 20 {
			continue
		}
		snap := s.Snapshot()
		if snap.Support.Kind != component.OnMovingPlatform {
			t.Fatalf("tick %d: expected to ride the lift, got %s", snap.Tick, snap.Support.Kind)
		}
		_, ly := entityPos(t, s, "lift")
		if gap := (ly - 10) - (snap.PlayerY + 15); math.Abs(gap) > 2 {
			t.Fatalf("tick %d: rider %vpx off the lift top", snap.Tick, gap)
		}
		highest = math.Min(highest, ly)
	}
	if _, ly := entityPos(t, s, "lift"); ly >= 480 || highest > 340 {
		t.Fatalf("expected the lift to climb, highest center %v, now %v", highest, ly)
	}
	if s.Snapshot().Deaths != 0 {
		t.Fatalf("unexpected deaths on the lift")
	}
}

func TestRidingAttachedPlatformCountsAsParent(t *testing.T) {
	s, _ := newTestSim(t, []levels.Object{
		{ID: "m", Type: levels.TypeMovingPlatform, X: 0, Y: 560, Width: 200, Height: 20, MoveDistance: 400, MoveSpeed: 1},
		{ID: "deck", Type: levels.TypePlatform, ParentID: "m", RelativeX: 40, RelativeY: -90, Width: 120, Height: 20},
	}, 3)
	stepN(s, 20)
	startX := s.Snapshot().PlayerX
	deckX, _ := entityPos(t, s, "deck")

	stepN(s, 60)

	snap := s.Snapshot()
	if snap.Support.Kind != component.OnMovingPlatform || snap.Support.Entity != uint64(s.Report().Entities["m"]) {
		t.Fatalf("expected support on the parent mover, got %+v", snap.Support)
	}
	nowDeck, _ := entityPos(t, s, "deck")
	if got, want := snap.PlayerX-startX, nowDeck-deckX; math.Abs(got-want) > 1 {
		t.Fatalf("expected rider to move %v with the deck, moved %v", want, got)
	}
}
