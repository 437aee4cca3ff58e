package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

func TestCheckpointActivatesOnce(t *testing.T) {
	w, report := loadWorld(t, []levels.Object{
		{ID: "c1", Type: levels.TypeCheckpoint, X: 300, Y: 400, Width: 40, Height: 60},
		{ID: "c2", Type: levels.TypeCheckpoint, X: 700, Y: 400, Width: 40, Height: 60},
	})
	run := runOf(t, w, report.Player)
	system := NewCheckpointSystem()

	movePlayer(t, w, report.Player, 320, 430)
	for i := 0; i < 5; i++ {
		system.Update(w)
	}
	events := eventsOf(w.Events().Drain(), ecs.EventCheckpointActivated)
	if len(events) != 1 {
		t.Fatalf("expected one activation event, got %d", len(events))
	}
	if run.CurrentCheckpoint == nil || run.CurrentCheckpoint.X != 320 || run.CurrentCheckpoint.Y != 430 {
		t.Fatalf("unexpected checkpoint %+v", run.CurrentCheckpoint)
	}

	movePlayer(t, w, report.Player, 720, 430)
	system.Update(w)
	if ecs.Entity(run.CurrentCheckpoint.Entity) != report.Entities["c2"] {
		t.Fatalf("second checkpoint should take over")
	}

	// walking back through an already active checkpoint changes nothing
	movePlayer(t, w, report.Player, 320, 430)
	system.Update(w)
	if ecs.Entity(run.CurrentCheckpoint.Entity) != report.Entities["c2"] {
		t.Fatalf("re-entering an active checkpoint must not move the anchor")
	}
	cp, _ := ecs.Get(w, report.Entities["c1"], component.CheckpointComponent.Kind())
	if ActivateCheckpoint(w, run, report.Entities["c1"], cp) {
		t.Fatalf("ActivateCheckpoint should refuse an active checkpoint")
	}
}

func TestFallSystem(t *testing.T) {
	w, report := loadWorld(t, nil)
	bounds, _ := ecs.Get(w, report.Level, component.LevelBoundsComponent.Kind())

	movePlayer(t, w, report.Player, 100, bounds.DeathY)
	NewFallSystem().Update(w)
	if ecs.Has(w, report.Player, component.DeathRequestComponent.Kind()) {
		t.Fatalf("player exactly on the boundary should survive")
	}

	movePlayer(t, w, report.Player, 100, bounds.DeathY+1)
	NewFallSystem().Update(w)
	req, ok := ecs.Get(w, report.Player, component.DeathRequestComponent.Kind())
	if !ok || req.Cause != "Fell off map" {
		t.Fatalf("expected fall death, got %+v ok=%v", req, ok)
	}
}

func TestEndFlagCompletesLevel(t *testing.T) {
	w, report := loadWorld(t, []levels.Object{
		{ID: "end", Type: levels.TypeEndFlag, X: 800, Y: 400, Width: 40, Height: 80},
	})
	run := runOf(t, w, report.Player)

	movePlayer(t, w, report.Player, 820, 440)
	NewEndFlagSystem().Update(w)
	NewEndFlagSystem().Update(w)

	events := eventsOf(w.Events().Drain(), ecs.EventLevelComplete)
	if len(events) != 1 {
		t.Fatalf("expected exactly one completion event, got %d", len(events))
	}
	if got := events[0].Data.(ecs.LevelCompleteEvent).LevelIndex; got != 1 {
		t.Fatalf("expected level index 1, got %d", got)
	}
	if !run.LevelComplete || !run.Halted() {
		t.Fatalf("run should be halted after completion")
	}
	if ecs.Has(w, report.Player, component.PhysicsBodyComponent.Kind()) {
		t.Fatalf("player should be frozen after completion")
	}
}

func TestEndFlagLosesToDeath(t *testing.T) {
	w, report := loadWorld(t, []levels.Object{
		{ID: "end", Type: levels.TypeEndFlag, X: 800, Y: 400, Width: 40, Height: 80},
	})
	movePlayer(t, w, report.Player, 820, 440)
	requestDeath(w, report.Player, "Collision with spike", 0)

	NewEndFlagSystem().Update(w)
	if runOf(t, w, report.Player).LevelComplete {
		t.Fatalf("death in the same tick must win over the end flag")
	}
}
