package system

import (
	"math"
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

func loadWorld(t *testing.T, objects []levels.Object) (*ecs.World, *entity.LoadReport) {
	t.Helper()
	return loadWorldWith(t, objects, prefabs.DefaultPlayerSpec())
}

func loadWorldWith(t *testing.T, objects []levels.Object, player prefabs.PlayerSpec) (*ecs.World, *entity.LoadReport) {
	t.Helper()
	lvl := &levels.Level{WorldWidth: 1000, WorldHeight: 600, Objects: objects}
	lvl.ApplyDefaults()
	w := ecs.NewWorld()
	report, err := entity.LoadLevelToWorld(w, lvl, entity.LoadOptions{
		LevelIndex: 1,
		Player:     player,
		World:      prefabs.DefaultWorldSpec(),
	})
	if err != nil {
		t.Fatalf("LoadLevelToWorld failed: %v", err)
	}
	return w, report
}

// tick runs one fixed step of the given systems after the clock.
func tick(w *ecs.World, systems ...ecs.System) {
	NewClockSystem().Update(w)
	for _, s := range systems {
		s.Update(w)
	}
}

func movePlayer(t *testing.T, w *ecs.World, player ecs.Entity, x, y float64) {
	t.Helper()
	tr, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("player has no transform")
	}
	tr.X, tr.Y = x, y
}

func runOf(t *testing.T, w *ecs.World, player ecs.Entity) *component.PlayerRun {
	t.Helper()
	run, ok := ecs.Get(w, player, component.PlayerRunComponent.Kind())
	if !ok {
		t.Fatalf("player has no run state")
	}
	return run
}

func eventsOf(events []ecs.Event, typ ecs.EventType) []ecs.Event {
	var out []ecs.Event
	for _, e := range events {
		if e.Type == typ {
			out = append(out, e)
		}
	}
	return out
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}
