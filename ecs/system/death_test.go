package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

func playerWithLives(lives int) prefabs.PlayerSpec {
	spec := prefabs.DefaultPlayerSpec()
	spec.Lives = lives
	return spec
}

func TestDeathSpendsLivesUntilGameOver(t *testing.T) {
	tests := []struct {
		name  string
		lives int
	}{
		{name: "single life", lives: 1},
		{name: "three lives", lives: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, report := loadWorldWith(t, nil, playerWithLives(tt.lives))
			run := runOf(t, w, report.Player)
			system := NewDeathSystem()

			var events []ecs.Event
			for i := 0; i < tt.lives+2; i++ {
				requestDeath(w, report.Player, causeFell, 0)
				system.Update(w)
				events = append(events, w.Events().Drain()...)
				if i < tt.lives-1 && run.GameOver {
					t.Fatalf("game over after %d deaths, expected %d", i+1, tt.lives)
				}
			}

			if !run.GameOver || run.Lives != 0 || run.Deaths != tt.lives {
				t.Fatalf("unexpected run after deaths: %+v", *run)
			}
			if n := len(eventsOf(events, ecs.EventGameOver)); n != 1 {
				t.Fatalf("expected one game over event, got %d", n)
			}
			lives := eventsOf(events, ecs.EventLivesChanged)
			if len(lives) != tt.lives {
				t.Fatalf("expected %d lives events, got %d", tt.lives, len(lives))
			}
			last := lives[len(lives)-1].Data.(ecs.LivesChangedEvent)
			if last.Remaining != 0 || last.Max != tt.lives {
				t.Fatalf("unexpected final lives event %+v", last)
			}
			if ecs.Has(w, report.Player, component.DeathRequestComponent.Kind()) {
				t.Fatalf("death request should always be consumed")
			}
		})
	}
}

func TestRespawnPrefersCheckpoint(t *testing.T) {
	w, report := loadWorld(t, []levels.Object{
		{ID: "start", Type: levels.TypeStartPosition, X: 40, Y: 380, Width: 40, Height: 60},
		{ID: "c", Type: levels.TypeCheckpoint, X: 500, Y: 380, Width: 40, Height: 60},
	})
	tr, _ := ecs.Get(w, report.Player, component.TransformComponent.Kind())
	system := NewDeathSystem()

	movePlayer(t, w, report.Player, 300, 200)
	requestDeath(w, report.Player, causeFell, 0)
	system.Update(w)
	if tr.X != 60 || tr.Y != 410 {
		t.Fatalf("expected respawn at start (60,410), got (%v,%v)", tr.X, tr.Y)
	}

	movePlayer(t, w, report.Player, 520, 410)
	NewCheckpointSystem().Update(w)
	movePlayer(t, w, report.Player, 300, 200)
	requestDeath(w, report.Player, causeFell, 0)
	system.Update(w)
	if tr.X != 520 || tr.Y != 410 {
		t.Fatalf("expected respawn at checkpoint (520,410), got (%v,%v)", tr.X, tr.Y)
	}

	run := runOf(t, w, report.Player)
	if run.Support.Kind != component.Airborne {
		t.Fatalf("respawned player should be airborne, got %s", run.Support.Kind)
	}
}

func TestDeathResetsResettablePlatforms(t *testing.T) {
	w, report := loadWorld(t, []levels.Object{
		{ID: "reset", Type: levels.TypeMovingPlatform, X: 300, Y: 100, Width: 100, Height: 20, ResetOnDeath: true},
		{ID: "keep", Type: levels.TypeMovingPlatform, X: 300, Y: 200, Width: 100, Height: 20},
		{ID: "child", Type: levels.TypeSpike, ParentID: "reset", RelativeX: 0, RelativeY: -30},
	})
	movers := NewMovingPlatformSystem()
	for i := 0; i < 20; i++ {
		tick(w, movers, NewAttachmentSystem())
	}

	requestDeath(w, report.Player, causeFell, 0)
	NewDeathSystem().Update(w)

	rt, _ := ecs.Get(w, report.Entities["reset"], component.TransformComponent.Kind())
	if rt.X != 350 || rt.Y != 110 {
		t.Fatalf("resettable platform not restored: (%v,%v)", rt.X, rt.Y)
	}
	kt, _ := ecs.Get(w, report.Entities["keep"], component.TransformComponent.Kind())
	if kt.X == 350 {
		t.Fatalf("non-resettable platform should keep its position")
	}
	ct, _ := ecs.Get(w, report.Entities["child"], component.TransformComponent.Kind())
	if ct.X != 300 || ct.Y != 70 {
		t.Fatalf("attached child should follow the reset, got (%v,%v)", ct.X, ct.Y)
	}
}
