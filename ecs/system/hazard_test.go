package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

func TestHazardSystemRotatedTrap(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		killed bool
	}{
		{name: "on the rotated body", x: 550, y: 160, killed: true},
		{name: "inside bounding box only", x: 550, y: 60, killed: false},
		{name: "far away", x: 900, y: 500, killed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, report := loadWorld(t, []levels.Object{
				{ID: "trap", Type: levels.TypeTrap, X: 400, Y: 100, Width: 200, Height: 20, Rotation: 45},
			})
			movePlayer(t, w, report.Player, tt.x, tt.y)

			NewHazardSystem().Update(w)

			req, ok := ecs.Get(w, report.Player, component.DeathRequestComponent.Kind())
			if ok != tt.killed {
				t.Fatalf("expected killed=%v, got %v", tt.killed, ok)
			}
			if ok && (req.Cause != "Collision with trap" || ecs.Entity(req.Source) != report.Entities["trap"]) {
				t.Fatalf("unexpected death request %+v", *req)
			}
		})
	}
}

func TestHazardSystemNearZeroRotationUsesBox(t *testing.T) {
	w, report := loadWorld(t, []levels.Object{
		{ID: "floor", Type: levels.TypeDeadlyFloor, X: 0, Y: 500, Width: 300, Height: 40, Rotation: 0.5},
	})
	// only the player's bottom edge reaches into the floor
	movePlayer(t, w, report.Player, 100, 490)

	NewHazardSystem().Update(w)

	req, ok := ecs.Get(w, report.Player, component.DeathRequestComponent.Kind())
	if !ok || req.Cause != "Collision with deadly-floor" {
		t.Fatalf("expected deadly-floor death, got %+v ok=%v", req, ok)
	}
}

func TestHazardSystemHotPlatform(t *testing.T) {
	w, report := loadWorld(t, []levels.Object{
		{ID: "p", Type: levels.TypePlatform, X: 50, Y: 465, Width: 100, Height: 20},
	})
	plat := report.Entities["p"]
	movePlayer(t, w, report.Player, 100, 450)

	NewHazardSystem().Update(w)
	if ecs.Has(w, report.Player, component.DeathRequestComponent.Kind()) {
		t.Fatalf("cold platform must not kill")
	}

	p, _ := ecs.Get(w, plat, component.PlatformComponent.Kind())
	p.Hot = true
	NewHazardSystem().Update(w)
	req, ok := ecs.Get(w, report.Player, component.DeathRequestComponent.Kind())
	if !ok || req.Cause != "Hot platform" || ecs.Entity(req.Source) != plat {
		t.Fatalf("expected hot platform death, got %+v ok=%v", req, ok)
	}
}

func TestRequestDeathKeepsFirstCause(t *testing.T) {
	w, report := loadWorld(t, nil)
	requestDeath(w, report.Player, "Collision with spike", 0)
	requestDeath(w, report.Player, causeFell, 0)

	req, _ := ecs.Get(w, report.Player, component.DeathRequestComponent.Kind())
	if req.Cause != "Collision with spike" {
		t.Fatalf("expected first cause to win, got %q", req.Cause)
	}
}
