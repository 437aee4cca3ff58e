package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/ecs/entity"
)

func TestClampView(t *testing.T) {
	tests := []struct {
		name            string
		pos, size, view float64
		want            float64
	}{
		{name: "inside", pos: 100, size: 1000, view: 400, want: 100},
		{name: "before origin", pos: -50, size: 1000, view: 400, want: 0},
		{name: "past the end", pos: 900, size: 1000, view: 400, want: 600},
		{name: "level smaller than view", pos: 30, size: 300, view: 400, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := clampView(tt.pos, tt.size, tt.view); got != tt.want {
				t.Fatalf("clampView(%v,%v,%v) = %v, want %v", tt.pos, tt.size, tt.view, got, tt.want)
			}
		})
	}
}

func TestCameraFollowsPlayerInsideLevel(t *testing.T) {
	w, report := loadWorld(t, nil)
	cam, err := entity.NewCamera(w, 0, 0, 400, 300)
	if err != nil {
		t.Fatalf("NewCamera failed: %v", err)
	}
	c, _ := ecs.Get(w, cam, component.CameraComponent.Kind())
	c.Smoothness = 1
	tr, _ := ecs.Get(w, cam, component.TransformComponent.Kind())
	system := NewCameraSystem()

	movePlayer(t, w, report.Player, 500, 300)
	system.Update(w)
	if tr.X != 300 || tr.Y != 150 {
		t.Fatalf("expected camera at (300,150), got (%v,%v)", tr.X, tr.Y)
	}

	movePlayer(t, w, report.Player, 990, 590)
	system.Update(w)
	if tr.X != 600 || tr.Y != 300 {
		t.Fatalf("expected camera clamped to (600,300), got (%v,%v)", tr.X, tr.Y)
	}

	x, y, zoom := cameraTransform(w)
	if x != 600 || y != 300 || zoom != 1 {
		t.Fatalf("cameraTransform = (%v,%v,%v)", x, y, zoom)
	}
}
