package system

import (
	"testing"

	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
)

func TestMovingPlatformLoopStaysOnPath(t *testing.T) {
	w, report := loadWorld(t, []levels.Object{
		{ID: "m", Type: levels.TypeMovingPlatform, X: 100, Y: 100, Width: 100, Height: 20, MoveDistance: 200, MoveSpeed: 2},
	})
	e := report.Entities["m"]
	mp, _ := ecs.Get(w, e, component.MovingPlatformComponent.Kind())
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	s, _ := ecs.Get(w, e, component.ShapeComponent.Kind())

	system := NewMovingPlatformSystem()
	sawHome := false
	for i := 0; i < 400 && mp.Flips < 2; i++ {
		tick(w, system)
		left, top := s.TopLeft(tr)
		if left > 300+1e-9 || left < 100-1e-9 {
			t.Fatalf("tick %d: top-left x %v left the path [100,300]", i, left)
		}
		if !approx(top, 100) {
			t.Fatalf("tick %d: horizontal platform drifted to y %v", i, top)
		}
		if mp.Flips == 1 && tr.X == mp.StartX && tr.Y == mp.StartY {
			sawHome = true
		}
	}
	if mp.Flips != 2 {
		t.Fatalf("expected two flips, got %d", mp.Flips)
	}
	if !sawHome {
		t.Fatalf("platform never landed exactly on its start before flipping")
	}
}

func TestMovingPlatformOnceStopsAtEnd(t *testing.T) {
	w, report := loadWorld(t, []levels.Object{
		{ID: "m", Type: levels.TypeMovingPlatform, X: 100, Y: 100, Width: 100, Height: 20, MoveDistance: 200, MoveSpeed: 2, MoveMode: levels.MoveModeOnce},
	})
	e := report.Entities["m"]

	system := NewMovingPlatformSystem()
	for i := 0; i < 300; i++ {
		tick(w, system)
	}

	mp, _ := ecs.Get(w, e, component.MovingPlatformComponent.Kind())
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
	if tr.X != 350 || tr.Y != 110 {
		t.Fatalf("expected platform parked at (350,110), got (%v,%v)", tr.X, tr.Y)
	}
	if mp.Direction != 0 || mp.Flips != 0 {
		t.Fatalf("expected stopped once platform, got direction %d flips %d", mp.Direction, mp.Flips)
	}
	if v.X != 0 || v.Y != 0 {
		t.Fatalf("expected zero velocity, got (%v,%v)", v.X, v.Y)
	}
}

func TestMovingPlatformTriggerLatches(t *testing.T) {
	w, report := loadWorld(t, []levels.Object{
		{ID: "m", Type: levels.TypeMovingPlatform, X: 500, Y: 100, Width: 100, Height: 20, RequireTrigger: true, TriggerDistance: 50},
	})
	e := report.Entities["m"]
	mp, _ := ecs.Get(w, e, component.MovingPlatformComponent.Kind())
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())

	system := NewMovingPlatformSystem()
	for i := 0; i < 10; i++ {
		tick(w, system)
	}
	if mp.Triggered || tr.X != 550 {
		t.Fatalf("platform moved before trigger: triggered=%v x=%v", mp.Triggered, tr.X)
	}

	movePlayer(t, w, report.Player, 560, 80)
	tick(w, system)
	if !mp.Triggered || tr.X <= 550 {
		t.Fatalf("expected trigger and movement, triggered=%v x=%v", mp.Triggered, tr.X)
	}

	movePlayer(t, w, report.Player, 0, 0)
	x := tr.X
	tick(w, system)
	if !mp.Triggered || tr.X <= x {
		t.Fatalf("trigger should stay latched after the player leaves")
	}
}

func TestAttachedChildMovesInSameTick(t *testing.T) {
	w, report := loadWorld(t, []levels.Object{
		{ID: "m", Type: levels.TypeMovingPlatform, X: 100, Y: 100, Width: 100, Height: 20, MoveSpeed: 2},
		{ID: "s", Type: levels.TypeSpike, ParentID: "m", RelativeX: 10, RelativeY: -30},
	})
	parent := report.Entities["m"]
	child := report.Entities["s"]
	pt, _ := ecs.Get(w, parent, component.TransformComponent.Kind())
	ct, _ := ecs.Get(w, child, component.TransformComponent.Kind())
	px0, cx0, cy0 := pt.X, ct.X, ct.Y

	tick(w, NewMovingPlatformSystem(), NewAttachmentSystem())

	dx := pt.X - px0
	if dx <= 0 {
		t.Fatalf("parent did not move")
	}
	if !approx(ct.X-cx0, dx) || ct.Y != cy0 {
		t.Fatalf("child moved by (%v,%v), expected (%v,0)", ct.X-cx0, ct.Y-cy0, dx)
	}
	pv, _ := ecs.Get(w, parent, component.VelocityComponent.Kind())
	cv, _ := ecs.Get(w, child, component.VelocityComponent.Kind())
	if pv.X != cv.X || pv.Y != cv.Y {
		t.Fatalf("child velocity %+v does not match parent %+v", *cv, *pv)
	}
}

func TestAttachmentSkipsDestroyedChild(t *testing.T) {
	w, report := loadWorld(t, []levels.Object{
		{ID: "m", Type: levels.TypeMovingPlatform, X: 100, Y: 100, Width: 100, Height: 20},
		{ID: "s", Type: levels.TypeSpike, ParentID: "m", RelativeX: 10, RelativeY: -30},
		{ID: "p", Type: levels.TypePlatform, ParentID: "m", RelativeX: 0, RelativeY: 20, Width: 40, Height: 10},
	})
	ecs.DestroyEntity(w, report.Entities["s"])
	pt, _ := ecs.Get(w, report.Entities["p"], component.TransformComponent.Kind())
	x := pt.X

	tick(w, NewMovingPlatformSystem(), NewAttachmentSystem())
	if pt.X <= x {
		t.Fatalf("surviving child should keep following its parent")
	}
}
