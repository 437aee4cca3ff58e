package system

import (
	"math"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	// speedUnit converts a per-1/60s-tick speed into a per-second velocity.
	speedUnit = 60.0
	// returnEpsilon is how close to its start a returning platform must be
	// to count as home.
	returnEpsilon = 1.0
	endEpsilon    = 1e-6
)

// MovingPlatformSystem drives every moving platform along its path. Children
// follow later in the same tick, in AttachmentSystem.
type MovingPlatformSystem struct{}

func NewMovingPlatformSystem() *MovingPlatformSystem { return &MovingPlatformSystem{} }

func (s *MovingPlatformSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := clockDt(w)
	if dt <= 0 {
		return
	}

	px, py, hasPlayer := 0.0, 0.0, false
	if player, ok := playerEntity(w); ok {
		px, py, hasPlayer = entityCenter(w, player)
	}

	ecs.ForEach2(w, component.MovingPlatformComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, mp *component.MovingPlatform, t *component.Transform) {
		if mp.RequireTrigger && !mp.Triggered {
			if !hasPlayer || common.Distance(px, py, t.X, t.Y) > mp.TriggerDistance {
				mp.VX, mp.VY = 0, 0
				setVelocity(w, e, 0, 0)
				return
			}
			mp.Triggered = true
			log.Debug("moving platform: triggered", "entity", e)
		}

		oldX, oldY := t.X, t.Y
		stepPlatform(mp, t, dt)
		setVelocity(w, e, (t.X-oldX)/dt, (t.Y-oldY)/dt)
	})
}

// stepPlatform advances one platform by dt. Turning points are snapped to
// the exact end or start anchor, and a step never overshoots either.
func stepPlatform(mp *component.MovingPlatform, t *component.Transform, dt float64) {
	if mp.Direction == 0 {
		mp.VX, mp.VY = 0, 0
		return
	}

	endX := mp.StartX + mp.DirX*mp.Distance
	endY := mp.StartY + mp.DirY*mp.Distance
	d := common.Distance(t.X, t.Y, mp.StartX, mp.StartY)

	switch {
	case mp.Direction > 0 && d >= mp.Distance-endEpsilon:
		t.X, t.Y = endX, endY
		d = mp.Distance
		if mp.Mode == component.MoveOnce {
			mp.Direction = 0
			mp.VX, mp.VY = 0, 0
			return
		}
		mp.Direction = -1
		mp.Flips++
	case mp.Direction < 0 && d <= returnEpsilon:
		t.X, t.Y = mp.StartX, mp.StartY
		d = 0
		if mp.Mode == component.MoveOnce {
			mp.Direction = 0
			mp.VX, mp.VY = 0, 0
			return
		}
		mp.Direction = 1
		mp.Flips++
	}

	dir := float64(mp.Direction)
	mp.VX = mp.Speed * dir * mp.DirX * speedUnit
	mp.VY = mp.Speed * dir * mp.DirY * speedUnit

	step := math.Abs(mp.Speed) * speedUnit * dt
	if mp.Direction > 0 {
		if d+step >= mp.Distance {
			t.X, t.Y = endX, endY
			if mp.Mode == component.MoveOnce {
				mp.Direction = 0
				mp.VX, mp.VY = 0, 0
			}
			return
		}
	} else if step >= d {
		t.X, t.Y = mp.StartX, mp.StartY
		return
	}
	t.X += mp.VX * dt
	t.Y += mp.VY * dt
}

// ResetPlatform puts a platform back in its load-time state.
func ResetPlatform(mp *component.MovingPlatform, t *component.Transform) {
	t.X, t.Y = mp.StartX, mp.StartY
	mp.VX, mp.VY = mp.InitialVX, mp.InitialVY
	mp.Triggered = false
	mp.Direction = 1
	mp.Flips = 0
}

func setVelocity(w *ecs.World, e ecs.Entity, vx, vy float64) {
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		v.X, v.Y = vx, vy
	}
}
