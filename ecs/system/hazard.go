package system

import (
	"github.com/milk9111/platformer/common"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

const (
	causeHotPlatform = "Hot platform"
	causeFell        = "Fell off map"
	// hotTouchSlop lets resting contact with a hot surface count as touching.
	hotTouchSlop = 1.0
)

// HazardSystem resolves player contact with deadly floors, spikes, traps and
// hot platforms into a death request.
type HazardSystem struct{}

func NewHazardSystem() *HazardSystem { return &HazardSystem{} }

func (s *HazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, _, ok := playerRun(w)
	if !ok {
		return
	}
	box, ok := entityBox(w, player)
	if !ok {
		return
	}
	px, py := box.Center()

	if hazard, kind, hit := findHazardHit(w, box, px, py); hit {
		requestDeath(w, player, "Collision with "+kind.String(), hazard)
		return
	}

	if hot, ok := hotPlatformTouch(w, player, box); ok {
		requestDeath(w, player, causeHotPlatform, hot)
	}
}

// findHazardHit returns the first hazard whose rotated bounding box overlaps
// box and whose exact shape accepts the point (px, py).
func findHazardHit(w *ecs.World, box common.AABB, px, py float64) (ecs.Entity, component.HazardKind, bool) {
	var (
		hit  ecs.Entity
		kind component.HazardKind
	)
	ecs.ForEach3(w, component.HazardComponent.Kind(), component.TransformComponent.Kind(), component.ShapeComponent.Kind(), func(e ecs.Entity, h *component.Hazard, t *component.Transform, s *component.Shape) {
		if hit != 0 {
			return
		}
		if !box.Overlaps(s.RotatedBounds(t)) {
			return
		}
		cx, cy := s.Center(t)
		if !common.PointInRotatedRect(px, py, cx, cy, s.Width, s.Height, t.Rotation) {
			return
		}
		hit, kind = e, h.Kind
	})
	return hit, kind, hit != 0
}

// hotPlatformTouch reports a hot platform the player is touching, either as
// seen by the physics contacts this tick or by resting against its box.
func hotPlatformTouch(w *ecs.World, player ecs.Entity, box common.AABB) (ecs.Entity, bool) {
	if pc, ok := ecs.Get(w, player, component.PlayerContactComponent.Kind()); ok && pc.Hot != 0 {
		hot := ecs.Entity(pc.Hot)
		if p, ok := ecs.Get(w, hot, component.PlatformComponent.Kind()); ok && p.Hot {
			return hot, true
		}
	}

	grown := common.AABB{X: box.X - hotTouchSlop, Y: box.Y - hotTouchSlop, W: box.W + 2*hotTouchSlop, H: box.H + 2*hotTouchSlop}
	var hot ecs.Entity
	ecs.ForEach3(w, component.PlatformComponent.Kind(), component.TransformComponent.Kind(), component.ShapeComponent.Kind(), func(e ecs.Entity, p *component.Platform, t *component.Transform, s *component.Shape) {
		if hot != 0 || !p.Hot {
			return
		}
		if !ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			return
		}
		if grown.Overlaps(s.RotatedBounds(t)) {
			hot = e
		}
	})
	return hot, hot != 0
}
