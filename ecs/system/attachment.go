package system

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
)

// AttachmentSystem moves attached children to follow their moving platform.
// It runs after the platforms move and before anything tests collisions.
type AttachmentSystem struct{}

func NewAttachmentSystem() *AttachmentSystem { return &AttachmentSystem{} }

func (s *AttachmentSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	for _, e := range w.Query(component.AttachmentsComponent.Kind()) {
		PropagateAttachments(w, e)
	}
}

// PropagateAttachments places every live child of parent at the parent's
// top-left plus its stored offset. Dead children are skipped.
func PropagateAttachments(w *ecs.World, parent ecs.Entity) {
	list, ok := ecs.Get(w, parent, component.AttachmentsComponent.Kind())
	if !ok || len(list.Children) == 0 {
		return
	}
	pt, ok := ecs.Get(w, parent, component.TransformComponent.Kind())
	if !ok {
		return
	}
	ps, ok := ecs.Get(w, parent, component.ShapeComponent.Kind())
	if !ok {
		return
	}
	left, top := ps.TopLeft(pt)

	var vx, vy float64
	if v, ok := ecs.Get(w, parent, component.VelocityComponent.Kind()); ok {
		vx, vy = v.X, v.Y
	}

	for _, a := range list.Children {
		child := ecs.Entity(a.Child)
		if !w.IsAlive(child) {
			continue
		}
		ct, ok := ecs.Get(w, child, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		ct.X = left + a.RelX + a.OriginX
		ct.Y = top + a.RelY + a.OriginY
		setVelocity(w, child, vx, vy)
	}
}
