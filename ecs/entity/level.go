package entity

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/ecs/component"
	"github.com/milk9111/platformer/levels"
	"github.com/milk9111/platformer/prefabs"
)

type LoadOptions struct {
	LevelIndex int
	Player     prefabs.PlayerSpec
	World      prefabs.WorldSpec
}

// DefaultLoadOptions reads the prefab specs, falling back to the built-in
// tuning when they cannot be loaded.
func DefaultLoadOptions() LoadOptions {
	player, err := prefabs.LoadPlayerSpec()
	if err != nil {
		log.Warn("level: using default player spec", "err", err)
	}
	world, err := prefabs.LoadWorldSpec()
	if err != nil {
		log.Warn("level: using default world spec", "err", err)
	}
	return LoadOptions{LevelIndex: 1, Player: player, World: world}
}

// LoadReport describes what a load produced. Entities maps object ids to the
// entity built for them; objects without an id are not listed.
type LoadReport struct {
	Diagnostics []levels.Diagnostic
	Player      ecs.Entity
	Level       ecs.Entity
	Entities    map[string]ecs.Entity
}

type builder func(*ecs.World, levels.Object, prefabs.WorldSpec) (ecs.Entity, error)

func builderFor(objectType string) (builder, bool) {
	switch objectType {
	case levels.TypePlatform:
		return NewPlatform, true
	case levels.TypeMovingPlatform:
		return NewMovingPlatform, true
	case levels.TypeDeadlyFloor:
		return NewDeadlyFloor, true
	case levels.TypeSpike:
		return NewSpikeStrip, true
	case levels.TypeTrap:
		return NewTrap, true
	case levels.TypeLadder:
		return NewLadder, true
	case levels.TypeStartPosition:
		return NewStartMarker, true
	case levels.TypeEndFlag:
		return NewEndFlag, true
	case levels.TypeCheckpoint:
		return NewCheckpoint, true
	}
	return nil, false
}

// LoadLevelToWorld instantiates lvl into w. Objects without a parent are
// built first, in list order; attached objects are resolved against the
// moving platforms in a second pass. Bad objects are reported and skipped,
// only a failure to build the level singletons or the player is an error.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level, opts LoadOptions) (*LoadReport, error) {
	if w == nil {
		return nil, fmt.Errorf("level: nil world")
	}
	if lvl == nil {
		return nil, fmt.Errorf("level: nil level")
	}

	report := &LoadReport{Entities: make(map[string]ecs.Entity)}
	for _, d := range lvl.Validate() {
		// parent problems are decided by the second pass
		if d.Kind == levels.DiagnosticDanglingParent || d.Kind == levels.DiagnosticUnattachableType {
			continue
		}
		report.diagnose(w, d)
	}

	movers := make(map[string]ecs.Entity)
	seenStart, seenEnd := false, false
	for i, o := range lvl.Objects {
		if o.Attached() {
			continue
		}
		switch o.Type {
		case levels.TypeStartPosition:
			if seenStart {
				continue
			}
			seenStart = true
		case levels.TypeEndFlag:
			if seenEnd {
				continue
			}
			seenEnd = true
		}

		build, ok := builderFor(o.Type)
		if !ok {
			continue
		}
		e, err := build(w, o, opts.World)
		if err != nil {
			log.Warn("level: skipping object", "index", i, "id", o.ID, "type", o.Type, "err", err)
			continue
		}
		report.track(o, e)
		if o.Type == levels.TypeMovingPlatform && o.ID != "" {
			if _, dup := movers[o.ID]; !dup {
				movers[o.ID] = e
			}
		}
	}

	for i, o := range lvl.Objects {
		if !o.Attached() {
			continue
		}
		parent, ok := movers[o.ParentID]
		if !ok {
			log.Warn("level: parent platform not found", "index", i, "id", o.ID, "parent", o.ParentID)
			report.diagnose(w, levels.Diagnostic{
				Kind:     levels.DiagnosticDanglingParent,
				Index:    i,
				ObjectID: o.ID,
				Message:  fmt.Sprintf("parent %q is not a moving-platform", o.ParentID),
			})
			continue
		}
		if !levels.AttachableTypes[o.Type] {
			log.Warn("level: object type cannot be attached", "index", i, "id", o.ID, "type", o.Type)
			report.diagnose(w, levels.Diagnostic{
				Kind:     levels.DiagnosticUnattachableType,
				Index:    i,
				ObjectID: o.ID,
				Message:  fmt.Sprintf("%s cannot be attached to a platform", o.Type),
			})
			continue
		}
		e, err := attachObject(w, parent, o, opts.World)
		if err != nil {
			log.Warn("level: skipping attached object", "index", i, "id", o.ID, "err", err)
			continue
		}
		report.track(o, e)
	}

	levelEntity, err := newLevelSingleton(w, lvl, opts)
	if err != nil {
		return nil, err
	}
	report.Level = levelEntity

	x, y := opts.World.SpawnX, opts.World.SpawnY
	if start, ok := lvl.Start(); ok {
		sw, sh := start.Footprint()
		x, y = start.X+sw/2, start.Y+sh/2
	}
	player, err := NewPlayerAt(w, x, y, opts.Player, opts.World)
	if err != nil {
		return nil, err
	}
	report.Player = player

	log.Debug("level: loaded", "index", opts.LevelIndex, "objects", len(lvl.Objects), "diagnostics", len(report.Diagnostics))
	return report, nil
}

func (r *LoadReport) track(o levels.Object, e ecs.Entity) {
	if o.ID == "" {
		return
	}
	if _, dup := r.Entities[o.ID]; !dup {
		r.Entities[o.ID] = e
	}
}

func (r *LoadReport) diagnose(w *ecs.World, d levels.Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
	w.Events().Push(ecs.Event{Type: ecs.EventLoadDiagnostic, Data: d})
}

// attachObject builds o at its parent's top-left plus the stored relative
// offset and registers it with the parent.
func attachObject(w *ecs.World, parent ecs.Entity, o levels.Object, world prefabs.WorldSpec) (ecs.Entity, error) {
	pt, ok := ecs.Get(w, parent, component.TransformComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("attach: parent has no transform")
	}
	ps, ok := ecs.Get(w, parent, component.ShapeComponent.Kind())
	if !ok {
		return 0, fmt.Errorf("attach: parent has no shape")
	}
	px, py := ps.TopLeft(pt)

	placed := o
	placed.X = px + o.RelativeX
	placed.Y = py + o.RelativeY

	build, ok := builderFor(o.Type)
	if !ok {
		return 0, fmt.Errorf("attach: no builder for %s", o.Type)
	}
	child, err := build(w, placed, world)
	if err != nil {
		return 0, err
	}

	cs, _ := ecs.Get(w, child, component.ShapeComponent.Kind())
	ox, oy := cs.OriginOffset()

	list, ok := ecs.Get(w, parent, component.AttachmentsComponent.Kind())
	if !ok {
		list = &component.Attachments{}
		if err := ecs.Add(w, parent, component.AttachmentsComponent.Kind(), list); err != nil {
			return 0, fmt.Errorf("attach: add attachments: %w", err)
		}
	}
	list.Children = append(list.Children, component.Attachment{
		Child:   uint64(child),
		RelX:    o.RelativeX,
		RelY:    o.RelativeY,
		OriginX: ox,
		OriginY: oy,
	})

	if err := ecs.Add(w, child, component.AttachedToComponent.Kind(), &component.AttachedTo{Parent: uint64(parent)}); err != nil {
		return 0, fmt.Errorf("attach: add parent link: %w", err)
	}
	if !ecs.Has(w, child, component.VelocityComponent.Kind()) {
		if err := ecs.Add(w, child, component.VelocityComponent.Kind(), &component.Velocity{}); err != nil {
			return 0, fmt.Errorf("attach: add velocity: %w", err)
		}
	}
	return child, nil
}

func newLevelSingleton(w *ecs.World, lvl *levels.Level, opts LoadOptions) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.LevelBoundsComponent.Kind(), &component.LevelBounds{
		Index:  opts.LevelIndex,
		Width:  lvl.WorldWidth,
		Height: lvl.WorldHeight,
		DeathY: lvl.DeathBoundary(opts.World.DeathMargin),
	}); err != nil {
		return 0, fmt.Errorf("level: add bounds: %w", err)
	}
	if err := ecs.Add(w, e, component.ClockComponent.Kind(), &component.Clock{Dt: opts.World.FixedStep}); err != nil {
		return 0, fmt.Errorf("level: add clock: %w", err)
	}
	return e, nil
}
