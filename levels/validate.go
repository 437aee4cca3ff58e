package levels

import "fmt"

type DiagnosticKind string

const (
	DiagnosticUnknownType      DiagnosticKind = "unknown-type"
	DiagnosticMissingSize      DiagnosticKind = "missing-size"
	DiagnosticDanglingParent   DiagnosticKind = "dangling-parent"
	DiagnosticUnattachableType DiagnosticKind = "unattachable-type"
	DiagnosticDuplicateMarker  DiagnosticKind = "duplicate-marker"
	DiagnosticInvalidMoveMode  DiagnosticKind = "invalid-move-mode"
	DiagnosticInvalidEffect    DiagnosticKind = "invalid-effect"
)

// Diagnostic reports a non-fatal problem with one level object. Index is
// the object's position in Level.Objects.
type Diagnostic struct {
	Kind     DiagnosticKind
	Index    int
	ObjectID string
	Message  string
}

func (d Diagnostic) String() string {
	id := d.ObjectID
	if id == "" {
		id = "-"
	}
	return fmt.Sprintf("[%s] object #%d (%s): %s", d.Kind, d.Index, id, d.Message)
}

// AttachableTypes lists the object types that may ride a moving platform.
var AttachableTypes = map[string]bool{
	TypePlatform:    true,
	TypeSpike:       true,
	TypeTrap:        true,
	TypeDeadlyFloor: true,
}

// Validate reports every problem the loader would skip or work around.
// It does not modify the level.
func (l *Level) Validate() []Diagnostic {
	if l == nil {
		return nil
	}
	var out []Diagnostic
	add := func(kind DiagnosticKind, i int, o Object, format string, args ...any) {
		out = append(out, Diagnostic{Kind: kind, Index: i, ObjectID: o.ID, Message: fmt.Sprintf(format, args...)})
	}

	movers := make(map[string]bool)
	for _, o := range l.Objects {
		if o.Type == TypeMovingPlatform && o.ID != "" && !o.Attached() {
			movers[o.ID] = true
		}
	}

	seenStart, seenEnd := false, false
	for i, o := range l.Objects {
		switch o.Type {
		case TypePlatform, TypeMovingPlatform, TypeDeadlyFloor, TypeTrap, TypeLadder:
			if o.Width <= 0 || o.Height <= 0 {
				add(DiagnosticMissingSize, i, o, "%s has no size", o.Type)
			}
		case TypeSpike, TypeCheckpoint:
		case TypeStartPosition:
			if seenStart {
				add(DiagnosticDuplicateMarker, i, o, "extra start-position ignored")
			}
			seenStart = true
		case TypeEndFlag:
			if seenEnd {
				add(DiagnosticDuplicateMarker, i, o, "extra end-flag ignored")
			}
			seenEnd = true
		default:
			add(DiagnosticUnknownType, i, o, "unknown type %q", o.Type)
			continue
		}

		if o.Type == TypeMovingPlatform && o.MoveMode != "" && o.MoveMode != MoveModeLoop && o.MoveMode != MoveModeOnce {
			add(DiagnosticInvalidMoveMode, i, o, "move mode %q, using loop", o.MoveMode)
		}
		if o.HasTriggerEffect && o.EffectType != "" && o.EffectType != EffectCollapse && o.EffectType != EffectSticky && o.EffectType != EffectHot {
			add(DiagnosticInvalidEffect, i, o, "effect type %q, using collapse", o.EffectType)
		}

		if !o.Attached() {
			continue
		}
		if !movers[o.ParentID] {
			add(DiagnosticDanglingParent, i, o, "parent %q is not a moving-platform", o.ParentID)
			continue
		}
		if !AttachableTypes[o.Type] {
			add(DiagnosticUnattachableType, i, o, "%s cannot be attached to a platform", o.Type)
		}
	}
	return out
}
