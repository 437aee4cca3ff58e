package ecs

import "github.com/milk9111/platformer/ecs/component"

// Query returns the live entities holding every listed kind, in the dense
// order of the smallest store.
func (w *World) Query(kinds ...component.Key) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	stores := make([]componentStore, 0, len(kinds))
	for _, k := range kinds {
		store, ok := w.stores[k.ID()]
		if !ok {
			return nil
		}
		stores = append(stores, store)
	}

	base := smallest(stores...)
	out := make([]Entity, 0, base.len())
	for _, e := range base.entities() {
		if !w.IsAlive(e) {
			continue
		}
		match := true
		for _, s := range stores {
			if !s.has(e.id()) {
				match = false
				break
			}
		}
		if match {
			out = append(out, e)
		}
	}
	return out
}

// First returns the first live entity holding kind.
func (w *World) First(kind component.Key) (Entity, bool) {
	if w == nil {
		return 0, false
	}
	store, ok := w.stores[kind.ID()]
	if !ok {
		return 0, false
	}
	for _, e := range store.entities() {
		if w.IsAlive(e) {
			return e, true
		}
	}
	return 0, false
}
