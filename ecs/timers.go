package ecs

import "slices"

// TimerFunc runs when a deferred timer comes due. It receives the handle it
// was scheduled against and the token captured at scheduling time, never a
// pointer to component state.
type TimerFunc func(w *World, target Entity, token uint32)

type timer struct {
	due    float64
	seq    uint64
	target Entity
	token  uint32
	fn     TimerFunc
}

// TimerQueue holds deferred callbacks keyed on the simulation clock. It is
// owned by a World, so discarding the world discards every pending timer.
type TimerQueue struct {
	pending []timer
	seq     uint64
}

// Schedule registers fn to run once the clock reaches due.
func (q *TimerQueue) Schedule(due float64, target Entity, token uint32, fn TimerFunc) {
	if q == nil || fn == nil {
		return
	}
	q.seq++
	q.pending = append(q.pending, timer{due: due, seq: q.seq, target: target, token: token, fn: fn})
}

// Advance fires every timer due at or before now, earliest first. Timers
// whose target entity is no longer alive are dropped without running.
// It returns the number of callbacks that ran.
func (q *TimerQueue) Advance(w *World, now float64) int {
	if q == nil || len(q.pending) == 0 {
		return 0
	}

	var due []timer
	kept := q.pending[:0]
	for _, t := range q.pending {
		if t.due <= now {
			due = append(due, t)
		} else {
			kept = append(kept, t)
		}
	}
	q.pending = kept
	if len(due) == 0 {
		return 0
	}

	slices.SortFunc(due, func(a, b timer) int {
		switch {
		case a.due < b.due:
			return -1
		case a.due > b.due:
			return 1
		case a.seq < b.seq:
			return -1
		case a.seq > b.seq:
			return 1
		}
		return 0
	})

	fired := 0
	for _, t := range due {
		if !w.IsAlive(t.target) {
			continue
		}
		t.fn(w, t.target, t.token)
		fired++
	}
	return fired
}

func (q *TimerQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.pending)
}

func (q *TimerQueue) Clear() {
	if q == nil {
		return
	}
	q.pending = nil
}
