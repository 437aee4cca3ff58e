package ecs

// EventType identifies the payload carried by an Event.
type EventType string

const (
	EventLevelComplete       EventType = "level_complete"
	EventGameOver            EventType = "game_over"
	EventLivesChanged        EventType = "lives_changed"
	EventCheckpointActivated EventType = "checkpoint_activated"
	EventDeath               EventType = "death"
	EventLoadDiagnostic      EventType = "load_diagnostic"
)

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

type LevelCompleteEvent struct {
	LevelIndex int
}

type LivesChangedEvent struct {
	Remaining int
	Max       int
}

type CheckpointEvent struct {
	Checkpoint Entity
	X          float64
	Y          float64
}

type DeathEvent struct {
	Cause  string
	Source Entity
}

// EventQueue is a simple FIFO queue.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}
