package sim

import (
	"github.com/milk9111/platformer/ecs"
	"github.com/milk9111/platformer/levels"
)

// Listener receives the simulation's outbound signals in emission order.
type Listener interface {
	OnLevelComplete(levelIndex int)
	OnGameOver()
	OnLivesChanged(remaining, maxLives int)
	OnCheckpointActivated(x, y float64)
	OnDeath(cause string)
	OnDiagnostic(d levels.Diagnostic)
}

// Hooks adapts plain funcs to Listener. Nil fields are ignored.
type Hooks struct {
	LevelComplete       func(levelIndex int)
	GameOver            func()
	LivesChanged        func(remaining, maxLives int)
	CheckpointActivated func(x, y float64)
	Death               func(cause string)
	Diagnostic          func(d levels.Diagnostic)
}

func (h Hooks) OnLevelComplete(levelIndex int) {
	if h.LevelComplete != nil {
		h.LevelComplete(levelIndex)
	}
}

func (h Hooks) OnGameOver() {
	if h.GameOver != nil {
		h.GameOver()
	}
}

func (h Hooks) OnLivesChanged(remaining, maxLives int) {
	if h.LivesChanged != nil {
		h.LivesChanged(remaining, maxLives)
	}
}

func (h Hooks) OnCheckpointActivated(x, y float64) {
	if h.CheckpointActivated != nil {
		h.CheckpointActivated(x, y)
	}
}

func (h Hooks) OnDeath(cause string) {
	if h.Death != nil {
		h.Death(cause)
	}
}

func (h Hooks) OnDiagnostic(d levels.Diagnostic) {
	if h.Diagnostic != nil {
		h.Diagnostic(d)
	}
}

// dispatch forwards world events to l. Unknown events are dropped.
func dispatch(l Listener, events []ecs.Event) {
	if l == nil {
		return
	}
	for _, evt := range events {
		switch data := evt.Data.(type) {
		case ecs.LevelCompleteEvent:
			l.OnLevelComplete(data.LevelIndex)
		case ecs.LivesChangedEvent:
			l.OnLivesChanged(data.Remaining, data.Max)
		case ecs.CheckpointEvent:
			l.OnCheckpointActivated(data.X, data.Y)
		case ecs.DeathEvent:
			l.OnDeath(data.Cause)
		case levels.Diagnostic:
			l.OnDiagnostic(data)
		default:
			if evt.Type == ecs.EventGameOver {
				l.OnGameOver()
			}
		}
	}
}
