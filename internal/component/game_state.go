// internal/component/game_state.go
package component

// GamePhase is the lifecycle state of the simulation.
type GamePhase int

const (
	PhaseIdle GamePhase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game over"
	}
	return "unknown"
}
