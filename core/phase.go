package core

// GamePhase is the top-level match state exposed to the host
type GamePhase uint8

const (
	PhaseRunning GamePhase = iota
	PhasePaused
	PhaseGameOver
)

func (p GamePhase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
