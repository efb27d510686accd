package game

// GamePhase is the engine's current stage in the round lifecycle
type GamePhase uint8

const (
	PhaseIdle GamePhase = iota
	PhaseShowingSequence
	PhaseAwaitingInput
	PhaseRoundTransition
	PhaseGameOver
)

// String returns the phase name
func (p GamePhase) String() string {
	switch p {
	case PhaseIdle:
		return "Idle"
	case PhaseShowingSequence:
		return "ShowingSequence"
	case PhaseAwaitingInput:
		return "AwaitingPlayerInput"
	case PhaseRoundTransition:
		return "RoundTransition"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// CanStart reports whether a new game may begin from this phase
func (p GamePhase) CanStart() bool {
	return p == PhaseIdle || p == PhaseGameOver
}

var validTransitions = map[GamePhase][]GamePhase{
	PhaseIdle:            {PhaseRoundTransition},
	PhaseGameOver:        {PhaseRoundTransition},
	PhaseRoundTransition: {PhaseShowingSequence},
	PhaseShowingSequence: {PhaseAwaitingInput},
	PhaseAwaitingInput:   {PhaseRoundTransition, PhaseGameOver},
}

// CanTransition checks if a phase transition is valid
func CanTransition(from, to GamePhase) bool {
	for _, phase := range validTransitions[from] {
		if phase == to {
			return true
		}
	}
	return false
}
