package constants

import "time"

// Round Timing Constants
const (
	// StartDelay is the pause between pressing start and the first round
	StartDelay = 1000 * time.Millisecond

	// ReplayLeadIn is the pause between a new action being drawn and the replay starting
	ReplayLeadIn = 500 * time.Millisecond

	// ReplayPreDelay precedes every action shown during replay
	ReplayPreDelay = 800 * time.Millisecond

	// ReplayDisplay is how long a replayed action stays visible
	ReplayDisplay = 600 * time.Millisecond

	// ReplayPostDelay separates the last replayed action from the player's turn
	ReplayPostDelay = 500 * time.Millisecond

	// InterRoundDelay is the pause after a completed round before the next one
	InterRoundDelay = 1000 * time.Millisecond

	// GameOverDelay is the pause between a mismatch and the game-over screen
	GameOverDelay = 1000 * time.Millisecond
)

// Persistence
const (
	// HighScoreLoadTimeout bounds the startup read of the persisted high score
	HighScoreLoadTimeout = 2 * time.Second

	// HighScoreSaveTimeout bounds a background high score write
	HighScoreSaveTimeout = 2 * time.Second
)

// Messages shown during play
const (
	MessageWatch    = "WATCH"
	MessageYourTurn = "YOUR TURN"
)
