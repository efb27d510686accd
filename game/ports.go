package game

import (
	"context"
	"errors"
	"time"
)

// ErrNoHighScore is returned by Storage when nothing has been persisted yet
var ErrNoHighScore = errors.New("no high score stored")

// ErrGameInProgress is returned by Start outside of Idle and GameOver
var ErrGameInProgress = errors.New("game in progress")

// View identifies a full screen the presenter can switch to
type View uint8

const (
	ViewTitle View = iota
	ViewPlay
	ViewGameOver
)

func (v View) String() string {
	switch v {
	case ViewTitle:
		return "title"
	case ViewPlay:
		return "play"
	case ViewGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Presenter renders engine state to the player
type Presenter interface {
	ShowView(v View)
	UpdateRoundScore(round, score int)
	EmitAction(a Action)
	HideAction()
	ShowMessage(text string)
	HideMessage()
	ShowGameOver(score, highScore int)
}

// AudioCue plays feedback sounds, failures are swallowed by the implementation
type AudioCue interface {
	Play(a Action)
	PlayError()
}

// Storage persists the high score
// Implementations must be safe for use from a goroutine other than the engine's
type Storage interface {
	LoadHighScore(ctx context.Context) (int, error)
	SaveHighScore(ctx context.Context, score int) error
}

// Scheduler runs fn after d on the engine's thread of control
// Callbacks scheduled with an earlier or equal deadline run first
type Scheduler interface {
	After(d time.Duration, fn func()) (cancel func())
}

// Observer receives lifecycle notifications, used for metrics
type Observer interface {
	GameStarted(gameID string)
	RoundCompleted(gameID string, round, score int)
	GameEnded(gameID string, score, highScore int, newHigh bool)
	InputIgnored(phase GamePhase, a Action)
}
