package input

import "github.com/lixenwraith/simon-says/game"

// IntentType discriminates what an input event asks for
type IntentType uint8

const (
	IntentNone   IntentType = iota
	IntentAction            // Player action for the engine
	IntentQuit              // Ctrl+Q, Ctrl+C, Esc
	IntentResize            // Terminal resize event
)

// Intent is a classified input event
type Intent struct {
	Type   IntentType
	Action game.Action // Valid only for IntentAction
}

// Sink receives classified player actions
// Implementations must be safe to call from the input goroutine
type Sink func(game.Action)
