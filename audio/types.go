package audio

import "github.com/lixenwraith/simon-says/game"

// SoundType represents the cues the game can play
type SoundType int

const (
	SoundUp     SoundType = iota // C5 square
	SoundDown                    // G4 square
	SoundButton                  // E5 square
	SoundShake                   // G5 square
	SoundError                   // Falling sawtooth on mismatch
	soundTypeCount
)

// SoundForAction maps a player action to its tone
func SoundForAction(a game.Action) (SoundType, bool) {
	switch a {
	case game.ActionUp:
		return SoundUp, true
	case game.ActionDown:
		return SoundDown, true
	case game.ActionButton:
		return SoundButton, true
	case game.ActionShake:
		return SoundShake, true
	default:
		return 0, false
	}
}

// AudioConfig holds audio settings
type AudioConfig struct {
	Enabled      bool
	MasterVolume float64 // 0.0-1.0
	SampleRate   int
}
