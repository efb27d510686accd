package constants

import "time"

// Action tone frequencies (Hz)
const (
	ToneUp     = 523.25 // C5
	ToneDown   = 392.00 // G4
	ToneButton = 659.25 // E5
	ToneShake  = 783.99 // G5
)

// Action Tone Timing
const (
	ToneDuration  = 300 * time.Millisecond
	ToneGainStart = 0.3
	ToneGainEnd   = 0.01
)

// Error Sound Timing
const (
	ErrorSoundDuration  = 500 * time.Millisecond
	ErrorSoundFreqStart = 200.0
	ErrorSoundFreqEnd   = 50.0
)

// Audio device
const (
	// DefaultSampleRate is used when no override is configured
	DefaultSampleRate = 44100

	// SpeakerBufferDuration is the speaker buffer length passed to speaker.Init
	SpeakerBufferDuration = 100 * time.Millisecond
)
