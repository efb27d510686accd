package constants

import "time"

// Input classification
const (
	// ShakeThreshold is the accelerometer magnitude above which a reading counts as a shake
	ShakeThreshold = 20.0

	// ShakeCooldown suppresses repeated shakes from one physical motion
	ShakeCooldown = 400 * time.Millisecond
)

// Screen layout
const (
	// ScreenWidth and ScreenHeight size the Game Boy style frame in cells
	ScreenWidth  = 32
	ScreenHeight = 14
)

// Remote bridge
const (
	BridgeReadLimit    = 4096
	BridgeReadDeadline = 60 * time.Second
	BridgeWriteTimeout = 5 * time.Second
	ShutdownTimeout    = 3 * time.Second
)
