package input

import (
	"math"
	"sync"
	"time"

	"github.com/lixenwraith/simon-says/constants"
)

// ShakeDetector turns accelerometer samples into shake events
// A shake is reported when the acceleration magnitude exceeds the threshold,
// at most once per cooldown so one physical shake yields one action
type ShakeDetector struct {
	mu        sync.Mutex
	threshold float64
	cooldown  time.Duration
	now       func() time.Time
	last      time.Time
}

// NewShakeDetector uses the default threshold and cooldown
func NewShakeDetector() *ShakeDetector {
	return &ShakeDetector{
		threshold: constants.ShakeThreshold,
		cooldown:  constants.ShakeCooldown,
		now:       time.Now,
	}
}

// Magnitude returns the length of the acceleration vector
func Magnitude(x, y, z float64) float64 {
	return math.Sqrt(x*x + y*y + z*z)
}

// Detect reports whether the sample counts as a shake
func (d *ShakeDetector) Detect(x, y, z float64) bool {
	if Magnitude(x, y, z) <= d.threshold {
		return false
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	now := d.now()
	if !d.last.IsZero() && now.Sub(d.last) < d.cooldown {
		return false
	}
	d.last = now
	return true
}
