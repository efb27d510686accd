package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/simon-says/constants"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves, optionally sweeping frequency exponentially
type oscillator struct {
	freqStart float64
	freqEnd   float64
	phase     float64
	duration  int
	position  int
	wave      WaveType
	rate      beep.SampleRate
}

// NewOscillator creates a fixed-frequency oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator whose frequency moves exponentially from start to end
func NewSweep(start, end float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freqStart: start,
		freqEnd:   end,
		duration:  rate.N(duration),
		wave:      wave,
		rate:      rate,
	}
}

func (o *oscillator) frequency() float64 {
	if o.freqStart == o.freqEnd || o.freqStart <= 0 || o.freqEnd <= 0 || o.duration == 0 {
		return o.freqStart
	}
	progress := float64(o.position) / float64(o.duration)
	return o.freqStart * math.Pow(o.freqEnd/o.freqStart, progress)
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		// Advance phase
		o.phase += o.frequency() / float64(o.rate)
		o.phase = o.phase - math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// gainRamp scales a stream by a gain that falls exponentially from start to end
type gainRamp struct {
	streamer beep.Streamer
	position int
	total    int
	start    float64
	end      float64
}

// NewGainRamp shapes s with an exponential gain ramp over duration
func NewGainRamp(s beep.Streamer, duration time.Duration, start, end float64, rate beep.SampleRate) beep.Streamer {
	return &gainRamp{
		streamer: s,
		total:    rate.N(duration),
		start:    start,
		end:      end,
	}
}

func (g *gainRamp) gain() float64 {
	if g.total == 0 || g.start <= 0 || g.end <= 0 {
		return g.start
	}
	progress := float64(g.position) / float64(g.total)
	if progress > 1 {
		progress = 1
	}
	return g.start * math.Pow(g.end/g.start, progress)
}

func (g *gainRamp) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = g.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if g.position >= g.total {
			return i, i > 0
		}
		vol := g.gain()
		samples[i][0] *= vol
		samples[i][1] *= vol
		g.position++
	}

	return n, ok
}

func (g *gainRamp) Err() error { return g.streamer.Err() }

// Helper to create a volume effect safely
// math.Log2(0) is -Inf, so we handle 0 volume by making it silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// ToneFrequency returns the pitch of an action tone
func ToneFrequency(st SoundType) float64 {
	switch st {
	case SoundUp:
		return constants.ToneUp
	case SoundDown:
		return constants.ToneDown
	case SoundButton:
		return constants.ToneButton
	case SoundShake:
		return constants.ToneShake
	default:
		return 0
	}
}

// CreateToneSound generates the retro square beep for an action
func CreateToneSound(freq float64, cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewOscillator(freq, constants.ToneDuration, WaveSquare, rate)
	shaped := NewGainRamp(osc, constants.ToneDuration, constants.ToneGainStart, constants.ToneGainEnd, rate)

	return newVolume(shaped, cfg.MasterVolume)
}

// CreateErrorSound generates the falling sawtooth played on a mismatch
func CreateErrorSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	osc := NewSweep(constants.ErrorSoundFreqStart, constants.ErrorSoundFreqEnd, constants.ErrorSoundDuration, WaveSaw, rate)
	shaped := NewGainRamp(osc, constants.ErrorSoundDuration, constants.ToneGainStart, constants.ToneGainEnd, rate)

	return newVolume(shaped, cfg.MasterVolume)
}

// GetSoundEffect returns the appropriate sound effect streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundUp, SoundDown, SoundButton, SoundShake:
		return CreateToneSound(ToneFrequency(soundType), cfg)
	case SoundError:
		return CreateErrorSound(cfg)
	default:
		return nil
	}
}
