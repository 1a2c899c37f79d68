package audio

import (
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// Settings are the output parameters shared by every cue.
type Settings struct {
	SampleRate beep.SampleRate
	// Volume scales every cue, from 0 (silent) to 1.
	Volume float64
}

// DefaultSettings match the config defaults.
var DefaultSettings = Settings{SampleRate: 44100, Volume: 0.5}

// WaveType defines oscillator wave shapes.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a finite streamer of one wave shape.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
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

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release, and ends it
// after duration.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope shapes s with a linear attack and release.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.totalSamples {
		return 0, false
	}
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			remaining := e.totalSamples - e.position
			vol = max(float64(remaining)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

type note struct {
	freq     float64
	duration time.Duration
}

func (n note) shaped(wave WaveType, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(n.freq, n.duration, wave, rate)
	return NewEnvelope(osc, n.duration, 5*time.Millisecond, n.duration/2, rate)
}

// Streamer builds a fresh, finite streamer for cue.
func Streamer(cue Cue, s Settings) (beep.Streamer, error) {
	rate := s.SampleRate
	if rate <= 0 {
		return nil, fmt.Errorf("audio: sample rate %d", rate)
	}

	var out beep.Streamer
	switch cue {
	case CueMove:
		out = newVolume(note{220, 40 * time.Millisecond}.shaped(WaveSquare, rate), 0.3)
	case CueRotate:
		const d = 60 * time.Millisecond
		sine, err := generators.SineTone(rate, 660)
		if err != nil {
			return nil, fmt.Errorf("audio: rotate tone: %w", err)
		}
		out = NewEnvelope(beep.Take(rate.N(d), sine), d, 5*time.Millisecond, 40*time.Millisecond, rate)
	case CueDrop:
		thud := note{110, 90 * time.Millisecond}.shaped(WaveSaw, rate)
		noise := note{0, 30 * time.Millisecond}.shaped(WaveNoise, rate)
		out = beep.Mix(newVolume(thud, 0.6), newVolume(noise, 0.2))
	case CueClear:
		out = beep.Seq(
			note{523.25, 70 * time.Millisecond}.shaped(WaveSine, rate),
			note{659.25, 70 * time.Millisecond}.shaped(WaveSine, rate),
			note{783.99, 120 * time.Millisecond}.shaped(WaveSine, rate),
		)
	case CueGameOver:
		out = newVolume(beep.Seq(
			note{392.00, 200 * time.Millisecond}.shaped(WaveSquare, rate),
			note{311.13, 200 * time.Millisecond}.shaped(WaveSquare, rate),
			note{261.63, 400 * time.Millisecond}.shaped(WaveSquare, rate),
		), 0.4)
	default:
		return nil, fmt.Errorf("audio: unknown cue %s", cue)
	}
	return newVolume(out, s.Volume), nil
}
