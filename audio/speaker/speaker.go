// Package speaker plays audio cues through the system sound device using
// the beep speaker.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	beepspeaker "github.com/gopxl/beep/speaker"
	"github.com/plus3/tetris/audio"
)

// Player renders every cue once and replays the buffers on demand.
type Player struct {
	mu      sync.Mutex
	buffers map[audio.Cue]*beep.Buffer
	closed  bool
}

// New initializes the speaker at settings.SampleRate and prepares the cues.
func New(settings audio.Settings) (*Player, error) {
	rate := settings.SampleRate
	if err := beepspeaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("speaker init: %w", err)
	}

	buffers, err := Buffers(settings)
	if err != nil {
		return nil, err
	}
	return &Player{buffers: buffers}, nil
}

// Buffers renders every cue into an in-memory beep buffer.
func Buffers(settings audio.Settings) (map[audio.Cue]*beep.Buffer, error) {
	format := beep.Format{SampleRate: settings.SampleRate, NumChannels: 2, Precision: 2}
	buffers := make(map[audio.Cue]*beep.Buffer, len(audio.Cues))
	for _, cue := range audio.Cues {
		streamer, err := audio.Streamer(cue, settings)
		if err != nil {
			return nil, err
		}
		buf := beep.NewBuffer(format)
		buf.Append(streamer)
		buffers[cue] = buf
	}
	return buffers, nil
}

// Play implements audio.Player. It returns as soon as the cue is queued.
func (p *Player) Play(cue audio.Cue) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return fmt.Errorf("speaker closed")
	}
	buf, ok := p.buffers[cue]
	if !ok {
		return fmt.Errorf("no buffer for cue %s", cue)
	}
	beepspeaker.Play(buf.Streamer(0, buf.Len()))
	return nil
}

// Close silences anything still playing. Later Play calls fail.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return
	}
	beepspeaker.Clear()
	p.closed = true
}
