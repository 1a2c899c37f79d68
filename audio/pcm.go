package audio

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/gopxl/beep"
)

// PCM drains s into signed 16-bit little-endian stereo frames, the layout
// ebiten's audio players read.
func PCM(s beep.Streamer) ([]byte, error) {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok || n == 0 {
			break
		}
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("audio: render pcm: %w", err)
	}
	return out, nil
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// Render builds every cue as PCM bytes, keyed by cue.
func Render(s Settings) (map[Cue][]byte, error) {
	out := make(map[Cue][]byte, len(Cues))
	for _, cue := range Cues {
		streamer, err := Streamer(cue, s)
		if err != nil {
			return nil, err
		}
		pcm, err := PCM(streamer)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cue, err)
		}
		out[cue] = pcm
	}
	return out, nil
}
