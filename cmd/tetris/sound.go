package main

import (
	"fmt"

	ebitenaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/plus3/tetris/audio"
)

// soundPlayer replays pre-rendered cues through ebiten's audio context.
type soundPlayer struct {
	ctx *ebitenaudio.Context
	pcm map[audio.Cue][]byte
}

func newSoundPlayer(settings audio.Settings) (*soundPlayer, error) {
	pcm, err := audio.Render(settings)
	if err != nil {
		return nil, err
	}
	return &soundPlayer{
		ctx: ebitenaudio.NewContext(int(settings.SampleRate)),
		pcm: pcm,
	}, nil
}

func (p *soundPlayer) Play(cue audio.Cue) error {
	b, ok := p.pcm[cue]
	if !ok {
		return fmt.Errorf("no pcm for cue %s", cue)
	}
	p.ctx.NewPlayerFromBytes(b).Play()
	return nil
}
