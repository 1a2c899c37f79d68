// Command tetris-tui plays the game in a terminal.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/plus3/tetris/audio"
	"github.com/plus3/tetris/audio/speaker"
	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/hud"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
	"golang.org/x/text/language"
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}
	defer screen.Fini()

	sim := tetris.NewSimulation(cfg.SimulationOptions())
	session := play.NewSession(sim, play.Options{})
	scores := hud.NewScoreBoard(sim)
	sim.Subscribe(scores)

	var player audio.Player = audio.PlayerFunc(func(audio.Cue) error { return nil })
	sp, err := speaker.New(audio.Settings{SampleRate: beep.SampleRate(cfg.SampleRate), Volume: cfg.MasterVolume})
	if err != nil {
		// The game runs without sound.
		log.Printf("audio init failed: %v", err)
	} else {
		defer sp.Close()
		player = sp
	}
	sound := audio.NewObserver(player, log.Default())
	sound.SetMuted(cfg.Muted)
	sim.Subscribe(sound)

	view := &View{
		screen:  screen,
		session: session,
		scores:  scores,
		sound:   sound,
		printer: hud.Printer(language.English),
	}
	session.Register(view)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			if !handleEvent(ev, session, sound, screen) {
				cancel()
				return
			}
		}
	}()

	session.Run(ctx, cfg.FrameInterval)
	screen.Fini()
	log.Printf("finished: score=%d best=%d games=%d", scores.Stats().Score, scores.Stats().Best, scores.Stats().Games)
}
