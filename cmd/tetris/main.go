// Command tetris plays the game in a window, with an optional Dear ImGui
// inspector.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tetris/audio"
	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/debugui"
	debugui_ebiten "github.com/plus3/tetris/debugui/ebiten"
	"github.com/plus3/tetris/hud"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
)

const (
	screenWidth  = 520
	screenHeight = 700
)

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	sim := tetris.NewSimulation(cfg.SimulationOptions())
	session := play.NewSession(sim, play.Options{})
	scores := hud.NewScoreBoard(sim)
	sim.Subscribe(scores)

	settings := audio.Settings{SampleRate: beep.SampleRate(cfg.SampleRate), Volume: cfg.MasterVolume}
	player, err := newSoundPlayer(settings)
	if err != nil {
		log.Fatalf("audio: %v", err)
	}
	sound := audio.NewObserver(player, log.Default())
	sound.SetMuted(cfg.Muted)
	sim.Subscribe(sound)

	game := newGame(session, scores, sound)

	if cfg.Debug {
		game.imgui = debugui_ebiten.NewImguiBackend("Tetris", screenWidth*2, screenHeight)
		events := debugui.NewEventLog(256)
		sim.Subscribe(events)
		game.overlay = debugui.NewOverlay(
			debugui.NewInspector(session),
			events,
			debugui.NewPerformanceStats(session.Scheduler(), 120),
		)
		session.Register(game.overlay)
	} else {
		ebiten.SetWindowSize(screenWidth, screenHeight)
		ebiten.SetWindowTitle("Tetris")
	}

	log.Printf("starting: level=%d mode=%s randomizer=%s", cfg.Level, cfg.GameOverMode, cfg.Randomizer)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
	log.Printf("finished: score=%d best=%d games=%d", scores.Stats().Score, scores.Stats().Best, scores.Stats().Games)
}
