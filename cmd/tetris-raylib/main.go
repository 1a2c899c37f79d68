// Command tetris-raylib plays the game in a raylib window.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gopxl/beep"
	"github.com/plus3/tetris/audio"
	"github.com/plus3/tetris/audio/speaker"
	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/hud"
	"github.com/plus3/tetris/input"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
	"golang.org/x/text/language"
)

var keys = map[tetris.Command][]int32{
	tetris.CommandMoveLeft:  {rl.KeyLeft, rl.KeyA},
	tetris.CommandMoveRight: {rl.KeyRight, rl.KeyD},
	tetris.CommandSoftDrop:  {rl.KeyDown, rl.KeyS},
	tetris.CommandRotate:    {rl.KeyUp, rl.KeyW, rl.KeyZ},
	tetris.CommandHardDrop:  {rl.KeySpace},
}

func readKey(cmd tetris.Command) input.KeyState {
	var state input.KeyState
	for _, k := range keys[cmd] {
		state.Pressed = state.Pressed || rl.IsKeyPressed(k)
		state.Down = state.Down || rl.IsKeyDown(k)
	}
	return state
}

// targetFPS converts a frame interval to a raylib frame rate. raylib reads
// 0 as unlimited, so slow frames round up to 1.
func targetFPS(interval time.Duration) int32 {
	return int32(max(time.Second/interval, 1))
}

func main() {
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	rl.InitWindow(500, 700, "Tetris")
	rl.SetTargetFPS(targetFPS(cfg.FrameInterval))
	defer rl.CloseWindow()

	sim := tetris.NewSimulation(cfg.SimulationOptions())
	session := play.NewSession(sim, play.Options{})
	scores := hud.NewScoreBoard(sim)
	sim.Subscribe(scores)

	var player audio.Player = audio.PlayerFunc(func(audio.Cue) error { return nil })
	sp, err := speaker.New(audio.Settings{SampleRate: beep.SampleRate(cfg.SampleRate), Volume: cfg.MasterVolume})
	if err != nil {
		log.Printf("audio init failed: %v", err)
	} else {
		defer sp.Close()
		player = sp
	}
	sound := audio.NewObserver(player, log.Default())
	sound.SetMuted(cfg.Muted)
	sim.Subscribe(sound)

	session.Register(&RenderTask{
		session: session,
		scores:  scores,
		sound:   sound,
		printer: hud.Printer(language.English),
	})

	repeater := input.NewRepeater()
	lastTime := rl.GetTime()

	for !rl.WindowShouldClose() {
		currentTime := rl.GetTime()
		dt := time.Duration((currentTime - lastTime) * float64(time.Second))
		lastTime = currentTime

		switch {
		case rl.IsKeyPressed(rl.KeyR):
			session.Submit(tetris.CommandRestart)
		case rl.IsKeyPressed(rl.KeyP):
			session.TogglePause()
			repeater.Reset()
		case rl.IsKeyPressed(rl.KeyM):
			sound.ToggleMute()
		}
		if !session.Paused() {
			for _, cmd := range repeater.Commands(dt, readKey) {
				session.Submit(cmd)
			}
		}

		session.Step(dt)
	}
	log.Printf("finished: score=%d best=%d games=%d", scores.Stats().Score, scores.Stats().Best, scores.Stats().Games)
}
