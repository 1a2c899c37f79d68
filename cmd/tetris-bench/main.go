// Command tetris-bench runs headless games with a random player as fast as
// the machine allows and prints a timing report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/tetris/config"
	"github.com/plus3/tetris/hud"
	"github.com/plus3/tetris/play"
	"github.com/plus3/tetris/tetris"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	cfg, err := config.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	log.Println("Starting tetris benchmark...")

	seed := cfg.ResolveSeed()
	sim := tetris.NewSimulation(cfg.SimulationOptions())
	session := play.NewSession(sim, play.Options{})
	scores := hud.NewScoreBoard(sim)
	sim.Subscribe(scores)
	player := play.NewAutoPlayer(session, config.NewRand(seed+1))
	session.Register(player)

	report := &Report{
		Duration:       *duration,
		Level:          cfg.Level,
		Mode:           cfg.GameOverMode,
		Randomizer:     cfg.Randomizer,
		Seed:           seed,
		FrameInterval:  cfg.FrameInterval,
		GCPauseMetrics: *gcPauseMetrics,
	}
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("Running for %s with seed %d...\n", *duration, seed)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	report.TotalTime, report.TotalUpdates = run(ctx, session, cfg.FrameInterval, &report.UpdateTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	report.Scores = scores.Stats()
	report.Games = player.Games
	report.Tasks = session.Scheduler().GetStats().Tasks

	log.Println("Benchmark finished.")

	fmt.Println("\n\n--- Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}

// run steps session with a fixed simulated dt until ctx is done, recording
// the wall time of each step.
func run(ctx context.Context, session *play.Session, dt time.Duration, samples *Stats) (time.Duration, int64) {
	start := time.Now()
	var updates int64
	for ctx.Err() == nil {
		stepStart := time.Now()
		session.Step(dt)
		samples.Samples = append(samples.Samples, time.Since(stepStart))
		updates++
	}
	return time.Since(start), updates
}
