// Package config loads the settings shared by the tetris binaries from the
// environment and the command line.
package config

import (
	"errors"
	"flag"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/plus3/tetris/tetris"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

const (
	ModeHalt  = "halt"
	ModeReset = "reset"

	RandomizerUniform = "uniform"
	RandomizerBag     = "bag"
)

// Config holds the game and frontend settings.
type Config struct {
	Level         int           `env:"TETRIS_LEVEL"          envDefault:"1"`
	GameOverMode  string        `env:"TETRIS_GAME_OVER"      envDefault:"halt"`
	Randomizer    string        `env:"TETRIS_RANDOMIZER"     envDefault:"uniform"`
	Seed          uint64        `env:"TETRIS_SEED"`
	FrameInterval time.Duration `env:"TETRIS_FRAME_INTERVAL" envDefault:"16ms"`
	Muted         bool          `env:"TETRIS_MUTED"`
	MasterVolume  float64       `env:"TETRIS_VOLUME"         envDefault:"0.5"`
	SampleRate    int           `env:"TETRIS_SAMPLE_RATE"    envDefault:"44100"`
	Debug         bool          `env:"TETRIS_DEBUG"`
}

// ParseEnv reads a Config from the environment, applying defaults.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// ParseConfig reads the environment, then lets flags in args override it,
// and validates the result.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg, err := ParseEnv()
	if err != nil {
		return Config{}, err
	}

	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// RegisterFlags binds command-line flags to cfg, using the current values
// as defaults.
func (cfg *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&cfg.Level, "level", cfg.Level, "starting level, sets gravity speed")
	fs.StringVar(&cfg.GameOverMode, "game-over", cfg.GameOverMode, "what a blocked spawn does: halt or reset")
	fs.StringVar(&cfg.Randomizer, "randomizer", cfg.Randomizer, "piece randomizer: uniform or bag")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "piece seed, 0 picks one at random")
	fs.DurationVar(&cfg.FrameInterval, "frame", cfg.FrameInterval, "frame interval for ticker driven loops")
	fs.BoolVar(&cfg.Muted, "mute", cfg.Muted, "start with sound off")
	fs.Float64Var(&cfg.MasterVolume, "volume", cfg.MasterVolume, "master volume between 0 and 1")
	fs.IntVar(&cfg.SampleRate, "sample-rate", cfg.SampleRate, "audio sample rate in Hz")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "show the debug overlay")
}

// Validate reports the first setting that cannot be used.
func (cfg Config) Validate() error {
	switch {
	case cfg.Level < 1:
		return fmt.Errorf("%w: level %d is below 1", ErrInvalid, cfg.Level)
	case cfg.GameOverMode != ModeHalt && cfg.GameOverMode != ModeReset:
		return fmt.Errorf("%w: unknown game over mode %q", ErrInvalid, cfg.GameOverMode)
	case cfg.Randomizer != RandomizerUniform && cfg.Randomizer != RandomizerBag:
		return fmt.Errorf("%w: unknown randomizer %q", ErrInvalid, cfg.Randomizer)
	case cfg.FrameInterval <= 0:
		return fmt.Errorf("%w: frame interval %v must be positive", ErrInvalid, cfg.FrameInterval)
	case cfg.MasterVolume < 0 || cfg.MasterVolume > 1:
		return fmt.Errorf("%w: volume %v outside [0,1]", ErrInvalid, cfg.MasterVolume)
	case cfg.SampleRate <= 0:
		return fmt.Errorf("%w: sample rate %d must be positive", ErrInvalid, cfg.SampleRate)
	}
	return nil
}

// Mode maps GameOverMode to the simulation setting.
func (cfg Config) Mode() tetris.GameOverMode {
	if cfg.GameOverMode == ModeReset {
		return tetris.GameOverReset
	}
	return tetris.GameOverHalt
}

// ResolveSeed replaces a zero Seed with a random one and returns it, so
// every generator built from cfg afterwards shares the same seed.
func (cfg *Config) ResolveSeed() uint64 {
	if cfg.Seed == 0 {
		cfg.Seed = rand.Uint64()
	}
	return cfg.Seed
}

// NewRand returns a generator seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Source builds the piece source described by Randomizer and Seed.
func (cfg Config) Source() tetris.Source {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := NewRand(seed)

	if cfg.Randomizer == RandomizerBag {
		return tetris.NewBagSource(rng)
	}
	return tetris.NewRandomSource(rng)
}

// SimulationOptions collects everything NewSimulation needs.
func (cfg Config) SimulationOptions() tetris.Options {
	return tetris.Options{
		Source:       cfg.Source(),
		Level:        cfg.Level,
		GameOverMode: cfg.Mode(),
	}
}
