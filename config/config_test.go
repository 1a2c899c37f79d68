package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/plus3/tetris/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseEnvDefaults(t *testing.T) {
	cfg, err := ParseEnv()
	require.NoError(t, err)

	assert.Equal(t, Config{
		Level:         1,
		GameOverMode:  ModeHalt,
		Randomizer:    RandomizerUniform,
		FrameInterval: 16 * time.Millisecond,
		MasterVolume:  0.5,
		SampleRate:    44100,
	}, cfg)
	assert.NoError(t, cfg.Validate())
}

func TestParseEnv(t *testing.T) {
	t.Setenv("TETRIS_LEVEL", "4")
	t.Setenv("TETRIS_GAME_OVER", "reset")
	t.Setenv("TETRIS_RANDOMIZER", "bag")
	t.Setenv("TETRIS_SEED", "42")
	t.Setenv("TETRIS_MUTED", "true")

	cfg, err := ParseEnv()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Level)
	assert.Equal(t, ModeReset, cfg.GameOverMode)
	assert.Equal(t, RandomizerBag, cfg.Randomizer)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.True(t, cfg.Muted)
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("TETRIS_LEVEL", "not-an-int")

	_, err := ParseEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("TETRIS_LEVEL", "4")

	cfg, err := ParseConfig(newFlagSet(), []string{"-level", "7", "-mute", "-volume", "0.25"})
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.Level)
	assert.True(t, cfg.Muted)
	assert.Equal(t, 0.25, cfg.MasterVolume)
}

func TestParseConfigInvalid(t *testing.T) {
	_, err := ParseConfig(newFlagSet(), []string{"-game-over", "explode"})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = ParseConfig(newFlagSet(), []string{"-no-such-flag"})
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := Config{
		Level:         1,
		GameOverMode:  ModeHalt,
		Randomizer:    RandomizerBag,
		FrameInterval: time.Millisecond,
		MasterVolume:  1,
		SampleRate:    48000,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"level", func(c *Config) { c.Level = 0 }},
		{"mode", func(c *Config) { c.GameOverMode = "" }},
		{"randomizer", func(c *Config) { c.Randomizer = "7bag" }},
		{"frame", func(c *Config) { c.FrameInterval = 0 }},
		{"volume low", func(c *Config) { c.MasterVolume = -0.1 }},
		{"volume high", func(c *Config) { c.MasterVolume = 1.5 }},
		{"sample rate", func(c *Config) { c.SampleRate = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestResolveSeed(t *testing.T) {
	cfg := Config{Seed: 7}
	assert.Equal(t, uint64(7), cfg.ResolveSeed())

	cfg = Config{}
	seed := cfg.ResolveSeed()
	assert.Equal(t, seed, cfg.Seed)
	assert.Equal(t, seed, cfg.ResolveSeed(), "resolved once")

	a, b := NewRand(seed), NewRand(seed)
	assert.Equal(t, a.Uint64(), b.Uint64())
}

func TestSimulationOptions(t *testing.T) {
	cfg := Config{Level: 3, GameOverMode: ModeReset, Randomizer: RandomizerBag, Seed: 9}
	opts := cfg.SimulationOptions()

	assert.Equal(t, 3, opts.Level)
	assert.Equal(t, tetris.GameOverReset, opts.GameOverMode)
	require.IsType(t, &tetris.BagSource{}, opts.Source)

	// Same seed, same deal.
	other := cfg.Source()
	for range 21 {
		assert.Equal(t, opts.Source.Next(), other.Next())
	}

	cfg.Randomizer = RandomizerUniform
	cfg.GameOverMode = ModeHalt
	assert.IsType(t, &tetris.RandomSource{}, cfg.Source())
	assert.Equal(t, tetris.GameOverHalt, cfg.Mode())
}
