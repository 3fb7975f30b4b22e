package config

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/jokerforbots/internal/bot"
	"github.com/lox/jokerforbots/internal/game"
	"github.com/lox/jokerforbots/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fullConfig = `
run {
  seed      = "AAAAAAAA"
  stake     = "blue"
  win_ante  = 4
  hands     = 5
  discards  = 2
  hand_size = 9
  money     = 10
  deck      = "As Ks Qs Js 10s"
}

joker "Ceremonial Dagger" {
  eternal  = true
  priority = { hand_played = -1 }
}

joker "Joker" {
  edition = "negative"
}

script {
  shop      = ["exit"]
  selection = ["play"]
  blind     = ["select 0 1 2 3 4", "play"]
}

simulation {
  bot         = "eager"
  runs        = 12
  base_seed   = 7
  concurrency = 3
  timeout     = "2s"
}
`

func quietLogger() *log.Logger {
	return log.New(io.Discard)
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(EnvSeed, "")
	t.Setenv(EnvStake, "")
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "white", cfg.Run.Stake)
	assert.Equal(t, 8, cfg.Run.WinAnte)
	assert.Equal(t, 4, cfg.Run.Hands)
	assert.Equal(t, "greedy", cfg.Simulation.Bot)
	assert.False(t, cfg.HasScript())
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "run.hcl")
	require.NoError(t, os.WriteFile(path, []byte(fullConfig), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "AAAAAAAA", cfg.Run.Seed)
	assert.Equal(t, 5, cfg.Run.Hands)
	require.Len(t, cfg.Jokers, 2)
	assert.Equal(t, "Ceremonial Dagger", cfg.Jokers[0].Name)
	assert.Equal(t, map[string]int{"hand_played": -1}, cfg.Jokers[0].Priority)
	assert.True(t, cfg.HasScript())
}

func TestRunConfig(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse([]byte(fullConfig), "full.hcl")
	require.NoError(t, err)

	rc, err := cfg.RunConfig("", nil)
	require.NoError(t, err)
	assert.Equal(t, "AAAAAAAA", rc.Seed)
	assert.Equal(t, game.Blue, rc.Stake)
	assert.True(t, rc.Exact)
	assert.Equal(t, 4, rc.WinAnte)
	assert.Equal(t, 5, rc.Hands)
	assert.Equal(t, 2, rc.Discards)
	assert.Equal(t, 9, rc.HandSize)
	assert.Equal(t, 10, rc.Money)
	assert.Equal(t, poker.MustParseCards("As Ks Qs Js Ts"), rc.Cards)

	require.Len(t, rc.Jokers, 2)
	dagger, jimbo := rc.Jokers[0], rc.Jokers[1]
	assert.Equal(t, game.CeremonialDagger, dagger.Type())
	assert.True(t, dagger.Stickers.Eternal)
	assert.Equal(t, -1, dagger.Priority(game.EventHandPlayed))
	assert.Equal(t, game.EditionNegative, jimbo.Edition)

	again, err := cfg.RunConfig("BBBBBBBB", nil)
	require.NoError(t, err)
	assert.Equal(t, "BBBBBBBB", again.Seed)
	assert.NotSame(t, dagger, again.Jokers[0], "every run gets its own jokers")
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv(EnvSeed, "ENVSEED1")
	t.Setenv(EnvStake, "gold")

	cfg, err := Parse([]byte(fullConfig), "full.hcl")
	require.NoError(t, err)
	assert.Equal(t, "ENVSEED1", cfg.Run.Seed)
	assert.Equal(t, "gold", cfg.Run.Stake)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	assert.Equal(t, "ENVSEED1", cfg.Run.Seed)
}

func TestParseErrors(t *testing.T) {
	clearEnv(t)

	_, err := Parse([]byte(`run {`), "broken.hcl")
	assert.ErrorContains(t, err, "failed to parse")

	_, err = Parse([]byte(`run { colour = "red" }`), "unknown.hcl")
	assert.ErrorContains(t, err, "failed to decode")
}

func TestValidate(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"stake", func(c *Config) { c.Run.Stake = "platinum" }},
		{"win ante", func(c *Config) { c.Run.WinAnte = -1 }},
		{"hands", func(c *Config) { c.Run.Hands = -2 }},
		{"discards", func(c *Config) { c.Run.Discards = ptr(-1) }},
		{"deck", func(c *Config) { c.Run.Deck = "As Zz" }},
		{"joker", func(c *Config) { c.Jokers = []JokerConfig{{Name: "Not A Joker"}} }},
		{"edition", func(c *Config) { c.Jokers = []JokerConfig{{Name: "Joker", Edition: "gilded"}} }},
		{"event", func(c *Config) { c.Jokers = []JokerConfig{{Name: "Joker", Priority: map[string]int{"shop": 1}}} }},
		{"script", func(c *Config) { c.Script.Blind = []string{"juggle"} }},
		{"bot", func(c *Config) { c.Simulation.Bot = "maniac" }},
		{"runs", func(c *Config) { c.Simulation.Runs = -5 }},
		{"timeout", func(c *Config) { c.Simulation.Timeout = "soon" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}
}

func TestController(t *testing.T) {
	clearEnv(t)

	ctrl, err := DefaultConfig().Controller(0, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &bot.Bot{}, ctrl)

	cfg, err := Parse([]byte(fullConfig), "full.hcl")
	require.NoError(t, err)
	ctrl, err = cfg.Controller(0, quietLogger())
	require.NoError(t, err)
	assert.IsType(t, &bot.ScriptBot{}, ctrl)
}

func TestSimulatorConfig(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse([]byte(fullConfig), "full.hcl")
	require.NoError(t, err)

	sc, err := cfg.SimulatorConfig(quietLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{"AAAAAAAA"}, sc.Seeds)
	assert.Equal(t, 12, sc.Runs)
	assert.Equal(t, int64(7), sc.BaseSeed)
	assert.Equal(t, 3, sc.Concurrency)
	assert.Equal(t, 2*time.Second, sc.Timeout)

	logger := quietLogger()
	sc, err = cfg.SimulatorConfig(logger)
	require.NoError(t, err)
	rc := sc.RunConfig("CCCCCCCC")
	assert.Equal(t, "CCCCCCCC", rc.Seed)
	assert.Len(t, rc.Jokers, 2)
	assert.Same(t, logger, rc.Logger)

	cfg.Run.Deck = "As Zz"
	_, err = cfg.SimulatorConfig(logger)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestZeroResourcesAreKept(t *testing.T) {
	clearEnv(t)

	cfg, err := Parse([]byte("run {\n  discards = 0\n  money    = 0\n}\n"), "zero.hcl")
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	rc, err := cfg.RunConfig("AAAAAAAA", nil)
	require.NoError(t, err)
	r := game.NewRun(rc)
	assert.Equal(t, 0, r.Discards)
	assert.Equal(t, 0, r.Money)
	assert.Equal(t, 4, r.Hands)
}

func TestDiscardsFollowFinalStake(t *testing.T) {
	clearEnv(t)

	tests := []struct {
		name         string
		src          string
		stake        string
		wantDiscards int
	}{
		{"white default", "", "", 3},
		{"blue default", `run { stake = "blue" }`, "", 2},
		{"stake set after load", "", "gold", 2},
		{"explicit discards", "run {\n  stake    = \"blue\"\n  discards = 3\n}\n", "", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Parse([]byte(tt.src), "stake.hcl")
			require.NoError(t, err)
			if tt.stake != "" {
				cfg.Run.Stake = tt.stake
			}
			require.NoError(t, cfg.Validate())

			rc, err := cfg.RunConfig("AAAAAAAA", nil)
			require.NoError(t, err)
			assert.Equal(t, tt.wantDiscards, game.NewRun(rc).Discards)
		})
	}
}

func TestWithBot(t *testing.T) {
	clearEnv(t)

	cfg := DefaultConfig()
	rand := cfg.WithBot("rand")
	assert.Equal(t, "rand", rand.Simulation.Bot)
	assert.Equal(t, "greedy", cfg.Simulation.Bot, "the original is unchanged")

	sc, err := rand.SimulatorConfig(quietLogger())
	require.NoError(t, err)
	assert.Equal(t, "rand", sc.Bot)
}
