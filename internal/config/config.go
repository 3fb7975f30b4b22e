// Package config loads run and simulation settings from HCL files.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/jokerforbots/internal/bot"
	"github.com/lox/jokerforbots/internal/game"
	"github.com/lox/jokerforbots/internal/simulator"
	"github.com/lox/jokerforbots/poker"
)

// Environment variables that override the file.
const (
	EnvSeed  = "JOKERFORBOTS_SEED"
	EnvStake = "JOKERFORBOTS_STAKE"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config represents a complete configuration file
type Config struct {
	Run        *RunSettings        `hcl:"run,block"`
	Jokers     []JokerConfig       `hcl:"joker,block"`
	Script     *ScriptConfig       `hcl:"script,block"`
	Simulation *SimulationSettings `hcl:"simulation,block"`
}

// RunSettings are the starting resources of a run
type RunSettings struct {
	Seed            string `hcl:"seed,optional"`
	Stake           string `hcl:"stake,optional"`
	WinAnte         int    `hcl:"win_ante,optional"`
	Hands           int    `hcl:"hands,optional"`
	Discards        *int   `hcl:"discards,optional"`
	HandSize        int    `hcl:"hand_size,optional"`
	Money           *int   `hcl:"money,optional"`
	JokerSlots      int    `hcl:"joker_slots,optional"`
	ConsumableSlots int    `hcl:"consumable_slots,optional"`
	// Deck replaces the standard 52 cards, e.g. "As Kd 10h".
	Deck string `hcl:"deck,optional"`
}

// JokerConfig is a joker owned from the start of the run
type JokerConfig struct {
	Name       string         `hcl:"name,label"`
	Edition    string         `hcl:"edition,optional"`
	Eternal    bool           `hcl:"eternal,optional"`
	Perishable bool           `hcl:"perishable,optional"`
	Rental     bool           `hcl:"rental,optional"`
	Priority   map[string]int `hcl:"priority,optional"`
}

// ScriptConfig holds recorded decisions, see bot.Script
type ScriptConfig struct {
	Shop      []string `hcl:"shop,optional"`
	Selection []string `hcl:"selection,optional"`
	Blind     []string `hcl:"blind,optional"`
}

// SimulationSettings configure batch runs
type SimulationSettings struct {
	Bot         string `hcl:"bot,optional"`
	Runs        int    `hcl:"runs,optional"`
	BaseSeed    int    `hcl:"base_seed,optional"`
	Concurrency int    `hcl:"concurrency,optional"`
	Timeout     string `hcl:"timeout,optional"`
}

var eventNames = map[string]game.EventType{
	"blind_entered": game.EventBlindEntered,
	"hand_played":   game.EventHandPlayed,
	"card_scored":   game.EventCardScored,
	"discard":       game.EventDiscard,
	"round_ended":   game.EventRoundEnded,
}

var editionNames = map[string]game.JokerEdition{
	"":            game.EditionBase,
	"base":        game.EditionBase,
	"foil":        game.EditionFoil,
	"holographic": game.EditionHolographic,
	"polychrome":  game.EditionPolychrome,
	"negative":    game.EditionNegative,
}

// DefaultConfig returns the configuration used when no file exists
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from an HCL file. A missing file yields the
// defaults. Environment overrides are applied either way.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		cfg := DefaultConfig()
		cfg.applyEnv()
		return cfg, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	return decode(file, diags)
}

// Parse decodes configuration from HCL source; filename is only used in
// diagnostics.
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	return decode(file, diags)
}

func decode(file *hcl.File, diags hcl.Diagnostics) (*Config, error) {
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg.applyDefaults()
	cfg.applyEnv()
	return &cfg, nil
}

// applyDefaults fills unset values. Discards stay nil until RunConfig, since
// their default depends on the final stake.
func (c *Config) applyDefaults() {
	d := game.DefaultRunConfig()
	if c.Run == nil {
		c.Run = &RunSettings{}
	}
	if c.Run.Stake == "" {
		c.Run.Stake = d.Stake.String()
	}
	if c.Run.WinAnte == 0 {
		c.Run.WinAnte = d.WinAnte
	}
	if c.Run.Hands == 0 {
		c.Run.Hands = d.Hands
	}
	if c.Run.HandSize == 0 {
		c.Run.HandSize = d.HandSize
	}
	if c.Run.Money == nil {
		c.Run.Money = ptr(d.Money)
	}
	if c.Run.JokerSlots == 0 {
		c.Run.JokerSlots = d.JokerSlots
	}
	if c.Run.ConsumableSlots == 0 {
		c.Run.ConsumableSlots = d.ConsumableSlots
	}

	if c.Script == nil {
		c.Script = &ScriptConfig{}
	}

	if c.Simulation == nil {
		c.Simulation = &SimulationSettings{}
	}
	if c.Simulation.Bot == "" {
		c.Simulation.Bot = "greedy"
	}
	if c.Simulation.Runs == 0 {
		c.Simulation.Runs = 100
	}
	if c.Simulation.Concurrency == 0 {
		c.Simulation.Concurrency = 4
	}
	if c.Simulation.Timeout == "" {
		c.Simulation.Timeout = "10s"
	}
}

func ptr(v int) *int { return &v }

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func (c *Config) applyEnv() {
	if seed := os.Getenv(EnvSeed); seed != "" {
		c.Run.Seed = seed
	}
	if stake := os.Getenv(EnvStake); stake != "" {
		c.Run.Stake = stake
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if _, err := game.ParseStake(c.Run.Stake); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Run.WinAnte < 1 {
		return fmt.Errorf("%w: win_ante must be at least 1, got %d", ErrInvalidConfig, c.Run.WinAnte)
	}
	if c.Run.Hands < 1 {
		return fmt.Errorf("%w: hands must be positive, got %d", ErrInvalidConfig, c.Run.Hands)
	}
	if discards := deref(c.Run.Discards); discards < 0 {
		return fmt.Errorf("%w: discards cannot be negative, got %d", ErrInvalidConfig, discards)
	}
	if c.Run.HandSize < 1 {
		return fmt.Errorf("%w: hand_size must be positive, got %d", ErrInvalidConfig, c.Run.HandSize)
	}
	if c.Run.JokerSlots < 0 || c.Run.ConsumableSlots < 0 {
		return fmt.Errorf("%w: slots cannot be negative", ErrInvalidConfig)
	}
	if c.Run.Deck != "" {
		if _, err := poker.ParseCards(c.Run.Deck); err != nil {
			return fmt.Errorf("%w: deck: %w", ErrInvalidConfig, err)
		}
	}

	for _, j := range c.Jokers {
		if _, err := game.ParseJokerType(j.Name); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if _, ok := editionNames[strings.ToLower(j.Edition)]; !ok {
			return fmt.Errorf("%w: joker %s: unknown edition %q", ErrInvalidConfig, j.Name, j.Edition)
		}
		for ev := range j.Priority {
			if _, ok := eventNames[ev]; !ok {
				return fmt.Errorf("%w: joker %s: unknown event %q", ErrInvalidConfig, j.Name, ev)
			}
		}
	}

	if _, err := bot.NewScriptBot(c.Script.script(), nil, log.New(io.Discard)); err != nil {
		return fmt.Errorf("%w: script: %w", ErrInvalidConfig, err)
	}

	if _, err := bot.New(c.Simulation.Bot, 0, log.New(io.Discard)); err != nil {
		return fmt.Errorf("%w: simulation: %w", ErrInvalidConfig, err)
	}
	if c.Simulation.Runs < 1 {
		return fmt.Errorf("%w: simulation runs must be positive, got %d", ErrInvalidConfig, c.Simulation.Runs)
	}
	if c.Simulation.Concurrency < 1 {
		return fmt.Errorf("%w: simulation concurrency must be positive, got %d", ErrInvalidConfig, c.Simulation.Concurrency)
	}
	if _, err := time.ParseDuration(c.Simulation.Timeout); err != nil {
		return fmt.Errorf("%w: simulation timeout: %w", ErrInvalidConfig, err)
	}

	return nil
}

func (s *ScriptConfig) script() bot.Script {
	return bot.Script{Shop: s.Shop, Selection: s.Selection, Blind: s.Blind}
}

// HasScript reports whether any recorded decisions are configured
func (c *Config) HasScript() bool {
	return len(c.Script.Shop)+len(c.Script.Selection)+len(c.Script.Blind) > 0
}

// RunConfig builds a game.RunConfig. Jokers are created afresh on every
// call so that each run owns its own. An empty seed leaves the choice to
// the game.
func (c *Config) RunConfig(seed string, logger *log.Logger) (game.RunConfig, error) {
	stake, err := game.ParseStake(c.Run.Stake)
	if err != nil {
		return game.RunConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if seed == "" {
		seed = c.Run.Seed
	}
	discards := stake.Discards()
	if c.Run.Discards != nil {
		discards = *c.Run.Discards
	}

	rc := game.RunConfig{
		Seed:            seed,
		Stake:           stake,
		Exact:           true,
		Hands:           c.Run.Hands,
		Discards:        discards,
		HandSize:        c.Run.HandSize,
		Money:           deref(c.Run.Money),
		JokerSlots:      c.Run.JokerSlots,
		ConsumableSlots: c.Run.ConsumableSlots,
		WinAnte:         c.Run.WinAnte,
		Logger:          logger,
	}

	if c.Run.Deck != "" {
		if rc.Cards, err = poker.ParseCards(c.Run.Deck); err != nil {
			return game.RunConfig{}, fmt.Errorf("%w: deck: %w", ErrInvalidConfig, err)
		}
	}

	for _, jc := range c.Jokers {
		t, err := game.ParseJokerType(jc.Name)
		if err != nil {
			return game.RunConfig{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		edition, ok := editionNames[strings.ToLower(jc.Edition)]
		if !ok {
			return game.RunConfig{}, fmt.Errorf("%w: joker %s: unknown edition %q", ErrInvalidConfig, jc.Name, jc.Edition)
		}

		j := game.NewJoker(t)
		j.Edition = edition
		j.Stickers = game.Stickers{Eternal: jc.Eternal, Perishable: jc.Perishable, Rental: jc.Rental}
		for name, p := range jc.Priority {
			ev, ok := eventNames[name]
			if !ok {
				return game.RunConfig{}, fmt.Errorf("%w: joker %s: unknown event %q", ErrInvalidConfig, jc.Name, name)
			}
			j.SetPriority(ev, p)
		}
		rc.Jokers = append(rc.Jokers, j)
	}
	return rc, nil
}

// Controller returns the scripted controller when a script is configured,
// falling back to the simulation bot once it runs out, or the bot alone.
func (c *Config) Controller(index int, logger *log.Logger) (game.Controller, error) {
	fallback, err := bot.New(c.Simulation.Bot, int64(c.Simulation.BaseSeed+index), logger)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !c.HasScript() {
		return fallback, nil
	}
	script, err := bot.NewScriptBot(c.Script.script(), fallback, logger)
	if err != nil {
		return nil, fmt.Errorf("%w: script: %w", ErrInvalidConfig, err)
	}
	return script, nil
}

// WithBot returns a copy of the configuration that simulates with bot.
func (c *Config) WithBot(bot string) *Config {
	cp := *c
	sim := *c.Simulation
	sim.Bot = bot
	cp.Simulation = &sim
	return &cp
}

// SimulatorConfig builds the simulator configuration. Each run gets its own
// jokers and controller; a seed in the run block replays that one seed.
func (c *Config) SimulatorConfig(logger *log.Logger) (simulator.Config, error) {
	timeout, err := time.ParseDuration(c.Simulation.Timeout)
	if err != nil {
		return simulator.Config{}, fmt.Errorf("%w: simulation timeout: %w", ErrInvalidConfig, err)
	}
	if _, err := c.RunConfig("", logger); err != nil {
		return simulator.Config{}, err
	}

	sc := simulator.Config{
		Runs:        c.Simulation.Runs,
		BaseSeed:    int64(c.Simulation.BaseSeed),
		Bot:         c.Simulation.Bot,
		Concurrency: c.Simulation.Concurrency,
		Timeout:     timeout,
		Logger:      logger,
		NewController: func(_ string, index int) (game.Controller, error) {
			return c.Controller(index, logger)
		},
		RunConfig: func(seed string) game.RunConfig {
			// Only the seed differs from the config checked above.
			rc, _ := c.RunConfig(seed, logger)
			return rc
		},
	}
	if c.Run.Seed != "" {
		sc.Seeds = []string{c.Run.Seed}
	}
	return sc, nil
}
