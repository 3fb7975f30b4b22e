package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/lox/jokerforbots/internal/config"
	"github.com/lox/jokerforbots/internal/game"
	"github.com/lox/jokerforbots/internal/seeding"
	"github.com/lox/jokerforbots/poker"
)

type ReplayCmd struct {
	Options `embed:""`

	Seed     string        `arg:"" optional:"" help:"Seed to replay (defaults to the configured seed, then a random one)"`
	Bot      string        `help:"Override the configured bot (greedy|eager|rand)"`
	Timeout  time.Duration `default:"30s" help:"Abort the run after this long"`
	Snapshot string        `type:"path" help:"Write the final random state to this TOML file"`
}

func (c *ReplayCmd) Run() error {
	logger := c.logger()
	cfg, err := c.load(func(cfg *config.Config) {
		if c.Bot != "" {
			cfg.Simulation.Bot = c.Bot
		}
	})
	if err != nil {
		return err
	}

	rc, err := cfg.RunConfig(c.Seed, logger)
	if err != nil {
		return err
	}
	ctrl, err := cfg.Controller(0, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, c.Timeout)
	defer cancel()

	run := game.NewRun(rc)
	res, err := run.Simulate(ctx, ctrl)
	if err != nil {
		logger.Warn("Run did not finish", "seed", run.Seed(), "error", err)
	}
	printRun(run, res)

	if c.Snapshot != "" {
		if err := seeding.SaveSnapshot(c.Snapshot, run.Stream().Snapshot()); err != nil {
			return err
		}
		logger.Info("Wrote snapshot", "path", c.Snapshot, "channels", run.Stream().ChannelCount())
	}
	return nil
}

func printRun(run *game.Run, res game.Result) {
	header("Run " + res.Seed)
	row("Outcome", "%s", outcomeStyle(res.Outcome).Render(res.Outcome.String()))
	row("Stake", "%s", run.Stake())
	if res.Tier == game.BossBlind {
		row("Ante", "%d (%s, %s)", res.Ante, res.Tier, res.Boss)
	} else {
		row("Ante", "%d (%s)", res.Ante, res.Tier)
	}
	row("Last score", "%.0f / %.0f", res.Score, res.Requirement)
	row("Blinds", "%d cleared", res.BlindsCleared)
	row("Hands", "%d played", res.HandsPlayed)
	row("Money", "$%d", res.Money)

	var jokers []string
	for _, j := range run.Jokers() {
		jokers = append(jokers, j.String())
	}
	if len(jokers) == 0 {
		jokers = append(jokers, "none")
	}
	row("Jokers", "%s", strings.Join(jokers, ", "))

	var levels []string
	for _, h := range poker.HandTypes {
		if lvl := run.Level(h); lvl != 1 {
			levels = append(levels, fmt.Sprintf("%s %d", h, lvl))
		}
	}
	if len(levels) > 0 {
		row("Hand levels", "%s", strings.Join(levels, ", "))
	}
	if tags := run.Tags(); len(tags) > 0 {
		row("Tags", "%v", tags)
	}
}
