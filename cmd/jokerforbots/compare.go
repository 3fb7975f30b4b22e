package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/lox/jokerforbots/internal/config"
	"github.com/lox/jokerforbots/internal/regression"
	"github.com/lox/jokerforbots/internal/simulator"
)

type CompareCmd struct {
	Options `embed:""`

	Baseline    string  `default:"greedy" help:"Bot to compare against (greedy|eager|rand)"`
	Candidate   string  `required:"" help:"Bot under test (greedy|eager|rand)"`
	Runs        int     `short:"n" help:"Number of seeds to generate (overrides the config)"`
	BaseSeed    *int64  `help:"Seed for generating run seeds (overrides the config)"`
	Concurrency int     `short:"j" help:"Runs simulated at once per bot (overrides the config)"`
	Alpha       float64 `default:"0.05" help:"Significance level"`
}

func (c *CompareCmd) Run() error {
	logger := c.logger()
	cfg, err := c.load(func(cfg *config.Config) {
		if c.Runs > 0 {
			cfg.Simulation.Runs = c.Runs
		}
		if c.BaseSeed != nil {
			cfg.Simulation.BaseSeed = int(*c.BaseSeed)
		}
		if c.Concurrency > 0 {
			cfg.Simulation.Concurrency = c.Concurrency
		}
	})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := regression.Run(ctx, regression.Config{
		Baseline:  c.Baseline,
		Candidate: c.Candidate,
		Alpha:     c.Alpha,
		Simulation: func(bot string) (simulator.Config, error) {
			return cfg.WithBot(bot).SimulatorConfig(logger)
		},
		Logger: logger,
	})
	if err != nil {
		return err
	}
	printComparison(res, c.Baseline, c.Candidate)
	return nil
}

func printComparison(res *regression.Result, baseline, candidate string) {
	a := res.Ante
	header(fmt.Sprintf("%s vs %s", candidate, baseline))
	row("Seeds", "%d", a.N)
	row("Win rate", "%.1f%% vs %.1f%% (%+.1f pts)",
		res.Candidate.Stats.WinRate()*100, res.Baseline.Stats.WinRate()*100, res.WinRateDiff*100)
	row("Ante reached", "%.2f vs %.2f", res.Candidate.Stats.Mean(), res.Baseline.Stats.Mean())
	row("Difference", "%+.3f [%+.3f, %+.3f]", a.MeanDiff, a.CI95Low, a.CI95High)
	row("Per seed", "%d better, %d worse, %d equal", res.Better, res.Worse, res.Equal)
	row("p-value", "%.4f (%s)", a.PValue, regression.InterpretPValue(a.PValue, res.Alpha))
	row("Effect size", "%.2f (%s)", a.EffectSize, regression.InterpretEffectSize(a.EffectSize))

	style := warningStyle
	switch res.Verdict {
	case regression.Improvement:
		style = successStyle
	case regression.Regression:
		style = errorStyle
	}
	row("Verdict", "%s", style.Render(string(res.Verdict)))
}
