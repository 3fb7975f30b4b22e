package main

import (
	"cmp"
	"context"
	"fmt"
	"maps"
	"os"
	"os/signal"
	"slices"
	"time"

	"github.com/lox/jokerforbots/internal/config"
	"github.com/lox/jokerforbots/internal/game"
	"github.com/lox/jokerforbots/internal/simulator"
	"github.com/lox/jokerforbots/internal/statistics"
)

type ScanCmd struct {
	Options `embed:""`

	Seeds       []string `arg:"" optional:"" help:"Seeds to simulate (defaults to generated seeds)"`
	Runs        int      `short:"n" help:"Number of seeds to generate (overrides the config)"`
	BaseSeed    *int64   `help:"Seed for generating run seeds (overrides the config)"`
	Bot         string   `help:"Override the configured bot (greedy|eager|rand)"`
	Concurrency int      `short:"j" help:"Runs simulated at once (overrides the config)"`
	Results     bool     `help:"Print one line per run"`
}

func (c *ScanCmd) Run() error {
	logger := c.logger()
	cfg, err := c.load(func(cfg *config.Config) {
		if c.Runs > 0 {
			cfg.Simulation.Runs = c.Runs
		}
		if c.BaseSeed != nil {
			cfg.Simulation.BaseSeed = int(*c.BaseSeed)
		}
		if c.Bot != "" {
			cfg.Simulation.Bot = c.Bot
		}
		if c.Concurrency > 0 {
			cfg.Simulation.Concurrency = c.Concurrency
		}
	})
	if err != nil {
		return err
	}

	sc, err := cfg.SimulatorConfig(logger)
	if err != nil {
		return err
	}
	if len(c.Seeds) > 0 {
		sc.Seeds = c.Seeds
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := simulator.New(sc).Run(ctx)
	if err != nil {
		return err
	}

	if c.Results {
		printResults(report.Results)
	}
	printSummary(report, cfg.Simulation.Bot)
	return nil
}

func printResults(results []statistics.RunResult) {
	header("Runs")
	for _, res := range results {
		outcome := outcomeStyle(res.Outcome).Render(fmt.Sprintf("%-7s", res.Outcome))
		fmt.Printf("%s  %s  ante %d  %s  %.0f/%.0f  $%d\n",
			res.Seed, outcome, res.Ante, res.Tier, res.Score, res.Requirement, res.Money)
	}
	fmt.Println()
}

func printSummary(report *simulator.Report, bot string) {
	s := report.Stats
	low, high := s.WinRateInterval95()
	anteLow, anteHigh := s.ConfidenceInterval95()

	header("Simulation summary")
	row("Runs", "%d (%s)", s.Runs, bot)
	row("Win rate", "%s [%.1f%%, %.1f%%]",
		successStyle.Render(fmt.Sprintf("%.1f%%", s.WinRate()*100)), low*100, high*100)
	row("Ante reached", "mean %.2f [%.2f, %.2f], median %.0f, p90 %.0f",
		s.Mean(), anteLow, anteHigh, s.Median(), s.Percentile(0.9))
	row("Blinds", "%.1f cleared per run", s.MeanBlinds())
	row("Outcomes", "%d won, %d lost, %d aborted", s.Wins, s.Losses, s.Aborts)
	if s.MaxScoreSeed != "" {
		row("Best score", "%.0f (%s)", s.MaxScore, s.MaxScoreSeed)
	}
	row("Throughput", "%.1f runs/sec in %v", report.RunsPerSecond(), report.Elapsed.Round(time.Millisecond))

	if len(s.LossesByAnte) > 0 {
		fmt.Println()
		header("Losses by ante")
		for _, ante := range slices.Sorted(maps.Keys(s.LossesByAnte)) {
			row(fmt.Sprintf("Ante %d", ante), "%d", s.LossesByAnte[ante])
		}
	}

	if len(s.LossesByBoss) > 0 {
		fmt.Println()
		header("Losses by boss")
		bosses := slices.Collect(maps.Keys(s.LossesByBoss))
		slices.SortFunc(bosses, func(a, b game.Boss) int {
			if c := cmp.Compare(s.LossesByBoss[b], s.LossesByBoss[a]); c != 0 {
				return c
			}
			return cmp.Compare(a, b)
		})
		for _, b := range bosses {
			row(b.String(), "%d", s.LossesByBoss[b])
		}
	}
}
