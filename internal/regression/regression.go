// Package regression compares two bots by simulating both over the same
// seeds and testing the per-seed difference in how far they got.
package regression

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/lox/jokerforbots/internal/simulator"
	"golang.org/x/sync/errgroup"
)

// Verdict summarises a comparison.
type Verdict string

const (
	Improvement  Verdict = "improvement"
	Regression   Verdict = "regression"
	NoDifference Verdict = "no significant difference"
)

// Config describes a comparison between two bots.
type Config struct {
	Baseline  string
	Candidate string
	Alpha     float64 // Significance level; zero means 0.05

	// Simulation returns the simulator configuration for a bot. The seeds of
	// the baseline's configuration are used for both bots.
	Simulation func(bot string) (simulator.Config, error)

	Logger *log.Logger
}

// Result is the outcome of a comparison.
type Result struct {
	Baseline  *simulator.Report
	Candidate *simulator.Report

	Ante        Comparison // Ante reached, paired by seed
	WinRateDiff float64

	// Seeds on which the candidate got further, less far, or as far
	Better int
	Worse  int
	Equal  int

	Alpha   float64
	Verdict Verdict
}

// Run simulates both bots concurrently and compares them.
func Run(ctx context.Context, cfg Config) (*Result, error) {
	if cfg.Simulation == nil {
		return nil, errors.New("regression: no simulation configured")
	}
	if cfg.Alpha <= 0 {
		cfg.Alpha = 0.05
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	baseCfg, err := cfg.Simulation(cfg.Baseline)
	if err != nil {
		return nil, fmt.Errorf("baseline %s: %w", cfg.Baseline, err)
	}
	candCfg, err := cfg.Simulation(cfg.Candidate)
	if err != nil {
		return nil, fmt.Errorf("candidate %s: %w", cfg.Candidate, err)
	}
	seeds := simulator.New(baseCfg).Seeds()
	baseCfg.Seeds, candCfg.Seeds = seeds, seeds

	cfg.Logger.Info("Comparing bots", "baseline", cfg.Baseline, "candidate", cfg.Candidate, "seeds", len(seeds))

	var base, cand *simulator.Report
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := simulator.New(baseCfg).Run(gctx)
		if err != nil {
			return fmt.Errorf("baseline %s: %w", cfg.Baseline, err)
		}
		base = r
		return nil
	})
	g.Go(func() error {
		r, err := simulator.New(candCfg).Run(gctx)
		if err != nil {
			return fmt.Errorf("candidate %s: %w", cfg.Candidate, err)
		}
		cand = r
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := compareReports(base, cand, cfg.Alpha)
	cfg.Logger.Info("Comparison finished",
		"verdict", res.Verdict, "mean_diff", res.Ante.MeanDiff, "p_value", res.Ante.PValue,
		"better", res.Better, "worse", res.Worse)
	return res, nil
}

func compareReports(base, cand *simulator.Report, alpha float64) *Result {
	res := &Result{
		Baseline:    base,
		Candidate:   cand,
		Ante:        Compare(base.Stats.Values, cand.Stats.Values),
		WinRateDiff: cand.Stats.WinRate() - base.Stats.WinRate(),
		Alpha:       alpha,
		Verdict:     NoDifference,
	}

	for i := range min(len(base.Results), len(cand.Results)) {
		b, c := base.Results[i], cand.Results[i]
		switch {
		case c.Ante > b.Ante || (c.Ante == b.Ante && c.BlindsCleared > b.BlindsCleared):
			res.Better++
		case c.Ante < b.Ante || (c.Ante == b.Ante && c.BlindsCleared < b.BlindsCleared):
			res.Worse++
		default:
			res.Equal++
		}
	}

	if res.Ante.N > 1 && res.Ante.PValue < alpha {
		if res.Ante.MeanDiff > 0 {
			res.Verdict = Improvement
		} else if res.Ante.MeanDiff < 0 {
			res.Verdict = Regression
		}
	}
	return res
}
