package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/jokerforbots/internal/bot"
	"github.com/lox/jokerforbots/internal/game"
	"github.com/lox/jokerforbots/internal/randutil"
	"github.com/lox/jokerforbots/internal/seeding"
	"github.com/lox/jokerforbots/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	// Seeds to replay. When empty, Runs seeds are generated from BaseSeed.
	Seeds    []string
	Runs     int
	BaseSeed int64

	// Bot names the controller from bot.New. NewController overrides it.
	Bot           string
	NewController func(seed string, index int) (game.Controller, error)

	// RunConfig builds the configuration of each run. Nil means the defaults
	// with only the seed set.
	RunConfig func(seed string) game.RunConfig

	Concurrency int
	Timeout     time.Duration // Per run; zero means none
	Clock       quartz.Clock
	Logger      *log.Logger
}

// Report is the outcome of a simulation
type Report struct {
	Stats   *statistics.Statistics
	Results []statistics.RunResult // In seed order
	Elapsed time.Duration
}

// RunsPerSecond returns the simulation throughput
func (r *Report) RunsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(len(r.Results)) / r.Elapsed.Seconds()
}

// Simulator replays many independent runs concurrently
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.RunConfig == nil {
		config.RunConfig = func(seed string) game.RunConfig { return game.RunConfig{Seed: seed} }
	}
	if config.NewController == nil {
		kind, logger, base := config.Bot, config.Logger, config.BaseSeed
		config.NewController = func(_ string, index int) (game.Controller, error) {
			return bot.New(kind, base+int64(index), logger)
		}
	}
	return &Simulator{config: config}
}

// Seeds returns the seeds the simulation will replay, in order
func (s *Simulator) Seeds() []string {
	if len(s.config.Seeds) > 0 {
		return s.config.Seeds
	}
	rng := randutil.NewPCG(s.config.BaseSeed)
	seeds := make([]string, s.config.Runs)
	for i := range seeds {
		seeds[i] = seeding.GenerateSeed(rng)
	}
	return seeds
}

// Run executes the simulation and returns results. Runs that exceed the
// timeout are recorded as aborted; cancelling ctx stops the whole batch.
func (s *Simulator) Run(ctx context.Context) (*Report, error) {
	seeds := s.Seeds()
	if len(seeds) == 0 {
		return nil, errors.New("no seeds to simulate")
	}

	start := s.config.Clock.Now()
	results := make([]statistics.RunResult, len(seeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Concurrency)
	for i, seed := range seeds {
		g.Go(func() error {
			res, err := s.playRun(ctx, seed, i)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &statistics.Statistics{}
	for _, res := range results {
		stats.Add(res)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	report := &Report{Stats: stats, Results: results, Elapsed: s.config.Clock.Since(start)}
	s.config.Logger.Info("Simulation finished",
		"runs", stats.Runs, "wins", stats.Wins, "aborts", stats.Aborts,
		"elapsed", report.Elapsed, "runs_per_sec", report.RunsPerSecond())
	return report, nil
}

// playRun plays a single run with timeout protection
func (s *Simulator) playRun(parent context.Context, seed string, index int) (statistics.RunResult, error) {
	ctrl, err := s.config.NewController(seed, index)
	if err != nil {
		return statistics.RunResult{}, fmt.Errorf("controller for seed %s: %w", seed, err)
	}

	ctx, cancel := context.WithCancelCause(parent)
	defer cancel(nil)
	if s.config.Timeout > 0 {
		timer := s.config.Clock.AfterFunc(s.config.Timeout, func() {
			cancel(fmt.Errorf("run timed out after %v", s.config.Timeout))
		}, "simulator", "timeout")
		defer timer.Stop()
	}

	cfg := s.config.RunConfig(seed)
	cfg.Seed = seed
	res, err := game.NewRun(cfg).Simulate(ctx, ctrl)
	if err != nil {
		if parent.Err() != nil {
			return statistics.RunResult{}, err
		}
		s.config.Logger.Warn("Run aborted", "seed", seed, "cause", context.Cause(ctx))
	}

	s.config.Logger.Debug("Run finished", "seed", seed, "outcome", res.Outcome, "ante", res.Ante)
	return statistics.RunResult{Result: res, Bot: s.config.Bot}, nil
}
