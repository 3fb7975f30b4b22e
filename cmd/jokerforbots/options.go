package main

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lox/jokerforbots/internal/config"
	"github.com/lox/jokerforbots/internal/game"
)

// Options are the flags shared by every command that builds a run.
type Options struct {
	Config   string `short:"c" type:"path" default:"jokerforbots.hcl" help:"HCL configuration file (missing means defaults)"`
	Stake    string `help:"Override the configured stake"`
	LogLevel string `default:"warn" enum:"debug,info,warn,error" help:"Log level (debug|info|warn|error)"`
}

func (o *Options) logger() *log.Logger {
	level, err := log.ParseLevel(o.LogLevel)
	if err != nil {
		level = log.WarnLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
}

// load reads the configuration, applies overrides and validates the result.
func (o *Options) load(overrides ...func(*config.Config)) (*config.Config, error) {
	cfg, err := config.Load(o.Config)
	if err != nil {
		return nil, err
	}
	if o.Stake != "" {
		cfg.Run.Stake = o.Stake
	}
	for _, fn := range overrides {
		fn(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// newRun builds a run for seed, or for the configured seed when it is empty.
func (o *Options) newRun(seed string, logger *log.Logger) (*game.Run, *config.Config, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, nil, err
	}
	rc, err := cfg.RunConfig(seed, logger)
	if err != nil {
		return nil, nil, err
	}
	return game.NewRun(rc), cfg, nil
}
