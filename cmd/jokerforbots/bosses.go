package main

import (
	"fmt"
)

type BossesCmd struct {
	Options `embed:""`

	Seed  string `arg:"" optional:"" help:"Seed to inspect (defaults to the configured seed, then a random one)"`
	Antes int    `default:"8" help:"Number of antes to list"`
}

func (c *BossesCmd) Run() error {
	run, _, err := c.newRun(c.Seed, c.logger())
	if err != nil {
		return err
	}

	header("Bosses for " + run.Seed())
	for ante := 1; ante <= c.Antes; ante++ {
		boss := run.BossForAnte(ante)
		desc := fmt.Sprintf("%s (x%g)", boss, boss.Multiplier())
		if boss.Showdown() {
			desc = warningStyle.Render(desc)
		}
		row(fmt.Sprintf("Ante %d", ante), "%s", desc)
	}
	return nil
}
