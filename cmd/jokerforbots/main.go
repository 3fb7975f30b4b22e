package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Replay   ReplayCmd        `cmd:"" help:"Replay one seed with the configured controller"`
	Scan     ScanCmd          `cmd:"" help:"Simulate many seeds and summarise the results"`
	Compare  CompareCmd       `cmd:"" help:"Compare two bots over the same seeds"`
	Bosses   BossesCmd        `cmd:"" help:"List the boss blind of every ante for a seed"`
	Shop     ShopCmd          `cmd:"" help:"Show the first shop of a seed"`
	Classify ClassifyCmd      `cmd:"" help:"Classify cards as a poker hand"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("jokerforbots"),
		kong.Description("Deterministic rules engine and seed explorer for bot-played roguelike deckbuilding runs"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
