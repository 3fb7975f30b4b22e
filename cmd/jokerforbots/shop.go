package main

import (
	"fmt"

	"github.com/lox/jokerforbots/internal/game"
)

type ShopCmd struct {
	Options `embed:""`

	Seed    string `arg:"" optional:"" help:"Seed to inspect (defaults to the configured seed, then a random one)"`
	Rerolls int    `help:"Also show this many rerolled inventories"`
	Packs   bool   `help:"Open every booster pack and list its contents"`
}

// Run prints the shop as it is first stocked. Opening packs and rerolling
// draw from the run's channels in the order shown.
func (c *ShopCmd) Run() error {
	run, _, err := c.newRun(c.Seed, c.logger())
	if err != nil {
		return err
	}
	shop := run.Shop()

	header("Shop for " + run.Seed())
	for _, v := range shop.Vouchers {
		row("Voucher", "%s", v)
	}
	for i, p := range shop.Packs {
		row(fmt.Sprintf("Pack %d", i), "%s %s", p, priceStyle.Render(fmt.Sprintf("$%d", shop.Price(p.Cost()))))
		if c.Packs {
			for _, it := range run.OpenBoosterPack(p) {
				row("", "  %s", it)
			}
		}
	}
	printItems(shop.Items)

	for n := 1; n <= c.Rerolls; n++ {
		run.Money += shop.RerollCost()
		if !run.ApplyShopAction(game.Reroll()) {
			return fmt.Errorf("reroll %d was rejected", n)
		}
		fmt.Println()
		header(fmt.Sprintf("Reroll %d", n))
		printItems(shop.Items)
	}
	return nil
}

func printItems(items []game.ShopItem) {
	for i, it := range items {
		row(fmt.Sprintf("Slot %d", i), "%s %s (%s)", it, priceStyle.Render(fmt.Sprintf("$%d", it.Price)), it.Type)
	}
}
