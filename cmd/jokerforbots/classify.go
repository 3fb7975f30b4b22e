package main

import (
	"fmt"
	"strings"

	"github.com/lox/jokerforbots/poker"
)

type ClassifyCmd struct {
	Cards []string `arg:"" help:"Cards to classify, e.g. 'As Ks Qs Js Ts'"`
	Level int      `default:"1" help:"Hand level used for the base chips and mult"`
}

func (c *ClassifyCmd) Run() error {
	cards, err := poker.ParseCards(strings.Join(c.Cards, " "))
	if err != nil {
		return err
	}
	if len(cards) == 0 || len(cards) > 5 {
		return fmt.Errorf("a hand has between 1 and 5 cards, got %d", len(cards))
	}
	if c.Level < 1 {
		return fmt.Errorf("level must be at least 1, got %d", c.Level)
	}

	ht := poker.Classify(cards)
	chips := poker.BaseChips(ht, c.Level)
	var scoring []string
	for _, i := range poker.ScoringCards(cards, ht) {
		scoring = append(scoring, cards[i].String())
		chips += float64(cards[i].Chips)
	}
	mult := poker.BaseMult(ht, c.Level)

	header(ht.String())
	row("Scoring", "%s", strings.Join(scoring, " "))
	row("Base", "%.0f chips x %.0f mult", poker.BaseChips(ht, c.Level), mult)
	row("Score", "%.0f x %.0f = %s", chips, mult, successStyle.Render(fmt.Sprintf("%.0f", chips*mult)))
	return nil
}
