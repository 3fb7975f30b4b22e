// Package bot holds game.Controller implementations used to drive runs from
// the command line, the simulator and tests.
package bot

import (
	"cmp"
	"math/bits"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lox/jokerforbots/internal/game"
	"github.com/lox/jokerforbots/poker"
)

// Bot plays the highest scoring selection it can find, discards towards a
// better hand when the current best cannot clear the blind in time, and buys
// every joker and planet it can afford.
type Bot struct {
	// Reserve is money the bot will not spend in the shop.
	Reserve int

	logger *log.Logger
}

// NewBot creates a new Bot
func NewBot(logger *log.Logger) *Bot {
	return &Bot{logger: logger.WithPrefix("bot")}
}

// candidate is a possible selection with its estimated score.
type candidate struct {
	indices []int
	hand    poker.HandType
	score   float64
}

func (b *Bot) Shop(run *game.Run) []game.ShopAction {
	for i, c := range run.Consumables() {
		if c.Kind == game.PlanetCard {
			return []game.ShopAction{game.UseConsumable(i)}
		}
	}

	budget := run.Money - b.Reserve
	for i, it := range run.Shop().Items {
		if it.Price > budget {
			continue
		}
		switch it.Type {
		case game.JokerItem:
			if len(run.Jokers()) < run.JokerSlots || it.Joker.Edition == game.EditionNegative {
				b.logger.Debug("Buying joker", "joker", it.Joker, "price", it.Price, "money", run.Money)
				return []game.ShopAction{game.Buy(i)}
			}
		case game.PlanetItem:
			if len(run.Consumables()) < run.ConsumableSlots {
				b.logger.Debug("Buying planet", "planet", it.Consumable, "price", it.Price, "money", run.Money)
				return []game.ShopAction{game.Buy(i)}
			}
		}
	}
	return []game.ShopAction{game.ExitShop()}
}

func (b *Bot) BlindSelection(*game.Run) game.BlindSelectionAction {
	return game.PlayBlind
}

func (b *Bot) Blind(blind *game.Blind, run *game.Run) []game.BlindAction {
	held := blind.Held()
	if len(held) == 0 {
		return []game.BlindAction{game.Abort()}
	}
	best := bestHand(blind, run, held)

	needed := blind.Requirement - blind.Score
	if blind.Discards > 0 && blind.DeckSize() > 0 && best.hand < poker.TwoPair &&
		best.score*float64(blind.Hands) < needed {
		if discard := discardCandidates(held, best.indices); len(discard) > 0 {
			b.logger.Debug("Discarding", "cards", len(discard), "best", best.hand, "estimate", best.score, "needed", needed)
			return selectThen(discard, game.Discard())
		}
	}

	b.logger.Debug("Playing", "hand", best.hand, "estimate", best.score, "needed", needed)
	return selectThen(best.indices, game.Play())
}

func (b *Bot) CashOut(*game.Run) game.CashOutAction {
	return game.ReturnToShop
}

// bestHand scores every selection of up to five held cards and returns the
// best one. Ties keep the earlier selection in mask order.
func bestHand(blind *game.Blind, run *game.Run, held []poker.Card) candidate {
	var best candidate
	n := len(held)
	for mask := uint(1); mask < 1<<n; mask++ {
		if bits.OnesCount(mask) > game.MaxHandCards {
			continue
		}
		var idx []int
		var cards []poker.Card
		for i := range n {
			if mask&(1<<i) != 0 {
				idx = append(idx, i)
				cards = append(cards, held[i])
			}
		}
		c := estimate(blind, run, cards)
		c.indices = idx
		if best.indices == nil || c.score > best.score {
			best = c
		}
	}
	return best
}

// estimate is chips times mult for cards, before jokers and editions.
func estimate(blind *game.Blind, run *game.Run, cards []poker.Card) candidate {
	ht := poker.Classify(cards)
	level := run.Level(ht)
	chips := poker.BaseChips(ht, level)
	for _, k := range poker.ScoringCards(cards, ht) {
		if !blind.Debuffed(cards[k]) {
			chips += float64(cards[k].Chips)
		}
	}
	return candidate{hand: ht, score: chips * poker.BaseMult(ht, level)}
}

// discardCandidates returns up to five held positions outside keep, lowest
// chip value first.
func discardCandidates(held []poker.Card, keep []int) []int {
	var out []int
	for i := range held {
		if !slices.Contains(keep, i) {
			out = append(out, i)
		}
	}
	slices.SortStableFunc(out, func(a, b int) int {
		return cmp.Compare(held[a].Chips, held[b].Chips)
	})
	if len(out) > game.MaxHandCards {
		out = out[:game.MaxHandCards]
	}
	return out
}

func selectThen(indices []int, last game.BlindAction) []game.BlindAction {
	actions := make([]game.BlindAction, 0, len(indices)+1)
	for _, i := range indices {
		actions = append(actions, game.SelectCard(i))
	}
	return append(actions, last)
}
