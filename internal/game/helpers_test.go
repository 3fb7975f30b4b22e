package game

import (
	"slices"
	"testing"

	"github.com/lox/jokerforbots/poker"
	"github.com/stretchr/testify/require"
)

const goldenSeed = "AAAAAAAA"

// repeatedDeck is a deck of n copies of one card, so every selection of the
// same size classifies the same way.
func repeatedDeck(card string, n int) []poker.Card {
	return slices.Repeat(poker.MustParseCards(card), n)
}

// enterBlind leaves the shop and plays the blind at tier, forcing boss when
// tier is BossBlind.
func enterBlind(t *testing.T, r *Run, tier BlindTier, boss Boss) *Blind {
	t.Helper()

	r.tier = tier
	if tier == BossBlind {
		r.bosses[r.ante] = boss
	}
	require.True(t, r.ApplyShopAction(ExitShop()))
	r.SelectBlind(PlayBlind)
	require.Equal(t, StateBlind, r.State())
	require.NotNil(t, r.Blind())
	return r.Blind()
}

func playFirst(r *Run, n int) {
	for i := range n {
		r.ApplyBlindAction(SelectCard(i))
	}
	r.ApplyBlindAction(Play())
}

func jokerTypes(jokers []*Joker) []JokerType {
	out := make([]JokerType, len(jokers))
	for i, j := range jokers {
		out[i] = j.Type()
	}
	return out
}

// firstCardsController exits every shop, plays every blind and always plays
// the first five held cards.
type firstCardsController struct{}

func (firstCardsController) Shop(*Run) []ShopAction { return []ShopAction{ExitShop()} }

func (firstCardsController) BlindSelection(*Run) BlindSelectionAction { return PlayBlind }

func (firstCardsController) Blind(b *Blind, _ *Run) []BlindAction {
	var actions []BlindAction
	for i := range min(len(b.Held()), MaxHandCards) {
		actions = append(actions, SelectCard(i))
	}
	return append(actions, Play())
}

func (firstCardsController) CashOut(*Run) CashOutAction { return ReturnToShop }
