package bot

import (
	"slices"
	"strings"
	"testing"

	"github.com/lox/jokerforbots/internal/game"
	"github.com/lox/jokerforbots/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseShopStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		step string
		want game.ShopAction
	}{
		{"exit", game.ExitShop()},
		{"reroll", game.Reroll()},
		{"buy 1", game.Buy(1)},
		{"SELL 0", game.Sell(0)},
		{"redeem 0", game.Redeem(0)},
		{"use 2", game.UseConsumable(2)},
		{"open 1", game.OpenPack(1)},
		{"open 0 2 3", game.OpenPack(0, 2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.step, func(t *testing.T) {
			got, err := ParseShopStep(tt.step)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Type, got.Type)
			assert.Equal(t, tt.want.Index, got.Index)
			assert.Equal(t, len(tt.want.Choices), len(got.Choices))
			assert.True(t, slices.Equal(tt.want.Choices, got.Choices))
		})
	}
}

func TestParseBlindStep(t *testing.T) {
	t.Parallel()

	got, err := ParseBlindStep("select 4 0 2")
	require.NoError(t, err)
	assert.Equal(t, []game.BlindAction{game.SelectCard(4), game.SelectCard(0), game.SelectCard(2)}, got)

	got, err = ParseBlindStep("  discard ")
	require.NoError(t, err)
	assert.Equal(t, []game.BlindAction{game.Discard()}, got)

	got, err = ParseBlindStep("sell 1")
	require.NoError(t, err)
	assert.Equal(t, []game.BlindAction{game.SellJokerInBlind(1)}, got)

	sel, err := ParseSelectionStep("skip")
	require.NoError(t, err)
	assert.Equal(t, game.SkipBlind, sel)
}

func TestInvalidSteps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parse func(string) error
		step  string
	}{
		{"empty shop step", shopErr, "   "},
		{"unknown shop verb", shopErr, "steal 1"},
		{"buy without index", shopErr, "buy"},
		{"exit with index", shopErr, "exit 2"},
		{"open without pack", shopErr, "open"},
		{"negative index", shopErr, "buy -1"},
		{"unknown selection", selectionErr, "maybe"},
		{"select without cards", blindErr, "select"},
		{"play with cards", blindErr, "play 1 2"},
		{"sell two jokers", blindErr, "sell 1 2"},
		{"not a number", blindErr, "select one"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.parse(tt.step), ErrInvalidStep)
		})
	}
}

func shopErr(step string) error {
	_, err := ParseShopStep(step)
	return err
}

func selectionErr(step string) error {
	_, err := ParseSelectionStep(step)
	return err
}

func blindErr(step string) error {
	_, err := ParseBlindStep(step)
	return err
}

func TestNewScriptBotReportsStep(t *testing.T) {
	t.Parallel()

	_, err := NewScriptBot(Script{Blind: []string{"play", "juggle"}}, nil, quietLogger())
	assert.ErrorIs(t, err, ErrInvalidStep)
	assert.ErrorContains(t, err, "blind step 1")
}

func TestScriptBotReplaysThenFallsBack(t *testing.T) {
	t.Parallel()

	cards := poker.MustParseCards(strings.Repeat("2s ", 20))
	r := game.NewRun(game.RunConfig{Seed: "AAAAAAAA", Cards: cards})

	sb, err := NewScriptBot(Script{
		Shop:      []string{"exit"},
		Selection: []string{"play"},
		Blind:     []string{"select 0 1", "play"},
	}, nil, quietLogger())
	require.NoError(t, err)
	assert.Equal(t, 5, sb.Remaining())

	r.Step(sb)
	assert.Equal(t, game.StateBlindSelection, r.State())
	r.Step(sb)
	require.Equal(t, game.StateBlind, r.State())
	r.Step(sb)

	b := r.Blind()
	require.NotNil(t, b)
	assert.Equal(t, poker.Pair, b.LastHand)
	assert.Equal(t, 1, b.HandsPlayed())
	assert.Zero(t, sb.Remaining())

	r.Step(sb)
	assert.Equal(t, 2, b.HandsPlayed(), "the fallback keeps playing")
}
