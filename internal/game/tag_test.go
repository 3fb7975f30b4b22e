package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagSequence(t *testing.T) {
	t.Parallel()

	want := [][2]Tag{
		{SpeedTag, EconomyTag},
		{JuggleTag, EtherealTag},
		{CouponTag, UncommonTag},
		{CouponTag, D6Tag},
		{CouponTag, GarbageTag},
		{StandardTag, RareTag},
		{BossTag, EtherealTag},
		{CharmTag, NegativeTag},
	}

	r := NewRun(RunConfig{Seed: goldenSeed})
	for i, pair := range want {
		r.ante = i + 1
		assert.Equal(t, pair, [2]Tag{r.NextTag(), r.NextTag()}, "ante %d", r.ante)
	}
}

func TestFirstAnteTagsOnly(t *testing.T) {
	t.Parallel()

	for _, seed := range []string{"AAAAAAAA", "12345678", "TAGTAGTG", "ZZZZZZZZ"} {
		r := NewRun(RunConfig{Seed: seed})
		for range 20 {
			tag := r.NextTag()
			assert.True(t, firstAnteTags[tag], "%s offered on ante 1", tag)
		}
	}
}

func TestSkipTagsAreStablePerAnte(t *testing.T) {
	t.Parallel()

	r := NewRun(RunConfig{Seed: goldenSeed})
	tags := r.SkipTags()
	assert.Equal(t, [2]Tag{SpeedTag, EconomyTag}, tags)
	assert.Equal(t, tags, r.SkipTags())

	r.ante = 2
	assert.Equal(t, [2]Tag{JuggleTag, EtherealTag}, r.SkipTags())
}

func TestSkipBlind(t *testing.T) {
	t.Parallel()

	r := NewRun(RunConfig{Seed: goldenSeed})
	require.True(t, r.ApplyShopAction(ExitShop()))

	r.SelectBlind(SkipBlind)
	assert.Equal(t, BigBlind, r.Tier())
	assert.Equal(t, []Tag{SpeedTag}, r.Tags())
	// Speed pays for the skip that granted it.
	assert.Equal(t, 4+5, r.Money)

	r.SelectBlind(SkipBlind)
	assert.Equal(t, BossBlind, r.Tier())
	assert.Equal(t, []Tag{SpeedTag, EconomyTag}, r.Tags())
	assert.Equal(t, 18, r.Money)

	r.SelectBlind(SkipBlind)
	assert.Equal(t, BossBlind, r.Tier(), "boss blind cannot be skipped")
	assert.Equal(t, StateBlindSelection, r.State())
}

func TestApplyTag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		tag   Tag
		setup func(r *Run)
		check func(t *testing.T, r *Run)
	}{
		{
			name:  "economy doubles money",
			tag:   EconomyTag,
			setup: func(r *Run) { r.Money = 15 },
			check: func(t *testing.T, r *Run) { assert.Equal(t, 30, r.Money) },
		},
		{
			name:  "economy is capped",
			tag:   EconomyTag,
			setup: func(r *Run) { r.Money = 100 },
			check: func(t *testing.T, r *Run) { assert.Equal(t, 140, r.Money) },
		},
		{
			name:  "economy ignores debt",
			tag:   EconomyTag,
			setup: func(r *Run) { r.Money = -3 },
			check: func(t *testing.T, r *Run) { assert.Equal(t, -3, r.Money) },
		},
		{
			name:  "handy pays per hand played",
			tag:   HandyTag,
			setup: func(r *Run) { r.Money, r.handsPlayed = 0, 7 },
			check: func(t *testing.T, r *Run) { assert.Equal(t, 7, r.Money) },
		},
		{
			name:  "garbage pays per unused discard",
			tag:   GarbageTag,
			setup: func(r *Run) { r.Money, r.unusedDiscards = 0, 4 },
			check: func(t *testing.T, r *Run) { assert.Equal(t, 4, r.Money) },
		},
		{
			name:  "juggle raises the next hand size",
			tag:   JuggleTag,
			setup: func(r *Run) {},
			check: func(t *testing.T, r *Run) {
				b := r.newBlind(SmallBlind)
				assert.Equal(t, r.HandSize+3, b.HandSize)
				assert.Equal(t, r.HandSize, r.newBlind(SmallBlind).HandSize, "only the next blind")
			},
		},
		{
			name:  "top-up adds commons",
			tag:   TopUpTag,
			setup: func(r *Run) {},
			check: func(t *testing.T, r *Run) {
				require.Len(t, r.Jokers(), 2)
				for _, j := range r.Jokers() {
					assert.Equal(t, Common, j.Type().Rarity())
				}
			},
		},
		{
			name:  "top-up respects slots",
			tag:   TopUpTag,
			setup: func(r *Run) { r.JokerSlots = 1 },
			check: func(t *testing.T, r *Run) { assert.Len(t, r.Jokers(), 1) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRun(RunConfig{Seed: goldenSeed})
			tt.setup(r)
			r.applyTag(tt.tag)
			tt.check(t, r)
			assert.Equal(t, []Tag{tt.tag}, r.Tags())
		})
	}
}

func TestInvestmentPaysAfterBoss(t *testing.T) {
	t.Parallel()

	r := NewRun(RunConfig{Seed: goldenSeed, Cards: repeatedDeck("As", 20)})
	r.applyTag(InvestmentTag)
	r.Money = 0

	enterBlind(t, r, BossBlind, TheWall)
	playFirst(r, 5)

	require.Equal(t, StateCashOut, r.State())
	co := r.LastCashOut()
	assert.Equal(t, 25, co.Investment)
	assert.Equal(t, co.Total(), r.Money)
	assert.Equal(t, 2, r.Ante())
}
