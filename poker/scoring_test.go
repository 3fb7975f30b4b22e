package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoringCards(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		cards string
		want  []int
	}{
		{"high card picks the top rank", "3c 9h 5d", []int{1}},
		{"pair ignores kickers", "As 4d Ah 7c", []int{0, 2}},
		{"two pair", "Ks Kd 3c 3h 9s", []int{0, 1, 2, 3}},
		{"trips", "5s 5d 2c 5c", []int{0, 1, 3}},
		{"quads with kicker", "9s 9d 9c 9h 2d", []int{0, 1, 2, 3}},
		{"straight scores all", "5s 6d 7c 8h 9d", []int{0, 1, 2, 3, 4}},
		{"full house scores all", "9s 9d 9c 4h 4d", []int{0, 1, 2, 3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cards := MustParseCards(tt.cards)
			assert.Equal(t, tt.want, ScoringCards(cards, Classify(cards)))
		})
	}
}

func TestScoringCardsStone(t *testing.T) {
	t.Parallel()

	cards := MustParseCards("As Ad 4c")
	cards[2].Enhancement = Stone
	assert.Equal(t, []int{0, 1, 2}, ScoringCards(cards, Pair))
}

func TestScoringCardsEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, ScoringCards(nil, HighCard))
}
