package poker

// sort-id order: suits alphabetically, ranks by their key names
var (
	deckSuitOrder = [SuitCount]Suit{Clubs, Diamonds, Hearts, Spades}
	deckRankOrder = [RankCount]Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ace, Jack, King, Queen, Ten}
)

// DefaultDeck returns the 52 standard cards in the game's canonical order.
// Card picks such as "front" draws index into this order, so it must not
// change.
func DefaultDeck() []Card {
	cards := make([]Card, 0, SuitCount*RankCount)
	for _, suit := range deckSuitOrder {
		for _, rank := range deckRankOrder {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}
