package poker

import (
	"cmp"
	"fmt"
	"strings"
)

// Suit represents a card suit.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

// SuitCount is the number of suits.
const SuitCount = 4

// String returns the single letter used in card notation.
func (s Suit) String() string {
	switch s {
	case Spades:
		return "s"
	case Hearts:
		return "h"
	case Clubs:
		return "c"
	case Diamonds:
		return "d"
	default:
		return "?"
	}
}

// Rank represents a card rank, deuce lowest.
type Rank uint8

const (
	Two Rank = iota
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// RankCount is the number of ranks.
const RankCount = 13

// String returns the single character used in card notation.
func (r Rank) String() string {
	if r > Ace {
		return "?"
	}
	return string("23456789TJQKA"[r])
}

// Chips returns the base chip value of the rank: pip value for 2-9, ten for
// 10 and face cards, eleven for aces.
func (r Rank) Chips() int {
	switch {
	case r <= Nine:
		return int(r) + 2
	case r == Ace:
		return 11
	default:
		return 10
	}
}

// IsFace reports whether the rank is a jack, queen or king.
func (r Rank) IsFace() bool {
	return r == Jack || r == Queen || r == King
}

// Enhancement is a permanent modification applied to a card.
type Enhancement uint8

const (
	NoEnhancement Enhancement = iota
	Bonus
	MultCard
	Wild
	Glass
	Steel
	Stone
	Gold
	Lucky
)

func (e Enhancement) String() string {
	switch e {
	case NoEnhancement:
		return ""
	case Bonus:
		return "Bonus"
	case MultCard:
		return "Mult"
	case Wild:
		return "Wild"
	case Glass:
		return "Glass"
	case Steel:
		return "Steel"
	case Stone:
		return "Stone"
	case Gold:
		return "Gold"
	case Lucky:
		return "Lucky"
	default:
		return "Unknown"
	}
}

// Edition is the foil treatment of a card.
type Edition uint8

const (
	BaseEdition Edition = iota
	Foil
	Holographic
	Polychrome
)

func (e Edition) String() string {
	switch e {
	case BaseEdition:
		return ""
	case Foil:
		return "Foil"
	case Holographic:
		return "Holographic"
	case Polychrome:
		return "Polychrome"
	default:
		return "Unknown"
	}
}

// Seal is a stamp applied to a card.
type Seal uint8

const (
	NoSeal Seal = iota
	GoldSeal
	RedSeal
	BlueSeal
	PurpleSeal
)

// Card represents a playing card with its modifications.
type Card struct {
	Rank        Rank
	Suit        Suit
	Enhancement Enhancement
	Edition     Edition
	Seal        Seal
	Chips       int
}

// NewCard creates an unmodified card.
func NewCard(suit Suit, rank Rank) Card {
	return Card{Rank: rank, Suit: suit, Chips: rank.Chips()}
}

// IsSuit reports whether the card counts as suit s. Wild cards count as
// every suit.
func (c Card) IsSuit(s Suit) bool {
	return c.Suit == s || c.Enhancement == Wild
}

// String returns notation such as "As" or "Td", prefixed with any
// enhancement and edition.
func (c Card) String() string {
	var b strings.Builder
	if c.Edition != BaseEdition {
		b.WriteString(c.Edition.String())
		b.WriteByte(' ')
	}
	if c.Enhancement != NoEnhancement {
		b.WriteString(c.Enhancement.String())
		b.WriteByte(' ')
	}
	b.WriteString(c.Rank.String())
	b.WriteString(c.Suit.String())
	return b.String()
}

// Compare orders cards by suit (diamonds first) and then by rank.
func (c Card) Compare(o Card) int {
	if c.Suit != o.Suit {
		return cmp.Compare(o.Suit, c.Suit)
	}
	return cmp.Compare(c.Rank, o.Rank)
}

// ParseCard parses notation such as "As", "Td" or "10h".
func ParseCard(s string) (Card, error) {
	if len(s) == 3 && s[:2] == "10" {
		s = "T" + s[2:]
	}
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	rankIdx := strings.IndexByte("23456789TJQKA", upper(s[0]))
	if rankIdx < 0 {
		return Card{}, fmt.Errorf("invalid rank in card: %q", s)
	}

	var suit Suit
	switch s[1] {
	case 's', 'S':
		suit = Spades
	case 'h', 'H':
		suit = Hearts
	case 'c', 'C':
		suit = Clubs
	case 'd', 'D':
		suit = Diamonds
	default:
		return Card{}, fmt.Errorf("invalid suit in card: %q", s)
	}

	return NewCard(suit, Rank(rankIdx)), nil
}

// ParseCards parses a whitespace separated list of cards.
func ParseCards(s string) ([]Card, error) {
	fields := strings.Fields(s)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is ParseCards for literals known to be valid.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
