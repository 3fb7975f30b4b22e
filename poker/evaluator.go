package poker

import (
	"math/bits"
)

// HandType enumerates the categories of poker hands ordered from weakest to strongest.
type HandType uint8

const (
	HighCard HandType = iota
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	FiveOfAKind
	FlushHouse
	FlushFive
)

// HandTypeCount is the number of hand types.
const HandTypeCount = 12

// HandTypes lists every hand type from weakest to strongest.
var HandTypes = [HandTypeCount]HandType{
	HighCard, Pair, TwoPair, ThreeOfAKind, Straight, Flush,
	FullHouse, FourOfAKind, StraightFlush, FiveOfAKind, FlushHouse, FlushFive,
}

// String returns a human-readable hand description.
func (t HandType) String() string {
	switch t {
	case HighCard:
		return "High Card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case FiveOfAKind:
		return "Five of a Kind"
	case FlushHouse:
		return "Flush House"
	case FlushFive:
		return "Flush Five"
	default:
		return "Unknown"
	}
}

type handValues struct {
	chips, mult         float64
	chipsStep, multStep float64
}

var baseValues = [HandTypeCount]handValues{
	HighCard:      {5, 1, 10, 1},
	Pair:          {10, 2, 15, 1},
	TwoPair:       {20, 2, 20, 1},
	ThreeOfAKind:  {30, 3, 20, 2},
	Straight:      {30, 4, 30, 3},
	Flush:         {35, 4, 15, 2},
	FullHouse:     {40, 4, 25, 2},
	FourOfAKind:   {60, 7, 30, 3},
	StraightFlush: {100, 8, 40, 4},
	FiveOfAKind:   {120, 12, 35, 3},
	FlushHouse:    {140, 14, 40, 4},
	FlushFive:     {160, 16, 50, 3},
}

// BaseChips returns the chips a hand of type t starts scoring with at level.
// Levels below one are treated as one.
func BaseChips(t HandType, level int) float64 {
	v := baseValues[t]
	return v.chips + v.chipsStep*float64(max(level, 1)-1)
}

// BaseMult returns the mult a hand of type t starts scoring with at level.
func BaseMult(t HandType, level int) float64 {
	v := baseValues[t]
	return v.mult + v.multStep*float64(max(level, 1)-1)
}

// shape is the rank and suit structure of a selection of up to five cards.
type shape struct {
	n         int
	counts    [RankCount]uint8
	rankMask  uint16
	maxCount  uint8
	pairRanks int // ranks held at least twice
	flush     bool
}

func shapeOf(cards []Card) shape {
	s := shape{n: len(cards)}
	for _, c := range cards {
		s.counts[c.Rank]++
		s.rankMask |= 1 << c.Rank
	}
	for _, n := range s.counts {
		s.maxCount = max(s.maxCount, n)
		if n >= 2 {
			s.pairRanks++
		}
	}

	if s.n == 5 {
		for suit := Suit(0); suit < SuitCount; suit++ {
			all := true
			for _, c := range cards {
				if !c.IsSuit(suit) {
					all = false
					break
				}
			}
			if all {
				s.flush = true
				break
			}
		}
	}
	return s
}

func (s shape) straight() bool {
	if s.n != 5 || bits.OnesCount16(s.rankMask) != 5 {
		return false
	}
	const wheelMask = 1<<Ace | 1<<Two | 1<<Three | 1<<Four | 1<<Five
	if s.rankMask == wheelMask {
		return true
	}
	// five distinct ranks are consecutive when the span is exactly five bits
	low := bits.TrailingZeros16(s.rankMask)
	return s.rankMask>>low == 0x1F
}

func (s shape) fullHouse() bool {
	var three, two bool
	for _, n := range s.counts {
		switch {
		case n >= 3 && !three:
			three = true
		case n >= 2:
			two = true
		}
	}
	return three && two
}

func (s shape) contains(t HandType) bool {
	switch t {
	case HighCard:
		return true
	case Pair:
		return s.maxCount >= 2
	case TwoPair:
		return s.pairRanks >= 2
	case ThreeOfAKind:
		return s.maxCount >= 3
	case Straight:
		return s.straight()
	case Flush:
		return s.flush
	case FullHouse:
		return s.fullHouse()
	case FourOfAKind:
		return s.maxCount >= 4
	case StraightFlush:
		return s.flush && s.straight()
	case FiveOfAKind:
		return s.maxCount >= 5
	case FlushHouse:
		return s.flush && s.fullHouse()
	case FlushFive:
		return s.flush && s.maxCount >= 5
	default:
		return false
	}
}

// Contains reports whether the selection contains a hand of type t, for
// example a full house contains a pair and a three of a kind.
func Contains(cards []Card, t HandType) bool {
	return shapeOf(cards).contains(t)
}

// Classify returns the strongest hand type the selection contains. Straights
// and flushes need exactly five cards; anything else falls back to HighCard.
func Classify(cards []Card) HandType {
	s := shapeOf(cards)
	for t := FlushFive; t > HighCard; t-- {
		if s.contains(t) {
			return t
		}
	}
	return HighCard
}
