package game

import (
	"github.com/lox/jokerforbots/poker"
)

// EventType names a point in a blind where modifiers get to act.
type EventType string

const (
	EventBlindEntered EventType = "blind_entered"
	EventHandPlayed   EventType = "hand_played"
	EventCardScored   EventType = "card_scored"
	EventDiscard      EventType = "discard"
	EventRoundEnded   EventType = "round_ended"
)

func (et EventType) String() string { return string(et) }

// SuitSet is the set of suits a scored card counts as.
type SuitSet uint8

// AllSuits is what a wild card counts as.
const AllSuits SuitSet = 1<<poker.SuitCount - 1

func suitsOf(c poker.Card) SuitSet {
	switch c.Enhancement {
	case poker.Wild:
		return AllSuits
	case poker.Stone:
		return 0
	}
	return 1 << c.Suit
}

// Has reports whether s contains suit.
func (s SuitSet) Has(suit poker.Suit) bool { return s&(1<<suit) != 0 }

// With returns s plus suit.
func (s SuitSet) With(suit poker.Suit) SuitSet { return s | 1<<suit }

// Event is the shared state a dispatch pass reads and mutates.
type Event struct {
	Type  EventType
	Run   *Run
	Blind *Blind

	// HandType is the classification of Cards for played and discarded hands.
	HandType poker.HandType
	Cards    []poker.Card
	// Indices are the positions of Cards in the run's cards.
	Indices []int

	// Card and Suits describe the card being scored for EventCardScored.
	Card  poker.Card
	Suits SuitSet

	vetoed bool
}

// Veto stops the remaining participants and the consequences of the action
// that raised the event. Effects already applied stay.
func (e *Event) Veto() { e.vetoed = true }

// Vetoed reports whether a participant vetoed the event.
func (e *Event) Vetoed() bool { return e.vetoed }
