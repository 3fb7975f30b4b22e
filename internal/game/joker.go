package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lox/jokerforbots/poker"
)

// ErrUnknownJoker is returned when a joker name cannot be parsed.
var ErrUnknownJoker = errors.New("unknown joker")

// Rarity groups jokers into the pools they are drawn from.
type Rarity int

const (
	Common Rarity = iota
	Uncommon
	Rare
	Legendary
)

func (r Rarity) String() string {
	return [...]string{"common", "uncommon", "rare", "legendary"}[r]
}

// Pool returns the jokers of rarity r in draw order.
func (r Rarity) Pool() []JokerType {
	switch r {
	case Common:
		return commonJokers
	case Uncommon:
		return uncommonJokers
	case Rare:
		return rareJokers
	default:
		return legendaryJokers
	}
}

var jokerRarity = func() [JokerTypeCount]Rarity {
	var out [JokerTypeCount]Rarity
	for r := Common; r <= Legendary; r++ {
		for _, t := range r.Pool() {
			out[t] = r
		}
	}
	return out
}()

func (t JokerType) String() string { return jokerNames[t] }

// Rarity returns the pool t belongs to.
func (t JokerType) Rarity() Rarity { return jokerRarity[t] }

// BaseCost returns the shop price of t before editions and discounts.
func (t JokerType) BaseCost() int {
	switch t.Rarity() {
	case Uncommon:
		return 6
	case Rare:
		return 8
	case Legendary:
		return 20
	default:
		return 4
	}
}

// ParseJokerType accepts a display name ("Ceremonial Dagger") or the same
// name without spaces, in any case.
func ParseJokerType(name string) (JokerType, error) {
	want := normalizeName(name)
	for t := range JokerType(JokerTypeCount) {
		if normalizeName(jokerNames[t]) == want {
			return t, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownJoker, name)
}

func normalizeName(s string) string {
	var b strings.Builder
	for _, c := range strings.ToLower(s) {
		if (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') {
			b.WriteRune(c)
		}
	}
	return b.String()
}

// JokerEdition is the foil treatment of a joker.
type JokerEdition int

const (
	EditionBase JokerEdition = iota
	EditionFoil
	EditionHolographic
	EditionPolychrome
	EditionNegative
)

func (e JokerEdition) String() string {
	return [...]string{"base", "foil", "holographic", "polychrome", "negative"}[e]
}

func (e JokerEdition) extraCost() int {
	switch e {
	case EditionFoil:
		return 2
	case EditionHolographic:
		return 3
	case EditionPolychrome, EditionNegative:
		return 5
	default:
		return 0
	}
}

// Stickers are the flags a joker may carry. Eternal jokers cannot be sold or
// destroyed.
type Stickers struct {
	Eternal    bool
	Perishable bool
	Rental     bool
}

// jokerState is the memory a joker keeps between events. Only identities
// that need it carry one; the concrete type is fixed by the identity.
type jokerState interface {
	isJokerState()
}

// readyState marks a once-per-round trigger that has not fired yet.
type readyState struct{ ready bool }

type daggerState struct{ mult int }

type cardSharpState struct {
	played [poker.HandTypeCount]bool
}

type turtleBeanState struct{ handSize int }

func (*readyState) isJokerState()      {}
func (*daggerState) isJokerState()     {}
func (*cardSharpState) isJokerState()  {}
func (*turtleBeanState) isJokerState() {}

func newJokerState(t JokerType) jokerState {
	switch t {
	case DNA, SixthSense, TradingCard, BurntJoker:
		return &readyState{}
	case CeremonialDagger:
		return &daggerState{}
	case CardSharp:
		return &cardSharpState{}
	case TurtleBean:
		return &turtleBeanState{handSize: 5}
	default:
		return nil
	}
}

// Joker is a modifier owned by the run. Its identity and internal state are
// fixed at construction.
type Joker struct {
	id    uint64
	kind  JokerType
	state jokerState

	Edition   JokerEdition
	Stickers  Stickers
	SellValue int
	Debuffed  bool

	roundsLeft int
	priority   map[EventType]int
}

// NewJoker creates a joker of type t with fresh internal state. It receives
// an ID when added to a run.
func NewJoker(t JokerType) *Joker {
	return &Joker{
		kind:       t,
		state:      newJokerState(t),
		SellValue:  max(1, t.BaseCost()/2),
		roundsLeft: 5,
	}
}

// ID identifies the joker within its run. Zero means not owned.
func (j *Joker) ID() uint64 { return j.id }

// Type returns the joker's identity.
func (j *Joker) Type() JokerType { return j.kind }

// Cost returns the joker's base shop price including its edition.
func (j *Joker) Cost() int { return j.kind.BaseCost() + j.Edition.extraCost() }

// Priority returns the dispatch priority for ev. Lower runs first.
func (j *Joker) Priority(ev EventType) int { return j.priority[ev] }

// SetPriority changes the dispatch priority for ev.
func (j *Joker) SetPriority(ev EventType, p int) {
	if j.priority == nil {
		j.priority = make(map[EventType]int)
	}
	j.priority[ev] = p
}

func (j *Joker) String() string {
	var b strings.Builder
	if j.Stickers.Eternal {
		b.WriteString("Eternal ")
	}
	if j.Stickers.Perishable {
		b.WriteString("Perishable ")
	}
	if j.Stickers.Rental {
		b.WriteString("Rental ")
	}
	if j.Edition != EditionBase {
		b.WriteString(strings.ToUpper(j.Edition.String()[:1]) + j.Edition.String()[1:] + " ")
	}
	b.WriteString(j.kind.String())
	if j.Debuffed {
		b.WriteString(" (debuffed)")
	}
	return b.String()
}

func (j *Joker) mismatch(want string) string {
	return fmt.Sprintf("game: %s carries no %s state", j.kind, want)
}

func (j *Joker) ready() *readyState {
	s, ok := j.state.(*readyState)
	if !ok {
		panic(j.mismatch("ready"))
	}
	return s
}

func (j *Joker) dagger() *daggerState {
	s, ok := j.state.(*daggerState)
	if !ok {
		panic(j.mismatch("dagger"))
	}
	return s
}

func (j *Joker) cardSharp() *cardSharpState {
	s, ok := j.state.(*cardSharpState)
	if !ok {
		panic(j.mismatch("card sharp"))
	}
	return s
}

func (j *Joker) turtleBean() *turtleBeanState {
	s, ok := j.state.(*turtleBeanState)
	if !ok {
		panic(j.mismatch("turtle bean"))
	}
	return s
}

// Ready reports whether a once-per-round joker can still trigger this round.
// Panics for identities without such a trigger.
func (j *Joker) Ready() bool { return j.ready().ready }

// DaggerMult returns the mult a Ceremonial Dagger has accumulated.
func (j *Joker) DaggerMult() int { return j.dagger().mult }

// HandSizeBonus returns the hand size a Turtle Bean still grants.
func (j *Joker) HandSizeBonus() int { return j.turtleBean().handSize }

// PlayedThisRound reports whether a Card Sharp has seen hand type t this round.
func (j *Joker) PlayedThisRound(t poker.HandType) bool { return j.cardSharp().played[t] }
