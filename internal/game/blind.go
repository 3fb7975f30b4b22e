package game

import (
	"fmt"
	"math"
	"slices"

	"github.com/lox/jokerforbots/internal/seeding"
	"github.com/lox/jokerforbots/poker"
)

// BlindTier is the position of a blind within its ante.
type BlindTier int

const (
	SmallBlind BlindTier = iota
	BigBlind
	BossBlind
)

func (t BlindTier) String() string {
	return [...]string{"small", "big", "boss"}[t]
}

// Hand is a selection of at most five distinct cards, held as indices into
// the run's cards.
type Hand []int

// MaxHandCards is the largest selection that can be played or discarded.
const MaxHandCards = 5

// bossState is the per-blind memory of bosses that need one.
type bossState interface {
	isBossState()
}

// eyeState remembers which hand types this blind has seen.
type eyeState struct {
	played [poker.HandTypeCount]bool
}

// mouthState holds the one hand type the blind still allows.
type mouthState struct {
	hand poker.HandType
	set  bool
}

// leafState tracks whether a joker has been sold this blind.
type leafState struct {
	sold bool
}

func (*eyeState) isBossState()   {}
func (*mouthState) isBossState() {}
func (*leafState) isBossState()  {}

func newBossState(b Boss) bossState {
	switch b {
	case TheEye:
		return &eyeState{}
	case TheMouth:
		return &mouthState{}
	case VerdantLeaf:
		return &leafState{}
	default:
		return nil
	}
}

// Blind is the state of the blind being played. It is created on entry and
// dropped once the blind is won or lost.
type Blind struct {
	Tier BlindTier
	Boss Boss

	Requirement float64
	Chips       float64
	Mult        float64
	Score       float64

	Hands    int
	Discards int
	HandSize int

	// LastHand is the classification of the most recent play.
	LastHand poker.HandType

	run       *Run
	state     bossState
	priority  map[EventType]int
	deck      []int
	held      []int
	selected  Hand
	played    []int
	discarded []int
	destroyed []int

	handsPlayed int
}

func (r *Run) newBlind(tier BlindTier) *Blind {
	b := &Blind{
		Tier:     tier,
		run:      r,
		Hands:    r.Hands,
		Discards: r.Discards,
		HandSize: r.HandSize + r.juggle,
	}
	r.juggle = 0

	mult := 1.0
	switch tier {
	case BigBlind:
		mult = 1.5
	case BossBlind:
		b.Boss = r.Boss()
		b.state = newBossState(b.Boss)
		mult = b.Boss.Multiplier()
	}
	b.Requirement = BaseRequirement(r.ante, r.stake.Tier()) * mult

	// These bosses scale with Chicot rather than being switched off by it.
	chicots := r.ChicotCount()
	switch b.Boss {
	case TheWater:
		b.Discards *= chicots
	case TheNeedle:
		b.Hands = 1 + (b.Hands-1)*chicots
	case TheManacle:
		b.HandSize += chicots - 1
	}

	b.deck = make([]int, len(r.cards))
	for i := range b.deck {
		b.deck[i] = i
	}
	seeding.ShuffleKeyed(r.stream, b.deck, keyf("nr%d", r.ante))
	return b
}

func (b *Blind) eye() *eyeState {
	s, ok := b.state.(*eyeState)
	if !ok {
		panic(fmt.Sprintf("game: %s carries no eye state", b.Boss))
	}
	return s
}

func (b *Blind) mouth() *mouthState {
	s, ok := b.state.(*mouthState)
	if !ok {
		panic(fmt.Sprintf("game: %s carries no mouth state", b.Boss))
	}
	return s
}

func (b *Blind) leaf() *leafState {
	s, ok := b.state.(*leafState)
	if !ok {
		panic(fmt.Sprintf("game: %s carries no leaf state", b.Boss))
	}
	return s
}

// Priority returns the blind's dispatch priority for ev.
func (b *Blind) Priority(ev EventType) int { return b.priority[ev] }

// SetPriority changes the blind's dispatch priority for ev.
func (b *Blind) SetPriority(ev EventType, p int) {
	if b.priority == nil {
		b.priority = make(map[EventType]int)
	}
	b.priority[ev] = p
}

// rulesActive reports whether the boss rule applies. Owning Chicot disables it.
func (b *Blind) rulesActive() bool {
	return b.Boss != NoBoss && b.run.ChicotCount() == 0
}

// Debuffed reports whether c scores nothing in this blind.
func (b *Blind) Debuffed(c poker.Card) bool {
	if !b.rulesActive() {
		return false
	}
	switch b.Boss {
	case TheClub:
		return c.Suit == poker.Clubs
	case TheGoad:
		return c.Suit == poker.Spades
	case TheHead:
		return c.Suit == poker.Hearts
	case TheWindow:
		return c.Suit == poker.Diamonds
	case ThePlant:
		return c.Rank.IsFace()
	case VerdantLeaf:
		return !b.leaf().sold
	}
	return false
}

// handle applies the boss rule for ev.
func (b *Blind) handle(ev *Event) {
	if !b.rulesActive() || ev.Type != EventHandPlayed {
		return
	}
	r, ht := ev.Run, ev.HandType

	switch b.Boss {
	case TheArm:
		r.ChangeHandLevel(ht, -1)
	case TheEye:
		s := b.eye()
		if s.played[ht] {
			ev.Veto()
		}
		s.played[ht] = true
	case TheMouth:
		s := b.mouth()
		if !s.set {
			s.hand, s.set = ht, true
		} else if ht != s.hand {
			ev.Veto()
		}
	case ThePsychic:
		if len(ev.Cards) < MaxHandCards {
			ev.Veto()
		}
	case TheOx:
		if r.IsMostPlayedHand(ht) {
			r.Money = 0
		}
	case TheTooth:
		r.Money -= len(ev.Cards)
	}
}

// Held returns the cards in hand.
func (b *Blind) Held() []poker.Card { return b.run.resolve(b.held) }

// Selected returns the cards currently selected.
func (b *Blind) Selected() []poker.Card { return b.run.resolve(b.selected) }

// Selection returns the selected cards as indices into the run's cards.
func (b *Blind) Selection() Hand { return slices.Clone(b.selected) }

// DeckSize is the number of cards left to draw.
func (b *Blind) DeckSize() int { return len(b.deck) }

// HandsPlayed counts plays in this blind, vetoed ones included.
func (b *Blind) HandsPlayed() int { return b.handsPlayed }

// IsSelected reports whether held card i is selected.
func (b *Blind) IsSelected(i int) bool {
	return i >= 0 && i < len(b.held) && slices.Contains(b.selected, b.held[i])
}

func (b *Blind) destroy(card int) {
	if !slices.Contains(b.destroyed, card) {
		b.destroyed = append(b.destroyed, card)
	}
}

// draw moves up to n cards from the end of the deck into hand.
func (b *Blind) draw(n int) {
	for ; n > 0 && len(b.deck) > 0; n-- {
		last := len(b.deck) - 1
		b.held = append(b.held, b.deck[last])
		b.deck = b.deck[:last]
	}
}

func (b *Blind) redraw() {
	if b.Boss == TheSerpent && b.rulesActive() {
		b.draw(3)
		return
	}
	b.draw(b.HandSize - len(b.held))
}

// take removes the selection from hand and returns it.
func (b *Blind) take() Hand {
	sel := b.selected
	b.selected = nil
	b.held = slices.DeleteFunc(b.held, func(i int) bool { return slices.Contains(sel, i) })
	return sel
}

// setBase resets chips and mult to the base values of ht at level.
func (b *Blind) setBase(ht poker.HandType, level int) {
	b.Chips = poker.BaseChips(ht, level)
	b.Mult = poker.BaseMult(ht, level)
	if b.Boss == TheFlint && b.rulesActive() {
		b.Chips = math.Floor(b.Chips*0.5 + 0.5)
		b.Mult = max(math.Floor(b.Mult*0.5+0.5), 1)
	}
}

// scoreCard adds the contribution of a scoring card.
func (b *Blind) scoreCard(c poker.Card) {
	switch c.Enhancement {
	case poker.Stone:
		b.Chips += 50
	case poker.Bonus:
		b.Chips += float64(c.Chips) + 30
	case poker.MultCard:
		b.Chips += float64(c.Chips)
		b.Mult += 4
	case poker.Glass:
		b.Chips += float64(c.Chips)
		b.Mult *= 2
	default:
		b.Chips += float64(c.Chips)
	}

	switch c.Edition {
	case poker.Foil:
		b.Chips += 50
	case poker.Holographic:
		b.Mult += 10
	case poker.Polychrome:
		b.Mult *= 1.5
	}
}

// reward is the money paid for winning the blind.
func (b *Blind) reward(stake Stake) int {
	switch b.Tier {
	case SmallBlind:
		if stake >= Red {
			return 0
		}
		return 3
	case BigBlind:
		return 4
	}
	if b.Boss.Showdown() {
		return 8
	}
	return 5
}

// selectCard adds held card i to the selection.
func (r *Run) selectCard(i int) {
	b := r.blind
	if i < 0 || i >= len(b.held) || len(b.selected) >= MaxHandCards {
		r.logger.Debug("Ignored select", "index", i, "held", len(b.held), "selected", len(b.selected))
		return
	}
	card := b.held[i]
	if slices.Contains(b.selected, card) {
		return
	}
	b.selected = append(b.selected, card)
}

// play scores the selection. A veto from the dispatch skips the score
// addition and the redraw.
func (r *Run) play() {
	b := r.blind
	if b.Hands <= 0 || len(b.selected) == 0 {
		r.logger.Debug("Ignored play", "hands", b.Hands, "selected", len(b.selected))
		return
	}

	sel := b.take()
	cards := r.resolve(sel)
	ht := poker.Classify(cards)
	b.LastHand = ht
	r.timesPlayed[ht]++
	r.planetUnlocked[ht] = true
	r.handsPlayed++
	b.handsPlayed++

	b.setBase(ht, r.levels[ht])
	b.played = append(b.played, sel...)
	b.Hands--

	for _, k := range poker.ScoringCards(cards, ht) {
		c := cards[k]
		if b.Debuffed(c) {
			continue
		}
		b.scoreCard(c)
		r.dispatch(&Event{
			Type:  EventCardScored, Run: r, Blind: b, HandType: ht,
			Cards: cards, Indices: sel, Card: c, Suits: suitsOf(c),
		})
	}

	ev := &Event{Type: EventHandPlayed, Run: r, Blind: b, HandType: ht, Cards: cards, Indices: sel}
	r.dispatch(ev)
	if ev.Vetoed() {
		r.logger.Debug("Hand not allowed", "hand", ht, "boss", b.Boss)
		r.checkBlindOver()
		return
	}

	if r.vouchers[Observatory] {
		for _, c := range r.consumables {
			if c.Kind == PlanetCard && c.Planet == ht {
				b.Mult *= 1.5
			}
		}
	}

	gained := b.Chips * b.Mult
	b.Score += gained
	r.logger.Debug("Played hand", "hand", ht, "chips", b.Chips, "mult", b.Mult, "gained", gained, "score", b.Score)

	b.redraw()
	r.checkBlindOver()
}

func (r *Run) discard() {
	b := r.blind
	if b.Discards <= 0 || len(b.selected) == 0 {
		r.logger.Debug("Ignored discard", "discards", b.Discards, "selected", len(b.selected))
		return
	}

	sel := b.take()
	cards := r.resolve(sel)
	b.discarded = append(b.discarded, sel...)
	b.Discards--

	r.dispatch(&Event{Type: EventDiscard, Run: r, Blind: b, HandType: poker.Classify(cards), Cards: cards, Indices: sel})
	b.redraw()
	r.checkBlindOver()
}

// checkBlindOver ends the blind once the requirement is met, or loses the run
// when no hands or cards remain. An empty hand is refilled from the deck
// first, since a vetoed play leaves the selection unreplaced.
func (r *Run) checkBlindOver() {
	b := r.blind
	if len(b.held) == 0 && b.Score < b.Requirement {
		b.redraw()
	}
	switch {
	case b.Score >= b.Requirement:
		r.clearBlind()
	case b.Hands <= 0, len(b.held) == 0 && len(b.deck) == 0:
		r.finish(Lost)
	}
}

// duplicateCard appends a copy of run card i and puts it in hand.
func (r *Run) duplicateCard(i int) {
	r.cards = append(r.cards, r.card(i))
	if r.blind != nil {
		r.blind.held = append(r.blind.held, len(r.cards)-1)
	}
}
