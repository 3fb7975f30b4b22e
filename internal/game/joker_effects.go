package game

import (
	"cmp"
	"slices"

	"github.com/lox/jokerforbots/poker"
)

type handBonus struct {
	joker JokerType
	hand  poker.HandType
	value float64
}

var plusMultJokers = []handBonus{
	{JollyJoker, poker.Pair, 8},
	{ZanyJoker, poker.ThreeOfAKind, 12},
	{MadJoker, poker.TwoPair, 10},
	{CrazyJoker, poker.Straight, 12},
	{DrollJoker, poker.Flush, 10},
}

var plusChipJokers = []handBonus{
	{SlyJoker, poker.Pair, 50},
	{WilyJoker, poker.ThreeOfAKind, 100},
	{CleverJoker, poker.TwoPair, 80},
	{DeviousJoker, poker.Straight, 100},
	{CraftyJoker, poker.Flush, 80},
}

var suitJokers = map[JokerType]poker.Suit{
	WrathfulJoker:   poker.Spades,
	LustyJoker:      poker.Hearts,
	GluttonousJoker: poker.Clubs,
	GreedyJoker:     poker.Diamonds,
}

// handle applies j's effect for ev. pos is j's position in the joker list
// when the pass started.
func (j *Joker) handle(ev *Event, pos int) deferredAction {
	if ev.Type == EventRoundEnded {
		j.tickStickers(ev.Run)
	}
	if j.Debuffed {
		return nil
	}

	switch ev.Type {
	case EventBlindEntered:
		return j.onBlindEntered(ev, pos)
	case EventHandPlayed:
		j.onHandPlayed(ev)
		j.applyEdition(ev.Blind)
	case EventCardScored:
		j.onCardScored(ev)
	case EventDiscard:
		j.onDiscard(ev)
	case EventRoundEnded:
		return j.onRoundEnded(ev)
	}
	return nil
}

func (j *Joker) onBlindEntered(ev *Event, pos int) deferredAction {
	switch j.kind {
	case DNA, SixthSense, TradingCard, BurntJoker:
		j.ready().ready = true
	case CardSharp:
		j.cardSharp().played = [poker.HandTypeCount]bool{}
	case CeremonialDagger:
		jokers := ev.Run.jokers
		if pos+1 >= len(jokers) {
			return nil
		}
		target := jokers[pos+1].id
		return func(r *Run, self *Joker) { r.sliceJoker(self, target) }
	}
	return nil
}

// sliceJoker destroys the joker identified by target and adds its sell value
// to the dagger's mult.
func (r *Run) sliceJoker(dagger *Joker, target uint64) {
	victim := r.jokerByID(target)
	if victim == dagger || !r.destroyJoker(victim) {
		return
	}
	dagger.dagger().mult += victim.SellValue
	r.logger.Debug("Dagger destroyed joker", "victim", victim, "mult", dagger.DaggerMult())
}

// destroyJoker removes j unless it is eternal.
func (r *Run) destroyJoker(j *Joker) bool {
	if j == nil || j.Stickers.Eternal {
		return false
	}
	r.RemoveJoker(j)
	return true
}

func (j *Joker) onHandPlayed(ev *Event) {
	b, r := ev.Blind, ev.Run

	for _, hb := range plusMultJokers {
		if hb.joker == j.kind {
			if poker.Contains(ev.Cards, hb.hand) {
				b.Mult += hb.value
			}
			return
		}
	}
	for _, hb := range plusChipJokers {
		if hb.joker == j.kind {
			if poker.Contains(ev.Cards, hb.hand) {
				b.Chips += hb.value
			}
			return
		}
	}

	switch j.kind {
	case Jimbo:
		b.Mult += 4
	case HalfJoker:
		if len(ev.Cards) <= 3 {
			b.Mult += 20
		}
	case Banner:
		b.Chips += 30 * float64(b.Discards)
	case MysticSummit:
		if b.Discards == 0 {
			b.Mult += 15
		}
	case RaisedFist:
		if len(ev.Cards) > 0 {
			lowest := slices.MinFunc(ev.Cards, func(a, c poker.Card) int { return cmp.Compare(a.Rank, c.Rank) })
			b.Mult += float64(2 * lowest.Rank.Chips())
		}
	case CeremonialDagger:
		b.Mult += float64(j.dagger().mult)
	case CardSharp:
		s := j.cardSharp()
		if s.played[ev.HandType] {
			b.Mult *= 3
		}
		s.played[ev.HandType] = true
	case DNA:
		s := j.ready()
		if s.ready && len(ev.Indices) == 1 {
			r.duplicateCard(ev.Indices[0])
		}
		s.ready = false
	case SixthSense:
		s := j.ready()
		if s.ready && len(ev.Cards) == 1 && ev.Cards[0].Rank == poker.Six {
			b.destroy(ev.Indices[0])
			if len(r.consumables) < r.ConsumableSlots {
				r.consumables = append(r.consumables, r.rollConsumable(consumableRoll{
					kind:   SpectralCard,
					origin: "sixth",
				}))
			}
		}
		s.ready = false
	}
}

func (j *Joker) applyEdition(b *Blind) {
	switch j.Edition {
	case EditionFoil:
		b.Chips += 50
	case EditionHolographic:
		b.Mult += 10
	case EditionPolychrome:
		b.Mult *= 1.5
	}
}

func (j *Joker) onCardScored(ev *Event) {
	if j.kind == SmearedJoker {
		s := ev.Suits
		if s.Has(poker.Spades) || s.Has(poker.Clubs) {
			s = s.With(poker.Spades).With(poker.Clubs)
		}
		if s.Has(poker.Hearts) || s.Has(poker.Diamonds) {
			s = s.With(poker.Hearts).With(poker.Diamonds)
		}
		ev.Suits = s
		return
	}
	if suit, ok := suitJokers[j.kind]; ok && ev.Suits.Has(suit) {
		ev.Blind.Mult += 3
	}
}

func (j *Joker) onDiscard(ev *Event) {
	r := ev.Run
	switch j.kind {
	case TradingCard:
		s := j.ready()
		if s.ready && len(ev.Indices) == 1 {
			r.Money += 3
			ev.Blind.destroy(ev.Indices[0])
		}
		s.ready = false
	case BurntJoker:
		s := j.ready()
		if s.ready {
			r.ChangeHandLevel(ev.HandType, 1)
		}
		s.ready = false
	}
}

func (j *Joker) onRoundEnded(ev *Event) deferredAction {
	if j.kind != TurtleBean {
		return nil
	}
	s := j.turtleBean()
	if s.handSize <= 0 {
		return nil
	}
	s.handSize--
	ev.Run.HandSize--
	if s.handSize > 0 {
		return nil
	}
	return func(r *Run, self *Joker) { r.destroyJoker(self) }
}

// tickStickers charges rentals and ages perishables at the end of a round.
func (j *Joker) tickStickers(r *Run) {
	if j.Stickers.Rental {
		r.Money -= 3
	}
	if j.Stickers.Perishable && !j.Debuffed {
		j.roundsLeft--
		if j.roundsLeft <= 0 {
			j.Debuffed = true
			r.logger.Debug("Perishable joker expired", "joker", j)
		}
	}
}

// onAdded and onRemoved apply the passive effects of owning j.
func (j *Joker) onAdded(r *Run) {
	if j.Edition == EditionNegative {
		r.JokerSlots++
	}
	if j.kind == TurtleBean {
		r.HandSize += j.turtleBean().handSize
	}
}

func (j *Joker) onRemoved(r *Run) {
	if j.Edition == EditionNegative {
		r.JokerSlots--
	}
	if j.kind == TurtleBean {
		r.HandSize -= j.turtleBean().handSize
	}
}
