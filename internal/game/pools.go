package game

import (
	"fmt"
	"slices"

	"github.com/lox/jokerforbots/internal/pool"
	"github.com/lox/jokerforbots/poker"
)

func keyf(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}

// jokerRoll describes where a joker is generated from.
type jokerRoll struct {
	// origin is appended to channel keys ("sho", "buf", "top").
	origin string
	// rarity is used as is when fixedRarity is set.
	rarity      Rarity
	fixedRarity bool
	// exclude lists identities already picked in the same pack.
	exclude []JokerType
	// showmanBypass lets Showman lift the exclude list as well.
	showmanBypass bool
	edition       bool
}

// rollJoker draws a joker: rarity first, then an identity from that rarity's
// pool that is neither owned nor on offer unless Showman is owned.
func (r *Run) rollJoker(o jokerRoll) *Joker {
	rarity := o.rarity
	if !o.fixedRarity {
		switch u := r.stream.Random(keyf("rarity%d%s", r.ante, o.origin)); {
		case u > 0.95:
			rarity = Rare
		case u > 0.7:
			rarity = Uncommon
		default:
			rarity = Common
		}
	}

	candidates := rarity.Pool()
	showman := r.showman()
	available := make([]bool, len(candidates))
	for i, t := range candidates {
		allowed := (o.showmanBypass && showman) || !slices.Contains(o.exclude, t)
		available[i] = allowed && (showman || (!r.shop.offersJoker(t) && r.countJokers(t) == 0))
	}
	if !pool.Any(available) {
		available[0] = true
	}

	t := candidates[pool.Poll(r.stream, available, keyf("Joker%d%s%d", int(rarity)+1, o.origin, r.ante))]
	j := NewJoker(t)
	if o.edition {
		j.Edition = r.jokerEdition(keyf("edi%s%d", o.origin, r.ante))
		j.SellValue = max(1, j.Cost()/2)
	}
	return j
}

func (r *Run) jokerEdition(key string) JokerEdition {
	rate := r.shop.EditionRate
	switch u := r.stream.Random(key); {
	case u > 1-0.003*rate:
		return EditionNegative
	case u > 1-0.006*rate:
		return EditionPolychrome
	case u > 1-0.02*rate:
		return EditionHolographic
	case u > 1-0.04*rate:
		return EditionFoil
	default:
		return EditionBase
	}
}

var (
	tarotOrder    = make([]Consumable, TarotCount)
	planetPool    = make([]Consumable, poker.HandTypeCount)
	spectralOrder = make([]Consumable, SpectralCount)
)

func init() {
	for i := range tarotOrder {
		tarotOrder[i] = NewTarot(Tarot(i))
	}
	for i, h := range planetOrder {
		planetPool[i] = NewPlanet(h)
	}
	for i := range spectralOrder {
		spectralOrder[i] = NewSpectral(Spectral(i))
	}
}

// consumableRoll describes where a consumable is generated from.
type consumableRoll struct {
	kind   ConsumableKind
	origin string
	// soul enables the rare roll that replaces the draw with The Soul, or
	// Black Hole for planets.
	soul    bool
	exclude []Consumable
	// unlockedOnly restricts planets to unlocked hand types.
	unlockedOnly bool
	// noSoulCard keeps The Soul out of the regular pool.
	noSoulCard bool
}

func consumableOrder(k ConsumableKind) ([]Consumable, Consumable) {
	switch k {
	case TarotCard:
		return tarotOrder, NewTarot(Strength)
	case PlanetCard:
		return planetPool, NewPlanet(poker.HighCard)
	default:
		return spectralOrder, NewSpectral(Incantation)
	}
}

// rollConsumable polls a consumable of o.kind that is neither held nor on
// offer unless Showman is owned.
func (r *Run) rollConsumable(o consumableRoll) Consumable {
	typ := o.kind.String()
	if o.soul && r.stream.Random(keyf("soul_%s%d", typ, r.ante)) > 0.997 {
		if o.kind == PlanetCard {
			return NewSpectral(BlackHole)
		}
		return NewSpectral(TheSoul)
	}

	order, fallback := consumableOrder(o.kind)
	showman := r.showman()
	available := make([]bool, len(order))
	for i, c := range order {
		ok := !slices.Contains(o.exclude, c)
		if o.unlockedOnly && c.Kind == PlanetCard {
			ok = ok && r.planetUnlocked[c.Planet]
		}
		if o.noSoulCard && c.Kind == SpectralCard {
			ok = ok && c.Spectral != TheSoul
		}
		available[i] = ok && (showman || (!slices.Contains(r.consumables, c) && !r.shop.offersConsumable(c)))
	}
	if !pool.Any(available) {
		available[slices.Index(order, fallback)] = true
	}

	return order[pool.Poll(r.stream, available, keyf("%s%s%d", typ, o.origin, r.ante))]
}

// rollPlayingCard picks a card from the standard 52.
func (r *Run) rollPlayingCard(origin string) poker.Card {
	deck := poker.DefaultDeck()
	return deck[pool.Element(r.stream, len(deck), keyf("front%s%d", origin, r.ante))]
}
