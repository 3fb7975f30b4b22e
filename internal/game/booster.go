package game

import (
	"github.com/lox/jokerforbots/internal/pool"
)

// BoosterPack is a pack type sold in the shop.
type BoosterPack int

const (
	ArcanaNormal BoosterPack = iota
	ArcanaJumbo
	ArcanaMega
	CelestialNormal
	CelestialJumbo
	CelestialMega
	StandardNormal
	StandardJumbo
	StandardMega
	BuffoonNormal
	BuffoonJumbo
	BuffoonMega
	SpectralNormal
	SpectralJumbo
	SpectralMega
)

// BoosterPackCount is the number of pack types.
const BoosterPackCount = 15

// PackKind is what a booster pack contains.
type PackKind int

const (
	ArcanaPack PackKind = iota
	CelestialPack
	StandardPack
	BuffoonPack
	SpectralPack
)

func (k PackKind) String() string {
	return [...]string{"Arcana", "Celestial", "Standard", "Buffoon", "Spectral"}[k]
}

// Weights sum every art variant of a pack type.
var defaultPackWeights = [BoosterPackCount]float64{
	4, 2, 0.5,
	4, 2, 0.5,
	4, 2, 0.5,
	1.2, 0.6, 0.15,
	0.6, 0.3, 0.07,
}

// Kind returns the pack's contents family.
func (p BoosterPack) Kind() PackKind { return PackKind(p / 3) }

func (p BoosterPack) variant() int { return int(p % 3) }

func (p BoosterPack) String() string {
	return p.Kind().String() + " " + [...]string{"Normal", "Jumbo", "Mega"}[p.variant()]
}

// Size is the number of cards the pack shows.
func (p BoosterPack) Size() int {
	switch p.Kind() {
	case BuffoonPack, SpectralPack:
		return [...]int{2, 4, 4}[p.variant()]
	default:
		return [...]int{3, 5, 5}[p.variant()]
	}
}

// Picks is how many cards can be kept.
func (p BoosterPack) Picks() int {
	if p.variant() == 2 {
		return 2
	}
	return 1
}

// Cost is the undiscounted price.
func (p BoosterPack) Cost() int { return [...]int{4, 6, 8}[p.variant()] }

// NextBoosterPack draws the next shop pack. The first pack of the run is
// always a normal buffoon pack.
func (r *Run) NextBoosterPack() BoosterPack {
	s := r.shop
	if !s.buffoonGiven {
		s.buffoonGiven = true
		return BuffoonNormal
	}
	return BoosterPack(pool.Weighted(r.stream, s.packWeights[:], keyf("shop_pack%d", r.ante)))
}

// OpenBoosterPack generates the contents of p. Cards within a pack never
// repeat.
func (r *Run) OpenBoosterPack(p BoosterPack) []ShopItem {
	n := p.Size()
	out := make([]ShopItem, 0, n)

	var picked []Consumable
	addConsumable := func(c Consumable) {
		picked = append(picked, c)
		out = append(out, consumableItem(c))
	}

	switch p.Kind() {
	case ArcanaPack:
		for range n {
			if r.vouchers[OmenGlobe] && r.stream.Random("omen_globe") > 0.8 {
				addConsumable(r.rollConsumable(consumableRoll{kind: SpectralCard, origin: "ar2", soul: true, exclude: picked}))
			} else {
				addConsumable(r.rollConsumable(consumableRoll{kind: TarotCard, origin: "ar1", soul: true, exclude: picked}))
			}
		}
	case CelestialPack:
		for i := range n {
			if i == 0 && r.vouchers[Telescope] {
				addConsumable(NewPlanet(r.mostPlayedHand()))
				continue
			}
			addConsumable(r.rollConsumable(consumableRoll{
				kind: PlanetCard, origin: "pl1", soul: true, exclude: picked, unlockedOnly: true,
			}))
		}
	case SpectralPack:
		for range n {
			addConsumable(r.rollConsumable(consumableRoll{kind: SpectralCard, origin: "spe", soul: true, exclude: picked}))
		}
	case StandardPack:
		for range n {
			out = append(out, ShopItem{Type: PlayingCardItem, Card: r.rollPlayingCard("sta")})
		}
	case BuffoonPack:
		var types []JokerType
		for range n {
			j := r.rollJoker(jokerRoll{origin: "buf", exclude: types, showmanBypass: true, edition: true})
			types = append(types, j.kind)
			out = append(out, ShopItem{Type: JokerItem, Joker: j})
		}
	}
	return out
}
