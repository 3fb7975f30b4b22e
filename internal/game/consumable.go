package game

import (
	"github.com/lox/jokerforbots/poker"
)

// Tarot identifies a tarot card.
type Tarot int

const (
	TheFool Tarot = iota
	TheMagician
	TheHighPriestess
	TheEmpress
	TheEmperor
	TheHierophant
	TheLovers
	TheChariot
	Justice
	TheHermit
	TheWheelOfFortune
	Strength
	TheHangedMan
	Death
	Temperance
	TheDevil
	TheTower
	TheStar
	TheMoon
	TheSun
	Judgement
	TheWorld
)

// TarotCount is the number of tarot cards.
const TarotCount = 22

func (t Tarot) String() string {
	return [...]string{
		"The Fool", "The Magician", "The High Priestess", "The Empress", "The Emperor",
		"The Hierophant", "The Lovers", "The Chariot", "Justice", "The Hermit",
		"The Wheel of Fortune", "Strength", "The Hanged Man", "Death", "Temperance",
		"The Devil", "The Tower", "The Star", "The Moon", "The Sun", "Judgement", "The World",
	}[t]
}

// Spectral identifies a spectral card.
type Spectral int

const (
	Familiar Spectral = iota
	Grim
	Incantation
	Talisman
	Aura
	Wraith
	Sigil
	Ouija
	Ectoplasm
	Immolate
	Ankh
	DejaVu
	Hex
	Trance
	Medium
	Cryptid
	TheSoul
	BlackHole
)

// SpectralCount is the number of spectral cards.
const SpectralCount = 18

func (s Spectral) String() string {
	return [...]string{
		"Familiar", "Grim", "Incantation", "Talisman", "Aura", "Wraith", "Sigil", "Ouija",
		"Ectoplasm", "Immolate", "Ankh", "Deja Vu", "Hex", "Trance", "Medium", "Cryptid",
		"The Soul", "Black Hole",
	}[s]
}

// planetOrder is the order planets are polled in. It differs from hand
// strength order.
var planetOrder = [poker.HandTypeCount]poker.HandType{
	poker.Pair, poker.ThreeOfAKind, poker.FullHouse, poker.FourOfAKind, poker.Flush,
	poker.Straight, poker.TwoPair, poker.StraightFlush, poker.HighCard, poker.FiveOfAKind,
	poker.FlushHouse, poker.FlushFive,
}

var planetNames = [poker.HandTypeCount]string{
	poker.HighCard:      "Pluto",
	poker.Pair:          "Mercury",
	poker.TwoPair:       "Uranus",
	poker.ThreeOfAKind:  "Venus",
	poker.Straight:      "Saturn",
	poker.Flush:         "Jupiter",
	poker.FullHouse:     "Earth",
	poker.FourOfAKind:   "Mars",
	poker.StraightFlush: "Neptune",
	poker.FiveOfAKind:   "Planet X",
	poker.FlushHouse:    "Ceres",
	poker.FlushFive:     "Eris",
}

// ConsumableKind separates the three consumable families.
type ConsumableKind int

const (
	TarotCard ConsumableKind = iota
	PlanetCard
	SpectralCard
)

func (k ConsumableKind) String() string {
	return [...]string{"Tarot", "Planet", "Spectral"}[k]
}

// Consumable is a single-use card. Only the field matching Kind is
// meaningful.
type Consumable struct {
	Kind     ConsumableKind
	Tarot    Tarot
	Planet   poker.HandType
	Spectral Spectral
}

// NewTarot returns the tarot consumable t.
func NewTarot(t Tarot) Consumable { return Consumable{Kind: TarotCard, Tarot: t} }

// NewPlanet returns the planet that levels hand type h.
func NewPlanet(h poker.HandType) Consumable { return Consumable{Kind: PlanetCard, Planet: h} }

// NewSpectral returns the spectral consumable s.
func NewSpectral(s Spectral) Consumable { return Consumable{Kind: SpectralCard, Spectral: s} }

func (c Consumable) String() string {
	switch c.Kind {
	case TarotCard:
		return c.Tarot.String()
	case PlanetCard:
		return planetNames[c.Planet]
	default:
		return c.Spectral.String()
	}
}

// BaseCost is the shop price before discounts.
func (c Consumable) BaseCost() int {
	if c.Kind == SpectralCard {
		return 4
	}
	return 3
}
