package game

import (
	"math"
	"slices"

	"github.com/lox/jokerforbots/internal/pool"
	"github.com/lox/jokerforbots/poker"
)

// ShopItemType is the category a shop slot is drawn from.
type ShopItemType int

const (
	JokerItem ShopItemType = iota
	TarotItem
	PlanetItem
	PlayingCardItem
	SpectralItem
)

const shopItemTypeCount = 5

func (t ShopItemType) String() string {
	return [...]string{"joker", "tarot", "planet", "playing card", "spectral"}[t]
}

// ShopItem is one offer in the shop or one card in an opened pack. Only the
// field matching Type is set.
type ShopItem struct {
	Type       ShopItemType
	Joker      *Joker
	Consumable Consumable
	Card       poker.Card
	Price      int
}

func consumableItem(c Consumable) ShopItem {
	switch c.Kind {
	case TarotCard:
		return ShopItem{Type: TarotItem, Consumable: c}
	case PlanetCard:
		return ShopItem{Type: PlanetItem, Consumable: c}
	default:
		return ShopItem{Type: SpectralItem, Consumable: c}
	}
}

func (it ShopItem) String() string {
	switch it.Type {
	case JokerItem:
		return it.Joker.String()
	case PlayingCardItem:
		return it.Card.String()
	default:
		return it.Consumable.String()
	}
}

// Shop is the run's shop: its current offers and the weights and discounts
// that vouchers change.
type Shop struct {
	Items    []ShopItem
	Vouchers []Voucher
	Packs    []BoosterPack

	Slots           int
	PriceMultiplier float64
	EditionRate     float64
	RerollBase      int

	weights      [shopItemTypeCount]float64
	packWeights  [BoosterPackCount]float64
	buffoonGiven bool
	voucherAnte  int
	rerolls      int
}

func newShop() *Shop {
	return &Shop{
		Slots:           2,
		PriceMultiplier: 1,
		EditionRate:     1,
		RerollBase:      5,
		weights:         [shopItemTypeCount]float64{20, 4, 4, 0, 0},
		packWeights:     defaultPackWeights,
	}
}

// Weight returns the draw weight of category t.
func (s *Shop) Weight(t ShopItemType) float64 { return s.weights[t] }

// RerollCost is the price of the next reroll.
func (s *Shop) RerollCost() int { return max(0, s.RerollBase+s.rerolls) }

// Price applies the shop discount to base, rounding half up with a floor of 1.
func (s *Shop) Price(base int) int {
	return max(1, int(math.Floor(float64(base)*s.PriceMultiplier+0.5)))
}

func (s *Shop) offersJoker(t JokerType) bool {
	return slices.ContainsFunc(s.Items, func(it ShopItem) bool {
		return it.Type == JokerItem && it.Joker.kind == t
	})
}

func (s *Shop) offersConsumable(c Consumable) bool {
	return slices.ContainsFunc(s.Items, func(it ShopItem) bool {
		return it.Type != JokerItem && it.Type != PlayingCardItem && it.Consumable == c
	})
}

// NextShopItem draws the category of the next slot and then its content.
func (r *Run) NextShopItem() ShopItem {
	s := r.shop
	item := ShopItem{Type: ShopItemType(pool.Weighted(r.stream, s.weights[:], keyf("cdt%d", r.ante)))}

	switch item.Type {
	case JokerItem:
		item.Joker = r.rollJoker(jokerRoll{origin: "sho", edition: true})
		item.Price = s.Price(item.Joker.Cost())
		return item
	case PlayingCardItem:
		item.Card = r.rollPlayingCard("sho")
		item.Price = s.Price(1)
		return item
	case TarotItem:
		item.Consumable = r.rollConsumable(consumableRoll{kind: TarotCard, origin: "sho"})
	case PlanetItem:
		item.Consumable = r.rollConsumable(consumableRoll{kind: PlanetCard, origin: "sho"})
	case SpectralItem:
		item.Consumable = r.rollConsumable(consumableRoll{kind: SpectralCard, origin: "sho", noSoulCard: true})
	}
	item.Price = s.Price(item.Consumable.BaseCost())
	return item
}

// restockShop fills a fresh shop. The voucher only changes once per ante.
func (r *Run) restockShop() {
	s := r.shop
	s.rerolls = 0
	if s.voucherAnte != r.ante {
		s.Vouchers = nil
		s.Vouchers = append(s.Vouchers, r.NextVoucher())
		s.voucherAnte = r.ante
	}
	s.Items = nil
	r.fillShop()
	s.Packs = []BoosterPack{r.NextBoosterPack(), r.NextBoosterPack()}
	r.logger.Debug("Stocked shop", "ante", r.ante, "items", len(s.Items), "vouchers", s.Vouchers, "packs", s.Packs)
}

func (r *Run) fillShop() {
	for len(r.shop.Items) < r.shop.Slots {
		r.shop.Items = append(r.shop.Items, r.NextShopItem())
	}
}

func (r *Run) reroll() bool {
	s := r.shop
	cost := s.RerollCost()
	if r.Money < cost {
		return false
	}
	r.Money -= cost
	s.rerolls++
	s.Items = nil
	r.fillShop()
	return true
}

func (r *Run) buy(i int) bool {
	s := r.shop
	if i < 0 || i >= len(s.Items) || r.Money < s.Items[i].Price {
		return false
	}
	it := s.Items[i]

	switch it.Type {
	case JokerItem:
		if !r.AddJoker(it.Joker) {
			return false
		}
	case PlayingCardItem:
		r.cards = append(r.cards, it.Card)
	default:
		if len(r.consumables) >= r.ConsumableSlots {
			return false
		}
		r.consumables = append(r.consumables, it.Consumable)
	}

	r.Money -= it.Price
	s.Items = slices.Delete(s.Items, i, i+1)
	r.logger.Debug("Bought item", "item", it, "price", it.Price, "money", r.Money)
	return true
}

func (r *Run) redeemOffer(i int) bool {
	s := r.shop
	price := s.Price(voucherCost)
	if i < 0 || i >= len(s.Vouchers) || r.Money < price {
		return false
	}
	v := s.Vouchers[i]
	r.Money -= price
	s.Vouchers = slices.Delete(s.Vouchers, i, i+1)
	r.redeem(v)
	return true
}

// openPack buys pack i and keeps the contents at the positions in choices,
// up to the pack's pick limit.
func (r *Run) openPack(i int, choices []int) bool {
	s := r.shop
	if i < 0 || i >= len(s.Packs) {
		return false
	}
	p := s.Packs[i]
	price := s.Price(p.Cost())
	if r.Money < price {
		return false
	}
	r.Money -= price
	s.Packs = slices.Delete(s.Packs, i, i+1)

	contents := r.OpenBoosterPack(p)
	var taken []int
	for _, c := range choices {
		if len(taken) >= p.Picks() {
			break
		}
		if c < 0 || c >= len(contents) || slices.Contains(taken, c) {
			continue
		}
		taken = append(taken, c)
		r.takePackItem(contents[c])
	}
	r.logger.Debug("Opened pack", "pack", p, "contents", len(contents), "taken", taken)
	return true
}

func (r *Run) takePackItem(it ShopItem) {
	switch it.Type {
	case JokerItem:
		r.AddJoker(it.Joker)
	case PlayingCardItem:
		r.cards = append(r.cards, it.Card)
	case PlanetItem:
		r.ChangeHandLevel(it.Consumable.Planet, 1)
	default:
		if it.Consumable == NewSpectral(BlackHole) {
			r.levelAll()
			return
		}
		if len(r.consumables) < r.ConsumableSlots {
			r.consumables = append(r.consumables, it.Consumable)
		}
	}
}

func (r *Run) levelAll() {
	for _, h := range poker.HandTypes {
		r.ChangeHandLevel(h, 1)
	}
}

// useConsumable uses held consumable i. Only cards that need no target can
// be used.
func (r *Run) useConsumable(i int) bool {
	if i < 0 || i >= len(r.consumables) {
		return false
	}
	c := r.consumables[i]

	switch {
	case c.Kind == PlanetCard:
		r.ChangeHandLevel(c.Planet, 1)
	case c == NewSpectral(BlackHole):
		r.levelAll()
	case c == NewTarot(TheHermit):
		r.Money += min(max(r.Money, 0), 20)
	default:
		return false
	}
	r.consumables = slices.Delete(r.consumables, i, i+1)
	r.logger.Debug("Used consumable", "consumable", c)
	return true
}
