package game

import (
	"github.com/lox/jokerforbots/internal/pool"
)

// Voucher is a permanent upgrade bought in the shop. Odd entries are the
// upgraded tier of the entry before them.
type Voucher int

const (
	Overstock Voucher = iota
	OverstockPlus
	ClearanceSale
	Liquidation
	Hone
	GlowUp
	RerollSurplus
	RerollGlut
	CrystalBall
	OmenGlobe
	Telescope
	Observatory
	Grabber
	NachoTong
	Wasteful
	Recyclomancy
	TarotMerchant
	TarotTycoon
	PlanetMerchant
	PlanetTycoon
	SeedMoney
	MoneyTree
	Blank
	Antimatter
	MagicTrick
	Illusion
	Hieroglyph
	Petroglyph
	DirectorsCut
	Retcon
	PaintBrush
	Palette
)

// VoucherCount is the number of vouchers.
const VoucherCount = 32

const voucherCost = 10

var voucherNames = [VoucherCount]string{
	"Overstock", "Overstock Plus", "Clearance Sale", "Liquidation", "Hone", "Glow Up",
	"Reroll Surplus", "Reroll Glut", "Crystal Ball", "Omen Globe", "Telescope", "Observatory",
	"Grabber", "Nacho Tong", "Wasteful", "Recyclomancy", "Tarot Merchant", "Tarot Tycoon",
	"Planet Merchant", "Planet Tycoon", "Seed Money", "Money Tree", "Blank", "Antimatter",
	"Magic Trick", "Illusion", "Hieroglyph", "Petroglyph", "Director's Cut", "Retcon",
	"Paint Brush", "Palette",
}

func (v Voucher) String() string { return voucherNames[v] }

// Requires returns the voucher that must be owned before v can appear, and
// false for base tier vouchers.
func (v Voucher) Requires() (Voucher, bool) {
	if v%2 == 0 {
		return 0, false
	}
	return v - 1, true
}

// HasVoucher reports whether v has been redeemed.
func (r *Run) HasVoucher(v Voucher) bool { return r.vouchers[v] }

func (r *Run) availableVouchers() []bool {
	available := make([]bool, VoucherCount)
	for v := range Voucher(VoucherCount) {
		prev, tiered := v.Requires()
		available[v] = !r.vouchers[v] &&
			(!tiered || r.vouchers[prev]) &&
			!containsVoucher(r.shop.Vouchers, v)
	}
	if !pool.Any(available) {
		available[Blank] = true
	}
	return available
}

func containsVoucher(list []Voucher, v Voucher) bool {
	for _, o := range list {
		if o == v {
			return true
		}
	}
	return false
}

// NextVoucher polls the voucher offered for the current ante.
func (r *Run) NextVoucher() Voucher {
	v := Voucher(pool.Poll(r.stream, r.availableVouchers(), keyf("Voucher%d", r.ante)))
	r.logger.Debug("Rolled voucher", "ante", r.ante, "voucher", v)
	return v
}

// redeem marks v owned and applies its permanent effect.
func (r *Run) redeem(v Voucher) {
	r.vouchers[v] = true
	s := r.shop

	switch v {
	case Overstock, OverstockPlus:
		s.Slots++
	case ClearanceSale:
		s.PriceMultiplier = 0.75
	case Liquidation:
		s.PriceMultiplier = 0.5
	case Hone:
		s.EditionRate = 2
	case GlowUp:
		s.EditionRate = 4
	case RerollSurplus, RerollGlut:
		s.RerollBase -= 2
	case CrystalBall:
		r.ConsumableSlots++
	case Grabber, NachoTong:
		r.Hands++
	case Wasteful, Recyclomancy:
		r.Discards++
	case TarotMerchant:
		s.weights[TarotItem] = 9.6
	case TarotTycoon:
		s.weights[TarotItem] = 32
	case PlanetMerchant:
		s.weights[PlanetItem] = 9.6
	case PlanetTycoon:
		s.weights[PlanetItem] = 32
	case SeedMoney:
		r.interestCap = 10
	case MoneyTree:
		r.interestCap = 20
	case Antimatter:
		r.JokerSlots++
	case MagicTrick:
		s.weights[PlayingCardItem] = 4
	case Hieroglyph:
		r.ante--
		r.Hands--
	case Petroglyph:
		r.ante--
		r.Discards--
	case PaintBrush, Palette:
		r.HandSize++
	}
	r.logger.Debug("Redeemed voucher", "voucher", v)
}
