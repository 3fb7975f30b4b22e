package game

import (
	"github.com/lox/jokerforbots/internal/pool"
)

// Tag is the reward for skipping a small or big blind.
type Tag int

const (
	UncommonTag Tag = iota
	RareTag
	NegativeTag
	FoilTag
	HolographicTag
	PolychromeTag
	InvestmentTag
	VoucherTag
	BossTag
	StandardTag
	CharmTag
	MeteorTag
	BuffoonTag
	HandyTag
	GarbageTag
	EtherealTag
	CouponTag
	DoubleTag
	JuggleTag
	D6Tag
	TopUpTag
	SpeedTag
	OrbitalTag
	EconomyTag
)

// TagCount is the number of tags.
const TagCount = 24

func (t Tag) String() string {
	return [...]string{
		"Uncommon", "Rare", "Negative", "Foil", "Holographic", "Polychrome", "Investment",
		"Voucher", "Boss", "Standard", "Charm", "Meteor", "Buffoon", "Handy", "Garbage",
		"Ethereal", "Coupon", "Double", "Juggle", "D6", "Top-up", "Speed", "Orbital", "Economy",
	}[t] + " Tag"
}

// firstAnteTags can appear from ante 1; everything else needs ante 2.
var firstAnteTags = map[Tag]bool{
	BossTag:     true, CharmTag: true, CouponTag: true, D6Tag: true, DoubleTag: true,
	EconomyTag:  true, FoilTag: true, HolographicTag: true, InvestmentTag: true,
	JuggleTag:   true, PolychromeTag: true, RareTag: true, SpeedTag: true,
	UncommonTag: true, VoucherTag: true,
}

// NextTag polls a random tag for the current ante.
func (r *Run) NextTag() Tag {
	available := make([]bool, TagCount)
	for t := range Tag(TagCount) {
		available[t] = firstAnteTags[t] || r.ante >= 2
	}
	return Tag(pool.Poll(r.stream, available, keyf("Tag%d", r.ante)))
}

// SkipTags returns the tags offered for skipping the small and big blind of
// the current ante, rolling them the first time they are needed.
func (r *Run) SkipTags() [2]Tag {
	if tags, ok := r.skipTags[r.ante]; ok {
		return tags
	}
	tags := [2]Tag{r.NextTag(), r.NextTag()}
	r.skipTags[r.ante] = tags
	r.logger.Debug("Rolled skip tags", "ante", r.ante, "small", tags[0], "big", tags[1])
	return tags
}

// Tags returns the tags collected so far.
func (r *Run) Tags() []Tag { return r.tags }

// applyTag grants t. Tags without an immediate effect are only recorded.
func (r *Run) applyTag(t Tag) {
	r.tags = append(r.tags, t)

	switch t {
	case EconomyTag:
		r.Money += min(max(r.Money, 0), 40)
	case SpeedTag:
		r.Money += 5 * r.blindsSkipped
	case HandyTag:
		r.Money += r.handsPlayed
	case GarbageTag:
		r.Money += r.unusedDiscards
	case JuggleTag:
		r.juggle += 3
	case InvestmentTag:
		r.investments++
	case TopUpTag:
		for range 2 {
			if len(r.jokers) >= r.JokerSlots {
				break
			}
			r.AddJoker(r.rollJoker(jokerRoll{origin: "top", rarity: Common, fixedRarity: true}))
		}
	}
	r.logger.Debug("Granted tag", "tag", t, "money", r.Money)
}
