package game

import (
	"io"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/lox/jokerforbots/internal/seeding"
	"github.com/lox/jokerforbots/poker"
)

// State is where the run currently waits for the controller.
type State int

const (
	StateShop State = iota
	StateBlindSelection
	StateBlind
	StateCashOut
)

func (s State) String() string {
	return [...]string{"shop", "blind_selection", "blind", "cash_out"}[s]
}

// Outcome is how a run ended.
type Outcome int

const (
	Running Outcome = iota
	Won
	Lost
	Aborted
)

func (o Outcome) String() string {
	return [...]string{"running", "won", "lost", "aborted"}[o]
}

// RunConfig holds the starting resources of a run. Zero values take the
// defaults of DefaultRunConfig unless Exact is set.
type RunConfig struct {
	Seed  string
	Stake Stake
	// Exact keeps zero resources as given, e.g. a run with no discards.
	Exact bool

	Hands           int
	Discards        int
	HandSize        int
	Money           int
	JokerSlots      int
	ConsumableSlots int
	WinAnte         int

	// Cards is the starting deck; nil means poker.DefaultDeck.
	Cards []poker.Card
	// Jokers are owned from the start.
	Jokers []*Joker

	Logger *log.Logger
}

// DefaultRunConfig returns the standard starting resources with a random seed.
func DefaultRunConfig() RunConfig {
	return RunConfig{
		Seed:            seeding.RandomSeed(),
		Stake:           White,
		Hands:           4,
		Discards:        3,
		HandSize:        8,
		Money:           4,
		JokerSlots:      5,
		ConsumableSlots: 5,
		WinAnte:         8,
	}
}

func (c RunConfig) withDefaults() RunConfig {
	d := DefaultRunConfig()
	if c.Seed == "" {
		c.Seed = d.Seed
	}
	if c.Cards == nil {
		c.Cards = poker.DefaultDeck()
	}
	if c.Logger == nil {
		c.Logger = log.New(io.Discard)
	}
	if c.Exact {
		return c
	}
	if c.Hands == 0 {
		c.Hands = d.Hands
	}
	if c.Discards == 0 {
		c.Discards = c.Stake.Discards()
	}
	if c.HandSize == 0 {
		c.HandSize = d.HandSize
	}
	if c.Money == 0 {
		c.Money = d.Money
	}
	if c.JokerSlots == 0 {
		c.JokerSlots = d.JokerSlots
	}
	if c.ConsumableSlots == 0 {
		c.ConsumableSlots = d.ConsumableSlots
	}
	if c.WinAnte == 0 {
		c.WinAnte = d.WinAnte
	}
	return c
}

// Run is the whole mutable state of one run. It is not safe for concurrent
// use.
type Run struct {
	stream *seeding.Stream
	logger *log.Logger

	stake   Stake
	ante    int
	winAnte int
	state   State
	tier    BlindTier
	blind   *Blind
	last    *Blind
	outcome Outcome

	Money           int
	HandSize        int
	Hands           int
	Discards        int
	JokerSlots      int
	ConsumableSlots int

	cards       []poker.Card
	jokers      []*Joker
	consumables []Consumable
	vouchers    [VoucherCount]bool
	tags        []Tag
	nextID      uint64

	levels         [poker.HandTypeCount]int
	timesPlayed    [poker.HandTypeCount]int
	planetUnlocked [poker.HandTypeCount]bool
	handsPlayed    int

	bosses   map[int]Boss
	bossUses [bossCount]int
	skipTags map[int][2]Tag

	shop *Shop

	interestCap    int
	juggle         int
	investments    int
	blindsCleared  int
	blindsSkipped  int
	unusedDiscards int
	lastCashOut    CashOut
}

// NewRun creates a run waiting in its first shop. The ante 1 boss is rolled
// up front.
func NewRun(cfg RunConfig) *Run {
	cfg = cfg.withDefaults()

	stream := seeding.New(cfg.Seed)
	stream.SetLogger(cfg.Logger)

	r := &Run{
		stream:          stream,
		logger:          cfg.Logger.With("seed", cfg.Seed),
		stake:           cfg.Stake,
		ante:            1,
		winAnte:         cfg.WinAnte,
		Money:           cfg.Money,
		HandSize:        cfg.HandSize,
		Hands:           cfg.Hands,
		Discards:        cfg.Discards,
		JokerSlots:      cfg.JokerSlots,
		ConsumableSlots: cfg.ConsumableSlots,
		cards:           slices.Clone(cfg.Cards),
		bosses:          make(map[int]Boss),
		skipTags:        make(map[int][2]Tag),
		shop:            newShop(),
		interestCap:     5,
	}
	for i := range r.levels {
		r.levels[i] = 1
	}
	for _, h := range poker.HandTypes {
		r.planetUnlocked[h] = h < poker.FiveOfAKind
	}
	for _, j := range cfg.Jokers {
		r.AddJoker(j)
	}

	r.Boss()
	r.restockShop()
	r.logger.Debug("Created run", "stake", r.stake, "boss", r.Boss())
	return r
}

// Seed returns the seed string the run was created from.
func (r *Run) Seed() string { return r.stream.Seed() }

// Stream exposes the run's random stream, for snapshots.
func (r *Run) Stream() *seeding.Stream { return r.stream }

func (r *Run) Stake() Stake { return r.stake }
func (r *Run) Ante() int { return r.ante }
func (r *Run) WinAnte() int { return r.winAnte }
func (r *Run) State() State { return r.state }
func (r *Run) Outcome() Outcome { return r.outcome }
func (r *Run) Tier() BlindTier { return r.tier }
func (r *Run) Shop() *Shop { return r.shop }
func (r *Run) HandsPlayed() int { return r.handsPlayed }
func (r *Run) LastCashOut() CashOut { return r.lastCashOut }

// Blind returns the blind in progress, or nil outside StateBlind.
func (r *Run) Blind() *Blind { return r.blind }

// Cards returns the run's cards. Callers must not modify the slice.
func (r *Run) Cards() []poker.Card { return r.cards }

// Jokers returns the owned jokers in order. Callers must not modify the slice.
func (r *Run) Jokers() []*Joker { return r.jokers }

// Consumables returns the held consumables.
func (r *Run) Consumables() []Consumable { return r.consumables }

// Level returns the level of hand type h.
func (r *Run) Level(h poker.HandType) int { return r.levels[h] }

// TimesPlayed returns how often hand type h has been played this run.
func (r *Run) TimesPlayed(h poker.HandType) int { return r.timesPlayed[h] }

// PlanetUnlocked reports whether h's planet can appear in celestial packs.
func (r *Run) PlanetUnlocked(h poker.HandType) bool { return r.planetUnlocked[h] }

// ChangeHandLevel moves the level of h by amount, never below 1.
func (r *Run) ChangeHandLevel(h poker.HandType, amount int) {
	r.levels[h] = max(r.levels[h]+amount, 1)
	r.logger.Debug("Changed hand level", "hand", h, "level", r.levels[h])
}

// IsMostPlayedHand reports whether no other hand type has been played more
// often than h.
func (r *Run) IsMostPlayedHand(h poker.HandType) bool {
	for other, n := range r.timesPlayed {
		if poker.HandType(other) != h && n > r.timesPlayed[h] {
			return false
		}
	}
	return true
}

// mostPlayedHand returns the most played hand type, the weakest on ties.
func (r *Run) mostPlayedHand() poker.HandType {
	best := poker.HighCard
	for _, h := range poker.HandTypes {
		if r.timesPlayed[h] > r.timesPlayed[best] {
			best = h
		}
	}
	return best
}

// ChicotCount is the number of owned Chicot jokers.
func (r *Run) ChicotCount() int { return r.countJokers(Chicot) }

func (r *Run) countJokers(t JokerType) int {
	n := 0
	for _, j := range r.jokers {
		if j.kind == t {
			n++
		}
	}
	return n
}

func (r *Run) showman() bool { return r.countJokers(Showman) > 0 }

// AddJoker takes ownership of j and gives it an ID. It returns false when
// every slot is taken; negative jokers bring their own slot.
func (r *Run) AddJoker(j *Joker) bool {
	if j.id != 0 {
		panic("game: joker " + j.String() + " is already owned")
	}
	if len(r.jokers) >= r.JokerSlots && j.Edition != EditionNegative {
		return false
	}
	r.nextID++
	j.id = r.nextID
	r.jokers = append(r.jokers, j)
	j.onAdded(r)
	r.logger.Debug("Added joker", "joker", j, "id", j.id)
	return true
}

// RemoveJoker drops j from the run. It is a no-op when j is not owned.
func (r *Run) RemoveJoker(j *Joker) {
	i := slices.Index(r.jokers, j)
	if i < 0 {
		return
	}
	r.jokers = slices.Delete(r.jokers, i, i+1)
	j.onRemoved(r)
	j.id = 0
}

// SellJoker sells the joker at position i. Eternal jokers cannot be sold.
func (r *Run) SellJoker(i int) bool {
	if i < 0 || i >= len(r.jokers) || r.jokers[i].Stickers.Eternal {
		return false
	}
	j := r.jokers[i]
	r.Money += j.SellValue
	r.RemoveJoker(j)
	if r.blind != nil && r.blind.Boss == VerdantLeaf {
		r.blind.leaf().sold = true
	}
	r.logger.Debug("Sold joker", "joker", j, "money", r.Money)
	return true
}

func (r *Run) jokerByID(id uint64) *Joker {
	for _, j := range r.jokers {
		if j.id == id {
			return j
		}
	}
	return nil
}

// card resolves run card i. An index outside the deck is a broken invariant.
func (r *Run) card(i int) poker.Card {
	if i < 0 || i >= len(r.cards) {
		panic("game: card index out of range")
	}
	return r.cards[i]
}

func (r *Run) resolve(idx []int) []poker.Card {
	out := make([]poker.Card, len(idx))
	for k, i := range idx {
		out[k] = r.card(i)
	}
	return out
}

func (r *Run) finish(o Outcome) {
	r.outcome = o
	if r.blind != nil {
		r.last, r.blind = r.blind, nil
	}
	r.logger.Info("Run finished", "outcome", o, "ante", r.ante, "blinds", r.blindsCleared)
}
