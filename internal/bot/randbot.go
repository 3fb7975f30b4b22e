package bot

import (
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/lox/jokerforbots/internal/game"
)

// RandBot makes uniform random choices. Its generator is private to the bot
// so the run's channels see the same draws whatever the bot decides.
type RandBot struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewRandBot creates a new RandBot instance
func NewRandBot(rng *rand.Rand, logger *log.Logger) *RandBot {
	return &RandBot{rng: rng, logger: logger.WithPrefix("randbot")}
}

func (r *RandBot) Shop(run *game.Run) []game.ShopAction {
	items := run.Shop().Items
	if len(items) == 0 || r.rng.IntN(2) == 0 {
		return []game.ShopAction{game.ExitShop()}
	}
	i := r.rng.IntN(len(items))
	it := items[i]
	if it.Type != game.JokerItem || it.Price > run.Money || len(run.Jokers()) >= run.JokerSlots {
		return []game.ShopAction{game.ExitShop()}
	}
	return []game.ShopAction{game.Buy(i), game.ExitShop()}
}

func (r *RandBot) BlindSelection(run *game.Run) game.BlindSelectionAction {
	if run.Tier() != game.BossBlind && r.rng.IntN(4) == 0 {
		return game.SkipBlind
	}
	return game.PlayBlind
}

func (r *RandBot) Blind(blind *game.Blind, _ *game.Run) []game.BlindAction {
	held := len(blind.Held())
	if held == 0 {
		return []game.BlindAction{game.Abort()}
	}
	n := 1 + r.rng.IntN(min(held, game.MaxHandCards))
	pick := r.rng.Perm(held)[:n]

	last := game.Play()
	if blind.Discards > 0 && r.rng.IntN(3) == 0 {
		last = game.Discard()
	}
	r.logger.Debug("Random choice", "cards", pick, "action", last.Type)
	return selectThen(pick, last)
}

func (r *RandBot) CashOut(*game.Run) game.CashOutAction {
	return game.ReturnToShop
}
