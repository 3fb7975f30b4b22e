package bot

import (
	"github.com/charmbracelet/log"
	"github.com/lox/jokerforbots/internal/game"
)

// EagerBot never shops, never skips and always plays the first five held
// cards.
type EagerBot struct {
	logger *log.Logger
}

// NewEagerBot creates a new EagerBot instance
func NewEagerBot(logger *log.Logger) *EagerBot {
	return &EagerBot{logger: logger}
}

func (e *EagerBot) Shop(*game.Run) []game.ShopAction {
	return []game.ShopAction{game.ExitShop()}
}

func (e *EagerBot) BlindSelection(*game.Run) game.BlindSelectionAction {
	return game.PlayBlind
}

func (e *EagerBot) Blind(blind *game.Blind, _ *game.Run) []game.BlindAction {
	n := min(len(blind.Held()), game.MaxHandCards)
	if n == 0 {
		return []game.BlindAction{game.Abort()}
	}
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	return selectThen(idx, game.Play())
}

func (e *EagerBot) CashOut(*game.Run) game.CashOutAction {
	return game.ReturnToShop
}
