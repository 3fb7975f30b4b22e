package bot

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/lox/jokerforbots/internal/game"
	"github.com/lox/jokerforbots/internal/randutil"
)

// ErrUnknownBot is returned by New for an unrecognised kind.
var ErrUnknownBot = errors.New("unknown bot")

// Kinds lists the names New accepts.
var Kinds = []string{"greedy", "eager", "rand"}

// New creates the controller named by kind. seed only affects the rand bot.
func New(kind string, seed int64, logger *log.Logger) (game.Controller, error) {
	switch kind {
	case "greedy", "":
		return NewBot(logger), nil
	case "eager":
		return NewEagerBot(logger), nil
	case "rand":
		return NewRandBot(randutil.NewPCG(seed), logger), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBot, kind)
	}
}
