package bot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/lox/jokerforbots/internal/game"
)

// ErrInvalidStep is returned when a script step cannot be parsed.
var ErrInvalidStep = errors.New("invalid script step")

// Script is a recorded sequence of decisions, one step per string.
//
// Shop steps: "buy N", "sell N", "redeem N", "open N [PICK...]", "use N",
// "reroll", "exit". Selection steps: "play", "skip". Blind steps:
// "select N [N...]", "sell N", "play", "discard", "abort".
type Script struct {
	Shop      []string
	Selection []string
	Blind     []string
}

// ScriptBot replays a Script. Each visit consumes steps up to and including
// the one that ends the visit: "exit" in the shop, "play", "discard" or
// "abort" in a blind. Once a section runs out the fallback decides.
type ScriptBot struct {
	shop      []game.ShopAction
	selection []game.BlindSelectionAction
	blind     []game.BlindAction

	fallback game.Controller
	logger   *log.Logger
}

// NewScriptBot parses script up front so that a bad step is reported before
// any run starts. A nil fallback means an EagerBot.
func NewScriptBot(script Script, fallback game.Controller, logger *log.Logger) (*ScriptBot, error) {
	if fallback == nil {
		fallback = NewEagerBot(logger)
	}
	s := &ScriptBot{fallback: fallback, logger: logger.WithPrefix("script")}

	for i, step := range script.Shop {
		a, err := ParseShopStep(step)
		if err != nil {
			return nil, fmt.Errorf("shop step %d: %w", i, err)
		}
		s.shop = append(s.shop, a)
	}
	for i, step := range script.Selection {
		a, err := ParseSelectionStep(step)
		if err != nil {
			return nil, fmt.Errorf("selection step %d: %w", i, err)
		}
		s.selection = append(s.selection, a)
	}
	for i, step := range script.Blind {
		a, err := ParseBlindStep(step)
		if err != nil {
			return nil, fmt.Errorf("blind step %d: %w", i, err)
		}
		s.blind = append(s.blind, a...)
	}
	return s, nil
}

// Remaining is the number of parsed actions not yet replayed.
func (s *ScriptBot) Remaining() int {
	return len(s.shop) + len(s.selection) + len(s.blind)
}

func (s *ScriptBot) Shop(run *game.Run) []game.ShopAction {
	if len(s.shop) == 0 {
		return s.fallback.Shop(run)
	}
	n := len(s.shop)
	for i, a := range s.shop {
		if a.Type == game.ShopExit {
			n = i + 1
			break
		}
	}
	batch := s.shop[:n]
	s.shop = s.shop[n:]
	s.logger.Debug("Replaying shop", "actions", len(batch), "remaining", len(s.shop))
	return batch
}

func (s *ScriptBot) BlindSelection(run *game.Run) game.BlindSelectionAction {
	if len(s.selection) == 0 {
		return s.fallback.BlindSelection(run)
	}
	a := s.selection[0]
	s.selection = s.selection[1:]
	return a
}

func (s *ScriptBot) Blind(blind *game.Blind, run *game.Run) []game.BlindAction {
	if len(s.blind) == 0 {
		return s.fallback.Blind(blind, run)
	}
	n := len(s.blind)
	for i, a := range s.blind {
		if a.Type == game.ActionPlay || a.Type == game.ActionDiscard || a.Type == game.ActionAbort {
			n = i + 1
			break
		}
	}
	batch := s.blind[:n]
	s.blind = s.blind[n:]
	s.logger.Debug("Replaying blind", "actions", len(batch), "remaining", len(s.blind))
	return batch
}

func (s *ScriptBot) CashOut(run *game.Run) game.CashOutAction {
	return s.fallback.CashOut(run)
}

// ParseShopStep parses a single shop step.
func ParseShopStep(step string) (game.ShopAction, error) {
	verb, args, err := splitStep(step)
	if err != nil {
		return game.ShopAction{}, err
	}

	switch verb {
	case "exit":
		return game.ExitShop(), noArgs(step, args)
	case "reroll":
		return game.Reroll(), noArgs(step, args)
	case "open":
		if len(args) == 0 {
			return game.ShopAction{}, fmt.Errorf("%w: %q needs a pack index", ErrInvalidStep, step)
		}
		return game.OpenPack(args[0], args[1:]...), nil
	}

	var ctor func(int) game.ShopAction
	switch verb {
	case "buy":
		ctor = game.Buy
	case "sell":
		ctor = game.Sell
	case "redeem":
		ctor = game.Redeem
	case "use":
		ctor = game.UseConsumable
	default:
		return game.ShopAction{}, fmt.Errorf("%w: unknown shop action %q", ErrInvalidStep, verb)
	}
	if len(args) != 1 {
		return game.ShopAction{}, fmt.Errorf("%w: %q takes one index", ErrInvalidStep, step)
	}
	return ctor(args[0]), nil
}

// ParseSelectionStep parses "play" or "skip".
func ParseSelectionStep(step string) (game.BlindSelectionAction, error) {
	switch strings.TrimSpace(step) {
	case "play":
		return game.PlayBlind, nil
	case "skip":
		return game.SkipBlind, nil
	default:
		return 0, fmt.Errorf("%w: unknown selection %q", ErrInvalidStep, step)
	}
}

// ParseBlindStep parses a single blind step. "select" expands to one action
// per index.
func ParseBlindStep(step string) ([]game.BlindAction, error) {
	verb, args, err := splitStep(step)
	if err != nil {
		return nil, err
	}

	switch verb {
	case "select":
		if len(args) == 0 {
			return nil, fmt.Errorf("%w: %q needs card indices", ErrInvalidStep, step)
		}
		out := make([]game.BlindAction, len(args))
		for i, idx := range args {
			out[i] = game.SelectCard(idx)
		}
		return out, nil
	case "sell":
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: %q takes one index", ErrInvalidStep, step)
		}
		return []game.BlindAction{game.SellJokerInBlind(args[0])}, nil
	case "play":
		return []game.BlindAction{game.Play()}, noArgs(step, args)
	case "discard":
		return []game.BlindAction{game.Discard()}, noArgs(step, args)
	case "abort":
		return []game.BlindAction{game.Abort()}, noArgs(step, args)
	default:
		return nil, fmt.Errorf("%w: unknown blind action %q", ErrInvalidStep, verb)
	}
}

func splitStep(step string) (string, []int, error) {
	fields := strings.Fields(strings.ToLower(step))
	if len(fields) == 0 {
		return "", nil, fmt.Errorf("%w: empty step", ErrInvalidStep)
	}
	args := make([]int, 0, len(fields)-1)
	for _, f := range fields[1:] {
		n, err := strconv.Atoi(f)
		if err != nil || n < 0 {
			return "", nil, fmt.Errorf("%w: %q is not an index in %q", ErrInvalidStep, f, step)
		}
		args = append(args, n)
	}
	return fields[0], args, nil
}

func noArgs(step string, args []int) error {
	if len(args) > 0 {
		return fmt.Errorf("%w: %q takes no arguments", ErrInvalidStep, step)
	}
	return nil
}
