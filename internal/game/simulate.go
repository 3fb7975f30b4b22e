package game

import (
	"context"
	"fmt"
	"slices"

	"github.com/lox/jokerforbots/poker"
)

// Result summarises a finished (or interrupted) run.
type Result struct {
	Seed          string
	Outcome       Outcome
	Ante          int
	Tier          BlindTier
	Boss          Boss
	BlindsCleared int
	Score         float64
	Requirement   float64
	Money         int
	HandsPlayed   int
}

// CashOut itemises the money paid after a blind.
type CashOut struct {
	Reward     int
	Hands      int
	Interest   int
	Gold       int
	Investment int
}

// Total is the sum paid out.
func (c CashOut) Total() int {
	return c.Reward + c.Hands + c.Interest + c.Gold + c.Investment
}

// Result reports the run's current standing.
func (r *Run) Result() Result {
	res := Result{
		Seed:          r.Seed(),
		Outcome:       r.outcome,
		Ante:          r.ante,
		Tier:          r.tier,
		Boss:          r.Boss(),
		BlindsCleared: r.blindsCleared,
		Money:         r.Money,
		HandsPlayed:   r.handsPlayed,
	}
	b := r.blind
	if b == nil {
		b = r.last
	}
	if b != nil {
		res.Score, res.Requirement = b.Score, b.Requirement
	}
	return res
}

// Simulate drives the run with ctrl until it ends or ctx is cancelled, in
// which case the run is aborted and ctx's error returned.
func (r *Run) Simulate(ctx context.Context, ctrl Controller) (Result, error) {
	for r.outcome == Running {
		if err := ctx.Err(); err != nil {
			r.finish(Aborted)
			return r.Result(), fmt.Errorf("simulate %s: %w", r.Seed(), err)
		}
		r.Step(ctrl)
	}
	return r.Result(), nil
}

// Step asks ctrl for the input the current state needs and applies it.
func (r *Run) Step(ctrl Controller) {
	switch r.state {
	case StateShop:
		for _, a := range ctrl.Shop(r) {
			r.ApplyShopAction(a)
			if r.state != StateShop {
				break
			}
		}
	case StateBlindSelection:
		r.SelectBlind(ctrl.BlindSelection(r))
	case StateBlind:
		for _, a := range ctrl.Blind(r.blind, r) {
			r.ApplyBlindAction(a)
			if r.state != StateBlind || r.outcome != Running {
				break
			}
		}
	case StateCashOut:
		r.LeaveCashOut(ctrl.CashOut(r))
	}
}

// ApplyShopAction applies a in the shop and reports whether it took effect.
func (r *Run) ApplyShopAction(a ShopAction) bool {
	if r.state != StateShop || r.outcome != Running {
		return false
	}

	ok := false
	switch a.Type {
	case ShopExit:
		r.state = StateBlindSelection
		r.SkipTags()
		ok = true
	case ShopReroll:
		ok = r.reroll()
	case ShopBuy:
		ok = r.buy(a.Index)
	case ShopSell:
		ok = r.SellJoker(a.Index)
	case ShopRedeem:
		ok = r.redeemOffer(a.Index)
	case ShopOpenPack:
		ok = r.openPack(a.Index, a.Choices)
	case ShopUseConsumable:
		ok = r.useConsumable(a.Index)
	}
	if !ok {
		r.logger.Debug("Ignored shop action", "action", a.Type, "index", a.Index, "money", r.Money)
	}
	return ok
}

// SelectBlind plays or skips the upcoming blind. The boss blind cannot be
// skipped.
func (r *Run) SelectBlind(a BlindSelectionAction) {
	if r.state != StateBlindSelection || r.outcome != Running {
		return
	}
	if a == SkipBlind {
		r.skipBlind()
		return
	}
	r.enterBlind()
}

func (r *Run) skipBlind() {
	if r.tier == BossBlind {
		r.logger.Debug("Ignored skip of boss blind")
		return
	}
	tag := r.SkipTags()[r.tier]
	r.blindsSkipped++
	r.applyTag(tag)
	r.tier++
}

func (r *Run) enterBlind() {
	b := r.newBlind(r.tier)
	r.blind = b
	r.state = StateBlind
	b.draw(b.HandSize)
	r.dispatch(&Event{Type: EventBlindEntered, Run: r, Blind: b})
	r.logger.Debug("Entered blind", "ante", r.ante, "tier", r.tier, "boss", b.Boss,
		"requirement", b.Requirement, "hands", b.Hands, "discards", b.Discards)
	if b.Hands <= 0 {
		r.finish(Lost)
	}
}

// ApplyBlindAction applies a to the blind in progress.
func (r *Run) ApplyBlindAction(a BlindAction) {
	if r.state != StateBlind || r.outcome != Running {
		return
	}
	switch a.Type {
	case ActionSelect:
		r.selectCard(a.Index)
	case ActionPlay:
		r.play()
	case ActionDiscard:
		r.discard()
	case ActionAbort:
		r.finish(Aborted)
	case ActionSellJoker:
		r.SellJoker(a.Index)
	}
}

// clearBlind pays out a won blind and moves to the next one. Beating the
// boss of the winning ante wins the run.
func (r *Run) clearBlind() {
	b := r.blind
	r.blindsCleared++
	if b.Tier == BossBlind && r.ante >= r.winAnte {
		r.finish(Won)
		return
	}

	co := CashOut{
		Reward:   b.reward(r.stake),
		Hands:    b.Hands,
		Interest: min(max(r.Money, 0)/5, r.interestCap),
	}
	for _, i := range b.held {
		if r.cards[i].Enhancement == poker.Gold {
			co.Gold += 3
		}
	}
	r.unusedDiscards += b.Discards

	r.dispatch(&Event{Type: EventRoundEnded, Run: r, Blind: b})
	r.removeCards(b.destroyed)

	if b.Tier == BossBlind && r.investments > 0 {
		co.Investment = 25 * r.investments
		r.investments = 0
	}
	r.Money += co.Total()
	r.lastCashOut = co
	r.logger.Debug("Cashed out", "reward", co.Reward, "hands", co.Hands, "interest", co.Interest, "total", co.Total(), "money", r.Money)

	r.last, r.blind = b, nil
	r.state = StateCashOut
	r.advanceTier()
}

func (r *Run) advanceTier() {
	if r.tier < BossBlind {
		r.tier++
		return
	}
	r.tier = SmallBlind
	r.ante++
	r.logger.Info("Ante cleared", "ante", r.ante-1, "money", r.Money, "next_boss", r.Boss())
}

func (r *Run) removeCards(idx []int) {
	sorted := slices.Clone(idx)
	slices.Sort(sorted)
	for _, i := range slices.Backward(sorted) {
		r.cards = slices.Delete(r.cards, i, i+1)
	}
}

// LeaveCashOut returns to a freshly stocked shop.
func (r *Run) LeaveCashOut(CashOutAction) {
	if r.state != StateCashOut || r.outcome != Running {
		return
	}
	r.state = StateShop
	r.restockShop()
}
