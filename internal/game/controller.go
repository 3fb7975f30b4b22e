package game

// Controller decides what to do whenever the run waits for input. Every call
// returns a finite batch that is applied in order before the run moves on.
type Controller interface {
	Shop(run *Run) []ShopAction
	BlindSelection(run *Run) BlindSelectionAction
	Blind(blind *Blind, run *Run) []BlindAction
	CashOut(run *Run) CashOutAction
}

// BlindActionType is an action taken while a blind is in progress.
type BlindActionType int

const (
	ActionSelect BlindActionType = iota
	ActionPlay
	ActionDiscard
	ActionAbort
	ActionSellJoker
)

func (a BlindActionType) String() string {
	return [...]string{"select", "play", "discard", "abort", "sell"}[a]
}

// BlindAction is one step inside a blind. Index is the held card for select
// and the joker position for sell.
type BlindAction struct {
	Type  BlindActionType
	Index int
}

func SelectCard(i int) BlindAction { return BlindAction{Type: ActionSelect, Index: i} }
func Play() BlindAction { return BlindAction{Type: ActionPlay} }
func Discard() BlindAction { return BlindAction{Type: ActionDiscard} }
func Abort() BlindAction { return BlindAction{Type: ActionAbort} }
func SellJokerInBlind(i int) BlindAction { return BlindAction{Type: ActionSellJoker, Index: i} }

// ShopActionType is an action taken in the shop.
type ShopActionType int

const (
	ShopExit ShopActionType = iota
	ShopReroll
	ShopBuy
	ShopSell
	ShopRedeem
	ShopOpenPack
	ShopUseConsumable
)

func (a ShopActionType) String() string {
	return [...]string{"exit", "reroll", "buy", "sell", "redeem", "open", "use"}[a]
}

// ShopAction is one step in the shop. Index addresses the item, joker,
// voucher, pack or consumable; Choices are the pack contents to keep.
type ShopAction struct {
	Type    ShopActionType
	Index   int
	Choices []int
}

func ExitShop() ShopAction { return ShopAction{Type: ShopExit} }
func Reroll() ShopAction { return ShopAction{Type: ShopReroll} }
func Buy(i int) ShopAction { return ShopAction{Type: ShopBuy, Index: i} }
func Sell(i int) ShopAction { return ShopAction{Type: ShopSell, Index: i} }
func Redeem(i int) ShopAction { return ShopAction{Type: ShopRedeem, Index: i} }
func UseConsumable(i int) ShopAction { return ShopAction{Type: ShopUseConsumable, Index: i} }

// OpenPack buys pack i and keeps the contents at choices.
func OpenPack(i int, choices ...int) ShopAction {
	return ShopAction{Type: ShopOpenPack, Index: i, Choices: choices}
}

// BlindSelectionAction plays or skips the upcoming blind.
type BlindSelectionAction int

const (
	PlayBlind BlindSelectionAction = iota
	SkipBlind
)

func (a BlindSelectionAction) String() string {
	return [...]string{"play", "skip"}[a]
}

// CashOutAction leaves the cash out screen.
type CashOutAction int

const (
	ReturnToShop CashOutAction = iota
)
