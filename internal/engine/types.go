// Package engine implements the hand state machine: betting rounds, the
// action validator, turn-order resolution, pot construction and
// distribution, and the event stream a host (GUI or headless runner)
// observes. It is the core described by spec.md §3-§8: the engine owns
// authoritative player storage and only ever hands out read-only snapshots
// (CurrentHandContext) to strategies, breaking the cyclic player/hand
// reference the original source carried.
package engine

import "github.com/Marcennaji/HoldemCore-sub002/internal/cards"

// Street is the hand's phase. PostRiver is terminal.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
	PostRiver
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	case PostRiver:
		return "postriver"
	default:
		return "unknown"
	}
}

// Position is the seat's tagged role relative to the dealer button.
type Position int

const (
	PositionSmallBlind Position = iota
	PositionBigBlind
	PositionUnderTheGun
	PositionUnderTheGunPlus1
	PositionUnderTheGunPlus2
	PositionMiddle
	PositionMiddlePlus1
	PositionLate
	PositionCutoff
	PositionButton
	PositionButtonSmallBlind
)

func (p Position) String() string {
	switch p {
	case PositionSmallBlind:
		return "SB"
	case PositionBigBlind:
		return "BB"
	case PositionUnderTheGun:
		return "UTG"
	case PositionUnderTheGunPlus1:
		return "UTG+1"
	case PositionUnderTheGunPlus2:
		return "UTG+2"
	case PositionMiddle:
		return "MP"
	case PositionMiddlePlus1:
		return "MP+1"
	case PositionLate:
		return "LP"
	case PositionCutoff:
		return "CO"
	case PositionButton:
		return "BTN"
	case PositionButtonSmallBlind:
		return "BTN/SB"
	default:
		return "?"
	}
}

// ActionKind enumerates every legal or blind-posting action a player can
// take. None is the round-entry default.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionPostSmallBlind
	ActionPostBigBlind
	ActionFold
	ActionCheck
	ActionCall
	ActionBet
	ActionRaise
	ActionAllIn
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionPostSmallBlind:
		return "post_small_blind"
	case ActionPostBigBlind:
		return "post_big_blind"
	case ActionFold:
		return "fold"
	case ActionCheck:
		return "check"
	case ActionCall:
		return "call"
	case ActionBet:
		return "bet"
	case ActionRaise:
		return "raise"
	case ActionAllIn:
		return "all_in"
	default:
		return "?"
	}
}

// PlayerAction is one logged action: amount is the total committed this
// step, not the delta, except for Check/Fold/None where it is always 0.
type PlayerAction struct {
	PlayerID int
	Kind     ActionKind
	Amount   int
}

// RoundAction is one entry of a BettingRoundHistory.
type RoundAction struct {
	PlayerID int
	Kind     ActionKind
}

// StreetActionLog is a single (kind, amount) entry in a player's per-street
// action log (spec §3 Player "per-hand actions").
type StreetActionLog struct {
	Kind   ActionKind
	Amount int
}

// TableSizeClass classifies a hand's seat count for statistics keying.
type TableSizeClass int

const (
	HeadsUp TableSizeClass = iota
	ShortHanded
	FullRing
)

// ClassifyTableSize buckets a seat count into its statistics class.
func ClassifyTableSize(n int) TableSizeClass {
	switch {
	case n == 2:
		return HeadsUp
	case n <= 6:
		return ShortHanded
	default:
		return FullRing
	}
}

// Player is the engine's authoritative seat record. It outlives individual
// hands (owned by the Session) and is borrowed by Hand for a hand's
// duration.
type Player struct {
	ID           int
	Name         string
	StrategyName string

	CashAtHandStart int
	Cash            int
	LastMoneyWon    int

	Position Position

	// Actions is indexed by Street (Preflop..River); PostRiver never logs
	// actions of its own.
	Actions [4][]StreetActionLog

	HoleCards  cards.Hand
	HandRank   uint32
	Folded     bool
	AllIn      bool
	BetInRound int // total committed in the current round
	LastAction ActionKind

	WentToShowdown    bool
	WonShowdown       bool
	WonWithoutShowdown bool
}

// TotalCommitted returns cash_at_hand_start - cash, the amount the player
// has put into the pot so far this hand.
func (p *Player) TotalCommitted() int {
	return p.CashAtHandStart - p.Cash
}

// InActingSet reports whether the player can still take voluntary actions.
func (p *Player) InActingSet() bool {
	return !p.Folded && !p.AllIn
}

// ResetForNewHand clears per-hand transient state, preparing the seat for
// the next hand while the underlying Player record (and its stack) persists.
func (p *Player) ResetForNewHand() {
	p.Actions = [4][]StreetActionLog{}
	p.HoleCards = 0
	p.HandRank = 0
	p.Folded = false
	p.AllIn = false
	p.BetInRound = 0
	p.LastAction = ActionNone
	p.LastMoneyWon = 0
	p.WentToShowdown = false
	p.WonShowdown = false
	p.WonWithoutShowdown = false
}

// RejectReason is the action validator's closed set of rejection reasons
// (spec §7); its String satisfies error so tests may match on the stable
// human-facing text.
type RejectReason int

const (
	ReasonNone RejectReason = iota
	ReasonOutOfTurn
	ReasonConsecutiveAction
	ReasonIllegalActionKind
	ReasonIllegalAmount
	ReasonInsufficientChips
	ReasonBelowMinimumRaise
	ReasonZeroCheckRequired
)

func (r RejectReason) Error() string {
	switch r {
	case ReasonOutOfTurn:
		return "out of turn"
	case ReasonConsecutiveAction:
		return "cannot act twice consecutively in one round"
	case ReasonIllegalActionKind:
		return "illegal action kind"
	case ReasonIllegalAmount:
		return "illegal amount"
	case ReasonInsufficientChips:
		return "insufficient chips"
	case ReasonBelowMinimumRaise:
		return "below minimum raise"
	case ReasonZeroCheckRequired:
		return "check requires a zero amount"
	default:
		return "unknown rejection"
	}
}
