package engine

// BettingRoundHistory is the append-only log of actions taken in one
// street, in the order they occurred.
type BettingRoundHistory struct {
	Street  Street
	Actions []RoundAction
}

// BettingTracker holds the per-round state the validator and turn-order
// resolver both consult. round_highest_set and last_raiser_id reset on
// every round entry (Preflop seeds the former to the big blind).
type BettingTracker struct {
	RoundHighestSet int
	LastRaiserID    int // -1 when unset
	// lastRaiserPreviousTotal is what the last raiser had committed in this
	// round immediately before the raise that set LastRaiserID; needed to
	// size the next minimum raise (spec §4.4).
	lastRaiserPreviousTotal int
	BigBlind                int
	History                 []BettingRoundHistory

	// RaiseCount and LimpCount track this round's preflop aggression shape
	// (CurrentHandContext.PreflopRaiseCount/LimpCount): how many raises have
	// occurred (0 = unopened, 1 = open-raise-only, 2 = 3-bet, ...) and how
	// many players have limped in.
	RaiseCount int
	LimpCount  int
}

// NewBettingTracker constructs a tracker for a hand with the given big
// blind; ResetForRound must still be called once Preflop starts.
func NewBettingTracker(bigBlind int) *BettingTracker {
	return &BettingTracker{BigBlind: bigBlind, LastRaiserID: -1}
}

// ResetForRound re-arms the tracker for a new street. Preflop seeds
// RoundHighestSet to the big blind (the BB's forced post); every other
// street starts at 0.
func (bt *BettingTracker) ResetForRound(street Street) {
	if street == Preflop {
		bt.RoundHighestSet = bt.BigBlind
	} else {
		bt.RoundHighestSet = 0
	}
	bt.LastRaiserID = -1
	bt.lastRaiserPreviousTotal = 0
	bt.RaiseCount = 0
	bt.LimpCount = 0
	bt.History = append(bt.History, BettingRoundHistory{Street: street})
}

func (bt *BettingTracker) currentHistory() *BettingRoundHistory {
	return &bt.History[len(bt.History)-1]
}

// RecordAction appends to the current round's history, and tallies a limp
// on a preflop Call that doesn't face a raise yet (RaiseCount == 0).
func (bt *BettingTracker) RecordAction(playerID int, kind ActionKind) {
	h := bt.currentHistory()
	h.Actions = append(h.Actions, RoundAction{PlayerID: playerID, Kind: kind})
	if kind == ActionCall && bt.RaiseCount == 0 {
		bt.LimpCount++
	}
}

// NoteRaise updates RoundHighestSet/LastRaiserID when a Bet/Raise/AllIn
// increases the round's highest committed amount, and counts the raise.
func (bt *BettingTracker) NoteRaise(playerID int, previousTotal, newTotal int) {
	if newTotal > bt.RoundHighestSet {
		bt.RoundHighestSet = newTotal
		bt.LastRaiserID = playerID
		bt.lastRaiserPreviousTotal = previousTotal
		bt.RaiseCount++
	}
}

// MinimumRaise computes the minimum *size* of the next raise (spec §4.4):
// the big blind if nobody has raised yet this round, otherwise the size of
// the last raise.
func (bt *BettingTracker) MinimumRaise() int {
	if bt.LastRaiserID == -1 {
		return bt.BigBlind
	}
	return bt.RoundHighestSet - bt.lastRaiserPreviousTotal
}

// LastNonBlindActor scans the current round's history from the tail,
// skipping blind posts, and returns the player_id of the first non-blind
// entry found, or -1 if none exists yet.
func (bt *BettingTracker) LastNonBlindActor() int {
	h := bt.currentHistory()
	for i := len(h.Actions) - 1; i >= 0; i-- {
		a := h.Actions[i]
		if a.Kind != ActionPostSmallBlind && a.Kind != ActionPostBigBlind {
			return a.PlayerID
		}
	}
	return -1
}

// LastActor returns the player_id of the most recent action of any kind in
// the current round, or -1 if the round has seen no actions.
func (bt *BettingTracker) LastActor() int {
	h := bt.currentHistory()
	if len(h.Actions) == 0 {
		return -1
	}
	return h.Actions[len(h.Actions)-1].PlayerID
}

// ValidateAction is the action validator of spec §4.5. It checks proposed,
// an action by p, against the current round state held in bt.
func ValidateAction(bt *BettingTracker, p *Player, proposed PlayerAction) RejectReason {
	if bt.LastActor() == p.ID {
		return ReasonConsecutiveAction
	}

	committed := p.BetInRound
	highest := bt.RoundHighestSet
	minRaise := bt.MinimumRaise()

	legal := func(kind ActionKind) bool {
		switch kind {
		case ActionFold:
			return p.Cash > 0 || committed < highest
		case ActionCheck:
			return committed == highest
		case ActionCall:
			return committed < highest && p.Cash > 0
		case ActionBet:
			return highest == 0 && p.Cash > 0
		case ActionRaise:
			return highest > 0 && p.Cash >= (highest+minRaise-committed)
		case ActionAllIn:
			return p.Cash > 0
		default:
			return false
		}
	}

	if !legal(proposed.Kind) {
		switch proposed.Kind {
		case ActionCheck:
			return ReasonZeroCheckRequired
		case ActionRaise:
			return ReasonBelowMinimumRaise
		case ActionBet, ActionCall, ActionAllIn:
			return ReasonInsufficientChips
		default:
			return ReasonIllegalActionKind
		}
	}

	switch proposed.Kind {
	case ActionCheck:
		if proposed.Amount != 0 {
			return ReasonIllegalAmount
		}
	case ActionBet:
		if proposed.Amount <= 0 || proposed.Amount > p.Cash {
			return ReasonIllegalAmount
		}
	case ActionRaise:
		if proposed.Amount <= highest || proposed.Amount < highest+minRaise {
			return ReasonBelowMinimumRaise
		}
		if proposed.Amount-committed > p.Cash {
			return ReasonInsufficientChips
		}
	}

	return ReasonNone
}

// LegalActionKinds lists the action kinds p may currently take, using the
// same predicates ValidateAction enforces.
func LegalActionKinds(bt *BettingTracker, p *Player) []ActionKind {
	committed := p.BetInRound
	highest := bt.RoundHighestSet
	minRaise := bt.MinimumRaise()

	var out []ActionKind
	add := func(k ActionKind, ok bool) {
		if ok {
			out = append(out, k)
		}
	}
	add(ActionFold, p.Cash > 0 || committed < highest)
	add(ActionCheck, committed == highest)
	add(ActionCall, committed < highest && p.Cash > 0)
	add(ActionBet, highest == 0 && p.Cash > 0)
	add(ActionRaise, highest > 0 && p.Cash >= (highest+minRaise-committed))
	add(ActionAllIn, p.Cash > 0)
	return out
}

// IsRoundComplete implements spec §4.6: every player still in the acting
// list must have both acted at least once this round (beyond blinds) and
// matched RoundHighestSet. Because "acted" excludes blind posts, the big
// blind's preflop option falls out naturally: a lone blind post never
// satisfies allActed on its own. An empty acting list completes the round;
// a lone acting player completes it once they have matched RoundHighestSet.
func IsRoundComplete(bt *BettingTracker, players []*Player) bool {
	acting := make([]*Player, 0, len(players))
	for _, p := range players {
		if p.InActingSet() {
			acting = append(acting, p)
		}
	}

	if len(acting) == 0 {
		return true
	}
	if len(acting) == 1 {
		return acting[0].BetInRound >= bt.RoundHighestSet
	}

	h := bt.currentHistory()
	acted := map[int]bool{}
	for _, a := range h.Actions {
		if a.Kind != ActionPostSmallBlind && a.Kind != ActionPostBigBlind {
			acted[a.PlayerID] = true
		}
	}

	allMatched := true
	allActed := true
	for _, p := range acting {
		if p.BetInRound != bt.RoundHighestSet {
			allMatched = false
		}
		if !acted[p.ID] {
			allActed = false
		}
	}

	return allMatched && allActed
}
