package engine

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/Marcennaji/HoldemCore-sub002/internal/cards"
	"github.com/Marcennaji/HoldemCore-sub002/internal/oracle"
)

// Hand drives a single deal from shuffle through pot distribution. It owns
// the authoritative player storage for the duration of the hand (spec §9's
// "cyclic player graphs" resolution) and only ever hands strategies a
// read-only CurrentHandContext snapshot.
type Hand struct {
	ID              string
	Seats           []*Player
	ButtonSeatIndex int
	SmallBlind      int
	BigBlind        int

	Street  Street
	Board   cards.Hand
	Deck    *cards.Deck
	Betting *BettingTracker

	Events *GameEvents
	Oracle oracle.HandRankOracle
	Logger *log.Logger

	HumanSeatID int // -1 if no human seat this hand

	lastAggressorID int
}

// HandOption configures NewHand, matching the teacher's functional-options
// constructor shape.
type HandOption func(*Hand)

// WithChips sets starting stacks per seat, in seat order.
func WithChips(chips []int) HandOption {
	return func(h *Hand) {
		for i, c := range chips {
			if i < len(h.Seats) {
				h.Seats[i].CashAtHandStart = c
				h.Seats[i].Cash = c
			}
		}
	}
}

// WithUniformChips sets every seat's starting stack to the same amount.
func WithUniformChips(amount int) HandOption {
	return func(h *Hand) {
		for _, p := range h.Seats {
			p.CashAtHandStart = amount
			p.Cash = amount
		}
	}
}

// WithDeck supplies a pre-built deck (e.g. pre-shuffled for a fixed test
// scenario) instead of letting NewHand build one from the injected RNG.
func WithDeck(d *cards.Deck) HandOption {
	return func(h *Hand) { h.Deck = d }
}

// WithEvents wires the event sink.
func WithEvents(events *GameEvents) HandOption {
	return func(h *Hand) { h.Events = events }
}

// WithOracle overrides the hand-rank oracle (tests may inject a stub).
func WithOracle(o oracle.HandRankOracle) HandOption {
	return func(h *Hand) { h.Oracle = o }
}

// WithLogger wires a logger; a discard logger is used if omitted.
func WithLogger(l *log.Logger) HandOption {
	return func(h *Hand) { h.Logger = l }
}

// WithHumanSeat marks one seat as the human's, so the engine knows when to
// raise onAwaitingHumanInput rather than expecting a bot strategy call.
func WithHumanSeat(playerID int) HandOption {
	return func(h *Hand) { h.HumanSeatID = playerID }
}

// NewHand seats players (one per name, ids 0..n-1 in seat order), assigns
// positions from buttonSeatIdx, and enters Preflop.
func NewHand(rng *rand.Rand, playerNames []string, buttonSeatIdx, smallBlind, bigBlind int, opts ...HandOption) (*Hand, error) {
	n := len(playerNames)
	if n < 2 || n > 10 {
		return nil, fmt.Errorf("engine: hand requires 2-10 players, got %d", n)
	}

	positions := AssignPositions(n, buttonSeatIdx)
	seats := make([]*Player, n)
	for i, name := range playerNames {
		seats[i] = &Player{
			ID:         i,
			Name:       name,
			Position:   positions[i],
			LastAction: ActionNone,
		}
	}

	h := &Hand{
		ID:              uuid.NewString(),
		Seats:           seats,
		ButtonSeatIndex: buttonSeatIdx,
		SmallBlind:      smallBlind,
		BigBlind:        bigBlind,
		Betting:         NewBettingTracker(bigBlind),
		Events:          &GameEvents{},
		Oracle:          oracle.New(),
		Logger:          log.New(io.Discard),
		HumanSeatID:     -1,
		lastAggressorID: -1,
	}

	for _, opt := range opts {
		opt(h)
	}

	if h.Deck == nil {
		h.Deck = cards.NewDeck(rng)
	}

	h.Events.playersInitialized(h.Seats)
	h.enterStreet(Preflop)
	return h, nil
}

func nextStreetOf(s Street) Street {
	switch s {
	case Preflop:
		return Flop
	case Flop:
		return Turn
	case Turn:
		return River
	default:
		return PostRiver
	}
}

func streetIndex(s Street) int {
	switch s {
	case Preflop, Flop, Turn, River:
		return int(s)
	default:
		return -1
	}
}

func (h *Hand) addBoardCards(newCards []cards.Card) {
	for _, c := range newCards {
		h.Board.AddCard(c)
	}
	h.Events.boardCardsDealt(h.Board)
}

func (h *Hand) sbSeatIndex() int {
	n := len(h.Seats)
	if n == 2 {
		return h.ButtonSeatIndex
	}
	return (h.ButtonSeatIndex + 1) % n
}

func (h *Hand) bbSeatIndex() int {
	n := len(h.Seats)
	if n == 2 {
		return (h.ButtonSeatIndex + 1) % n
	}
	return (h.ButtonSeatIndex + 2) % n
}

// enterStreet implements spec §4.3's enter(state) for a street that
// solicits action: reset the tracker and per-round commitments, announce
// the round, deal the street's board cards (if any), then post blinds and
// deal hole cards for Preflop.
func (h *Hand) enterStreet(street Street) {
	h.Street = street
	h.Betting.ResetForRound(street)
	for _, p := range h.Seats {
		p.LastAction = ActionNone
		p.BetInRound = 0
	}

	h.Events.bettingRoundStarted(street)

	switch street {
	case Flop:
		h.addBoardCards(h.Deck.Deal(3))
	case Turn, River:
		h.addBoardCards(h.Deck.Deal(1))
	}

	if street == Preflop {
		h.postBlinds()
		h.dealHoleCards()
	}
}

// dealStreetCardsOnly deals a street's board cards during an all-in runout,
// without resetting betting state or soliciting actions.
func (h *Hand) dealStreetCardsOnly(street Street) {
	switch street {
	case Flop:
		h.addBoardCards(h.Deck.Deal(3))
	case Turn, River:
		h.addBoardCards(h.Deck.Deal(1))
	}
}

func (h *Hand) postBlinds() {
	sbIdx, bbIdx := h.sbSeatIndex(), h.bbSeatIndex()
	h.postBlind(h.Seats[sbIdx], h.SmallBlind, ActionPostSmallBlind)
	h.postBlind(h.Seats[bbIdx], h.BigBlind, ActionPostBigBlind)
}

func (h *Hand) postBlind(p *Player, amount int, kind ActionKind) {
	post := amount
	if post > p.Cash {
		post = p.Cash
	}
	p.Cash -= post
	p.BetInRound += post
	if p.Cash == 0 {
		p.AllIn = true
	}
	p.LastAction = kind
	h.Betting.RecordAction(p.ID, kind)
	action := PlayerAction{PlayerID: p.ID, Kind: kind, Amount: post}
	streetIdx := streetIndex(h.Street)
	p.Actions[streetIdx] = append(p.Actions[streetIdx], StreetActionLog{Kind: kind, Amount: post})
	h.Events.playerActed(action)
	h.Events.playerChipsUpdated(p.ID, p.Cash)
}

func (h *Hand) dealHoleCards() {
	for _, p := range h.Seats {
		dealt := h.Deck.Deal(2)
		p.HoleCards = cards.NewHand(dealt[0], dealt[1])
		h.Events.holeCardsDealt(p.ID, p.HoleCards)
	}
}

func (h *Hand) findPlayer(id int) *Player {
	for _, p := range h.Seats {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// NextToAct returns the player id the turn-order resolver names as next to
// act, or -1 if the hand has no betting decision pending (e.g. PostRiver).
func (h *Hand) NextToAct() int {
	if h.Street == PostRiver {
		return -1
	}
	return NextActor(h.Betting, h.Seats, h.Street, h.ButtonSeatIndex, h.sbSeatIndex(), h.bbSeatIndex())
}

// LegalActions reports the legal action kinds for playerID right now.
func (h *Hand) LegalActions(playerID int) []ActionKind {
	p := h.findPlayer(playerID)
	if p == nil {
		return nil
	}
	return LegalActionKinds(h.Betting, p)
}

// ProcessAction validates and applies a proposed action (spec §4.3's
// "accepting an action" sequence), then rechecks round completion and
// advances the hand if the round just closed.
func (h *Hand) ProcessAction(playerID int, kind ActionKind, amount int) error {
	if h.Street == PostRiver {
		return fmt.Errorf("engine: hand is already complete")
	}

	p := h.findPlayer(playerID)
	if p == nil {
		return fmt.Errorf("engine: unknown player %d", playerID)
	}

	if h.NextToAct() != playerID {
		h.Events.invalidPlayerAction(playerID, PlayerAction{PlayerID: playerID, Kind: kind, Amount: amount}, ReasonOutOfTurn)
		return ReasonOutOfTurn
	}

	actualAmount := h.resolveAmount(p, kind, amount)
	proposed := PlayerAction{PlayerID: playerID, Kind: kind, Amount: actualAmount}

	if reason := ValidateAction(h.Betting, p, proposed); reason != ReasonNone {
		h.Events.invalidPlayerAction(playerID, proposed, reason)
		return reason
	}

	h.apply(p, proposed)

	if IsRoundComplete(h.Betting, h.Seats) {
		h.advanceStreet()
	}
	return nil
}

// resolveAmount computes the engine-owned amount for kinds where the caller
// must not supply one (spec §4.5.5): Call/AllIn/Fold/Check are always
// computed here regardless of what the caller passed.
func (h *Hand) resolveAmount(p *Player, kind ActionKind, callerAmount int) int {
	switch kind {
	case ActionFold, ActionCheck:
		return 0
	case ActionCall:
		toCall := h.Betting.RoundHighestSet - p.BetInRound
		if toCall > p.Cash {
			toCall = p.Cash
		}
		return p.BetInRound + toCall
	case ActionAllIn:
		return p.BetInRound + p.Cash
	default:
		return callerAmount
	}
}

func (h *Hand) apply(p *Player, action PlayerAction) {
	previousTotal := p.BetInRound
	delta := action.Amount - previousTotal
	if delta > p.Cash {
		delta = p.Cash
	}
	if delta > 0 {
		p.Cash -= delta
		p.BetInRound += delta
	}
	p.LastAction = action.Kind

	if action.Kind == ActionFold {
		p.Folded = true
	}
	if p.Cash == 0 && action.Kind != ActionFold {
		p.AllIn = true
	}

	h.Betting.RecordAction(p.ID, action.Kind)
	if action.Kind == ActionBet || action.Kind == ActionRaise || action.Kind == ActionAllIn {
		if p.BetInRound > previousTotal {
			h.Betting.NoteRaise(p.ID, previousTotal, p.BetInRound)
			if h.Betting.LastRaiserID == p.ID {
				h.lastAggressorID = p.ID
			}
		}
	}

	streetIdx := streetIndex(h.Street)
	p.Actions[streetIdx] = append(p.Actions[streetIdx], StreetActionLog{Kind: action.Kind, Amount: action.Amount})

	h.Events.playerActed(action)
	h.Events.playerChipsUpdated(p.ID, p.Cash)
	h.Events.potUpdated(h.potTotal())
}

func (h *Hand) potTotal() int {
	total := 0
	for _, p := range h.Seats {
		total += p.TotalCommitted()
	}
	return total
}

func (h *Hand) nonFoldedCount() int {
	n := 0
	for _, p := range h.Seats {
		if !p.Folded {
			n++
		}
	}
	return n
}

func (h *Hand) actingCount() int {
	n := 0
	for _, p := range h.Seats {
		if p.InActingSet() {
			n++
		}
	}
	return n
}

// advanceStreet implements spec §4.3's transition function.
func (h *Hand) advanceStreet() {
	if h.nonFoldedCount() < 2 {
		h.enterPostRiver()
		return
	}

	if h.actingCount() <= 1 {
		next := nextStreetOf(h.Street)
		for next != PostRiver {
			h.dealStreetCardsOnly(next)
			next = nextStreetOf(next)
		}
		h.enterPostRiver()
		return
	}

	next := nextStreetOf(h.Street)
	if next == PostRiver {
		h.enterPostRiver()
		return
	}
	h.enterStreet(next)
}

// enterPostRiver implements spec §4.3's PostRiver.enter: rank every
// still-in hand, distribute the pot, compute reveal order, record each
// seat's showdown outcome, and clear the per-hand action logs. The outcome
// flags stay set so the session can read them once the hand is complete.
func (h *Hand) enterPostRiver() {
	h.Street = PostRiver

	for _, p := range h.Seats {
		if !p.Folded {
			seven := h.Board | p.HoleCards
			p.HandRank = h.Oracle.RankHand(seven)
		}
	}

	result := DistributePot(h.Seats, h.ButtonSeatIndex)

	reveal := h.computeRevealOrder()
	if h.nonFoldedCount() >= 2 {
		for _, id := range reveal {
			if p := h.findPlayer(id); p != nil {
				p.WentToShowdown = true
			}
		}
	}

	for _, id := range result.DisplayWinners {
		if p := h.findPlayer(id); p != nil {
			if p.WentToShowdown {
				p.WonShowdown = true
			} else {
				p.WonWithoutShowdown = true
			}
		}
	}

	h.Events.showdownRevealOrder(reveal)
	h.Events.handCompleted(result.DisplayWinners, result.Total)

	for _, p := range h.Seats {
		p.Actions = [4][]StreetActionLog{}
	}
}

// computeRevealOrder implements spec §4.3.1.
func (h *Hand) computeRevealOrder() []int {
	n := len(h.Seats)
	stillIn := 0
	allAllIn := true
	for _, p := range h.Seats {
		if !p.Folded {
			stillIn++
			if !p.AllIn {
				allAllIn = false
			}
		}
	}
	if stillIn == 0 {
		return nil
	}
	if stillIn == 1 {
		for _, p := range h.Seats {
			if !p.Folded {
				return []int{p.ID}
			}
		}
	}

	startIdx := 0
	if h.lastAggressorID != -1 {
		if idx := seatIndexOf(h.Seats, h.lastAggressorID); idx >= 0 {
			startIdx = idx
		}
	}

	if allAllIn {
		order := make([]int, 0, stillIn)
		for i := 0; i < n; i++ {
			p := h.Seats[(startIdx+i)%n]
			if !p.Folded {
				order = append(order, p.ID)
			}
		}
		return order
	}

	var order []int
	var bestRank uint32
	var bestContribution int
	first := true
	for i := 0; i < n; i++ {
		p := h.Seats[(startIdx+i)%n]
		if p.Folded {
			continue
		}
		contribution := p.TotalCommitted()
		reveal := first || p.HandRank > bestRank || (p.HandRank == bestRank && contribution > bestContribution)
		if reveal {
			order = append(order, p.ID)
			bestRank = p.HandRank
			bestContribution = contribution
			first = false
		}
	}
	return order
}

// IsComplete reports whether the hand has finished (reached PostRiver).
func (h *Hand) IsComplete() bool {
	return h.Street == PostRiver
}
