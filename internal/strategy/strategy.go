// Package strategy implements the bot decision pipeline (spec §4.10): a
// base skeleton that decomposes the decision per street into should-call /
// raise-amount / bet-amount predicates, four concrete archetypes overriding
// those predicates, and the shared preflop sizing, pot-control and
// bluff-possible helpers every archetype draws on.
package strategy

import "github.com/Marcennaji/HoldemCore-sub002/internal/engine"

// Strategy is a pure function of CurrentHandContext -> PlayerAction. It
// never mutates the context or reaches back into engine state.
type Strategy interface {
	Name() string
	Decide(ctx engine.CurrentHandContext) engine.PlayerAction
}

// Predicates is the set of helper hooks a concrete archetype overrides to
// specialize the Base skeleton's street decision procedures. Each predicate
// receives the read-only hand context and returns its yes/no or sizing
// answer; Base wires their results into the default action-kind priority
// (spec §4.10: Raise > Call > Check > Fold preflop; Bet/Raise > Call >
// Check > Fold postflop).
type Predicates struct {
	PreflopShouldCall func(ctx engine.CurrentHandContext) bool
	PreflopRaiseAmount func(ctx engine.CurrentHandContext) int

	FlopShouldBet  func(ctx engine.CurrentHandContext) bool
	FlopShouldRaise func(ctx engine.CurrentHandContext) bool
	FlopShouldCall func(ctx engine.CurrentHandContext) bool
	FlopBetAmount  func(ctx engine.CurrentHandContext) int
	FlopRaiseAmount func(ctx engine.CurrentHandContext) int

	TurnShouldBet  func(ctx engine.CurrentHandContext) bool
	TurnShouldRaise func(ctx engine.CurrentHandContext) bool
	TurnShouldCall func(ctx engine.CurrentHandContext) bool
	TurnBetAmount  func(ctx engine.CurrentHandContext) int
	TurnRaiseAmount func(ctx engine.CurrentHandContext) int

	RiverShouldBet  func(ctx engine.CurrentHandContext) bool
	RiverShouldRaise func(ctx engine.CurrentHandContext) bool
	RiverShouldCall func(ctx engine.CurrentHandContext) bool
	RiverBetAmount  func(ctx engine.CurrentHandContext) int
	RiverRaiseAmount func(ctx engine.CurrentHandContext) int
}

// Base is the shared strategy skeleton (spec §4.10). A concrete archetype
// is a Base built by NewBase with Predicates tuned to its style (Maniac
// wraps one in its own type); Base.Decide does
// the per-street dispatch and maps predicate results to a PlayerAction.
type Base struct {
	name  string
	preds Predicates
}

// NewBase builds a Base skeleton named name, driven by preds.
func NewBase(name string, preds Predicates) Base {
	return Base{name: name, preds: preds}
}

func (b Base) Name() string { return b.name }

// Decide dispatches to the per-street decision procedure and maps its
// predicate results into a concrete action, always respecting what the
// engine will accept: a Check is only offered when RoundHighestSet is
// already met, otherwise the skeleton falls back to Call or Fold.
func (b Base) Decide(ctx engine.CurrentHandContext) engine.PlayerAction {
	switch ctx.Street {
	case engine.Preflop:
		return b.decidePreflop(ctx)
	case engine.Flop:
		return b.decidePostflop(ctx, b.preds.FlopShouldBet, b.preds.FlopShouldRaise, b.preds.FlopShouldCall, b.preds.FlopBetAmount, b.preds.FlopRaiseAmount)
	case engine.Turn:
		return b.decidePostflop(ctx, b.preds.TurnShouldBet, b.preds.TurnShouldRaise, b.preds.TurnShouldCall, b.preds.TurnBetAmount, b.preds.TurnRaiseAmount)
	case engine.River:
		return b.decidePostflop(ctx, b.preds.RiverShouldBet, b.preds.RiverShouldRaise, b.preds.RiverShouldCall, b.preds.RiverBetAmount, b.preds.RiverRaiseAmount)
	default:
		return engine.PlayerAction{PlayerID: ctx.Self.ID, Kind: engine.ActionFold}
	}
}

func (b Base) faceToCall(ctx engine.CurrentHandContext) int {
	return ctx.RoundHighestSet - ctx.RoundCommittedTotal
}

func (b Base) decidePreflop(ctx engine.CurrentHandContext) engine.PlayerAction {
	id := ctx.Self.ID
	facingBet := b.faceToCall(ctx) > 0

	if facingBet && b.preds.PreflopRaiseAmount != nil {
		if amount := b.preds.PreflopRaiseAmount(ctx); amount > ctx.RoundHighestSet {
			return engine.PlayerAction{PlayerID: id, Kind: engine.ActionRaise, Amount: amount}
		}
	}
	if !facingBet && b.preds.PreflopRaiseAmount != nil {
		if amount := b.preds.PreflopRaiseAmount(ctx); amount > 0 {
			return engine.PlayerAction{PlayerID: id, Kind: engine.ActionBet, Amount: amount}
		}
	}
	if b.preds.PreflopShouldCall == nil || b.preds.PreflopShouldCall(ctx) {
		if !facingBet {
			return engine.PlayerAction{PlayerID: id, Kind: engine.ActionCheck}
		}
		return engine.PlayerAction{PlayerID: id, Kind: engine.ActionCall}
	}
	if !facingBet {
		return engine.PlayerAction{PlayerID: id, Kind: engine.ActionCheck}
	}
	return engine.PlayerAction{PlayerID: id, Kind: engine.ActionFold}
}

func (b Base) decidePostflop(
	ctx engine.CurrentHandContext,
	shouldBet, shouldRaise, shouldCall func(engine.CurrentHandContext) bool,
	betAmount, raiseAmount func(engine.CurrentHandContext) int,
) engine.PlayerAction {
	id := ctx.Self.ID
	facingBet := b.faceToCall(ctx) > 0

	if facingBet && shouldRaise != nil && shouldRaise(ctx) && raiseAmount != nil {
		if amount := raiseAmount(ctx); amount > ctx.RoundHighestSet {
			return engine.PlayerAction{PlayerID: id, Kind: engine.ActionRaise, Amount: amount}
		}
	}
	if !facingBet && shouldBet != nil && shouldBet(ctx) && betAmount != nil {
		if amount := betAmount(ctx); amount > 0 {
			return engine.PlayerAction{PlayerID: id, Kind: engine.ActionBet, Amount: amount}
		}
	}
	if facingBet {
		if shouldCall == nil || shouldCall(ctx) {
			return engine.PlayerAction{PlayerID: id, Kind: engine.ActionCall}
		}
		return engine.PlayerAction{PlayerID: id, Kind: engine.ActionFold}
	}
	return engine.PlayerAction{PlayerID: id, Kind: engine.ActionCheck}
}
