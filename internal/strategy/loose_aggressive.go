package strategy

import "github.com/Marcennaji/HoldemCore-sub002/internal/engine"

// NewLooseAggressive builds the LooseAggressive archetype (spec §4.10):
// wide opening, frequent continuation bets, and large bluffs whenever
// BluffPossible holds.
func NewLooseAggressive() Strategy {
	return NewBase("loose-aggressive", Predicates{
		PreflopShouldCall: func(ctx engine.CurrentHandContext) bool {
			return faceToCall(ctx) <= ctx.SmallBlind*12
		},
		PreflopRaiseAmount: func(ctx engine.CurrentHandContext) int {
			if ctx.LimpCount == 0 && ctx.PreflopRaiseCount == 0 && !hasAnyMadeHand(ctx) {
				return 0
			}
			return PreflopRaiseSizing(ctx, 1.2, 1.0)
		},

		FlopShouldBet:   looseShouldBet,
		FlopShouldRaise: func(ctx engine.CurrentHandContext) bool { return hasStrongMadeHand(ctx) || BluffPossible(ctx) },
		FlopShouldCall:  func(ctx engine.CurrentHandContext) bool { return hasAnyMadeHand(ctx) },
		FlopBetAmount:   func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 0.75) },
		FlopRaiseAmount: func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 1.0) },

		TurnShouldBet:   looseShouldBet,
		TurnShouldRaise: func(ctx engine.CurrentHandContext) bool { return hasStrongMadeHand(ctx) || BluffPossible(ctx) },
		TurnShouldCall:  func(ctx engine.CurrentHandContext) bool { return hasAnyMadeHand(ctx) },
		TurnBetAmount:   func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 0.75) },
		TurnRaiseAmount: func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 1.0) },

		RiverShouldBet:   looseShouldBet,
		RiverShouldRaise: func(ctx engine.CurrentHandContext) bool { return hasStrongMadeHand(ctx) },
		RiverShouldCall:  func(ctx engine.CurrentHandContext) bool { return hasAnyMadeHand(ctx) },
		RiverBetAmount:   func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 1.0) },
		RiverRaiseAmount: func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 1.2) },
	})
}

// looseShouldBet bets any made hand for value, or bluffs a missed hand
// whenever the table reads allow it (spec §4.10's bluff-possible gate).
func looseShouldBet(ctx engine.CurrentHandContext) bool {
	return hasAnyMadeHand(ctx) || BluffPossible(ctx)
}
