package strategy

import "github.com/Marcennaji/HoldemCore-sub002/internal/engine"

// NewTightAggressive builds the TightAggressive archetype (spec §4.10):
// narrow opening ranges, aggressive continuation betting, and pot control
// on marginal made hands once the pot has grown.
func NewTightAggressive() Strategy {
	return NewBase("tight-aggressive", Predicates{
		// Preflop, Postflop reduces to whatever the two hole cards alone
		// make (empty board): a pocket pair is the only signal available,
		// so narrow opening ranges are approximated as "pocket pair or
		// better" rather than a full 169-category preflop chart.
		PreflopShouldCall: func(ctx engine.CurrentHandContext) bool {
			return hasAnyMadeHand(ctx) && faceToCall(ctx) <= ctx.SmallBlind*8
		},
		PreflopRaiseAmount: func(ctx engine.CurrentHandContext) int {
			if !hasStrongMadeHand(ctx) {
				return 0
			}
			return PreflopRaiseSizing(ctx, 1.3, 1.1)
		},

		FlopShouldBet:   func(ctx engine.CurrentHandContext) bool { return hasStrongMadeHand(ctx) && !PotControl(ctx) },
		FlopShouldRaise: func(ctx engine.CurrentHandContext) bool { return hasStrongMadeHand(ctx) },
		FlopShouldCall:  func(ctx engine.CurrentHandContext) bool { return hasAnyMadeHand(ctx) || PotControl(ctx) },
		FlopBetAmount:   func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 0.66) },
		FlopRaiseAmount: func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 0.80) },

		TurnShouldBet:   func(ctx engine.CurrentHandContext) bool { return hasStrongMadeHand(ctx) && !PotControl(ctx) },
		TurnShouldRaise: func(ctx engine.CurrentHandContext) bool { return hasStrongMadeHand(ctx) },
		TurnShouldCall:  func(ctx engine.CurrentHandContext) bool { return hasAnyMadeHand(ctx) && !PotControl(ctx) },
		TurnBetAmount:   func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 0.66) },
		TurnRaiseAmount: func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 0.80) },

		RiverShouldBet:   func(ctx engine.CurrentHandContext) bool { return hasStrongMadeHand(ctx) },
		RiverShouldRaise: func(ctx engine.CurrentHandContext) bool { return ctx.Self.Postflop.Quads || ctx.Self.Postflop.FullHouse },
		RiverShouldCall:  func(ctx engine.CurrentHandContext) bool { return hasAnyMadeHand(ctx) },
		RiverBetAmount:   func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 0.75) },
		RiverRaiseAmount: func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 1.0) },
	})
}
