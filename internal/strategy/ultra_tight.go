package strategy

import "github.com/Marcennaji/HoldemCore-sub002/internal/engine"

// NewUltraTight builds the UltraTight archetype (spec §4.10): folds almost
// everything, serving as the regression baseline opponent.
func NewUltraTight() Strategy {
	premium := func(ctx engine.CurrentHandContext) bool {
		return ctx.Self.Postflop.Set || ctx.Self.Postflop.FullHouse || ctx.Self.Postflop.Quads
	}

	return NewBase("ultra-tight", Predicates{
		PreflopShouldCall: func(ctx engine.CurrentHandContext) bool {
			return faceToCall(ctx) == 0 || premium(ctx)
		},
		PreflopRaiseAmount: func(ctx engine.CurrentHandContext) int {
			if !premium(ctx) {
				return 0
			}
			return PreflopRaiseSizing(ctx, 1.4, 1.2)
		},

		FlopShouldBet:   func(ctx engine.CurrentHandContext) bool { return premium(ctx) },
		FlopShouldRaise: func(ctx engine.CurrentHandContext) bool { return premium(ctx) },
		FlopShouldCall:  premium,
		FlopBetAmount:   func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 0.5) },
		FlopRaiseAmount: func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 0.75) },

		TurnShouldBet:   func(ctx engine.CurrentHandContext) bool { return premium(ctx) },
		TurnShouldRaise: func(ctx engine.CurrentHandContext) bool { return premium(ctx) },
		TurnShouldCall:  premium,
		TurnBetAmount:   func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 0.5) },
		TurnRaiseAmount: func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 0.75) },

		RiverShouldBet:   func(ctx engine.CurrentHandContext) bool { return premium(ctx) },
		RiverShouldRaise: func(ctx engine.CurrentHandContext) bool { return premium(ctx) },
		RiverShouldCall:  premium,
		RiverBetAmount:   func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 0.6) },
		RiverRaiseAmount: func(ctx engine.CurrentHandContext) int { return potFraction(ctx, 0.9) },
	})
}
