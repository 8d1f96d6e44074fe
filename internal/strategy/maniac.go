package strategy

import (
	"math/rand"

	"github.com/Marcennaji/HoldemCore-sub002/internal/engine"
)

// maniacStrategy wraps Base with a per-instance *rand.Rand so its raises can
// be "random-ish" (spec §4.10) while staying reproducible under a pinned
// seed, per spec §5's RNG determinism requirement.
type maniacStrategy struct {
	base Base
	rng  *rand.Rand
}

// NewManiac builds the Maniac archetype (spec §4.10): aggressive across the
// board, raising on a wide range of hands with randomized sizing. rng seeds
// the sizing jitter; pass a seeded rand.Rand for reproducible tests.
func NewManiac(rng *rand.Rand) Strategy {
	m := &maniacStrategy{rng: rng}
	m.base = NewBase("maniac", Predicates{
		PreflopShouldCall: func(ctx engine.CurrentHandContext) bool { return true },
		PreflopRaiseAmount: func(ctx engine.CurrentHandContext) int {
			return m.jitter(PreflopRaiseSizing(ctx, 1.2, 1.0))
		},

		FlopShouldBet:   func(ctx engine.CurrentHandContext) bool { return true },
		FlopShouldRaise: func(ctx engine.CurrentHandContext) bool { return true },
		FlopShouldCall:  func(ctx engine.CurrentHandContext) bool { return true },
		FlopBetAmount:   func(ctx engine.CurrentHandContext) int { return m.jitter(potFraction(ctx, 0.75)) },
		FlopRaiseAmount: func(ctx engine.CurrentHandContext) int { return m.jitter(potFraction(ctx, 1.3)) },

		TurnShouldBet:   func(ctx engine.CurrentHandContext) bool { return true },
		TurnShouldRaise: func(ctx engine.CurrentHandContext) bool { return true },
		TurnShouldCall:  func(ctx engine.CurrentHandContext) bool { return true },
		TurnBetAmount:   func(ctx engine.CurrentHandContext) int { return m.jitter(potFraction(ctx, 0.75)) },
		TurnRaiseAmount: func(ctx engine.CurrentHandContext) int { return m.jitter(potFraction(ctx, 1.3)) },

		RiverShouldBet:   func(ctx engine.CurrentHandContext) bool { return true },
		RiverShouldRaise: func(ctx engine.CurrentHandContext) bool { return true },
		RiverShouldCall:  func(ctx engine.CurrentHandContext) bool { return true },
		RiverBetAmount:   func(ctx engine.CurrentHandContext) int { return m.jitter(potFraction(ctx, 1.0)) },
		RiverRaiseAmount: func(ctx engine.CurrentHandContext) int { return m.jitter(potFraction(ctx, 1.5)) },
	})
	return m
}

func (m *maniacStrategy) Name() string { return m.base.Name() }

func (m *maniacStrategy) Decide(ctx engine.CurrentHandContext) engine.PlayerAction {
	action := m.base.Decide(ctx)
	if action.Kind == engine.ActionRaise || action.Kind == engine.ActionBet {
		if action.Amount > ctx.Self.Cash+ctx.Self.TotalBetThisHand {
			action.Amount = ctx.Self.Cash + ctx.Self.TotalBetThisHand
		}
	}
	return action
}

// jitter scales amount by a random factor in [0.85, 1.25), the "random-ish"
// raise sizing spec §4.10 calls for.
func (m *maniacStrategy) jitter(amount int) int {
	if amount <= 0 {
		return amount
	}
	factor := 0.85 + m.rng.Float64()*0.40
	return int(float64(amount) * factor)
}
