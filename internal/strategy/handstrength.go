package strategy

import "github.com/Marcennaji/HoldemCore-sub002/internal/engine"

// faceToCall is the exported-package-internal twin of Base.faceToCall, for
// use by the free predicate functions archetypes wire into Predicates.
func faceToCall(ctx engine.CurrentHandContext) int {
	return ctx.RoundHighestSet - ctx.RoundCommittedTotal
}

// potFraction rounds pct of the current pot total to a whole-chip amount,
// the bet/raise sizing idiom every archetype's BetSizingTable-style
// predicates use (spec §4.10).
func potFraction(ctx engine.CurrentHandContext, pct float64) int {
	amount := int(pct * float64(ctx.PotTotal))
	bb := ctx.SmallBlind * 2
	if amount < bb {
		amount = bb
	}
	return amount
}

// hasStrongMadeHand reports a value hand worth betting for value: two pair
// or better postflop, or (preflop, where Postflop flags reduce to whatever
// the hole cards alone make) a pocket pair.
func hasStrongMadeHand(ctx engine.CurrentHandContext) bool {
	f := ctx.Self.Postflop
	return f.TwoPair || f.Set || f.Straight || f.Flush || f.FullHouse || f.Quads || f.Overpair
}

// hasAnyMadeHand reports a hand worth continuing with: any pair or better.
func hasAnyMadeHand(ctx engine.CurrentHandContext) bool {
	f := ctx.Self.Postflop
	return f.Pair || hasStrongMadeHand(ctx)
}
