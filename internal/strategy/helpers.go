package strategy

import "github.com/Marcennaji/HoldemCore-sub002/internal/engine"

// PreflopRaiseSizing implements spec §4.10's shared preflop raise-sizing
// rule: a first raise (no prior aggressor this round) uses the position/M
// formula, a 3-bet or 4-bet+ scales off the committed pot instead, and
// either is converted to an all-in shove if it would exceed 30% of the
// player's stack.
func PreflopRaiseSizing(ctx engine.CurrentHandContext, threeBetMultiplier, fourBetPlusMultiplier float64) int {
	bb := ctx.SmallBlind * 2

	var raise int
	switch {
	case ctx.PreflopRaiseCount == 0:
		base := 1.5
		if ctx.Self.M > 8 {
			base = 2.0
		}
		raise = int(base * float64(bb))
		if ctx.Self.Position == engine.PositionUnderTheGun {
			raise += bb
		}
		if ctx.Self.Position == engine.PositionButton {
			raise -= ctx.SmallBlind
		}
		raise += ctx.LimpCount * bb
	case ctx.PreflopRaiseCount == 1:
		mult := threeBetMultiplier
		if outOfPosition(ctx) {
			mult += 0.2
		}
		raise = int(mult * float64(ctx.PotTotal))
	default:
		mult := fourBetPlusMultiplier
		if outOfPosition(ctx) {
			mult += 0.2
		}
		raise = int(mult * float64(ctx.PotTotal))
	}

	if raise < bb {
		raise = bb
	}
	if float64(raise) > 0.30*float64(ctx.Self.Cash) {
		return ctx.Self.Cash + ctx.Self.TotalBetThisHand
	}
	return raise
}

// outOfPosition reports whether Self acted before the preflop aggressor
// would, a rough proxy since CurrentHandContext does not expose full seating
// order to strategies — early/middle positions are treated as out of
// position against any raiser.
func outOfPosition(ctx engine.CurrentHandContext) bool {
	switch ctx.Self.Position {
	case engine.PositionButton, engine.PositionCutoff, engine.PositionLate:
		return false
	default:
		return true
	}
}

// PotControl implements spec §4.10's pot-control predicate: true when the
// pot has grown past the street's threshold (20 BB flop, 40 BB turn) and
// Self holds a vulnerable made hand.
func PotControl(ctx engine.CurrentHandContext) bool {
	bb := ctx.SmallBlind * 2
	var threshold int
	switch ctx.Street {
	case engine.Flop:
		threshold = 20 * bb
	case engine.Turn:
		threshold = 40 * bb
	default:
		return false
	}
	if ctx.PotTotal <= threshold {
		return false
	}

	flags := ctx.Self.Postflop
	vulnerable := (flags.Pair && !flags.Overpair && !flags.TwoPair && !flags.Set) ||
		(flags.FullHousePossible && !flags.FullHouse && !flags.Quads) ||
		((flags.Overpair || flags.Pair) && ctx.Self.TotalBetThisHand > ctx.Self.Cash/2)
	return vulnerable
}

// BluffPossible implements spec §4.10's bluff-possible predicate: false if
// any remaining opponent looks like a calling station, is too pot-committed
// to fold, or (preflop) calls three-bets too often to be bluffed off a hand.
func BluffPossible(ctx engine.CurrentHandContext) bool {
	for _, opp := range ctx.Opponents {
		if opp.WentToShowdownPct < 40 && (opp.VPIP-opp.AggressionFrequency) > 15 && opp.VPIP > 20 {
			return false
		}
		if ctx.PotTotal > 0 && opp.Cash < 3*ctx.PotTotal {
			return false
		}
		if ctx.Street == engine.Preflop && opp.CallThreeBetFrequency > 40 {
			return false
		}
	}
	return true
}
