package analysis

import (
	"github.com/Marcennaji/HoldemCore-sub002/internal/classification"
	"github.com/Marcennaji/HoldemCore-sub002/internal/engine"
)

// categoryStrength buckets a category's rough playing strength so the
// predicates below can prune by strength tier instead of hard-coding card
// lists. "Premium" is pairs TT+ and AK/AQ suited+offsuit broadway combos;
// "strong" is the rest of the suited broadways and mid pocket pairs;
// "speculative" is suited connectors/one-gappers and small pairs; the
// remainder is "weak".
type categoryStrength int

const (
	strengthWeak categoryStrength = iota
	strengthSpeculative
	strengthStrong
	strengthPremium
)

func classifyCategoryStrength(category string) categoryStrength {
	r1, r2 := rankValue(category[0]), rankValue(category[1])
	if r1 < r2 {
		r1, r2 = r2, r1
	}
	suited := len(category) == 3 && category[2] == 's'
	isPair := len(category) == 2

	switch {
	case isPair && r1 >= rankValue('T'):
		return strengthPremium
	case r1 == rankValue('A') && r2 >= rankValue('Q'):
		return strengthPremium
	case isPair && r1 >= rankValue('7'):
		return strengthStrong
	case r1 == rankValue('A') && r2 >= rankValue('T'):
		return strengthStrong
	case suited && r1 >= rankValue('K') && r2 >= rankValue('9'):
		return strengthStrong
	case suited && r1-r2 <= 2 && r2 >= rankValue('7'):
		return strengthSpeculative
	case isPair:
		return strengthSpeculative
	default:
		return strengthWeak
	}
}

func rankValue(c byte) int {
	switch c {
	case 'A':
		return 14
	case 'K':
		return 13
	case 'Q':
		return 12
	case 'J':
		return 11
	case 'T':
		return 10
	default:
		return int(c - '0')
	}
}

// containsNutMade reports whether a category, combined with the given board,
// would make one of the board's nut-tier hands (top set, the nut flush draw
// card, the top full house). Used to prune categories that can no longer be
// holding the scary part of the board once a tight-passive opponent
// continues to show weakness.
func containsNutMade(category string, board classification.BoardPossibilities) bool {
	strength := classifyCategoryStrength(category)
	if board.FlushPossible || board.FullHousePossible {
		return strength == strengthPremium
	}
	return strength >= strengthStrong
}

// RangeEstimator tracks one opponent's plausible starting-hand categories as
// a bitset over CategoryIndex, pruning it as actions are observed through
// ObserveAction (spec §4.9).
type RangeEstimator struct {
	index     *CategoryIndex
	plausible []bool
}

// NewRangeEstimator seeds a full-universe estimator: every category starts
// plausible until an observed action prunes it.
func NewRangeEstimator(index *CategoryIndex) *RangeEstimator {
	plausible := make([]bool, index.Len())
	for i := range plausible {
		plausible[i] = true
	}
	return &RangeEstimator{index: index, plausible: plausible}
}

// PlausibleCategories returns the categories not yet pruned.
func (e *RangeEstimator) PlausibleCategories() []string {
	out := make([]string, 0, len(e.plausible))
	for i, ok := range e.plausible {
		if ok {
			out = append(out, e.index.Category(i))
		}
	}
	return out
}

// Count returns how many categories remain plausible.
func (e *RangeEstimator) Count() int {
	n := 0
	for _, ok := range e.plausible {
		if ok {
			n++
		}
	}
	return n
}

// pruneWhere clears every currently-plausible category for which reject
// returns true.
func (e *RangeEstimator) pruneWhere(reject func(category string) bool) {
	for i, ok := range e.plausible {
		if ok && reject(e.index.Category(i)) {
			e.plausible[i] = false
		}
	}
}

// ObservationContext is what ObserveAction needs about the action being
// folded into the range estimate: the profile inferred from that opponent's
// statistics sample, whether the observed player was the aggressor on a
// previous street this hand, the board possibilities, and whether the board
// texture is draw-heavy.
type ObservationContext struct {
	Profile           Profile
	WasPriorAggressor bool
	Board             classification.BoardPossibilities
	Texture           classification.BoardTexture
}

// ObserveAction prunes the plausible-category set given one observed
// (street, action) pair, following the archetype-specific rules spec §4.9
// lays out.
func (e *RangeEstimator) ObserveAction(street engine.Street, action engine.ActionKind, ctx ObservationContext) {
	switch ctx.Profile {
	case TightPassive:
		e.observeTightPassive(street, action, ctx)
	case Maniac:
		e.observeManiac(street, action, ctx)
	case Aggressive:
		e.observeAggressive(street, action, ctx)
	case Moderate:
		e.observeModerate(street, action, ctx)
	default:
		e.observeUnprofiled(street, action)
	}
}

// observeTightPassive implements spec §4.9's worked example: on a draw-heavy
// flop, a tight-passive player who was the aggressor on an earlier street and
// now only checks or calls is unlikely to be slow-playing the nuts — prune
// categories that would make the board's strongest hands.
func (e *RangeEstimator) observeTightPassive(street engine.Street, action engine.ActionKind, ctx ObservationContext) {
	if street == engine.Preflop {
		switch action {
		case engine.ActionFold:
			e.pruneWhere(func(c string) bool { return classifyCategoryStrength(c) >= strengthSpeculative })
		case engine.ActionRaise, engine.ActionBet, engine.ActionAllIn:
			e.pruneWhere(func(c string) bool { return classifyCategoryStrength(c) < strengthStrong })
		}
		return
	}

	draw := ctx.Texture == classification.Wet || ctx.Texture == classification.VeryWet
	if draw && ctx.WasPriorAggressor && (action == engine.ActionCheck || action == engine.ActionCall) {
		e.pruneWhere(func(c string) bool { return containsNutMade(c, ctx.Board) })
	}

	if action == engine.ActionFold {
		e.pruneWhere(func(c string) bool { return classifyCategoryStrength(c) >= strengthStrong })
	}
}

// observeManiac implements spec §4.9's worked example: a maniac's preflop
// 3-bet from late position carries so little information that strong
// broadway categories must stay plausible — only the weakest trash is
// pruned out, and even that conservatively.
func (e *RangeEstimator) observeManiac(street engine.Street, action engine.ActionKind, _ ObservationContext) {
	if street != engine.Preflop {
		return
	}
	if action == engine.ActionRaise || action == engine.ActionBet || action == engine.ActionAllIn {
		e.pruneWhere(func(c string) bool { return classifyCategoryStrength(c) == strengthWeak })
	}
}

func (e *RangeEstimator) observeAggressive(street engine.Street, action engine.ActionKind, ctx ObservationContext) {
	if action == engine.ActionFold {
		e.pruneWhere(func(c string) bool { return classifyCategoryStrength(c) >= strengthStrong })
		return
	}
	if street == engine.Preflop && (action == engine.ActionRaise || action == engine.ActionBet) {
		e.pruneWhere(func(c string) bool { return classifyCategoryStrength(c) == strengthWeak })
	}
}

// observeModerate implements spec §4.9's worked example: a moderate
// opponent calling a river bet on a paired board keeps bluff-catchers (weak
// made hands) plausible, while pruning both the board's nut full houses and
// the very weakest hands that would never call there.
func (e *RangeEstimator) observeModerate(street engine.Street, action engine.ActionKind, ctx ObservationContext) {
	if street == engine.River && action == engine.ActionCall && ctx.Board.Paired {
		e.pruneWhere(func(c string) bool {
			return containsNutMade(c, ctx.Board) || classifyCategoryStrength(c) == strengthWeak
		})
		return
	}

	if action == engine.ActionFold {
		e.pruneWhere(func(c string) bool { return classifyCategoryStrength(c) >= strengthStrong })
		return
	}
	if action == engine.ActionRaise || action == engine.ActionBet {
		e.pruneWhere(func(c string) bool { return classifyCategoryStrength(c) == strengthWeak })
	}
}

// observeUnprofiled is the coarse fallback below the reliable-sample
// threshold (spec §4.9): prune only on the clearest signals — a preflop fold
// rules out premiums, a preflop raise rules out trash — and leave everything
// else untouched.
func (e *RangeEstimator) observeUnprofiled(street engine.Street, action engine.ActionKind) {
	if street != engine.Preflop {
		return
	}
	switch action {
	case engine.ActionFold:
		e.pruneWhere(func(c string) bool { return classifyCategoryStrength(c) == strengthPremium })
	case engine.ActionRaise, engine.ActionBet, engine.ActionAllIn:
		e.pruneWhere(func(c string) bool { return classifyCategoryStrength(c) == strengthWeak })
	}
}
