// Package oracle is the one seam where the engine talks to a third-party
// 7-card hand evaluator. Spec treats the evaluator as an external port —
// "rank_hand(seven_card_string) -> u32, higher is better" — so this package
// holds the only dependency on the concrete evaluator library and inverts
// its convention (chehsunliu/poker ranks 1 as best, 7462 as worst) at the
// boundary, so nothing above this package ever needs to know that detail.
package oracle

import (
	"strings"

	libpoker "github.com/chehsunliu/poker"

	"github.com/Marcennaji/HoldemCore-sub002/internal/cards"
)

// HandRankOracle is the port the engine depends on. Rank is the engine's
// own convention: higher is better, ties are equal.
type HandRankOracle interface {
	RankHand(sevenCards cards.Hand) uint32
}

// Default is the chehsunliu/poker-backed implementation.
type Default struct{}

// New returns the default hand-rank oracle.
func New() Default { return Default{} }

// invertBase is larger than any rank chehsunliu/poker produces (worst
// possible 7-card hand ranks 7462), so the inversion always yields a
// positive, higher-is-better value.
const invertBase = 7463

// RankHand evaluates exactly seven cards (five board + two hole) and
// returns an engine-convention rank: higher is better.
func (Default) RankHand(sevenCards cards.Hand) uint32 {
	hand := sevenCards.Cards()
	libCards := make([]libpoker.Card, 0, len(hand))
	for _, c := range hand {
		libCards = append(libCards, libpoker.NewCard(c.String()))
	}
	rank := libpoker.Evaluate(libCards)
	return uint32(invertBase - int(rank))
}

// EncodeSevenCardString renders sevenCards using the space-separated "Rs Rs
// ..." grammar spec §6.3 names for the port boundary's wire form (used by
// logging and any host that wants a human-auditable string instead of the
// raw bitset).
func EncodeSevenCardString(sevenCards cards.Hand) string {
	hand := sevenCards.Cards()
	parts := make([]string, 0, len(hand))
	for _, c := range hand {
		parts = append(parts, c.String())
	}
	return strings.Join(parts, " ")
}
