package classification

import "github.com/Marcennaji/HoldemCore-sub002/internal/cards"

// MadeHandFlags is the made-hand subset of PostflopFlags: what the best
// five-card hand out of hole+board actually is, and whether it used a hole
// card to get there (usesHoleCards distinguishes "I made trips" from
// "the board made trips, I just play the kicker").
type MadeHandFlags struct {
	Pair          bool
	Overpair      bool
	Set           bool
	TwoPair       bool
	Straight      bool
	Flush         bool
	FullHouse     bool
	Quads         bool
	UsesHoleCards bool
}

// ClassifyMadeHand inspects holeCards combined with board and reports the
// strongest made-hand categories present. Unlike a 7-card evaluator rank,
// this never needs to pick a single best category — a full house also
// implies a pair and trips were involved, so every category that applies is
// set, matching how CurrentHandContext's PostflopFlags are consumed (a
// strategy checks the specific flag it cares about, not a single enum).
func ClassifyMadeHand(holeCards, board cards.Hand) MadeHandFlags {
	var flags MadeHandFlags
	if holeCards.CountCards() == 0 {
		return flags
	}

	all := holeCards | board

	var rankCounts [13]int
	var holeRankCounts [13]int
	for suit := uint8(0); suit < 4; suit++ {
		allMask := all.GetSuitMask(suit)
		holeMask := holeCards.GetSuitMask(suit)
		for rank := uint8(0); rank < 13; rank++ {
			if allMask&(1<<rank) != 0 {
				rankCounts[rank]++
			}
			if holeMask&(1<<rank) != 0 {
				holeRankCounts[rank]++
			}
		}
	}

	pairs, trips, quads := 0, 0, 0
	highestBoardRank := -1
	boardRankMask := board.GetRankMask()
	for rank := 12; rank >= 0; rank-- {
		if boardRankMask&(1<<uint(rank)) != 0 && highestBoardRank < 0 {
			highestBoardRank = rank
		}
	}

	for rank := 0; rank < 13; rank++ {
		count := rankCounts[rank]
		usesHole := holeRankCounts[rank] > 0
		switch count {
		case 2:
			pairs++
			if usesHole {
				flags.Pair = true
				flags.UsesHoleCards = true
				if rank > highestBoardRank {
					flags.Overpair = true
				}
			}
		case 3:
			trips++
			if usesHole {
				flags.Set = true
				flags.UsesHoleCards = true
			}
		case 4:
			quads++
			if usesHole {
				flags.Quads = true
				flags.UsesHoleCards = true
			}
		}
	}

	if pairs >= 2 {
		flags.TwoPair = true
	}
	if trips >= 1 && pairs >= 1 {
		flags.FullHouse = true
	}
	if trips >= 2 {
		flags.FullHouse = true
	}

	flushInfo := AnalyzeFlushPotential(all)
	if flushInfo.MaxSuitCount >= 5 {
		flags.Flush = true
		if flushInfo.DominantSuit != nil {
			holeSuited := holeCards.GetSuitMask(*flushInfo.DominantSuit) != 0
			flags.UsesHoleCards = flags.UsesHoleCards || holeSuited
		}
	}

	if hasStraight(all) {
		flags.Straight = true
	}

	return flags
}

// hasStraight reports whether any five consecutive ranks (ace playable
// high or low) are all present in h.
func hasStraight(h cards.Hand) bool {
	mask := h.GetRankMask() & 0x1FFF // drop the duplicate ace bit 13
	for start := 0; start <= 8; start++ {
		window := uint16(0x1F) << uint(start)
		if mask&window == window {
			return true
		}
	}
	wheel := uint16(1)<<cards.Ace | 0xF // A-2-3-4-5
	return mask&wheel == wheel
}
