// Package classification analyzes board texture, draws and made-hand
// strength from the bit-packed cards.Hand representation, feeding the
// PostflopFlags a strategy reads off CurrentHandContext.
package classification

import (
	"math/bits"

	"github.com/Marcennaji/HoldemCore-sub002/internal/cards"
)

// BoardTexture is the "wetness" of a board, from dry to very wet.
type BoardTexture int

const (
	Dry BoardTexture = iota
	SemiWet
	Wet
	VeryWet
)

func (bt BoardTexture) String() string {
	switch bt {
	case Dry:
		return "dry"
	case SemiWet:
		return "semi-wet"
	case Wet:
		return "wet"
	case VeryWet:
		return "very wet"
	default:
		return "unknown"
	}
}

// FlushInfo describes flush potential on a board.
type FlushInfo struct {
	MaxSuitCount int
	DominantSuit *uint8
	IsMonotone   bool
	IsRainbow    bool
}

// StraightInfo describes straight potential on a board.
type StraightInfo struct {
	ConnectedCards int
	Gaps           int
	HasAce         bool
	BroadwayCards  int
}

// AnalyzeBoardTexture scores how coordinated a board is.
func AnalyzeBoardTexture(board cards.Hand) BoardTexture {
	if board.CountCards() < 3 {
		return Dry
	}

	var wetness int

	flushInfo := AnalyzeFlushPotential(board)
	switch {
	case flushInfo.IsMonotone && board.CountCards() >= 3:
		wetness += 4
	case flushInfo.MaxSuitCount >= 4:
		wetness += 4
	case flushInfo.MaxSuitCount == 3:
		wetness += 3
	case flushInfo.MaxSuitCount == 2:
		wetness += 1
	}

	straightInfo := AnalyzeStraightPotential(board)
	switch {
	case straightInfo.ConnectedCards >= 4:
		wetness += 4
	case straightInfo.ConnectedCards == 3:
		wetness += 3
	case straightInfo.ConnectedCards == 2:
		wetness += 1
	}

	if countBoardPairs(board) >= 1 {
		wetness += 1
	}

	if countHighCards(board) >= 3 {
		wetness += 1
	}

	switch {
	case wetness <= 0:
		return Dry
	case wetness <= 3:
		return SemiWet
	case wetness <= 5:
		return Wet
	default:
		return VeryWet
	}
}

// AnalyzeFlushPotential inspects per-suit counts on the board.
func AnalyzeFlushPotential(board cards.Hand) FlushInfo {
	var suitCounts [4]int
	var suitMasks [4]uint16

	for suit := uint8(0); suit < 4; suit++ {
		suitMask := board.GetSuitMask(suit)
		suitCounts[suit] = bits.OnesCount16(suitMask)
		suitMasks[suit] = suitMask
	}

	var maxCount int
	var dominantSuit *uint8
	bestRankForSuit := -1
	nonZeroSuits := 0

	for suit := len(suitCounts) - 1; suit >= 0; suit-- {
		count := suitCounts[suit]
		if count == 0 {
			continue
		}
		nonZeroSuits++

		highestRank := bits.Len16(suitMasks[suit]) - 1
		if highestRank < 0 {
			highestRank = -1
		}

		if count > maxCount || (count == maxCount && highestRank > bestRankForSuit) {
			maxCount = count
			bestRankForSuit = highestRank
			suitCopy := uint8(suit)
			dominantSuit = &suitCopy
		}
	}

	cardCount := board.CountCards()

	return FlushInfo{
		MaxSuitCount: maxCount,
		DominantSuit: dominantSuit,
		IsMonotone:   nonZeroSuits == 1 && cardCount >= 3,
		IsRainbow:    nonZeroSuits == cardCount && cardCount >= 3,
	}
}

// AnalyzeStraightPotential inspects rank connectivity on the board.
func AnalyzeStraightPotential(board cards.Hand) StraightInfo {
	cardCount := board.CountCards()
	if cardCount == 0 {
		return StraightInfo{}
	}

	if cardCount == 1 {
		ranks := board.GetRankMask()
		hasAce := (ranks & (1 << cards.Ace)) != 0
		broadwayCount := 0
		if hasAce {
			broadwayCount = 1
		}
		return StraightInfo{ConnectedCards: 1, HasAce: hasAce, BroadwayCards: broadwayCount}
	}

	var rankMask uint16
	for suit := uint8(0); suit < 4; suit++ {
		rankMask |= board.GetSuitMask(suit)
	}

	hasAce := (rankMask & (1 << cards.Ace)) != 0

	broadwayCount := 0
	for rank := cards.Ten; rank <= cards.Ace; rank++ {
		if rankMask&(1<<rank) != 0 {
			broadwayCount++
		}
	}

	var ranks []int
	for rank := 0; rank < 13; rank++ {
		if rankMask&(1<<rank) != 0 {
			ranks = append(ranks, rank)
		}
	}
	if len(ranks) == 0 {
		return StraightInfo{}
	}

	maxConnected := 1
	currentConnected := 1
	totalGaps := 0
	for i := 1; i < len(ranks); i++ {
		gap := ranks[i] - ranks[i-1] - 1
		if gap == 0 {
			currentConnected++
		} else {
			if currentConnected > maxConnected {
				maxConnected = currentConnected
			}
			currentConnected = 1
			if gap > 0 {
				totalGaps += gap
			}
		}
	}
	if currentConnected > maxConnected {
		maxConnected = currentConnected
	}

	if hasAce {
		var lowRanks []int
		for _, rank := range ranks {
			if rank <= 3 {
				lowRanks = append(lowRanks, rank)
			}
		}
		if len(lowRanks) >= 2 {
			wheelRanks := append([]int{-1}, lowRanks...)
			wheelConnected, wheelMax := 1, 1
			for i := 1; i < len(wheelRanks); i++ {
				if wheelRanks[i]-wheelRanks[i-1] == 1 {
					wheelConnected++
				} else {
					if wheelConnected > wheelMax {
						wheelMax = wheelConnected
					}
					wheelConnected = 1
				}
			}
			if wheelConnected > wheelMax {
				wheelMax = wheelConnected
			}
			if wheelMax > maxConnected {
				maxConnected = wheelMax
			}
		}
	}

	return StraightInfo{
		ConnectedCards: maxConnected,
		Gaps:           totalGaps,
		HasAce:         hasAce,
		BroadwayCards:  broadwayCount,
	}
}

func countBoardPairs(board cards.Hand) int {
	var rankCounts [13]int
	for suit := uint8(0); suit < 4; suit++ {
		suitMask := board.GetSuitMask(suit)
		for rank := uint8(0); rank < 13; rank++ {
			if suitMask&(1<<rank) != 0 {
				rankCounts[rank]++
			}
		}
	}
	pairs := 0
	for _, count := range rankCounts {
		if count >= 2 {
			pairs++
		}
	}
	return pairs
}

// BoardPossibilities reports what hand types the board alone makes possible
// for an opponent — independent of any specific hole cards — feeding the
// *Possible flags on PostflopFlags.
type BoardPossibilities struct {
	Paired            bool
	FlushPossible     bool
	StraightPossible  bool
	FullHousePossible bool
}

// AnalyzeBoardPossibilities reports what an opponent's hole cards could
// combine with the board to make.
func AnalyzeBoardPossibilities(board cards.Hand) BoardPossibilities {
	pairs := countBoardPairs(board)
	flush := AnalyzeFlushPotential(board)
	straight := AnalyzeStraightPotential(board)

	return BoardPossibilities{
		Paired:            pairs >= 1,
		FlushPossible:     flush.MaxSuitCount >= 3,
		StraightPossible:  straight.ConnectedCards >= 3,
		FullHousePossible: pairs >= 1 && board.CountCards() >= 4,
	}
}

func countHighCards(board cards.Hand) int {
	count := 0
	for suit := uint8(0); suit < 4; suit++ {
		highMask := board.GetSuitMask(suit) & 0x1F00 // T-A
		count += bits.OnesCount16(highMask)
	}
	return count
}
