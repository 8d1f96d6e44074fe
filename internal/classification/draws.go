package classification

import (
	"math/bits"

	"github.com/Marcennaji/HoldemCore-sub002/internal/cards"
)

// DrawType enumerates the draw categories a hand can carry.
type DrawType int

const (
	FlushDraw DrawType = iota
	NutFlushDraw
	OpenEndedStraightDraw
	Gutshot
	DoubleGutshot
	ComboDraw
	BackdoorFlush
	BackdoorStraight
	Overcards
	NoDraw
)

func (dt DrawType) String() string {
	switch dt {
	case FlushDraw:
		return "flush draw"
	case NutFlushDraw:
		return "nut flush draw"
	case OpenEndedStraightDraw:
		return "open-ended straight draw"
	case Gutshot:
		return "gutshot"
	case DoubleGutshot:
		return "double gutshot"
	case ComboDraw:
		return "combo draw"
	case BackdoorFlush:
		return "backdoor flush"
	case BackdoorStraight:
		return "backdoor straight"
	case Overcards:
		return "overcards"
	case NoDraw:
		return "no draw"
	default:
		return "unknown"
	}
}

// DrawInfo is the full draw assessment for one hole+board combination.
type DrawInfo struct {
	Draws   []DrawType
	Outs    int
	NutOuts int
}

// HasStrongDraw reports whether any strong draw category is present.
func (d DrawInfo) HasStrongDraw() bool {
	for _, draw := range d.Draws {
		switch draw {
		case FlushDraw, NutFlushDraw, OpenEndedStraightDraw, ComboDraw:
			return true
		}
	}
	return false
}

// HasWeakDraw reports whether any weak draw category is present.
func (d DrawInfo) HasWeakDraw() bool {
	for _, draw := range d.Draws {
		switch draw {
		case Gutshot, BackdoorFlush, BackdoorStraight, Overcards:
			return true
		}
	}
	return false
}

// IsComboDraw reports whether the hand combines two or more draws with at
// least 12 outs.
func (d DrawInfo) IsComboDraw() bool {
	return len(d.Draws) >= 2 && d.Outs >= 12
}

// DetectDraws assesses every draw category for holeCards on board.
func DetectDraws(holeCards, board cards.Hand) DrawInfo {
	if board.CountCards() < 3 {
		return DrawInfo{Draws: []DrawType{NoDraw}}
	}

	var draws []DrawType
	var outsMask, nutOutsMask cards.Hand
	allCards := holeCards | board

	flushInfo := detectFlushDraw(holeCards, board)
	if flushInfo.HasFlushDraw {
		if flushInfo.IsNutFlushDraw {
			draws = append(draws, NutFlushDraw)
			nutOutsMask |= flushInfo.OutsMask
		} else {
			draws = append(draws, FlushDraw)
		}
		outsMask |= flushInfo.OutsMask
	}

	straightInfo := detectStraightDraws(holeCards, board)
	if straightInfo.HasOESD {
		draws = append(draws, OpenEndedStraightDraw)
		outsMask |= straightInfo.OESDOutsMask
	}
	if straightInfo.HasGutshot {
		draws = append(draws, Gutshot)
		outsMask |= straightInfo.GutshotOutsMask
	}
	if straightInfo.HasDoubleGutshot {
		draws = append(draws, DoubleGutshot)
		outsMask |= straightInfo.DoubleGutshotOutsMask
	}

	if board.CountCards() == 3 {
		if detectBackdoorFlush(holeCards, board).HasBackdoorFlush {
			draws = append(draws, BackdoorFlush)
		}
	}

	if !flushInfo.HasFlushDraw && !straightInfo.HasOESD {
		overcardsInfo := detectOvercards(holeCards, board, allCards)
		if overcardsInfo.HasOvercards {
			draws = append(draws, Overcards)
			outsMask |= overcardsInfo.OutsMask
		}
	}

	totalOuts := outsMask.CountCards()
	nutOuts := nutOutsMask.CountCards()

	if len(draws) >= 2 && totalOuts >= 12 {
		draws = append(draws, ComboDraw)
	}

	if len(draws) == 0 {
		draws = []DrawType{NoDraw}
	}

	return DrawInfo{Draws: draws, Outs: totalOuts, NutOuts: nutOuts}
}

type flushDrawInfo struct {
	HasFlushDraw   bool
	IsNutFlushDraw bool
	Suit           uint8
	OutsMask       cards.Hand
}

type straightDrawInfo struct {
	HasOESD               bool
	HasGutshot            bool
	HasDoubleGutshot      bool
	OESDOutsMask          cards.Hand
	GutshotOutsMask       cards.Hand
	DoubleGutshotOutsMask cards.Hand
}

type backdoorFlushInfo struct {
	HasBackdoorFlush bool
	Suit             uint8
}

type overcardsInfo struct {
	HasOvercards bool
	OutsMask     cards.Hand
}

func detectFlushDraw(holeCards, board cards.Hand) flushDrawInfo {
	for suit := uint8(0); suit < 4; suit++ {
		holeSuitMask := holeCards.GetSuitMask(suit)
		boardSuitMask := board.GetSuitMask(suit)

		holeCount := bits.OnesCount16(holeSuitMask)
		boardCount := bits.OnesCount16(boardSuitMask)
		totalCount := holeCount + boardCount

		if totalCount >= 3 && holeCount > 0 {
			usedMask := holeSuitMask | boardSuitMask
			availableMask := uint16(0x1FFF) &^ usedMask
			outsMask := cards.Hand(availableMask) << (suit * 13)
			isNutFlush := (holeSuitMask & (1 << cards.Ace)) != 0

			return flushDrawInfo{
				HasFlushDraw:   true,
				IsNutFlushDraw: isNutFlush,
				Suit:           suit,
				OutsMask:       outsMask,
			}
		}
	}
	return flushDrawInfo{}
}

func detectStraightDraws(holeCards, board cards.Hand) straightDrawInfo {
	allCards := holeCards | board
	rankMask := allCards.GetRankMask()

	var info straightDrawInfo

	for start := 0; start <= 9; start++ {
		consecutive := 0
		for i := 0; i < 4; i++ {
			if rankMask&(1<<(start+i)) != 0 {
				consecutive++
			}
		}
		if consecutive == 4 {
			lowRank := start - 1
			highRank := start + 4
			if lowRank >= 0 && highRank <= 13 {
				lowAvailable := (rankMask & (1 << lowRank)) == 0
				highAvailable := (rankMask & (1 << highRank)) == 0
				if lowAvailable && highAvailable {
					info.HasOESD = true
					for suit := uint8(0); suit < 4; suit++ {
						info.OESDOutsMask.AddCard(cards.NewCard(uint8(lowRank), suit))
						info.OESDOutsMask.AddCard(cards.NewCard(uint8(highRank), suit))
					}
				}
			}
		}
	}

	for start := 0; start <= 8; start++ {
		var presentRanks []int
		for i := 0; i < 5; i++ {
			if rankMask&(1<<(start+i)) != 0 {
				presentRanks = append(presentRanks, start+i)
			}
		}
		if len(presentRanks) == 4 {
			first := presentRanks[0]
			last := presentRanks[len(presentRanks)-1]

			if last-first == 3 {
				lowOut := first - 1
				highOut := last + 1
				if first == 0 {
					lowOut = int(cards.Ace)
				}
				hasLow := lowOut >= 0 && lowOut <= int(cards.Ace) && (rankMask&(1<<lowOut)) == 0
				hasHigh := highOut >= 0 && highOut <= int(cards.Ace) && (rankMask&(1<<highOut)) == 0
				if hasLow && hasHigh {
					continue
				}
			}

			present := map[int]bool{}
			for _, r := range presentRanks {
				present[r] = true
			}
			missingRank := -1
			for i := 0; i < 5; i++ {
				r := start + i
				if !present[r] {
					missingRank = r
					break
				}
			}
			if missingRank < 0 {
				continue
			}

			info.HasGutshot = true
			for suit := uint8(0); suit < 4; suit++ {
				info.GutshotOutsMask.AddCard(cards.NewCard(uint8(missingRank), suit))
			}
			break
		}
	}

	return info
}

func detectBackdoorFlush(holeCards, board cards.Hand) backdoorFlushInfo {
	if board.CountCards() != 3 {
		return backdoorFlushInfo{}
	}
	for suit := uint8(0); suit < 4; suit++ {
		holeCount := bits.OnesCount16(holeCards.GetSuitMask(suit))
		boardCount := bits.OnesCount16(board.GetSuitMask(suit))
		if holeCount >= 1 && holeCount+boardCount == 2 {
			return backdoorFlushInfo{HasBackdoorFlush: true, Suit: suit}
		}
	}
	return backdoorFlushInfo{}
}

func detectOvercards(holeCards, board, usedCards cards.Hand) overcardsInfo {
	boardRankMask := board.GetRankMask()
	var highestBoardRank uint8
	for rank := uint8(12); rank > 0; rank-- {
		if boardRankMask&(1<<rank) != 0 {
			highestBoardRank = rank
			break
		}
	}

	holeRankMask := holeCards.GetRankMask()
	var outsMask cards.Hand

	for rank := highestBoardRank + 1; rank <= 12; rank++ {
		if holeRankMask&(1<<rank) != 0 {
			for suit := uint8(0); suit < 4; suit++ {
				c := cards.NewCard(rank, suit)
				if !usedCards.HasCard(c) {
					outsMask |= cards.Hand(c)
				}
			}
		}
	}

	return overcardsInfo{HasOvercards: outsMask.CountCards() > 0, OutsMask: outsMask}
}
