package engine

import "sort"

// PotResult is the outcome of a distribution: who won how much, in the
// order layers were resolved (a player can appear more than once across
// side pots).
type PotResult struct {
	Total          int
	Winners        []int // internal, layer-by-layer winners (may repeat)
	DisplayWinners []int // spec §4.8 step 5: the GUI-facing "overall best hand" set
}

// DistributePot implements spec §4.8's contribution-layer algorithm.
// dealerSeatIndex is the index into players (not the player ID) used for
// the clockwise-from-dealer odd-chip rule.
func DistributePot(players []*Player, dealerSeatIndex int) PotResult {
	n := len(players)
	contribution := make([]int, n)
	remaining := make([]int, n)
	total := 0
	for i, p := range players {
		contribution[i] = p.TotalCommitted()
		remaining[i] = contribution[i]
		total += contribution[i]
		p.LastMoneyWon = 0
	}

	var internalWinners []int

	for hasPositive(remaining) {
		level := minPositive(remaining)
		if level == 0 {
			break
		}

		contributorsCount := 0
		for i := range players {
			if remaining[i] >= level {
				contributorsCount++
			}
		}
		if contributorsCount == 0 {
			break
		}

		potLevel := level * contributorsCount
		if potLevel > total {
			potLevel = total
		}

		eligible := make([]int, 0, contributorsCount)
		for i, p := range players {
			if remaining[i] >= level && !p.Folded {
				eligible = append(eligible, i)
			}
		}

		if len(eligible) == 0 {
			// All contributors at this level folded; nothing to award here.
			// Fall through to the fallback distribution below.
			break
		}

		var bestRank uint32
		for _, i := range eligible {
			if players[i].HandRank > bestRank {
				bestRank = players[i].HandRank
			}
		}

		winners := make([]int, 0, len(eligible))
		for _, i := range eligible {
			if players[i].HandRank == bestRank {
				winners = append(winners, i)
			}
		}

		baseShare := potLevel / len(winners)
		remainder := potLevel % len(winners)

		for _, i := range winners {
			players[i].Cash += baseShare
			players[i].LastMoneyWon += baseShare
			internalWinners = append(internalWinners, players[i].ID)
		}
		awardOddChips(players, winners, dealerSeatIndex, remainder)

		for i := range remaining {
			if remaining[i] >= level {
				remaining[i] -= level
			} else {
				remaining[i] = 0
			}
		}

		total -= potLevel
	}

	if total > 0 {
		finalizeFallback(players, internalWinners, dealerSeatIndex, total, &total)
	}

	display := absoluteBestHandWinners(players)

	return PotResult{
		Total:          sumContributions(contribution),
		Winners:        dedupeInts(internalWinners),
		DisplayWinners: display,
	}
}

func hasPositive(xs []int) bool {
	for _, x := range xs {
		if x > 0 {
			return true
		}
	}
	return false
}

func minPositive(xs []int) int {
	min := 0
	for _, x := range xs {
		if x > 0 && (min == 0 || x < min) {
			min = x
		}
	}
	return min
}

func sumContributions(xs []int) int {
	s := 0
	for _, x := range xs {
		s += x
	}
	return s
}

// awardOddChips implements the clockwise-from-dealer odd-chip rule: the
// remainder chips go to the winner seat closest clockwise from the dealer,
// one at a time, so a remainder larger than 1 (never happens with a single
// layer's modulo, but kept general for the fallback path) walks forward.
func awardOddChips(players []*Player, winnerSeatIdx []int, dealerSeatIndex int, remainder int) {
	if remainder <= 0 || len(winnerSeatIdx) == 0 {
		return
	}
	n := len(players)
	winnerSet := map[int]bool{}
	for _, i := range winnerSeatIdx {
		winnerSet[i] = true
	}

	given := 0
	idx := dealerSeatIndex
	for given < remainder {
		idx = (idx + 1) % n
		if winnerSet[idx] {
			players[idx].Cash++
			players[idx].LastMoneyWon++
			given++
			if given >= len(winnerSeatIdx) {
				// More remainder chips than winners can't happen given modulo
				// arithmetic, but guard against an infinite loop regardless.
				break
			}
		}
	}
}

// finalizeFallback implements spec §4.8 step 4: split whatever total is
// left (because a layer had no eligible winner) among the union of winners
// already recorded, or among all non-folded players if none were recorded.
func finalizeFallback(players []*Player, internalWinners []int, dealerSeatIndex int, amount int, totalOut *int) {
	idByID := map[int]int{}
	for i, p := range players {
		idByID[p.ID] = i
	}

	unique := dedupeInts(internalWinners)
	var seats []int
	if len(unique) > 0 {
		for _, id := range unique {
			seats = append(seats, idByID[id])
		}
	} else {
		for i, p := range players {
			if !p.Folded {
				seats = append(seats, i)
			}
		}
	}
	if len(seats) == 0 {
		return
	}
	sort.Ints(seats)

	baseShare := amount / len(seats)
	remainder := amount % len(seats)

	for _, i := range seats {
		players[i].Cash += baseShare
		players[i].LastMoneyWon += baseShare
	}
	awardOddChips(players, seats, dealerSeatIndex, remainder)

	*totalOut = 0
}

func dedupeInts(xs []int) []int {
	seen := map[int]bool{}
	out := make([]int, 0, len(xs))
	for _, x := range xs {
		if !seen[x] {
			seen[x] = true
			out = append(out, x)
		}
	}
	sort.Ints(out)
	return out
}

// absoluteBestHandWinners implements spec §4.8 step 5: the set of
// non-folded players whose HandRank equals the overall maximum, regardless
// of which side pots they actually won chips from.
func absoluteBestHandWinners(players []*Player) []int {
	var best uint32
	for _, p := range players {
		if !p.Folded && p.HandRank > best {
			best = p.HandRank
		}
	}
	if best == 0 {
		return nil
	}
	var out []int
	for _, p := range players {
		if !p.Folded && p.HandRank == best {
			out = append(out, p.ID)
		}
	}
	return out
}
