package engine

// NextActor implements spec §4.7. players is the stable seat order, indexed
// by seat, and the result is a player ID. dealerSeatIndex locates the
// button for post-flop first-to-act computation. bbSeatIndex/sbSeatIndex
// locate the blinds for preflop first-to-act computation.
func NextActor(bt *BettingTracker, players []*Player, street Street, dealerSeatIndex, sbSeatIndex, bbSeatIndex int) int {
	n := len(players)
	if n == 0 {
		return -1
	}

	lastNonBlind := bt.LastNonBlindActor()
	if lastNonBlind == -1 {
		var first int
		if street == Preflop {
			if n == 2 {
				first = sbSeatIndex
			} else {
				first = (bbSeatIndex + 1) % n
			}
		} else {
			first = (dealerSeatIndex + 1) % n
		}
		return firstActingFrom(players, first)
	}

	lastIdx := seatIndexOf(players, lastNonBlind)
	if lastIdx < 0 {
		return -1
	}
	return firstActingFrom(players, (lastIdx+1)%n)
}

func seatIndexOf(players []*Player, playerID int) int {
	for i, p := range players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// firstActingFrom scans clockwise from idx (inclusive) for the first seat
// still in the acting set, wrapping circularly.
func firstActingFrom(players []*Player, idx int) int {
	n := len(players)
	for i := 0; i < n; i++ {
		cur := (idx + i) % n
		if players[cur].InActingSet() {
			return players[cur].ID
		}
	}
	return -1
}
