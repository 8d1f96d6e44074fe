package engine

// AssignPositions implements spec §4.2: offset o = (seatIndex - dealerIdx)
// mod n, mapped to a Position via a fixed per-N table. The table is ported
// directly from the original implementation's
// PositionManager::computePlayerPositionFromOffset (dealer always at offset
// 0) rather than a single linear fill order, since the original's per-N
// tables are not a uniform sequence: a 6-handed table's offset 5 is Cutoff,
// not UnderTheGun+2, and a 7-handed table's offset 4 is Middle, not
// UnderTheGun+1.
func AssignPositions(n, dealerIdx int) []Position {
	positions := make([]Position, n)
	for seat := 0; seat < n; seat++ {
		o := (seat - dealerIdx + n) % n
		positions[seat] = positionFromOffset(o, n)
	}
	return positions
}

func positionFromOffset(offset, nbPlayers int) Position {
	switch nbPlayers {
	case 2:
		if offset == 0 {
			return PositionButtonSmallBlind
		}
		return PositionBigBlind
	case 3:
		switch offset {
		case 0:
			return PositionButton
		case 1:
			return PositionSmallBlind
		default:
			return PositionBigBlind
		}
	case 4:
		switch offset {
		case 0:
			return PositionButton
		case 1:
			return PositionSmallBlind
		case 2:
			return PositionBigBlind
		default:
			return PositionUnderTheGun
		}
	case 5:
		switch offset {
		case 0:
			return PositionButton
		case 1:
			return PositionSmallBlind
		case 2:
			return PositionBigBlind
		case 3:
			return PositionUnderTheGun
		default:
			return PositionCutoff
		}
	case 6:
		switch offset {
		case 0:
			return PositionButton
		case 1:
			return PositionSmallBlind
		case 2:
			return PositionBigBlind
		case 3:
			return PositionUnderTheGun
		case 4:
			return PositionMiddle
		default:
			return PositionCutoff
		}
	case 7:
		switch offset {
		case 0:
			return PositionButton
		case 1:
			return PositionSmallBlind
		case 2:
			return PositionBigBlind
		case 3:
			return PositionUnderTheGun
		case 4:
			return PositionMiddle
		case 5:
			return PositionCutoff
		default:
			return PositionLate
		}
	case 8:
		switch offset {
		case 0:
			return PositionButton
		case 1:
			return PositionSmallBlind
		case 2:
			return PositionBigBlind
		case 3:
			return PositionUnderTheGun
		case 4:
			return PositionUnderTheGunPlus1
		case 5:
			return PositionMiddle
		case 6:
			return PositionCutoff
		default:
			return PositionLate
		}
	case 9:
		switch offset {
		case 0:
			return PositionButton
		case 1:
			return PositionSmallBlind
		case 2:
			return PositionBigBlind
		case 3:
			return PositionUnderTheGun
		case 4:
			return PositionUnderTheGunPlus1
		case 5:
			return PositionUnderTheGunPlus2
		case 6:
			return PositionMiddle
		case 7:
			return PositionCutoff
		default:
			return PositionLate
		}
	default:
		switch {
		case offset == 0:
			return PositionButton
		case offset == 1:
			return PositionSmallBlind
		case offset == 2:
			return PositionBigBlind
		case offset == 3:
			return PositionUnderTheGun
		case offset <= 5:
			return PositionUnderTheGunPlus1
		case offset <= 7:
			return PositionMiddle
		case offset == nbPlayers-2:
			return PositionCutoff
		default:
			return PositionLate
		}
	}
}
