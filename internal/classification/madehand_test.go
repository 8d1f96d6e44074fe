package classification

import "testing"

func TestClassifyMadeHand_EmptyHoleCardsReportsNoFlags(t *testing.T) {
	var hole, board =
		mustBoard(t),
		mustBoard(t, "2c", "7d", "Jh")
	flags := ClassifyMadeHand(hole, board)
	if flags.Pair || flags.Overpair || flags.Set {
		t.Errorf("expected all-false flags with no hole cards, got %+v", flags)
	}
}

func TestClassifyMadeHand_PreflopPocketPairRegistersOverpair(t *testing.T) {
	hole := mustBoard(t, "Ac", "Ad")
	var board = mustBoard(t)

	flags := ClassifyMadeHand(hole, board)
	if !flags.Pair {
		t.Error("expected Pair true for a preflop pocket pair")
	}
	if !flags.Overpair {
		t.Error("expected Overpair true for a preflop pocket pair (no board to be above it)")
	}
	if !flags.UsesHoleCards {
		t.Error("expected UsesHoleCards true")
	}
}

func TestClassifyMadeHand_SetWithHoleCardsPlusOneBoardCard(t *testing.T) {
	hole := mustBoard(t, "7c", "7d")
	board := mustBoard(t, "7h", "2s", "9c")

	flags := ClassifyMadeHand(hole, board)
	if !flags.Set {
		t.Error("expected Set true")
	}
	if !flags.UsesHoleCards {
		t.Error("expected UsesHoleCards true")
	}
}

func TestClassifyMadeHand_TwoPair(t *testing.T) {
	hole := mustBoard(t, "Kc", "9d")
	board := mustBoard(t, "Kh", "9s", "2c")

	flags := ClassifyMadeHand(hole, board)
	if !flags.TwoPair {
		t.Error("expected TwoPair true")
	}
}

func TestClassifyMadeHand_FullHouseFromTripsPlusPair(t *testing.T) {
	hole := mustBoard(t, "7c", "7d")
	board := mustBoard(t, "7h", "2s", "2c")

	flags := ClassifyMadeHand(hole, board)
	if !flags.FullHouse {
		t.Error("expected FullHouse true")
	}
}

func TestClassifyMadeHand_BoardPairDoesNotRegisterHolePair(t *testing.T) {
	hole := mustBoard(t, "Ac", "Kd")
	board := mustBoard(t, "2h", "2s", "9c")

	flags := ClassifyMadeHand(hole, board)
	if flags.Pair {
		t.Error("did not expect Pair true when the pair is entirely on the board")
	}
}

func TestClassifyMadeHand_Flush(t *testing.T) {
	hole := mustBoard(t, "2c", "9c")
	board := mustBoard(t, "5c", "Jc", "Kc")

	flags := ClassifyMadeHand(hole, board)
	if !flags.Flush {
		t.Error("expected Flush true")
	}
}

func TestClassifyMadeHand_Straight(t *testing.T) {
	hole := mustBoard(t, "5c", "6d")
	board := mustBoard(t, "7h", "8s", "9c")

	flags := ClassifyMadeHand(hole, board)
	if !flags.Straight {
		t.Error("expected Straight true")
	}
}

func TestClassifyMadeHand_NoMadeHand(t *testing.T) {
	hole := mustBoard(t, "2c", "9d")
	board := mustBoard(t, "5h", "Js", "Kc")

	flags := ClassifyMadeHand(hole, board)
	if flags.Pair || flags.TwoPair || flags.Set || flags.Straight || flags.Flush || flags.FullHouse || flags.Quads {
		t.Errorf("expected no made-hand flags, got %+v", flags)
	}
}
