package engine

import (
	"math/rand"
	"testing"
)

func TestNewHand_PostsBlindsAndDealsHoleCards(t *testing.T) {
	h, err := NewHand(rand.New(rand.NewSource(1)), []string{"a", "b"}, 0, 5, 10, WithUniformChips(1000))
	if err != nil {
		t.Fatalf("NewHand: %v", err)
	}
	if h.Street != Preflop {
		t.Fatalf("Street = %v, want Preflop", h.Street)
	}
	sb, bb := h.Seats[h.sbSeatIndex()], h.Seats[h.bbSeatIndex()]
	if sb.BetInRound != 5 {
		t.Errorf("SB BetInRound = %d, want 5", sb.BetInRound)
	}
	if bb.BetInRound != 10 {
		t.Errorf("BB BetInRound = %d, want 10", bb.BetInRound)
	}
	for _, p := range h.Seats {
		if p.HoleCards.CountCards() != 2 {
			t.Errorf("player %d has %d hole cards, want 2", p.ID, p.HoleCards.CountCards())
		}
	}
}

func TestHand_ProcessAction_OutOfTurnIsRejected(t *testing.T) {
	h, err := NewHand(rand.New(rand.NewSource(1)), []string{"a", "b", "c"}, 0, 5, 10, WithUniformChips(1000))
	if err != nil {
		t.Fatalf("NewHand: %v", err)
	}
	next := h.NextToAct()
	wrong := (next + 1) % 3

	err = h.ProcessAction(wrong, ActionCall, 0)
	if err != ReasonOutOfTurn {
		t.Errorf("ProcessAction() = %v, want ReasonOutOfTurn", err)
	}
}

func TestHand_PlaysToCompletion_HeadsUpAllChecksAndCalls(t *testing.T) {
	h, err := NewHand(rand.New(rand.NewSource(7)), []string{"a", "b"}, 0, 5, 10, WithUniformChips(1000))
	if err != nil {
		t.Fatalf("NewHand: %v", err)
	}

	for !h.IsComplete() {
		next := h.NextToAct()
		if next < 0 {
			t.Fatal("NextToAct() returned -1 before the hand completed")
		}
		legal := h.LegalActions(next)
		kind := ActionCheck
		hasCheck := false
		for _, k := range legal {
			if k == ActionCheck {
				hasCheck = true
			}
		}
		if !hasCheck {
			kind = ActionCall
		}
		if err := h.ProcessAction(next, kind, 0); err != nil {
			t.Fatalf("ProcessAction(%d, %v): %v", next, kind, err)
		}
	}

	if h.Board.CountCards() != 5 {
		t.Errorf("final board has %d cards, want 5", h.Board.CountCards())
	}

	total := 0
	for _, p := range h.Seats {
		total += p.Cash
	}
	if total != 2000 {
		t.Errorf("total chips after the hand = %d, want 2000 (conserved)", total)
	}
}

func TestHand_FoldEndsHandImmediatelyWithoutShowdown(t *testing.T) {
	h, err := NewHand(rand.New(rand.NewSource(3)), []string{"a", "b"}, 0, 5, 10, WithUniformChips(1000))
	if err != nil {
		t.Fatalf("NewHand: %v", err)
	}

	next := h.NextToAct()
	if err := h.ProcessAction(next, ActionFold, 0); err != nil {
		t.Fatalf("ProcessAction(fold): %v", err)
	}

	if !h.IsComplete() {
		t.Fatal("expected hand complete immediately after a heads-up fold")
	}

	total := 0
	for _, p := range h.Seats {
		total += p.Cash
		if p.WentToShowdown {
			t.Errorf("player %d went to showdown, want none after a fold-out", p.ID)
		}
	}
	if total != 2000 {
		t.Errorf("total chips = %d, want 2000 (conserved)", total)
	}
}

func TestHand_AllInRunoutDealsRemainingStreetsWithoutFurtherActions(t *testing.T) {
	h, err := NewHand(rand.New(rand.NewSource(11)), []string{"a", "b"}, 0, 5, 10, WithUniformChips(100))
	if err != nil {
		t.Fatalf("NewHand: %v", err)
	}

	next := h.NextToAct()
	if err := h.ProcessAction(next, ActionAllIn, 0); err != nil {
		t.Fatalf("ProcessAction(all-in): %v", err)
	}
	next = h.NextToAct()
	if err := h.ProcessAction(next, ActionCall, 0); err != nil {
		t.Fatalf("ProcessAction(call all-in): %v", err)
	}

	if !h.IsComplete() {
		t.Fatal("expected the hand complete after both players are all-in")
	}
	if h.Board.CountCards() != 5 {
		t.Errorf("board has %d cards after an all-in runout, want 5", h.Board.CountCards())
	}
}

func TestHand_LegalActions_UnknownPlayerReturnsNil(t *testing.T) {
	h, err := NewHand(rand.New(rand.NewSource(1)), []string{"a", "b"}, 0, 5, 10, WithUniformChips(1000))
	if err != nil {
		t.Fatalf("NewHand: %v", err)
	}
	if got := h.LegalActions(999); got != nil {
		t.Errorf("LegalActions(unknown) = %v, want nil", got)
	}
}
