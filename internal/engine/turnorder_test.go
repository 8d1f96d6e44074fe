package engine

import "testing"

func TestNextActor_PreflopHeadsUpStartsAtSmallBlind(t *testing.T) {
	bt := NewBettingTracker(10)
	bt.ResetForRound(Preflop)

	players := []*Player{
		newTestPlayer(1, 100), // seat 0, SB/BTN
		newTestPlayer(2, 100), // seat 1, BB
	}

	got := NextActor(bt, players, Preflop, 0, 0, 1)
	if got != 1 {
		t.Errorf("NextActor() = %d, want 1 (player id at seat 0)", got)
	}
}

func TestNextActor_PreflopMultiwayStartsLeftOfBigBlind(t *testing.T) {
	bt := NewBettingTracker(10)
	bt.ResetForRound(Preflop)

	players := []*Player{
		newTestPlayer(1, 100), // seat 0, BTN
		newTestPlayer(2, 100), // seat 1, SB
		newTestPlayer(3, 100), // seat 2, BB
		newTestPlayer(4, 100), // seat 3, UTG
	}

	got := NextActor(bt, players, Preflop, 0, 1, 2)
	if got != 4 {
		t.Errorf("NextActor() = %d, want 4 (UTG)", got)
	}
}

func TestNextActor_PostflopStartsLeftOfDealer(t *testing.T) {
	bt := NewBettingTracker(10)
	bt.ResetForRound(Flop)

	players := []*Player{
		newTestPlayer(1, 100),
		newTestPlayer(2, 100),
		newTestPlayer(3, 100),
	}

	got := NextActor(bt, players, Flop, 0, 1, 2)
	if got != 2 {
		t.Errorf("NextActor() = %d, want 2 (seat left of dealer)", got)
	}
}

func TestNextActor_SkipsFoldedAndAllInPlayers(t *testing.T) {
	bt := NewBettingTracker(10)
	bt.ResetForRound(Flop)

	p1 := newTestPlayer(1, 100)
	p2 := newTestPlayer(2, 100)
	p2.Folded = true
	p3 := newTestPlayer(3, 100)
	players := []*Player{p1, p2, p3}

	got := NextActor(bt, players, Flop, 0, 1, 2)
	if got != 3 {
		t.Errorf("NextActor() = %d, want 3 (seat 1 folded, skipped)", got)
	}
}

func TestNextActor_ContinuesClockwiseFromLastNonBlindActor(t *testing.T) {
	bt := NewBettingTracker(10)
	bt.ResetForRound(Flop)
	bt.RecordAction(1, ActionCheck)

	players := []*Player{
		newTestPlayer(1, 100),
		newTestPlayer(2, 100),
		newTestPlayer(3, 100),
	}

	got := NextActor(bt, players, Flop, 0, 1, 2)
	if got != 2 {
		t.Errorf("NextActor() = %d, want 2 (next after player 1 acted)", got)
	}
}
