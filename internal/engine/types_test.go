package engine

import "testing"

func TestClassifyTableSize(t *testing.T) {
	cases := map[int]TableSizeClass{
		2: HeadsUp, 5: ShortHanded, 6: ShortHanded, 7: FullRing, 9: FullRing,
	}
	for n, want := range cases {
		if got := ClassifyTableSize(n); got != want {
			t.Errorf("ClassifyTableSize(%d) = %v, want %v", n, got, want)
		}
	}
}

func TestPlayer_TotalCommitted(t *testing.T) {
	p := &Player{CashAtHandStart: 100, Cash: 40}
	if got := p.TotalCommitted(); got != 60 {
		t.Errorf("TotalCommitted() = %d, want 60", got)
	}
}

func TestPlayer_InActingSet(t *testing.T) {
	p := &Player{Cash: 100}
	if !p.InActingSet() {
		t.Error("expected InActingSet true for an active player")
	}
	p.Folded = true
	if p.InActingSet() {
		t.Error("expected InActingSet false once folded")
	}
	p.Folded = false
	p.AllIn = true
	if p.InActingSet() {
		t.Error("expected InActingSet false once all-in")
	}
}

func TestPlayer_ResetForNewHand_ClearsTransientStateButKeepsStack(t *testing.T) {
	p := &Player{
		ID: 1, Cash: 250, CashAtHandStart: 200,
		Folded: true, AllIn: true, BetInRound: 40,
		LastAction: ActionRaise, WentToShowdown: true, WonShowdown: true,
	}
	p.Actions[Preflop] = []StreetActionLog{{Kind: ActionRaise, Amount: 40}}

	p.ResetForNewHand()

	if p.Folded || p.AllIn || p.BetInRound != 0 {
		t.Error("expected per-hand transient flags cleared")
	}
	if p.LastAction != ActionNone {
		t.Errorf("LastAction = %v, want ActionNone", p.LastAction)
	}
	if len(p.Actions[Preflop]) != 0 {
		t.Error("expected Actions cleared")
	}
	if p.Cash != 250 {
		t.Errorf("Cash = %d, want 250 (stack must persist across hands)", p.Cash)
	}
}

func TestRejectReason_Error(t *testing.T) {
	if ReasonBelowMinimumRaise.Error() != "below minimum raise" {
		t.Errorf("Error() = %q", ReasonBelowMinimumRaise.Error())
	}
	if ReasonNone.Error() != "unknown rejection" {
		t.Errorf("ReasonNone.Error() = %q, want the default case text", ReasonNone.Error())
	}
}

func TestStreet_String(t *testing.T) {
	if Preflop.String() != "preflop" || PostRiver.String() != "postriver" {
		t.Error("unexpected Street.String() output")
	}
}

func TestActionKind_String(t *testing.T) {
	if ActionAllIn.String() != "all_in" {
		t.Errorf("ActionAllIn.String() = %q, want all_in", ActionAllIn.String())
	}
}
