package classification

import "testing"

func TestDetectDraws_FewerThanThreeBoardCardsIsNoDraw(t *testing.T) {
	hole := mustBoard(t, "Ac", "Kc")
	board := mustBoard(t, "2c", "7d")
	info := DetectDraws(hole, board)
	if len(info.Draws) != 1 || info.Draws[0] != NoDraw {
		t.Errorf("DetectDraws() = %v, want [NoDraw]", info.Draws)
	}
}

func TestDetectDraws_NutFlushDraw(t *testing.T) {
	hole := mustBoard(t, "Ac", "Kc")
	board := mustBoard(t, "2c", "7c", "Jd")
	info := DetectDraws(hole, board)

	found := false
	for _, d := range info.Draws {
		if d == NutFlushDraw {
			found = true
		}
	}
	if !found {
		t.Errorf("DetectDraws() = %v, want NutFlushDraw present", info.Draws)
	}
	if info.Outs == 0 {
		t.Error("expected nonzero outs for a flush draw")
	}
}

func TestDetectDraws_OpenEndedStraightDraw(t *testing.T) {
	hole := mustBoard(t, "8c", "9d")
	board := mustBoard(t, "6h", "7s", "2c")
	info := DetectDraws(hole, board)

	found := false
	for _, d := range info.Draws {
		if d == OpenEndedStraightDraw {
			found = true
		}
	}
	if !found {
		t.Errorf("DetectDraws() = %v, want OpenEndedStraightDraw present", info.Draws)
	}
}

func TestDetectDraws_Gutshot(t *testing.T) {
	hole := mustBoard(t, "8c", "Td")
	board := mustBoard(t, "6h", "9s", "2c")
	info := DetectDraws(hole, board)

	found := false
	for _, d := range info.Draws {
		if d == Gutshot {
			found = true
		}
	}
	if !found {
		t.Errorf("DetectDraws() = %v, want Gutshot present", info.Draws)
	}
}

func TestDrawInfo_HasStrongDraw(t *testing.T) {
	info := DrawInfo{Draws: []DrawType{FlushDraw}}
	if !info.HasStrongDraw() {
		t.Error("expected HasStrongDraw true for a flush draw")
	}

	weak := DrawInfo{Draws: []DrawType{Gutshot}}
	if weak.HasStrongDraw() {
		t.Error("did not expect HasStrongDraw true for a lone gutshot")
	}
}

func TestDrawInfo_HasWeakDraw(t *testing.T) {
	info := DrawInfo{Draws: []DrawType{Overcards}}
	if !info.HasWeakDraw() {
		t.Error("expected HasWeakDraw true for overcards")
	}
}

func TestDrawInfo_IsComboDraw(t *testing.T) {
	info := DrawInfo{Draws: []DrawType{FlushDraw, OpenEndedStraightDraw}, Outs: 15}
	if !info.IsComboDraw() {
		t.Error("expected IsComboDraw true with two draws and 15 outs")
	}

	tooFewOuts := DrawInfo{Draws: []DrawType{FlushDraw, OpenEndedStraightDraw}, Outs: 8}
	if tooFewOuts.IsComboDraw() {
		t.Error("did not expect IsComboDraw true with only 8 outs")
	}
}

func TestDrawType_String(t *testing.T) {
	if got := FlushDraw.String(); got != "flush draw" {
		t.Errorf("FlushDraw.String() = %q", got)
	}
	if got := NoDraw.String(); got != "no draw" {
		t.Errorf("NoDraw.String() = %q", got)
	}
}
