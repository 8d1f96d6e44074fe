package oracle

import (
	"testing"

	"github.com/Marcennaji/HoldemCore-sub002/internal/cards"
)

func mustHand(t *testing.T, cardStrings ...string) cards.Hand {
	t.Helper()
	var h cards.Hand
	for _, s := range cardStrings {
		c, err := cards.ParseCard(s)
		if err != nil {
			t.Fatalf("ParseCard(%q): %v", s, err)
		}
		h.AddCard(c)
	}
	return h
}

func TestRankHand_RoyalFlushBeatsHighCard(t *testing.T) {
	o := New()

	royal := mustHand(t, "As", "Ks", "Qs", "Js", "Ts", "2c", "3d")
	highCard := mustHand(t, "2c", "4d", "7h", "9s", "Jc", "3h", "5d")

	if o.RankHand(royal) <= o.RankHand(highCard) {
		t.Error("expected royal flush to outrank a no-pair hand")
	}
}

func TestRankHand_FourOfAKindBeatsFlush(t *testing.T) {
	o := New()

	quads := mustHand(t, "As", "Ac", "Ad", "Ah", "2c", "3d", "4h")
	flush := mustHand(t, "2s", "4s", "7s", "9s", "Js", "3h", "6d")

	if o.RankHand(quads) <= o.RankHand(flush) {
		t.Error("expected four of a kind to outrank a flush")
	}
}

func TestRankHand_PairBeatsHighCard(t *testing.T) {
	o := New()

	pair := mustHand(t, "Ks", "Kc", "2d", "4h", "7c", "9s", "Jd")
	highCard := mustHand(t, "2c", "4d", "7h", "9s", "Jc", "Qh", "3d")

	if o.RankHand(pair) <= o.RankHand(highCard) {
		t.Error("expected one pair to outrank no pair")
	}
}

func TestRankHand_HigherIsBetterConventionHoldsAtTheExtremes(t *testing.T) {
	o := New()

	best := mustHand(t, "As", "Ks", "Qs", "Js", "Ts", "2c", "3d")
	worst := mustHand(t, "7c", "2d", "9h", "4s", "Jc", "3h", "5d")

	if o.RankHand(worst) >= o.RankHand(best) {
		t.Error("expected the weakest sampled hand to rank below the strongest")
	}
}

func TestEncodeSevenCardString_SpaceSeparatedCards(t *testing.T) {
	h := mustHand(t, "As", "Kd")
	got := EncodeSevenCardString(h)
	if got != "As Kd" {
		t.Errorf("EncodeSevenCardString = %q, want \"As Kd\"", got)
	}
}
