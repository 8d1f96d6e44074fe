package statistics

import (
	"math"
	"testing"

	"github.com/Marcennaji/HoldemCore-sub002/internal/engine"
)

func TestPlayerStatisticsUpdater_RecordAction(t *testing.T) {
	u := NewPlayerStatisticsUpdater(PlayerStatistics{})

	u.RecordAction(engine.Preflop, engine.ActionRaise, 6, 3)
	u.RecordAction(engine.Flop, engine.ActionBet, 10, 20)
	u.RecordAction(engine.Flop, engine.ActionCheck, 0, 0)

	cur := u.Current()
	if cur.Preflop.Raises != 1 {
		t.Errorf("expected 1 preflop raise, got %d", cur.Preflop.Raises)
	}
	if cur.Preflop.Hands != 1 {
		t.Errorf("expected hands marker set on first action, got %d", cur.Preflop.Hands)
	}
	if cur.Flop.Bets != 1 || cur.Flop.Checks != 1 {
		t.Errorf("expected 1 flop bet and 1 flop check, got bets=%d checks=%d", cur.Flop.Bets, cur.Flop.Checks)
	}
	if math.Abs(cur.AvgBetSizeRatio-0.5) > 1e-9 {
		t.Errorf("expected avg bet size ratio 0.5 (10/20), got %f", cur.AvgBetSizeRatio)
	}
}

func TestPlayerStatisticsUpdater_DeltaResetsBaseline(t *testing.T) {
	u := NewPlayerStatisticsUpdater(PlayerStatistics{})

	u.RecordAction(engine.Preflop, engine.ActionRaise, 6, 3)
	first := u.GetStatisticsDeltaAndUpdateBaseline()
	if first.Preflop.Raises != 1 {
		t.Errorf("expected first delta to carry the 1 raise, got %d", first.Preflop.Raises)
	}

	second := u.GetStatisticsDeltaAndUpdateBaseline()
	if second.Preflop.Raises != 0 {
		t.Errorf("expected second delta to be empty after baseline advanced, got %d", second.Preflop.Raises)
	}

	u.RecordAction(engine.Preflop, engine.ActionCall, 2, 6)
	third := u.GetStatisticsDeltaAndUpdateBaseline()
	if third.Preflop.Calls != 1 || third.Preflop.Raises != 0 {
		t.Errorf("expected third delta to carry only the new call, got calls=%d raises=%d", third.Preflop.Calls, third.Preflop.Raises)
	}
	if u.Current().Preflop.Raises != 1 {
		t.Errorf("expected cumulative total to still hold the first raise, got %d", u.Current().Preflop.Raises)
	}
}

func TestAggressionFactor(t *testing.T) {
	s := PlayerStatistics{
		Preflop: StreetCounters{Raises: 2, Calls: 1},
		Flop:    StreetCounters{Bets: 1},
	}
	// (raises+bets)/calls = (2+1)/1 = 3
	if got := AggressionFactor(s); got != 3 {
		t.Errorf("expected AF 3, got %f", got)
	}
}

func TestAggressionFactor_NoCalls(t *testing.T) {
	s := PlayerStatistics{Preflop: StreetCounters{Raises: 2}}
	if got := AggressionFactor(s); got != 2 {
		t.Errorf("expected AF to fall back to raw raise+bet count 2 when calls is 0, got %f", got)
	}
}

func TestAggressionFactor_Empty(t *testing.T) {
	if got := AggressionFactor(PlayerStatistics{}); got != 0 {
		t.Errorf("expected AF 0 for no activity, got %f", got)
	}
}

func TestAggressionFrequency(t *testing.T) {
	s := PlayerStatistics{
		Preflop: StreetCounters{Raises: 1, Calls: 1, Checks: 1, Folds: 1},
	}
	// (raises+bets)/total = 1/4 = 25%
	if got := AggressionFrequency(s); got != 25 {
		t.Errorf("expected AFreq 25, got %f", got)
	}
}

func TestPlayerStatisticsUpdater_RecordHandResult(t *testing.T) {
	u := NewPlayerStatisticsUpdater(PlayerStatistics{})

	u.RecordHandResult(false, false) // folded before showdown
	u.RecordHandResult(true, false)  // reached showdown, lost
	u.RecordHandResult(true, true)   // reached showdown, won

	cur := u.Current()
	if cur.HandsPlayed != 3 {
		t.Errorf("expected 3 hands played, got %d", cur.HandsPlayed)
	}
	if cur.ShowdownsSeen != 2 {
		t.Errorf("expected 2 showdowns seen, got %d", cur.ShowdownsSeen)
	}
	if cur.ShowdownsWon != 1 {
		t.Errorf("expected 1 showdown won, got %d", cur.ShowdownsWon)
	}
}

func TestWentToShowdownPct(t *testing.T) {
	if got := WentToShowdownPct(PlayerStatistics{}); got != 0 {
		t.Errorf("expected 0 for no hands played, got %f", got)
	}
	s := PlayerStatistics{HandsPlayed: 4, ShowdownsSeen: 1}
	if got := WentToShowdownPct(s); got != 25 {
		t.Errorf("expected 25, got %f", got)
	}
}

func TestWonShowdownPct(t *testing.T) {
	if got := WonShowdownPct(PlayerStatistics{}); got != 0 {
		t.Errorf("expected 0 for no showdowns seen, got %f", got)
	}
	s := PlayerStatistics{ShowdownsSeen: 4, ShowdownsWon: 3}
	if got := WonShowdownPct(s); got != 75 {
		t.Errorf("expected 75, got %f", got)
	}
}

func TestStreetCounters_SubRoundTrip(t *testing.T) {
	baseline := StreetCounters{Hands: 10, Calls: 4, Raises: 2}
	current := StreetCounters{Hands: 15, Calls: 6, Raises: 3}

	delta := current.sub(baseline)
	if delta.Hands != 5 || delta.Calls != 2 || delta.Raises != 1 {
		t.Errorf("unexpected delta: %+v", delta)
	}
}
