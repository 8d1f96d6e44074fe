package store

import "github.com/Marcennaji/HoldemCore-sub002/internal/statistics"

type memoryKey struct {
	strategy string
	class    TableSizeClass
}

// MemoryStore is an in-process PlayersStatisticsStore, grounded on the
// teacher's in-memory pool/stats test doubles: no I/O, safe for repeated
// save/load round-trips in tests.
type MemoryStore struct {
	rows map[memoryKey]statistics.PlayerStatistics
}

// NewMemoryStore builds an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{rows: make(map[memoryKey]statistics.PlayerStatistics)}
}

func (s *MemoryStore) Load(strategyName string) ([11]statistics.PlayerStatistics, error) {
	var out [11]statistics.PlayerStatistics
	hu := s.rows[memoryKey{strategyName, HeadsUp}]
	sh := s.rows[memoryKey{strategyName, ShortHanded}]
	fr := s.rows[memoryKey{strategyName, FullRing}]
	out[2] = hu
	for n := 3; n <= 6; n++ {
		out[n] = sh
	}
	for n := 7; n <= 10; n++ {
		out[n] = fr
	}
	return out, nil
}

func (s *MemoryStore) Save(players []ActingPlayer) error {
	for _, p := range players {
		if p.StrategyName == "" || p.Delta.Preflop.Hands == 0 {
			continue
		}
		key := memoryKey{p.StrategyName, p.TableSize}
		row := s.rows[key]
		addCounters(&row.Preflop, p.Delta.Preflop)
		addCounters(&row.Flop, p.Delta.Flop)
		addCounters(&row.Turn, p.Delta.Turn)
		addCounters(&row.River, p.Delta.River)
		row.AvgBetSizeRatio = p.Delta.AvgBetSizeRatio
		row.HandsPlayed += p.Delta.HandsPlayed
		row.ShowdownsSeen += p.Delta.ShowdownsSeen
		row.ShowdownsWon += p.Delta.ShowdownsWon
		s.rows[key] = row
	}
	return nil
}

// addCounters folds delta into dst field-by-field, since
// statistics.StreetCounters keeps its add/sub helpers package-private.
func addCounters(dst *statistics.StreetCounters, delta statistics.StreetCounters) {
	dst.Hands += delta.Hands
	dst.Checks += delta.Checks
	dst.Calls += delta.Calls
	dst.Raises += delta.Raises
	dst.Folds += delta.Folds
	dst.Bets += delta.Bets
	dst.ThreeBets += delta.ThreeBets
	dst.ThreeBetOpportunities += delta.ThreeBetOpportunities
	dst.CallThreeBets += delta.CallThreeBets
	dst.CallThreeBetOpportunities += delta.CallThreeBetOpportunities
	dst.FourBets += delta.FourBets
	dst.Limps += delta.Limps
	dst.ContinuationBets += delta.ContinuationBets
	dst.ContinuationBetOpportunities += delta.ContinuationBetOpportunities
}

func (s *MemoryStore) Close() error { return nil }
