// Package store implements the PlayersStatisticsStore port (spec §4.11,
// §6.2): per-strategy, per-table-size-class delta persistence of
// PlayerStatistics, with an in-memory implementation for tests and a
// modernc.org/sqlite-backed implementation for real runs.
package store

import "github.com/Marcennaji/HoldemCore-sub002/internal/statistics"

// ActingPlayer is what Save needs about one player at hand end: its
// strategy name, table-size class, and the delta to persist.
type ActingPlayer struct {
	StrategyName string
	TableSize    TableSizeClass
	Delta        statistics.PlayerStatistics
}

// TableSizeClass mirrors engine.TableSizeClass without importing engine, so
// store stays a leaf package the session layer alone wires together.
type TableSizeClass int

const (
	HeadsUp TableSizeClass = iota
	ShortHanded
	FullRing
)

func (c TableSizeClass) String() string {
	switch c {
	case HeadsUp:
		return "HU"
	case ShortHanded:
		return "SH"
	case FullRing:
		return "FR"
	default:
		return "?"
	}
}

// ClassifyTableSize buckets a seat count into its statistics class (spec
// §4.11: HU if N=2, SH if 3<=N<=6, FR if N>=7).
func ClassifyTableSize(n int) TableSizeClass {
	switch {
	case n == 2:
		return HeadsUp
	case n <= 6:
		return ShortHanded
	default:
		return FullRing
	}
}

// PlayersStatisticsStore is the persistence port (spec §6.2).
type PlayersStatisticsStore interface {
	// Load returns the saved PlayerStatistics for strategyName, indexed
	// 2..10 by seat count (spec §4.11: index 2 is the HU row; 3..6 all
	// alias the SH row; 7..10 all alias the FR row).
	Load(strategyName string) ([11]statistics.PlayerStatistics, error)

	// Save upserts every acting player's delta. A player with an empty or
	// "" strategy name, or a zero preflop-hands delta, is skipped (spec
	// §4.11).
	Save(players []ActingPlayer) error

	Close() error
}
