package store

import (
	"database/sql"
	"fmt"

	"golang.org/x/sync/singleflight"
	_ "modernc.org/sqlite"

	"github.com/Marcennaji/HoldemCore-sub002/internal/statistics"
)

// schema is the single table spec §6.2 names: one row per (strategy_name,
// table_type), the integer counters listed below, and a REAL
// avg_bet_size_ratio. Not every StreetCounters field has a column: flop,
// turn and river omit the three-bet, four-bet and limp counters, and turn
// and river also omit the continuation-bet counters. Column names mirror the teacher's C++
// SqlitePlayersStatisticsStore field naming (pf_/fl_/tn_/rv_ prefixes per
// street).
const schema = `
CREATE TABLE IF NOT EXISTS player_statistics (
	strategy_name TEXT NOT NULL,
	table_type    TEXT NOT NULL,

	pf_hands INTEGER NOT NULL DEFAULT 0,
	pf_checks INTEGER NOT NULL DEFAULT 0,
	pf_calls INTEGER NOT NULL DEFAULT 0,
	pf_raises INTEGER NOT NULL DEFAULT 0,
	pf_folds INTEGER NOT NULL DEFAULT 0,
	pf_bets INTEGER NOT NULL DEFAULT 0,
	pf_three_bets INTEGER NOT NULL DEFAULT 0,
	pf_three_bet_opportunities INTEGER NOT NULL DEFAULT 0,
	pf_call_three_bets INTEGER NOT NULL DEFAULT 0,
	pf_call_three_bet_opportunities INTEGER NOT NULL DEFAULT 0,
	pf_four_bets INTEGER NOT NULL DEFAULT 0,
	pf_limps INTEGER NOT NULL DEFAULT 0,

	fl_hands INTEGER NOT NULL DEFAULT 0,
	fl_checks INTEGER NOT NULL DEFAULT 0,
	fl_calls INTEGER NOT NULL DEFAULT 0,
	fl_raises INTEGER NOT NULL DEFAULT 0,
	fl_folds INTEGER NOT NULL DEFAULT 0,
	fl_bets INTEGER NOT NULL DEFAULT 0,
	fl_continuation_bets INTEGER NOT NULL DEFAULT 0,
	fl_continuation_bet_opportunities INTEGER NOT NULL DEFAULT 0,

	tn_hands INTEGER NOT NULL DEFAULT 0,
	tn_checks INTEGER NOT NULL DEFAULT 0,
	tn_calls INTEGER NOT NULL DEFAULT 0,
	tn_raises INTEGER NOT NULL DEFAULT 0,
	tn_folds INTEGER NOT NULL DEFAULT 0,
	tn_bets INTEGER NOT NULL DEFAULT 0,

	rv_hands INTEGER NOT NULL DEFAULT 0,
	rv_checks INTEGER NOT NULL DEFAULT 0,
	rv_calls INTEGER NOT NULL DEFAULT 0,
	rv_raises INTEGER NOT NULL DEFAULT 0,
	rv_folds INTEGER NOT NULL DEFAULT 0,
	rv_bets INTEGER NOT NULL DEFAULT 0,

	avg_bet_size_ratio REAL NOT NULL DEFAULT 0,

	hands_played INTEGER NOT NULL DEFAULT 0,
	sd_seen INTEGER NOT NULL DEFAULT 0,
	sd_won INTEGER NOT NULL DEFAULT 0,

	PRIMARY KEY (strategy_name, table_type)
);
`

// SqliteStore is the real PlayersStatisticsStore backend (spec §6.2),
// grounded on the C++ SqlitePlayersStatisticsStore's upsert-delta shape but
// using modernc.org/sqlite's pure-Go driver instead of cgo sqlite3.
type SqliteStore struct {
	db *sql.DB

	// loadGroup coalesces concurrent Load calls for the same strategy name
	// into a single query, so a bank of bot strategies all reading their
	// baseline at session start doesn't serialize N identical round trips
	// to disk.
	loadGroup singleflight.Group
}

// OpenSqliteStore opens (creating if needed) the statistics database at
// path and ensures its schema exists.
func OpenSqliteStore(path string) (*SqliteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: creating schema: %w", err)
	}
	return &SqliteStore{db: db}, nil
}

func (s *SqliteStore) Close() error { return s.db.Close() }

func (s *SqliteStore) Load(strategyName string) ([11]statistics.PlayerStatistics, error) {
	out, err, _ := s.loadGroup.Do(strategyName, func() (interface{}, error) {
		return s.loadUncoalesced(strategyName)
	})
	if err != nil {
		return [11]statistics.PlayerStatistics{}, err
	}
	return out.([11]statistics.PlayerStatistics), nil
}

func (s *SqliteStore) loadUncoalesced(strategyName string) ([11]statistics.PlayerStatistics, error) {
	var out [11]statistics.PlayerStatistics

	rows, err := s.db.Query(`SELECT table_type,
		pf_hands, pf_checks, pf_calls, pf_raises, pf_folds, pf_bets,
		pf_three_bets, pf_three_bet_opportunities, pf_call_three_bets, pf_call_three_bet_opportunities,
		pf_four_bets, pf_limps,
		fl_hands, fl_checks, fl_calls, fl_raises, fl_folds, fl_bets,
		fl_continuation_bets, fl_continuation_bet_opportunities,
		tn_hands, tn_checks, tn_calls, tn_raises, tn_folds, tn_bets,
		rv_hands, rv_checks, rv_calls, rv_raises, rv_folds, rv_bets,
		avg_bet_size_ratio, hands_played, sd_seen, sd_won
		FROM player_statistics WHERE strategy_name = ?`, strategyName)
	if err != nil {
		return out, fmt.Errorf("store: loading %s: %w", strategyName, err)
	}
	defer rows.Close()

	for rows.Next() {
		var tableType string
		var ps statistics.PlayerStatistics
		if err := rows.Scan(&tableType,
			&ps.Preflop.Hands, &ps.Preflop.Checks, &ps.Preflop.Calls, &ps.Preflop.Raises, &ps.Preflop.Folds, &ps.Preflop.Bets,
			&ps.Preflop.ThreeBets, &ps.Preflop.ThreeBetOpportunities, &ps.Preflop.CallThreeBets, &ps.Preflop.CallThreeBetOpportunities,
			&ps.Preflop.FourBets, &ps.Preflop.Limps,
			&ps.Flop.Hands, &ps.Flop.Checks, &ps.Flop.Calls, &ps.Flop.Raises, &ps.Flop.Folds, &ps.Flop.Bets,
			&ps.Flop.ContinuationBets, &ps.Flop.ContinuationBetOpportunities,
			&ps.Turn.Hands, &ps.Turn.Checks, &ps.Turn.Calls, &ps.Turn.Raises, &ps.Turn.Folds, &ps.Turn.Bets,
			&ps.River.Hands, &ps.River.Checks, &ps.River.Calls, &ps.River.Raises, &ps.River.Folds, &ps.River.Bets,
			&ps.AvgBetSizeRatio, &ps.HandsPlayed, &ps.ShowdownsSeen, &ps.ShowdownsWon,
		); err != nil {
			return out, fmt.Errorf("store: scanning row: %w", err)
		}

		switch tableType {
		case "HU":
			out[2] = ps
		case "SH":
			for n := 3; n <= 6; n++ {
				out[n] = ps
			}
		case "FR":
			for n := 7; n <= 10; n++ {
				out[n] = ps
			}
		}
	}
	return out, rows.Err()
}

// Save upserts every acting player's delta via INSERT OR IGNORE followed by
// an atomic UPDATE ... SET col = col + ? (spec §6.2), skipping any player
// with an empty strategy name or a zero preflop-hands delta (spec §4.11).
func (s *SqliteStore) Save(players []ActingPlayer) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("store: begin: %w", err)
	}
	defer tx.Rollback()

	for _, p := range players {
		if p.StrategyName == "" || p.Delta.Preflop.Hands == 0 {
			continue
		}
		tableType := p.TableSize.String()

		if _, err := tx.Exec(`INSERT OR IGNORE INTO player_statistics (strategy_name, table_type) VALUES (?, ?)`,
			p.StrategyName, tableType); err != nil {
			return fmt.Errorf("store: insert-or-ignore: %w", err)
		}

		d := p.Delta
		_, err := tx.Exec(`UPDATE player_statistics SET
			pf_hands = pf_hands + ?, pf_checks = pf_checks + ?, pf_calls = pf_calls + ?, pf_raises = pf_raises + ?,
			pf_folds = pf_folds + ?, pf_bets = pf_bets + ?,
			pf_three_bets = pf_three_bets + ?, pf_three_bet_opportunities = pf_three_bet_opportunities + ?,
			pf_call_three_bets = pf_call_three_bets + ?, pf_call_three_bet_opportunities = pf_call_three_bet_opportunities + ?,
			pf_four_bets = pf_four_bets + ?, pf_limps = pf_limps + ?,
			fl_hands = fl_hands + ?, fl_checks = fl_checks + ?, fl_calls = fl_calls + ?, fl_raises = fl_raises + ?,
			fl_folds = fl_folds + ?, fl_bets = fl_bets + ?,
			fl_continuation_bets = fl_continuation_bets + ?, fl_continuation_bet_opportunities = fl_continuation_bet_opportunities + ?,
			tn_hands = tn_hands + ?, tn_checks = tn_checks + ?, tn_calls = tn_calls + ?, tn_raises = tn_raises + ?,
			tn_folds = tn_folds + ?, tn_bets = tn_bets + ?,
			rv_hands = rv_hands + ?, rv_checks = rv_checks + ?, rv_calls = rv_calls + ?, rv_raises = rv_raises + ?,
			rv_folds = rv_folds + ?, rv_bets = rv_bets + ?,
			avg_bet_size_ratio = ?,
			hands_played = hands_played + ?, sd_seen = sd_seen + ?, sd_won = sd_won + ?
			WHERE strategy_name = ? AND table_type = ?`,
			d.Preflop.Hands, d.Preflop.Checks, d.Preflop.Calls, d.Preflop.Raises, d.Preflop.Folds, d.Preflop.Bets,
			d.Preflop.ThreeBets, d.Preflop.ThreeBetOpportunities, d.Preflop.CallThreeBets, d.Preflop.CallThreeBetOpportunities,
			d.Preflop.FourBets, d.Preflop.Limps,
			d.Flop.Hands, d.Flop.Checks, d.Flop.Calls, d.Flop.Raises, d.Flop.Folds, d.Flop.Bets,
			d.Flop.ContinuationBets, d.Flop.ContinuationBetOpportunities,
			d.Turn.Hands, d.Turn.Checks, d.Turn.Calls, d.Turn.Raises, d.Turn.Folds, d.Turn.Bets,
			d.River.Hands, d.River.Checks, d.River.Calls, d.River.Raises, d.River.Folds, d.River.Bets,
			d.AvgBetSizeRatio,
			d.HandsPlayed, d.ShowdownsSeen, d.ShowdownsWon,
			p.StrategyName, tableType,
		)
		if err != nil {
			return fmt.Errorf("store: update delta for %s/%s: %w", p.StrategyName, tableType, err)
		}
	}

	return tx.Commit()
}
