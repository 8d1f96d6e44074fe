package session

import (
	"math/rand"

	"github.com/coder/quartz"

	"github.com/Marcennaji/HoldemCore-sub002/internal/analysis"
	"github.com/Marcennaji/HoldemCore-sub002/internal/classification"
	"github.com/Marcennaji/HoldemCore-sub002/internal/engine"
	"github.com/Marcennaji/HoldemCore-sub002/internal/statistics"
	"github.com/Marcennaji/HoldemCore-sub002/internal/store"
	"github.com/Marcennaji/HoldemCore-sub002/internal/strategy"
)

// seat is one table position's persistent state: it outlives a single Hand
// (spec §9's engine.Player/Session split), carrying the chip stack, chosen
// strategy, and the statistics/range-estimation state accumulated across
// hands.
type seat struct {
	name     string
	strategy strategy.Strategy
	human    bool
	cash     int

	statsUpdater *statistics.PlayerStatisticsUpdater
	rangeEst     *analysis.RangeEstimator
}

// Session runs a sequence of hands at one table: dealer-button rotation,
// per-seat strategy dispatch, statistics accrual, and the store save at
// each hand's end (spec §4.10/§4.11).
type Session struct {
	cfg   *Config
	seats []*seat

	rng         *rand.Rand
	clock       quartz.Clock
	store       store.PlayersStatisticsStore
	catIndex    *analysis.CategoryIndex
	buttonSeat  int
	handsPlayed int

	events *engine.GameEvents
}

// New builds a Session from a loaded Config, a statistics store, and a
// category index shared by every seat's range estimator.
func New(cfg *Config, st store.PlayersStatisticsStore, catIndex *analysis.CategoryIndex, rng *rand.Rand) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:      cfg,
		rng:      rng,
		clock:    quartz.NewReal(),
		store:    st,
		catIndex: catIndex,
		events:   &engine.GameEvents{},
	}

	n := len(cfg.Seats)
	tableClass := store.ClassifyTableSize(n)

	for _, sc := range cfg.Seats {
		baseline, err := loadBaseline(st, sc.Strategy, tableClass)
		if err != nil {
			return nil, err
		}

		st := &seat{
			name:         sc.Name,
			human:        sc.Human,
			cash:         cfg.Table.BuyIn,
			statsUpdater: statistics.NewPlayerStatisticsUpdater(baseline),
			rangeEst:     analysis.NewRangeEstimator(catIndex),
		}
		if !sc.Human {
			st.strategy = strategy.New(sc.Strategy, rng)
		}
		s.seats = append(s.seats, st)
	}

	return s, nil
}

func loadBaseline(st store.PlayersStatisticsStore, strategyName string, class store.TableSizeClass) (statistics.PlayerStatistics, error) {
	rows, err := st.Load(strategyName)
	if err != nil {
		return statistics.PlayerStatistics{}, err
	}
	switch class {
	case store.HeadsUp:
		return rows[2], nil
	case store.ShortHanded:
		return rows[3], nil
	default:
		return rows[7], nil
	}
}

// WithClock overrides the session's clock, for deterministic tests (spec
// §5's "coder/quartz" abstraction).
func (s *Session) WithClock(c quartz.Clock) { s.clock = c }

// SetEvents lets a host (CLI renderer, GUI adapter) observe hand events in
// addition to the Session's own bot-driving hook.
func (s *Session) SetEvents(e *engine.GameEvents) { s.events = e }

// PlayHand deals and fully resolves one hand: it drives every bot seat's
// decisions to completion, pausing only at a human seat (signaled through
// onAwaitingHumanInput on the wired events). Call ResumeWithHumanAction to
// continue after a human decision.
func (s *Session) PlayHand() (*engine.Hand, error) {
	n := len(s.seats)
	names := make([]string, n)
	chips := make([]int, n)
	humanSeat := -1
	for i, st := range s.seats {
		names[i] = st.name
		chips[i] = st.cash
		if st.human {
			humanSeat = i
		}
	}

	opts := []engine.HandOption{
		engine.WithChips(chips),
		engine.WithEvents(s.events),
	}
	if humanSeat >= 0 {
		opts = append(opts, engine.WithHumanSeat(humanSeat))
	}

	h, err := engine.NewHand(s.rng, names, s.buttonSeat, s.cfg.Table.SmallBlind, s.cfg.Table.BigBlind, opts...)
	if err != nil {
		return nil, err
	}

	s.driveBots(h)

	if h.IsComplete() {
		s.finishHand(h)
	}
	return h, nil
}

// driveBots processes every non-human actor's turn until the hand
// completes or a human seat is next to act.
func (s *Session) driveBots(h *engine.Hand) {
	for !h.IsComplete() {
		next := h.NextToAct()
		if next < 0 {
			break
		}
		st := s.seats[next]
		if st.human {
			if s.events != nil && s.events.OnAwaitingHumanInput != nil {
				s.events.OnAwaitingHumanInput(next, h.LegalActions(next))
			}
			return
		}

		ctx := s.buildContext(h, next)
		action := st.strategy.Decide(ctx)
		s.recordAction(h, next, action, ctx)
		_ = h.ProcessAction(next, action.Kind, action.Amount)
	}
}

// ResumeWithHumanAction applies a human-submitted action and continues
// driving bots until the hand completes or another human decision is due.
func (s *Session) ResumeWithHumanAction(h *engine.Hand, playerID int, kind engine.ActionKind, amount int) error {
	if err := h.ProcessAction(playerID, kind, amount); err != nil {
		return err
	}
	s.driveBots(h)
	if h.IsComplete() {
		s.finishHand(h)
	}
	return nil
}

func (s *Session) recordAction(h *engine.Hand, playerID int, action engine.PlayerAction, ctx engine.CurrentHandContext) {
	st := s.seats[playerID]
	st.statsUpdater.RecordAction(h.Street, action.Kind, action.Amount, ctx.PotTotal)

	obs := analysis.ObservationContext{
		Profile: archetypeProfile(st),
		Board:   classification.AnalyzeBoardPossibilities(h.Board),
		Texture: classification.AnalyzeBoardTexture(h.Board),
	}
	for i, other := range s.seats {
		if i == playerID {
			continue
		}
		other.rangeEst.ObserveAction(h.Street, action.Kind, obs)
	}
}

func archetypeProfile(st *seat) analysis.Profile {
	stats := st.statsUpdater.Current()
	af := statistics.AggressionFactor(stats)
	afreq := statistics.AggressionFrequency(stats)
	sample := stats.Preflop.Hands
	return analysis.ClassifyProfile(af, afreq, sample)
}

// buildContext assembles the read-only CurrentHandContext a strategy
// consumes, merging the Hand's live state with each opponent's estimated
// range size and statistical ratios (spec §3/§4.9 — never the opponent's
// hole cards).
func (s *Session) buildContext(h *engine.Hand, playerID int) engine.CurrentHandContext {
	self := h.Seats[playerID]
	board := h.Board

	var opponents []engine.OpponentSummary
	for i, p := range h.Seats {
		if i == playerID || p.Folded {
			continue
		}
		st := s.seats[i]
		stats := st.statsUpdater.Current()
		opponents = append(opponents, engine.OpponentSummary{
			PlayerID:              p.ID,
			Cash:                  p.Cash,
			RangeSize:             st.rangeEst.Count(),
			AggressionFactor:      statistics.AggressionFactor(stats),
			AggressionFrequency:   statistics.AggressionFrequency(stats),
			VPIP:                  vpip(stats),
			CallThreeBetFrequency: callThreeBetFrequency(stats),
			WentToShowdownPct:     statistics.WentToShowdownPct(stats),
		})
	}

	bb := h.BigBlind
	m := 0.0
	if h.SmallBlind+bb > 0 {
		m = float64(self.Cash) / float64(h.SmallBlind+bb)
	}

	madeHand := classification.ClassifyMadeHand(self.HoleCards, board)
	possibilities := classification.AnalyzeBoardPossibilities(board)

	return engine.CurrentHandContext{
		Street:              h.Street,
		SmallBlind:          h.SmallBlind,
		PotTotal:            potTotal(h),
		RoundCommittedTotal: self.BetInRound,
		RoundHighestSet:     h.Betting.RoundHighestSet,
		NumPlayers:          len(h.Seats),
		PreflopRaiseCount:   h.Betting.RaiseCount,
		LimpCount:           h.Betting.LimpCount,
		PreflopLastRaiserID: h.Betting.LastRaiserID,
		Self: engine.PlayerView{
			ID:               self.ID,
			Position:         self.Position,
			Cash:             self.Cash,
			TotalBetThisHand: self.TotalCommitted(),
			M:                m,
			Postflop: engine.PostflopFlags{
				Pair:              madeHand.Pair,
				Overpair:          madeHand.Overpair,
				Set:               madeHand.Set,
				TwoPair:           madeHand.TwoPair,
				Straight:          madeHand.Straight,
				Flush:             madeHand.Flush,
				FullHouse:         madeHand.FullHouse,
				Quads:             madeHand.Quads,
				FlushPossible:     possibilities.FlushPossible,
				StraightPossible:  possibilities.StraightPossible,
				Paired:            possibilities.Paired,
				FullHousePossible: possibilities.FullHousePossible,
			},
		},
		Opponents: opponents,
	}
}

func potTotal(h *engine.Hand) int {
	total := 0
	for _, p := range h.Seats {
		total += p.TotalCommitted()
	}
	return total
}

func vpip(s statistics.PlayerStatistics) float64 {
	if s.Preflop.Hands == 0 {
		return 0
	}
	voluntary := s.Preflop.Calls + s.Preflop.Bets + s.Preflop.Raises
	return 100 * float64(voluntary) / float64(s.Preflop.Hands)
}

func callThreeBetFrequency(s statistics.PlayerStatistics) float64 {
	if s.Preflop.CallThreeBetOpportunities == 0 {
		return 0
	}
	return 100 * float64(s.Preflop.CallThreeBets) / float64(s.Preflop.CallThreeBetOpportunities)
}

// finishHand advances the button, reconciles seat cash from the hand's
// final state, and saves every acting player's statistics delta.
func (s *Session) finishHand(h *engine.Hand) {
	n := len(s.seats)
	s.buttonSeat = (s.buttonSeat + 1) % n
	s.handsPlayed++

	var toSave []store.ActingPlayer
	tableClass := store.ClassifyTableSize(n)
	for i, st := range s.seats {
		st.cash = h.Seats[i].Cash
		st.statsUpdater.RecordHandResult(h.Seats[i].WentToShowdown, h.Seats[i].WonShowdown)
		strategyName := ""
		if !st.human {
			strategyName = st.strategy.Name()
		}
		toSave = append(toSave, store.ActingPlayer{
			StrategyName: strategyName,
			TableSize:    tableClass,
			Delta:        st.statsUpdater.GetStatisticsDeltaAndUpdateBaseline(),
		})
	}
	if err := s.store.Save(toSave); err != nil && s.events != nil && s.events.OnEngineError != nil {
		s.events.OnEngineError("session: statistics save failed: " + err.Error())
	}
}
