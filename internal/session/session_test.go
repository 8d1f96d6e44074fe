package session

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Marcennaji/HoldemCore-sub002/internal/analysis"
	"github.com/Marcennaji/HoldemCore-sub002/internal/store"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	catIndex, err := analysis.NewCategoryIndex()
	require.NoError(t, err)

	sess, err := New(DefaultConfig(), store.NewMemoryStore(), catIndex, rand.New(rand.NewSource(42)))
	require.NoError(t, err)
	return sess
}

func TestConfig_Validate_Defaults(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestConfig_Validate_RejectsBadBlinds(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Table.SmallBlind = 5
	cfg.Table.BigBlind = 2
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_RejectsUnknownStrategy(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seats[0].Strategy = "nonexistent"
	assert.Error(t, cfg.Validate())
}

func TestConfig_Validate_RejectsMultipleHumans(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seats[0].Human = true
	cfg.Seats[1].Human = true
	assert.Error(t, cfg.Validate())
}

func TestLoadConfig_FallsBackToDefaultWhenFileMissing(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/path/table.hcl")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestSession_PlayHand_RunsToCompletionWithOnlyBots(t *testing.T) {
	sess := newTestSession(t)

	for i := 0; i < 20; i++ {
		h, err := sess.PlayHand()
		require.NoError(t, err)
		assert.True(t, h.IsComplete(), "hand %d did not complete without a human seat", i)
	}
}

func TestSession_PlayHand_ConservesChipsAcrossTheTable(t *testing.T) {
	sess := newTestSession(t)

	totalBefore := 0
	for _, st := range sess.seats {
		totalBefore += st.cash
	}

	for i := 0; i < 5; i++ {
		_, err := sess.PlayHand()
		require.NoError(t, err)
	}

	totalAfter := 0
	for _, st := range sess.seats {
		totalAfter += st.cash
	}

	assert.Equal(t, totalBefore, totalAfter, "total chips at the table must be conserved across hands")
}

func TestSession_PlayHand_TracksShowdownStatistics(t *testing.T) {
	sess := newTestSession(t)

	const hands = 40
	for i := 0; i < hands; i++ {
		_, err := sess.PlayHand()
		require.NoError(t, err)
	}

	sawAnyShowdown := false
	for _, st := range sess.seats {
		cur := st.statsUpdater.Current()
		assert.Equal(t, hands, cur.HandsPlayed, "every seat is dealt into every hand played")
		assert.GreaterOrEqual(t, cur.ShowdownsSeen, 0)
		assert.LessOrEqual(t, cur.ShowdownsSeen, cur.HandsPlayed)
		if cur.ShowdownsSeen > 0 {
			sawAnyShowdown = true
			assert.LessOrEqual(t, cur.ShowdownsWon, cur.ShowdownsSeen)
		}
	}
	assert.True(t, sawAnyShowdown, "expected at least one showdown across %d hands with all-bot seats", hands)
}

func TestSession_PlayHand_PausesForHumanSeat(t *testing.T) {
	catIndex, err := analysis.NewCategoryIndex()
	require.NoError(t, err)

	cfg := DefaultConfig()
	cfg.Seats[0].Human = true
	cfg.Seats[0].Strategy = ""

	sess, err := New(cfg, store.NewMemoryStore(), catIndex, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	h, err := sess.PlayHand()
	require.NoError(t, err)

	if !h.IsComplete() {
		next := h.NextToAct()
		require.GreaterOrEqual(t, next, 0)
		legal := h.LegalActions(next)
		require.NotEmpty(t, legal)

		err = sess.ResumeWithHumanAction(h, next, legal[0], 0)
		require.NoError(t, err)
	}
}
