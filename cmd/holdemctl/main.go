// Command holdemctl is the headless CLI bootstrap for the hand simulation
// engine (spec §2.4): it loads a table config, seats the four bot
// archetypes (or a human seat), and runs hands either silently to a count
// or through an interactive terminal viewer.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
	"github.com/dustin/go-humanize"

	"github.com/Marcennaji/HoldemCore-sub002/internal/analysis"
	"github.com/Marcennaji/HoldemCore-sub002/internal/session"
	"github.com/Marcennaji/HoldemCore-sub002/internal/store"
)

// CLI is the kong argument struct, following the teacher's cmd/server flag
// naming (kong struct tags, default values, help text per flag).
type CLI struct {
	Config string `kong:"default='table.hcl',help='HCL table configuration file'"`
	Hands  int    `kong:"default='100',help='Number of hands to play'"`
	Seed   *int64 `kong:"help='Deterministic RNG seed (optional)'"`
	Watch  bool   `kong:"help='Render each hand live in an interactive terminal viewer'"`
	DB     string `kong:"help='Override the statistics database path from the config file'"`
	Debug  bool   `kong:"help='Enable debug logging'"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("holdemctl"),
		kong.Description("Headless runner for the No-Limit Hold'em hand simulation engine"),
		kong.UsageOnError(),
	)

	level := log.InfoLevel
	if cli.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level, ReportTimestamp: true})

	cfg, err := session.LoadConfig(cli.Config)
	if err != nil {
		logger.Fatal("loading config", "err", err)
	}
	if cli.DB != "" {
		cfg.Table.DBPath = cli.DB
	}

	seed := time.Now().UnixNano()
	if cli.Seed != nil {
		seed = *cli.Seed
	}
	rng := rand.New(rand.NewSource(seed))

	st, err := store.OpenSqliteStore(cfg.Table.DBPath)
	if err != nil {
		logger.Fatal("opening statistics store", "err", err)
	}
	defer st.Close()

	catIndex, err := analysis.NewCategoryIndex()
	if err != nil {
		logger.Fatal("building category index", "err", err)
	}

	sess, err := session.New(cfg, st, catIndex, rng)
	if err != nil {
		logger.Fatal("starting session", "err", err)
	}

	if cli.Watch {
		if err := runWatch(sess, cli.Hands, logger); err != nil {
			logger.Fatal("watch mode", "err", err)
		}
		return
	}

	runHeadless(sess, cli.Hands, logger)
}

func runHeadless(sess *session.Session, hands int, logger *log.Logger) {
	for i := 0; i < hands; i++ {
		h, err := sess.PlayHand()
		if err != nil {
			logger.Error("hand failed", "index", i, "err", err)
			continue
		}
		if !h.IsComplete() {
			logger.Warn("hand stalled awaiting human input in headless mode", "index", i)
			return
		}
	}
	fmt.Printf("played %s hands\n", humanize.Comma(int64(hands)))
}
