// Package session wires the engine, strategy, analysis and statistics
// packages into a runnable multi-hand simulation: HCL-loaded table
// configuration, dealer-button rotation across hands, a shared clock, and
// the CurrentHandContext builder that merges a Hand's live state with each
// opponent's estimated range and statistics.
package session

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// TableConfig describes the single table a Session runs (spec §2: one hand
// state machine at a time, no multi-table play).
type TableConfig struct {
	SmallBlind int    `hcl:"small_blind"`
	BigBlind   int    `hcl:"big_blind"`
	BuyIn      int    `hcl:"buy_in"`
	DBPath     string `hcl:"statistics_db,optional"`
}

// SeatConfig names one seat's strategy and display name.
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy"`
	Human    bool   `hcl:"human,optional"`
}

// Config is the top-level HCL document a headless run loads (spec §2.4).
type Config struct {
	Table TableConfig  `hcl:"table,block"`
	Seats []SeatConfig `hcl:"seat,block"`
}

// DefaultConfig returns a four-seat table with one seat per bot archetype.
func DefaultConfig() *Config {
	return &Config{
		Table: TableConfig{SmallBlind: 1, BigBlind: 2, BuyIn: 200, DBPath: "statistics.db"},
		Seats: []SeatConfig{
			{Name: "tag-1", Strategy: "tight-aggressive"},
			{Name: "lag-1", Strategy: "loose-aggressive"},
			{Name: "ultratight-1", Strategy: "ultra-tight"},
			{Name: "maniac-1", Strategy: "maniac"},
		},
	}
}

// LoadConfig reads an HCL table file, falling back to DefaultConfig when the
// path doesn't exist (spec §2.4's CLI bootstrap).
func LoadConfig(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("session: parsing %s: %s", path, diags.Error())
	}

	var cfg Config
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("session: decoding %s: %s", path, diags.Error())
	}

	if cfg.Table.BigBlind == 0 {
		cfg.Table.BigBlind = 2
	}
	if cfg.Table.SmallBlind == 0 {
		cfg.Table.SmallBlind = cfg.Table.BigBlind / 2
	}
	if cfg.Table.BuyIn == 0 {
		cfg.Table.BuyIn = cfg.Table.BigBlind * 100
	}
	if cfg.Table.DBPath == "" {
		cfg.Table.DBPath = "statistics.db"
	}

	return &cfg, nil
}

// Validate checks the loaded configuration is playable.
func (c *Config) Validate() error {
	if c.Table.BigBlind <= c.Table.SmallBlind {
		return fmt.Errorf("session: big blind must exceed small blind")
	}
	if len(c.Seats) < 2 || len(c.Seats) > 10 {
		return fmt.Errorf("session: table needs 2-10 seats, got %d", len(c.Seats))
	}
	humanSeats := 0
	for _, s := range c.Seats {
		if s.Human {
			humanSeats++
			continue
		}
		valid := false
		for _, n := range []string{"tight-aggressive", "loose-aggressive", "ultra-tight", "maniac"} {
			if s.Strategy == n {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("session: seat %q: unknown strategy %q", s.Name, s.Strategy)
		}
	}
	if humanSeats > 1 {
		return fmt.Errorf("session: at most one human seat is supported")
	}
	return nil
}
