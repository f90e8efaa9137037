// Package config loads engine tuning parameters from a TOML file, in the
// style of the example pack's engine repos (FrankyGo, Mgrdich-TermChess),
// neither of which this engine's teacher has an equivalent for since the
// teacher hardcodes its tuning constants as untyped Go consts.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Search holds the tunable parameters of internal/search's alpha-beta
// driver, each with the teacher's hardcoded default (core/search.go) as
// its zero-value fallback.
type Search struct {
	MaxDepth          int `toml:"max_depth"`
	QuiescenceMaxPly  int `toml:"quiescence_max_ply"`
	TranspositionMB   int `toml:"transposition_table_mb"`
	MoveOverheadMS    int `toml:"move_overhead_ms"`
	NodeCheckInterval int `toml:"node_check_interval"`
}

// Config is the root of the engine's TOML configuration file.
type Config struct {
	Search Search `toml:"search"`
}

// Default returns the engine's built-in tuning parameters.
func Default() Config {
	return Config{
		Search: Search{
			MaxDepth:          64,
			QuiescenceMaxPly:  16,
			TranspositionMB:   64,
			MoveOverheadMS:    30,
			NodeCheckInterval: 2048,
		},
	}
}

// Load reads and parses a TOML configuration file, filling in any field
// left unset in the file with Default's value.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
