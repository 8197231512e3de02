// Package config loads runtime settings from the environment, optionally
// seeded from a .env file.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/ysetbon/yaniv/engine"
)

// Config holds the settings for one game run.
type Config struct {
	PlayerNames [engine.NumPlayers]string
	Seed        uint64
	Rules       engine.Rules
	LogLevel    string
}

// Load reads configuration from the environment. A .env file in the working
// directory is applied first if present; real environment variables win.
// Unset values fall back to the standard rules, generated names and a
// time-based seed.
func Load() Config {
	_ = godotenv.Load()

	cfg := Config{
		PlayerNames: [engine.NumPlayers]string{"Player 1", "Player 2"},
		Seed:        uint64(time.Now().UnixNano()),
		Rules:       engine.DefaultRules(),
		LogLevel:    "info",
	}

	if v := os.Getenv("YANIV_PLAYER_1"); v != "" {
		cfg.PlayerNames[0] = v
	}
	if v := os.Getenv("YANIV_PLAYER_2"); v != "" {
		cfg.PlayerNames[1] = v
	}
	if v := os.Getenv("YANIV_SEED"); v != "" {
		if seed, err := strconv.ParseUint(v, 10, 64); err == nil {
			cfg.Seed = seed
		}
	}
	if v := os.Getenv("YANIV_TARGET_SCORE"); v != "" {
		if score, err := strconv.Atoi(v); err == nil && score > 0 {
			cfg.Rules.TargetScore = score
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	return cfg
}
