package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	assert.Equal(t, "Player 1", cfg.PlayerNames[0])
	assert.Equal(t, "Player 2", cfg.PlayerNames[1])
	assert.Equal(t, 101, cfg.Rules.TargetScore)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.NotZero(t, cfg.Seed)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("YANIV_PLAYER_1", "Alice")
	t.Setenv("YANIV_PLAYER_2", "Bob")
	t.Setenv("YANIV_SEED", "42")
	t.Setenv("YANIV_TARGET_SCORE", "51")
	t.Setenv("LOG_LEVEL", "debug")

	cfg := Load()
	assert.Equal(t, "Alice", cfg.PlayerNames[0])
	assert.Equal(t, "Bob", cfg.PlayerNames[1])
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, 51, cfg.Rules.TargetScore)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadIgnoresInvalidValues(t *testing.T) {
	t.Setenv("YANIV_SEED", "not-a-number")
	t.Setenv("YANIV_TARGET_SCORE", "-5")

	cfg := Load()
	assert.NotZero(t, cfg.Seed)
	assert.Equal(t, 101, cfg.Rules.TargetScore)
}
