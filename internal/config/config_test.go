package config_test

import (
	"testing"

	"github.com/mrivero/cyberbomb/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() config.Config {
	return config.Config{
		Addr:               ":8080",
		DBPath:             "test.db",
		LogLevel:           "INFO",
		Ruleset:            config.RulesetClassic,
		SessionTTLMinutes:  120,
		ArchiveWorkerCount: 1,
		ArchiveQueueSize:   32,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_InvalidRuleset(t *testing.T) {
	cfg := validConfig()
	cfg.Ruleset = "nightmare"

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "RULESET")
}

func TestValidate_InvalidLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level string
		valid bool
	}{
		{name: "invalid level", level: "INVALID", valid: false},
		{name: "empty level", level: "", valid: false},
		{name: "lowercase valid level", level: "debug", valid: true},
		{name: "uppercase valid level", level: "ERROR", valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			}
		})
	}
}

func TestValidate_InvalidWorkerSettings(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*config.Config)
		expectedError string
	}{
		{
			name:          "zero archive workers",
			mutate:        func(c *config.Config) { c.ArchiveWorkerCount = 0 },
			expectedError: "ARCHIVE_WORKER_COUNT",
		},
		{
			name:          "zero archive queue",
			mutate:        func(c *config.Config) { c.ArchiveQueueSize = 0 },
			expectedError: "ARCHIVE_QUEUE_SIZE",
		},
		{
			name:          "zero session ttl",
			mutate:        func(c *config.Config) { c.SessionTTLMinutes = 0 },
			expectedError: "SESSION_TTL_MINUTES",
		},
		{
			name:          "negative hint penalty",
			mutate:        func(c *config.Config) { c.HintPenalty = -1 },
			expectedError: "HINT_PENALTY",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			assert.Error(t, err)
			assert.Contains(t, err.Error(), tt.expectedError)
		})
	}
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{
		Addr:     "",
		DBPath:   "",
		LogLevel: "INVALID",
		Ruleset:  "bogus",
	}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "RULESET")
	assert.Contains(t, errStr, "SESSION_TTL_MINUTES")
}

func TestGameParams_Rulesets(t *testing.T) {
	cfg := validConfig()

	classic := cfg.GameParams()
	assert.Equal(t, 600, classic.InitialTime)
	assert.Equal(t, 3, classic.InitialHints)
	assert.Equal(t, 30, classic.TimeBonus)
	assert.Equal(t, 10, classic.HintPenalty)
	assert.Equal(t, 0, classic.HintReplenish)

	cfg.Ruleset = config.RulesetExtended
	extended := cfg.GameParams()
	assert.Equal(t, 8, extended.InitialHints)
	assert.Equal(t, 8, extended.HintPenalty)
	assert.Equal(t, 2, extended.HintReplenish)
}

func TestGameParams_Overrides(t *testing.T) {
	cfg := validConfig()
	cfg.InitialTime = 300
	cfg.InitialHints = 5

	params := cfg.GameParams()
	assert.Equal(t, 300, params.InitialTime)
	assert.Equal(t, 5, params.InitialHints)
	assert.Equal(t, 30, params.TimeBonus, "unset overrides keep ruleset defaults")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("RULESET", config.RulesetExtended)

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, config.RulesetExtended, cfg.Ruleset)
}
