package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mrivero/cyberbomb/internal/models"
)

// Rulesets selectable via RULESET.
const (
	RulesetClassic  = "classic"
	RulesetExtended = "extended"
)

type Config struct {
	Addr     string
	DBPath   string
	LogLevel string

	Ruleset    string
	LevelsPath string // optional JSON level table override

	// Ruleset overrides; zero means "use the ruleset default".
	InitialTime   int
	InitialHints  int
	TimeBonus     int
	HintPenalty   int
	HintReplenish int

	SessionTTLMinutes  int
	ArchiveWorkerCount int
	ArchiveQueueSize   int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:               envOr("ADDR", ":8080"),
		DBPath:             envOr("DB_PATH", "file:cyberbomb.db"),
		LogLevel:           envOr("LOG_LEVEL", "INFO"),
		Ruleset:            envOr("RULESET", RulesetClassic),
		LevelsPath:         envOr("LEVELS_PATH", ""),
		InitialTime:        envIntOr("INITIAL_TIME", 0),
		InitialHints:       envIntOr("INITIAL_HINTS", 0),
		TimeBonus:          envIntOr("TIME_BONUS", 0),
		HintPenalty:        envIntOr("HINT_PENALTY", 0),
		HintReplenish:      envIntOr("HINT_REPLENISH", 0),
		SessionTTLMinutes:  envIntOr("SESSION_TTL_MINUTES", 120),
		ArchiveWorkerCount: envIntOr("ARCHIVE_WORKER_COUNT", 1),
		ArchiveQueueSize:   envIntOr("ARCHIVE_QUEUE_SIZE", 32),
	}
}

// Validate collects every configuration problem into one error.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not one of DEBUG, INFO, WARN, ERROR", c.LogLevel))
	}
	if c.Ruleset != RulesetClassic && c.Ruleset != RulesetExtended {
		problems = append(problems, fmt.Sprintf("RULESET %q is not one of %s, %s", c.Ruleset, RulesetClassic, RulesetExtended))
	}
	if c.InitialTime < 0 {
		problems = append(problems, "INITIAL_TIME cannot be negative")
	}
	if c.InitialHints < 0 {
		problems = append(problems, "INITIAL_HINTS cannot be negative")
	}
	if c.HintPenalty < 0 {
		problems = append(problems, "HINT_PENALTY cannot be negative")
	}
	if c.SessionTTLMinutes <= 0 {
		problems = append(problems, "SESSION_TTL_MINUTES must be positive")
	}
	if c.ArchiveWorkerCount <= 0 {
		problems = append(problems, "ARCHIVE_WORKER_COUNT must be positive")
	}
	if c.ArchiveQueueSize <= 0 {
		problems = append(problems, "ARCHIVE_QUEUE_SIZE must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// GameParams resolves the active ruleset plus any per-constant overrides.
func (c Config) GameParams() models.GameParams {
	params := models.ClassicParams()
	if c.Ruleset == RulesetExtended {
		params = models.ExtendedParams()
	}
	if c.InitialTime > 0 {
		params.InitialTime = c.InitialTime
	}
	if c.InitialHints > 0 {
		params.InitialHints = c.InitialHints
	}
	if c.TimeBonus > 0 {
		params.TimeBonus = c.TimeBonus
	}
	if c.HintPenalty > 0 {
		params.HintPenalty = c.HintPenalty
	}
	if c.HintReplenish > 0 {
		params.HintReplenish = c.HintReplenish
	}
	return params
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
