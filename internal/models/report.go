package models

import "time"

// Report is the end-of-game performance summary, computed on demand from
// the session's telemetry log. It is never stored on the session.
type Report struct {
	Outcome          Status  `json:"outcome"`
	TotalGameSeconds int     `json:"total_game_seconds"` // initial budget minus final time left
	TimeLeft         int     `json:"time_left"`
	LevelsCleared    int     `json:"levels_cleared"`
	TotalLevels      int     `json:"total_levels"`
	Attempts         int     `json:"attempts"`
	Correct          int     `json:"correct"`
	Incorrect        int     `json:"incorrect"`
	AccuracyPct      float64 `json:"accuracy_pct"`
	AvgResponseSecs  float64 `json:"avg_response_seconds"`

	Fastest *PerformanceEntry `json:"fastest,omitempty"`
	Slowest *PerformanceEntry `json:"slowest,omitempty"`
}

// GameResult is the immutable archive row written once a run ends. Only
// these summaries are persisted; live session state never is.
type GameResult struct {
	ID              int64     `json:"id"`
	SessionID       string    `json:"session_id"`
	Outcome         string    `json:"outcome"` // "won" or "lost"
	Ruleset         string    `json:"ruleset"`
	TimeLeft        int       `json:"time_left"`
	LevelsCleared   int       `json:"levels_cleared"`
	TotalLevels     int       `json:"total_levels"`
	Attempts        int       `json:"attempts"`
	Correct         int       `json:"correct"`
	AccuracyPct     float64   `json:"accuracy_pct"`
	AvgResponseSecs float64   `json:"avg_response_seconds"`
	FinishedAt      time.Time `json:"finished_at"`
}

// ResultFilter narrows and orders leaderboard queries.
type ResultFilter struct {
	Outcome  string
	Ruleset  string
	Limit    int
	Offset   int
	OrderBy  string // "time_left" or "finished_at"
	OrderDir string // "ASC" or "DESC"
}
