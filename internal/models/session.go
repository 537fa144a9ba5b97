package models

import "time"

// Status is the lifecycle state of a game session. Transitions are
// one-directional: playing -> won or playing -> lost.
type Status string

const (
	StatusPlaying Status = "playing"
	StatusWon     Status = "won"
	StatusLost    Status = "lost"
)

// Session holds all mutable progression state for a single player.
// It lives in the session store for the lifetime of the process (or
// until an explicit reset) and is read, mutated and written back
// within one request/response cycle.
type Session struct {
	ID               string             `json:"id"`
	Initialized      bool               `json:"initialized"`
	TimeLeft         int                `json:"time_left"`
	LevelIndex       int                `json:"level_index"`
	HintsLeft        int                `json:"hints_left"`
	HintsUsedOnLevel int                `json:"hints_used_on_level"`
	Status           Status             `json:"status"`
	Performance      []PerformanceEntry `json:"performance"`
	PendingMessage   string             `json:"pending_message,omitempty"`

	// QuestionStartedAt marks the last question boundary, used as the
	// server-side fallback when the client does not report a response time.
	QuestionStartedAt time.Time `json:"question_started_at"`

	CreatedAt  time.Time `json:"created_at"`
	LastSeenAt time.Time `json:"last_seen_at"`
}

// Terminal reports whether the session has reached won or lost.
func (s *Session) Terminal() bool {
	return s.Status == StatusWon || s.Status == StatusLost
}

// ConsumePendingMessage returns the stashed success message and clears it.
func (s *Session) ConsumePendingMessage() string {
	msg := s.PendingMessage
	s.PendingMessage = ""
	return msg
}

// PerformanceEntry is one scored attempt in the append-only telemetry log.
type PerformanceEntry struct {
	LevelIndex      int       `json:"level_index"`
	Prompt          string    `json:"prompt"`
	ResponseSeconds float64   `json:"response_seconds"`
	WasCorrect      bool      `json:"was_correct"`
	AnsweredAt      time.Time `json:"answered_at"`
}
