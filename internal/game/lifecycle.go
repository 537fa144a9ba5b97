package game

import (
	"time"

	"github.com/mrivero/cyberbomb/internal/models"
)

// Init establishes default values on a fresh session. It is idempotent
// and safe to call on every request.
func (e *Engine) Init(s *models.Session, now time.Time) {
	if s.Initialized {
		s.LastSeenAt = now
		return
	}
	s.Initialized = true
	s.TimeLeft = e.params.InitialTime
	s.LevelIndex = 0
	s.HintsLeft = e.params.InitialHints
	s.HintsUsedOnLevel = 0
	s.Status = models.StatusPlaying
	s.Performance = nil
	s.PendingMessage = ""
	s.QuestionStartedAt = now
	s.CreatedAt = now
	s.LastSeenAt = now
}

// ReconcileClientTime clamps the server timer with the client-reported
// value. The client can only report the timer running down, never up, so
// the result is min(server, client). Nil or negative reports are ignored
// and the server value stands.
func (e *Engine) ReconcileClientTime(s *models.Session, clientSeconds *int) {
	if clientSeconds == nil || *clientSeconds < 0 {
		return
	}
	if *clientSeconds < s.TimeLeft {
		s.TimeLeft = *clientSeconds
	}
}

// EnforceTimeBudget forces the session into lost once the timer reaches
// zero. The transition is irreversible. Returns true while the player
// still has time.
func (e *Engine) EnforceTimeBudget(s *models.Session) bool {
	if s.Status == models.StatusLost {
		return false
	}
	if s.TimeLeft <= 0 {
		s.TimeLeft = 0
		s.Status = models.StatusLost
		return false
	}
	return true
}

// Reset unconditionally discards all progression state, returning the
// session to its initial, uninitialized condition. The identifier is kept
// so the store slot stays addressable.
func (e *Engine) Reset(s *models.Session) {
	id := s.ID
	*s = models.Session{ID: id}
}
