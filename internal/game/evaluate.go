package game

import (
	"strings"
	"time"

	"github.com/mrivero/cyberbomb/internal/models"
)

// Answer carries the raw player input for one submission. Fields that do
// not apply to the active level kind are ignored. Client-reported numbers
// are optional; malformed values are treated as absent upstream.
type Answer struct {
	Password string
	ChoiceID string
	Text     string

	// ClientElapsedSecs is the client-measured per-question duration,
	// taken as authoritative when present.
	ClientElapsedSecs *float64
	// ClientTimeLeft is the client-reported countdown value.
	ClientTimeLeft *int
}

// Outcome is the result of one submission.
type Outcome struct {
	Correct  bool
	Message  string
	Advanced bool
	Won      bool
	Expired  bool
	Terminal bool // session was already won or lost before evaluation
	Status   models.Status
}

// SubmitAnswer validates the session, scores the answer against the
// active level and advances progression state on success. Incorrect
// answers mutate nothing beyond the telemetry log; the player stays on
// the level and may resubmit until time expires.
func (e *Engine) SubmitAnswer(s *models.Session, ans Answer, now time.Time) Outcome {
	e.Init(s, now)

	if s.Terminal() {
		return Outcome{Terminal: true, Status: s.Status}
	}

	// Budget is checked before and after client sync: the sync itself can
	// push the session over the limit.
	if !e.EnforceTimeBudget(s) {
		return Outcome{Expired: true, Status: s.Status}
	}
	e.ReconcileClientTime(s, ans.ClientTimeLeft)
	if !e.EnforceTimeBudget(s) {
		return Outcome{Expired: true, Status: s.Status}
	}

	lvl, ok := e.levelAt(s.LevelIndex)
	if !ok {
		// Index past the table means the run is already complete.
		s.Status = models.StatusWon
		return Outcome{Won: true, Terminal: true, Status: s.Status}
	}

	correct, wrongMsg := evaluate(lvl, ans)

	// Password levels are exempt from telemetry; every other kind records
	// a scored entry for both correct and incorrect attempts.
	if lvl.Kind != models.KindPassword {
		s.Performance = append(s.Performance, models.PerformanceEntry{
			LevelIndex:      s.LevelIndex,
			Prompt:          lvl.Prompt,
			ResponseSeconds: e.responseSeconds(s, ans, now),
			WasCorrect:      correct,
			AnsweredAt:      now,
		})
		s.QuestionStartedAt = now
	}

	if !correct {
		return Outcome{Message: wrongMsg, Status: s.Status}
	}

	s.TimeLeft += e.params.TimeBonus
	s.HintsLeft += e.params.HintReplenish
	s.HintsUsedOnLevel = 0
	s.LevelIndex++
	s.PendingMessage = e.successMessage(lvl)

	out := Outcome{
		Correct:  true,
		Advanced: true,
		Message:  s.PendingMessage,
		Status:   s.Status,
	}
	if s.LevelIndex == len(e.levels) {
		s.Status = models.StatusWon
		out.Won = true
		out.Status = s.Status
	}
	return out
}

// responseSeconds prefers the client-measured duration and falls back to
// the wall-clock delta since the last question boundary.
func (e *Engine) responseSeconds(s *models.Session, ans Answer, now time.Time) float64 {
	if ans.ClientElapsedSecs != nil && *ans.ClientElapsedSecs >= 0 {
		return *ans.ClientElapsedSecs
	}
	if s.QuestionStartedAt.IsZero() || now.Before(s.QuestionStartedAt) {
		return 0
	}
	return now.Sub(s.QuestionStartedAt).Seconds()
}

// evaluate dispatches on the level kind. An empty or missing answer is an
// ordinary incorrect answer, never an error.
func evaluate(lvl models.Level, ans Answer) (bool, string) {
	switch lvl.Kind {
	case models.KindPassword:
		return evaluatePassword(lvl, ans.Password)
	case models.KindPhishing:
		return evaluatePhishing(lvl, ans.ChoiceID)
	case models.KindCipher:
		return evaluateCipher(lvl, ans.Text)
	case models.KindPuzzle:
		return evaluatePuzzle(lvl, ans.Text)
	default:
		return false, MsgEmptyAnswer
	}
}

func evaluatePassword(lvl models.Level, input string) (bool, string) {
	if strings.TrimSpace(input) == lvl.Secret {
		return true, ""
	}
	return false, MsgWrongPassword
}

func evaluatePhishing(lvl models.Level, choiceID string) (bool, string) {
	correct, ok := lvl.CorrectChoice()
	if ok && choiceID == correct.ID {
		return true, ""
	}
	return false, MsgWrongPhishing
}

func evaluateCipher(lvl models.Level, input string) (bool, string) {
	if strings.EqualFold(strings.TrimSpace(input), lvl.Plaintext) {
		return true, ""
	}
	return false, MsgWrongCipher
}

func evaluatePuzzle(lvl models.Level, input string) (bool, string) {
	got := strings.ToUpper(strings.TrimSpace(input))
	want := strings.ToUpper(strings.TrimSpace(lvl.ExpectedKey))
	if got != "" && got == want {
		return true, ""
	}
	return false, MsgWrongPuzzle
}
