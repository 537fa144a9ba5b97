package game

import (
	"time"

	"github.com/mrivero/cyberbomb/internal/models"
)

// Snapshot implements start-or-resume: it initializes the session if
// needed, enforces the time budget and returns the render payload for
// the active level. Any pending success message is consumed on read.
// The second return is false when the session is (or just became)
// terminal and the caller should redirect to the matching report.
func (e *Engine) Snapshot(s *models.Session, now time.Time) (models.LevelView, bool) {
	e.Init(s, now)

	if s.Terminal() {
		return models.LevelView{}, false
	}
	if !e.EnforceTimeBudget(s) {
		return models.LevelView{}, false
	}

	lvl, ok := e.levelAt(s.LevelIndex)
	if !ok {
		s.Status = models.StatusWon
		return models.LevelView{}, false
	}

	view := models.LevelView{
		Number:         s.LevelIndex + 1,
		TotalLevels:    len(e.levels),
		Kind:           lvl.Kind,
		Title:          lvl.Title,
		Prompt:         lvl.Prompt,
		Ciphertext:     lvl.Ciphertext,
		Artifacts:      lvl.Artifacts,
		TimeLeft:       s.TimeLeft,
		HintsLeft:      s.HintsLeft,
		SuccessMessage: s.ConsumePendingMessage(),
	}
	for _, c := range lvl.Choices {
		view.Choices = append(view.Choices, models.ChoiceView{ID: c.ID, Label: c.Label})
	}
	return view, true
}
