package game

import (
	"time"

	"github.com/mrivero/cyberbomb/internal/models"
)

// HintResult is the response to one hint request.
type HintResult struct {
	Text      string `json:"hint"`
	HintsLeft int    `json:"hints_left"`
	TimeLeft  int    `json:"time_left"`   // after the penalty, so clients can resync their countdown
	Sequence  int    `json:"hint_number"` // k-th hint on this level, 1-based; 0 when nothing was granted
	Depleted  bool   `json:"depleted"`
	Expired   bool   `json:"expired"`
	Terminal  bool   `json:"-"`
}

// RequestHint rations the consumable hint budget with escalating
// specificity. The time budget is checked before the hint budget; a
// granted hint costs one hint and a fixed time penalty, which can itself
// end the game. At zero budget the depletion notice is returned and
// nothing is mutated.
func (e *Engine) RequestHint(s *models.Session, clientTimeLeft *int, now time.Time) HintResult {
	e.Init(s, now)

	if s.Terminal() {
		return HintResult{Terminal: true, HintsLeft: s.HintsLeft, TimeLeft: s.TimeLeft}
	}

	if !e.EnforceTimeBudget(s) {
		return HintResult{Expired: true, HintsLeft: s.HintsLeft}
	}
	e.ReconcileClientTime(s, clientTimeLeft)
	if !e.EnforceTimeBudget(s) {
		return HintResult{Expired: true, HintsLeft: s.HintsLeft}
	}

	if s.HintsLeft == 0 {
		return HintResult{Text: MsgHintsDepleted, Depleted: true, HintsLeft: 0, TimeLeft: s.TimeLeft}
	}

	s.HintsLeft--
	s.TimeLeft -= e.params.HintPenalty
	s.HintsUsedOnLevel++

	res := HintResult{
		Text:      e.hintText(s),
		HintsLeft: s.HintsLeft,
		Sequence:  s.HintsUsedOnLevel,
	}
	// The penalty can push the timer over the edge.
	if !e.EnforceTimeBudget(s) {
		res.Expired = true
	}
	res.TimeLeft = s.TimeLeft
	return res
}

// hintText implements progressive disclosure: the first hint on a level
// is the primary hint, subsequent requests walk the progressive list in
// order, and once exhausted every further request yields a fixed message
// while still consuming budget.
func (e *Engine) hintText(s *models.Session) string {
	lvl, ok := e.levelAt(s.LevelIndex)
	if !ok {
		return MsgHintsExhausted
	}
	k := s.HintsUsedOnLevel
	switch {
	case k == 1:
		return lvl.Hint
	case k-2 < len(lvl.ProgressiveHints):
		return lvl.ProgressiveHints[k-2]
	default:
		return MsgHintsExhausted
	}
}
