package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/mrivero/cyberbomb/internal/errors"
	"github.com/mrivero/cyberbomb/internal/game"
	"github.com/mrivero/cyberbomb/internal/logger"
	"github.com/mrivero/cyberbomb/internal/models"
)

// handleGame renders the active level, starting a new run on first
// contact. Sessions that ran out of time or already finished are
// redirected to their outcome page.
func (s *Server) handleGame(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	sessionID := sessionIDFromContext(r.Context())

	view, ok := s.GameService.View(r.Context(), sessionID)
	if !ok {
		s.redirectToOutcome(w, r, sessionID)
		return
	}

	log.Debug("rendering level %d/%d", view.Number, view.TotalLevels)
	s.render(w, r, "pages/game.html", pageData{
		"view": view,
	})
}

// handleSubmitAnswer scores one submission. Correct answers redirect
// back to /game so the next level renders with the success banner;
// incorrect ones re-render the level with the failure message inline.
func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	sessionID := sessionIDFromContext(r.Context())

	ans := game.Answer{
		Password:          r.FormValue("password"),
		ChoiceID:          r.FormValue("choice"),
		Text:              r.FormValue("answer"),
		ClientTimeLeft:    optionalInt(r.FormValue("time_left")),
		ClientElapsedSecs: optionalFloat(r.FormValue("elapsed_seconds")),
	}

	out := s.GameService.Submit(r.Context(), sessionID, ans)
	switch {
	case out.Won:
		http.Redirect(w, r, "/win", http.StatusSeeOther)
	case out.Expired || out.Status == models.StatusLost:
		http.Redirect(w, r, "/lose", http.StatusSeeOther)
	case out.Terminal:
		s.redirectToOutcome(w, r, sessionID)
	case out.Correct:
		http.Redirect(w, r, "/game", http.StatusSeeOther)
	default:
		log.Debug("incorrect answer: session=%s", sessionID)
		view, ok := s.GameService.View(r.Context(), sessionID)
		if !ok {
			s.redirectToOutcome(w, r, sessionID)
			return
		}
		s.render(w, r, "pages/game.html", pageData{
			"view":  view,
			"error": out.Message,
		})
	}
}

// handleHint serves the hint endpoint as JSON. Depleted budgets and
// exhausted hint lists are ordinary 200 responses; only a finished game
// is an error.
func (s *Server) handleHint(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	sessionID := sessionIDFromContext(r.Context())

	res := s.GameService.Hint(r.Context(), sessionID, optionalInt(r.FormValue("time_left")))
	if res.Terminal {
		rep := s.GameService.Report(r.Context(), sessionID)
		handleError(w, r, errors.NewGameOverError(string(rep.Outcome)))
		return
	}

	log.Debug("hint response: granted=%t, hints_left=%d", res.Sequence > 0, res.HintsLeft)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Error("failed to encode hint response: %v", err)
	}
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	s.GameService.Reset(r.Context(), sessionID)
	http.Redirect(w, r, "/game", http.StatusSeeOther)
}

// handleWin renders the victory report. Sessions that did not actually
// win are bounced back to the game to prevent URL guessing.
func (s *Server) handleWin(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	rep := s.GameService.Report(r.Context(), sessionID)
	if rep.Outcome != models.StatusWon {
		http.Redirect(w, r, "/game", http.StatusSeeOther)
		return
	}
	s.render(w, r, "pages/win.html", pageData{"report": rep})
}

func (s *Server) handleLose(w http.ResponseWriter, r *http.Request) {
	sessionID := sessionIDFromContext(r.Context())
	rep := s.GameService.Report(r.Context(), sessionID)
	if rep.Outcome != models.StatusLost {
		http.Redirect(w, r, "/game", http.StatusSeeOther)
		return
	}
	s.render(w, r, "pages/lose.html", pageData{"report": rep})
}

// handleReport serves the final performance summary as JSON. The run
// has to be over first; a session still in play gets a 400.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	sessionID := sessionIDFromContext(r.Context())

	rep := s.GameService.Report(r.Context(), sessionID)
	if rep.Outcome == models.StatusPlaying {
		handleError(w, r, errors.NewBadRequestError("game still in progress"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rep); err != nil {
		log.Error("failed to encode report: %v", err)
	}
}

// redirectToOutcome sends a terminal session to its matching report page.
func (s *Server) redirectToOutcome(w http.ResponseWriter, r *http.Request, sessionID string) {
	rep := s.GameService.Report(r.Context(), sessionID)
	if rep.Outcome == models.StatusWon {
		http.Redirect(w, r, "/win", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/lose", http.StatusSeeOther)
}

// optionalInt parses a form value into an optional integer. Missing or
// malformed values are treated as absent, never as errors.
func optionalInt(raw string) *int {
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

// optionalFloat parses a form value into an optional float with the
// same absent-if-malformed semantics.
func optionalFloat(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}
