package services

import (
	"context"
	"time"

	"github.com/mrivero/cyberbomb/internal/db"
	"github.com/mrivero/cyberbomb/internal/game"
	"github.com/mrivero/cyberbomb/internal/logger"
	"github.com/mrivero/cyberbomb/internal/models"
	"github.com/mrivero/cyberbomb/internal/session"
	"github.com/mrivero/cyberbomb/internal/worker"
)

// JobSubmitter enqueues background jobs. Satisfied by worker.Pool.
type JobSubmitter interface {
	Submit(worker.Job)
}

// GameService handles gameplay business logic: it loads the session,
// runs one engine operation and writes the session back.
type GameService interface {
	View(ctx context.Context, sessionID string) (models.LevelView, bool)
	Submit(ctx context.Context, sessionID string, ans game.Answer) game.Outcome
	Hint(ctx context.Context, sessionID string, clientTimeLeft *int) game.HintResult
	Reset(ctx context.Context, sessionID string)
	Report(ctx context.Context, sessionID string) models.Report
}

type gameService struct {
	store    *session.Store
	engine   *game.Engine
	db       *db.DB
	archiver JobSubmitter
	ruleset  string
	now      func() time.Time
}

// NewGameService creates a new GameService. The archiver receives one
// job per session that reaches a terminal state; pass nil to disable
// archiving.
func NewGameService(store *session.Store, engine *game.Engine, database *db.DB, archiver JobSubmitter, ruleset string) GameService {
	return &gameService{
		store:    store,
		engine:   engine,
		db:       database,
		archiver: archiver,
		ruleset:  ruleset,
		now:      time.Now,
	}
}

func (s *gameService) View(ctx context.Context, sessionID string) (models.LevelView, bool) {
	sess := s.store.Get(sessionID)
	wasTerminal := sess.Terminal()

	view, ok := s.engine.Snapshot(&sess, s.now())

	s.store.Put(sess)
	s.maybeArchive(ctx, &sess, wasTerminal)
	return view, ok
}

func (s *gameService) Submit(ctx context.Context, sessionID string, ans game.Answer) game.Outcome {
	log := logger.FromContext(ctx)
	sess := s.store.Get(sessionID)
	wasTerminal := sess.Terminal()

	out := s.engine.SubmitAnswer(&sess, ans, s.now())
	log.Debug("answer evaluated: session=%s, level=%d, correct=%t, status=%s",
		sessionID, sess.LevelIndex, out.Correct, sess.Status)

	s.store.Put(sess)
	s.maybeArchive(ctx, &sess, wasTerminal)
	return out
}

func (s *gameService) Hint(ctx context.Context, sessionID string, clientTimeLeft *int) game.HintResult {
	log := logger.FromContext(ctx)
	sess := s.store.Get(sessionID)
	wasTerminal := sess.Terminal()

	res := s.engine.RequestHint(&sess, clientTimeLeft, s.now())
	log.Debug("hint requested: session=%s, granted=%t, hints_left=%d",
		sessionID, res.Sequence > 0, res.HintsLeft)

	s.store.Put(sess)
	s.maybeArchive(ctx, &sess, wasTerminal)
	return res
}

func (s *gameService) Reset(ctx context.Context, sessionID string) {
	log := logger.FromContext(ctx)
	sess := s.store.Get(sessionID)
	s.engine.Reset(&sess)
	s.store.Put(sess)
	log.Info("session reset: id=%s", sessionID)
}

func (s *gameService) Report(ctx context.Context, sessionID string) models.Report {
	sess := s.store.Get(sessionID)
	return s.engine.Report(&sess)
}

// maybeArchive submits an archive job when this operation moved the
// session into a terminal state.
func (s *gameService) maybeArchive(ctx context.Context, sess *models.Session, wasTerminal bool) {
	if s.archiver == nil || wasTerminal || !sess.Terminal() {
		return
	}
	rep := s.engine.Report(sess)
	s.archiver.Submit(&worker.ArchiveResultJob{
		DB: s.db,
		Result: models.GameResult{
			SessionID:       sess.ID,
			Outcome:         string(sess.Status),
			Ruleset:         s.ruleset,
			TimeLeft:        rep.TimeLeft,
			LevelsCleared:   rep.LevelsCleared,
			TotalLevels:     rep.TotalLevels,
			Attempts:        rep.Attempts,
			Correct:         rep.Correct,
			AccuracyPct:     rep.AccuracyPct,
			AvgResponseSecs: rep.AvgResponseSecs,
			FinishedAt:      s.now().UTC(),
		},
	})
	logger.FromContext(ctx).Info("game finished: session=%s, outcome=%s, levels=%d/%d",
		sess.ID, sess.Status, rep.LevelsCleared, rep.TotalLevels)
}
