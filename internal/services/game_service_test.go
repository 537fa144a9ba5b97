package services

import (
	"context"
	"testing"
	"time"

	"github.com/mrivero/cyberbomb/internal/game"
	"github.com/mrivero/cyberbomb/internal/models"
	"github.com/mrivero/cyberbomb/internal/session"
	"github.com/mrivero/cyberbomb/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureSubmitter struct {
	jobs []worker.Job
}

func (c *captureSubmitter) Submit(j worker.Job) {
	c.jobs = append(c.jobs, j)
}

func newTestGameService(archiver JobSubmitter) (GameService, *session.Store) {
	store := session.NewStore(time.Hour)
	engine := game.New(models.ClassicParams(), game.DefaultLevels())
	return NewGameService(store, engine, nil, archiver, "classic"), store
}

func TestGameService_ViewInitializesSession(t *testing.T) {
	svc, store := newTestGameService(nil)
	ctx := context.Background()

	view, ok := svc.View(ctx, "p1")
	require.True(t, ok)
	assert.Equal(t, 1, view.Number)
	assert.Equal(t, 600, view.TimeLeft)
	assert.Equal(t, 3, view.HintsLeft)

	sess := store.Get("p1")
	assert.True(t, sess.Initialized, "snapshot must persist initialization")
}

func TestGameService_SubmitPersistsProgress(t *testing.T) {
	svc, store := newTestGameService(nil)
	ctx := context.Background()

	out := svc.Submit(ctx, "p1", game.Answer{Password: "1234"})
	require.True(t, out.Correct)

	sess := store.Get("p1")
	assert.Equal(t, 1, sess.LevelIndex)
	assert.Equal(t, 630, sess.TimeLeft)
}

func TestGameService_HintPersistsCost(t *testing.T) {
	svc, store := newTestGameService(nil)
	ctx := context.Background()

	res := svc.Hint(ctx, "p1", nil)
	assert.Equal(t, 1, res.Sequence)
	assert.Equal(t, 2, res.HintsLeft)

	sess := store.Get("p1")
	assert.Equal(t, 2, sess.HintsLeft)
	assert.Equal(t, 590, sess.TimeLeft)
}

func TestGameService_ArchivesOnLoss(t *testing.T) {
	capture := &captureSubmitter{}
	svc, _ := newTestGameService(capture)
	ctx := context.Background()

	svc.View(ctx, "p1")

	zero := 0
	out := svc.Submit(ctx, "p1", game.Answer{Password: "1234", ClientTimeLeft: &zero})
	require.True(t, out.Expired)

	require.Len(t, capture.jobs, 1)
	job, ok := capture.jobs[0].(*worker.ArchiveResultJob)
	require.True(t, ok)
	assert.Equal(t, "p1", job.Result.SessionID)
	assert.Equal(t, "lost", job.Result.Outcome)
	assert.Equal(t, "classic", job.Result.Ruleset)
	assert.Equal(t, 0, job.Result.TimeLeft)
}

func TestGameService_ArchivesOnWinOnce(t *testing.T) {
	capture := &captureSubmitter{}
	svc, _ := newTestGameService(capture)
	ctx := context.Background()

	answers := []game.Answer{
		{Password: "1234"},
		{ChoiceID: "c"},
		{Text: "There is no spoon"},
		{Text: "BLUEBELL2025"},
	}
	for _, ans := range answers {
		out := svc.Submit(ctx, "p1", ans)
		require.True(t, out.Correct)
	}

	require.Len(t, capture.jobs, 1, "exactly one archive job per finished run")
	job := capture.jobs[0].(*worker.ArchiveResultJob)
	assert.Equal(t, "won", job.Result.Outcome)
	assert.Equal(t, 4, job.Result.LevelsCleared)
	assert.Equal(t, 4, job.Result.TotalLevels)

	// Further requests against the finished session must not re-archive.
	svc.View(ctx, "p1")
	svc.Submit(ctx, "p1", game.Answer{Text: "anything"})
	assert.Len(t, capture.jobs, 1)
}

func TestGameService_ResetKeepsSessionAddressable(t *testing.T) {
	svc, store := newTestGameService(nil)
	ctx := context.Background()

	svc.Submit(ctx, "p1", game.Answer{Password: "1234"})
	svc.Reset(ctx, "p1")

	sess := store.Get("p1")
	assert.Equal(t, "p1", sess.ID)
	assert.False(t, sess.Initialized)

	view, ok := svc.View(ctx, "p1")
	require.True(t, ok)
	assert.Equal(t, 1, view.Number, "reset returns to the first level")
}

func TestGameService_ReportReflectsSession(t *testing.T) {
	svc, _ := newTestGameService(nil)
	ctx := context.Background()

	svc.Submit(ctx, "p1", game.Answer{Password: "1234"})
	svc.Submit(ctx, "p1", game.Answer{ChoiceID: "a"})

	rep := svc.Report(ctx, "p1")
	assert.Equal(t, models.StatusPlaying, rep.Outcome)
	assert.Equal(t, 1, rep.LevelsCleared)
	assert.Equal(t, 1, rep.Attempts, "password level is exempt from telemetry")
	assert.Equal(t, 0, rep.Correct)
}
