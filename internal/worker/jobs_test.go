package worker_test

import (
	"context"
	"testing"
	"time"

	"github.com/mrivero/cyberbomb/internal/models"
	"github.com/mrivero/cyberbomb/internal/testutil"
	"github.com/mrivero/cyberbomb/internal/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveResultJob_Run(t *testing.T) {
	database := testutil.NewTestDB(t)
	defer testutil.MustClose(t, database)

	job := &worker.ArchiveResultJob{
		DB: database,
		Result: models.GameResult{
			SessionID:     "s1",
			Outcome:       "won",
			Ruleset:       "classic",
			TimeLeft:      88,
			LevelsCleared: 4,
			TotalLevels:   4,
			FinishedAt:    time.Now().UTC(),
		},
	}
	require.NoError(t, job.Run(context.Background()))

	results, err := database.ListResults(context.Background(), models.ResultFilter{})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "s1", results[0].SessionID)
	assert.Equal(t, 88, results[0].TimeLeft)
}

func TestPool_ProcessesSubmittedJobs(t *testing.T) {
	database := testutil.NewTestDB(t)
	defer testutil.MustClose(t, database)

	pool := worker.NewPool(2, 8)
	pool.Start(context.Background())

	for i := 0; i < 3; i++ {
		pool.Submit(&worker.ArchiveResultJob{
			DB: database,
			Result: models.GameResult{
				SessionID:  "s",
				Outcome:    "lost",
				Ruleset:    "classic",
				FinishedAt: time.Now().UTC(),
			},
		})
	}

	require.Eventually(t, func() bool {
		count, err := database.CountResults(context.Background(), models.ResultFilter{})
		return err == nil && count == 3
	}, 2*time.Second, 10*time.Millisecond)

	pool.Stop()
	assert.Equal(t, 0, pool.QueueSize())
}
