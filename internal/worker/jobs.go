package worker

import (
	"context"

	"github.com/mrivero/cyberbomb/internal/db"
	"github.com/mrivero/cyberbomb/internal/logger"
	"github.com/mrivero/cyberbomb/internal/models"
)

// ArchiveResultJob writes one finished run into the results archive.
type ArchiveResultJob struct {
	DB     *db.DB
	Result models.GameResult
}

func (j *ArchiveResultJob) Name() string { return "archive-result" }

func (j *ArchiveResultJob) Run(ctx context.Context) error {
	log := logger.FromContext(ctx)
	id, err := j.DB.InsertResult(ctx, j.Result)
	if err != nil {
		return err
	}
	log.Debug("archived result id=%d for session %s", id, j.Result.SessionID)
	return nil
}
