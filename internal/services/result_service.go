package services

import (
	"context"

	"github.com/mrivero/cyberbomb/internal/db"
	"github.com/mrivero/cyberbomb/internal/errors"
	"github.com/mrivero/cyberbomb/internal/logger"
	"github.com/mrivero/cyberbomb/internal/models"
)

// ResultService reads the archive of finished runs.
type ResultService interface {
	Leaderboard(ctx context.Context, filter models.ResultFilter) ([]models.GameResult, int, error)
}

type resultService struct {
	db *db.DB
}

// NewResultService creates a new ResultService
func NewResultService(database *db.DB) ResultService {
	return &resultService{db: database}
}

// Leaderboard returns archived runs matching filter plus the total
// match count for pagination.
func (s *resultService) Leaderboard(ctx context.Context, filter models.ResultFilter) ([]models.GameResult, int, error) {
	log := logger.FromContext(ctx)

	if filter.Outcome != "" && filter.Outcome != "won" && filter.Outcome != "lost" {
		return nil, 0, errors.NewValidationError("outcome", "must be won or lost")
	}

	results, err := s.db.ListResults(ctx, filter)
	if err != nil {
		log.Error("failed to list results: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}

	count, err := s.db.CountResults(ctx, filter)
	if err != nil {
		log.Error("failed to count results: %v", err)
		return nil, 0, errors.NewInternalError(err)
	}

	return results, count, nil
}
