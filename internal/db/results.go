package db

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/mrivero/cyberbomb/internal/logger"
	"github.com/mrivero/cyberbomb/internal/models"
)

var sqlBuilder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)

// InsertResult archives one finished run.
func (db *DB) InsertResult(ctx context.Context, res models.GameResult) (int64, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("inserting game result: session_id=%s, outcome=%s", res.SessionID, res.Outcome)

	out, err := db.ExecContext(ctx, `
INSERT INTO game_results (session_id, outcome, ruleset, time_left, levels_cleared, total_levels,
                          attempts, correct, accuracy_pct, avg_response_seconds, finished_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, res.SessionID, res.Outcome, res.Ruleset, res.TimeLeft, res.LevelsCleared, res.TotalLevels,
		res.Attempts, res.Correct, res.AccuracyPct, res.AvgResponseSecs, res.FinishedAt)
	if err != nil {
		log.Error("failed to insert game result: %v", err)
		return 0, err
	}
	id, err := out.LastInsertId()
	if err != nil {
		log.Error("failed to read inserted result id: %v", err)
		return 0, err
	}
	log.Debug("game result archived: id=%d", id)
	return id, nil
}

// GetResult returns one archived result, or nil when it does not exist.
func (db *DB) GetResult(ctx context.Context, id int64) (*models.GameResult, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("getting game result: id=%d", id)

	var r models.GameResult
	err := db.QueryRowContext(ctx, `
SELECT id, session_id, outcome, ruleset, time_left, levels_cleared, total_levels,
       attempts, correct, accuracy_pct, avg_response_seconds, finished_at
FROM game_results
WHERE id = ?
`, id).Scan(&r.ID, &r.SessionID, &r.Outcome, &r.Ruleset, &r.TimeLeft, &r.LevelsCleared,
		&r.TotalLevels, &r.Attempts, &r.Correct, &r.AccuracyPct, &r.AvgResponseSecs, &r.FinishedAt)
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("game result not found: id=%d", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get game result: %v", err)
		return nil, err
	}
	return &r, nil
}

// ListResults returns archived runs narrowed and ordered by filter.
func (db *DB) ListResults(ctx context.Context, filter models.ResultFilter) ([]models.GameResult, error) {
	log := logger.FromContext(ctx).WithPrefix("db")
	log.Debug("listing game results: outcome=%s, ruleset=%s", filter.Outcome, filter.Ruleset)

	query := sqlBuilder.Select(
		"id", "session_id", "outcome", "ruleset", "time_left", "levels_cleared",
		"total_levels", "attempts", "correct", "accuracy_pct", "avg_response_seconds", "finished_at",
	).From("game_results")

	// Dynamic WHERE clauses
	if filter.Outcome != "" {
		query = query.Where(squirrel.Eq{"outcome": filter.Outcome})
	}
	if filter.Ruleset != "" {
		query = query.Where(squirrel.Eq{"ruleset": filter.Ruleset})
	}

	// Safe ORDER BY with validation
	orderBy := "finished_at"
	if filter.OrderBy == "time_left" {
		orderBy = "time_left"
	}
	orderDir := "DESC"
	if filter.OrderDir == "ASC" {
		orderDir = "ASC"
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query = query.Limit(uint64(limit)).Offset(uint64(offset))

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list game results: %v", err)
		return nil, err
	}
	defer rows.Close()

	var results []models.GameResult
	for rows.Next() {
		var r models.GameResult
		if err := rows.Scan(&r.ID, &r.SessionID, &r.Outcome, &r.Ruleset, &r.TimeLeft, &r.LevelsCleared,
			&r.TotalLevels, &r.Attempts, &r.Correct, &r.AccuracyPct, &r.AvgResponseSecs, &r.FinishedAt); err != nil {
			log.Error("failed to scan result row: %v", err)
			return nil, err
		}
		results = append(results, r)
	}
	log.Debug("found %d game results", len(results))
	return results, rows.Err()
}

// CountResults returns the number of archived runs matching filter.
func (db *DB) CountResults(ctx context.Context, filter models.ResultFilter) (int, error) {
	log := logger.FromContext(ctx).WithPrefix("db")

	query := sqlBuilder.Select("COUNT(*)").From("game_results")
	if filter.Outcome != "" {
		query = query.Where(squirrel.Eq{"outcome": filter.Outcome})
	}
	if filter.Ruleset != "" {
		query = query.Where(squirrel.Eq{"ruleset": filter.Ruleset})
	}

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build count query: %v", err)
		return 0, err
	}

	var count int
	if err := db.QueryRowContext(ctx, sqlStr, args...).Scan(&count); err != nil {
		log.Error("failed to count game results: %v", err)
		return 0, err
	}
	return count, nil
}
