package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/themizzi/swaglabs-e2e/internal/database"
	"github.com/themizzi/swaglabs-e2e/internal/models"
)

// ErrRunNotFound is returned when no run matches the requested id
var ErrRunNotFound = errors.New("run not found")

// RunRepository handles database operations for suite runs
type RunRepository struct {
	db *sql.DB
}

// NewRunRepository creates a new run repository on the shared connection
func NewRunRepository() *RunRepository {
	return &RunRepository{
		db: database.DB,
	}
}

// NewRunRepositoryWithDB creates a new run repository with a specific database connection
func NewRunRepositoryWithDB(db *sql.DB) *RunRepository {
	return &RunRepository{
		db: db,
	}
}

// CreateRun inserts a run that has just started
func (r *RunRepository) CreateRun(run *models.Run) error {
	query := `
		INSERT INTO suite_runs (id, scenario, base_url, browser, status, failure_reason, started_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(query,
		run.ID,
		run.Scenario,
		run.BaseURL,
		run.Browser,
		run.Status,
		run.FailureReason,
		run.StartedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create run: %w", err)
	}

	return nil
}

// GetRun retrieves a run by its id
func (r *RunRepository) GetRun(id string) (*models.Run, error) {
	query := `
		SELECT id, scenario, base_url, browser, status, failure_reason, started_at, finished_at
		FROM suite_runs
		WHERE id = $1
	`

	run, err := scanRun(r.db.QueryRow(query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get run: %w", err)
	}

	return run, nil
}

// FinishRun stores the final status of a run
func (r *RunRepository) FinishRun(run *models.Run) error {
	query := `
		UPDATE suite_runs
		SET status = $1, failure_reason = $2, finished_at = $3
		WHERE id = $4
	`

	result, err := r.db.Exec(query, run.Status, run.FailureReason, run.FinishedAt, run.ID)
	if err != nil {
		return fmt.Errorf("failed to finish run: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, run.ID)
	}

	return nil
}

// ListRuns returns the most recent runs, newest first
func (r *RunRepository) ListRuns(limit int) ([]*models.Run, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	query := `
		SELECT id, scenario, base_url, browser, status, failure_reason, started_at, finished_at
		FROM suite_runs
		ORDER BY started_at DESC
		LIMIT $1
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	defer rows.Close()

	var runs []*models.Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	return runs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (*models.Run, error) {
	run := &models.Run{}
	var finished sql.NullTime
	err := s.Scan(
		&run.ID,
		&run.Scenario,
		&run.BaseURL,
		&run.Browser,
		&run.Status,
		&run.FailureReason,
		&run.StartedAt,
		&finished,
	)
	if err != nil {
		return nil, err
	}
	if finished.Valid {
		run.FinishedAt = finished.Time
	}
	return run, nil
}
