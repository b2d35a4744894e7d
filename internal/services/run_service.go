package services

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/themizzi/swaglabs-e2e/internal/models"
)

// RunRepository defines the interface for run persistence
type RunRepository interface {
	CreateRun(run *models.Run) error
	GetRun(id string) (*models.Run, error)
	FinishRun(run *models.Run) error
	ListRuns(limit int) ([]*models.Run, error)
}

// RunService records suite runs and their outcome
type RunService interface {
	StartRun(scenario, baseURL, browser string) (*models.Run, error)
	CompleteRun(run *models.Run, runErr error) error
	RecentRuns(limit int) ([]*models.Run, error)
}

// RunServiceImpl implements RunService
type RunServiceImpl struct {
	runRepo RunRepository
}

// NewRunService creates a new run service
func NewRunService(runRepo RunRepository) RunService {
	return &RunServiceImpl{
		runRepo: runRepo,
	}
}

// StartRun creates and stores a running run
func (s *RunServiceImpl) StartRun(scenario, baseURL, browser string) (*models.Run, error) {
	run, err := models.NewRun(scenario, baseURL, browser)
	if err != nil {
		return nil, fmt.Errorf("invalid run: %w", err)
	}

	if err := s.runRepo.CreateRun(run); err != nil {
		return nil, fmt.Errorf("failed to start run: %w", err)
	}

	log.Debug().Str("run_id", run.ID).Str("scenario", scenario).Msg("run started")
	return run, nil
}

// CompleteRun marks the run passed when runErr is nil and failed otherwise, then stores it
func (s *RunServiceImpl) CompleteRun(run *models.Run, runErr error) error {
	if run == nil {
		return fmt.Errorf("run cannot be nil")
	}

	var err error
	if runErr == nil {
		err = run.Pass()
	} else {
		err = run.Fail(runErr.Error())
	}
	if err != nil {
		return fmt.Errorf("failed to complete run %s: %w", run.ID, err)
	}

	if err := s.runRepo.FinishRun(run); err != nil {
		return fmt.Errorf("failed to store run %s: %w", run.ID, err)
	}

	log.Info().
		Str("run_id", run.ID).
		Str("status", string(run.Status)).
		Dur("duration", run.Duration()).
		Msg("run completed")
	return nil
}

// RecentRuns returns up to limit runs, newest first
func (s *RunServiceImpl) RecentRuns(limit int) ([]*models.Run, error) {
	runs, err := s.runRepo.ListRuns(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}
