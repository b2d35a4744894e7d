package models

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// RunStatus represents valid suite run states
type RunStatus string

// Run statuses
const (
	RunStatusRunning RunStatus = "running"
	RunStatusPassed  RunStatus = "passed"
	RunStatusFailed  RunStatus = "failed"
)

// Run is one recorded execution of a scenario against a target
type Run struct {
	ID            string
	Scenario      string
	BaseURL       string
	Browser       string
	Status        RunStatus
	FailureReason string
	StartedAt     time.Time
	FinishedAt    time.Time
}

// Domain errors
var (
	ErrInvalidScenario            = errors.New("scenario name cannot be empty")
	ErrInvalidBaseURL             = errors.New("base URL must be absolute")
	ErrInvalidBrowser             = errors.New("browser cannot be empty")
	ErrInvalidRunStatusTransition = errors.New("invalid run status transition")
	ErrMissingFailureReason       = errors.New("failure reason cannot be empty")
)

// NewRun creates a running run with validation
func NewRun(scenario, baseURL, browser string) (*Run, error) {
	if err := validateRunInput(scenario, baseURL, browser); err != nil {
		return nil, err
	}

	return &Run{
		ID:        uuid.New().String(),
		Scenario:  scenario,
		BaseURL:   baseURL,
		Browser:   browser,
		Status:    RunStatusRunning,
		StartedAt: time.Now(),
	}, nil
}

// validateRunInput validates run creation parameters
func validateRunInput(scenario, baseURL, browser string) error {
	if scenario == "" {
		return ErrInvalidScenario
	}
	u, err := url.Parse(baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidBaseURL
	}
	if browser == "" {
		return ErrInvalidBrowser
	}
	return nil
}

// Pass marks the run as passed
func (r *Run) Pass() error {
	if r.Status != RunStatusRunning {
		return fmt.Errorf("%w: cannot pass run with status %s", ErrInvalidRunStatusTransition, r.Status)
	}

	r.Status = RunStatusPassed
	r.FinishedAt = time.Now()
	return nil
}

// Fail marks the run as failed with the first failure it hit
func (r *Run) Fail(reason string) error {
	if r.Status != RunStatusRunning {
		return fmt.Errorf("%w: cannot fail run with status %s", ErrInvalidRunStatusTransition, r.Status)
	}
	if reason == "" {
		return ErrMissingFailureReason
	}

	r.Status = RunStatusFailed
	r.FailureReason = reason
	r.FinishedAt = time.Now()
	return nil
}

// IsRunning returns true if the run has not finished
func (r *Run) IsRunning() bool {
	return r.Status == RunStatusRunning
}

// IsPassed returns true if the run passed
func (r *Run) IsPassed() bool {
	return r.Status == RunStatusPassed
}

// IsFailed returns true if the run failed
func (r *Run) IsFailed() bool {
	return r.Status == RunStatusFailed
}

// Duration returns how long the run took, or zero while it is still running
func (r *Run) Duration() time.Duration {
	if r.FinishedAt.IsZero() {
		return 0
	}
	return r.FinishedAt.Sub(r.StartedAt)
}
