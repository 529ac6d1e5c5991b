package workflow

import (
	"context"
	"errors"
	"strings"
	"time"

	"talent-hub/internal/domain/application"
	"talent-hub/internal/domain/job"
)

var (
	ErrDuplicateApplication = errors.New("duplicate application")
	ErrInvalidTransition    = errors.New("invalid status transition")
)

// allowedNext is the forward-only transition table. Hired and rejected are
// terminal. Setting the current status again is permitted so employers can
// attach notes without moving the pipeline.
var allowedNext = map[application.Status]map[application.Status]bool{
	application.StatusApplied: {
		application.StatusReviewed:    true,
		application.StatusShortlisted: true,
		application.StatusRejected:    true,
	},
	application.StatusReviewed: {
		application.StatusShortlisted: true,
		application.StatusRejected:    true,
	},
	application.StatusShortlisted: {
		application.StatusHired:    true,
		application.StatusRejected: true,
	},
	application.StatusRejected: {},
	application.StatusHired:    {},
}

func CanTransition(from, to application.Status) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	if from == to {
		return true
	}
	return allowedNext[from][to]
}

// Engine owns the application lifecycle: creation with duplicate rejection
// and status updates against the transition table. Dependent aggregates are
// always recomputed from full collections by their consumers, so the engine
// mutates nothing beyond the application itself.
type Engine struct {
	apps application.Repository
	now  func() time.Time
}

func NewEngine(apps application.Repository) *Engine {
	return &Engine{apps: apps, now: time.Now}
}

// Apply creates an application in state applied, snapshotting the job's
// title, company and location. Exactly one application may exist per
// (job, seeker) pair.
func (e *Engine) Apply(ctx context.Context, j job.Job, jobSeekerID int64, coverLetter string) (application.Application, error) {
	exists, err := e.apps.ExistsForJobAndSeeker(ctx, j.ID, jobSeekerID)
	if err != nil {
		return application.Application{}, err
	}
	if exists {
		return application.Application{}, ErrDuplicateApplication
	}

	a := application.Application{
		JobID:       j.ID,
		JobSeekerID: jobSeekerID,
		JobTitle:    j.Title,
		CompanyName: j.CompanyName,
		Location:    j.Location,
		CoverLetter: strings.TrimSpace(coverLetter),
		AppliedAt:   e.now().UTC(),
		Status:      application.StatusApplied,
	}
	return e.apps.Create(ctx, a)
}

// UpdateStatus moves an application along the workflow and optionally
// replaces the employer notes. Notes content is not validated.
func (e *Engine) UpdateStatus(ctx context.Context, id int64, next application.Status, notes *string) (application.Application, error) {
	a, err := e.apps.GetByID(ctx, id)
	if err != nil {
		return application.Application{}, err
	}

	if !CanTransition(a.Status, next) {
		return application.Application{}, ErrInvalidTransition
	}

	a.Status = next
	if notes != nil {
		a.EmployerNotes = notes
	}
	return e.apps.Update(ctx, a)
}
