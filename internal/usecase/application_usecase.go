package usecase

import (
	"context"
	"errors"

	"talent-hub/internal/domain/application"
	"talent-hub/internal/domain/job"
	"talent-hub/internal/workflow"
)

var (
	ErrJobNotAcceptingApplications = errors.New("job not accepting applications")
	ErrApplicationNotFound         = errors.New("application not found")
)

// EventNotifier fans application lifecycle events out to connected clients.
// A nil notifier is a no-op.
type EventNotifier interface {
	ApplicationCreated(a application.Application)
	ApplicationStatusChanged(a application.Application)
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobSeekerID, jobID int64, coverLetter string) (application.Application, error)
	ListMine(ctx context.Context, jobSeekerID int64) ([]application.Application, error)
	ListForJob(ctx context.Context, employerID, jobID int64) ([]application.Application, error)
	UpdateStatus(ctx context.Context, employerID, applicationID int64, next application.Status, notes *string) (application.Application, error)
}

type Applications struct {
	apps     application.Repository
	jobs     job.Repository
	engine   *workflow.Engine
	notifier EventNotifier
}

func NewApplicationUsecase(apps application.Repository, jobs job.Repository, engine *workflow.Engine, notifier EventNotifier) *Applications {
	return &Applications{apps: apps, jobs: jobs, engine: engine, notifier: notifier}
}

// Apply submits an application to an active job. Inactive or missing jobs are
// rejected before the workflow engine sees the request.
func (u *Applications) Apply(ctx context.Context, jobSeekerID, jobID int64, coverLetter string) (application.Application, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return application.Application{}, ErrJobNotFound
		}
		return application.Application{}, ErrStoreUnavailable
	}
	if j.Status != job.StatusActive {
		return application.Application{}, ErrJobNotAcceptingApplications
	}

	created, err := u.engine.Apply(ctx, j, jobSeekerID, coverLetter)
	if err != nil {
		if errors.Is(err, workflow.ErrDuplicateApplication) {
			return application.Application{}, err
		}
		return application.Application{}, ErrStoreUnavailable
	}

	if u.notifier != nil {
		u.notifier.ApplicationCreated(created)
	}
	return created, nil
}

func (u *Applications) ListMine(ctx context.Context, jobSeekerID int64) ([]application.Application, error) {
	apps, err := u.apps.ListByJobSeeker(ctx, jobSeekerID)
	if err != nil {
		return nil, ErrStoreUnavailable
	}
	return apps, nil
}

// ListForJob returns a job's applications to its owning employer only.
func (u *Applications) ListForJob(ctx context.Context, employerID, jobID int64) ([]application.Application, error) {
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, ErrStoreUnavailable
	}
	if j.EmployerID != employerID {
		return nil, ErrForbidden
	}

	apps, err := u.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrStoreUnavailable
	}
	return apps, nil
}

func (u *Applications) UpdateStatus(ctx context.Context, employerID, applicationID int64, next application.Status, notes *string) (application.Application, error) {
	if !next.Valid() {
		return application.Application{}, ErrInvalidInput
	}

	a, err := u.apps.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, application.ErrNotFound) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, ErrStoreUnavailable
	}

	j, err := u.jobs.GetByID(ctx, a.JobID)
	if err != nil {
		return application.Application{}, ErrStoreUnavailable
	}
	if j.EmployerID != employerID {
		return application.Application{}, ErrForbidden
	}

	updated, err := u.engine.UpdateStatus(ctx, applicationID, next, notes)
	if err != nil {
		if errors.Is(err, workflow.ErrInvalidTransition) {
			return application.Application{}, err
		}
		return application.Application{}, ErrStoreUnavailable
	}

	if u.notifier != nil && updated.Status != a.Status {
		u.notifier.ApplicationStatusChanged(updated)
	}
	return updated, nil
}
