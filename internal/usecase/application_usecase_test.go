package usecase

import (
	"context"
	"errors"
	"testing"

	"talent-hub/internal/domain/application"
	"talent-hub/internal/domain/job"
	"talent-hub/internal/workflow"
)

type mockApplicationRepo struct {
	byID     map[int64]application.Application
	bySeeker map[int64][]application.Application
	byJob    map[int64][]application.Application
	exists   bool
	created  []application.Application
	updated  []application.Application
}

func (m *mockApplicationRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	a.ID = int64(len(m.created) + 1)
	m.created = append(m.created, a)
	return a, nil
}

func (m *mockApplicationRepo) GetByID(_ context.Context, id int64) (application.Application, error) {
	a, ok := m.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (m *mockApplicationRepo) Update(_ context.Context, a application.Application) (application.Application, error) {
	m.updated = append(m.updated, a)
	return a, nil
}

func (m *mockApplicationRepo) Delete(context.Context, int64) (bool, error) { return false, nil }
func (m *mockApplicationRepo) List(context.Context) ([]application.Application, error) {
	return nil, nil
}
func (m *mockApplicationRepo) ListByJob(_ context.Context, jobID int64) ([]application.Application, error) {
	return m.byJob[jobID], nil
}
func (m *mockApplicationRepo) ListByJobSeeker(_ context.Context, seekerID int64) ([]application.Application, error) {
	return m.bySeeker[seekerID], nil
}
func (m *mockApplicationRepo) ListByStatus(context.Context, application.Status) ([]application.Application, error) {
	return nil, nil
}
func (m *mockApplicationRepo) ExistsForJobAndSeeker(context.Context, int64, int64) (bool, error) {
	return m.exists, nil
}

type recordedEvent struct {
	kind string
	app  application.Application
}

type mockNotifier struct {
	events []recordedEvent
}

func (m *mockNotifier) ApplicationCreated(a application.Application) {
	m.events = append(m.events, recordedEvent{"created", a})
}

func (m *mockNotifier) ApplicationStatusChanged(a application.Application) {
	m.events = append(m.events, recordedEvent{"status", a})
}

func newApplicationFixture(apps *mockApplicationRepo, jobs *mockJobRepo, n EventNotifier) *Applications {
	return NewApplicationUsecase(apps, jobs, workflow.NewEngine(apps), n)
}

func TestApply_InactiveJobRejected(t *testing.T) {
	jobs := &mockJobRepo{byID: map[int64]job.Job{
		1: {ID: 1, Status: job.StatusInactive},
	}}
	uc := newApplicationFixture(&mockApplicationRepo{}, jobs, nil)

	_, err := uc.Apply(context.Background(), 42, 1, "")
	if !errors.Is(err, ErrJobNotAcceptingApplications) {
		t.Fatalf("expected ErrJobNotAcceptingApplications, got %v", err)
	}
}

func TestApply_UnknownJob(t *testing.T) {
	uc := newApplicationFixture(&mockApplicationRepo{}, &mockJobRepo{}, nil)

	_, err := uc.Apply(context.Background(), 42, 99, "")
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestApply_DuplicateSurfacesWorkflowError(t *testing.T) {
	jobs := &mockJobRepo{byID: map[int64]job.Job{
		1: {ID: 1, Status: job.StatusActive},
	}}
	apps := &mockApplicationRepo{exists: true}
	notifier := &mockNotifier{}
	uc := newApplicationFixture(apps, jobs, notifier)

	_, err := uc.Apply(context.Background(), 42, 1, "")
	if !errors.Is(err, workflow.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
	if len(notifier.events) != 0 {
		t.Fatalf("failed apply must not notify")
	}
}

func TestApply_NotifiesOnSuccess(t *testing.T) {
	jobs := &mockJobRepo{byID: map[int64]job.Job{
		1: {ID: 1, Status: job.StatusActive, Title: "Go Engineer", CompanyName: "TechFlow"},
	}}
	apps := &mockApplicationRepo{}
	notifier := &mockNotifier{}
	uc := newApplicationFixture(apps, jobs, notifier)

	created, err := uc.Apply(context.Background(), 42, 1, "hi")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if created.JobTitle != "Go Engineer" {
		t.Fatalf("snapshot missing: %+v", created)
	}
	if len(notifier.events) != 1 || notifier.events[0].kind != "created" {
		t.Fatalf("expected one created event, got %+v", notifier.events)
	}
}

func TestListForJob_OwnershipEnforced(t *testing.T) {
	jobs := &mockJobRepo{byID: map[int64]job.Job{
		1: {ID: 1, EmployerID: 7, Status: job.StatusActive},
	}}
	apps := &mockApplicationRepo{byJob: map[int64][]application.Application{
		1: {{ID: 10, JobID: 1}},
	}}
	uc := newApplicationFixture(apps, jobs, nil)

	if _, err := uc.ListForJob(context.Background(), 8, 1); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	got, err := uc.ListForJob(context.Background(), 7, 1)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 application, got %d", len(got))
	}
}

func TestUpdateStatus_OwnershipAndTransition(t *testing.T) {
	jobs := &mockJobRepo{byID: map[int64]job.Job{
		1: {ID: 1, EmployerID: 7},
	}}
	apps := &mockApplicationRepo{byID: map[int64]application.Application{
		10: {ID: 10, JobID: 1, Status: application.StatusApplied},
	}}
	notifier := &mockNotifier{}
	uc := newApplicationFixture(apps, jobs, notifier)

	if _, err := uc.UpdateStatus(context.Background(), 8, 10, application.StatusReviewed, nil); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for non-owner, got %v", err)
	}

	if _, err := uc.UpdateStatus(context.Background(), 7, 10, application.StatusHired, nil); !errors.Is(err, workflow.ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition for applied->hired, got %v", err)
	}

	updated, err := uc.UpdateStatus(context.Background(), 7, 10, application.StatusReviewed, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if updated.Status != application.StatusReviewed {
		t.Fatalf("status not updated: %s", updated.Status)
	}
	if len(notifier.events) != 1 || notifier.events[0].kind != "status" {
		t.Fatalf("expected one status event, got %+v", notifier.events)
	}
}

func TestUpdateStatus_SameStatusDoesNotNotify(t *testing.T) {
	jobs := &mockJobRepo{byID: map[int64]job.Job{
		1: {ID: 1, EmployerID: 7},
	}}
	apps := &mockApplicationRepo{byID: map[int64]application.Application{
		10: {ID: 10, JobID: 1, Status: application.StatusReviewed},
	}}
	notifier := &mockNotifier{}
	uc := newApplicationFixture(apps, jobs, notifier)

	notes := "notes only"
	if _, err := uc.UpdateStatus(context.Background(), 7, 10, application.StatusReviewed, &notes); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(notifier.events) != 0 {
		t.Fatalf("same-status update must not notify, got %+v", notifier.events)
	}
}
