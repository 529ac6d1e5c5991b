package workflow

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-hub/internal/domain/application"
	"talent-hub/internal/domain/job"
)

type mockAppRepo struct {
	byID    map[int64]application.Application
	exists  bool
	created []application.Application
	updated []application.Application
	err     error
}

func (m *mockAppRepo) Create(_ context.Context, a application.Application) (application.Application, error) {
	if m.err != nil {
		return application.Application{}, m.err
	}
	a.ID = int64(len(m.created) + 1)
	m.created = append(m.created, a)
	return a, nil
}

func (m *mockAppRepo) GetByID(_ context.Context, id int64) (application.Application, error) {
	a, ok := m.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (m *mockAppRepo) Update(_ context.Context, a application.Application) (application.Application, error) {
	if m.err != nil {
		return application.Application{}, m.err
	}
	m.updated = append(m.updated, a)
	return a, nil
}

func (m *mockAppRepo) Delete(context.Context, int64) (bool, error) { return false, nil }
func (m *mockAppRepo) List(context.Context) ([]application.Application, error) {
	return nil, nil
}
func (m *mockAppRepo) ListByJob(context.Context, int64) ([]application.Application, error) {
	return nil, nil
}
func (m *mockAppRepo) ListByJobSeeker(context.Context, int64) ([]application.Application, error) {
	return nil, nil
}
func (m *mockAppRepo) ListByStatus(context.Context, application.Status) ([]application.Application, error) {
	return nil, nil
}
func (m *mockAppRepo) ExistsForJobAndSeeker(context.Context, int64, int64) (bool, error) {
	return m.exists, m.err
}

func TestApply_SnapshotsJobFields(t *testing.T) {
	repo := &mockAppRepo{}
	e := NewEngine(repo)
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return fixed }

	j := job.Job{ID: 9, Title: "Go Engineer", CompanyName: "TechFlow", Location: "Berlin"}
	a, err := e.Apply(context.Background(), j, 42, "  hello  ")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if a.Status != application.StatusApplied {
		t.Fatalf("expected applied, got %s", a.Status)
	}
	if a.JobTitle != "Go Engineer" || a.CompanyName != "TechFlow" || a.Location != "Berlin" {
		t.Fatalf("snapshot mismatch: %+v", a)
	}
	if a.CoverLetter != "hello" {
		t.Fatalf("cover letter not trimmed: %q", a.CoverLetter)
	}
	if !a.AppliedAt.Equal(fixed) {
		t.Fatalf("unexpected applied time: %v", a.AppliedAt)
	}
}

func TestApply_RejectsDuplicate(t *testing.T) {
	repo := &mockAppRepo{exists: true}
	e := NewEngine(repo)

	_, err := e.Apply(context.Background(), job.Job{ID: 9}, 42, "")
	if !errors.Is(err, ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Fatalf("duplicate must not create")
	}
}

func TestCanTransition_Table(t *testing.T) {
	cases := []struct {
		from, to application.Status
		want     bool
	}{
		{application.StatusApplied, application.StatusReviewed, true},
		{application.StatusApplied, application.StatusShortlisted, true},
		{application.StatusApplied, application.StatusRejected, true},
		{application.StatusApplied, application.StatusHired, false},
		{application.StatusReviewed, application.StatusShortlisted, true},
		{application.StatusReviewed, application.StatusApplied, false},
		{application.StatusShortlisted, application.StatusHired, true},
		{application.StatusShortlisted, application.StatusReviewed, false},
		{application.StatusHired, application.StatusRejected, false},
		{application.StatusRejected, application.StatusApplied, false},
		{application.StatusReviewed, application.StatusReviewed, true},
		{"bogus", application.StatusReviewed, false},
	}

	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.want {
			t.Errorf("CanTransition(%s, %s) = %v, want %v", c.from, c.to, got, c.want)
		}
	}
}

func TestUpdateStatus_InvalidTransition(t *testing.T) {
	repo := &mockAppRepo{byID: map[int64]application.Application{
		5: {ID: 5, Status: application.StatusHired},
	}}
	e := NewEngine(repo)

	_, err := e.UpdateStatus(context.Background(), 5, application.StatusRejected, nil)
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got %v", err)
	}
	if len(repo.updated) != 0 {
		t.Fatalf("invalid transition must not persist")
	}
}

func TestUpdateStatus_SameStatusKeepsNotes(t *testing.T) {
	repo := &mockAppRepo{byID: map[int64]application.Application{
		5: {ID: 5, Status: application.StatusReviewed},
	}}
	e := NewEngine(repo)

	notes := "strong candidate"
	a, err := e.UpdateStatus(context.Background(), 5, application.StatusReviewed, &notes)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.Status != application.StatusReviewed {
		t.Fatalf("status changed unexpectedly: %s", a.Status)
	}
	if a.EmployerNotes == nil || *a.EmployerNotes != notes {
		t.Fatalf("notes not attached: %+v", a.EmployerNotes)
	}
}

func TestUpdateStatus_NilNotesPreservesExisting(t *testing.T) {
	existing := "keep me"
	repo := &mockAppRepo{byID: map[int64]application.Application{
		5: {ID: 5, Status: application.StatusApplied, EmployerNotes: &existing},
	}}
	e := NewEngine(repo)

	a, err := e.UpdateStatus(context.Background(), 5, application.StatusReviewed, nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if a.EmployerNotes == nil || *a.EmployerNotes != existing {
		t.Fatalf("existing notes lost")
	}
}
