package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-hub/internal/domain/application"
	"talent-hub/internal/domain/job"
	"talent-hub/internal/domain/user"
	"talent-hub/internal/workflow"
)

func newTestStore() *Store { return NewStore(0, 0) }

func TestUserStore_EmailUniqueness(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	_, err := s.Users().Create(ctx, user.User{Email: "a@b.dev", Role: user.RoleJobSeeker})
	if err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err = s.Users().Create(ctx, user.User{Email: "a@b.dev", Role: user.RoleEmployer})
	if !errors.Is(err, user.ErrEmailTaken) {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestUserStore_SetActiveAndTouchLastLogin(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	u, err := s.Users().Create(ctx, user.User{Email: "a@b.dev", Role: user.RoleJobSeeker, Active: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := s.Users().SetActive(ctx, u.ID, false)
	if err != nil {
		t.Fatalf("set active: %v", err)
	}
	if updated.Active {
		t.Fatalf("expected inactive")
	}

	if err := s.Users().TouchLastLogin(ctx, u.ID); err != nil {
		t.Fatalf("touch: %v", err)
	}
	got, _ := s.Users().GetByID(ctx, u.ID)
	if got.LastLoginAt == nil {
		t.Fatalf("last login not recorded")
	}

	if _, err := s.Users().SetActive(ctx, 999, true); !errors.Is(err, user.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestProfileStore_UpsertCreatesThenUpdates(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	if _, err := s.Profiles().GetJobSeekerProfile(ctx, 1); !errors.Is(err, user.ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}

	p, err := s.Profiles().UpsertJobSeekerProfile(ctx, user.JobSeekerProfile{UserID: 1, FirstName: "Sarah"})
	if err != nil {
		t.Fatalf("upsert: %v", err)
	}
	if p.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	p2, err := s.Profiles().UpsertJobSeekerProfile(ctx, user.JobSeekerProfile{UserID: 1, FirstName: "Sara"})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	if p2.ID != p.ID {
		t.Fatalf("upsert must reuse the row: %d vs %d", p2.ID, p.ID)
	}
	if p2.FirstName != "Sara" {
		t.Fatalf("update not applied")
	}
}

func TestJobStore_ListByStatusAndOrdering(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	older := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := older.Add(24 * time.Hour)

	_, err := s.Jobs().Create(ctx, job.Job{Title: "Old", Status: job.StatusActive, PostedAt: older})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = s.Jobs().Create(ctx, job.Job{Title: "New", Status: job.StatusActive, PostedAt: newer})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	_, err = s.Jobs().Create(ctx, job.Job{Title: "Closed", Status: job.StatusInactive, PostedAt: newer})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	active, err := s.Jobs().ListByStatus(ctx, job.StatusActive)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 active jobs, got %d", len(active))
	}
	if active[0].Title != "New" || active[1].Title != "Old" {
		t.Fatalf("expected newest first, got %s then %s", active[0].Title, active[1].Title)
	}
}

func TestApplicationStore_DuplicateRejected(t *testing.T) {
	s := newTestStore()
	ctx := context.Background()

	a := application.Application{JobID: 1, JobSeekerID: 2, Status: application.StatusApplied}
	if _, err := s.Applications().Create(ctx, a); err != nil {
		t.Fatalf("first create: %v", err)
	}

	_, err := s.Applications().Create(ctx, a)
	if !errors.Is(err, workflow.ErrDuplicateApplication) {
		t.Fatalf("expected ErrDuplicateApplication, got %v", err)
	}

	exists, err := s.Applications().ExistsForJobAndSeeker(ctx, 1, 2)
	if err != nil || !exists {
		t.Fatalf("expected exists=true, got %v %v", exists, err)
	}
}

func TestDelay_CancelledContext(t *testing.T) {
	s := NewStore(50*time.Millisecond, 100*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Users().GetByID(ctx, 1)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
