package stats

import (
	"testing"

	"talent-hub/internal/domain/application"
	"talent-hub/internal/domain/job"
	"talent-hub/internal/domain/user"
)

func TestForJobSeeker_Empty(t *testing.T) {
	s := ForJobSeeker(nil)
	if s.Applied != 0 || s.Interviews != 0 || s.Offers != 0 {
		t.Fatalf("empty collection must yield zeros: %+v", s)
	}
}

func TestForJobSeeker_Counts(t *testing.T) {
	apps := []application.Application{
		{Status: application.StatusApplied},
		{Status: application.StatusApplied},
		{Status: application.StatusShortlisted},
		{Status: application.StatusHired},
	}

	s := ForJobSeeker(apps)
	if s.Applied != 4 {
		t.Fatalf("applied: want 4, got %d", s.Applied)
	}
	if s.Interviews != 1 {
		t.Fatalf("interviews: want 1, got %d", s.Interviews)
	}
	if s.Offers != 1 {
		t.Fatalf("offers: want 1, got %d", s.Offers)
	}
}

func TestForEmployer_AttributesThroughJobMembership(t *testing.T) {
	jobs := []job.Job{
		{ID: 1, Status: job.StatusActive},
		{ID: 2, Status: job.StatusInactive},
	}
	apps := []application.Application{
		{JobID: 1, Status: application.StatusApplied},
		{JobID: 1, Status: application.StatusShortlisted},
		{JobID: 2, Status: application.StatusApplied},
		{JobID: 99, Status: application.StatusShortlisted}, // someone else's job
	}

	s := ForEmployer(jobs, apps)
	if s.ActiveJobs != 1 {
		t.Fatalf("activeJobs: want 1, got %d", s.ActiveJobs)
	}
	if s.TotalApplications != 3 {
		t.Fatalf("totalApplications: want 3, got %d", s.TotalApplications)
	}
	if s.Shortlisted != 1 {
		t.Fatalf("shortlisted: want 1, got %d", s.Shortlisted)
	}
}

func TestForAdmin(t *testing.T) {
	users := []user.User{{ID: 1}, {ID: 2}, {ID: 3}}
	jobs := []job.Job{{ID: 1, Status: job.StatusActive}, {ID: 2, Status: job.StatusInactive}}
	apps := []application.Application{{ID: 1}}

	s := ForAdmin(users, jobs, apps)
	if s.TotalUsers != 3 || s.TotalJobs != 2 || s.TotalApplications != 1 || s.ActiveJobs != 1 {
		t.Fatalf("unexpected admin stats: %+v", s)
	}
}

func TestStatusBreakdown_AllStatusesPresentAndSumsToTotal(t *testing.T) {
	apps := []application.Application{
		{Status: application.StatusApplied},
		{Status: application.StatusApplied},
		{Status: application.StatusHired},
	}

	b := StatusBreakdown(apps)
	if len(b) != 5 {
		t.Fatalf("expected all 5 statuses, got %d keys", len(b))
	}
	if b[application.StatusApplied] != 2 || b[application.StatusHired] != 1 {
		t.Fatalf("unexpected counts: %+v", b)
	}
	sum := 0
	for _, v := range b {
		sum += v
	}
	if sum != len(apps) {
		t.Fatalf("breakdown must sum to %d, got %d", len(apps), sum)
	}
}
