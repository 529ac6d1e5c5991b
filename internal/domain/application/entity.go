package application

import "time"

type Status string

const (
	StatusApplied     Status = "applied"
	StatusReviewed    Status = "reviewed"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
	StatusHired       Status = "hired"
)

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusReviewed, StatusShortlisted, StatusRejected, StatusHired:
		return true
	}
	return false
}

// AllStatuses is in workflow order; status breakdowns report every value,
// zero or not.
func AllStatuses() []Status {
	return []Status{StatusApplied, StatusReviewed, StatusShortlisted, StatusRejected, StatusHired}
}

// Application snapshots job title, company and location at apply time so the
// seeker's history survives later job edits.
type Application struct {
	ID            int64
	JobID         int64
	JobSeekerID   int64
	JobTitle      string
	CompanyName   string
	Location      string
	CoverLetter   string
	AppliedAt     time.Time
	Status        Status
	EmployerNotes *string
}
