package dto

import (
	"time"

	"talent-hub/internal/domain/application"
)

type ApplicationResponse struct {
	ID            int64     `json:"id"`
	JobID         int64     `json:"jobId"`
	JobSeekerID   int64     `json:"jobSeekerId"`
	JobTitle      string    `json:"jobTitle"`
	CompanyName   string    `json:"companyName"`
	Location      string    `json:"location"`
	CoverLetter   string    `json:"coverLetter,omitempty"`
	AppliedAt     time.Time `json:"appliedAt"`
	Status        string    `json:"status"`
	EmployerNotes *string   `json:"employerNotes,omitempty"`
}

func FromApplication(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:            a.ID,
		JobID:         a.JobID,
		JobSeekerID:   a.JobSeekerID,
		JobTitle:      a.JobTitle,
		CompanyName:   a.CompanyName,
		Location:      a.Location,
		CoverLetter:   a.CoverLetter,
		AppliedAt:     a.AppliedAt,
		Status:        string(a.Status),
		EmployerNotes: a.EmployerNotes,
	}
}

func FromApplications(apps []application.Application) []ApplicationResponse {
	out := make([]ApplicationResponse, 0, len(apps))
	for _, a := range apps {
		out = append(out, FromApplication(a))
	}
	return out
}
