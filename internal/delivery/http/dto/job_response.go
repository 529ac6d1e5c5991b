package dto

import (
	"time"

	"talent-hub/internal/domain/job"
)

type JobResponse struct {
	ID              int64      `json:"id"`
	EmployerID      int64      `json:"employerId"`
	Title           string     `json:"title"`
	CompanyName     string     `json:"companyName"`
	Description     string     `json:"description"`
	Requirements    string     `json:"requirements"`
	Location        string     `json:"location"`
	SalaryMin       *int       `json:"salaryMin"`
	SalaryMax       *int       `json:"salaryMax"`
	JobType         string     `json:"jobType"`
	ExperienceLevel string     `json:"experienceLevel"`
	PostedAt        time.Time  `json:"postedAt"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	Status          string     `json:"status"`
}

func FromJob(j job.Job) JobResponse {
	return JobResponse{
		ID:              j.ID,
		EmployerID:      j.EmployerID,
		Title:           j.Title,
		CompanyName:     j.CompanyName,
		Description:     j.Description,
		Requirements:    j.Requirements,
		Location:        j.Location,
		SalaryMin:       j.SalaryMin,
		SalaryMax:       j.SalaryMax,
		JobType:         string(j.JobType),
		ExperienceLevel: string(j.ExperienceLevel),
		PostedAt:        j.PostedAt,
		Deadline:        j.Deadline,
		Status:          string(j.Status),
	}
}

func FromJobs(jobs []job.Job) []JobResponse {
	out := make([]JobResponse, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, FromJob(j))
	}
	return out
}
