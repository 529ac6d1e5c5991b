package dto

import (
	"talent-hub/internal/usecase"
)

type JobSeekerProfileResponse struct {
	UserID     int64    `json:"userId"`
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Phone      string   `json:"phone,omitempty"`
	Location   string   `json:"location,omitempty"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience,omitempty"`
	Education  string   `json:"education,omitempty"`
	ResumeURL  *string  `json:"resumeUrl,omitempty"`
	Completion int      `json:"completion"`
}

func FromJobSeekerProfile(v usecase.JobSeekerProfileView) JobSeekerProfileResponse {
	p := v.Profile
	skills := p.Skills
	if skills == nil {
		skills = []string{}
	}
	return JobSeekerProfileResponse{
		UserID:     p.UserID,
		FirstName:  p.FirstName,
		LastName:   p.LastName,
		Phone:      p.Phone,
		Location:   p.Location,
		Skills:     skills,
		Experience: p.Experience,
		Education:  p.Education,
		ResumeURL:  p.ResumeURL,
		Completion: v.Completion,
	}
}

type EmployerProfileResponse struct {
	UserID       int64   `json:"userId"`
	CompanyName  string  `json:"companyName"`
	Industry     string  `json:"industry,omitempty"`
	CompanySize  string  `json:"companySize,omitempty"`
	Website      string  `json:"website,omitempty"`
	Description  string  `json:"description,omitempty"`
	LogoURL      *string `json:"logoUrl,omitempty"`
	Verification string  `json:"verification"`
	Completion   int     `json:"completion"`
}

func FromEmployerProfile(v usecase.EmployerProfileView) EmployerProfileResponse {
	p := v.Profile
	return EmployerProfileResponse{
		UserID:       p.UserID,
		CompanyName:  p.CompanyName,
		Industry:     string(p.Industry),
		CompanySize:  string(p.CompanySize),
		Website:      p.Website,
		Description:  p.Description,
		LogoURL:      p.LogoURL,
		Verification: string(p.Verification),
		Completion:   v.Completion,
	}
}
