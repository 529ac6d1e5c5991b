package dto

import (
	"talent-hub/internal/stats"
	"talent-hub/internal/usecase"
)

type JobSeekerDashboardResponse struct {
	Stats             stats.JobSeekerStats  `json:"stats"`
	Applications      []ApplicationResponse `json:"applications"`
	ProfileCompletion int                   `json:"profileCompletion"`
}

func FromJobSeekerDashboard(d usecase.JobSeekerDashboard) JobSeekerDashboardResponse {
	return JobSeekerDashboardResponse{
		Stats:             d.Stats,
		Applications:      FromApplications(d.Applications),
		ProfileCompletion: d.ProfileCompletion,
	}
}

type EmployerDashboardResponse struct {
	Stats             stats.EmployerStats `json:"stats"`
	Jobs              []JobResponse       `json:"jobs"`
	StatusBreakdown   map[string]int      `json:"statusBreakdown"`
	ProfileCompletion int                 `json:"profileCompletion"`
}

func FromEmployerDashboard(d usecase.EmployerDashboard) EmployerDashboardResponse {
	return EmployerDashboardResponse{
		Stats:             d.Stats,
		Jobs:              FromJobs(d.Jobs),
		StatusBreakdown:   breakdownKeys(d.StatusBreakdown),
		ProfileCompletion: d.ProfileCompletion,
	}
}

type AdminDashboardResponse struct {
	Stats           stats.AdminStats `json:"stats"`
	StatusBreakdown map[string]int   `json:"statusBreakdown"`
	Users           []UserResponse   `json:"users"`
}

func FromAdminDashboard(d usecase.AdminDashboard) AdminDashboardResponse {
	return AdminDashboardResponse{
		Stats:           d.Stats,
		StatusBreakdown: breakdownKeys(d.StatusBreakdown),
		Users:           FromUsers(d.Users),
	}
}

func breakdownKeys[K ~string](m map[K]int) map[string]int {
	out := make(map[string]int, len(m))
	for k, v := range m {
		out[string(k)] = v
	}
	return out
}
