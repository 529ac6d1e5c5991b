// Package stats derives dashboard counts from full collections. Every
// function is pure and recomputed on each load; nothing here is cached or
// incrementally maintained.
package stats

import (
	"talent-hub/internal/domain/application"
	"talent-hub/internal/domain/job"
	"talent-hub/internal/domain/user"
)

type JobSeekerStats struct {
	Applied    int `json:"applied"`
	Interviews int `json:"interviews"`
	Offers     int `json:"offers"`
}

// ForJobSeeker counts the seeker's applications: every application counts as
// applied, shortlisted ones as interview invites, hired ones as offers.
func ForJobSeeker(apps []application.Application) JobSeekerStats {
	s := JobSeekerStats{Applied: len(apps)}
	for _, a := range apps {
		switch a.Status {
		case application.StatusShortlisted:
			s.Interviews++
		case application.StatusHired:
			s.Offers++
		}
	}
	return s
}

type EmployerStats struct {
	ActiveJobs        int `json:"activeJobs"`
	TotalApplications int `json:"totalApplications"`
	Shortlisted       int `json:"shortlisted"`
}

// ForEmployer takes the employer's own jobs and the full application
// collection; applications are attributed through job membership.
func ForEmployer(jobs []job.Job, apps []application.Application) EmployerStats {
	var s EmployerStats
	owned := make(map[int64]bool, len(jobs))
	for _, j := range jobs {
		owned[j.ID] = true
		if j.Status == job.StatusActive {
			s.ActiveJobs++
		}
	}
	for _, a := range apps {
		if !owned[a.JobID] {
			continue
		}
		s.TotalApplications++
		if a.Status == application.StatusShortlisted {
			s.Shortlisted++
		}
	}
	return s
}

type AdminStats struct {
	TotalUsers        int `json:"totalUsers"`
	TotalJobs         int `json:"totalJobs"`
	TotalApplications int `json:"totalApplications"`
	ActiveJobs        int `json:"activeJobs"`
}

func ForAdmin(users []user.User, jobs []job.Job, apps []application.Application) AdminStats {
	s := AdminStats{
		TotalUsers:        len(users),
		TotalJobs:         len(jobs),
		TotalApplications: len(apps),
	}
	for _, j := range jobs {
		if j.Status == job.StatusActive {
			s.ActiveJobs++
		}
	}
	return s
}

// StatusBreakdown counts applications per status. All five statuses are
// present in the result, and the counts always sum to len(apps).
func StatusBreakdown(apps []application.Application) map[application.Status]int {
	out := make(map[application.Status]int, 5)
	for _, st := range application.AllStatuses() {
		out[st] = 0
	}
	for _, a := range apps {
		out[a.Status]++
	}
	return out
}
