package usecase

import (
	"context"

	"talent-hub/internal/domain/application"
	"talent-hub/internal/domain/job"
	"talent-hub/internal/domain/user"
	"talent-hub/internal/stats"
)

// Dashboard views are assembled fresh on every request. Counts come straight
// from the stores, never from a cache, so a status change is visible on the
// next load.

type JobSeekerDashboard struct {
	Stats             stats.JobSeekerStats
	Applications      []application.Application
	ProfileCompletion int
}

type EmployerDashboard struct {
	Stats             stats.EmployerStats
	Jobs              []job.Job
	StatusBreakdown   map[application.Status]int
	ProfileCompletion int
}

type AdminDashboard struct {
	Stats           stats.AdminStats
	StatusBreakdown map[application.Status]int
	Users           []user.User
}

type DashboardUsecase interface {
	ForJobSeeker(ctx context.Context, userID int64) (JobSeekerDashboard, error)
	ForEmployer(ctx context.Context, userID int64) (EmployerDashboard, error)
	ForAdmin(ctx context.Context) (AdminDashboard, error)
}

type Dashboards struct {
	users    user.Repository
	jobs     job.Repository
	apps     application.Repository
	profiles *Profiles
}

func NewDashboardUsecase(users user.Repository, jobs job.Repository, apps application.Repository, profiles *Profiles) *Dashboards {
	return &Dashboards{users: users, jobs: jobs, apps: apps, profiles: profiles}
}

func (u *Dashboards) ForJobSeeker(ctx context.Context, userID int64) (JobSeekerDashboard, error) {
	apps, err := u.apps.ListByJobSeeker(ctx, userID)
	if err != nil {
		return JobSeekerDashboard{}, ErrStoreUnavailable
	}

	d := JobSeekerDashboard{
		Stats:        stats.ForJobSeeker(apps),
		Applications: apps,
	}
	d.ProfileCompletion = u.seekerCompletion(ctx, userID)
	return d, nil
}

func (u *Dashboards) ForEmployer(ctx context.Context, userID int64) (EmployerDashboard, error) {
	jobs, err := u.jobs.ListByEmployer(ctx, userID)
	if err != nil {
		return EmployerDashboard{}, ErrStoreUnavailable
	}
	apps, err := u.apps.List(ctx)
	if err != nil {
		return EmployerDashboard{}, ErrStoreUnavailable
	}

	owned := make(map[int64]bool, len(jobs))
	for _, j := range jobs {
		owned[j.ID] = true
	}
	ownApps := make([]application.Application, 0, len(apps))
	for _, a := range apps {
		if owned[a.JobID] {
			ownApps = append(ownApps, a)
		}
	}

	d := EmployerDashboard{
		Stats:           stats.ForEmployer(jobs, apps),
		Jobs:            jobs,
		StatusBreakdown: stats.StatusBreakdown(ownApps),
	}
	d.ProfileCompletion = u.employerCompletion(ctx, userID)
	return d, nil
}

func (u *Dashboards) ForAdmin(ctx context.Context) (AdminDashboard, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return AdminDashboard{}, ErrStoreUnavailable
	}
	jobs, err := u.jobs.List(ctx)
	if err != nil {
		return AdminDashboard{}, ErrStoreUnavailable
	}
	apps, err := u.apps.List(ctx)
	if err != nil {
		return AdminDashboard{}, ErrStoreUnavailable
	}

	for i := range users {
		users[i].PasswordHash = ""
	}
	return AdminDashboard{
		Stats:           stats.ForAdmin(users, jobs, apps),
		StatusBreakdown: stats.StatusBreakdown(apps),
		Users:           users,
	}, nil
}

// A missing profile reads as 0% complete, not as an error.
func (u *Dashboards) seekerCompletion(ctx context.Context, userID int64) int {
	view, err := u.profiles.GetJobSeeker(ctx, userID)
	if err != nil {
		return 0
	}
	return view.Completion
}

func (u *Dashboards) employerCompletion(ctx context.Context, userID int64) int {
	view, err := u.profiles.GetEmployer(ctx, userID)
	if err != nil {
		return 0
	}
	return view.Completion
}
