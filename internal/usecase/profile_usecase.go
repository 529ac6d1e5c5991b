package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-hub/internal/domain/user"
	"talent-hub/internal/profile"
)

var ErrProfileNotFound = errors.New("profile not found")

type JobSeekerProfileInput struct {
	FirstName  string
	LastName   string
	Phone      string
	Location   string
	Skills     []string
	Experience string
	Education  string
	ResumeURL  *string
}

type EmployerProfileInput struct {
	CompanyName string
	Industry    user.Industry
	CompanySize user.CompanySize
	Website     string
	Description string
	LogoURL     *string
}

// JobSeekerProfileView pairs the stored profile with its completion percent.
type JobSeekerProfileView struct {
	Profile    user.JobSeekerProfile
	Completion int
}

type EmployerProfileView struct {
	Profile    user.EmployerProfile
	Completion int
}

type ProfileUsecase interface {
	GetJobSeeker(ctx context.Context, userID int64) (JobSeekerProfileView, error)
	SaveJobSeeker(ctx context.Context, userID int64, in JobSeekerProfileInput) (JobSeekerProfileView, error)
	GetEmployer(ctx context.Context, userID int64) (EmployerProfileView, error)
	SaveEmployer(ctx context.Context, userID int64, in EmployerProfileInput) (EmployerProfileView, error)
}

type Profiles struct {
	profiles user.ProfileRepository
}

func NewProfileUsecase(profiles user.ProfileRepository) *Profiles {
	return &Profiles{profiles: profiles}
}

func (u *Profiles) GetJobSeeker(ctx context.Context, userID int64) (JobSeekerProfileView, error) {
	p, err := u.profiles.GetJobSeekerProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return JobSeekerProfileView{}, ErrProfileNotFound
		}
		return JobSeekerProfileView{}, ErrStoreUnavailable
	}
	return JobSeekerProfileView{Profile: p, Completion: profile.JobSeekerCompletion(p)}, nil
}

func (u *Profiles) SaveJobSeeker(ctx context.Context, userID int64, in JobSeekerProfileInput) (JobSeekerProfileView, error) {
	saved, err := u.profiles.UpsertJobSeekerProfile(ctx, user.JobSeekerProfile{
		UserID:     userID,
		FirstName:  strings.TrimSpace(in.FirstName),
		LastName:   strings.TrimSpace(in.LastName),
		Phone:      strings.TrimSpace(in.Phone),
		Location:   strings.TrimSpace(in.Location),
		Skills:     normalizeSkills(in.Skills),
		Experience: strings.TrimSpace(in.Experience),
		Education:  strings.TrimSpace(in.Education),
		ResumeURL:  in.ResumeURL,
	})
	if err != nil {
		return JobSeekerProfileView{}, ErrStoreUnavailable
	}
	return JobSeekerProfileView{Profile: saved, Completion: profile.JobSeekerCompletion(saved)}, nil
}

func (u *Profiles) GetEmployer(ctx context.Context, userID int64) (EmployerProfileView, error) {
	p, err := u.profiles.GetEmployerProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrProfileNotFound) {
			return EmployerProfileView{}, ErrProfileNotFound
		}
		return EmployerProfileView{}, ErrStoreUnavailable
	}
	return EmployerProfileView{Profile: p, Completion: profile.EmployerCompletion(p)}, nil
}

func (u *Profiles) SaveEmployer(ctx context.Context, userID int64, in EmployerProfileInput) (EmployerProfileView, error) {
	if strings.TrimSpace(in.CompanyName) == "" {
		return EmployerProfileView{}, ErrInvalidInput
	}

	saved, err := u.profiles.UpsertEmployerProfile(ctx, user.EmployerProfile{
		UserID:      userID,
		CompanyName: strings.TrimSpace(in.CompanyName),
		Industry:    in.Industry,
		CompanySize: in.CompanySize,
		Website:     strings.TrimSpace(in.Website),
		Description: strings.TrimSpace(in.Description),
		LogoURL:     in.LogoURL,
	})
	if err != nil {
		return EmployerProfileView{}, ErrStoreUnavailable
	}
	return EmployerProfileView{Profile: saved, Completion: profile.EmployerCompletion(saved)}, nil
}

func normalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		s = strings.TrimSpace(s)
		if s == "" || seen[strings.ToLower(s)] {
			continue
		}
		seen[strings.ToLower(s)] = true
		out = append(out, s)
	}
	return out
}
