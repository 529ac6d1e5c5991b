package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"talent-hub/internal/domain/job"
	"talent-hub/internal/domain/user"
	"talent-hub/internal/jobfilter"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrForbidden    = errors.New("forbidden")
	ErrJobNotFound  = errors.New("job not found")
)

type JobInput struct {
	Title           string
	Description     string
	Requirements    string
	Location        string
	JobType         job.Type
	ExperienceLevel job.ExperienceLevel
	SalaryMin       *int
	SalaryMax       *int
	Deadline        *time.Time
}

type JobUsecase interface {
	Search(ctx context.Context, criteria jobfilter.Criteria) ([]job.Job, error)
	Get(ctx context.Context, id int64) (job.Job, error)
	Create(ctx context.Context, employerID int64, companyName string, in JobInput) (job.Job, error)
	Update(ctx context.Context, actorID int64, actorRole user.Role, jobID int64, in JobInput) (job.Job, error)
	SetStatus(ctx context.Context, actorID int64, actorRole user.Role, jobID int64, status job.Status) (job.Job, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]job.Job, error)
}

type Jobs struct {
	jobs     job.Repository
	cache    SearchCache
	cacheTTL time.Duration
}

func NewJobUsecase(jobs job.Repository, cache SearchCache, cacheTTL time.Duration) *Jobs {
	return &Jobs{jobs: jobs, cache: cache, cacheTTL: cacheTTL}
}

// Search filters the active listings only. Inactive jobs never reach the
// filter, whatever the criteria say.
func (u *Jobs) Search(ctx context.Context, criteria jobfilter.Criteria) ([]job.Job, error) {
	key := jobSearchCacheKey(criteria)
	if u.cache != nil {
		var cached []job.Job
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	active, err := u.jobs.ListByStatus(ctx, job.StatusActive)
	if err != nil {
		return nil, ErrStoreUnavailable
	}
	results := jobfilter.Apply(active, criteria)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, results, u.cacheTTL); err != nil {
			log.Printf("[WARN] job search cache write failed: %v", err)
		}
	}
	return results, nil
}

func (u *Jobs) Get(ctx context.Context, id int64) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrStoreUnavailable
	}
	return j, nil
}

func (u *Jobs) Create(ctx context.Context, employerID int64, companyName string, in JobInput) (job.Job, error) {
	if err := validateJobInput(in); err != nil {
		return job.Job{}, err
	}

	created, err := u.jobs.Create(ctx, job.Job{
		EmployerID:      employerID,
		CompanyName:     companyName,
		Title:           strings.TrimSpace(in.Title),
		Description:     strings.TrimSpace(in.Description),
		Requirements:    strings.TrimSpace(in.Requirements),
		Location:        strings.TrimSpace(in.Location),
		JobType:         in.JobType,
		ExperienceLevel: in.ExperienceLevel,
		SalaryMin:       in.SalaryMin,
		SalaryMax:       in.SalaryMax,
		Status:          job.StatusActive,
		Deadline:        in.Deadline,
	})
	if err != nil {
		return job.Job{}, ErrStoreUnavailable
	}

	u.invalidateSearchCache(ctx)
	return created, nil
}

func (u *Jobs) Update(ctx context.Context, actorID int64, actorRole user.Role, jobID int64, in JobInput) (job.Job, error) {
	if err := validateJobInput(in); err != nil {
		return job.Job{}, err
	}

	existing, err := u.ownedJob(ctx, actorID, actorRole, jobID)
	if err != nil {
		return job.Job{}, err
	}

	existing.Title = strings.TrimSpace(in.Title)
	existing.Description = strings.TrimSpace(in.Description)
	existing.Requirements = strings.TrimSpace(in.Requirements)
	existing.Location = strings.TrimSpace(in.Location)
	existing.JobType = in.JobType
	existing.ExperienceLevel = in.ExperienceLevel
	existing.SalaryMin = in.SalaryMin
	existing.SalaryMax = in.SalaryMax
	existing.Deadline = in.Deadline

	updated, err := u.jobs.Update(ctx, existing)
	if err != nil {
		return job.Job{}, ErrStoreUnavailable
	}

	u.invalidateSearchCache(ctx)
	return updated, nil
}

func (u *Jobs) SetStatus(ctx context.Context, actorID int64, actorRole user.Role, jobID int64, status job.Status) (job.Job, error) {
	if !status.Valid() {
		return job.Job{}, ErrInvalidInput
	}

	existing, err := u.ownedJob(ctx, actorID, actorRole, jobID)
	if err != nil {
		return job.Job{}, err
	}

	existing.Status = status
	updated, err := u.jobs.Update(ctx, existing)
	if err != nil {
		return job.Job{}, ErrStoreUnavailable
	}

	u.invalidateSearchCache(ctx)
	return updated, nil
}

func (u *Jobs) ListByEmployer(ctx context.Context, employerID int64) ([]job.Job, error) {
	jobs, err := u.jobs.ListByEmployer(ctx, employerID)
	if err != nil {
		return nil, ErrStoreUnavailable
	}
	return jobs, nil
}

// ownedJob loads a listing and enforces that the actor may modify it.
// Admins may modify any listing; employers only their own.
func (u *Jobs) ownedJob(ctx context.Context, actorID int64, actorRole user.Role, jobID int64) (job.Job, error) {
	existing, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, ErrStoreUnavailable
	}
	if actorRole != user.RoleAdmin && existing.EmployerID != actorID {
		return job.Job{}, ErrForbidden
	}
	return existing, nil
}

func (u *Jobs) invalidateSearchCache(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, jobSearchCachePrefix+"*"); err != nil {
		log.Printf("[WARN] job search cache invalidation failed: %v", err)
	}
}

func validateJobInput(in JobInput) error {
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return ErrInvalidInput
	}
	if !in.JobType.Valid() || !in.ExperienceLevel.Valid() {
		return ErrInvalidInput
	}
	if in.SalaryMin != nil && in.SalaryMax != nil && *in.SalaryMin > *in.SalaryMax {
		return ErrInvalidInput
	}
	return nil
}
