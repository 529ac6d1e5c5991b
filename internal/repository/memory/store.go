// Package memory implements the record store adapters over plain maps. It
// mirrors the Postgres adapters' behavior, including uniqueness rules, and
// simulates store latency with a uniform random delay per operation so
// callers exercise the same asynchronous shape as the hosted backend.
//
// The store is mutex-guarded, so it is safe for concurrent callers, but it
// offers no transactions: each operation is an independent snapshot.
package memory

import (
	"context"
	"math/rand"
	"sort"
	"sync"
	"time"

	"talent-hub/internal/domain/application"
	"talent-hub/internal/domain/job"
	"talent-hub/internal/domain/user"
	"talent-hub/internal/workflow"
)

type Store struct {
	mu sync.Mutex

	latencyMin time.Duration
	latencyMax time.Duration

	users            map[int64]user.User
	seekerProfiles   map[int64]user.JobSeekerProfile
	employerProfiles map[int64]user.EmployerProfile
	jobs             map[int64]job.Job
	apps             map[int64]application.Application

	nextUserID    int64
	nextProfileID int64
	nextJobID     int64
	nextAppID     int64
}

// NewStore builds an empty store. Latency bounds of zero disable the delay;
// tests run with NewStore(0, 0).
func NewStore(latencyMin, latencyMax time.Duration) *Store {
	return &Store{
		latencyMin:       latencyMin,
		latencyMax:       latencyMax,
		users:            map[int64]user.User{},
		seekerProfiles:   map[int64]user.JobSeekerProfile{},
		employerProfiles: map[int64]user.EmployerProfile{},
		jobs:             map[int64]job.Job{},
		apps:             map[int64]application.Application{},
	}
}

func (s *Store) Users() user.Repository               { return userStore{s} }
func (s *Store) Profiles() user.ProfileRepository     { return profileStore{s} }
func (s *Store) Jobs() job.Repository                 { return jobStore{s} }
func (s *Store) Applications() application.Repository { return applicationStore{s} }

func (s *Store) delay(ctx context.Context) error {
	if s.latencyMax <= 0 {
		return nil
	}
	d := s.latencyMin
	if span := s.latencyMax - s.latencyMin; span > 0 {
		d += time.Duration(rand.Int63n(int64(span)))
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

type userStore struct{ s *Store }

func (st userStore) Create(ctx context.Context, u user.User) (user.User, error) {
	if err := st.s.delay(ctx); err != nil {
		return user.User{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	for _, existing := range st.s.users {
		if existing.Email == u.Email {
			return user.User{}, user.ErrEmailTaken
		}
	}

	st.s.nextUserID++
	u.ID = st.s.nextUserID
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}
	st.s.users[u.ID] = u
	return u, nil
}

func (st userStore) GetByID(ctx context.Context, id int64) (user.User, error) {
	if err := st.s.delay(ctx); err != nil {
		return user.User{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	u, ok := st.s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (st userStore) GetByEmail(ctx context.Context, email string) (user.User, error) {
	if err := st.s.delay(ctx); err != nil {
		return user.User{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	for _, u := range st.s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (st userStore) List(ctx context.Context) ([]user.User, error) {
	if err := st.s.delay(ctx); err != nil {
		return nil, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	out := make([]user.User, 0, len(st.s.users))
	for _, u := range st.s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (st userStore) SetActive(ctx context.Context, id int64, active bool) (user.User, error) {
	if err := st.s.delay(ctx); err != nil {
		return user.User{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	u, ok := st.s.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	u.Active = active
	st.s.users[id] = u
	return u, nil
}

func (st userStore) TouchLastLogin(ctx context.Context, id int64) error {
	if err := st.s.delay(ctx); err != nil {
		return err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	u, ok := st.s.users[id]
	if !ok {
		return user.ErrNotFound
	}
	now := time.Now().UTC()
	u.LastLoginAt = &now
	st.s.users[id] = u
	return nil
}

type profileStore struct{ s *Store }

func (st profileStore) GetJobSeekerProfile(ctx context.Context, userID int64) (user.JobSeekerProfile, error) {
	if err := st.s.delay(ctx); err != nil {
		return user.JobSeekerProfile{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	p, ok := st.s.seekerProfiles[userID]
	if !ok {
		return user.JobSeekerProfile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func (st profileStore) UpsertJobSeekerProfile(ctx context.Context, p user.JobSeekerProfile) (user.JobSeekerProfile, error) {
	if err := st.s.delay(ctx); err != nil {
		return user.JobSeekerProfile{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := st.s.seekerProfiles[p.UserID]; ok {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
	} else {
		st.s.nextProfileID++
		p.ID = st.s.nextProfileID
		p.CreatedAt = now
	}
	p.UpdatedAt = now
	st.s.seekerProfiles[p.UserID] = p
	return p, nil
}

func (st profileStore) GetEmployerProfile(ctx context.Context, userID int64) (user.EmployerProfile, error) {
	if err := st.s.delay(ctx); err != nil {
		return user.EmployerProfile{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	p, ok := st.s.employerProfiles[userID]
	if !ok {
		return user.EmployerProfile{}, user.ErrProfileNotFound
	}
	return p, nil
}

func (st profileStore) UpsertEmployerProfile(ctx context.Context, p user.EmployerProfile) (user.EmployerProfile, error) {
	if err := st.s.delay(ctx); err != nil {
		return user.EmployerProfile{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	now := time.Now().UTC()
	if existing, ok := st.s.employerProfiles[p.UserID]; ok {
		p.ID = existing.ID
		p.CreatedAt = existing.CreatedAt
		if p.Verification == "" {
			p.Verification = existing.Verification
		}
	} else {
		st.s.nextProfileID++
		p.ID = st.s.nextProfileID
		p.CreatedAt = now
		if p.Verification == "" {
			p.Verification = user.VerificationPending
		}
	}
	p.UpdatedAt = now
	st.s.employerProfiles[p.UserID] = p
	return p, nil
}

type jobStore struct{ s *Store }

func (st jobStore) Create(ctx context.Context, j job.Job) (job.Job, error) {
	if err := st.s.delay(ctx); err != nil {
		return job.Job{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	st.s.nextJobID++
	j.ID = st.s.nextJobID
	if j.PostedAt.IsZero() {
		j.PostedAt = time.Now().UTC()
	}
	st.s.jobs[j.ID] = j
	return j, nil
}

func (st jobStore) GetByID(ctx context.Context, id int64) (job.Job, error) {
	if err := st.s.delay(ctx); err != nil {
		return job.Job{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	j, ok := st.s.jobs[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return j, nil
}

func (st jobStore) Update(ctx context.Context, j job.Job) (job.Job, error) {
	if err := st.s.delay(ctx); err != nil {
		return job.Job{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	if _, ok := st.s.jobs[j.ID]; !ok {
		return job.Job{}, job.ErrNotFound
	}
	st.s.jobs[j.ID] = j
	return j, nil
}

func (st jobStore) Delete(ctx context.Context, id int64) (bool, error) {
	if err := st.s.delay(ctx); err != nil {
		return false, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	if _, ok := st.s.jobs[id]; !ok {
		return false, nil
	}
	delete(st.s.jobs, id)
	return true, nil
}

func (st jobStore) List(ctx context.Context) ([]job.Job, error) {
	return st.listFiltered(ctx, func(job.Job) bool { return true })
}

func (st jobStore) ListByEmployer(ctx context.Context, employerID int64) ([]job.Job, error) {
	return st.listFiltered(ctx, func(j job.Job) bool { return j.EmployerID == employerID })
}

func (st jobStore) ListByStatus(ctx context.Context, status job.Status) ([]job.Job, error) {
	return st.listFiltered(ctx, func(j job.Job) bool { return j.Status == status })
}

func (st jobStore) listFiltered(ctx context.Context, keep func(job.Job) bool) ([]job.Job, error) {
	if err := st.s.delay(ctx); err != nil {
		return nil, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	out := []job.Job{}
	for _, j := range st.s.jobs {
		if keep(j) {
			out = append(out, j)
		}
	}
	sort.Slice(out, func(i, k int) bool {
		if !out[i].PostedAt.Equal(out[k].PostedAt) {
			return out[i].PostedAt.After(out[k].PostedAt)
		}
		return out[i].ID > out[k].ID
	})
	return out, nil
}

type applicationStore struct{ s *Store }

func (st applicationStore) Create(ctx context.Context, a application.Application) (application.Application, error) {
	if err := st.s.delay(ctx); err != nil {
		return application.Application{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	for _, existing := range st.s.apps {
		if existing.JobID == a.JobID && existing.JobSeekerID == a.JobSeekerID {
			return application.Application{}, workflow.ErrDuplicateApplication
		}
	}

	st.s.nextAppID++
	a.ID = st.s.nextAppID
	if a.AppliedAt.IsZero() {
		a.AppliedAt = time.Now().UTC()
	}
	st.s.apps[a.ID] = a
	return a, nil
}

func (st applicationStore) GetByID(ctx context.Context, id int64) (application.Application, error) {
	if err := st.s.delay(ctx); err != nil {
		return application.Application{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	a, ok := st.s.apps[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (st applicationStore) Update(ctx context.Context, a application.Application) (application.Application, error) {
	if err := st.s.delay(ctx); err != nil {
		return application.Application{}, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	if _, ok := st.s.apps[a.ID]; !ok {
		return application.Application{}, application.ErrNotFound
	}
	st.s.apps[a.ID] = a
	return a, nil
}

func (st applicationStore) Delete(ctx context.Context, id int64) (bool, error) {
	if err := st.s.delay(ctx); err != nil {
		return false, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	if _, ok := st.s.apps[id]; !ok {
		return false, nil
	}
	delete(st.s.apps, id)
	return true, nil
}

func (st applicationStore) List(ctx context.Context) ([]application.Application, error) {
	return st.listFiltered(ctx, func(application.Application) bool { return true })
}

func (st applicationStore) ListByJob(ctx context.Context, jobID int64) ([]application.Application, error) {
	return st.listFiltered(ctx, func(a application.Application) bool { return a.JobID == jobID })
}

func (st applicationStore) ListByJobSeeker(ctx context.Context, jobSeekerID int64) ([]application.Application, error) {
	return st.listFiltered(ctx, func(a application.Application) bool { return a.JobSeekerID == jobSeekerID })
}

func (st applicationStore) ListByStatus(ctx context.Context, status application.Status) ([]application.Application, error) {
	return st.listFiltered(ctx, func(a application.Application) bool { return a.Status == status })
}

func (st applicationStore) ExistsForJobAndSeeker(ctx context.Context, jobID, jobSeekerID int64) (bool, error) {
	if err := st.s.delay(ctx); err != nil {
		return false, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	for _, a := range st.s.apps {
		if a.JobID == jobID && a.JobSeekerID == jobSeekerID {
			return true, nil
		}
	}
	return false, nil
}

func (st applicationStore) listFiltered(ctx context.Context, keep func(application.Application) bool) ([]application.Application, error) {
	if err := st.s.delay(ctx); err != nil {
		return nil, err
	}
	st.s.mu.Lock()
	defer st.s.mu.Unlock()

	out := []application.Application{}
	for _, a := range st.s.apps {
		if keep(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, k int) bool {
		if !out[i].AppliedAt.Equal(out[k].AppliedAt) {
			return out[i].AppliedAt.After(out[k].AppliedAt)
		}
		return out[i].ID > out[k].ID
	})
	return out, nil
}
