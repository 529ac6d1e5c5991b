package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound        = errors.New("user not found")
	ErrProfileNotFound = errors.New("profile not found")
	ErrEmailTaken      = errors.New("email already registered")
)

type Repository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id int64) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	SetActive(ctx context.Context, id int64, active bool) (User, error)
	TouchLastLogin(ctx context.Context, id int64) error
}

// ProfileRepository covers both profile kinds; Upsert creates the row on
// first save and updates it afterwards.
type ProfileRepository interface {
	GetJobSeekerProfile(ctx context.Context, userID int64) (JobSeekerProfile, error)
	UpsertJobSeekerProfile(ctx context.Context, p JobSeekerProfile) (JobSeekerProfile, error)
	GetEmployerProfile(ctx context.Context, userID int64) (EmployerProfile, error)
	UpsertEmployerProfile(ctx context.Context, p EmployerProfile) (EmployerProfile, error)
}
