package application

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("application not found")

type Repository interface {
	Create(ctx context.Context, a Application) (Application, error)
	GetByID(ctx context.Context, id int64) (Application, error)
	Update(ctx context.Context, a Application) (Application, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]Application, error)
	ListByJob(ctx context.Context, jobID int64) ([]Application, error)
	ListByJobSeeker(ctx context.Context, jobSeekerID int64) ([]Application, error)
	ListByStatus(ctx context.Context, status Status) ([]Application, error)
	ExistsForJobAndSeeker(ctx context.Context, jobID, jobSeekerID int64) (bool, error)
}
