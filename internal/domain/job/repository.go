package job

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id int64) (Job, error)
	Update(ctx context.Context, j Job) (Job, error)
	Delete(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context) ([]Job, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]Job, error)
	ListByStatus(ctx context.Context, status Status) ([]Job, error)
}
