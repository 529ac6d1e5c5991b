package usecase

import (
	"context"
	"errors"

	"talent-hub/internal/domain/user"
)

var ErrUserNotFound = errors.New("user not found")

type UserUsecase interface {
	List(ctx context.Context) ([]user.User, error)
	SetActive(ctx context.Context, id int64, active bool) (user.User, error)
}

type Users struct {
	users user.Repository
}

func NewUserUsecase(users user.Repository) *Users {
	return &Users{users: users}
}

func (u *Users) List(ctx context.Context) ([]user.User, error) {
	list, err := u.users.List(ctx)
	if err != nil {
		return nil, ErrStoreUnavailable
	}
	for i := range list {
		list[i].PasswordHash = ""
	}
	return list, nil
}

// SetActive flips account access. Deactivated users keep their data but can
// no longer log in or refresh tokens.
func (u *Users) SetActive(ctx context.Context, id int64, active bool) (user.User, error) {
	updated, err := u.users.SetActive(ctx, id, active)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrStoreUnavailable
	}
	return sanitizeUser(updated), nil
}
