package usecase

import (
	"context"
	"errors"
	"strings"

	"talent-hub/internal/domain/user"
	"talent-hub/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials     = errors.New("invalid credentials")
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrAccountDisabled        = errors.New("account disabled")
	ErrUnauthorized           = errors.New("unauthorized")
	ErrInvalidRefreshToken    = errors.New("invalid refresh token")
	ErrRefreshTokenExpired    = errors.New("refresh token expired")
	ErrInternal               = errors.New("internal error")

	// ErrStoreUnavailable covers unexpected record-store failures. Handlers
	// map it to 503 so clients know the request may succeed on retry.
	ErrStoreUnavailable = errors.New("store unavailable")
)

type RegisterInput struct {
	Email    string
	Password string
	Role     user.Role
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (user.User, string, string, error)
	Login(ctx context.Context, in LoginInput) (user.User, string, string, error)
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
}

type Auth struct {
	users user.Repository
	jwt   jwt.Service
}

func NewAuthUsecase(users user.Repository, jwtSvc jwt.Service) *Auth {
	return &Auth{users: users, jwt: jwtSvc}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (user.User, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !isValidPassword(in.Password) {
		return user.User{}, "", "", ErrInvalidInput
	}
	role := in.Role
	if role == "" {
		role = user.RoleJobSeeker
	}
	// admins are provisioned out of band, never self-registered
	if !role.Valid() || role == user.RoleAdmin {
		return user.User{}, "", "", ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}

	created, err := u.users.Create(ctx, user.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		Active:       true,
	})
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return user.User{}, "", "", ErrEmailAlreadyRegistered
		}
		return user.User{}, "", "", ErrStoreUnavailable
	}

	access, refresh, err := u.issueTokens(created)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	return sanitizeUser(created), access, refresh, nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (user.User, string, string, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return user.User{}, "", "", ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return user.User{}, "", "", ErrInvalidCredentials
		}
		return user.User{}, "", "", ErrStoreUnavailable
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(in.Password)); err != nil {
		return user.User{}, "", "", ErrInvalidCredentials
	}
	if !usr.Active {
		return user.User{}, "", "", ErrAccountDisabled
	}

	if err := u.users.TouchLastLogin(ctx, usr.ID); err != nil {
		return user.User{}, "", "", ErrStoreUnavailable
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return user.User{}, "", "", ErrInternal
	}
	return sanitizeUser(usr), access, refresh, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (string, string, error) {
	if refreshToken == "" {
		return "", "", ErrUnauthorized
	}

	claims, err := u.jwt.ValidateToken(refreshToken)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", ErrRefreshTokenExpired
		}
		return "", "", ErrInvalidRefreshToken
	}
	if !u.jwt.IsRefreshToken(claims) {
		return "", "", ErrInvalidRefreshToken
	}

	usr, err := u.users.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", "", ErrInvalidRefreshToken
		}
		return "", "", ErrStoreUnavailable
	}
	if !usr.Active {
		return "", "", ErrAccountDisabled
	}

	access, refresh, err := u.issueTokens(usr)
	if err != nil {
		return "", "", ErrInternal
	}
	return access, refresh, nil
}

func (u *Auth) issueTokens(usr user.User) (string, string, error) {
	access, err := u.jwt.GenerateAccessToken(usr.ID, usr.Email, string(usr.Role))
	if err != nil {
		return "", "", err
	}
	refresh, err := u.jwt.GenerateRefreshToken(usr.ID)
	if err != nil {
		return "", "", err
	}
	return access, refresh, nil
}

func sanitizeUser(u user.User) user.User {
	u.PasswordHash = ""
	return u
}

func normalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if !strings.Contains(email, "@") {
		return ""
	}
	return email
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}
