package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"talent-hub/internal/domain/user"
	"talent-hub/internal/pkg/jwt"

	"golang.org/x/crypto/bcrypt"
)

type mockUserRepo struct {
	byID    map[int64]user.User
	byEmail map[string]user.User
	touched []int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byID: map[int64]user.User{}, byEmail: map[string]user.User{}}
}

func (m *mockUserRepo) add(u user.User) {
	m.byID[u.ID] = u
	m.byEmail[u.Email] = u
}

func (m *mockUserRepo) Create(_ context.Context, u user.User) (user.User, error) {
	if _, ok := m.byEmail[u.Email]; ok {
		return user.User{}, user.ErrEmailTaken
	}
	u.ID = int64(len(m.byID) + 1)
	u.CreatedAt = time.Now().UTC()
	m.add(u)
	return u, nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (m *mockUserRepo) List(context.Context) ([]user.User, error) { return nil, nil }

func (m *mockUserRepo) SetActive(_ context.Context, id int64, active bool) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	u.Active = active
	m.add(u)
	return u, nil
}

func (m *mockUserRepo) TouchLastLogin(_ context.Context, id int64) error {
	m.touched = append(m.touched, id)
	return nil
}

func testJWT() jwt.Service {
	return jwt.NewHMACService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
}

func hashOf(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(h)
}

func TestRegister_DefaultsToJobSeeker(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), testJWT())

	usr, access, refresh, err := uc.Register(context.Background(), RegisterInput{
		Email:    "New.User@Example.COM",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.Role != user.RoleJobSeeker {
		t.Fatalf("expected job_seeker default, got %s", usr.Role)
	}
	if usr.Email != "new.user@example.com" {
		t.Fatalf("email not normalized: %s", usr.Email)
	}
	if usr.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
	if access == "" || refresh == "" {
		t.Fatalf("tokens missing")
	}
}

func TestRegister_RejectsAdminSelfRegistration(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), testJWT())

	_, _, _, err := uc.Register(context.Background(), RegisterInput{
		Email:    "a@b.dev",
		Password: "supersecret",
		Role:     user.RoleAdmin,
	})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(user.User{ID: 1, Email: "a@b.dev"})
	uc := NewAuthUsecase(repo, testJWT())

	_, _, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.dev", Password: "supersecret"})
	if !errors.Is(err, ErrEmailAlreadyRegistered) {
		t.Fatalf("expected ErrEmailAlreadyRegistered, got %v", err)
	}
}

func TestRegister_ShortPassword(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), testJWT())

	_, _, _, err := uc.Register(context.Background(), RegisterInput{Email: "a@b.dev", Password: "short"})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(user.User{
		ID: 1, Email: "a@b.dev", Role: user.RoleJobSeeker, Active: true,
		PasswordHash: hashOf(t, "supersecret"),
	})
	uc := NewAuthUsecase(repo, testJWT())

	usr, access, _, err := uc.Login(context.Background(), LoginInput{Email: "a@b.dev", Password: "supersecret"})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if usr.ID != 1 || access == "" {
		t.Fatalf("unexpected result: %+v", usr)
	}
	if len(repo.touched) != 1 || repo.touched[0] != 1 {
		t.Fatalf("last login not touched: %v", repo.touched)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(user.User{
		ID: 1, Email: "a@b.dev", Active: true,
		PasswordHash: hashOf(t, "supersecret"),
	})
	uc := NewAuthUsecase(repo, testJWT())

	_, _, _, err := uc.Login(context.Background(), LoginInput{Email: "a@b.dev", Password: "nope-nope"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_UnknownEmailIndistinguishable(t *testing.T) {
	uc := NewAuthUsecase(newMockUserRepo(), testJWT())

	_, _, _, err := uc.Login(context.Background(), LoginInput{Email: "ghost@b.dev", Password: "whatever1"})
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLogin_DisabledAccount(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(user.User{
		ID: 1, Email: "a@b.dev", Active: false,
		PasswordHash: hashOf(t, "supersecret"),
	})
	uc := NewAuthUsecase(repo, testJWT())

	_, _, _, err := uc.Login(context.Background(), LoginInput{Email: "a@b.dev", Password: "supersecret"})
	if !errors.Is(err, ErrAccountDisabled) {
		t.Fatalf("expected ErrAccountDisabled, got %v", err)
	}
}

func TestRefresh_RoundTrip(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(user.User{ID: 1, Email: "a@b.dev", Role: user.RoleEmployer, Active: true})
	svc := testJWT()
	uc := NewAuthUsecase(repo, svc)

	refresh, err := svc.GenerateRefreshToken(1)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	access, newRefresh, err := uc.Refresh(context.Background(), refresh)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if access == "" || newRefresh == "" {
		t.Fatalf("tokens missing")
	}

	claims, err := svc.ValidateToken(access)
	if err != nil {
		t.Fatalf("validate: %v", err)
	}
	if claims.Role != string(user.RoleEmployer) {
		t.Fatalf("role claim missing: %+v", claims)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	repo := newMockUserRepo()
	repo.add(user.User{ID: 1, Email: "a@b.dev", Active: true})
	svc := testJWT()
	uc := NewAuthUsecase(repo, svc)

	access, err := svc.GenerateAccessToken(1, "a@b.dev", "job_seeker")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	_, _, err = uc.Refresh(context.Background(), access)
	if !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}
