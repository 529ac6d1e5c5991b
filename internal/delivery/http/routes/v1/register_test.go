package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/domain/application"
	"talent-hub/internal/domain/job"
	"talent-hub/internal/domain/user"
	"talent-hub/internal/jobfilter"
	"talent-hub/internal/pkg/jwt"
	"talent-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type stubAuth struct{}

func (stubAuth) Register(context.Context, usecase.RegisterInput) (user.User, string, string, error) {
	return user.User{}, "", "", nil
}

func (stubAuth) Login(context.Context, usecase.LoginInput) (user.User, string, string, error) {
	return user.User{}, "", "", nil
}

func (stubAuth) Refresh(context.Context, string) (string, string, error) { return "", "", nil }

type stubJobs struct{}

func (stubJobs) Search(context.Context, jobfilter.Criteria) ([]job.Job, error) { return nil, nil }
func (stubJobs) Get(context.Context, int64) (job.Job, error)                   { return job.Job{}, nil }

func (stubJobs) Create(context.Context, int64, string, usecase.JobInput) (job.Job, error) {
	return job.Job{}, nil
}

func (stubJobs) Update(context.Context, int64, user.Role, int64, usecase.JobInput) (job.Job, error) {
	return job.Job{}, nil
}

func (stubJobs) SetStatus(context.Context, int64, user.Role, int64, job.Status) (job.Job, error) {
	return job.Job{}, nil
}

func (stubJobs) ListByEmployer(context.Context, int64) ([]job.Job, error) { return nil, nil }

type stubApplications struct {
	applies       int
	statusUpdates int
}

func (s *stubApplications) Apply(_ context.Context, seekerID, jobID int64, _ string) (application.Application, error) {
	s.applies++
	return application.Application{ID: 1, JobID: jobID, JobSeekerID: seekerID, Status: application.StatusApplied}, nil
}

func (s *stubApplications) ListMine(context.Context, int64) ([]application.Application, error) {
	return nil, nil
}

func (s *stubApplications) ListForJob(context.Context, int64, int64) ([]application.Application, error) {
	return nil, nil
}

func (s *stubApplications) UpdateStatus(_ context.Context, _, id int64, next application.Status, _ *string) (application.Application, error) {
	s.statusUpdates++
	return application.Application{ID: id, Status: next}, nil
}

type stubDashboards struct{}

func (stubDashboards) ForJobSeeker(context.Context, int64) (usecase.JobSeekerDashboard, error) {
	return usecase.JobSeekerDashboard{}, nil
}

func (stubDashboards) ForEmployer(context.Context, int64) (usecase.EmployerDashboard, error) {
	return usecase.EmployerDashboard{}, nil
}

func (stubDashboards) ForAdmin(context.Context) (usecase.AdminDashboard, error) {
	return usecase.AdminDashboard{}, nil
}

type stubProfiles struct{}

func (stubProfiles) GetJobSeeker(context.Context, int64) (usecase.JobSeekerProfileView, error) {
	return usecase.JobSeekerProfileView{}, nil
}

func (stubProfiles) SaveJobSeeker(context.Context, int64, usecase.JobSeekerProfileInput) (usecase.JobSeekerProfileView, error) {
	return usecase.JobSeekerProfileView{}, nil
}

func (stubProfiles) GetEmployer(context.Context, int64) (usecase.EmployerProfileView, error) {
	return usecase.EmployerProfileView{}, nil
}

func (stubProfiles) SaveEmployer(context.Context, int64, usecase.EmployerProfileInput) (usecase.EmployerProfileView, error) {
	return usecase.EmployerProfileView{}, nil
}

type stubUsers struct{}

func (stubUsers) List(context.Context) ([]user.User, error) { return nil, nil }

func (stubUsers) SetActive(context.Context, int64, bool) (user.User, error) {
	return user.User{}, nil
}

func newTestApp(t *testing.T) (*fiber.App, jwt.Service, *stubApplications) {
	t.Helper()

	jwtSvc := jwt.NewHMACService("access-secret", "refresh-secret", time.Hour, time.Hour)
	apps := &stubApplications{}

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware().Middleware())
	Register(app.Group("/api/v1"), Deps{
		JWT:          jwtSvc,
		Auth:         stubAuth{},
		Jobs:         stubJobs{},
		Applications: apps,
		Dashboards:   stubDashboards{},
		Profiles:     stubProfiles{},
		Users:        stubUsers{},
	})
	return app, jwtSvc, apps
}

func doJSON(t *testing.T, app *fiber.App, method, path, bearer, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", bearer)
	}

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func bearerFor(t *testing.T, svc jwt.Service, userID int64, role user.Role) string {
	t.Helper()

	token, err := svc.GenerateAccessToken(userID, "someone@example.com", string(role))
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return "Bearer " + token
}

func TestApplicationStatusRoute_EmployerAllowed(t *testing.T) {
	app, jwtSvc, apps := newTestApp(t)
	employer := bearerFor(t, jwtSvc, 7, user.RoleEmployer)

	resp := doJSON(t, app, http.MethodPatch, "/api/v1/applications/1/status", employer,
		`{"status":"reviewed"}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for employer, got %d", resp.StatusCode)
	}
	if apps.statusUpdates != 1 {
		t.Fatalf("status update never reached the usecase")
	}
}

func TestApplicationStatusRoute_SeekerForbidden(t *testing.T) {
	app, jwtSvc, apps := newTestApp(t)
	seeker := bearerFor(t, jwtSvc, 3, user.RoleJobSeeker)

	resp := doJSON(t, app, http.MethodPatch, "/api/v1/applications/1/status", seeker,
		`{"status":"reviewed"}`)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for seeker, got %d", resp.StatusCode)
	}
	if apps.statusUpdates != 0 {
		t.Fatalf("forbidden request must not reach the usecase")
	}
}

func TestApplicationRoutes_SeekerSide(t *testing.T) {
	app, jwtSvc, apps := newTestApp(t)
	seeker := bearerFor(t, jwtSvc, 3, user.RoleJobSeeker)
	employer := bearerFor(t, jwtSvc, 7, user.RoleEmployer)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/applications", seeker,
		`{"jobId":5,"coverLetter":"Hi"}`)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 for seeker apply, got %d", resp.StatusCode)
	}
	if apps.applies != 1 {
		t.Fatalf("apply never reached the usecase")
	}

	resp = doJSON(t, app, http.MethodGet, "/api/v1/applications/mine", seeker, "")
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 for own history, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPost, "/api/v1/applications", employer,
		`{"jobId":5,"coverLetter":"Hi"}`)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for employer apply, got %d", resp.StatusCode)
	}
}

func TestApplicationRoutes_RequireAuth(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doJSON(t, app, http.MethodPatch, "/api/v1/applications/1/status", "",
		`{"status":"reviewed"}`)
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without a token, got %d", resp.StatusCode)
	}
}
