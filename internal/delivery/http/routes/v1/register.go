package v1

import (
	"talent-hub/internal/delivery/http/handler"
	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/domain/user"
	"talent-hub/internal/pkg/jwt"
	"talent-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// Deps carries the constructed usecases into route registration. The
// container owns construction so the store driver stays swappable.
type Deps struct {
	JWT          jwt.Service
	Auth         usecase.AuthUsecase
	Jobs         usecase.JobUsecase
	Applications usecase.ApplicationUsecase
	Dashboards   usecase.DashboardUsecase
	Profiles     usecase.ProfileUsecase
	Users        usecase.UserUsecase
}

func Register(r fiber.Router, deps Deps) {
	if r == nil {
		return
	}

	authMw := middleware.NewAuthMiddleware(deps.JWT)

	authHandler := handler.NewAuthHandler(deps.Auth)
	jobsHandler := handler.NewJobsHandler(deps.Jobs, deps.Profiles)
	appsHandler := handler.NewApplicationsHandler(deps.Applications)
	dashboardHandler := handler.NewDashboardHandler(deps.Dashboards)
	profileHandler := handler.NewProfileHandler(deps.Profiles)
	adminHandler := handler.NewAdminHandler(deps.Users)

	authGroup := r.Group("/auth")
	authHandler.RegisterRoutes(authGroup)

	// search and job detail are public
	jobsPublic := r.Group("/jobs")
	jobsHandler.RegisterPublicRoutes(jobsPublic)

	protected := r.Group("", authMw.Middleware())

	employerOnly := authMw.RequireRole(user.RoleEmployer)
	seekerOnly := authMw.RequireRole(user.RoleJobSeeker)
	adminOnly := authMw.RequireRole(user.RoleAdmin)
	employerOrAdmin := authMw.RequireRole(user.RoleEmployer, user.RoleAdmin)

	jobsWrite := protected.Group("/jobs")
	jobsHandler.RegisterWriteRoutes(jobsWrite, employerOnly, employerOrAdmin)
	jobsWrite.Get("/:id/applications", appsHandler.ListForJob, employerOnly)

	protected.Get("/employer/jobs", jobsHandler.ListMine, employerOnly)

	apps := protected.Group("/applications")
	appsHandler.RegisterRoutes(apps, seekerOnly, employerOnly)

	dashboard := protected.Group("/dashboard")
	dashboard.Get("/seeker", dashboardHandler.Seeker, seekerOnly)
	dashboard.Get("/employer", dashboardHandler.Employer, employerOnly)
	dashboard.Get("/admin", dashboardHandler.Admin, adminOnly)

	profileGroup := protected.Group("/profile")
	profileHandler.RegisterRoutes(profileGroup)

	adminGroup := protected.Group("/admin", adminOnly)
	adminHandler.RegisterRoutes(adminGroup)
}
