package handler

import (
	"errors"
	"strconv"
	"time"

	"talent-hub/internal/delivery/http/dto"
	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/domain/job"
	"talent-hub/internal/jobfilter"
	"talent-hub/internal/pkg/response"
	"talent-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	jobs     usecase.JobUsecase
	profiles usecase.ProfileUsecase
}

type jobRequest struct {
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Requirements    string     `json:"requirements"`
	Location        string     `json:"location"`
	JobType         string     `json:"jobType"`
	ExperienceLevel string     `json:"experienceLevel"`
	SalaryMin       *int       `json:"salaryMin"`
	SalaryMax       *int       `json:"salaryMax"`
	Deadline        *time.Time `json:"deadline"`
}

type jobStatusRequest struct {
	Status string `json:"status"`
}

func NewJobsHandler(jobs usecase.JobUsecase, profiles usecase.ProfileUsecase) *JobsHandler {
	return &JobsHandler{jobs: jobs, profiles: profiles}
}

// RegisterPublicRoutes mounts search and detail, which need no auth.
func (h *JobsHandler) RegisterPublicRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Search)
	r.Get("/:id", h.Get)
}

// RegisterWriteRoutes mounts the write side; the caller wraps the group in
// the auth middleware. Only employers post new listings, but admins may
// edit or toggle any listing. ListMine lives under the employer prefix so
// public search keeps GET /jobs to itself.
func (h *JobsHandler) RegisterWriteRoutes(r fiber.Router, employerOnly, employerOrAdmin fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/", h.Create, employerOnly)
	r.Put("/:id", h.Update, employerOrAdmin)
	r.Patch("/:id/status", h.SetStatus, employerOrAdmin)
}

func (h *JobsHandler) Search(c fiber.Ctx) error {
	criteria, err := criteriaFromQuery(c)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	results, err := h.jobs.Search(c.Context(), criteria)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(results))
}

func (h *JobsHandler) Get(c fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	j, err := h.jobs.Get(c.Context(), id)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(j))
}

func (h *JobsHandler) ListMine(c fiber.Ctx) error {
	employerID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	jobs, err := h.jobs.ListByEmployer(c.Context(), employerID)
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobs(jobs))
}

func (h *JobsHandler) Create(c fiber.Ctx) error {
	employerID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	// listings denormalize the company name from the employer profile
	profileView, err := h.profiles.GetEmployer(c.Context(), employerID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Company profile required before posting", nil, err)
		}
		return internalError(err)
	}

	created, err := h.jobs.Create(c.Context(), employerID, profileView.Profile.CompanyName, jobInputFromRequest(req))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromJob(created))
}

func (h *JobsHandler) Update(c fiber.Ctx) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	role, _ := middleware.Role(c)
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req jobRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.jobs.Update(c.Context(), actorID, role, id, jobInputFromRequest(req))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(updated))
}

func (h *JobsHandler) SetStatus(c fiber.Ctx) error {
	actorID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	role, _ := middleware.Role(c)
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req jobStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.jobs.SetStatus(c.Context(), actorID, role, id, job.Status(req.Status))
	if err != nil {
		return mapJobUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJob(updated))
}

func jobInputFromRequest(req jobRequest) usecase.JobInput {
	return usecase.JobInput{
		Title:           req.Title,
		Description:     req.Description,
		Requirements:    req.Requirements,
		Location:        req.Location,
		JobType:         job.Type(req.JobType),
		ExperienceLevel: job.ExperienceLevel(req.ExperienceLevel),
		SalaryMin:       req.SalaryMin,
		SalaryMax:       req.SalaryMax,
		Deadline:        req.Deadline,
	}
}

func criteriaFromQuery(c fiber.Ctx) (jobfilter.Criteria, error) {
	criteria := jobfilter.Criteria{
		SearchTerm:      c.Query("q"),
		Location:        c.Query("location"),
		JobType:         job.Type(c.Query("job_type")),
		ExperienceLevel: job.ExperienceLevel(c.Query("experience_level")),
	}

	var err error
	if criteria.SalaryMin, err = optionalIntQuery(c, "salary_min"); err != nil {
		return jobfilter.Criteria{}, err
	}
	if criteria.SalaryMax, err = optionalIntQuery(c, "salary_max"); err != nil {
		return jobfilter.Criteria{}, err
	}

	if criteria.JobType != "" && !criteria.JobType.Valid() {
		return jobfilter.Criteria{}, errors.New("invalid job_type")
	}
	if criteria.ExperienceLevel != "" && !criteria.ExperienceLevel.Valid() {
		return jobfilter.Criteria{}, errors.New("invalid experience_level")
	}
	return criteria, nil
}

func optionalIntQuery(c fiber.Ctx, name string) (*int, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 0 {
		return nil, errors.New("invalid " + name)
	}
	return &v, nil
}

func idParam(c fiber.Ctx, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Params(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, middleware.NewAppError(fiber.StatusBadRequest, "Invalid id", nil, err)
	}
	return id, nil
}

// internalError keeps a degraded record store distinguishable from any
// other unexpected failure: 503 invites a retry, 500 does not.
func internalError(err error) error {
	if errors.Is(err, usecase.ErrStoreUnavailable) {
		return middleware.NewAppError(fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, nil, err)
	}
	return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
}

func mapJobUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return internalError(err)
	}
}
