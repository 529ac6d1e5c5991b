package handler

import (
	"errors"

	"talent-hub/internal/delivery/http/dto"
	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/domain/application"
	"talent-hub/internal/pkg/response"
	"talent-hub/internal/usecase"
	"talent-hub/internal/workflow"

	"github.com/gofiber/fiber/v3"
)

type ApplicationsHandler struct {
	uc usecase.ApplicationUsecase
}

type applyRequest struct {
	JobID       int64  `json:"jobId"`
	CoverLetter string `json:"coverLetter"`
}

type applicationStatusRequest struct {
	Status string  `json:"status"`
	Notes  *string `json:"notes"`
}

func NewApplicationsHandler(uc usecase.ApplicationUsecase) *ApplicationsHandler {
	return &ApplicationsHandler{uc: uc}
}

// RegisterRoutes mounts the application surface on an authenticated group.
// Role guards attach per route, not on the group: a group-level guard would
// run for every route sharing the prefix and lock the other role out.
func (h *ApplicationsHandler) RegisterRoutes(r fiber.Router, seekerOnly, employerOnly fiber.Handler) {
	if r == nil {
		return
	}

	r.Post("/", h.Apply, seekerOnly)
	r.Get("/mine", h.ListMine, seekerOnly)
	r.Patch("/:id/status", h.UpdateStatus, employerOnly)
}

func (h *ApplicationsHandler) Apply(c fiber.Ctx) error {
	seekerID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req applyRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}
	if req.JobID <= 0 {
		return middleware.NewAppError(fiber.StatusBadRequest, "Invalid jobId", nil, nil)
	}

	created, err := h.uc.Apply(c.Context(), seekerID, req.JobID, req.CoverLetter)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusCreated, response.MessageOK, dto.FromApplication(created))
}

func (h *ApplicationsHandler) ListMine(c fiber.Ctx) error {
	seekerID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	apps, err := h.uc.ListMine(c.Context(), seekerID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplications(apps))
}

// ListForJob serves GET /jobs/:id/applications for the owning employer.
func (h *ApplicationsHandler) ListForJob(c fiber.Ctx) error {
	employerID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	jobID, err := idParam(c, "id")
	if err != nil {
		return err
	}

	apps, err := h.uc.ListForJob(c.Context(), employerID, jobID)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplications(apps))
}

func (h *ApplicationsHandler) UpdateStatus(c fiber.Ctx) error {
	employerID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req applicationStatusRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.uc.UpdateStatus(c.Context(), employerID, id, application.Status(req.Status), req.Notes)
	if err != nil {
		return mapApplicationUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromApplication(updated))
}

func mapApplicationUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, workflow.ErrDuplicateApplication):
		return middleware.NewAppError(fiber.StatusConflict, "Already applied to this job", nil, err)
	case errors.Is(err, workflow.ErrInvalidTransition):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Invalid status transition", nil, err)
	case errors.Is(err, usecase.ErrJobNotAcceptingApplications):
		return middleware.NewAppError(fiber.StatusUnprocessableEntity, "Job is not accepting applications", nil, err)
	case errors.Is(err, usecase.ErrJobNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Job not found", nil, err)
	case errors.Is(err, usecase.ErrApplicationNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Application not found", nil, err)
	case errors.Is(err, usecase.ErrForbidden):
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return internalError(err)
	}
}
