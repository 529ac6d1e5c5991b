package handler

import (
	"talent-hub/internal/delivery/http/dto"
	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/pkg/response"
	"talent-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type DashboardHandler struct {
	uc usecase.DashboardUsecase
}

func NewDashboardHandler(uc usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

func (h *DashboardHandler) Seeker(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	d, err := h.uc.ForJobSeeker(c.Context(), userID)
	if err != nil {
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobSeekerDashboard(d))
}

func (h *DashboardHandler) Employer(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	d, err := h.uc.ForEmployer(c.Context(), userID)
	if err != nil {
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromEmployerDashboard(d))
}

func (h *DashboardHandler) Admin(c fiber.Ctx) error {
	d, err := h.uc.ForAdmin(c.Context())
	if err != nil {
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromAdminDashboard(d))
}
