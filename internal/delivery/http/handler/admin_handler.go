package handler

import (
	"errors"

	"talent-hub/internal/delivery/http/dto"
	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/pkg/response"
	"talent-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type AdminHandler struct {
	users usecase.UserUsecase
}

type setActiveRequest struct {
	Active bool `json:"active"`
}

func NewAdminHandler(users usecase.UserUsecase) *AdminHandler {
	return &AdminHandler{users: users}
}

func (h *AdminHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/users", h.ListUsers)
	r.Patch("/users/:id/active", h.SetActive)
}

func (h *AdminHandler) ListUsers(c fiber.Ctx) error {
	users, err := h.users.List(c.Context())
	if err != nil {
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUsers(users))
}

func (h *AdminHandler) SetActive(c fiber.Ctx) error {
	id, err := idParam(c, "id")
	if err != nil {
		return err
	}

	var req setActiveRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	updated, err := h.users.SetActive(c.Context(), id, req.Active)
	if err != nil {
		if errors.Is(err, usecase.ErrUserNotFound) {
			return middleware.NewAppError(fiber.StatusNotFound, "User not found", nil, err)
		}
		return internalError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromUser(updated))
}
