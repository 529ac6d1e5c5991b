package handler

import (
	"errors"

	"talent-hub/internal/delivery/http/dto"
	"talent-hub/internal/delivery/http/middleware"
	"talent-hub/internal/domain/user"
	"talent-hub/internal/pkg/response"
	"talent-hub/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// ProfileHandler serves the caller's own profile; the role claim decides
// which profile kind is read or written.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

type jobSeekerProfileRequest struct {
	FirstName  string   `json:"firstName"`
	LastName   string   `json:"lastName"`
	Phone      string   `json:"phone"`
	Location   string   `json:"location"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	ResumeURL  *string  `json:"resumeUrl"`
}

type employerProfileRequest struct {
	CompanyName string  `json:"companyName"`
	Industry    string  `json:"industry"`
	CompanySize string  `json:"companySize"`
	Website     string  `json:"website"`
	Description string  `json:"description"`
	LogoURL     *string `json:"logoUrl"`
}

func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}

	r.Get("/", h.Get)
	r.Put("/", h.Save)
}

func (h *ProfileHandler) Get(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	role, _ := middleware.Role(c)

	switch role {
	case user.RoleJobSeeker:
		view, err := h.uc.GetJobSeeker(c.Context(), userID)
		if err != nil {
			return mapProfileUsecaseError(err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobSeekerProfile(view))

	case user.RoleEmployer:
		view, err := h.uc.GetEmployer(c.Context(), userID)
		if err != nil {
			return mapProfileUsecaseError(err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromEmployerProfile(view))

	default:
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}
}

func (h *ProfileHandler) Save(c fiber.Ctx) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}
	role, _ := middleware.Role(c)

	switch role {
	case user.RoleJobSeeker:
		var req jobSeekerProfileRequest
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}

		view, err := h.uc.SaveJobSeeker(c.Context(), userID, usecase.JobSeekerProfileInput{
			FirstName:  req.FirstName,
			LastName:   req.LastName,
			Phone:      req.Phone,
			Location:   req.Location,
			Skills:     req.Skills,
			Experience: req.Experience,
			Education:  req.Education,
			ResumeURL:  req.ResumeURL,
		})
		if err != nil {
			return mapProfileUsecaseError(err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobSeekerProfile(view))

	case user.RoleEmployer:
		var req employerProfileRequest
		if err := c.Bind().Body(&req); err != nil {
			return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
		}

		view, err := h.uc.SaveEmployer(c.Context(), userID, usecase.EmployerProfileInput{
			CompanyName: req.CompanyName,
			Industry:    user.Industry(req.Industry),
			CompanySize: user.CompanySize(req.CompanySize),
			Website:     req.Website,
			Description: req.Description,
			LogoURL:     req.LogoURL,
		})
		if err != nil {
			return mapProfileUsecaseError(err)
		}
		return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromEmployerProfile(view))

	default:
		return middleware.NewAppError(fiber.StatusForbidden, "Forbidden", nil, nil)
	}
}

func mapProfileUsecaseError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "Profile not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return internalError(err)
	}
}
