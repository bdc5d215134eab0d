package handler

import (
	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/domain/profile"
	"jobscout/internal/pkg/response"
	"jobscout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type ProfileHandler struct {
	profiles usecase.ProfileUsecase
}

func NewProfileHandler(profiles usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{profiles: profiles}
}

func (h *ProfileHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/profile", h.HandleGet)
	r.Put("/profile", h.HandleSave)
	r.Get("/reputable", h.HandleListReputable)
	r.Put("/reputable", h.HandleSaveReputable)
}

func (h *ProfileHandler) HandleGet(c fiber.Ctx) error {
	p, err := h.profiles.Get(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, p)
}

// HandleSave replaces the whole profile document with the request body.
func (h *ProfileHandler) HandleSave(c fiber.Ctx) error {
	var p profile.InterestProfile
	if err := c.Bind().Body(&p); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	if err := h.profiles.Save(c.Context(), p); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *ProfileHandler) HandleListReputable(c fiber.Ctx) error {
	names, err := h.profiles.ListReputable(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, names)
}

type saveReputableRequest struct {
	Companies []string `json:"companies"`
}

func (h *ProfileHandler) HandleSaveReputable(c fiber.Ctx) error {
	var req saveReputableRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	if err := h.profiles.SaveReputable(c.Context(), req.Companies); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}
