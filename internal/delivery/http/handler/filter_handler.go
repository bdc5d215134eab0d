package handler

import (
	"jobscout/internal/delivery/http/dto"
	"jobscout/internal/pkg/response"
	"jobscout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type FilterHandler struct {
	filters usecase.FilterUsecase
}

func NewFilterHandler(filters usecase.FilterUsecase) *FilterHandler {
	return &FilterHandler{filters: filters}
}

func (h *FilterHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/jobs/:job_id/filters", h.HandleEvaluate)
}

func (h *FilterHandler) HandleEvaluate(c fiber.Ctx) error {
	res, err := h.filters.EvaluateJob(c.Context(), c.Params("job_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromFilterResult(res))
}
