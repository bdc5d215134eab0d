package handler

import (
	"strconv"

	"jobscout/internal/delivery/http/dto"
	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/pkg/response"
	"jobscout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type RankHandler struct {
	ranking usecase.RankingUsecase
}

func NewRankHandler(ranking usecase.RankingUsecase) *RankHandler {
	return &RankHandler{ranking: ranking}
}

func (h *RankHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/rank/seed/:job_id", h.HandleRankBySeed)
	r.Get("/rank/liked", h.HandleRankAgainstLiked)
}

func (h *RankHandler) HandleRankBySeed(c fiber.Ctx) error {
	topN := 0
	if s := c.Query("top"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
		}
		topN = v
	}

	ranked, err := h.ranking.RankBySeed(c.Context(), c.Params("job_id"), topN)
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRankedJobs(ranked))
}

func (h *RankHandler) HandleRankAgainstLiked(c fiber.Ctx) error {
	ranked, err := h.ranking.RankAgainstLiked(c.Context())
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromRankedJobs(ranked))
}
