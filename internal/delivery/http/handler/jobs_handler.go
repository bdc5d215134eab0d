package handler

import (
	"jobscout/internal/delivery/http/dto"
	"jobscout/internal/delivery/http/middleware"
	"jobscout/internal/pkg/response"
	"jobscout/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	jobs   usecase.JobsUsecase
	ingest usecase.IngestUsecase
}

func NewJobsHandler(jobs usecase.JobsUsecase, ingest usecase.IngestUsecase) *JobsHandler {
	return &JobsHandler{jobs: jobs, ingest: ingest}
}

func (h *JobsHandler) RegisterRoutes(r fiber.Router) {
	r.Get("/jobs", h.HandleList)
	r.Get("/jobs/:job_id", h.HandleGet)
	r.Post("/jobs/:job_id/like", h.HandleLike)
	r.Post("/jobs/:job_id/fingerprint", h.HandleSetFingerprint)
	r.Get("/jobs/:job_id/feedback", h.HandleGetFeedback)
	r.Post("/jobs/:job_id/feedback", h.HandleSaveFeedback)
}

func (h *JobsHandler) HandleList(c fiber.Ctx) error {
	items, err := h.jobs.List(c.Context(), c.Query("bucket"))
	if err != nil {
		return mapUsecaseError(err)
	}

	out := make([]dto.JobResponse, 0, len(items))
	for _, job := range items {
		out = append(out, dto.FromJobRecord(job))
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *JobsHandler) HandleGet(c fiber.Ctx) error {
	job, err := h.jobs.Get(c.Context(), c.Params("job_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromJobRecord(job))
}

func (h *JobsHandler) HandleLike(c fiber.Ctx) error {
	if err := h.ingest.MoveToLiked(c.Context(), c.Params("job_id")); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

// HandleSetFingerprint accepts the external extractor's raw JSON output
// for one job. The engine never calls the extractor itself.
func (h *JobsHandler) HandleSetFingerprint(c fiber.Ctx) error {
	if err := h.ingest.SetFingerprint(c.Context(), c.Params("job_id"), c.Body()); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

type saveFeedbackRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func (h *JobsHandler) HandleSaveFeedback(c fiber.Ctx) error {
	var req saveFeedbackRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, response.MessageBadRequest, nil, err)
	}

	if err := h.jobs.SaveFeedback(c.Context(), c.Params("job_id"), req.Status, req.Notes); err != nil {
		return mapUsecaseError(err)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, nil)
}

func (h *JobsHandler) HandleGetFeedback(c fiber.Ctx) error {
	fb, ok, err := h.jobs.GetFeedback(c.Context(), c.Params("job_id"))
	if err != nil {
		return mapUsecaseError(err)
	}
	if !ok {
		return middleware.NewAppError(fiber.StatusNotFound, response.MessageNotFound, nil, nil)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, dto.FromFeedback(fb))
}
