package dto

import (
	"time"

	"jobscout/internal/repository"
)

type FeedbackResponse struct {
	JobID     string `json:"job_id"`
	Status    string `json:"status"`
	Notes     string `json:"notes"`
	UpdatedAt string `json:"updated_at"`
}

func FromFeedback(fb repository.Feedback) FeedbackResponse {
	updated := ""
	if !fb.UpdatedAt.IsZero() {
		updated = fb.UpdatedAt.UTC().Format(time.RFC3339)
	}
	return FeedbackResponse{JobID: fb.JobID, Status: fb.Status, Notes: fb.Notes, UpdatedAt: updated}
}
