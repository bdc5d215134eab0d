package dto

import (
	"time"

	"jobscout/internal/domain/fingerprint"
	"jobscout/internal/repository"
)

type JobResponse struct {
	JobID       string                   `json:"job_id"`
	Path        string                   `json:"path"`
	Bucket      string                   `json:"bucket"`
	Liked       bool                     `json:"liked"`
	Company     string                   `json:"company"`
	Role        string                   `json:"role"`
	Location    string                   `json:"location"`
	Level       string                   `json:"level"`
	Domain      string                   `json:"domain"`
	Skills      []string                 `json:"skills"`
	Source      string                   `json:"source"`
	DateSaved   string                   `json:"date_saved"`
	Body        string                   `json:"body"`
	Fingerprint *fingerprint.Fingerprint `json:"fingerprint,omitempty"`
	CreatedAt   string                   `json:"created_at"`
	UpdatedAt   string                   `json:"updated_at"`
}

func FromJobRecord(job repository.JobRecord) JobResponse {
	return JobResponse{
		JobID:       job.JobID,
		Path:        job.Path,
		Bucket:      job.Bucket,
		Liked:       job.Liked,
		Company:     job.Company,
		Role:        job.Role,
		Location:    job.Location,
		Level:       job.Level,
		Domain:      job.Domain,
		Skills:      job.Skills,
		Source:      job.Source,
		DateSaved:   job.DateSaved,
		Body:        job.Body,
		Fingerprint: job.Fingerprint,
		CreatedAt:   formatTime(job.CreatedAt),
		UpdatedAt:   formatTime(job.UpdatedAt),
	}
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
