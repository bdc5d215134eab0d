package dto

import "jobscout/internal/usecase"

type RankedJobResponse struct {
	Score float64     `json:"score"`
	Job   JobResponse `json:"job"`
}

func FromRankedJobs(ranked []usecase.RankedJob) []RankedJobResponse {
	out := make([]RankedJobResponse, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, RankedJobResponse{Score: r.Score, Job: FromJobRecord(r.Job)})
	}
	return out
}
