package usecase

import (
	"context"

	"jobscout/internal/domain/filtering"
	"jobscout/internal/domain/fingerprint"
	"jobscout/internal/repository"
)

type FilterUsecase interface {
	EvaluateJob(ctx context.Context, jobID string) (filtering.Result, error)
}

type Filter struct {
	jobs      repository.JobRepository
	profile   repository.ProfileRepository
	reputable repository.ReputableRepository
}

func NewFilterUsecase(jobs repository.JobRepository, profile repository.ProfileRepository, reputable repository.ReputableRepository) *Filter {
	return &Filter{jobs: jobs, profile: profile, reputable: reputable}
}

// EvaluateJob runs the advisory filter pass for one stored job. A job
// without a fingerprint is still evaluated; the location check simply
// cannot see a remote location type and treats it as unknown.
func (u *Filter) EvaluateJob(ctx context.Context, jobID string) (filtering.Result, error) {
	if jobID == "" {
		return filtering.Result{}, ErrInvalidInput
	}

	job, ok, err := u.jobs.Get(ctx, jobID)
	if err != nil {
		return filtering.Result{}, ErrInternal
	}
	if !ok {
		return filtering.Result{}, ErrJobNotFound
	}

	prof, err := u.profile.Get(ctx)
	if err != nil {
		return filtering.Result{}, ErrInternal
	}

	var allowlist []string
	if prof.ReputableOnly {
		allowlist, err = u.reputable.List(ctx)
		if err != nil {
			return filtering.Result{}, ErrInternal
		}
	}

	fp := fingerprint.Fingerprint{}
	if job.Fingerprint != nil {
		fp = *job.Fingerprint
	}

	return filtering.Evaluate(job.Body, job.Company, fp, prof, allowlist), nil
}
