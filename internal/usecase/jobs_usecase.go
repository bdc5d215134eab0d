package usecase

import (
	"context"
	"strings"

	"jobscout/internal/repository"
)

type JobsUsecase interface {
	List(ctx context.Context, bucket string) ([]repository.JobRecord, error)
	Get(ctx context.Context, jobID string) (repository.JobRecord, error)
	SaveFeedback(ctx context.Context, jobID, status, notes string) error
	GetFeedback(ctx context.Context, jobID string) (repository.Feedback, bool, error)
}

type Jobs struct {
	jobs     repository.JobRepository
	feedback repository.FeedbackRepository
}

func NewJobsUsecase(jobs repository.JobRepository, feedback repository.FeedbackRepository) *Jobs {
	return &Jobs{jobs: jobs, feedback: feedback}
}

func (u *Jobs) List(ctx context.Context, bucket string) ([]repository.JobRecord, error) {
	bucket = strings.TrimSpace(bucket)
	if bucket != "" && bucket != repository.BucketInbox && bucket != repository.BucketLiked {
		return nil, ErrInvalidInput
	}

	out, err := u.jobs.List(ctx, bucket)
	if err != nil {
		return nil, ErrInternal
	}
	return out, nil
}

func (u *Jobs) Get(ctx context.Context, jobID string) (repository.JobRecord, error) {
	if strings.TrimSpace(jobID) == "" {
		return repository.JobRecord{}, ErrInvalidInput
	}

	job, ok, err := u.jobs.Get(ctx, jobID)
	if err != nil {
		return repository.JobRecord{}, ErrInternal
	}
	if !ok {
		return repository.JobRecord{}, ErrJobNotFound
	}
	return job, nil
}

func (u *Jobs) SaveFeedback(ctx context.Context, jobID, status, notes string) error {
	if strings.TrimSpace(jobID) == "" || strings.TrimSpace(status) == "" {
		return ErrInvalidInput
	}

	_, ok, err := u.jobs.Get(ctx, jobID)
	if err != nil {
		return ErrInternal
	}
	if !ok {
		return ErrJobNotFound
	}

	if err := u.feedback.Upsert(ctx, repository.Feedback{JobID: jobID, Status: status, Notes: notes}); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Jobs) GetFeedback(ctx context.Context, jobID string) (repository.Feedback, bool, error) {
	if strings.TrimSpace(jobID) == "" {
		return repository.Feedback{}, false, ErrInvalidInput
	}

	fb, ok, err := u.feedback.Get(ctx, jobID)
	if err != nil {
		return repository.Feedback{}, false, ErrInternal
	}
	return fb, ok, nil
}
