package usecase

import (
	"context"
	"log"
	"strings"

	"jobscout/internal/domain/fingerprint"
	"jobscout/internal/ingest"
	"jobscout/internal/repository"
)

type IngestUsecase interface {
	IngestFile(ctx context.Context, path string, content []byte, bucket string) (string, error)
	SetFingerprint(ctx context.Context, jobID string, raw []byte) error
	MoveToLiked(ctx context.Context, jobID string) error
}

type Ingest struct {
	jobs   repository.JobRepository
	cache  RankCache
	logger *log.Logger
}

func NewIngestUsecase(jobs repository.JobRepository, cache RankCache, logger *log.Logger) *Ingest {
	if logger == nil {
		logger = log.Default()
	}
	return &Ingest{jobs: jobs, cache: cache, logger: logger}
}

// IngestFile parses one posting file and upserts its Job Record, returning
// the derived job_id. Re-ingesting the same file updates the existing
// record in place.
func (u *Ingest) IngestFile(ctx context.Context, path string, content []byte, bucket string) (string, error) {
	bucket = strings.TrimSpace(bucket)
	if bucket == "" {
		bucket = repository.BucketInbox
	}
	if bucket != repository.BucketInbox && bucket != repository.BucketLiked {
		return "", ErrInvalidInput
	}

	parsed := ingest.ParseFrontMatter(string(content))
	jobID := ingest.JobID(parsed.Meta, path)
	if jobID == "" {
		return "", ErrInvalidInput
	}

	job := repository.JobRecord{
		JobID:     jobID,
		Path:      path,
		Bucket:    bucket,
		Liked:     bucket == repository.BucketLiked,
		Company:   parsed.Meta.Company,
		Role:      parsed.Meta.Role,
		Location:  parsed.Meta.Location,
		Level:     parsed.Meta.Level,
		Domain:    parsed.Meta.Domain,
		Skills:    parsed.Meta.Skills,
		Source:    parsed.Meta.Source,
		DateSaved: parsed.Meta.DateSaved,
		Body:      parsed.Body,
	}

	if parsed.Meta.Fingerprint != "" {
		if fp, ok := fingerprint.Decode([]byte(parsed.Meta.Fingerprint)); ok {
			job.Fingerprint = &fp
		} else {
			u.logger.Printf("[Ingest] job=%s carries an undecodable fingerprint, storing without one", jobID)
		}
	}

	if err := u.jobs.Upsert(ctx, job); err != nil {
		return "", ErrInternal
	}

	u.invalidateRankings(ctx)
	return jobID, nil
}

// SetFingerprint attaches the external extractor's output to a stored job.
// Unlike corrupt persisted data, an undecodable payload here is rejected:
// the caller is handing us fresh input and must fix it.
func (u *Ingest) SetFingerprint(ctx context.Context, jobID string, raw []byte) error {
	fp, ok := fingerprint.Decode(raw)
	if !ok {
		return ErrInvalidInput
	}

	job, found, err := u.jobs.Get(ctx, jobID)
	if err != nil {
		return ErrInternal
	}
	if !found {
		return ErrJobNotFound
	}

	job.Fingerprint = &fp
	if err := u.jobs.Upsert(ctx, job); err != nil {
		return ErrInternal
	}

	u.invalidateRankings(ctx)
	return nil
}

// MoveToLiked transitions a job from inbox to the liked bucket, keeping
// the liked flag mirror in sync.
func (u *Ingest) MoveToLiked(ctx context.Context, jobID string) error {
	job, found, err := u.jobs.Get(ctx, jobID)
	if err != nil {
		return ErrInternal
	}
	if !found {
		return ErrJobNotFound
	}

	job.Bucket = repository.BucketLiked
	job.Liked = true
	if err := u.jobs.Upsert(ctx, job); err != nil {
		return ErrInternal
	}

	u.invalidateRankings(ctx)
	return nil
}

func (u *Ingest) invalidateRankings(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.DeleteByPattern(ctx, RankCacheInvalidationPattern); err != nil {
		u.logger.Printf("[Ingest] rank cache invalidation failed: %v", err)
	}
}
