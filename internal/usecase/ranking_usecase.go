package usecase

import (
	"context"
	"log"
	"sort"

	"jobscout/internal/domain/fingerprint"
	"jobscout/internal/domain/scoring"
	"jobscout/internal/repository"
)

type RankedJob struct {
	Score float64              `json:"score"`
	Job   repository.JobRecord `json:"job"`
}

type RankingUsecase interface {
	RankBySeed(ctx context.Context, seedJobID string, topN int) ([]RankedJob, error)
	RankAgainstLiked(ctx context.Context) ([]RankedJob, error)
}

type Ranking struct {
	jobs    repository.JobRepository
	profile repository.ProfileRepository
	cache   RankCache
	logger  *log.Logger
}

func NewRankingUsecase(jobs repository.JobRepository, profile repository.ProfileRepository, cache RankCache, logger *log.Logger) *Ranking {
	if logger == nil {
		logger = log.Default()
	}
	return &Ranking{jobs: jobs, profile: profile, cache: cache, logger: logger}
}

// RankBySeed scores every fingerprinted inbox job against the seed job's
// fingerprint and returns the top n. Results are cached; any job write
// invalidates the cache wholesale.
func (u *Ranking) RankBySeed(ctx context.Context, seedJobID string, topN int) ([]RankedJob, error) {
	if seedJobID == "" || topN < 0 {
		return nil, ErrInvalidInput
	}
	if topN == 0 {
		topN = scoring.DefaultTopN
	}

	seed, ok, err := u.jobs.Get(ctx, seedJobID)
	if err != nil {
		return nil, ErrInternal
	}
	if !ok {
		return nil, ErrJobNotFound
	}
	if seed.Fingerprint == nil {
		return nil, ErrSeedFingerprintMissing
	}

	key := SeedRankCacheKey(seedJobID, topN)
	if u.cache != nil {
		var cached []RankedJob
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	inbox, err := u.jobs.List(ctx, repository.BucketInbox)
	if err != nil {
		return nil, ErrInternal
	}

	byID := make(map[string]repository.JobRecord, len(inbox))
	candidates := make([]scoring.Candidate, 0, len(inbox))
	for _, job := range inbox {
		if job.Fingerprint == nil || job.JobID == seedJobID {
			continue
		}
		byID[job.JobID] = job
		candidates = append(candidates, scoring.Candidate{JobID: job.JobID, Fingerprint: *job.Fingerprint})
	}

	ranked := scoring.RankBySeed(candidates, *seed.Fingerprint, topN)

	out := make([]RankedJob, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, RankedJob{Score: r.Score, Job: byID[r.JobID]})
	}

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, key, out, 0); err != nil {
			u.logger.Printf("[Ranking] cache write failed: %v", err)
		}
	}

	return out, nil
}

// RankAgainstLiked scores every fingerprinted inbox job against the liked
// pool, boosted by the interest profile's focus fields, sorted descending.
// An empty liked pool yields zero scores, not an error.
func (u *Ranking) RankAgainstLiked(ctx context.Context) ([]RankedJob, error) {
	liked, err := u.jobs.List(ctx, repository.BucketLiked)
	if err != nil {
		return nil, ErrInternal
	}

	pool := make([]fingerprint.Fingerprint, 0, len(liked))
	for _, job := range liked {
		if job.Fingerprint != nil {
			pool = append(pool, *job.Fingerprint)
		}
	}

	prof, err := u.profile.Get(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	inbox, err := u.jobs.List(ctx, repository.BucketInbox)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]RankedJob, 0, len(inbox))
	for _, job := range inbox {
		if job.Fingerprint == nil {
			continue
		}
		score := scoring.ScoreAgainstLiked(*job.Fingerprint, pool, &prof)
		out = append(out, RankedJob{Score: score, Job: job})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})

	return out, nil
}
