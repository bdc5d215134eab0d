package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"
)

// RankCache is the slice of the redis cache the ranking usecase needs.
type RankCache interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error
	DeleteByPattern(ctx context.Context, pattern string) error
}

// RankCacheInvalidationPattern matches every cached ranking. Any job write
// can change any ranking, so invalidation is wholesale.
const RankCacheInvalidationPattern = "rank:*"

type seedRankKeyInput struct {
	SeedJobID string `json:"seed_job_id"`
	TopN      int    `json:"top_n"`
}

func SeedRankCacheKey(seedJobID string, topN int) string {
	b, _ := json.Marshal(seedRankKeyInput{SeedJobID: seedJobID, TopN: topN})
	sum := sha256.Sum256(b)
	return "rank:seed:" + hex.EncodeToString(sum[:])
}
