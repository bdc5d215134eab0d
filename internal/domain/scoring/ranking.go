package scoring

import (
	"math"
	"sort"

	"jobscout/internal/domain/fingerprint"
	"jobscout/internal/domain/profile"
)

// Liked-pool score composition. The best single liked match dominates, the
// aggregate taste profile smooths it, and each non-empty focus field of the
// interest profile adds a capped additive boost.
const (
	BestMatchWeight  = 0.7
	AggregateWeight  = 0.3
	FocusBoostWeight = 0.12
)

// DefaultTopN is the documented UI default for seed ranking.
const DefaultTopN = 10

type Candidate struct {
	JobID       string
	Fingerprint fingerprint.Fingerprint
}

type Ranked struct {
	JobID string
	Score float64
}

// RankBySeed scores every candidate directly against the seed and returns
// the top n by score descending. The sort is stable: ties keep first-seen
// input order, so repeated calls over the same input are deterministic.
func RankBySeed(candidates []Candidate, seed fingerprint.Fingerprint, n int) []Ranked {
	if n <= 0 {
		n = DefaultTopN
	}

	ranked := make([]Ranked, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, Ranked{JobID: c.JobID, Score: Similarity(c.Fingerprint, seed)})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// ScoreAgainstLiked scores a candidate fingerprint against the whole liked
// pool: 0.7 times the best single liked similarity plus 0.3 times the
// similarity to the pool aggregate. A profile with non-empty focus fields
// adds 0.12 * jaccard(candidate field, focus field) per field. The result
// is capped at 1.0 so the additive boost cannot break the bounded-score
// contract, and rounded to 4 decimals. An empty pool scores 0.0.
func ScoreAgainstLiked(fp fingerprint.Fingerprint, liked []fingerprint.Fingerprint, p *profile.InterestProfile) float64 {
	if len(liked) == 0 {
		return 0.0
	}

	best := 0.0
	for _, l := range liked {
		if s := Similarity(fp, l); s > best {
			best = s
		}
	}

	aggScore := Similarity(fp, Aggregate(liked))
	score := BestMatchWeight*best + AggregateWeight*aggScore

	if p != nil {
		score += focusBoost(fp, *p)
	}

	return round4(math.Min(score, 1.0))
}

func focusBoost(fp fingerprint.Fingerprint, p profile.InterestProfile) float64 {
	boost := 0.0
	if focus := fingerprint.NormalizeSet(p.FocusSkills); len(focus) > 0 {
		boost += FocusBoostWeight * Jaccard(fp.Skills, focus)
	}
	if focus := fingerprint.NormalizeSet(p.FocusDomains); len(focus) > 0 {
		boost += FocusBoostWeight * Jaccard(fp.Domains, focus)
	}
	if focus := fingerprint.NormalizeSet(p.FocusKeywords); len(focus) > 0 {
		boost += FocusBoostWeight * Jaccard(fp.Keywords, focus)
	}
	return boost
}
