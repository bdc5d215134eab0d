package scoring

import (
	"reflect"
	"testing"

	"jobscout/internal/domain/fingerprint"
	"jobscout/internal/domain/profile"
)

func TestAggregate_UnionsAndSorts(t *testing.T) {
	fps := []fingerprint.Fingerprint{
		{Skills: []string{"go", "redis"}, Domains: []string{"payments"}},
		{Skills: []string{"redis", "aws"}, Keywords: []string{"api"}},
	}

	agg := Aggregate(fps)

	if !reflect.DeepEqual(agg.Skills, []string{"aws", "go", "redis"}) {
		t.Fatalf("unexpected skills: %v", agg.Skills)
	}
	if !reflect.DeepEqual(agg.Domains, []string{"payments"}) {
		t.Fatalf("unexpected domains: %v", agg.Domains)
	}
	if !reflect.DeepEqual(agg.Keywords, []string{"api"}) {
		t.Fatalf("unexpected keywords: %v", agg.Keywords)
	}
	if agg.RoleTitle != "" || agg.Seniority != "" {
		t.Fatalf("aggregate must not carry scalar fields: %+v", agg)
	}
}

func TestAggregate_EmptyInput(t *testing.T) {
	agg := Aggregate(nil)
	if !agg.IsEmpty() {
		t.Fatalf("expected empty aggregate, got %+v", agg)
	}
}

func TestRankBySeed_Deterministic(t *testing.T) {
	seed := fingerprint.Fingerprint{Skills: []string{"go", "postgresql"}}.Normalize()
	candidates := []Candidate{
		{JobID: "a", Fingerprint: fingerprint.Fingerprint{Skills: []string{"go", "postgresql"}}.Normalize()},
		{JobID: "b", Fingerprint: fingerprint.Fingerprint{Skills: []string{"go"}}.Normalize()},
		{JobID: "c", Fingerprint: fingerprint.Fingerprint{Skills: []string{"python"}}.Normalize()},
	}

	first := RankBySeed(candidates, seed, 3)
	for i := 0; i < 10; i++ {
		again := RankBySeed(candidates, seed, 3)
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("ranking not deterministic: %v vs %v", first, again)
		}
	}

	if first[0].JobID != "a" || first[1].JobID != "b" || first[2].JobID != "c" {
		t.Fatalf("unexpected order: %v", first)
	}
}

func TestRankBySeed_TiesKeepInputOrder(t *testing.T) {
	seed := fingerprint.Fingerprint{Skills: []string{"go"}}.Normalize()
	same := fingerprint.Fingerprint{Skills: []string{"go"}}.Normalize()
	candidates := []Candidate{
		{JobID: "first", Fingerprint: same},
		{JobID: "second", Fingerprint: same},
		{JobID: "third", Fingerprint: same},
	}

	ranked := RankBySeed(candidates, seed, 3)
	if ranked[0].JobID != "first" || ranked[1].JobID != "second" || ranked[2].JobID != "third" {
		t.Fatalf("ties must preserve input order, got %v", ranked)
	}
}

func TestRankBySeed_TruncatesToTopN(t *testing.T) {
	seed := fingerprint.Fingerprint{Skills: []string{"go"}}.Normalize()
	candidates := make([]Candidate, 0, 15)
	for i := 0; i < 15; i++ {
		candidates = append(candidates, Candidate{JobID: "x", Fingerprint: seed})
	}

	if got := len(RankBySeed(candidates, seed, 5)); got != 5 {
		t.Fatalf("expected 5 results, got %d", got)
	}
	// n<=0 falls back to the documented UI default.
	if got := len(RankBySeed(candidates, seed, 0)); got != DefaultTopN {
		t.Fatalf("expected %d results, got %d", DefaultTopN, got)
	}
}

func TestScoreAgainstLiked_EmptyPoolIsZero(t *testing.T) {
	fp := fullFingerprint()
	if got := ScoreAgainstLiked(fp, nil, nil); got != 0.0 {
		t.Fatalf("expected 0.0 for empty liked pool, got %v", got)
	}
}

func TestScoreAgainstLiked_Composition(t *testing.T) {
	candidate := fingerprint.Fingerprint{Skills: []string{"go", "redis"}}.Normalize()
	liked := []fingerprint.Fingerprint{
		fingerprint.Fingerprint{Skills: []string{"go", "redis"}}.Normalize(),
		fingerprint.Fingerprint{Skills: []string{"java"}}.Normalize(),
	}

	// best = similarity to the identical liked fp; agg unions both pools'
	// skills, so the aggregate score is strictly lower than best.
	best := Similarity(candidate, liked[0])
	aggScore := Similarity(candidate, Aggregate(liked))
	want := BestMatchWeight*best + AggregateWeight*aggScore

	got := ScoreAgainstLiked(candidate, liked, nil)
	if diff := got - want; diff > 0.0001 || diff < -0.0001 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestScoreAgainstLiked_BoostCapsAtOne(t *testing.T) {
	fp := fullFingerprint()
	liked := []fingerprint.Fingerprint{fullFingerprint()}

	p := profile.InterestProfile{
		FocusSkills:   fp.Skills,
		FocusDomains:  fp.Domains,
		FocusKeywords: fp.Keywords,
	}

	// base = 0.7*1.0 + 0.3*0.75 = 0.925; three full-overlap boosts add
	// 0.36 more, so the uncapped score would be 1.285.
	if got := ScoreAgainstLiked(fp, liked, &p); got != 1.0 {
		t.Fatalf("expected score capped at exactly 1.0, got %v", got)
	}
}

func TestScoreAgainstLiked_ProfileBoostRaisesScore(t *testing.T) {
	candidate := fingerprint.Fingerprint{Skills: []string{"go"}, Domains: []string{"payments"}}.Normalize()
	liked := []fingerprint.Fingerprint{
		fingerprint.Fingerprint{Skills: []string{"go", "java"}}.Normalize(),
	}

	without := ScoreAgainstLiked(candidate, liked, nil)
	p := profile.InterestProfile{FocusDomains: []string{"payments"}}
	with := ScoreAgainstLiked(candidate, liked, &p)

	if with <= without {
		t.Fatalf("expected profile boost to raise score: %v <= %v", with, without)
	}
}
