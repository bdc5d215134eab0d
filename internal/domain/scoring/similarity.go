// Package scoring implements the fingerprint similarity function, liked-pool
// aggregation and the ranking algorithms on top of them. Everything here is
// a pure function over in-memory inputs.
package scoring

import (
	"math"
	"strings"

	"jobscout/internal/domain/fingerprint"
)

// Sub-score weights. They sum to 1.0 so that identical fingerprints score
// exactly 1.0. Skills dominate because they are the most discriminating
// signal for role fit; seniority is a coarse tie-breaker with only eight
// possible values. Tunable, but changing them is a behavior change.
const (
	WeightSkills     = 0.30
	WeightTools      = 0.15
	WeightDomains    = 0.12
	WeightKeywords   = 0.10
	WeightIndustries = 0.08
	WeightRoleTitle  = 0.12
	WeightRoleFamily = 0.08
	WeightSeniority  = 0.05
)

// Similarity scores two fingerprints into [0,1]. An empty fingerprint on
// either side yields exactly 0.0. The result is rounded to 4 decimals.
func Similarity(a, b fingerprint.Fingerprint) float64 {
	if a.IsEmpty() || b.IsEmpty() {
		return 0.0
	}

	score := WeightSkills*Jaccard(a.Skills, b.Skills) +
		WeightTools*Jaccard(a.Tools, b.Tools) +
		WeightDomains*Jaccard(a.Domains, b.Domains) +
		WeightKeywords*Jaccard(a.Keywords, b.Keywords) +
		WeightIndustries*Jaccard(a.Industries, b.Industries) +
		WeightRoleTitle*tokenOverlap(a.RoleTitle, b.RoleTitle) +
		WeightRoleFamily*tokenOverlap(a.RoleFamily, b.RoleFamily) +
		WeightSeniority*seniorityMatch(a.Seniority, b.Seniority)

	return round4(score)
}

// Jaccard computes |A∩B| / |A∪B| over two string sets. An empty set on
// either side yields 0.0, not 1.0: missing data is penalized rather than
// treated as a perfect match, and the union is never zero-sized.
func Jaccard(a, b []string) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	setA := make(map[string]struct{}, len(a))
	for _, v := range a {
		setA[v] = struct{}{}
	}

	union := len(setA)
	inter := 0
	seenB := make(map[string]struct{}, len(b))
	for _, v := range b {
		if _, dup := seenB[v]; dup {
			continue
		}
		seenB[v] = struct{}{}
		if _, ok := setA[v]; ok {
			inter++
		} else {
			union++
		}
	}

	return float64(inter) / float64(union)
}

// tokenOverlap compares two free-text fields as Jaccard over their token
// sets, tokenizing on whitespace and "/" and lowercasing.
func tokenOverlap(a, b string) float64 {
	if a == "" || b == "" {
		return 0.0
	}
	return Jaccard(tokenize(a), tokenize(b))
}

func tokenize(s string) []string {
	s = strings.ToLower(strings.ReplaceAll(s, "/", " "))
	return strings.Fields(s)
}

// seniorityMatch is a binary indicator over the normalized enum. Two
// unknowns count as a match: unknown is a real extractor output, not a
// sentinel for absent data.
func seniorityMatch(a, b fingerprint.Seniority) float64 {
	if a == "" || b == "" {
		return 0.0
	}
	if a == b {
		return 1.0
	}
	return 0.0
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
