package scoring

import "jobscout/internal/domain/fingerprint"

// Aggregate merges a collection of fingerprints into one composite taste
// profile: the five set-valued fields are unioned, deduplicated and sorted.
// Scalar fields are not meaningfully aggregable and stay zero, so the
// aggregate's title/family/seniority sub-scores are always 0.0 when scored.
// Empty input yields an empty aggregate.
func Aggregate(fps []fingerprint.Fingerprint) fingerprint.Fingerprint {
	var agg fingerprint.Fingerprint
	for _, fp := range fps {
		agg.Industries = append(agg.Industries, fp.Industries...)
		agg.Domains = append(agg.Domains, fp.Domains...)
		agg.Skills = append(agg.Skills, fp.Skills...)
		agg.Tools = append(agg.Tools, fp.Tools...)
		agg.Keywords = append(agg.Keywords, fp.Keywords...)
	}
	agg.Industries = fingerprint.NormalizeSet(agg.Industries)
	agg.Domains = fingerprint.NormalizeSet(agg.Domains)
	agg.Skills = fingerprint.NormalizeSet(agg.Skills)
	agg.Tools = fingerprint.NormalizeSet(agg.Tools)
	agg.Keywords = fingerprint.NormalizeSet(agg.Keywords)
	return agg
}
