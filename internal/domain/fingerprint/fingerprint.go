// Package fingerprint defines the structured representation of a job
// posting produced by the external text-extraction service. Coercion of
// the loosely typed extractor output into a fully defaulted model happens
// here, once, at the boundary; every other package consumes a total type.
package fingerprint

import (
	"encoding/json"
	"sort"
	"strings"
)

type Seniority string

const (
	SeniorityIntern   Seniority = "intern"
	SeniorityEntry    Seniority = "entry"
	SeniorityMid      Seniority = "mid"
	SenioritySenior   Seniority = "senior"
	SeniorityManager  Seniority = "manager"
	SeniorityDirector Seniority = "director"
	SeniorityExec     Seniority = "exec"
	SeniorityUnknown  Seniority = "unknown"
)

type LocationType string

const (
	LocationOnsite  LocationType = "onsite"
	LocationHybrid  LocationType = "hybrid"
	LocationRemote  LocationType = "remote"
	LocationUnknown LocationType = "unknown"
)

type Fingerprint struct {
	RoleTitle    string       `json:"role_title"`
	RoleFamily   string       `json:"role_family"`
	Seniority    Seniority    `json:"seniority"`
	LocationType LocationType `json:"location_type"`
	Industries   []string     `json:"industries"`
	Domains      []string     `json:"domains"`
	Skills       []string     `json:"skills"`
	Tools        []string     `json:"tools"`
	Keywords     []string     `json:"keywords"`
}

// IsEmpty reports whether the fingerprint carries no signal at all.
// Empty fingerprints score 0.0 against everything.
func (f Fingerprint) IsEmpty() bool {
	return f.RoleTitle == "" &&
		f.RoleFamily == "" &&
		(f.Seniority == "" || f.Seniority == SeniorityUnknown) &&
		len(f.Industries) == 0 &&
		len(f.Domains) == 0 &&
		len(f.Skills) == 0 &&
		len(f.Tools) == 0 &&
		len(f.Keywords) == 0
}

// Normalize returns a copy with every field coerced to its defaulted,
// canonical form: set fields lowercased, deduplicated and sorted; enums
// collapsed to unknown when unrecognized.
func (f Fingerprint) Normalize() Fingerprint {
	return Fingerprint{
		RoleTitle:    strings.TrimSpace(f.RoleTitle),
		RoleFamily:   strings.TrimSpace(f.RoleFamily),
		Seniority:    normalizeSeniority(f.Seniority),
		LocationType: normalizeLocationType(f.LocationType),
		Industries:   NormalizeSet(f.Industries),
		Domains:      NormalizeSet(f.Domains),
		Skills:       NormalizeSet(f.Skills),
		Tools:        NormalizeSet(f.Tools),
		Keywords:     NormalizeSet(f.Keywords),
	}
}

// Decode parses the extractor's JSON output. A corrupt or empty blob
// decodes to (zero, false): one bad record must not block scoring the rest.
func Decode(raw []byte) (Fingerprint, bool) {
	if len(raw) == 0 {
		return Fingerprint{}, false
	}
	var f Fingerprint
	if err := json.Unmarshal(raw, &f); err != nil {
		return Fingerprint{}, false
	}
	f = f.Normalize()
	if f.IsEmpty() {
		return Fingerprint{}, false
	}
	return f, true
}

// Encode serializes a fingerprint for storage.
func Encode(f Fingerprint) ([]byte, error) {
	return json.Marshal(f.Normalize())
}

// NormalizeSet lowercases, trims, deduplicates and sorts a set-valued field.
func NormalizeSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.ToLower(strings.TrimSpace(v))
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}

func normalizeSeniority(s Seniority) Seniority {
	v := Seniority(strings.ToLower(strings.TrimSpace(string(s))))
	switch v {
	case SeniorityIntern, SeniorityEntry, SeniorityMid, SenioritySenior,
		SeniorityManager, SeniorityDirector, SeniorityExec:
		return v
	default:
		return SeniorityUnknown
	}
}

func normalizeLocationType(l LocationType) LocationType {
	v := LocationType(strings.ToLower(strings.TrimSpace(string(l))))
	switch v {
	case LocationOnsite, LocationHybrid, LocationRemote:
		return v
	default:
		return LocationUnknown
	}
}
