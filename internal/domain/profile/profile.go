// Package profile defines the user-level interest profile: focus sets that
// boost ranking scores plus the preferences consumed by filter evaluation.
// The profile is a per-workspace singleton, persisted as one document and
// overwritten wholesale on save.
package profile

import "strings"

type InterestProfile struct {
	FocusSkills        []string `json:"focus_skills"`
	FocusDomains       []string `json:"focus_domains"`
	FocusKeywords      []string `json:"focus_keywords"`
	PreferredLocations []string `json:"preferred_locations"`
	PreferredLevels    []string `json:"preferred_levels"`
	RemotePreference   string   `json:"remote_preference"`
	SalaryMin          int      `json:"salary_min"`
	ReputableOnly      bool     `json:"reputable_only"`
	AlertSources       []string `json:"alert_sources"`
	AlertEmailTo       string   `json:"alert_email_to"`
	AlertEmailEnabled  bool     `json:"alert_email_enabled"`
}

// Default returns the profile used before the user ever saves one.
func Default() InterestProfile {
	return InterestProfile{RemotePreference: "any"}
}

// Normalize trims entries and drops empties from the list fields so the
// rest of the engine never sees blank focus values.
func (p InterestProfile) Normalize() InterestProfile {
	p.FocusSkills = cleanList(p.FocusSkills)
	p.FocusDomains = cleanList(p.FocusDomains)
	p.FocusKeywords = cleanList(p.FocusKeywords)
	p.PreferredLocations = cleanList(p.PreferredLocations)
	p.PreferredLevels = cleanList(p.PreferredLevels)
	p.AlertSources = cleanList(p.AlertSources)
	if p.RemotePreference == "" {
		p.RemotePreference = "any"
	}
	return p
}

func cleanList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
