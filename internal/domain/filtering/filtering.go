// Package filtering runs the advisory heuristic pass over a job posting:
// salary extraction, location matching and company allow-listing. It only
// annotates; accept/reject decisions stay with the consumer.
package filtering

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"jobscout/internal/domain/fingerprint"
	"jobscout/internal/domain/profile"
)

// SalaryFloor rejects matched figures that are almost certainly not
// salaries (phone-number fragments, requisition IDs). Known to trade some
// precision for recall; keep the false-positive profile stable.
const SalaryFloor = 30000

var salaryRe = regexp.MustCompile(`\$\s?(\d{2,3})(?:,?\d{3})?\s?(k|K)?`)

type Result struct {
	SalaryValue   int
	SalaryUnknown bool
	SalaryFlagLow bool
	LocationFlag  bool
	ReputableFlag bool
	Notes         []string
}

// ExtractSalary scans raw posting text for $-prefixed figures, normalizes
// k-suffixed values to thousands, drops everything under SalaryFloor and
// reports the maximum survivor — the top of a quoted salary band. Returns
// (0, false) when nothing plausible matches.
func ExtractSalary(text string) (int, bool) {
	if text == "" {
		return 0, false
	}
	matches := salaryRe.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return 0, false
	}

	best := 0
	for _, m := range matches {
		val, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if m[2] != "" {
			val *= 1000
		}
		if val < SalaryFloor {
			continue
		}
		if val > best {
			best = val
		}
	}
	if best == 0 {
		return 0, false
	}
	return best, true
}

// Evaluate runs all sub-checks for one posting. The allowlist is the
// reputable-company list, already lowercased by the caller.
func Evaluate(body, company string, fp fingerprint.Fingerprint, p profile.InterestProfile, allowlist []string) Result {
	var res Result

	salary, ok := ExtractSalary(body)
	res.SalaryValue = salary
	res.SalaryUnknown = !ok

	if res.SalaryUnknown {
		res.Notes = append(res.Notes, "Salary not listed")
	} else if p.SalaryMin > 0 && salary < p.SalaryMin {
		res.SalaryFlagLow = true
		res.Notes = append(res.Notes, fmt.Sprintf("Salary below $%d", p.SalaryMin))
	}

	// Remote postings satisfy any location preference outright.
	if len(p.PreferredLocations) > 0 && fp.LocationType != fingerprint.LocationRemote {
		text := strings.ToLower(body)
		found := false
		for _, loc := range p.PreferredLocations {
			if strings.Contains(text, strings.ToLower(loc)) {
				found = true
				break
			}
		}
		if !found {
			res.LocationFlag = true
			res.Notes = append(res.Notes, "Location not preferred (needs remote)")
		}
	}

	if p.ReputableOnly {
		if len(allowlist) == 0 {
			// An empty allow-list with the check enabled is a
			// misconfiguration; fail toward caution and flag everything.
			res.ReputableFlag = true
			res.Notes = append(res.Notes, "Reputable list empty")
		} else if !containsFold(allowlist, company) {
			res.ReputableFlag = true
			res.Notes = append(res.Notes, "Company not in reputable list")
		}
	}

	return res
}

func containsFold(list []string, v string) bool {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, item := range list {
		if strings.ToLower(strings.TrimSpace(item)) == v {
			return true
		}
	}
	return false
}
