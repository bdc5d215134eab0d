package filtering

import (
	"reflect"
	"testing"

	"jobscout/internal/domain/fingerprint"
	"jobscout/internal/domain/profile"
)

func TestExtractSalary_PicksMaxOfBand(t *testing.T) {
	// "$120,000" parses its leading group as 120 and falls under the
	// floor; "$140k" normalizes to 140000 and wins.
	got, ok := ExtractSalary("Compensation: $120,000 - $140k plus equity")
	if !ok {
		t.Fatalf("expected a salary match")
	}
	if got != 140000 {
		t.Fatalf("expected 140000, got %d", got)
	}
}

func TestExtractSalary_NoCurrencyMarker(t *testing.T) {
	if _, ok := ExtractSalary("apply by id 4521"); ok {
		t.Fatalf("expected no salary match for plain numbers")
	}
}

func TestExtractSalary_FloorRejectsSmallFigures(t *testing.T) {
	if _, ok := ExtractSalary("a $25 gift card for referrals"); ok {
		t.Fatalf("expected figures under the floor to be dropped")
	}
	got, ok := ExtractSalary("pays $95k")
	if !ok || got != 95000 {
		t.Fatalf("expected 95000, got %d ok=%v", got, ok)
	}
}

func TestExtractSalary_EmptyText(t *testing.T) {
	if _, ok := ExtractSalary(""); ok {
		t.Fatalf("expected no match on empty text")
	}
}

func TestEvaluate_SalaryUnknownNote(t *testing.T) {
	res := Evaluate("no numbers here", "Acme", fingerprint.Fingerprint{}, profile.Default(), nil)

	if !res.SalaryUnknown {
		t.Fatalf("expected salary_unknown")
	}
	if res.SalaryFlagLow {
		t.Fatalf("unknown salary must not flag low")
	}
	if !reflect.DeepEqual(res.Notes, []string{"Salary not listed"}) {
		t.Fatalf("unexpected notes: %v", res.Notes)
	}
}

func TestEvaluate_SalaryBelowMinimum(t *testing.T) {
	p := profile.Default()
	p.SalaryMin = 150000

	res := Evaluate("pays $120k", "Acme", fingerprint.Fingerprint{}, p, nil)

	if res.SalaryUnknown {
		t.Fatalf("expected salary to be extracted")
	}
	if res.SalaryValue != 120000 {
		t.Fatalf("expected 120000, got %d", res.SalaryValue)
	}
	if !res.SalaryFlagLow {
		t.Fatalf("expected low-salary flag")
	}
	if !reflect.DeepEqual(res.Notes, []string{"Salary below $150000"}) {
		t.Fatalf("unexpected notes: %v", res.Notes)
	}
}

func TestEvaluate_LocationSkippedForRemote(t *testing.T) {
	p := profile.Default()
	p.PreferredLocations = []string{"berlin"}
	fp := fingerprint.Fingerprint{LocationType: fingerprint.LocationRemote}

	res := Evaluate("pays $90k, office in Tokyo", "Acme", fp, p, nil)
	if res.LocationFlag {
		t.Fatalf("remote posting must skip the location check")
	}
}

func TestEvaluate_LocationFlaggedWhenNoPreferredMatch(t *testing.T) {
	p := profile.Default()
	p.PreferredLocations = []string{"Berlin", "Amsterdam"}
	fp := fingerprint.Fingerprint{LocationType: fingerprint.LocationOnsite}

	res := Evaluate("pays $90k, office in Tokyo", "Acme", fp, p, nil)
	if !res.LocationFlag {
		t.Fatalf("expected location flag")
	}

	res = Evaluate("pays $90k, office in central berlin", "Acme", fp, p, nil)
	if res.LocationFlag {
		t.Fatalf("preferred location substring must clear the flag")
	}
}

func TestEvaluate_LocationSkippedWithoutPreferences(t *testing.T) {
	fp := fingerprint.Fingerprint{LocationType: fingerprint.LocationOnsite}
	res := Evaluate("office in Tokyo", "Acme", fp, profile.Default(), nil)
	if res.LocationFlag {
		t.Fatalf("no preferred locations means no location check")
	}
}

func TestEvaluate_ReputableEmptyListFlagsEveryone(t *testing.T) {
	p := profile.Default()
	p.ReputableOnly = true

	for _, company := range []string{"Acme", "Globex", ""} {
		res := Evaluate("body", company, fingerprint.Fingerprint{}, p, nil)
		if !res.ReputableFlag {
			t.Fatalf("empty allow-list must flag company %q", company)
		}
	}
}

func TestEvaluate_ReputableCaseInsensitive(t *testing.T) {
	p := profile.Default()
	p.ReputableOnly = true
	allowlist := []string{"acme", "globex"}

	res := Evaluate("body", "ACME", fingerprint.Fingerprint{}, p, allowlist)
	if res.ReputableFlag {
		t.Fatalf("allow-list match must be case-insensitive")
	}

	res = Evaluate("body", "Initech", fingerprint.Fingerprint{}, p, allowlist)
	if !res.ReputableFlag {
		t.Fatalf("expected flag for company off the list")
	}
}

func TestEvaluate_NotesAccumulateInCheckOrder(t *testing.T) {
	p := profile.Default()
	p.PreferredLocations = []string{"berlin"}
	p.ReputableOnly = true
	fp := fingerprint.Fingerprint{LocationType: fingerprint.LocationOnsite}

	res := Evaluate("no salary, office in Tokyo", "Acme", fp, p, nil)

	want := []string{"Salary not listed", "Location not preferred (needs remote)", "Reputable list empty"}
	if !reflect.DeepEqual(res.Notes, want) {
		t.Fatalf("expected notes %v, got %v", want, res.Notes)
	}
}
