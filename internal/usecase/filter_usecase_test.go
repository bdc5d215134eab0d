package usecase

import (
	"context"
	"errors"
	"testing"

	"jobscout/internal/domain/profile"
	"jobscout/internal/repository"
)

type mockReputableRepo struct {
	companies []string
	calls     int
	err       error
}

func (m *mockReputableRepo) List(context.Context) ([]string, error) {
	m.calls++
	return m.companies, m.err
}

func (m *mockReputableRepo) Replace(context.Context, []string) error { return m.err }

func TestEvaluateJob_FlagsLowSalaryAndCompany(t *testing.T) {
	job := repository.JobRecord{
		JobID:   "j1",
		Bucket:  repository.BucketInbox,
		Company: "Shady LLC",
		Body:    "Pays up to $90k. Office in Berlin.",
	}
	reputable := &mockReputableRepo{companies: []string{"acme corp"}}
	uc := NewFilterUsecase(
		mockJobRepo{jobs: map[string]repository.JobRecord{"j1": job}},
		mockProfileRepo{p: profile.InterestProfile{SalaryMin: 150000, ReputableOnly: true}},
		reputable,
	)

	res, err := uc.EvaluateJob(context.Background(), "j1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SalaryValue != 90000 || !res.SalaryFlagLow {
		t.Fatalf("expected low-salary flag at 90000, got %+v", res)
	}
	if !res.ReputableFlag {
		t.Fatal("expected reputable flag for an unlisted company")
	}
}

func TestEvaluateJob_SkipsAllowlistWhenCheckDisabled(t *testing.T) {
	job := repository.JobRecord{JobID: "j1", Bucket: repository.BucketInbox, Body: "no pay info"}
	reputable := &mockReputableRepo{}
	uc := NewFilterUsecase(
		mockJobRepo{jobs: map[string]repository.JobRecord{"j1": job}},
		mockProfileRepo{p: profile.Default()},
		reputable,
	)

	res, err := uc.EvaluateJob(context.Background(), "j1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reputable.calls != 0 {
		t.Fatal("allowlist must not be fetched when reputable_only is off")
	}
	if !res.SalaryUnknown {
		t.Fatal("expected salary unknown")
	}
}

func TestEvaluateJob_UnknownJob(t *testing.T) {
	uc := NewFilterUsecase(mockJobRepo{jobs: map[string]repository.JobRecord{}}, mockProfileRepo{}, &mockReputableRepo{})

	if _, err := uc.EvaluateJob(context.Background(), "ghost"); !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}

func TestEvaluateJob_WorksWithoutFingerprint(t *testing.T) {
	job := repository.JobRecord{JobID: "j1", Bucket: repository.BucketInbox, Body: "Salary $120k. Based in Amsterdam."}
	uc := NewFilterUsecase(
		mockJobRepo{jobs: map[string]repository.JobRecord{"j1": job}},
		mockProfileRepo{p: profile.InterestProfile{PreferredLocations: []string{"Berlin"}}},
		&mockReputableRepo{},
	)

	res, err := uc.EvaluateJob(context.Background(), "j1")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !res.LocationFlag {
		t.Fatal("expected location flag: no fingerprint means remote cannot be assumed")
	}
}
