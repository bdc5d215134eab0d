package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"testing"
	"time"

	"jobscout/internal/database"
	"jobscout/internal/domain/fingerprint"
)

// fakeJobDB is an in-memory stand-in for the pgx pool. It understands just
// the statements the job repository issues, keyed on query substrings, and
// models the upsert's created_at/updated_at behavior with a fake clock.
type fakeJobDB struct {
	rows  map[string][]any
	clock time.Time
}

func newFakeJobDB() *fakeJobDB {
	return &fakeJobDB{
		rows:  make(map[string][]any),
		clock: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fakeJobDB) tick() time.Time {
	f.clock = f.clock.Add(time.Second)
	return f.clock
}

func (f *fakeJobDB) Ping(context.Context) error { return nil }
func (f *fakeJobDB) Close() error               { return nil }
func (f *fakeJobDB) SQLDB() *sql.DB             { return nil }

func (f *fakeJobDB) Begin(context.Context) (database.Tx, error) {
	return nil, errors.New("fakeJobDB: transactions not modeled")
}

func (f *fakeJobDB) Exec(_ context.Context, query string, args ...any) (int64, error) {
	if !strings.Contains(query, "INSERT INTO jobs") {
		return 0, fmt.Errorf("fakeJobDB: unexpected exec: %s", query)
	}
	jobID := args[0].(string)
	now := f.tick()
	createdAt := now
	if prev, ok := f.rows[jobID]; ok {
		createdAt = prev[14].(time.Time)
	}
	row := make([]any, 0, 16)
	row = append(row, args...)
	row = append(row, createdAt, now)
	f.rows[jobID] = row
	return 1, nil
}

func (f *fakeJobDB) Query(_ context.Context, query string, args ...any) (database.Rows, error) {
	if !strings.Contains(query, "FROM jobs") {
		return nil, fmt.Errorf("fakeJobDB: unexpected query: %s", query)
	}
	matched := make([][]any, 0, len(f.rows))
	for _, row := range f.rows {
		if strings.Contains(query, "WHERE bucket") && row[2].(string) != args[0].(string) {
			continue
		}
		matched = append(matched, row)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i][15].(time.Time).After(matched[j][15].(time.Time))
	})
	return &fakeJobRows{rows: matched}, nil
}

func (f *fakeJobDB) QueryRow(_ context.Context, query string, args ...any) database.Row {
	if !strings.Contains(query, "WHERE job_id") {
		return fakeJobRow{err: fmt.Errorf("fakeJobDB: unexpected query: %s", query)}
	}
	row, ok := f.rows[args[0].(string)]
	if !ok {
		return fakeJobRow{err: sql.ErrNoRows}
	}
	return fakeJobRow{vals: row}
}

type fakeJobRows struct {
	rows [][]any
	pos  int
}

func (r *fakeJobRows) Close()     {}
func (r *fakeJobRows) Err() error { return nil }

func (r *fakeJobRows) Next() bool {
	if r.pos >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeJobRows) Scan(dest ...any) error {
	return scanInto(r.rows[r.pos-1], dest)
}

type fakeJobRow struct {
	vals []any
	err  error
}

func (r fakeJobRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.vals, dest)
}

func scanInto(vals []any, dest []any) error {
	if len(vals) != len(dest) {
		return fmt.Errorf("fakeJobDB: scan arity %d != %d", len(dest), len(vals))
	}
	for i, v := range vals {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case *bool:
			*d = v.(bool)
		case *[]byte:
			if v == nil {
				*d = nil
				continue
			}
			*d = append([]byte(nil), v.([]byte)...)
		case *time.Time:
			*d = v.(time.Time)
		default:
			return fmt.Errorf("fakeJobDB: unsupported scan dest %T", dest[i])
		}
	}
	return nil
}

func sampleJob(jobID, bucket string) JobRecord {
	fp := fingerprint.Fingerprint{
		RoleTitle: "Backend Engineer",
		Seniority: fingerprint.SenioritySenior,
		Skills:    []string{"Go", "PostgreSQL"},
	}.Normalize()
	return JobRecord{
		JobID:       jobID,
		Path:        "inbox/" + jobID + ".md",
		Bucket:      bucket,
		Liked:       bucket == BucketLiked,
		Company:     "Acme Corp",
		Role:        "Backend Engineer",
		Skills:      []string{"Go", "PostgreSQL"},
		Body:        "We build boring infrastructure.",
		Fingerprint: &fp,
	}
}

func TestJobRepository_UpsertRoundTrip(t *testing.T) {
	repo := NewPostgresJobRepository(newFakeJobDB())
	ctx := context.Background()

	if err := repo.Upsert(ctx, sampleJob("acme-backend", BucketInbox)); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	got, ok, err := repo.Get(ctx, "acme-backend")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Company != "Acme Corp" || got.Bucket != BucketInbox {
		t.Fatalf("record mangled: %+v", got)
	}
	if len(got.Skills) != 2 || got.Skills[0] != "go" {
		t.Fatalf("skills not normalized on write: %v", got.Skills)
	}
	if got.Fingerprint == nil || got.Fingerprint.Seniority != fingerprint.SenioritySenior {
		t.Fatalf("fingerprint did not round-trip: %+v", got.Fingerprint)
	}
	if got.CreatedAt.IsZero() || got.UpdatedAt.IsZero() {
		t.Fatal("timestamps not set")
	}
}

func TestJobRepository_UpsertPreservesCreatedAt(t *testing.T) {
	repo := NewPostgresJobRepository(newFakeJobDB())
	ctx := context.Background()

	job := sampleJob("acme-backend", BucketInbox)
	if err := repo.Upsert(ctx, job); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	first, _, _ := repo.Get(ctx, "acme-backend")

	job.Bucket = BucketLiked
	job.Liked = true
	if err := repo.Upsert(ctx, job); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	second, _, _ := repo.Get(ctx, "acme-backend")

	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("created_at must survive re-upsert: %v != %v", second.CreatedAt, first.CreatedAt)
	}
	if !second.UpdatedAt.After(first.UpdatedAt) {
		t.Fatalf("updated_at must refresh: %v !> %v", second.UpdatedAt, first.UpdatedAt)
	}
	if second.Bucket != BucketLiked {
		t.Fatalf("bucket not updated: %q", second.Bucket)
	}
}

func TestJobRepository_ListFiltersBucket(t *testing.T) {
	repo := NewPostgresJobRepository(newFakeJobDB())
	ctx := context.Background()

	for _, j := range []JobRecord{
		sampleJob("old-inbox", BucketInbox),
		sampleJob("liked-one", BucketLiked),
		sampleJob("new-inbox", BucketInbox),
	} {
		if err := repo.Upsert(ctx, j); err != nil {
			t.Fatalf("upsert %s: %v", j.JobID, err)
		}
	}

	inbox, err := repo.List(ctx, BucketInbox)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(inbox) != 2 {
		t.Fatalf("expected 2 inbox jobs, got %d", len(inbox))
	}
	if inbox[0].JobID != "new-inbox" || inbox[1].JobID != "old-inbox" {
		t.Fatalf("expected most recently updated first, got %s, %s", inbox[0].JobID, inbox[1].JobID)
	}

	all, err := repo.List(ctx, "")
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 jobs without a bucket filter, got %d", len(all))
	}
}

func TestJobRepository_GetMissing(t *testing.T) {
	repo := NewPostgresJobRepository(newFakeJobDB())

	_, ok, err := repo.Get(context.Background(), "ghost")
	if err != nil {
		t.Fatalf("missing key must not be an error: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for a missing key")
	}
}

func TestJobRepository_UpsertRejectsEmptyID(t *testing.T) {
	repo := NewPostgresJobRepository(newFakeJobDB())

	if err := repo.Upsert(context.Background(), JobRecord{JobID: "   "}); err == nil {
		t.Fatal("expected an error for a blank job_id")
	}
}

func TestJobRepository_CorruptStoredFingerprintDegrades(t *testing.T) {
	db := newFakeJobDB()
	repo := NewPostgresJobRepository(db)
	ctx := context.Background()

	if err := repo.Upsert(ctx, sampleJob("acme-backend", BucketInbox)); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	// Simulate a row whose fingerprint column was mangled outside this code path.
	db.rows["acme-backend"][13] = []byte("{not json")

	got, ok, err := repo.Get(ctx, "acme-backend")
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if got.Fingerprint != nil {
		t.Fatal("corrupt stored fingerprint must read back as absent")
	}
}
