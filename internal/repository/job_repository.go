package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"jobscout/internal/database"
	"jobscout/internal/domain/fingerprint"

	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

const (
	BucketInbox = "inbox"
	BucketLiked = "liked"
)

// JobRecord is one stored job posting. JobID is immutable once assigned;
// re-ingesting the same key updates in place. Liked mirrors the bucket for
// query convenience.
type JobRecord struct {
	JobID       string
	Path        string
	Bucket      string
	Liked       bool
	Company     string
	Role        string
	Location    string
	Level       string
	Domain      string
	Skills      []string
	Source      string
	DateSaved   string
	Body        string
	Fingerprint *fingerprint.Fingerprint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type JobRepository interface {
	Upsert(ctx context.Context, job JobRecord) error
	List(ctx context.Context, bucket string) ([]JobRecord, error)
	Get(ctx context.Context, jobID string) (JobRecord, bool, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

const jobColumns = `job_id, path, bucket, liked, company, role, location, level, domain,
	skills, source, date_saved, body, fingerprint, created_at, updated_at`

// Upsert inserts or replaces the record keyed by job_id. created_at is set
// on first insert only; updated_at refreshes on every call.
func (r *PostgresJobRepository) Upsert(ctx context.Context, job JobRecord) error {
	job.JobID = strings.TrimSpace(job.JobID)
	if job.JobID == "" {
		return errors.New("empty job_id")
	}
	if job.Bucket == "" {
		job.Bucket = BucketInbox
	}

	skillsJSON, err := json.Marshal(fingerprint.NormalizeSet(job.Skills))
	if err != nil {
		return err
	}

	var fpJSON []byte
	if job.Fingerprint != nil {
		fpJSON, err = fingerprint.Encode(*job.Fingerprint)
		if err != nil {
			return err
		}
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO jobs (
			job_id, path, bucket, liked, company, role, location, level, domain,
			skills, source, date_saved, body, fingerprint, created_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,now(),now())
		ON CONFLICT (job_id) DO UPDATE SET
			path = EXCLUDED.path,
			bucket = EXCLUDED.bucket,
			liked = EXCLUDED.liked,
			company = EXCLUDED.company,
			role = EXCLUDED.role,
			location = EXCLUDED.location,
			level = EXCLUDED.level,
			domain = EXCLUDED.domain,
			skills = EXCLUDED.skills,
			source = EXCLUDED.source,
			date_saved = EXCLUDED.date_saved,
			body = EXCLUDED.body,
			fingerprint = EXCLUDED.fingerprint,
			updated_at = now()`,
		job.JobID, job.Path, job.Bucket, job.Liked,
		job.Company, job.Role, job.Location, job.Level, job.Domain,
		skillsJSON, job.Source, job.DateSaved, job.Body, fpJSON,
	)
	return err
}

// List returns all records, optionally narrowed to one bucket, most
// recently updated first.
func (r *PostgresJobRepository) List(ctx context.Context, bucket string) ([]JobRecord, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY updated_at DESC`
	args := []any{}
	if bucket != "" {
		query = `SELECT ` + jobColumns + ` FROM jobs WHERE bucket = $1 ORDER BY updated_at DESC`
		args = append(args, bucket)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]JobRecord, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// Get is a point lookup; a missing key comes back as ok=false, not an error.
func (r *PostgresJobRepository) Get(ctx context.Context, jobID string) (JobRecord, bool, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE job_id = $1`, jobID)
	job, err := scanJob(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return JobRecord{}, false, nil
		}
		return JobRecord{}, false, err
	}
	return job, true, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanJob(s scanner) (JobRecord, error) {
	var (
		job        JobRecord
		skillsJSON []byte
		fpJSON     []byte
	)
	if err := s.Scan(
		&job.JobID, &job.Path, &job.Bucket, &job.Liked,
		&job.Company, &job.Role, &job.Location, &job.Level, &job.Domain,
		&skillsJSON, &job.Source, &job.DateSaved, &job.Body, &fpJSON,
		&job.CreatedAt, &job.UpdatedAt,
	); err != nil {
		return JobRecord{}, err
	}

	if len(skillsJSON) > 0 {
		// A corrupt skills blob degrades to no skills, never a failure.
		_ = json.Unmarshal(skillsJSON, &job.Skills)
	}
	if fp, ok := fingerprint.Decode(fpJSON); ok {
		job.Fingerprint = &fp
	}
	return job, nil
}
