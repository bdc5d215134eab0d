package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"jobscout/internal/database"

	"github.com/jackc/pgx/v5"
)

// Feedback is the per-job side record tracking what happened after the
// posting was surfaced (applied, rejected, interviewing, ...). It lives
// apart from the job row so feedback writes never touch core attributes.
type Feedback struct {
	JobID     string
	Status    string
	Notes     string
	UpdatedAt time.Time
}

type FeedbackRepository interface {
	Upsert(ctx context.Context, fb Feedback) error
	Get(ctx context.Context, jobID string) (Feedback, bool, error)
}

type PostgresFeedbackRepository struct {
	db database.DB
}

func NewPostgresFeedbackRepository(db database.DB) *PostgresFeedbackRepository {
	return &PostgresFeedbackRepository{db: db}
}

func (r *PostgresFeedbackRepository) Upsert(ctx context.Context, fb Feedback) error {
	fb.JobID = strings.TrimSpace(fb.JobID)
	if fb.JobID == "" {
		return errors.New("empty job_id")
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO feedback (job_id, status, notes, updated_at)
		 VALUES ($1, $2, $3, now())
		 ON CONFLICT (job_id) DO UPDATE SET
			status = EXCLUDED.status,
			notes = EXCLUDED.notes,
			updated_at = now()`,
		fb.JobID, fb.Status, fb.Notes,
	)
	return err
}

func (r *PostgresFeedbackRepository) Get(ctx context.Context, jobID string) (Feedback, bool, error) {
	row := r.db.QueryRow(ctx,
		`SELECT job_id, status, notes, updated_at FROM feedback WHERE job_id = $1`, jobID)

	var fb Feedback
	if err := row.Scan(&fb.JobID, &fb.Status, &fb.Notes, &fb.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return Feedback{}, false, nil
		}
		return Feedback{}, false, err
	}
	return fb, true, nil
}
