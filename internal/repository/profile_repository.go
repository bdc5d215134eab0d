package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"jobscout/internal/database"
	"jobscout/internal/domain/profile"

	"github.com/jackc/pgx/v5"
)

// ProfileRepository stores the workspace's single interest profile as one
// JSONB document. Save overwrites the whole document; there is no partial
// update.
type ProfileRepository interface {
	Get(ctx context.Context) (profile.InterestProfile, error)
	Save(ctx context.Context, p profile.InterestProfile) error
}

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

// Get returns the stored profile, or defaults when none was ever saved.
// A corrupt stored document also degrades to defaults.
func (r *PostgresProfileRepository) Get(ctx context.Context) (profile.InterestProfile, error) {
	row := r.db.QueryRow(ctx, `SELECT document FROM interest_profile WHERE id = 1`)

	var doc []byte
	if err := row.Scan(&doc); err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows) {
			return profile.Default(), nil
		}
		return profile.InterestProfile{}, err
	}

	var p profile.InterestProfile
	if err := json.Unmarshal(doc, &p); err != nil {
		return profile.Default(), nil
	}
	return p.Normalize(), nil
}

func (r *PostgresProfileRepository) Save(ctx context.Context, p profile.InterestProfile) error {
	doc, err := json.Marshal(p.Normalize())
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx,
		`INSERT INTO interest_profile (id, document, updated_at)
		 VALUES (1, $1, now())
		 ON CONFLICT (id) DO UPDATE SET
			document = EXCLUDED.document,
			updated_at = now()`,
		doc,
	)
	return err
}
