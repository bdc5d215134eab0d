package repository

import (
	"context"
	"strings"

	"jobscout/internal/database"
)

// ReputableRepository holds the company allow-list consumed by the
// reputable-company filter check. Replace swaps the whole list atomically.
type ReputableRepository interface {
	List(ctx context.Context) ([]string, error)
	Replace(ctx context.Context, names []string) error
}

type PostgresReputableRepository struct {
	db database.DB
}

func NewPostgresReputableRepository(db database.DB) *PostgresReputableRepository {
	return &PostgresReputableRepository{db: db}
}

func (r *PostgresReputableRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT name FROM reputable_companies ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out = append(out, name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresReputableRepository) Replace(ctx context.Context, names []string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM reputable_companies`); err != nil {
		return err
	}

	seen := map[string]struct{}{}
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if _, err := tx.Exec(ctx, `INSERT INTO reputable_companies (name) VALUES ($1)`, name); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
