package store

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"dsa-onboarding/internal/onboarding/models"
	id "dsa-onboarding/pkg/domain"
	"dsa-onboarding/pkg/platform/sentinel"
	"dsa-onboarding/pkg/platform/tx"
)

//go:embed schema.sql
var schema string

const uniqueViolation = "23505"

// PostgresStore persists each application as a JSONB document next to the
// columns used for lookup and the optimistic version.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Migrate creates the applications table if it is missing.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply onboarding schema: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (s *PostgresStore) conn(ctx context.Context) execer {
	if t, ok := tx.From(ctx); ok {
		return t
	}
	return s.db
}

func (s *PostgresStore) Create(ctx context.Context, app *models.Application) error {
	app.Version = 1
	doc, err := json.Marshal(app)
	if err != nil {
		return fmt.Errorf("encode application: %w", err)
	}
	_, err = s.conn(ctx).ExecContext(ctx, `
		INSERT INTO onboarding_applications (id, owner_id, entity_type, status, document, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		app.ID.String(), app.OwnerID.String(), string(app.EntityType), string(app.Status), doc, app.Version, app.CreatedAt, app.UpdatedAt,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert application: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, appID id.ApplicationID) (*models.Application, error) {
	var doc []byte
	err := s.conn(ctx).QueryRowContext(ctx,
		`SELECT document FROM onboarding_applications WHERE id = $1`, appID.String(),
	).Scan(&doc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find application by id: %w", err)
	}
	return decode(doc)
}

func (s *PostgresStore) FindByOwner(ctx context.Context, owner id.UserID) ([]*models.Application, error) {
	rows, err := s.conn(ctx).QueryContext(ctx,
		`SELECT document FROM onboarding_applications WHERE owner_id = $1 ORDER BY created_at`, owner.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("find applications by owner: %w", err)
	}
	defer rows.Close()

	var out []*models.Application
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		app, err := decode(doc)
		if err != nil {
			return nil, err
		}
		out = append(out, app)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate applications: %w", err)
	}
	return out, nil
}

// Update performs a compare-and-swap on version inside one transaction so a
// missing row and a stale version are told apart.
func (s *PostgresStore) Update(ctx context.Context, app *models.Application) error {
	next := *app
	next.Version = app.Version + 1
	doc, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("encode application: %w", err)
	}
	err = tx.Run(ctx, s.db, func(ctx context.Context, t *sql.Tx) error {
		res, err := t.ExecContext(ctx, `
			UPDATE onboarding_applications
			SET entity_type = $2, status = $3, document = $4, version = $5, updated_at = $6
			WHERE id = $1 AND version = $7`,
			app.ID.String(), string(app.EntityType), string(app.Status), doc, next.Version, app.UpdatedAt, app.Version,
		)
		if err != nil {
			return fmt.Errorf("update application: %w", err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("update application: %w", err)
		}
		if n == 1 {
			return nil
		}
		var exists bool
		if err := t.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM onboarding_applications WHERE id = $1)`, app.ID.String(),
		).Scan(&exists); err != nil {
			return fmt.Errorf("check application exists: %w", err)
		}
		if !exists {
			return sentinel.ErrNotFound
		}
		return sentinel.ErrConflict
	})
	if err != nil {
		return err
	}
	app.Version = next.Version
	return nil
}
