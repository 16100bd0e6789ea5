package reminders

import (
	"context"
	"errors"
	"fmt"

	"github.com/bwise1/georemind/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS reminders (
    id          TEXT PRIMARY KEY,
    user_id     UUID NOT NULL,
    title       TEXT,
    description TEXT,
    location    TEXT,
    latitude    DOUBLE PRECISION,
    longitude   DOUBLE PRECISION,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_reminders_user_id ON reminders (user_id)`,
}

// PostgresStore persists reminders in a reminders table keyed by id.
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema applies the table DDL idempotently.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("applying reminders schema: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) GetAll(ctx context.Context, userID uuid.UUID) ([]model.Reminder, error) {
	stmt := `
        SELECT id, user_id, title, description, location, latitude, longitude, created_at, updated_at
        FROM reminders
        WHERE user_id = $1
        ORDER BY created_at
    `
	rows, err := s.pool.Query(ctx, stmt, userID)
	if err != nil {
		return nil, fmt.Errorf("getting reminders: %w", err)
	}
	defer rows.Close()

	reminders := []model.Reminder{}
	for rows.Next() {
		var reminder model.Reminder
		err := rows.Scan(
			&reminder.ID,
			&reminder.UserID,
			&reminder.Title,
			&reminder.Description,
			&reminder.Location,
			&reminder.Latitude,
			&reminder.Longitude,
			&reminder.CreatedAt,
			&reminder.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning reminder: %w", err)
		}
		reminders = append(reminders, reminder)
	}
	return reminders, rows.Err()
}

func (s *PostgresStore) GetByID(ctx context.Context, id string) (model.Reminder, error) {
	var reminder model.Reminder
	stmt := `
        SELECT id, user_id, title, description, location, latitude, longitude, created_at, updated_at
        FROM reminders
        WHERE id = $1
    `
	err := s.pool.QueryRow(ctx, stmt, id).Scan(
		&reminder.ID,
		&reminder.UserID,
		&reminder.Title,
		&reminder.Description,
		&reminder.Location,
		&reminder.Latitude,
		&reminder.Longitude,
		&reminder.CreatedAt,
		&reminder.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Reminder{}, ErrNotFound
		}
		return model.Reminder{}, fmt.Errorf("getting reminder: %w", err)
	}
	return reminder, nil
}

func (s *PostgresStore) Save(ctx context.Context, reminder model.Reminder) error {
	stmt := `
        INSERT INTO reminders (id, user_id, title, description, location, latitude, longitude)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (id) DO UPDATE
        SET user_id     = EXCLUDED.user_id,
            title       = EXCLUDED.title,
            description = EXCLUDED.description,
            location    = EXCLUDED.location,
            latitude    = EXCLUDED.latitude,
            longitude   = EXCLUDED.longitude,
            updated_at  = NOW()
    `
	_, err := s.pool.Exec(ctx, stmt,
		reminder.ID,
		reminder.UserID,
		reminder.Title,
		reminder.Description,
		reminder.Location,
		reminder.Latitude,
		reminder.Longitude,
	)
	if err != nil {
		return fmt.Errorf("saving reminder: %w", err)
	}
	return nil
}

func (s *PostgresStore) Update(ctx context.Context, reminder model.Reminder) error {
	stmt := `
        UPDATE reminders
        SET title       = $2,
            description = $3,
            location    = $4,
            latitude    = $5,
            longitude   = $6,
            updated_at  = NOW()
        WHERE id = $1
    `
	result, err := s.pool.Exec(ctx, stmt,
		reminder.ID,
		reminder.Title,
		reminder.Description,
		reminder.Location,
		reminder.Latitude,
		reminder.Longitude,
	)
	if err != nil {
		return fmt.Errorf("updating reminder: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) DeleteByID(ctx context.Context, id string) error {
	stmt := `DELETE FROM reminders WHERE id = $1`

	if _, err := s.pool.Exec(ctx, stmt, id); err != nil {
		return fmt.Errorf("deleting reminder: %w", err)
	}
	return nil
}

func (s *PostgresStore) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	stmt := `DELETE FROM reminders WHERE user_id = $1`

	if _, err := s.pool.Exec(ctx, stmt, userID); err != nil {
		return fmt.Errorf("deleting reminders: %w", err)
	}
	return nil
}
