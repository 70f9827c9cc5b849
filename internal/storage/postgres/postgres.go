package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"sharedCalendar/internal/models"

	_ "github.com/lib/pq"
)

const schema = `
	CREATE TABLE IF NOT EXISTS authorized_users (
		position SERIAL,
		email    TEXT PRIMARY KEY,
		is_admin BOOLEAN NOT NULL DEFAULT FALSE
	);
	CREATE TABLE IF NOT EXISTS events (
		id              BIGINT PRIMARY KEY,
		title           TEXT NOT NULL DEFAULT '',
		start_at        TIMESTAMPTZ NOT NULL,
		end_at          TIMESTAMPTZ NOT NULL,
		created_by      TEXT NOT NULL,
		last_updated_by TEXT NOT NULL
	);`

type Storage struct {
	DB *sql.DB
}

func InitDB(dsn string) (*Storage, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if _, err = db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to prepare schema: %w", err)
	}

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) LoadUsers(ctx context.Context) ([]models.AuthorizedUser, error) {
	query := `
		SELECT email, is_admin
		FROM authorized_users
		ORDER BY position ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get authorized users: %w", err)
	}
	defer rows.Close()

	users := []models.AuthorizedUser{}
	for rows.Next() {
		var user models.AuthorizedUser
		if err = rows.Scan(&user.Email, &user.IsAdmin); err != nil {
			return nil, fmt.Errorf("failed to scan authorized user: %w", err)
		}
		users = append(users, user)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authorized users: %w", err)
	}

	return users, nil
}

func (s *Storage) SaveUsers(ctx context.Context, users []models.AuthorizedUser) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM authorized_users`); err != nil {
		return fmt.Errorf("failed to clear authorized users: %w", err)
	}

	insertQuery := `
		INSERT INTO authorized_users (email, is_admin)
		VALUES ($1, $2)`

	for _, user := range users {
		if _, err = tx.ExecContext(ctx, insertQuery, user.Email, user.IsAdmin); err != nil {
			return fmt.Errorf("failed to insert authorized user: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Storage) LoadEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT id, title, start_at, end_at, created_by, last_updated_by
		FROM events
		ORDER BY id ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.ID,
			&event.Title,
			&event.Start,
			&event.End,
			&event.CreatedBy,
			&event.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}
		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

func (s *Storage) SaveEvents(ctx context.Context, events []models.Event) error {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}

	insertQuery := `
		INSERT INTO events (id, title, start_at, end_at, created_by, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)`

	for _, event := range events {
		_, err = tx.ExecContext(ctx, insertQuery,
			event.ID,
			event.Title,
			event.Start,
			event.End,
			event.CreatedBy,
			event.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("failed to insert event: %w", err)
		}
	}

	return tx.Commit()
}
