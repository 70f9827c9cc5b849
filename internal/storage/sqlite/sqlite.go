package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sharedCalendar/internal/models"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
	CREATE TABLE IF NOT EXISTS authorized_users (
		position INTEGER PRIMARY KEY AUTOINCREMENT,
		email    TEXT NOT NULL UNIQUE,
		is_admin INTEGER NOT NULL DEFAULT 0
	);
	CREATE TABLE IF NOT EXISTS events (
		id              INTEGER PRIMARY KEY,
		title           TEXT NOT NULL DEFAULT '',
		start_at        TEXT NOT NULL,
		end_at          TEXT NOT NULL,
		created_by      TEXT NOT NULL,
		last_updated_by TEXT NOT NULL
	);`

type Storage struct {
	db *sql.DB
}

// New opens (or creates) the SQLite database at dsn.
func New(dsn string) (*Storage, error) {
	const op = "storage.sqlite.New"

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	// sqlite3 allows a single writer; keep one connection so whole-document
	// replacements never hit SQLITE_BUSY.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{db: db}, nil
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func (s *Storage) LoadUsers(ctx context.Context) ([]models.AuthorizedUser, error) {
	const op = "storage.sqlite.LoadUsers"

	rows, err := s.db.QueryContext(ctx, `SELECT email, is_admin FROM authorized_users ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	users := []models.AuthorizedUser{}
	for rows.Next() {
		var u models.AuthorizedUser
		if err := rows.Scan(&u.Email, &u.IsAdmin); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return users, nil
}

func (s *Storage) SaveUsers(ctx context.Context, users []models.AuthorizedUser) error {
	const op = "storage.sqlite.SaveUsers"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM authorized_users`); err != nil {
		return fmt.Errorf("%s: clear: %w", op, err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO authorized_users (email, is_admin) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	for _, u := range users {
		if _, err = stmt.ExecContext(ctx, u.Email, u.IsAdmin); err != nil {
			return fmt.Errorf("%s: insert %s: %w", op, u.Email, err)
		}
	}

	return tx.Commit()
}

func (s *Storage) LoadEvents(ctx context.Context) ([]models.Event, error) {
	const op = "storage.sqlite.LoadEvents"

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, start_at, end_at, created_by, last_updated_by
		FROM events
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var (
			e          models.Event
			start, end string
		)
		if err := rows.Scan(&e.ID, &e.Title, &start, &end, &e.CreatedBy, &e.LastUpdatedBy); err != nil {
			return nil, fmt.Errorf("%s: scan: %w", op, err)
		}
		if e.Start, err = time.Parse(time.RFC3339Nano, start); err != nil {
			return nil, fmt.Errorf("%s: event %d start: %w", op, e.ID, err)
		}
		if e.End, err = time.Parse(time.RFC3339Nano, end); err != nil {
			return nil, fmt.Errorf("%s: event %d end: %w", op, e.ID, err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

func (s *Storage) SaveEvents(ctx context.Context, events []models.Event) error {
	const op = "storage.sqlite.SaveEvents"

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%s: begin: %w", op, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return fmt.Errorf("%s: clear: %w", op, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO events (id, title, start_at, end_at, created_by, last_updated_by)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("%s: prepare: %w", op, err)
	}
	defer stmt.Close()

	for _, e := range events {
		_, err = stmt.ExecContext(ctx,
			e.ID,
			e.Title,
			e.Start.Format(time.RFC3339Nano),
			e.End.Format(time.RFC3339Nano),
			e.CreatedBy,
			e.LastUpdatedBy,
		)
		if err != nil {
			return fmt.Errorf("%s: insert %d: %w", op, e.ID, err)
		}
	}

	return tx.Commit()
}
