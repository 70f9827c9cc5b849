package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sharedCalendar/internal/lib/logger/sl"
	"sharedCalendar/internal/models"
)

const documentMode fs.FileMode = 0o644

type Storage struct {
	log        *slog.Logger
	usersPath  string
	eventsPath string
}

type eventsDocument struct {
	Events []models.Event `json:"events"`
}

func New(log *slog.Logger, usersPath, eventsPath string) (*Storage, error) {
	const op = "storage.jsonfile.New"

	for _, p := range []string{usersPath, eventsPath} {
		if p == "" {
			return nil, fmt.Errorf("%s: empty document path", op)
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	return &Storage{
		log:        log.With(slog.String("component", "storage/jsonfile")),
		usersPath:  usersPath,
		eventsPath: eventsPath,
	}, nil
}

func (s *Storage) Close() error {
	return nil
}

// LoadUsers returns the allowlist. A missing document is an empty list; a
// malformed one is reset to an empty list on disk.
func (s *Storage) LoadUsers(_ context.Context) ([]models.AuthorizedUser, error) {
	const op = "storage.jsonfile.LoadUsers"

	data, err := os.ReadFile(s.usersPath)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.AuthorizedUser{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var users []models.AuthorizedUser
	if err = json.Unmarshal(data, &users); err != nil {
		s.log.Error("authorized users document is malformed, re-initializing",
			slog.String("path", s.usersPath), sl.Err(err))

		if err = s.write(s.usersPath, []models.AuthorizedUser{}); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return []models.AuthorizedUser{}, nil
	}

	if users == nil {
		users = []models.AuthorizedUser{}
	}

	return users, nil
}

func (s *Storage) SaveUsers(_ context.Context, users []models.AuthorizedUser) error {
	const op = "storage.jsonfile.SaveUsers"

	if users == nil {
		users = []models.AuthorizedUser{}
	}

	if err := s.write(s.usersPath, users); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Storage) LoadEvents(_ context.Context) ([]models.Event, error) {
	const op = "storage.jsonfile.LoadEvents"

	data, err := os.ReadFile(s.eventsPath)
	if errors.Is(err, fs.ErrNotExist) {
		return []models.Event{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var doc eventsDocument
	if err = json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if doc.Events == nil {
		doc.Events = []models.Event{}
	}

	return doc.Events, nil
}

func (s *Storage) SaveEvents(_ context.Context, events []models.Event) error {
	const op = "storage.jsonfile.SaveEvents"

	if events == nil {
		events = []models.Event{}
	}

	if err := s.write(s.eventsPath, eventsDocument{Events: events}); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// write replaces path atomically so readers never observe a half-written
// document.
func (s *Storage) write(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Chmod(documentMode); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
