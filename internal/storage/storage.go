package storage

import (
	"context"
	"errors"
	"sharedCalendar/internal/models"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrForbidden    = errors.New("forbidden")
	ErrConflict     = errors.New("already exists")
	ErrBadRequest   = errors.New("bad request")
	ErrUnauthorized = errors.New("unauthorized email")
)

// Backend persists the allowlist and event documents. Every Save replaces
// the whole document.
type Backend interface {
	LoadUsers(ctx context.Context) ([]models.AuthorizedUser, error)
	SaveUsers(ctx context.Context, users []models.AuthorizedUser) error
	LoadEvents(ctx context.Context) ([]models.Event, error)
	SaveEvents(ctx context.Context, events []models.Event) error
	Close() error
}
