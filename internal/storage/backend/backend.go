package backend

import (
	"fmt"
	"log/slog"
	"sharedCalendar/internal/config"
	"sharedCalendar/internal/storage"
	"sharedCalendar/internal/storage/jsonfile"
	"sharedCalendar/internal/storage/postgres"
	"sharedCalendar/internal/storage/sqlite"
)

// Open returns the storage backend selected by cfg.Driver.
func Open(log *slog.Logger, cfg config.Storage) (storage.Backend, error) {
	const op = "storage.backend.Open"

	var (
		b   storage.Backend
		err error
	)

	switch cfg.Driver {
	case config.DriverFile:
		b, err = jsonfile.New(log, cfg.UsersPath, cfg.EventsPath)
	case config.DriverPostgres:
		b, err = postgres.InitDB(cfg.DSN)
	case config.DriverSQLite:
		b, err = sqlite.New(cfg.DSN)
	default:
		return nil, fmt.Errorf("%s: unknown storage driver %q", op, cfg.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return b, nil
}
