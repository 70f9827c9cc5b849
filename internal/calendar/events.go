package calendar

import (
	"context"
	"fmt"
	"sharedCalendar/internal/lib/sanitize"
	"sharedCalendar/internal/models"
	"sharedCalendar/internal/storage"
	"sync"
	"time"
)

type EventStore interface {
	LoadEvents(ctx context.Context) ([]models.Event, error)
	SaveEvents(ctx context.Context, events []models.Event) error
}

// Events owns the events document and enforces the owner-or-admin rule.
type Events struct {
	mu    sync.Mutex
	store EventStore
	now   func() time.Time
}

func NewEvents(store EventStore) *Events {
	return &Events{
		store: store,
		now:   time.Now,
	}
}

func (e *Events) List(ctx context.Context) ([]models.Event, error) {
	const op = "calendar.Events.List"

	events, err := e.store.LoadEvents(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return events, nil
}

// Create stores a new event owned by caller. The id is derived from the wall
// clock in milliseconds and bumped past the newest existing id if needed.
func (e *Events) Create(ctx context.Context, caller models.SessionUser, patch models.EventPatch) (models.Event, error) {
	const op = "calendar.Events.Create"

	e.mu.Lock()
	defer e.mu.Unlock()

	events, err := e.store.LoadEvents(ctx)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	id := e.now().UnixMilli()
	for _, ev := range events {
		if ev.ID >= id {
			id = ev.ID + 1
		}
	}

	event := sanitizeTitle(patch).Apply(models.Event{})
	event.ID = id
	event.CreatedBy = caller.Email
	event.LastUpdatedBy = caller.Email

	events = append(events, event)

	if err = e.store.SaveEvents(ctx, events); err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return event, nil
}

func (e *Events) Update(ctx context.Context, caller models.SessionUser, id int64, patch models.EventPatch) (models.Event, error) {
	const op = "calendar.Events.Update"

	e.mu.Lock()
	defer e.mu.Unlock()

	events, idx, err := e.locate(ctx, caller, id)
	if err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	updated := sanitizeTitle(patch).Apply(events[idx])
	updated.LastUpdatedBy = caller.Email
	events[idx] = updated

	if err = e.store.SaveEvents(ctx, events); err != nil {
		return models.Event{}, fmt.Errorf("%s: %w", op, err)
	}

	return updated, nil
}

func (e *Events) Delete(ctx context.Context, caller models.SessionUser, id int64) error {
	const op = "calendar.Events.Delete"

	e.mu.Lock()
	defer e.mu.Unlock()

	events, idx, err := e.locate(ctx, caller, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	events = append(events[:idx], events[idx+1:]...)

	if err = e.store.SaveEvents(ctx, events); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// locate loads the document and finds id, checking that caller may modify it.
func (e *Events) locate(ctx context.Context, caller models.SessionUser, id int64) ([]models.Event, int, error) {
	events, err := e.store.LoadEvents(ctx)
	if err != nil {
		return nil, -1, err
	}

	for i, ev := range events {
		if ev.ID != id {
			continue
		}
		if !CanModify(caller, ev) {
			return nil, -1, fmt.Errorf("event %d: %w", id, storage.ErrForbidden)
		}
		return events, i, nil
	}

	return nil, -1, fmt.Errorf("event %d: %w", id, storage.ErrNotFound)
}

// CanModify reports whether caller created the event or is an admin.
func CanModify(caller models.SessionUser, event models.Event) bool {
	return caller.IsAdmin || (caller.Email != "" && event.CreatedBy == caller.Email)
}

// sanitizeTitle cleans the title only when the patch carries one, so stored
// fields the caller did not send are left untouched.
func sanitizeTitle(patch models.EventPatch) models.EventPatch {
	if patch.Title != nil {
		title := sanitize.Text(*patch.Title)
		patch.Title = &title
	}
	return patch
}
