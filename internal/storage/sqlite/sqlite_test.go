package sqlite

import (
	"context"
	"path/filepath"
	"sharedCalendar/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()

	s, err := New(filepath.Join(t.TempDir(), "calendar.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestUsersReplaceWholeDocument(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	empty, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	first := []models.AuthorizedUser{
		{Email: "b@example.com", IsAdmin: false},
		{Email: "a@example.com", IsAdmin: true},
	}
	require.NoError(t, s.SaveUsers(ctx, first))

	got, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	second := []models.AuthorizedUser{{Email: "a@example.com", IsAdmin: true}}
	require.NoError(t, s.SaveUsers(ctx, second))

	got, err = s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, second, got)
}

func TestEventsReplaceWholeDocument(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	start := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	events := []models.Event{
		{ID: 1, Title: "Standup", Start: start, End: start.Add(15 * time.Minute), CreatedBy: "a@example.com", LastUpdatedBy: "a@example.com"},
		{ID: 2, Title: "Review", Start: start.Add(time.Hour), End: start.Add(2 * time.Hour), CreatedBy: "b@example.com", LastUpdatedBy: "a@example.com"},
	}
	require.NoError(t, s.SaveEvents(ctx, events))

	got, err := s.LoadEvents(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Review", got[1].Title)
	assert.True(t, start.Equal(got[0].Start))
	assert.Equal(t, "a@example.com", got[1].LastUpdatedBy)

	require.NoError(t, s.SaveEvents(ctx, nil))

	got, err = s.LoadEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestDuplicateEmailRollsBack(t *testing.T) {
	t.Parallel()

	s := newTestStorage(t)
	ctx := context.Background()

	original := []models.AuthorizedUser{{Email: "a@example.com", IsAdmin: true}}
	require.NoError(t, s.SaveUsers(ctx, original))

	err := s.SaveUsers(ctx, []models.AuthorizedUser{
		{Email: "dup@example.com"},
		{Email: "dup@example.com"},
	})
	require.Error(t, err)

	got, err := s.LoadUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, got)
}
