package mwsession

import (
	"net/http"
	"net/http/httptest"
	"sharedCalendar/internal/auth/session"
	"sharedCalendar/internal/lib/logger/handlers/slogdiscard"
	"sharedCalendar/internal/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttachesSessionUser(t *testing.T) {
	t.Parallel()

	sessions := session.NewManager("secret", time.Hour, false)

	issued := httptest.NewRecorder()
	require.NoError(t, sessions.Issue(issued, models.SessionUser{Email: "user@example.com"}))

	var (
		got models.SessionUser
		ok  bool
	)
	handler := New(slogdiscard.NewDiscardLogger(), sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = UserFromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	for _, c := range issued.Result().Cookies() {
		req.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.True(t, ok)
	assert.Equal(t, "user@example.com", got.Email)
}

func TestAnonymousRequestPassesThrough(t *testing.T) {
	t.Parallel()

	sessions := session.NewManager("secret", time.Hour, false)

	called := false
	handler := New(slogdiscard.NewDiscardLogger(), sessions)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := UserFromContext(r.Context())
		assert.False(t, ok)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, called)
}
