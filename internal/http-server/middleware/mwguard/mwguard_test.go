package mwguard

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sharedCalendar/internal/auth/session"
	"sharedCalendar/internal/http-server/middleware/mwguard/mocks"
	"sharedCalendar/internal/http-server/middleware/mwsession"
	"sharedCalendar/internal/lib/logger/handlers/slogdiscard"
	"sharedCalendar/internal/models"
	"sharedCalendar/internal/storage"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestGuards(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()
	user := models.SessionUser{Email: "user@example.com"}

	testCases := []struct {
		name           string
		admin          bool
		caller         *models.SessionUser
		mockSetup      func(mock *mocks.Refresher)
		expectedStatus int
		expectedBody   string
		expectCleared  bool
	}{
		{
			name:           "Anonymous",
			mockSetup:      func(m *mocks.Refresher) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:   "Authenticated",
			caller: &user,
			mockSetup: func(m *mocks.Refresher) {
				m.On("Refresh", mock.Anything, user).Return(user, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "Revoked",
			caller: &user,
			mockSetup: func(m *mocks.Refresher) {
				m.On("Refresh", mock.Anything, user).
					Return(models.SessionUser{}, fmt.Errorf("refresh: %w", storage.ErrUnauthorized))
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"your account is no longer authorized"}`,
			expectCleared:  true,
		},
		{
			name:   "Storage failure",
			caller: &user,
			mockSetup: func(m *mocks.Refresher) {
				m.On("Refresh", mock.Anything, user).Return(models.SessionUser{}, errors.New("disk gone"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"internal server error"}`,
		},
		{
			name:   "Admin route with non-admin",
			admin:  true,
			caller: &user,
			mockSetup: func(m *mocks.Refresher) {
				m.On("Refresh", mock.Anything, user).Return(user, nil)
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"forbidden"}`,
		},
		{
			name:   "Admin route after promotion",
			admin:  true,
			caller: &user,
			mockSetup: func(m *mocks.Refresher) {
				m.On("Refresh", mock.Anything, user).
					Return(models.SessionUser{Email: user.Email, IsAdmin: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Admin route anonymous",
			admin:          true,
			mockSetup:      func(m *mocks.Refresher) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			refresher := mocks.NewRefresher(t)
			tc.mockSetup(refresher)

			guard := New(logger, refresher, session.NewManager("secret", time.Hour, false))

			var seen models.SessionUser
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen, _ = mwsession.UserFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			handler := guard.RequireAuthenticated(next)
			if tc.admin {
				handler = guard.RequireAdmin(next)
			}

			req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
			if tc.caller != nil {
				req = req.WithContext(mwsession.WithUser(req.Context(), *tc.caller))
			}

			rr := httptest.NewRecorder()
			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String())
			}

			if tc.expectedStatus == http.StatusOK {
				assert.Equal(t, user.Email, seen.Email)
			}

			cleared := false
			for _, c := range rr.Result().Cookies() {
				if c.Name == session.CookieName && c.MaxAge < 0 {
					cleared = true
				}
			}
			assert.Equal(t, tc.expectCleared, cleared)
		})
	}
}
