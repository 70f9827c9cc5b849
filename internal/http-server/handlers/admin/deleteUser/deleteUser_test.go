package deleteUser

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sharedCalendar/internal/http-server/handlers/admin/deleteUser/mocks"
	"sharedCalendar/internal/http-server/middleware/mwsession"
	"sharedCalendar/internal/lib/logger/handlers/slogdiscard"
	"sharedCalendar/internal/models"
	"sharedCalendar/internal/storage"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteUserHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	admin := models.SessionUser{Email: "admin@x", IsAdmin: true}

	testCases := []struct {
		name           string
		caller         *models.SessionUser
		requestBody    string
		mockSetup      func(m *mocks.UserRemover)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			caller:      &admin,
			requestBody: `{"email":"u@x"}`,
			mockSetup: func(m *mocks.UserRemover) {
				m.On("Remove", mock.Anything, "admin@x", "u@x").
					Return([]models.AuthorizedUser{{Email: "admin@x", IsAdmin: true}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"email":"admin@x","isAdmin":true}]`,
		},
		{
			name:        "Self delete",
			caller:      &admin,
			requestBody: `{"email":"admin@x"}`,
			mockSetup: func(m *mocks.UserRemover) {
				m.On("Remove", mock.Anything, "admin@x", "admin@x").
					Return(nil, fmt.Errorf("remove: %w", storage.ErrForbidden))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"cannot delete your own account or the primary admin user"}`,
		},
		{
			name:        "Unknown user",
			caller:      &admin,
			requestBody: `{"email":"ghost@x"}`,
			mockSetup: func(m *mocks.UserRemover) {
				m.On("Remove", mock.Anything, "admin@x", "ghost@x").
					Return(nil, fmt.Errorf("remove: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"user not found"}`,
		},
		{
			name:           "Missing email",
			caller:         &admin,
			requestBody:    `{}`,
			mockSetup:      func(m *mocks.UserRemover) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"field Email is a required field"}`,
		},
		{
			name:           "No session",
			requestBody:    `{"email":"u@x"}`,
			mockSetup:      func(m *mocks.UserRemover) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:        "Storage failure",
			caller:      &admin,
			requestBody: `{"email":"u@x"}`,
			mockSetup: func(m *mocks.UserRemover) {
				m.On("Remove", mock.Anything, "admin@x", "u@x").Return(nil, errors.New("disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"error deleting user"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockRemover := mocks.NewUserRemover(t)
			tc.mockSetup(mockRemover)

			handler := New(logger, mockRemover)

			req, err := http.NewRequest(http.MethodDelete, "/api/admin/users", bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.caller != nil {
				req = req.WithContext(mwsession.WithUser(req.Context(), *tc.caller))
			}

			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")
			assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
		})
	}
}
