package deleteEvent

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sharedCalendar/internal/http-server/handlers/event/deleteEvent/mocks"
	"sharedCalendar/internal/http-server/middleware/mwsession"
	"sharedCalendar/internal/lib/logger/handlers/slogdiscard"
	"sharedCalendar/internal/models"
	"sharedCalendar/internal/storage"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	admin := models.SessionUser{Email: "admin@x", IsAdmin: true}
	stranger := models.SessionUser{Email: "v@x"}

	testCases := []struct {
		name           string
		caller         *models.SessionUser
		eventID        string
		mockSetup      func(m *mocks.EventDeleter)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:    "Admin deletes",
			caller:  &admin,
			eventID: "1735149600000",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("Delete", mock.Anything, admin, int64(1735149600000)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name:    "Not the owner",
			caller:  &stranger,
			eventID: "5",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("Delete", mock.Anything, stranger, int64(5)).
					Return(fmt.Errorf("event 5: %w", storage.ErrForbidden))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"forbidden: you can only delete events you created or if you are an admin"}`,
		},
		{
			name:    "Not found",
			caller:  &admin,
			eventID: "5",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("Delete", mock.Anything, admin, int64(5)).
					Return(fmt.Errorf("event 5: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:           "Invalid id",
			caller:         &admin,
			eventID:        "1.5",
			mockSetup:      func(m *mocks.EventDeleter) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:           "No session",
			eventID:        "5",
			mockSetup:      func(m *mocks.EventDeleter) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:    "Storage failure",
			caller:  &admin,
			eventID: "5",
			mockSetup: func(m *mocks.EventDeleter) {
				m.On("Delete", mock.Anything, admin, int64(5)).Return(errors.New("disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to delete event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockDeleter := mocks.NewEventDeleter(t)
			tc.mockSetup(mockDeleter)

			router := chi.NewRouter()
			router.Delete("/api/events/{id}", New(logger, mockDeleter))

			req, err := http.NewRequest(http.MethodDelete, "/api/events/"+tc.eventID, nil)
			require.NoError(t, err)

			if tc.caller != nil {
				req = req.WithContext(mwsession.WithUser(req.Context(), *tc.caller))
			}

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			} else {
				assert.Empty(t, rr.Body.String())
			}
		})
	}
}
