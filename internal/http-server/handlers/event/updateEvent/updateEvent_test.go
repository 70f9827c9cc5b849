package updateEvent

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sharedCalendar/internal/http-server/handlers/event/updateEvent/mocks"
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

func TestUpdateEventHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	caller := models.SessionUser{Email: "u@x"}
	title := "Renamed"
	patch := models.EventPatch{Title: &title}

	testCases := []struct {
		name           string
		caller         *models.SessionUser
		eventID        string
		requestBody    string
		mockSetup      func(m *mocks.EventUpdater)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			caller:      &caller,
			eventID:     "1735149600000",
			requestBody: `{"title":"Renamed"}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("Update", mock.Anything, caller, int64(1735149600000), patch).
					Return(models.Event{
						ID:            1735149600000,
						Title:         title,
						CreatedBy:     "owner@x",
						LastUpdatedBy: "u@x",
					}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"id":1735149600000,"title":"Renamed","start":"0001-01-01T00:00:00Z",` +
				`"end":"0001-01-01T00:00:00Z","createdBy":"owner@x","lastUpdatedBy":"u@x"}`,
		},
		{
			name:        "Immutable fields are ignored",
			caller:      &caller,
			eventID:     "7",
			requestBody: `{"id":8,"title":"Renamed","createdBy":"mallory@x","lastUpdatedBy":"mallory@x"}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("Update", mock.Anything, caller, int64(7), patch).
					Return(models.Event{ID: 7, Title: title, CreatedBy: "u@x", LastUpdatedBy: "u@x"}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:        "Not found",
			caller:      &caller,
			eventID:     "42",
			requestBody: `{"title":"Renamed"}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("Update", mock.Anything, caller, int64(42), patch).
					Return(models.Event{}, fmt.Errorf("event 42: %w", storage.ErrNotFound))
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"status":"Error","error":"event not found"}`,
		},
		{
			name:        "Not the owner",
			caller:      &caller,
			eventID:     "42",
			requestBody: `{"title":"Renamed"}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("Update", mock.Anything, caller, int64(42), patch).
					Return(models.Event{}, fmt.Errorf("event 42: %w", storage.ErrForbidden))
			},
			expectedStatus: http.StatusForbidden,
			expectedBody:   `{"status":"Error","error":"forbidden: you can only edit events you created or if you are an admin"}`,
		},
		{
			name:           "Invalid id",
			caller:         &caller,
			eventID:        "abc",
			requestBody:    `{"title":"Renamed"}`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"invalid event id format"}`,
		},
		{
			name:    "Empty body merges nothing",
			caller:  &caller,
			eventID: "42",
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("Update", mock.Anything, caller, int64(42), models.EventPatch{}).
					Return(models.Event{ID: 42, Title: "Kept", CreatedBy: "u@x", LastUpdatedBy: "u@x"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody: `{"id":42,"title":"Kept","start":"0001-01-01T00:00:00Z","end":"0001-01-01T00:00:00Z",` +
				`"createdBy":"u@x","lastUpdatedBy":"u@x"}`,
		},
		{
			name:           "Invalid JSON",
			caller:         &caller,
			eventID:        "42",
			requestBody:    `{"title":`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"status":"Error","error":"failed to decode request"}`,
		},
		{
			name:           "No session",
			eventID:        "42",
			requestBody:    `{"title":"Renamed"}`,
			mockSetup:      func(m *mocks.EventUpdater) {},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   `{"status":"Error","error":"unauthorized"}`,
		},
		{
			name:        "Storage failure",
			caller:      &caller,
			eventID:     "42",
			requestBody: `{"title":"Renamed"}`,
			mockSetup: func(m *mocks.EventUpdater) {
				m.On("Update", mock.Anything, caller, int64(42), patch).
					Return(models.Event{}, errors.New("disk full"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"failed to update event"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockUpdater := mocks.NewEventUpdater(t)
			tc.mockSetup(mockUpdater)

			router := chi.NewRouter()
			router.Put("/api/events/{id}", New(logger, mockUpdater))

			req, err := http.NewRequest(http.MethodPut, "/api/events/"+tc.eventID, bytes.NewBufferString(tc.requestBody))
			require.NoError(t, err)

			if tc.caller != nil {
				req = req.WithContext(mwsession.WithUser(req.Context(), *tc.caller))
			}

			rr := httptest.NewRecorder()

			router.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code, "Status code mismatch")

			if tc.expectedBody != "" {
				assert.JSONEq(t, tc.expectedBody, rr.Body.String(), "Response body mismatch")
			}
		})
	}
}
