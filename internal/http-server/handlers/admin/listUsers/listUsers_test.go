package listUsers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sharedCalendar/internal/http-server/handlers/admin/listUsers/mocks"
	"sharedCalendar/internal/lib/logger/handlers/slogdiscard"
	"sharedCalendar/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestListUsersHandler(t *testing.T) {
	t.Parallel()

	logger := slogdiscard.NewDiscardLogger()

	testCases := []struct {
		name           string
		mockSetup      func(m *mocks.UsersLister)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "Success",
			mockSetup: func(m *mocks.UsersLister) {
				m.On("List", mock.Anything).Return([]models.AuthorizedUser{
					{Email: "admin@x", IsAdmin: true},
					{Email: "u@x", IsAdmin: false},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[{"email":"admin@x","isAdmin":true},{"email":"u@x","isAdmin":false}]`,
		},
		{
			name: "Empty allowlist",
			mockSetup: func(m *mocks.UsersLister) {
				m.On("List", mock.Anything).Return(nil, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name: "Storage failure",
			mockSetup: func(m *mocks.UsersLister) {
				m.On("List", mock.Anything).Return(nil, errors.New("disk gone"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   `{"status":"Error","error":"error reading authorized users"}`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockLister := mocks.NewUsersLister(t)
			tc.mockSetup(mockLister)

			handler := New(logger, mockLister)

			req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tc.expectedStatus, rr.Code)
			assert.JSONEq(t, tc.expectedBody, rr.Body.String())
		})
	}
}
