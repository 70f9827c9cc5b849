package googleLogin

import (
	"net/http"
	"net/http/httptest"
	"sharedCalendar/internal/http-server/handlers/auth/googleLogin/mocks"
	"sharedCalendar/internal/lib/logger/handlers/slogdiscard"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGoogleLoginRedirects(t *testing.T) {
	t.Parallel()

	provider := mocks.NewAuthURLProvider(t)

	var sentState string
	provider.On("AuthCodeURL", mock.AnythingOfType("string")).
		Return(func(state string) string {
			sentState = state
			return "https://accounts.google.com/o/oauth2/auth?state=" + state
		})

	handler := New(slogdiscard.NewDiscardLogger(), provider, true)

	req := httptest.NewRequest(http.MethodGet, "/auth/google", nil)
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "https://accounts.google.com/o/oauth2/auth?state="+sentState, rr.Header().Get("Location"))

	_, err := uuid.Parse(sentState)
	require.NoError(t, err)

	cookies := rr.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, StateCookieName, cookies[0].Name)
	assert.Equal(t, sentState, cookies[0].Value)
	assert.Equal(t, 300, cookies[0].MaxAge)
	assert.True(t, cookies[0].HttpOnly)
	assert.True(t, cookies[0].Secure)
}
