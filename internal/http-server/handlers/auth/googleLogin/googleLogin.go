package googleLogin

import (
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"log/slog"
	"net/http"
)

// StateCookieName holds the OAuth state between the redirect and the callback.
const StateCookieName = "oauth_state"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=AuthURLProvider
type AuthURLProvider interface {
	AuthCodeURL(state string) string
}

func New(log *slog.Logger, provider AuthURLProvider, secure bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.googleLogin.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		state := uuid.NewString()

		http.SetCookie(w, &http.Cookie{
			Name:     StateCookieName,
			Value:    state,
			Path:     "/",
			MaxAge:   300,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})

		log.Debug("redirecting to google")

		http.Redirect(w, r, provider.AuthCodeURL(state), http.StatusFound)
	}
}
