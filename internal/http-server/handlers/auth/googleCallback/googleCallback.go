package googleCallback

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"log/slog"
	"net/http"
	"sharedCalendar/internal/http-server/handlers/auth/googleLogin"
	"sharedCalendar/internal/lib/logger/sl"
	"sharedCalendar/internal/metrics"
	"sharedCalendar/internal/models"
	"sharedCalendar/internal/storage"
)

const (
	redirectHome         = "/"
	redirectUnauthorized = "/?error=unauthorized"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=IdentityExchanger
type IdentityExchanger interface {
	Exchange(ctx context.Context, code string) (string, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Authenticator
type Authenticator interface {
	Login(ctx context.Context, email string) (models.SessionUser, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionIssuer
type SessionIssuer interface {
	Issue(w http.ResponseWriter, user models.SessionUser) error
}

func New(
	log *slog.Logger,
	provider IdentityExchanger,
	auth Authenticator,
	sessions SessionIssuer,
	secure bool,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.googleCallback.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		fail := func(outcome, target string) {
			metrics.LoginsTotal.WithLabelValues(outcome).Inc()
			http.Redirect(w, r, target, http.StatusFound)
		}

		stateCookie, err := r.Cookie(googleLogin.StateCookieName)
		if err != nil {
			log.Warn("oauth state cookie missing")
			fail("error", redirectHome)
			return
		}

		state := r.URL.Query().Get("state")
		if state == "" || state != stateCookie.Value {
			log.Warn("oauth state mismatch")
			fail("error", redirectHome)
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     googleLogin.StateCookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			Secure:   secure,
			SameSite: http.SameSiteLaxMode,
		})

		if oauthErr := r.URL.Query().Get("error"); oauthErr != "" {
			log.Warn("google returned an error", slog.String("error", oauthErr))
			fail("error", redirectHome)
			return
		}

		code := r.URL.Query().Get("code")
		if code == "" {
			log.Warn("oauth code missing")
			fail("error", redirectHome)
			return
		}

		email, err := provider.Exchange(r.Context(), code)
		if err != nil {
			log.Error("failed to exchange oauth code", sl.Err(err))
			fail("error", redirectHome)
			return
		}

		user, err := auth.Login(r.Context(), email)
		if errors.Is(err, storage.ErrUnauthorized) {
			log.Warn("login attempt from unauthorized email", slog.String("email", email))
			fail("unauthorized", redirectUnauthorized)
			return
		}
		if err != nil {
			log.Error("failed to resolve user", sl.Err(err))
			fail("error", redirectHome)
			return
		}

		if err = sessions.Issue(w, user); err != nil {
			log.Error("failed to issue session", sl.Err(err))
			fail("error", redirectHome)
			return
		}

		log.Info("user logged in", slog.String("email", user.Email), slog.Bool("is_admin", user.IsAdmin))
		metrics.LoginsTotal.WithLabelValues("ok").Inc()

		http.Redirect(w, r, redirectHome, http.StatusFound)
	}
}
