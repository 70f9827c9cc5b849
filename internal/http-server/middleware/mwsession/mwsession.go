package mwsession

import (
	"context"
	"log/slog"
	"net/http"
	"sharedCalendar/internal/models"
)

type ctxKey struct{}

type SessionReader interface {
	Read(r *http.Request) (models.SessionUser, error)
}

// New attaches the identity carried by the session cookie, if any. It never
// rejects a request; the guards decide what an anonymous caller may do.
func New(log *slog.Logger, sessions SessionReader) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log := log.With(
			slog.String("component", "middleware/session"),
		)

		log.Info("session middleware enabled")

		fn := func(w http.ResponseWriter, r *http.Request) {
			user, err := sessions.Read(r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		}

		return http.HandlerFunc(fn)
	}
}

func WithUser(ctx context.Context, user models.SessionUser) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

func UserFromContext(ctx context.Context) (models.SessionUser, bool) {
	user, ok := ctx.Value(ctxKey{}).(models.SessionUser)
	return user, ok && user.Email != ""
}
