package logout

import (
	"github.com/go-chi/chi/v5/middleware"
	"log/slog"
	"net/http"
	"sharedCalendar/internal/http-server/middleware/mwsession"
)

const redirectTarget = "/logout-success"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SessionClearer
type SessionClearer interface {
	Revoke(r *http.Request)
	Clear(w http.ResponseWriter)
}

// New ends the session on both sides so a copied cookie cannot be replayed.
// It succeeds for anonymous callers as well.
func New(log *slog.Logger, sessions SessionClearer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.logout.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if user, ok := mwsession.UserFromContext(r.Context()); ok {
			log.Info("user logged out", slog.String("email", user.Email))
		}

		sessions.Revoke(r)
		sessions.Clear(w)

		http.Redirect(w, r, redirectTarget, http.StatusFound)
	}
}
