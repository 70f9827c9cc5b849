package mwguard

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"sharedCalendar/internal/http-server/middleware/mwsession"
	"sharedCalendar/internal/lib/api/response"
	"sharedCalendar/internal/lib/logger/sl"
	"sharedCalendar/internal/models"
	"sharedCalendar/internal/storage"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Refresher
type Refresher interface {
	Refresh(ctx context.Context, user models.SessionUser) (models.SessionUser, error)
}

type SessionClearer interface {
	Clear(w http.ResponseWriter)
}

// Guard gates handlers on the caller's session. The session identity is
// re-validated against the allowlist on every request.
type Guard struct {
	log       *slog.Logger
	refresher Refresher
	sessions  SessionClearer
}

func New(log *slog.Logger, refresher Refresher, sessions SessionClearer) *Guard {
	return &Guard{
		log:       log.With(slog.String("component", "middleware/guard")),
		refresher: refresher,
		sessions:  sessions,
	}
}

func (g *Guard) RequireAuthenticated(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		log := g.log.With(slog.String("request_id", middleware.GetReqID(r.Context())))

		user, ok := mwsession.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		refreshed, err := g.refresher.Refresh(r.Context(), user)
		if errors.Is(err, storage.ErrUnauthorized) {
			log.Info("session user is no longer authorized", slog.String("email", user.Email))
			g.sessions.Clear(w)
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("your account is no longer authorized"))
			return
		}
		if err != nil {
			log.Error("failed to refresh session user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("internal server error"))
			return
		}

		next.ServeHTTP(w, r.WithContext(mwsession.WithUser(r.Context(), refreshed)))
	}

	return http.HandlerFunc(fn)
}

func (g *Guard) RequireAdmin(next http.Handler) http.Handler {
	adminOnly := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := mwsession.UserFromContext(r.Context())
		if !user.IsAdmin {
			render.Status(r, http.StatusForbidden)
			render.JSON(w, r, response.Error("forbidden"))
			return
		}

		next.ServeHTTP(w, r)
	})

	return g.RequireAuthenticated(adminOnly)
}
