package currentUser

import (
	"context"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"sharedCalendar/internal/http-server/middleware/mwsession"
	"sharedCalendar/internal/lib/logger/sl"
	"sharedCalendar/internal/models"
)

type Response struct {
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=Refresher
type Refresher interface {
	Refresh(ctx context.Context, user models.SessionUser) (models.SessionUser, error)
}

// New reports the caller with an admin flag read from the current allowlist,
// or JSON null when there is no usable session. It never fails.
func New(log *slog.Logger, refresher Refresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.user.currentUser.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		user, ok := mwsession.UserFromContext(r.Context())
		if !ok {
			render.JSON(w, r, nil)
			return
		}

		fresh, err := refresher.Refresh(r.Context(), user)
		if err != nil {
			log.Debug("session user is not resolvable", sl.Err(err))
			render.JSON(w, r, nil)
			return
		}

		render.JSON(w, r, Response{Email: fresh.Email, IsAdmin: fresh.IsAdmin})
	}
}
