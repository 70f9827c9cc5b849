package listUsers

import (
	"context"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"sharedCalendar/internal/lib/api/response"
	"sharedCalendar/internal/lib/logger/sl"
	"sharedCalendar/internal/models"
)

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UsersLister
type UsersLister interface {
	List(ctx context.Context) ([]models.AuthorizedUser, error)
}

func New(log *slog.Logger, users UsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.listUsers.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		list, err := users.List(r.Context())
		if err != nil {
			log.Error("failed to read authorized users", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("error reading authorized users"))
			return
		}

		if list == nil {
			list = []models.AuthorizedUser{}
		}

		render.JSON(w, r, list)
	}
}
