package deleteUser

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"io"
	"log/slog"
	"net/http"
	"sharedCalendar/internal/http-server/middleware/mwsession"
	"sharedCalendar/internal/lib/api/response"
	"sharedCalendar/internal/lib/logger/sl"
	"sharedCalendar/internal/models"
	"sharedCalendar/internal/storage"
)

type Request struct {
	Email string `json:"email" validate:"required"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserRemover
type UserRemover interface {
	Remove(ctx context.Context, caller, email string) ([]models.AuthorizedUser, error)
}

func New(log *slog.Logger, users UserRemover) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.deleteUser.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		caller, ok := mwsession.UserFromContext(r.Context())
		if !ok {
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized"))
			return
		}

		var req Request

		err := render.DecodeJSON(r.Body, &req)
		if err != nil && !errors.Is(err, io.EOF) {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		list, err := users.Remove(r.Context(), caller.Email, req.Email)
		if err != nil {
			log.Error("failed to delete user", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("user not found"))
			case errors.Is(err, storage.ErrForbidden):
				render.Status(r, http.StatusForbidden)
				render.JSON(w, r, response.Error("cannot delete your own account or the primary admin user"))
			case errors.Is(err, storage.ErrBadRequest):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("email is required"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("error deleting user"))
			}
			return
		}

		log.Info("user deleted", slog.String("email", req.Email), slog.String("deleted_by", caller.Email))

		render.JSON(w, r, list)
	}
}
