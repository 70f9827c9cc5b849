package addUser

import (
	"context"
	"errors"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"io"
	"log/slog"
	"net/http"
	"sharedCalendar/internal/lib/api/response"
	"sharedCalendar/internal/lib/logger/sl"
	"sharedCalendar/internal/models"
	"sharedCalendar/internal/storage"
)

type Request struct {
	Email   string `json:"email" validate:"required"`
	IsAdmin bool   `json:"isAdmin"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserAdder
type UserAdder interface {
	Add(ctx context.Context, email string, isAdmin bool) ([]models.AuthorizedUser, error)
}

func New(log *slog.Logger, users UserAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.admin.addUser.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

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

		list, err := users.Add(r.Context(), req.Email, req.IsAdmin)
		if err != nil {
			log.Error("failed to add user", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrConflict):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("user with this email already exists"))
			case errors.Is(err, storage.ErrBadRequest):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("email is required"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("error adding user"))
			}
			return
		}

		log.Info("user added", slog.String("email", req.Email), slog.Bool("is_admin", req.IsAdmin))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, list)
	}
}
