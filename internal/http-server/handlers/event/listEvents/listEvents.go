package listEvents

import (
	"bytes"
	"context"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"log/slog"
	"net/http"
	"sharedCalendar/internal/lib/api/response"
	"sharedCalendar/internal/lib/ics"
	"sharedCalendar/internal/lib/logger/sl"
	"sharedCalendar/internal/models"
	"time"
)

const formatICS = "ics"

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsLister
type EventsLister interface {
	List(ctx context.Context) ([]models.Event, error)
}

// New returns every event. A request for /api/events.ics gets the same list
// as an iCalendar feed.
func New(log *slog.Logger, events EventsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.listEvents.New"

		log := log.With(
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		list, err := events.List(r.Context())
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		log.Info("events retrieved successfully", slog.Int("count", len(list)))

		if format, _ := r.Context().Value(middleware.URLFormatCtxKey).(string); format == formatICS {
			var buf bytes.Buffer
			if err = ics.Encode(&buf, list, time.Now()); err != nil {
				log.Error("failed to encode calendar feed", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to get events"))
				return
			}

			w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
			_, _ = w.Write(buf.Bytes())
			return
		}

		if list == nil {
			list = []models.Event{}
		}

		render.JSON(w, r, list)
	}
}
