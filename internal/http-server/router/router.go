package router

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sharedCalendar/internal/auth/resolver"
	"sharedCalendar/internal/auth/session"
	"sharedCalendar/internal/calendar"
	"sharedCalendar/internal/http-server/handlers/admin/addUser"
	"sharedCalendar/internal/http-server/handlers/admin/deleteUser"
	"sharedCalendar/internal/http-server/handlers/admin/listUsers"
	"sharedCalendar/internal/http-server/handlers/admin/setAdmin"
	"sharedCalendar/internal/http-server/handlers/auth/googleCallback"
	"sharedCalendar/internal/http-server/handlers/auth/googleLogin"
	"sharedCalendar/internal/http-server/handlers/auth/logout"
	"sharedCalendar/internal/http-server/handlers/event/createEvent"
	"sharedCalendar/internal/http-server/handlers/event/deleteEvent"
	"sharedCalendar/internal/http-server/handlers/event/listEvents"
	"sharedCalendar/internal/http-server/handlers/event/updateEvent"
	"sharedCalendar/internal/http-server/handlers/user/currentUser"
	"sharedCalendar/internal/http-server/middleware/mwguard"
	"sharedCalendar/internal/http-server/middleware/mwlogger"
	"sharedCalendar/internal/http-server/middleware/mwmetrics"
	"sharedCalendar/internal/http-server/middleware/mwsession"
	"sharedCalendar/internal/lib/api/response"
	"sharedCalendar/internal/metrics"
	"strings"
)

// IdentityProvider is the external sign-in provider.
type IdentityProvider interface {
	googleLogin.AuthURLProvider
	googleCallback.IdentityExchanger
}

type Deps struct {
	Allowlist     *calendar.Allowlist
	Events        *calendar.Events
	Sessions      *session.Manager
	Provider      IdentityProvider
	SecureCookies bool
	StaticDir     string
}

func New(log *slog.Logger, d Deps) http.Handler {
	users := resolver.New(d.Allowlist)
	guard := mwguard.New(log, users, d.Sessions)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(mwmetrics.New())
	router.Use(mwsession.New(log, d.Sessions))

	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, response.OK())
	})
	router.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	router.Get("/auth/google", googleLogin.New(log, d.Provider, d.SecureCookies))
	router.Get("/auth/google/callback", googleCallback.New(log, d.Provider, users, d.Sessions, d.SecureCookies))
	router.Get("/logout", logout.New(log, d.Sessions))

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.URLFormat)

		r.Get("/current_user", currentUser.New(log, users))

		r.Group(func(r chi.Router) {
			r.Use(guard.RequireAuthenticated)

			r.Get("/events", listEvents.New(log, d.Events))
			r.Post("/events", createEvent.New(log, d.Events))
			r.Put("/events/{id}", updateEvent.New(log, d.Events))
			r.Delete("/events/{id}", deleteEvent.New(log, d.Events))
		})

		r.Route("/admin", func(r chi.Router) {
			r.Use(guard.RequireAdmin)

			r.Get("/users", listUsers.New(log, d.Allowlist))
			r.Post("/users", addUser.New(log, d.Allowlist))
			r.Put("/users", setAdmin.New(log, d.Allowlist))
			r.Delete("/users", deleteUser.New(log, d.Allowlist))
		})
	})

	if d.StaticDir != "" {
		router.NotFound(spa(d.StaticDir))
	}

	return router
}

// spa serves files from dir and falls back to index.html so client-side
// routes such as /logout-success resolve.
func spa(dir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(dir))
	index := filepath.Join(dir, "index.html")

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			http.NotFound(w, r)
			return
		}

		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}

		name := filepath.Join(dir, filepath.FromSlash(filepath.Clean("/"+r.URL.Path)))
		if info, err := os.Stat(name); err != nil || info.IsDir() {
			http.ServeFile(w, r, index)
			return
		}

		fs.ServeHTTP(w, r)
	}
}
