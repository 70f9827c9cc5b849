package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sharedCalendar/internal/auth/google"
	"sharedCalendar/internal/auth/session"
	"sharedCalendar/internal/calendar"
	"sharedCalendar/internal/config"
	"sharedCalendar/internal/http-server/router"
	"sharedCalendar/internal/lib/logger/handlers/slogpretty"
	"sharedCalendar/internal/lib/logger/sl"
	"sharedCalendar/internal/storage/backend"
	"syscall"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting shared calendar", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	store, err := backend.Open(log, cfg.Storage)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}

	allowlist := calendar.NewAllowlist(store, cfg.Auth.AdminEmail)

	changed, err := allowlist.EnsurePrimaryAdmin(context.Background())
	if err != nil {
		log.Error("failed to ensure primary admin", sl.Err(err))
		os.Exit(1)
	}
	if changed {
		log.Info("primary admin added to allowlist", slog.String("email", allowlist.PrimaryAdmin()))
	}

	if cfg.Auth.GoogleClientID == "" || cfg.Auth.GoogleClientSecret == "" {
		log.Warn("google oauth credentials are not configured, sign-in will fail")
	}

	handler := router.New(log, router.Deps{
		Allowlist:     allowlist,
		Events:        calendar.NewEvents(store),
		Sessions:      session.NewManager(cfg.Auth.SessionSecret, cfg.Auth.SessionTTL, cfg.Auth.SecureCookies),
		Provider:      google.NewProvider(cfg.Auth.GoogleClientID, cfg.Auth.GoogleClientSecret, cfg.Auth.CallbackURL),
		SecureCookies: cfg.Auth.SecureCookies,
		StaticDir:     cfg.HTTPServer.StaticDir,
	})

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      handler,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop

	log.Info("application stopping", slog.String("signal", sign.String()))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTPServer.Timeout)
	defer cancel()

	if err = srv.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err = store.Close(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
