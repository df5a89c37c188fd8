// Command api runs the FitTrack REST API server.
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/fittrack-app/fittrack/internal/app"
	"github.com/fittrack-app/fittrack/internal/app/auth"
	"github.com/fittrack-app/fittrack/internal/app/httpapi"
	"github.com/fittrack-app/fittrack/internal/app/storage/postgres"
	"github.com/fittrack-app/fittrack/internal/config"
	"github.com/fittrack-app/fittrack/internal/logging"
	"github.com/fittrack-app/fittrack/internal/middleware"
	"github.com/fittrack-app/fittrack/internal/platform/database"
	"github.com/fittrack-app/fittrack/internal/platform/migrations"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file")
	flag.Parse()

	// Missing .env is fine; env vars may come from the environment.
	_ = godotenv.Load()

	log := logging.New("fittrack-api")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Error("load config")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var stores app.Stores
	if cfg.Database.DSN != "" {
		db, err := database.Open(ctx, cfg.Database.DSN)
		if err != nil {
			log.WithError(err).Error("connect database")
			os.Exit(1)
		}
		defer db.Close()

		if err := migrations.Apply(ctx, db); err != nil {
			log.WithError(err).Error("apply migrations")
			os.Exit(1)
		}

		pg := postgres.New(db)
		stores = app.Stores{
			Users:        pg,
			Profiles:     pg,
			Exercises:    pg,
			Workouts:     pg,
			Goals:        pg,
			Nutrition:    pg,
			Measurements: pg,
			Dashboards:   pg,
		}
		log.Info("using postgres storage")
	} else {
		log.Warn("no database configured, using in-memory storage")
	}

	tokens := auth.NewManager(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.Audience)
	application := app.New(stores, tokens, log)

	handler := httpapi.New(application, log)
	router := handler.Router()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	router.Use(middleware.Metrics)

	var chain http.Handler = router
	chain = middleware.Auth(tokens, log)(chain)
	chain = middleware.CORS(cfg.CORS.AllowedOrigins)(chain)
	chain = middleware.Trace(log)(chain)

	server := &http.Server{
		Addr:              cfg.Listen,
		Handler:           chain,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.WithField("addr", cfg.Listen).Info("server listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("server failed")
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("graceful shutdown failed")
	}
	log.Info("server stopped")
}
