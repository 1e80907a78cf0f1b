package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/finance-tracker/backend/api"
	"github.com/finance-tracker/backend/config"
	_ "github.com/finance-tracker/backend/docs"
	"github.com/finance-tracker/backend/logger"
	"github.com/finance-tracker/backend/source"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// @title Finance Tracker API
// @version 1.0
// @description Transactions backend for the Finance Tracker app.
// @BasePath /
func main() {
	cfg, err := config.Load(env("CONFIG_FILE", "config.yaml"), ".env")
	if err != nil {
		log := logger.New("info", false)
		log.Fatal().Err(err).Msg("failed to load config")
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)
	if log.GetLevel() > zerolog.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}

	// TODO: replace the mock source with a Plaid client once its auth and error handling are decided
	transactions, err := source.New(cfg.Transactions.Source)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create transaction source")
	}
	if cfg.Transactions.CacheTTL > 0 {
		transactions = source.NewCached(transactions, cfg.Transactions.CacheTTL)
	}

	handler := api.NewHandler(transactions)
	r := api.NewRouter(handler, log, cfg.CORS.AllowOrigins)

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("source", cfg.Transactions.Source).
			Dur("cache_ttl", cfg.Transactions.CacheTTL).
			Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT)
	<-stop
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
