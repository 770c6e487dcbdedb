package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/traintrack/training-api/internal/api"
	"github.com/traintrack/training-api/internal/infrastructure/ai"
	"github.com/traintrack/training-api/internal/infrastructure/config"
	"github.com/traintrack/training-api/internal/infrastructure/db/postgres"
	"github.com/traintrack/training-api/internal/infrastructure/db/redis"
	"github.com/traintrack/training-api/pkg/logger"
)

// @title           TrainTrack API
// @version         1.0
// @description     Login-gated training dashboard: cookie-based JWT auth, user settings, and an AI-assisted training log.
// @BasePath        /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})
	log.Info().Str("env", cfg.Env).Msg("starting training-api")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Connect(ctx, postgres.Config{DSN: cfg.Postgres.DSN})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres connection failed")
	}

	rdb, err := redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	coach := ai.NewOpenAIClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model)

	e := api.NewRouter(db, rdb, coach, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Msg("listening")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = rdb.Close()
}
