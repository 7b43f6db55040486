package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/martialverse/booking-api/internal/api"
	mongodb "github.com/martialverse/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/martialverse/booking-api/internal/infrastructure/db/redis"
	"github.com/martialverse/booking-api/internal/pkg/config"
	"github.com/martialverse/booking-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

// @title        Martial Verse Booking API
// @version      1.0
// @description  Class booking platform: users, classes, carts, reviews, payments.
// @BasePath     /
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	// Load .env if present; real deployments use the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting booking api")

	ctx := context.Background()

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}

	ensureIndexes(ctx, db, log)

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	<-done

	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
	if err := rdb.Close(); err != nil {
		log.Error().Err(err).Msg("redis close failed")
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("mongo disconnect failed")
	}

	log.Info().Msg("stopped")
}

// ensureIndexes creates the collection indexes. A failure is logged, not
// fatal: the API degrades to unindexed queries.
func ensureIndexes(ctx context.Context, db *mongo.Database, log zerolog.Logger) {
	repos := []interface {
		EnsureIndexes(ctx context.Context) error
	}{
		mongodb.NewUserRepository(db),
		mongodb.NewClassRepository(db),
		mongodb.NewSelectionRepository(db),
		mongodb.NewPaymentRepository(db),
	}
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			log.Warn().Err(err).Msg("index creation failed")
		}
	}
}
