package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	_ "github.com/sweetshop/sweet-inventory/docs"
	"github.com/sweetshop/sweet-inventory/internal/api"
	"github.com/sweetshop/sweet-inventory/internal/api/handler"
	"github.com/sweetshop/sweet-inventory/internal/api/middleware"
	"github.com/sweetshop/sweet-inventory/internal/core/service"
	"github.com/sweetshop/sweet-inventory/internal/infrastructure/db/mongo"
	rediscache "github.com/sweetshop/sweet-inventory/internal/infrastructure/db/redis"
	"github.com/sweetshop/sweet-inventory/internal/infrastructure/queue"
	"github.com/sweetshop/sweet-inventory/internal/pkg/config"
	"github.com/sweetshop/sweet-inventory/pkg/logger"
)

const shutdownTimeout = 30 * time.Second

// @title                       Sweet Shop Inventory API
// @version                     1.0
// @description                 Catalogue and stock management for the sweet shop dashboard.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "sweet-inventory",
	})
	log.Info().Str("env", cfg.Env).Str("port", cfg.Port).Msg("starting sweet shop API")

	client, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.Error().Err(err).Msg("mongo disconnect failed")
		}
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}
	log.Info().Str("database", cfg.Mongo.Database).Msg("mongo connected")

	checks := map[string]handler.Check{
		"mongodb": func(ctx context.Context) error { return mongo.Ping(ctx, db) },
	}

	var limiter middleware.Limiter
	if cfg.Redis.Enabled {
		rdb, err := rediscache.Connect(ctx, rediscache.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, rate limiting disabled")
		} else {
			defer rdb.Close()
			limiter = rediscache.NewRateLimiter(rdb, "sweetshop:ratelimit", cfg.RateLimit.Requests, cfg.RateLimit.Window)
			checks["redis"] = func(ctx context.Context) error { return rediscache.Ping(ctx, rdb) }
		}
	}

	users := mongo.NewUserRepository(db)
	sweets := mongo.NewSweetRepository(db)
	movementRepo := mongo.NewMovementRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)
	movements := service.NewMovementService(movementRepo, sweets, logger.With("movements"))

	// The dispatcher outlives the signal context so Stop can drain it.
	workerCtx, cancelWorkers := context.WithCancel(context.Background())
	defer cancelWorkers()
	dispatcher := queue.NewDispatcher(cfg.MovementWorkers, movements, logger.With("dispatcher"))
	dispatcher.Start(workerCtx)

	e := api.NewRouter(api.Deps{
		Log:         log,
		Auth:        service.NewAuthService(users, tokens, logger.With("auth")),
		Tokens:      tokens,
		Users:       users,
		Sweets:      service.NewSweetService(sweets, logger.With("sweets")),
		Inventory:   service.NewInventoryService(sweets, dispatcher, logger.With("inventory")),
		Movements:   movements,
		Limiter:     limiter,
		Checks:      checks,
		CORSOrigins: cfg.CORSOrigins,
	})

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", ":"+cfg.Port).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down gracefully, press Ctrl+C again to force")
		stop()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
		}
		return nil
	})

	err = g.Wait()
	dispatcher.Stop()
	log.Info().Msg("server exited")
	return err
}
