package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tacocloud/tacocloud/internal/api"
	"github.com/tacocloud/tacocloud/internal/core/ports"
	"github.com/tacocloud/tacocloud/internal/infrastructure/config"
	"github.com/tacocloud/tacocloud/internal/infrastructure/db/sqlite"
	"github.com/tacocloud/tacocloud/internal/infrastructure/session"
	"github.com/tacocloud/tacocloud/pkg/logger"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET must be set")
	}

	db, err := sqlite.Connect(ctx, sqlite.Config{Path: cfg.SQLite.Path})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	if err := sqlite.Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	var carts ports.CartStore
	rdb, err := session.Connect(ctx, session.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Warn().Err(err).Msg("redis unavailable, falling back to in-memory cart store")
		carts = session.NewMemoryCartStore(cfg.Cart.TTL)
	} else {
		defer rdb.Close()
		carts = session.NewRedisCartStore(rdb, cfg.Cart.TTL)
	}

	e, err := api.NewRouter(db, carts, cfg.JWTSecret, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build router")
	}

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("taco cloud listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
