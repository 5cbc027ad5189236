package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/gamehub/progression-api/internal/config"
	"github.com/gamehub/progression-api/internal/handlers"
	"github.com/gamehub/progression-api/internal/logic"
	"github.com/gamehub/progression-api/internal/storage"
	"github.com/gamehub/progression-api/internal/words"
	"github.com/gamehub/progression-api/internal/worker"
)

func main() {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	var logger *zap.Logger
	if cfg.Env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	store, publisher, closeStore, err := openStore(cfg, sugar)
	if err != nil {
		sugar.Fatalw("Failed to open storage", "backend", cfg.StorageBackend, "error", err)
	}
	defer closeStore()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dispatcher := worker.New(worker.Config{
		QueueSize:   cfg.QueueSize,
		HistorySize: cfg.HistorySize,
		Publisher:   publisher,
		Logger:      logger,
	})
	dispatcher.Start(ctx)
	defer dispatcher.Stop()

	leaderboard := logic.NewLeaderboardService(store, logger)
	playerStats := logic.NewPlayerStatsService(store, leaderboard, dispatcher, logger)
	challenges := logic.NewChallengeService(store, dispatcher, logger)
	settings := logic.NewSettingsService(store, dispatcher, logger)

	h := handlers.New(handlers.Config{
		Store:       store,
		Feed:        dispatcher,
		Words:       words.NewPicker(rand.New(rand.NewSource(time.Now().UnixNano()))),
		Logger:      logger,
		PlayerStats: playerStats,
		Leaderboard: leaderboard,
		Challenges:  challenges,
		Settings:    settings,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      h.Routes(cfg.AllowedOrigins),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		sugar.Infow("Server starting", "port", cfg.Port, "env", cfg.Env, "backend", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		sugar.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		sugar.Fatalw("Server error", "error", err)
	}
	sugar.Info("Server stopped")
}

// openStore builds the configured Store. Redis doubles as the notification
// publisher; SQLite has no pub/sub so the publisher stays nil there.
func openStore(cfg *config.Config, sugar *zap.SugaredLogger) (storage.Store, worker.Publisher, func(), error) {
	switch cfg.StorageBackend {
	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("parse redis url: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(context.Background()).Err(); err != nil {
			return nil, nil, nil, fmt.Errorf("ping redis: %w", err)
		}
		r := storage.NewRedis(client, cfg.RedisPrefix)
		return r, r, func() { client.Close() }, nil
	case config.BackendSQLite:
		s, err := storage.NewSQLite(cfg.SQLitePath)
		if err != nil {
			return nil, nil, nil, err
		}
		sugar.Infow("Using SQLite storage", "path", cfg.SQLitePath)
		return s, nil, func() { s.Close() }, nil
	default:
		return nil, nil, nil, fmt.Errorf("unknown backend: %q", cfg.StorageBackend)
	}
}
