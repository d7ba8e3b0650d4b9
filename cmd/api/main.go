package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/cache"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/config"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/database"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/handlers"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/jobs"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/log"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/repository"
	"github.com/Thunder2505/EPI-USE-EmployeeHierarchyManagement/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := log.New(cfg.Environment)

	ctx := context.Background()

	if err := database.Migrate(ctx, cfg.Postgres.DSN); err != nil {
		logger.Fatal().Err(err).Msg("migrations failed")
	}

	dbPool, err := database.NewPostgresPool(ctx, cfg.Postgres)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect postgres")
	}

	redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect redis")
	}

	handlerSet := handlers.NewHandlerSet(logger, dbPool, redisClient, cfg)
	httpServer := server.NewHTTPServer(cfg, logger, handlerSet)

	var sweeper *jobs.Sweeper
	if cfg.Sweep.Enabled {
		sweeper = jobs.NewSweeper(repository.NewUserRepository(dbPool), cfg.Sweep.Schedule, logger)
		if err := sweeper.Start(); err != nil {
			logger.Error().Err(err).Msg("token sweeper start failed")
		}
	}

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	waitForShutdown(logger, httpServer, sweeper, dbPool, redisClient)
}

func waitForShutdown(logger zerolog.Logger, srv *server.HTTPServer, sweeper *jobs.Sweeper, db *pgxpool.Pool, redisClient *redis.Client) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	logger.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		if err := srv.Shutdown(context.Background()); err != nil {
			logger.Error().Err(err).Msg("forced shutdown failed")
		}
	}

	if sweeper != nil {
		sweeper.Stop()
	}

	db.Close()
	if err := redisClient.Close(); err != nil {
		logger.Error().Err(err).Msg("redis close error")
	}

	logger.Info().Msg("server exited cleanly")
}
