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

	"go.uber.org/zap"

	"github.com/tlodholz/OpsReadyAPI/config"
	"github.com/tlodholz/OpsReadyAPI/internal/api/handler"
	"github.com/tlodholz/OpsReadyAPI/internal/api/router"
	"github.com/tlodholz/OpsReadyAPI/internal/repository"
	"github.com/tlodholz/OpsReadyAPI/internal/scheduler"
	"github.com/tlodholz/OpsReadyAPI/internal/service"
	"github.com/tlodholz/OpsReadyAPI/pkg/database"
	"github.com/tlodholz/OpsReadyAPI/pkg/jwt"
	applogger "github.com/tlodholz/OpsReadyAPI/pkg/logger"
	"github.com/tlodholz/OpsReadyAPI/pkg/redis"
)

func main() {
	// 1. configuration
	cfg, err := config.Load(os.Getenv("OPSREADY_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 2. logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting OpsReady API",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. database
	db, err := database.NewDB(&cfg.Database, cfg.Log.Level, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("failed to get sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// 4. redis is optional: logout blacklisting and rate limits degrade
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, token blacklist and rate limits disabled", zap.Error(err))
		rdb = nil
	}

	// 5. wiring: repository → service → handler
	jwtMgr := jwt.NewManager(&cfg.Auth)
	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc, service.UTCNow)

	// 6. background jobs
	var jobs *scheduler.Scheduler
	if cfg.Scheduler.Enabled {
		jobs, err = scheduler.New(&cfg.Scheduler, svc.TrainingRecord, logger)
		if err != nil {
			logger.Fatal("scheduler setup failed", zap.Error(err))
		}
		jobs.Start()
	}

	// 7. HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router.Setup(cfg, h, jwtMgr, rdb, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutting down", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("http server shutdown failed", zap.Error(err))
	}
	if jobs != nil {
		jobs.Stop(ctx)
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("failed to close database", zap.Error(err))
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
