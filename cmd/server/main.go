package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/config"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/api/handler"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/api/router"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/repository"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/seed"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/internal/service"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/ai"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/database"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/jwt"
	applogger "github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/logger"
	"github.com/nikhitamarali-prog/AI-based-skill-development-platform/pkg/redis"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("starting server",
		zap.Int("port", cfg.Server.Port),
		zap.String("db_driver", cfg.Database.Driver),
		zap.String("log_level", cfg.Log.Level),
	)

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("unwrap sql.DB", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, cfg.Database.Driver, logger); err != nil {
		logger.Fatal("run migrations", zap.Error(err))
	}

	if err := seed.Run(db, logger); err != nil {
		logger.Fatal("seed database", zap.Error(err))
	}

	// Redis is optional: without it the token blacklist and rate
	// limiting are disabled, nothing else changes.
	rdb, err := redis.NewClient(&cfg.Redis, logger)
	if err != nil {
		logger.Warn("redis unavailable, running degraded", zap.Error(err))
		rdb = nil
	}

	jwtMgr := jwt.NewManager(&cfg.Auth)

	var mentor service.MentorClient
	if cfg.AI.APIKey != "" {
		mentor = ai.NewClient(&cfg.AI)
	} else {
		logger.Warn("ai.api_key not set, mentor chat will use the fallback reply")
	}

	repo := repository.NewRepository(db)
	svc := service.NewService(cfg, repo, jwtMgr, rdb, mentor, logger)
	h := handler.NewHandler(svc)

	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
		logger.Error("shutdown error", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
