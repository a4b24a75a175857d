package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/fintrackr/personal_finance_app/internal/adapters/database/sqlite"
	"github.com/fintrackr/personal_finance_app/internal/core/services"
	"github.com/fintrackr/personal_finance_app/internal/handlers"
	"github.com/fintrackr/personal_finance_app/internal/middleware"
	"github.com/fintrackr/personal_finance_app/internal/platform/config"
	"github.com/fintrackr/personal_finance_app/pkg/database"
)

func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Run embedded migrations before opening the main connection.
	logger.Info("Running database migrations...")
	if err := sqlite.RunMigrations(cfg.SQLitePath); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}
	logger.Info("Database migrations applied.")

	db, err := database.NewSQLiteDB(cfg.SQLitePath)
	if err != nil {
		logger.Error("Failed to initialize database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.CloseDB(db)
	logger.Info("Database connection established.", slog.String("path", cfg.SQLitePath))

	if cfg.SeedSampleData {
		if err := sqlite.Seed(context.Background(), db); err != nil {
			logger.Error("Failed to seed reference data", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Reference data seeded.")
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS, rate limiting)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.Default())

	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		logger.Error("Invalid rate limit configuration", slog.String("rate_limit", cfg.RateLimit), slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := sqlite.NewRepositoryProvider(db)
	serviceContainer := services.NewServiceContainer(cfg, repos)
	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
