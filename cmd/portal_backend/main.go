package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/receiptcapture/portal_backend/internal/adapters/database/memory"
	"github.com/receiptcapture/portal_backend/internal/adapters/database/pgsql"
	portsrepo "github.com/receiptcapture/portal_backend/internal/core/ports/repositories"
	"github.com/receiptcapture/portal_backend/internal/core/services"
	"github.com/receiptcapture/portal_backend/internal/handlers"
	"github.com/receiptcapture/portal_backend/internal/middleware"
	"github.com/receiptcapture/portal_backend/internal/platform/config"
	"github.com/receiptcapture/portal_backend/pkg/database"

	migrate "github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// @title Receipt Capture Portal API
// @version 1.0
// @description Multi-tenant portal backend for the receipt capture service.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the session token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos, cleanup, err := buildRepositories(cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize persistence", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer cleanup()

	serviceContainer := services.NewServiceContainer(cfg, repos)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS for the dashboard)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(corsConfig(cfg)))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// buildRepositories selects the persistence adapter: a postgres URL wires the
// pgx repositories (after running migrations), otherwise the in-memory store
// is used, optionally seeded with demo data.
func buildRepositories(cfg *config.Config, logger *slog.Logger) (*portsrepo.RepositoryProvider, func(), error) {
	if cfg.DatabaseURL == "" {
		store := memory.NewStore()
		if cfg.SeedDemoData {
			if err := store.Seed(); err != nil {
				return nil, nil, err
			}
			logger.Info("In-memory store seeded with demo data")
		}
		provider := memory.NewRepositoryProvider(store)
		return &provider, func() {}, nil
	}

	dbPool, err := database.NewPgxPool(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Database connection pool established")

	if err := runMigrations(cfg.DatabaseURL, logger); err != nil {
		dbPool.Close()
		return nil, nil, err
	}

	provider := pgsql.NewRepositoryProvider(dbPool)
	return &provider, dbPool.Close, nil
}

func runMigrations(databaseURL string, logger *slog.Logger) error {
	// Open a temporary standard sql.DB connection for migrations, using the
	// pgx stdlib driver to stay compatible with the main pool.
	migrationDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrationDB.Close(); cerr != nil {
			logger.Error("Error closing migration DB connection", slog.String("error", cerr.Error()))
		}
	}()

	driver, err := postgres.WithInstance(migrationDB, &postgres.Config{})
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", "postgres", driver)
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return err
	}
	if err == migrate.ErrNoChange {
		logger.Info("No new migrations to apply")
	} else {
		logger.Info("Database migrations applied successfully")
	}
	return nil
}

func corsConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = false
	if cfg.IsProduction {
		corsCfg.AllowOrigins = []string{"https://portal.receiptcapture.com"}
	} else {
		corsCfg.AllowOrigins = []string{"http://localhost:3000", "http://localhost:8080"}
	}
	corsCfg.AddAllowHeaders("Authorization")
	return corsCfg
}
