package main

import (
	"context"
	"log"

	"inspecta-backend/auth"
	"inspecta-backend/config"
	"inspecta-backend/handlers"
	"inspecta-backend/logger"
	"inspecta-backend/metrics"
	"inspecta-backend/middleware"
	"inspecta-backend/repository"
	"inspecta-backend/service"
	"inspecta-backend/storage"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Server.Env); err != nil {
		log.Fatal("Failed to initialize logger: ", err)
	}
	defer logger.Sync()

	db, err := initPostgres(cfg.DatabaseURL)
	if err != nil {
		logger.Get().Fatal("failed to initialize Postgres", zap.Error(err))
	}
	defer db.Close()

	imageStorage, err := storage.NewFromEnv()
	if err != nil {
		logger.Get().Fatal("failed to initialize storage", zap.Error(err))
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	companyRepo := repository.NewCompanyRepository(db)
	reportRepo := repository.NewReportRepository(db)
	imageRepo := repository.NewImageRepository(db)

	// Services
	tokenService := auth.NewTokenService(cfg.JWT.SigningKey, cfg.JWT.ExpirationHours)
	authService := service.NewAuthService(userRepo, profileRepo, tokenService)
	profileService := service.NewProfileService(userRepo, profileRepo)
	companyService := service.NewCompanyService(companyRepo)
	reportService := service.NewReportService(reportRepo, companyRepo, userRepo)

	// Metrics and rate limiting
	collector := metrics.NewCollector()
	authLimiter := middleware.NewAuthRateLimiter(30, 10)
	defer authLimiter.Stop()

	r := handlers.NewRouter(handlers.RouterDeps{
		Auth:      handlers.NewAuthHandler(authService),
		User:      handlers.NewUserHandler(profileService),
		Company:   handlers.NewCompanyHandler(companyService),
		Report:    handlers.NewReportHandler(reportService, collector),
		Image:     handlers.NewImageHandler(imageRepo, imageStorage),
		Tokens:    tokenService,
		Collector: collector,
		AuthLimit: authLimiter,
	})

	logger.Get().Info("server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		logger.Get().Fatal("failed to start server", zap.Error(err))
	}
}

func initPostgres(connString string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(context.Background(), connString)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(context.Background()); err != nil {
		return nil, err
	}

	logger.Get().Info("postgres connection established")
	return pool, nil
}
