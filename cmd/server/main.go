package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpAdapter "github.com/iho/transfermarket/internal/adapter/http"
	"github.com/iho/transfermarket/internal/adapter/http/handler"
	"github.com/iho/transfermarket/internal/adapter/http/middleware"
	postgresRepo "github.com/iho/transfermarket/internal/adapter/repository/postgres"
	redisRepo "github.com/iho/transfermarket/internal/adapter/repository/redis"
	"github.com/iho/transfermarket/internal/infrastructure/auth"
	"github.com/iho/transfermarket/internal/infrastructure/config"
	"github.com/iho/transfermarket/internal/infrastructure/logging"
	"github.com/iho/transfermarket/internal/infrastructure/metrics"
	"github.com/iho/transfermarket/internal/infrastructure/postgres"
	"github.com/iho/transfermarket/internal/infrastructure/redis"
	"github.com/iho/transfermarket/internal/usecase"
)

func main() {
	// Setup logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Setup log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	appLogger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	// Operator escape hatch for a bad migration.
	if len(os.Args) > 1 && os.Args[1] == "migrate-down" {
		if err := postgres.RunMigrationsDown(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
			log.Fatal().Err(err).Msg("failed to revert migration")
		}
		return
	}

	ctx := context.Background()

	// Connect to PostgreSQL
	pool, err := postgres.NewPool(ctx, cfg.DatabaseURL, cfg.DatabaseMaxConns, cfg.DatabaseMinConns)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}
	defer pool.Close()
	log.Info().Msg("connected to postgres")

	// Run migrations
	if err := postgres.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}
	log.Info().Msg("migrations applied")

	// Connect to Redis
	redisClient, err := redis.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer redisClient.Close()
	log.Info().Msg("connected to redis")

	appMetrics := metrics.New()

	// Initialize repositories
	txManager := postgresRepo.NewTxManager(pool)
	playerRepo := postgresRepo.NewPlayerRepository(pool)
	teamRepo := postgresRepo.NewTeamRepository(pool)
	transferRepo := postgresRepo.NewTransferRepository(pool)
	userRepo := postgresRepo.NewUserRepository(pool)
	idGen := postgresRepo.NewULIDGenerator()
	retrier := postgresRepo.NewRetrier()
	cache := redisRepo.NewCache(redisClient)
	idempotencyStore := redisRepo.NewIdempotencyStore(redisClient)

	// Initialize use cases
	teamUC := usecase.NewTeamUseCase(txManager, teamRepo, playerRepo, userRepo,
		usecase.NewSquadGenerator(), idGen, appMetrics)
	userUC := usecase.NewUserUseCase(userRepo, teamUC, idGen, appLogger, appMetrics)
	transferUC := usecase.NewTransferUseCase(txManager, playerRepo, teamRepo, transferRepo,
		idGen, cache, retrier, appMetrics)

	// Auth
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(userUC, jwtManager)
	teamHandler := handler.NewTeamHandler(teamUC)
	transferHandler := handler.NewTransferHandler(transferUC)
	healthHandler := handler.NewHealthHandler(pool, redisClient)

	// Create router
	router := httpAdapter.NewRouter(httpAdapter.RouterConfig{
		AuthHandler:      authHandler,
		TeamHandler:      teamHandler,
		TransferHandler:  transferHandler,
		HealthHandler:    healthHandler,
		JWTManager:       jwtManager,
		IdempotencyStore: idempotencyStore,
		AuthRateLimiter:  middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateBurst),
	})

	loggingMiddleware := middleware.NewLoggingMiddleware(log.Logger)

	// Create server
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:      loggingMiddleware.Wrap(router),
		ReadTimeout:  cfg.HTTPReadTimeout,
		WriteTimeout: cfg.HTTPWriteTimeout,
	}

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("starting server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}
