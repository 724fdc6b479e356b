package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/tierbank/depositcalc/internal/application/usecase"
	"github.com/tierbank/depositcalc/internal/domain/service"
	"github.com/tierbank/depositcalc/internal/domain/valueobject"
	"github.com/tierbank/depositcalc/internal/infrastructure/config"
	infraKafka "github.com/tierbank/depositcalc/internal/infrastructure/kafka"
	infraPG "github.com/tierbank/depositcalc/internal/infrastructure/persistence/postgres"
	infraRedis "github.com/tierbank/depositcalc/internal/infrastructure/persistence/redis"
	grpcPresentation "github.com/tierbank/depositcalc/internal/presentation/grpc"
	"github.com/tierbank/depositcalc/internal/presentation/rest"
	"github.com/tierbank/depositcalc/internal/platform/auth"
	kafkapkg "github.com/tierbank/depositcalc/internal/platform/kafka"
	"github.com/tierbank/depositcalc/internal/platform/observability"
	pgpkg "github.com/tierbank/depositcalc/internal/platform/postgres"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// Load configuration
	cfg := config.Load()

	// Initialize logger
	logger := observability.NewLogger(cfg.Log)

	logger.Info("starting depositcalc",
		"http_port", cfg.HTTPPort,
		"grpc_port", cfg.GRPCPort,
		"decimal_precision", cfg.DecimalPrecision,
	)

	// Initialize tracing
	if cfg.Telemetry.OTLPEndpoint != "" {
		shutdown, err := observability.InitTracer(ctx, observability.TracingConfig{
			ServiceName: cfg.Telemetry.ServiceName,
			Endpoint:    cfg.Telemetry.OTLPEndpoint,
			Insecure:    cfg.Telemetry.Insecure,
		})
		if err != nil {
			logger.Warn("failed to initialize tracer, continuing without tracing", "error", err)
		} else {
			defer shutdown(ctx)
		}
	}

	// Initialize metrics
	meterProvider, metricsHandler, err := observability.InitMetrics()
	if err != nil {
		logger.Error("failed to initialize metrics", "error", err)
		os.Exit(1)
	}
	defer meterProvider.Shutdown(ctx)

	// Initialize database
	pool, err := pgpkg.NewPool(ctx, cfg.DB)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	// Run migrations
	if err := pgpkg.RunMigrations(cfg.DB.DSN(), cfg.MigrationsDir); err != nil {
		logger.Warn("migration warning", "error", err)
	}

	// Initialize Redis (preset store)
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.Warn("redis unreachable at startup, presets degraded", "error", err)
	}

	// Initialize Kafka producer
	producer := kafkapkg.NewProducer(cfg.Kafka)
	defer producer.Close()

	// Wire dependencies (DI via constructors)
	dctx, err := valueobject.NewDecimalContext(cfg.DecimalPrecision)
	if err != nil {
		logger.Error("invalid decimal precision", "error", err)
		os.Exit(1)
	}
	engine := service.NewCalculationEngine(dctx)
	historyRepo := infraPG.NewHistoryRepository(pool)
	presetRepo := infraRedis.NewPresetRepository(redisClient)
	publisher := infraKafka.NewEventPublisher(producer)

	// Use cases
	runCalculationUC := usecase.NewRunCalculationUseCase(engine, historyRepo, publisher, logger)
	validateTiersUC := usecase.NewValidateTiersUseCase()
	getCalculationUC := usecase.NewGetCalculationUseCase(historyRepo, dctx)
	listHistoryUC := usecase.NewListHistoryUseCase(historyRepo)
	replayCalculationUC := usecase.NewReplayCalculationUseCase(engine, historyRepo)
	savePresetUC := usecase.NewSavePresetUseCase(presetRepo)
	listPresetsUC := usecase.NewListPresetsUseCase(presetRepo)

	// JWT service (validation-only: public key preferred, secret as fallback).
	jwtCfg := auth.JWTConfig{
		Issuer: cfg.Auth.Issuer,
	}
	switch {
	case os.Getenv("JWT_PUBLIC_KEY") != "":
		jwtCfg.PublicKeyPEM = os.Getenv("JWT_PUBLIC_KEY")
	case cfg.Auth.PublicKeyFile != "":
		keyData, err := auth.LoadKeyFromFile(cfg.Auth.PublicKeyFile)
		if err != nil {
			logger.Error("failed to load JWT public key file", "error", err)
			os.Exit(1)
		}
		jwtCfg.PublicKeyPEM = string(keyData)
	default:
		jwtCfg.Secret = cfg.Auth.Secret
	}
	jwtSvc, err := auth.NewJWTService(jwtCfg)
	if err != nil {
		logger.Error("failed to initialize JWT service", "error", err)
		os.Exit(1)
	}

	// gRPC server
	handler := grpcPresentation.NewCalculatorHandler(
		runCalculationUC, validateTiersUC, getCalculationUC,
		listHistoryUC, replayCalculationUC, savePresetUC, listPresetsUC,
	)
	grpcServer := grpcPresentation.NewServer(handler, cfg.GRPCPort, logger, jwtSvc)

	// HTTP server (health checks + metrics)
	mux := http.NewServeMux()
	healthHandler := rest.NewHealthHandler(logger, map[string]rest.ReadinessCheck{
		"postgres": func(ctx context.Context) error { return pgpkg.HealthCheck(ctx, pool) },
		"redis":    func(ctx context.Context) error { return redisClient.Ping(ctx).Err() },
	})
	healthHandler.RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler: mux,
	}

	// Start servers
	errCh := make(chan error, 2)

	go func() {
		errCh <- grpcServer.Start(ctx)
	}()

	go func() {
		logger.Info("HTTP server starting", "port", cfg.HTTPPort)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Wait for shutdown
	select {
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	case err := <-errCh:
		logger.Error("server error", "error", err)
	}

	// Graceful shutdown
	httpServer.Shutdown(context.Background())
	grpcServer.Stop()
	logger.Info("depositcalc stopped")
}
