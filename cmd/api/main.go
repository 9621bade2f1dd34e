package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/edsan89/jellyfin/internal/adapter/handler"
	"github.com/edsan89/jellyfin/internal/adapter/repository/postgres"
	"github.com/edsan89/jellyfin/internal/infrastructure/auth"
	"github.com/edsan89/jellyfin/internal/infrastructure/cache"
	"github.com/edsan89/jellyfin/internal/infrastructure/config"
	"github.com/edsan89/jellyfin/internal/infrastructure/database"
	"github.com/edsan89/jellyfin/internal/infrastructure/middleware"
	"github.com/edsan89/jellyfin/internal/infrastructure/observability"
	"github.com/edsan89/jellyfin/internal/infrastructure/server"
	"github.com/edsan89/jellyfin/internal/infrastructure/storage"
	"github.com/edsan89/jellyfin/internal/usecase/device"
	"github.com/edsan89/jellyfin/internal/usecase/session"
	"github.com/edsan89/jellyfin/internal/usecase/upload"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("failed to create logger: %v", err)
	}
	defer logger.Sync()

	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer pool.Close()

	// Repositories
	deviceRepo := postgres.NewDeviceRepo(pool)
	optionsRepo := postgres.NewDeviceOptionsRepo(pool)
	tokenRepo := postgres.NewAuthTokenRepo(pool)
	uploadRepo := postgres.NewUploadRecordRepo(pool)

	// Infrastructure services
	jwtSvc := auth.NewJWTService(cfg.JWT.SecretKey)

	blobStorage, err := storage.NewS3Storage(cfg.S3)
	if err != nil {
		logger.Fatal("failed to create s3 storage", zap.Error(err))
	}

	// Use cases
	deviceSvc := device.NewService(deviceRepo, optionsRepo, uploadRepo)
	sessionSvc := session.NewService(tokenRepo, session.NewHub(), logger)
	uploadSvc := upload.NewService(deviceRepo, uploadRepo, blobStorage)

	// Handlers
	deviceHandler := handler.NewDeviceHandler(deviceSvc, sessionSvc)
	uploadHandler := handler.NewCameraUploadHandler(deviceSvc, uploadSvc, sessionSvc, cfg.Upload.MaxUploadSize)

	// Middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtSvc, tokenRepo, deviceSvc, logger)

	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			logger.Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisClient.Close()
		rateLimiter = middleware.NewRateLimiter(redisClient, cfg.RateLimit)
	}

	// Router
	router := server.NewRouter(server.RouterConfig{
		DeviceHandler:  deviceHandler,
		UploadHandler:  uploadHandler,
		AuthMiddleware: authMiddleware,
		RateLimiter:    rateLimiter,
		Logger:         logger,
		Environment:    cfg.Server.Environment,
	})

	// Server
	srv := server.NewServer(server.ServerConfig{
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
		Handler:         router.Engine(),
		Logger:          logger,
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped")
}
