package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/edsan89/jellyfin/internal/adapter/handler"
	"github.com/edsan89/jellyfin/internal/infrastructure/middleware"
)

type Router struct {
	engine         *gin.Engine
	deviceHandler  *handler.DeviceHandler
	uploadHandler  *handler.CameraUploadHandler
	authMiddleware *middleware.AuthMiddleware
	rateLimiter    *middleware.RateLimiter
	logger         *zap.Logger
}

type RouterConfig struct {
	DeviceHandler  *handler.DeviceHandler
	UploadHandler  *handler.CameraUploadHandler
	AuthMiddleware *middleware.AuthMiddleware
	RateLimiter    *middleware.RateLimiter
	Logger         *zap.Logger
	Environment    string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	r := &Router{
		engine:         engine,
		deviceHandler:  cfg.DeviceHandler,
		uploadHandler:  cfg.UploadHandler,
		authMiddleware: cfg.AuthMiddleware,
		rateLimiter:    cfg.RateLimiter,
		logger:         cfg.Logger,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS())
	if r.rateLimiter != nil {
		r.engine.Use(r.rateLimiter.Limit())
	}
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Swagger documentation
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	devices := r.engine.Group("/Devices")
	devices.Use(r.authMiddleware.RequireAuth())
	{
		// Registry inspection and option mutation are admin-only; any
		// authenticated caller may revoke sessions or upload.
		admin := r.authMiddleware.RequireAdmin()
		devices.GET("", admin, r.deviceHandler.List)
		devices.GET("/Info", admin, r.deviceHandler.GetInfo)
		devices.GET("/Options", admin, r.deviceHandler.GetOptions)
		devices.POST("/Options", admin, r.deviceHandler.UpdateOptions)

		devices.DELETE("", r.deviceHandler.Delete)
		devices.GET("/CameraUploads", r.uploadHandler.GetHistory)
		devices.POST("/CameraUploads", r.uploadHandler.Upload)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
