package main

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/cache"
	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/calclog"
	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/config"
	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/errors"
	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/middleware"
	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/monitoring"
	"github.com/cromptexindia-ux/vedic-astrology-backend/internal/security"
)

// server bundles the handler dependencies: the calculation-log buffer,
// the chart cache and the observability plumbing.
type server struct {
	cfg     config.Config
	logs    *calclog.Buffer
	charts  *cache.ChartCache
	metrics *monitoring.Metrics
	logger  *monitoring.Logger
}

func newServer(cfg config.Config) *server {
	return &server{
		cfg:     cfg,
		logs:    calclog.NewBuffer(cfg.LogBufferSize),
		charts:  cache.NewChartCache(time.Duration(cfg.CacheTTLMin) * time.Minute),
		metrics: monitoring.NewMetrics(),
		logger:  monitoring.NewLogger(),
	}
}

// setupRouter builds a fully wired engine, one per server instance.
func setupRouter(cfg config.Config) *gin.Engine {
	return newServer(cfg).routes()
}

func (s *server) routes() *gin.Engine {
	r := gin.New()

	r.Use(monitoring.RequestIDMiddleware())
	r.Use(monitoring.MonitoringMiddleware(s.metrics, s.logger))
	r.Use(errors.ErrorHandler())
	r.Use(errors.RecoveryHandler())

	sec := security.NewMiddleware(security.Config{
		MaxRequestsPerMin: s.cfg.MaxRequestsPerMin,
		AllowedOrigins:    s.cfg.AllowedOrigins,
		RequestTimeout:    time.Duration(s.cfg.RequestTimeoutSec) * time.Second,
	})
	r.Use(sec.SecurityHeaders)
	r.Use(sec.RequestTimeout)
	r.Use(sec.RateLimitByIP)

	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", monitoring.RequestIDHeader},
		ExposeHeaders:    []string{monitoring.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(s.cfg.AllowedOrigins) == 1 && s.cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = s.cfg.AllowedOrigins
	}
	r.Use(cors.New(corsConfig))
	r.Use(middleware.NewCompression().Handler())

	api := r.Group("/api")
	api.GET("/health", s.handleHealth)
	api.POST("/calculate-birth-chart", s.handleBirthChart)
	api.POST("/calculate-tithi", s.handleTithi)
	api.POST("/calculate-lagna", s.handleLagna)
	api.GET("/get-logs", s.handleGetLogs)
	api.POST("/clear-logs", s.handleClearLogs)

	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	r.GET("/cache/stats", s.handleCacheStats)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
