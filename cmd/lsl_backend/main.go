package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/SscSPs/livestock_ledger/internal/handlers"
	"github.com/SscSPs/livestock_ledger/internal/middleware"
	"github.com/SscSPs/livestock_ledger/internal/platform/bootstrap"
	"github.com/SscSPs/livestock_ledger/internal/platform/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title Livestock Ledger API
// @version 1.0
// @description Bookkeeping for a buffalo trading business.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize structured logger
	logger := bootstrap.NewLogger(cfg.LogLevel)

	services, closeStore, err := bootstrap.Services(context.Background(), cfg, logger, true)
	if err != nil {
		logger.Error("Failed to initialize books", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeStore()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-ID")
	corsCfg.ExposeHeaders = []string{"X-Request-ID", "X-RateLimit-Limit", "X-RateLimit-Remaining"}
	if len(corsCfg.AllowOrigins) == 0 {
		corsCfg.AllowAllOrigins = true
	}
	r.Use(cors.New(corsCfg))

	limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to configure rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}
	r.Use(middleware.RateLimit(limiter))

	handlers.RegisterRoutes(r, cfg, services)

	logger.Info("Server starting", slog.String("port", cfg.Port), slog.String("store", cfg.StoreDriver))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
