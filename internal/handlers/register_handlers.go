package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/SscSPs/livestock_ledger/cmd/docs"
	portssvc "github.com/SscSPs/livestock_ledger/internal/core/ports/services"
	"github.com/SscSPs/livestock_ledger/internal/dto"
	"github.com/SscSPs/livestock_ledger/internal/middleware"
	"github.com/SscSPs/livestock_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var validationsOnce sync.Once

// registerValidations installs the custom binding rules on gin's validator once per process.
func registerValidations() {
	validationsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Binding validator is not a go-playground validator; custom rules not registered")
			return
		}
		if err := dto.RegisterValidations(v); err != nil {
			slog.Error("Failed to register binding validations", slog.String("error", err.Error()))
		}
	})
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group. The bearer-token guard is
// only installed when a JWT secret is configured.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1")
	if cfg.JWTSecret != "" {
		v1.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	}
	RegisterAPIRoutes(v1, services)
}

// RegisterAPIRoutes registers every bookkeeping and reporting route on rg.
func RegisterAPIRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	registerValidations()

	registerTradeRoutes(rg, services.Bookkeeping)
	registerJournalRoutes(rg, services.Bookkeeping)
	registerLedgerRoutes(rg, services.Bookkeeping)
	registerReportingRoutes(rg, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
