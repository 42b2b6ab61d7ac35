package handlers

import (
	"github.com/gin-gonic/gin"

	portssvc "github.com/Oligens/scarwrite.haiti-sub001/internal/core/ports/services"
	"github.com/Oligens/scarwrite.haiti-sub001/internal/middleware"
	"github.com/Oligens/scarwrite.haiti-sub001/pkg/config"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Register public authentication routes
	registerAuthRoutes(r, cfg, services.Auth)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerTransactionRoutes(v1, services.Transaction)
	registerExpenseRoutes(v1, services.Expense)
	registerSaleRoutes(v1, services.Sale)
	registerJournalRoutes(v1, services.Journal, services.Settings)
	registerAccountRoutes(v1, services.Account)
	registerTaxConfigRoutes(v1, services.TaxConfig)
	registerProductRoutes(v1, services.Product)
	registerThirdPartyRoutes(v1, services.ThirdParty)
	registerSettingsRoutes(v1, services.Settings)
}
