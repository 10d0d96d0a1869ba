package handlers

import (
	"github.com/gin-gonic/gin"
	portssvc "github.com/receiptcapture/portal_backend/internal/core/ports/services"
	"github.com/receiptcapture/portal_backend/internal/middleware"
	"github.com/receiptcapture/portal_backend/internal/platform/config"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
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

	// Public routes: signup flow and login, both rate limited
	registerRegistrationRoutes(r, services.Registration)
	registerAuthRoutes(r, services.Auth, services.Token)

	// Setup API v1 routes with Auth Middleware, passing service interfaces
	setupAPIV1Routes(r, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	services *portssvc.ServiceContainer,
) {
	// Apply AuthMiddleware to the entire v1 group
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(services.Token))

	// Delegate route registration to specific handlers, passing required services
	registerMeRoutes(v1, services.Auth)
	registerStaffRoutes(v1, services.Staff)
	registerReceiptRoutes(v1, services.Receipt)
	registerCompanyRoutes(v1, services.Organization)
	registerSubscriptionRoutes(v1, services.Subscription)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
