package handlers

import (
	"github.com/MboaHealth/hospital_admin_app/cmd/docs"
	portssvc "github.com/MboaHealth/hospital_admin_app/internal/core/ports/services"
	"github.com/MboaHealth/hospital_admin_app/internal/middleware"
	"github.com/MboaHealth/hospital_admin_app/pkg/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies
// through the service container interfaces.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	r.GET("/", home)
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, cfg, services)

	// Authenticated API
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes, disabled in production
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to the entity
// route registrations. The whole group sits behind the auth middleware.
func setupAPIV1Routes(r *gin.Engine, cfg *config.Config, services *portssvc.ServiceContainer) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	registerProfileRoutes(v1, services.Profile)
	registerDepartmentRoutes(v1, services.Department)
	registerInventoryRoutes(v1, services.Inventory, services.Export)
	registerTransactionRoutes(v1, services.Transaction, services.Export)
	registerReceiptRoutes(v1, services.Receipt, services.Export)
	registerConsultationRoutes(v1, services.Consultation, services.Export)
	registerVaccinationRoutes(v1, services.Vaccination, services.Export)
	registerReportingRoutes(v1, services.Reporting)
}

// setupSwaggerRoutes configures the swagger documentation routes.
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		// no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
