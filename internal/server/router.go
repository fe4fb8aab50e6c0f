package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/teeraphat-m/maritime-fleet-api/internal/di"
	"github.com/teeraphat-m/maritime-fleet-api/internal/domain"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/config"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/middleware"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/response"
)

// NewRouter wires all HTTP routes. Route groups mirror the middleware
// chain: public auth endpoints are rate limited only; everything else runs
// through RequestID, CORS, Auth, Tenant, then audit.
func NewRouter(c *di.Container, cfg *config.Config, audit *middleware.AuditLogger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORSWithConfig(corsConfig(cfg)))

	// Probes and API index stay outside the auth chain.
	router.GET("/health", c.HealthHandler.Health)
	router.GET("/ready", c.HealthHandler.Ready)
	router.GET("/", apiIndex)

	api := router.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Use(middleware.RateLimit(c.Cache, middleware.DefaultLoginRateLimit()))
	auth.POST("/register", c.AuthHandler.Register)
	auth.POST("/login", c.AuthHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.Auth(&middleware.AuthConfig{
		Secret:   cfg.JWT.Secret,
		LoadUser: c.UserLoader(),
	}))
	protected.Use(middleware.Tenant(c.TenantService))
	if audit != nil {
		protected.Use(middleware.AuditMiddleware(audit))
	}

	protected.GET("/auth/me", c.AuthHandler.Me)
	protected.PUT("/auth/me", c.AuthHandler.UpdateMe)

	vessels := protected.Group("/vessels")
	vessels.POST("", c.VesselHandler.Create)
	vessels.GET("", c.VesselHandler.List)
	vessels.GET("/:id", c.VesselHandler.GetByID)
	vessels.PUT("/:id", c.VesselHandler.Update)
	vessels.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), c.VesselHandler.Delete)
	vessels.PUT("/:id/position", c.VesselHandler.UpdatePosition)

	vessels.GET("/:id/inventory", c.InventoryHandler.GetVesselInventory)
	vessels.POST("/:id/fuel-reports", c.InventoryHandler.SubmitFuelReport)
	vessels.GET("/:id/fuel-reports", c.InventoryHandler.ListFuelReports)
	vessels.POST("/:id/bunker-records", c.InventoryHandler.RecordBunkering)
	vessels.GET("/:id/bunker-records", c.InventoryHandler.ListBunkerRecords)
	vessels.POST("/:id/maintenance", c.MaintenanceHandler.Create)
	vessels.GET("/:id/maintenance", c.MaintenanceHandler.ListByVessel)

	protected.GET("/inventory", c.InventoryHandler.GetInventory)
	protected.PUT("/inventory/:id", c.InventoryHandler.UpdateItem)

	maintenance := protected.Group("/maintenance")
	maintenance.PUT("/:id", c.MaintenanceHandler.Update)
	maintenance.POST("/:id/complete", c.MaintenanceHandler.Complete)
	maintenance.DELETE("/:id", c.MaintenanceHandler.Delete)

	crew := protected.Group("/crew")
	crew.POST("", c.CrewHandler.Create)
	crew.GET("", c.CrewHandler.List)
	crew.GET("/:id", c.CrewHandler.GetByID)
	crew.PUT("/:id", c.CrewHandler.Update)
	crew.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), c.CrewHandler.Delete)

	reports := protected.Group("/reports")
	reports.POST("", c.ReportHandler.Create)
	reports.GET("", c.ReportHandler.List)
	reports.GET("/:id", c.ReportHandler.GetByID)
	reports.PUT("/:id", c.ReportHandler.Update)
	reports.DELETE("/:id", c.ReportHandler.Delete)
	reports.POST("/:id/verify", c.ReportHandler.Verify)

	alerts := protected.Group("/alerts")
	alerts.POST("", c.AlertHandler.Create)
	alerts.GET("", c.AlertHandler.List)
	alerts.GET("/:id", c.AlertHandler.GetByID)
	alerts.PUT("/:id", c.AlertHandler.Update)
	alerts.POST("/:id/acknowledge", c.AlertHandler.Acknowledge)
	alerts.DELETE("/:id", middleware.RequireRole(domain.RoleAdmin), c.AlertHandler.Delete)

	fleet := protected.Group("/fleet")
	fleet.GET("/vessels", c.FleetHandler.VesselSummary)
	fleet.GET("/fuel-analytics", c.InventoryHandler.FuelAnalytics)
	fleet.GET("/export-compliance", c.ReportHandler.ExportCompliance)

	premium := fleet.Group("")
	premium.Use(middleware.RequirePlan(domain.PlanPremium))
	premium.GET("/analytics", c.FleetHandler.Analytics)
	premium.GET("/thresholds", c.FleetHandler.ListThresholds)

	// Threshold mutations additionally require the fleet_manage permission.
	manage := premium.Group("")
	manage.Use(middleware.RequirePermission(domain.PermissionFleetManage))
	manage.POST("/thresholds", c.FleetHandler.CreateThreshold)
	manage.PUT("/thresholds/:id", c.FleetHandler.UpdateThreshold)
	manage.DELETE("/thresholds/:id", c.FleetHandler.DeleteThreshold)

	protected.GET("/map/vessels", c.VesselHandler.Map)
	protected.GET("/map/live", c.VesselHandler.Live)

	return router
}

func corsConfig(cfg *config.Config) middleware.CORSConfig {
	corsCfg := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsCfg.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	return corsCfg
}

func apiIndex(c *gin.Context) {
	c.JSON(http.StatusOK, response.Success(gin.H{
		"name":    "maritime-fleet-api",
		"version": "v1",
		"status":  "running",
	}))
}
