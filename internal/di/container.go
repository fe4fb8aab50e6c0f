package di

import (
	"context"

	"github.com/teeraphat-m/maritime-fleet-api/internal/handler"
	"github.com/teeraphat-m/maritime-fleet-api/internal/repository"
	"github.com/teeraphat-m/maritime-fleet-api/internal/service"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/config"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/database"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/logger"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/middleware"
	"github.com/teeraphat-m/maritime-fleet-api/pkg/redis"
)

// Container holds all dependencies for the fleet API
type Container struct {
	// Infrastructure
	DB    *database.PostgresDB
	Cache *redis.Client

	// Repositories
	OrgRepo       repository.OrganizationRepository
	UserRepo      repository.UserRepository
	VesselRepo    repository.VesselRepository
	CrewRepo      repository.CrewRepository
	InventoryRepo repository.InventoryRepository
	FuelRepo      repository.FuelReportRepository
	BunkerRepo    repository.BunkerRepository
	AlertRepo     repository.AlertRepository
	MaintRepo     repository.MaintenanceRepository
	ReportRepo    repository.ReportRepository
	ThresholdRepo repository.ThresholdRepository

	// Services
	AuthService        service.AuthService
	TenantService      service.TenantService
	PositionCache      service.PositionCache
	VesselService      service.VesselService
	CrewService        service.CrewService
	AlertService       service.AlertService
	InventoryService   service.InventoryService
	ReportService      service.ReportService
	MaintenanceService service.MaintenanceService
	FleetService       service.FleetService

	// Handlers
	HealthHandler      *handler.HealthHandler
	AuthHandler        *handler.AuthHandler
	VesselHandler      *handler.VesselHandler
	CrewHandler        *handler.CrewHandler
	InventoryHandler   *handler.InventoryHandler
	AlertHandler       *handler.AlertHandler
	ReportHandler      *handler.ReportHandler
	MaintenanceHandler *handler.MaintenanceHandler
	FleetHandler       *handler.FleetHandler
}

// ContainerConfig contains configuration for building the container
type ContainerConfig struct {
	DB    *database.PostgresDB
	Cache *redis.Client
	Cfg   *config.Config
	Log   *logger.Logger
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *ContainerConfig) *Container {
	c := &Container{
		DB:    cfg.DB,
		Cache: cfg.Cache,
	}

	pool := cfg.DB.Pool()

	// Initialize repositories
	c.OrgRepo = repository.NewPostgresOrganizationRepository(pool)
	c.UserRepo = repository.NewPostgresUserRepository(pool)
	c.VesselRepo = repository.NewPostgresVesselRepository(pool)
	c.CrewRepo = repository.NewPostgresCrewRepository(pool)
	c.InventoryRepo = repository.NewPostgresInventoryRepository(pool)
	c.FuelRepo = repository.NewPostgresFuelReportRepository(pool)
	c.BunkerRepo = repository.NewPostgresBunkerRepository(pool)
	c.AlertRepo = repository.NewPostgresAlertRepository(pool)
	c.MaintRepo = repository.NewPostgresMaintenanceRepository(pool)
	c.ReportRepo = repository.NewPostgresReportRepository(pool)
	c.ThresholdRepo = repository.NewPostgresThresholdRepository(pool)

	// Initialize services
	c.AuthService = service.NewAuthService(
		c.UserRepo,
		c.OrgRepo,
		cfg.Cfg.JWT.Secret,
		cfg.Cfg.JWT.AccessTokenTTL,
		cfg.Cfg.JWT.Issuer,
	)
	c.TenantService = service.NewTenantService(c.OrgRepo, c.UserRepo)
	c.PositionCache = service.NewPositionCache(cfg.Cache)
	c.VesselService = service.NewVesselService(c.VesselRepo, c.PositionCache, cfg.Log)
	c.CrewService = service.NewCrewService(c.CrewRepo, c.VesselRepo)
	c.AlertService = service.NewAlertService(c.AlertRepo)
	c.InventoryService = service.NewInventoryService(
		cfg.DB,
		c.InventoryRepo,
		c.FuelRepo,
		c.BunkerRepo,
		c.VesselRepo,
		c.AlertService,
		cfg.Log,
	)
	c.ReportService = service.NewReportService(c.ReportRepo)
	c.MaintenanceService = service.NewMaintenanceService(c.MaintRepo, c.VesselRepo)
	c.FleetService = service.NewFleetService(
		c.VesselRepo,
		c.CrewRepo,
		c.AlertRepo,
		c.InventoryRepo,
		c.ThresholdRepo,
	)

	// Initialize handlers
	c.HealthHandler = handler.NewHealthHandler(c.DB, c.Cache)
	c.AuthHandler = handler.NewAuthHandler(c.AuthService)
	c.VesselHandler = handler.NewVesselHandler(c.VesselService)
	c.CrewHandler = handler.NewCrewHandler(c.CrewService)
	c.InventoryHandler = handler.NewInventoryHandler(c.InventoryService)
	c.AlertHandler = handler.NewAlertHandler(c.AlertService)
	c.ReportHandler = handler.NewReportHandler(c.ReportService)
	c.MaintenanceHandler = handler.NewMaintenanceHandler(c.MaintenanceService)
	c.FleetHandler = handler.NewFleetHandler(c.FleetService)

	return c
}

// UserLoader returns the live-user lookup used by the auth middleware.
func (c *Container) UserLoader() middleware.UserLoader {
	return func(ctx context.Context, userID string) (*middleware.AuthUser, error) {
		user, err := c.UserRepo.GetByID(ctx, userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, nil
		}

		au := &middleware.AuthUser{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			Role:        user.Role,
			Permissions: user.Permissions,
			IsActive:    user.IsActive,
		}
		if user.OrgID != nil {
			au.OrgID = *user.OrgID
		}
		return au, nil
	}
}
