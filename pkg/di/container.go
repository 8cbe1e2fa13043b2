package di

import (
	"context"
	"time"

	"gorm.io/gorm"

	"proofroom/application/serviceimpl"
	"proofroom/domain/repositories"
	"proofroom/domain/services"
	"proofroom/infrastructure/googledrive"
	"proofroom/infrastructure/postgres"
	"proofroom/infrastructure/redis"
	"proofroom/infrastructure/worker"
	"proofroom/interfaces/api/handlers"
	"proofroom/pkg/config"
	"proofroom/pkg/logger"
	"proofroom/pkg/scheduler"
)

// stuckJobThreshold is how long a running sync job may go without a
// progress update before the reset job declares it dead.
const stuckJobThreshold = 15 * time.Minute

type Container struct {
	// Configuration
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redis.RedisClient
	EventScheduler scheduler.EventScheduler
	GoogleDrive    *googledrive.DriveClient

	// Repositories
	AdminRepository   repositories.AdminRepository
	SourceRepository  repositories.SourceRepository
	GalleryRepository repositories.GalleryRepository
	PhotoRepository   repositories.PhotoRepository
	SyncJobRepository repositories.SyncJobRepository

	// Services
	AuthService      services.AuthService
	SyncService      services.SyncService
	SelectionService services.SelectionService
	SourceService    services.SourceService
	GalleryService   services.GalleryService

	// Workers
	SyncWorker *worker.SyncWorker
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}

	if err := c.initInfrastructure(); err != nil {
		return err
	}

	if err := c.initRepositories(); err != nil {
		return err
	}

	if err := c.initServices(); err != nil {
		return err
	}

	if err := c.initWorkers(); err != nil {
		return err
	}

	if err := c.initScheduler(); err != nil {
		return err
	}

	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	c.Config = cfg
	logger.Startup("config_loaded", "Configuration loaded", nil)
	return nil
}

func (c *Container) initInfrastructure() error {
	// Initialize Database
	dbConfig := postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	}

	db, err := postgres.NewDatabase(dbConfig)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Startup("db_connected", "Database connected", nil)

	// Run migrations
	if err := postgres.Migrate(db); err != nil {
		return err
	}
	logger.Startup("db_migrated", "Database migrated", nil)

	// Initialize Redis; the app runs uncached without it
	redisClient, err := redis.NewRedisClient(c.Config.Redis)
	if err != nil {
		logger.StartupWarn("redis_connection_failed", "Redis connection failed, running without cache", map[string]interface{}{"error": err.Error()})
	} else {
		c.RedisClient = redisClient
		logger.Startup("redis_connected", "Redis connected", nil)
	}

	// Initialize Google Drive Client
	c.GoogleDrive = googledrive.NewDriveClient(c.Config.GoogleDrive)
	if err := c.GoogleDrive.ValidateConfig(); err != nil {
		logger.StartupWarn("google_drive_not_configured", "Google Drive not configured", map[string]interface{}{"error": err.Error()})
	} else {
		logger.Startup("google_drive_initialized", "Google Drive client initialized", nil)
	}

	return nil
}

func (c *Container) initRepositories() error {
	c.AdminRepository = postgres.NewAdminRepository(c.DB)
	c.SourceRepository = postgres.NewSourceRepository(c.DB)
	c.GalleryRepository = postgres.NewGalleryRepository(c.DB)
	c.PhotoRepository = postgres.NewPhotoRepository(c.DB)
	c.SyncJobRepository = postgres.NewSyncJobRepository(c.DB)
	logger.Startup("repositories_initialized", "Repositories initialized", nil)
	return nil
}

func (c *Container) initServices() error {
	c.AuthService = serviceimpl.NewAuthService(c.AdminRepository, c.Config.JWT.Secret)
	c.SyncService = serviceimpl.NewSyncService(c.GoogleDrive, c.PhotoRepository)
	c.SelectionService = serviceimpl.NewSelectionService(c.GalleryRepository, c.PhotoRepository)
	c.SourceService = serviceimpl.NewSourceService(c.SourceRepository, c.GalleryRepository, c.SyncService)

	// GalleryService is initialized after workers (needs SyncWorker)

	logger.Startup("services_initialized", "Services initialized", nil)
	return nil
}

func (c *Container) initWorkers() error {
	c.SyncWorker = worker.NewSyncWorker(
		c.SyncService,
		c.GalleryRepository,
		c.SourceRepository,
		c.SyncJobRepository,
		c.RedisClient,
	)
	c.SyncWorker.Start()

	c.GalleryService = serviceimpl.NewGalleryService(
		c.GalleryRepository,
		c.PhotoRepository,
		c.SourceRepository,
		c.SyncJobRepository,
		c.SyncService,
		c.SyncWorker,
		c.RedisClient,
	)
	logger.Startup("gallery_service_initialized", "Gallery service initialized", nil)

	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()
	c.EventScheduler.Start()
	logger.Startup("scheduler_started", "Event scheduler started", nil)

	// Reset sync jobs whose worker died, then let the worker retry the queue
	err := c.EventScheduler.AddJob("sync-job-reset", "*/10 * * * *", func() {
		ctx := context.Background()
		reset, err := c.SyncJobRepository.ResetStuck(ctx, stuckJobThreshold)
		if err != nil {
			logger.SchedulerError("sync_job_reset_error", "Stuck sync job reset failed", err, nil)
			return
		}
		if reset > 0 {
			logger.Scheduler("sync_job_reset_done", "Reset stuck sync jobs", map[string]interface{}{"count": reset})
			c.SyncWorker.TriggerSync()
		}
	})
	if err != nil {
		logger.StartupWarn("sync_job_reset_schedule_failed", "Failed to schedule sync job reset", map[string]interface{}{"error": err.Error()})
	} else {
		logger.Startup("sync_job_reset_scheduled", "Sync job reset scheduled (every 10 minutes)", nil)
	}

	return nil
}

func (c *Container) Cleanup() error {
	logger.Startup("cleanup_started", "Starting cleanup...", nil)

	// Stop sync worker
	if c.SyncWorker != nil {
		if c.SyncWorker.IsRunning() {
			c.SyncWorker.Stop()
		}
	}

	// Stop scheduler
	if c.EventScheduler != nil {
		if c.EventScheduler.IsRunning() {
			c.EventScheduler.Stop()
			logger.Startup("scheduler_stopped", "Event scheduler stopped", nil)
		}
	}

	// Close Redis connection
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.StartupWarn("redis_close_failed", "Failed to close Redis connection", map[string]interface{}{"error": err.Error()})
		} else {
			logger.Startup("redis_closed", "Redis connection closed", nil)
		}
	}

	// Close database connection
	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.StartupWarn("db_close_failed", "Failed to close database connection", map[string]interface{}{"error": err.Error()})
			} else {
				logger.Startup("db_closed", "Database connection closed", nil)
			}
		}
	}

	logger.Startup("cleanup_completed", "Cleanup completed", nil)
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		AuthService:      c.AuthService,
		SourceService:    c.SourceService,
		GalleryService:   c.GalleryService,
		SelectionService: c.SelectionService,
	}
}
