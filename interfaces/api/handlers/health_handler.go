package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"proofroom/domain/repositories"
	"proofroom/infrastructure/redis"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db          *gorm.DB
	redisClient *redis.RedisClient
	syncJobRepo repositories.SyncJobRepository
}

func NewHealthHandler(db *gorm.DB, redisClient *redis.RedisClient, syncJobRepo repositories.SyncJobRepository) *HealthHandler {
	return &HealthHandler{
		db:          db,
		redisClient: redisClient,
		syncJobRepo: syncJobRepo,
	}
}

// ComponentHealth represents health status of a component
type ComponentHealth struct {
	Status  string `json:"status"` // "ok", "error", "unavailable"
	Message string `json:"message,omitempty"`
	Latency string `json:"latency,omitempty"`
}

// DetailedHealthResponse represents detailed health check response
type DetailedHealthResponse struct {
	Status     string                     `json:"status"` // "healthy", "degraded", "unhealthy"
	Timestamp  time.Time                  `json:"timestamp"`
	Components map[string]ComponentHealth `json:"components"`
	Metrics    *HealthMetrics             `json:"metrics,omitempty"`
}

// HealthMetrics contains queue depth counters
type HealthMetrics struct {
	PendingSyncJobs int64 `json:"pending_sync_jobs"`
}

// Health is the liveness probe
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now(),
	})
}

// DetailedHealth reports the status of every backing component
func (h *HealthHandler) DetailedHealth(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 10*time.Second)
	defer cancel()

	response := DetailedHealthResponse{
		Timestamp:  time.Now(),
		Components: make(map[string]ComponentHealth),
	}

	allHealthy := true
	hasCriticalFailure := false

	dbHealth := h.checkDatabase(ctx)
	response.Components["database"] = dbHealth
	if dbHealth.Status != "ok" {
		hasCriticalFailure = true
	}

	// Redis is optional; the app degrades to uncached reads without it
	redisHealth := h.checkRedis(ctx)
	response.Components["redis"] = redisHealth
	if redisHealth.Status == "error" {
		allHealthy = false
	}

	if dbHealth.Status == "ok" {
		response.Metrics = h.getMetrics(ctx)
	}

	if hasCriticalFailure {
		response.Status = "unhealthy"
	} else if !allHealthy {
		response.Status = "degraded"
	} else {
		response.Status = "healthy"
	}

	statusCode := fiber.StatusOK
	if response.Status == "unhealthy" {
		statusCode = fiber.StatusServiceUnavailable
	}

	return c.Status(statusCode).JSON(response)
}

func (h *HealthHandler) checkDatabase(ctx context.Context) ComponentHealth {
	start := time.Now()

	if h.db == nil {
		return ComponentHealth{
			Status:  "error",
			Message: "Database not configured",
		}
	}

	sqlDB, err := h.db.DB()
	if err != nil {
		return ComponentHealth{
			Status:  "error",
			Message: "Failed to get database connection: " + err.Error(),
		}
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return ComponentHealth{
			Status:  "error",
			Message: "Database ping failed: " + err.Error(),
		}
	}

	return ComponentHealth{
		Status:  "ok",
		Message: "Connected",
		Latency: time.Since(start).String(),
	}
}

func (h *HealthHandler) checkRedis(ctx context.Context) ComponentHealth {
	start := time.Now()

	if h.redisClient == nil {
		return ComponentHealth{
			Status:  "unavailable",
			Message: "Redis not configured",
		}
	}

	if err := h.redisClient.Ping(ctx); err != nil {
		return ComponentHealth{
			Status:  "error",
			Message: "Redis ping failed: " + err.Error(),
		}
	}

	return ComponentHealth{
		Status:  "ok",
		Message: "Connected",
		Latency: time.Since(start).String(),
	}
}

func (h *HealthHandler) getMetrics(ctx context.Context) *HealthMetrics {
	if h.syncJobRepo == nil {
		return nil
	}

	metrics := &HealthMetrics{}
	if pending, err := h.syncJobRepo.GetPendingJobs(ctx, 0); err == nil {
		metrics.PendingSyncJobs = int64(len(pending))
	}

	return metrics
}
