package handlers

import (
	"gorm.io/gorm"

	"proofroom/domain/repositories"
	"proofroom/domain/services"
	"proofroom/infrastructure/redis"
)

// Services contains all the services needed for handlers
type Services struct {
	AuthService      services.AuthService
	SourceService    services.SourceService
	GalleryService   services.GalleryService
	SelectionService services.SelectionService
}

// Handlers contains all HTTP handlers
type Handlers struct {
	Auth    *AuthHandler
	Source  *SourceHandler
	Gallery *GalleryHandler
	Client  *ClientHandler
	Health  *HealthHandler
}

// NewHandlers creates a new instance of Handlers with all dependencies
func NewHandlers(svcs *Services, db *gorm.DB, redisClient *redis.RedisClient, syncJobRepo repositories.SyncJobRepository) *Handlers {
	return &Handlers{
		Auth:    NewAuthHandler(svcs.AuthService),
		Source:  NewSourceHandler(svcs.SourceService),
		Gallery: NewGalleryHandler(svcs.GalleryService, svcs.SelectionService),
		Client:  NewClientHandler(svcs.GalleryService, svcs.SelectionService),
		Health:  NewHealthHandler(db, redisClient, syncJobRepo),
	}
}
