package postgres

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"proofroom/domain/models"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

func NewDatabase(config DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		config.Host, config.User, config.Password, config.DBName, config.Port, config.SSLMode)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Admin{},
		&models.Source{},
		&models.Gallery{},
		&models.Photo{},
		&models.SyncJob{},
	); err != nil {
		return fmt.Errorf("failed to run auto migrations: %v", err)
	}

	// Constraints AutoMigrate cannot express: photos go down with their
	// gallery, galleries detach from a deleted source.
	migrations := []string{
		`DO $$ BEGIN
			ALTER TABLE photos DROP CONSTRAINT IF EXISTS fk_galleries_photos;
			ALTER TABLE photos ADD CONSTRAINT fk_galleries_photos
				FOREIGN KEY (gallery_id) REFERENCES galleries(id) ON DELETE CASCADE;
		EXCEPTION WHEN others THEN NULL; END $$`,
		`DO $$ BEGIN
			ALTER TABLE galleries DROP CONSTRAINT IF EXISTS fk_sources_galleries;
			ALTER TABLE galleries ADD CONSTRAINT fk_sources_galleries
				FOREIGN KEY (source_id) REFERENCES sources(id) ON DELETE SET NULL;
		EXCEPTION WHEN others THEN NULL; END $$`,
		`DO $$ BEGIN
			ALTER TABLE sync_jobs DROP CONSTRAINT IF EXISTS fk_galleries_sync_jobs;
			ALTER TABLE sync_jobs ADD CONSTRAINT fk_galleries_sync_jobs
				FOREIGN KEY (gallery_id) REFERENCES galleries(id) ON DELETE CASCADE;
		EXCEPTION WHEN others THEN NULL; END $$`,
	}

	for _, sql := range migrations {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("migration failed: %v", err)
		}
	}

	return nil
}
