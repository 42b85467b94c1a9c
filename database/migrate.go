package database

import (
	"fmt"

	"gigslk_backend/internal/config"
	"gigslk_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var gormDB *gorm.DB

// ConnectGorm opens (or reuses) the GORM connection from the configured DSN.
func ConnectGorm() (*gorm.DB, error) {
	if gormDB != nil {
		return gormDB, nil
	}

	cfg := config.GetConfig()
	dsn := cfg.Database.DSN

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to GORM: %w", err)
	}

	gormDB = db
	return db, nil
}

// AutoMigrate creates or updates the schema for every model. Depends on the
// uuid-ossp extension for uuid_generate_v4().
func AutoMigrate() error {
	db, err := ConnectGorm()
	if err != nil {
		return err
	}

	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to ensure uuid-ossp extension: %w", err)
	}

	return db.AutoMigrate(
		&models.User{},
		&models.HostProfile{},
		&models.PerformerProfile{},
		&models.Gig{},
		&models.GigRequest{},
		&models.Booking{},
		&models.Notification{},
		&models.Message{},
	)
}
