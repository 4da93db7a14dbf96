package database

import (
	"fmt"

	"ecomatch_backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens a GORM connection for the given DSN. Callers own the
// handle; there is no package-level singleton.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// AutoMigrate creates or updates the schema for all models. The uuid
// extension must be available for the uuid_generate_v4 defaults.
func AutoMigrate(db *gorm.DB) error {
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp"`).Error; err != nil {
		return fmt.Errorf("failed to ensure uuid extension: %w", err)
	}

	return db.AutoMigrate(
		&models.Bundesland{},
		&models.Region{},
		&models.PlzOrt{},
		&models.Strasse{},
		&models.ServiceType{},
		&models.Subscription{},
		&models.User{},
		&models.RefreshToken{},
		&models.ProviderProfile{},
		&models.Lead{},
		&models.Request{},
		&models.RequestImage{},
		&models.Offer{},
		&models.AccessLog{},
	)
}
