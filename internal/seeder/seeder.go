package seeder

import (
	"errors"

	"ecomatch_backend/internal/auth"
	"ecomatch_backend/internal/logger"
	"ecomatch_backend/internal/models"

	"gorm.io/gorm"
)

// Seed loads the reference data when the tables are empty. Safe to run
// on every startup.
func Seed(db *gorm.DB) error {
	if err := seedGeo(db); err != nil {
		return err
	}
	return seedServiceTypes(db)
}

// seedGeo loads the Bundesland/Region hierarchy. Postal codes and
// streets come from a separate import, not from here.
func seedGeo(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Bundesland{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for land, regionen := range bundeslaender {
			bl := models.Bundesland{Name: land}
			if err := tx.Create(&bl).Error; err != nil {
				return err
			}
			for _, name := range regionen {
				if err := tx.Create(&models.Region{Name: name, LandID: bl.ID}).Error; err != nil {
					return err
				}
			}
		}
		logger.Info("seeded geo hierarchy", "bundeslaender", len(bundeslaender))
		return nil
	})
}

func seedServiceTypes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ServiceType{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, st := range serviceTypes {
			entry := st
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		}
		logger.Info("seeded service catalog", "services", len(serviceTypes))
		return nil
	})
}

// SeedFirstAdmin creates the initial admin account when no admin
// exists yet. Skipped when email or password is unset.
func SeedFirstAdmin(db *gorm.DB, email, password string) error {
	if email == "" || password == "" {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var existing models.User
		err := tx.Where("role = ?", models.UserRoleAdmin).First(&existing).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := auth.HashPassword(password)
		if err != nil {
			return err
		}
		admin := &models.User{
			Email:        email,
			PasswordHash: hash,
			Role:         models.UserRoleAdmin,
			IsActive:     true,
		}
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		logger.Info("seeded first admin", "email", email)
		return nil
	})
}
