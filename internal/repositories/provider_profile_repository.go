package repositories

import (
	"errors"

	"ecomatch_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProfileNotFound      = errors.New("provider profile not found")
	ErrProfileAlreadyExists = errors.New("provider profile already exists")
)

type ProviderProfileRepository interface {
	WithTx(tx *gorm.DB) ProviderProfileRepository

	Create(profile *models.ProviderProfile) error
	FindByID(id string) (*models.ProviderProfile, error)
	FindByUserID(userID string) (*models.ProviderProfile, error)
	FindAll(limit, offset int) ([]models.ProviderProfile, int64, error)
	Update(profile *models.ProviderProfile) error
	ReplaceServices(profile *models.ProviderProfile, services []models.ServiceType) error
	ReplaceCoverageRegions(profile *models.ProviderProfile, regions []models.Region) error
	Delete(id string) error
}

type providerProfileRepository struct {
	db *gorm.DB
}

func NewProviderProfileRepository(db *gorm.DB) ProviderProfileRepository {
	return &providerProfileRepository{db: db}
}

func (r *providerProfileRepository) WithTx(tx *gorm.DB) ProviderProfileRepository {
	return &providerProfileRepository{db: tx}
}

func (r *providerProfileRepository) Create(profile *models.ProviderProfile) error {
	var existing models.ProviderProfile
	if err := r.db.Where("user_id = ?", profile.UserID).First(&existing).Error; err == nil {
		return ErrProfileAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return r.db.Create(profile).Error
}

func (r *providerProfileRepository) FindByID(id string) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	err := r.db.
		Preload("Services").
		Preload("CoverageRegions").
		First(&profile, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *providerProfileRepository) FindByUserID(userID string) (*models.ProviderProfile, error) {
	var profile models.ProviderProfile
	err := r.db.
		Preload("Services").
		Preload("CoverageRegions").
		First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *providerProfileRepository) FindAll(limit, offset int) ([]models.ProviderProfile, int64, error) {
	var profiles []models.ProviderProfile
	var total int64

	if err := r.db.Model(&models.ProviderProfile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.
		Preload("Services").
		Preload("CoverageRegions").
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&profiles).Error
	return profiles, total, err
}

func (r *providerProfileRepository) Update(profile *models.ProviderProfile) error {
	return r.db.Save(profile).Error
}

func (r *providerProfileRepository) ReplaceServices(profile *models.ProviderProfile, services []models.ServiceType) error {
	return r.db.Model(profile).Association("Services").Replace(services)
}

func (r *providerProfileRepository) ReplaceCoverageRegions(profile *models.ProviderProfile, regions []models.Region) error {
	return r.db.Model(profile).Association("CoverageRegions").Replace(regions)
}

func (r *providerProfileRepository) Delete(id string) error {
	return r.db.Select("Services", "CoverageRegions").Delete(&models.ProviderProfile{BaseModel: models.BaseModel{ID: id}}).Error
}
