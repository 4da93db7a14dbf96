package repositories

import (
	"errors"

	"ecomatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPlzNotFound = errors.New("postal code not found")

type GeoRepository interface {
	ListBundeslaender() ([]models.Bundesland, error)
	ListRegionen(landID uint) ([]models.Region, error)
	FindRegionByName(name string) (*models.Region, error)
	// FindRegionsByIDs returns only the regions that exist; unknown ids
	// are silently dropped.
	FindRegionsByIDs(ids []uint) ([]models.Region, error)

	// FindByPlz returns the first PlzOrt entry for a postal code with
	// its region and state preloaded.
	FindByPlz(plz string) (*models.PlzOrt, error)

	// StreetNames returns the distinct street names for a PlzOrt.
	StreetNames(plzOrtID uint) ([]string, error)

	CountBundeslaender() (int64, error)
}

type geoRepository struct {
	db *gorm.DB
}

func NewGeoRepository(db *gorm.DB) GeoRepository {
	return &geoRepository{db: db}
}

func (r *geoRepository) ListBundeslaender() ([]models.Bundesland, error) {
	var laender []models.Bundesland
	err := r.db.Order("name").Find(&laender).Error
	return laender, err
}

func (r *geoRepository) ListRegionen(landID uint) ([]models.Region, error) {
	var regionen []models.Region
	query := r.db.Order("name")
	if landID != 0 {
		query = query.Where("land_id = ?", landID)
	}
	err := query.Find(&regionen).Error
	return regionen, err
}

// FindRegionByName matches case-insensitively so free-text region
// input can be snapped to the canonical spelling.
func (r *geoRepository) FindRegionByName(name string) (*models.Region, error) {
	var region models.Region
	err := r.db.First(&region, "LOWER(name) = LOWER(?)", name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}
	return &region, nil
}

func (r *geoRepository) FindRegionsByIDs(ids []uint) ([]models.Region, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var regionen []models.Region
	err := r.db.Where("id IN ?", ids).Order("id").Find(&regionen).Error
	return regionen, err
}

func (r *geoRepository) FindByPlz(plz string) (*models.PlzOrt, error) {
	var plzOrt models.PlzOrt
	err := r.db.
		Preload("Region").
		Preload("Land").
		First(&plzOrt, "plz = ?", plz).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlzNotFound
		}
		return nil, err
	}
	return &plzOrt, nil
}

func (r *geoRepository) StreetNames(plzOrtID uint) ([]string, error) {
	var names []string
	err := r.db.Model(&models.Strasse{}).
		Where("plz_ort_id = ?", plzOrtID).
		Distinct("name").
		Order("name").
		Pluck("name", &names).Error
	return names, err
}

func (r *geoRepository) CountBundeslaender() (int64, error) {
	var count int64
	err := r.db.Model(&models.Bundesland{}).Count(&count).Error
	return count, err
}
