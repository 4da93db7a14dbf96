package repositories

import (
	"errors"

	"ecomatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrServiceTypeNotFound = errors.New("service type not found")

type ServiceTypeRepository interface {
	FindAll() ([]models.ServiceType, error)
	FindByID(id uint) (*models.ServiceType, error)
	// FindByIDs returns only the service types that exist; unknown ids
	// are silently dropped.
	FindByIDs(ids []uint) ([]models.ServiceType, error)
	Create(st *models.ServiceType) error
	Count() (int64, error)
}

type serviceTypeRepository struct {
	db *gorm.DB
}

func NewServiceTypeRepository(db *gorm.DB) ServiceTypeRepository {
	return &serviceTypeRepository{db: db}
}

func (r *serviceTypeRepository) FindAll() ([]models.ServiceType, error) {
	var types []models.ServiceType
	err := r.db.Order("category, name").Find(&types).Error
	return types, err
}

func (r *serviceTypeRepository) FindByID(id uint) (*models.ServiceType, error) {
	var st models.ServiceType
	err := r.db.First(&st, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceTypeNotFound
		}
		return nil, err
	}
	return &st, nil
}

func (r *serviceTypeRepository) FindByIDs(ids []uint) ([]models.ServiceType, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var types []models.ServiceType
	err := r.db.Where("id IN ?", ids).Order("id").Find(&types).Error
	return types, err
}

func (r *serviceTypeRepository) Create(st *models.ServiceType) error {
	return r.db.Create(st).Error
}

func (r *serviceTypeRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.ServiceType{}).Count(&count).Error
	return count, err
}
