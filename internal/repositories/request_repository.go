package repositories

import (
	"errors"

	"ecomatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrRequestNotFound = errors.New("request not found")

type RequestRepository interface {
	WithTx(tx *gorm.DB) RequestRepository

	Create(request *models.Request) error
	CreateImage(image *models.RequestImage) error
	FindByID(id string) (*models.Request, error)
	FindByClient(clientID string, limit, offset int) ([]models.Request, int64, error)
	FindAll(limit, offset int) ([]models.Request, int64, error)

	// FindOpenMatching returns open requests whose service set
	// intersects serviceIDs and whose snapshot region is one of
	// regionNames.
	FindOpenMatching(serviceIDs []uint, regionNames []string) ([]models.Request, error)

	// AcceptCAS transitions a request from "neu" to "akzeptiert" via
	// compare-and-swap. Zero rows affected means the request was not
	// open.
	AcceptCAS(requestID string) (int64, error)
}

type requestRepository struct {
	db *gorm.DB
}

func NewRequestRepository(db *gorm.DB) RequestRepository {
	return &requestRepository{db: db}
}

func (r *requestRepository) WithTx(tx *gorm.DB) RequestRepository {
	return &requestRepository{db: tx}
}

func (r *requestRepository) Create(request *models.Request) error {
	return r.db.Create(request).Error
}

func (r *requestRepository) CreateImage(image *models.RequestImage) error {
	return r.db.Create(image).Error
}

func (r *requestRepository) FindByID(id string) (*models.Request, error) {
	var request models.Request
	err := r.db.
		Preload("ServiceType").
		Preload("Services").
		Preload("Images").
		Preload("Client").
		First(&request, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *requestRepository) FindByClient(clientID string, limit, offset int) ([]models.Request, int64, error) {
	var requests []models.Request
	var total int64

	base := r.db.Model(&models.Request{}).Where("client_id = ?", clientID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.
		Preload("ServiceType").
		Preload("Services").
		Where("client_id = ?", clientID).
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, total, err
}

func (r *requestRepository) FindAll(limit, offset int) ([]models.Request, int64, error) {
	var requests []models.Request
	var total int64

	if err := r.db.Model(&models.Request{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.
		Preload("ServiceType").
		Preload("Services").
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, total, err
}

func (r *requestRepository) FindOpenMatching(serviceIDs []uint, regionNames []string) ([]models.Request, error) {
	if len(serviceIDs) == 0 || len(regionNames) == 0 {
		return nil, nil
	}

	// The primary service type and the additional service set both
	// count toward the intersection.
	var requests []models.Request
	err := r.db.
		Preload("ServiceType").
		Preload("Services").
		Where("status = ?", models.RequestStatusNew).
		Where("region IN ?", regionNames).
		Where(
			r.db.Where("service_type_id IN ?", serviceIDs).
				Or("id IN (?)", r.db.Table("request_services").
					Select("request_id").
					Where("service_type_id IN ?", serviceIDs)),
		).
		Order("created_at DESC").
		Find(&requests).Error
	return requests, err
}

func (r *requestRepository) AcceptCAS(requestID string) (int64, error) {
	result := r.db.Model(&models.Request{}).
		Where("id = ? AND status = ?", requestID, models.RequestStatusNew).
		Update("status", models.RequestStatusAccepted)
	return result.RowsAffected, result.Error
}
