package repositories

import (
	"errors"

	"ecomatch_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOfferNotFound = errors.New("offer not found")

type OfferRepository interface {
	WithTx(tx *gorm.DB) OfferRepository

	Create(offer *models.Offer) error
	FindByRequest(requestID string) ([]models.Offer, error)
	FindByRequestAndProvider(requestID, providerID string) (*models.Offer, error)
	FindByProvider(providerID string, limit, offset int) ([]models.Offer, int64, error)
	MarkAccepted(offerID string) error
}

type offerRepository struct {
	db *gorm.DB
}

func NewOfferRepository(db *gorm.DB) OfferRepository {
	return &offerRepository{db: db}
}

func (r *offerRepository) WithTx(tx *gorm.DB) OfferRepository {
	return &offerRepository{db: tx}
}

func (r *offerRepository) Create(offer *models.Offer) error {
	return r.db.Create(offer).Error
}

func (r *offerRepository) FindByRequest(requestID string) ([]models.Offer, error) {
	var offers []models.Offer
	err := r.db.
		Preload("Provider").
		Where("request_id = ?", requestID).
		Order("created_at").
		Find(&offers).Error
	return offers, err
}

func (r *offerRepository) FindByProvider(providerID string, limit, offset int) ([]models.Offer, int64, error) {
	var offers []models.Offer
	var total int64

	base := r.db.Model(&models.Offer{}).Where("provider_id = ?", providerID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := r.db.
		Preload("Request").
		Where("provider_id = ?", providerID).
		Limit(limit).Offset(offset).
		Order("created_at DESC").
		Find(&offers).Error
	return offers, total, err
}

func (r *offerRepository) FindByRequestAndProvider(requestID, providerID string) (*models.Offer, error) {
	var offer models.Offer
	err := r.db.
		Preload("Provider").
		First(&offer, "request_id = ? AND provider_id = ?", requestID, providerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOfferNotFound
		}
		return nil, err
	}
	return &offer, nil
}

func (r *offerRepository) MarkAccepted(offerID string) error {
	result := r.db.Model(&models.Offer{}).Where("id = ?", offerID).Update("accepted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOfferNotFound
	}
	return nil
}
