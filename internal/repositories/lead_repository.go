package repositories

import (
	"errors"

	"ecomatch_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrLeadNotFound = errors.New("lead not found")

type LeadRepository interface {
	WithTx(tx *gorm.DB) LeadRepository

	FindByEmail(email string) (*models.Lead, error)
	FindByToken(token string) (*models.Lead, error)
	Save(lead *models.Lead) error
	MarkValidated(leadID string) error

	// FindUsableByTokenForUpdate loads a lead that is validated and
	// not yet consumed, taking a row lock. Must run inside a
	// transaction.
	FindUsableByTokenForUpdate(token string) (*models.Lead, error)

	// ConsumeCAS flips used_for_request via compare-and-swap. Returns
	// the number of rows affected; zero means the lead was already
	// consumed or not in a usable state.
	ConsumeCAS(leadID string) (int64, error)
}

type leadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) WithTx(tx *gorm.DB) LeadRepository {
	return &leadRepository{db: tx}
}

func (r *leadRepository) FindByEmail(email string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) FindByToken(token string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.First(&lead, "token = ?", token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) Save(lead *models.Lead) error {
	return r.db.Save(lead).Error
}

func (r *leadRepository) MarkValidated(leadID string) error {
	result := r.db.Model(&models.Lead{}).Where("id = ?", leadID).Update("validated", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrLeadNotFound
	}
	return nil
}

func (r *leadRepository) FindUsableByTokenForUpdate(token string) (*models.Lead, error) {
	var lead models.Lead
	err := r.db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("token = ? AND validated = ? AND used_for_request = ?", token, true, false).
		First(&lead).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrLeadNotFound
		}
		return nil, err
	}
	return &lead, nil
}

func (r *leadRepository) ConsumeCAS(leadID string) (int64, error) {
	result := r.db.Model(&models.Lead{}).
		Where("id = ? AND validated = ? AND used_for_request = ?", leadID, true, false).
		Update("used_for_request", true)
	return result.RowsAffected, result.Error
}
