package repositories

import (
	"ecomatch_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AccessLogRepository interface {
	// Bump increments the view counter for an ip/view-type pair,
	// creating the row on first access.
	Bump(ip, viewType string) error
}

type accessLogRepository struct {
	db *gorm.DB
}

func NewAccessLogRepository(db *gorm.DB) AccessLogRepository {
	return &accessLogRepository{db: db}
}

func (r *accessLogRepository) Bump(ip, viewType string) error {
	return r.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "ip_address"}, {Name: "view_type"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"view_count": gorm.Expr("access_logs.view_count + 1"),
		}),
	}).Create(&models.AccessLog{
		IPAddress: ip,
		ViewType:  viewType,
		ViewCount: 1,
	}).Error
}
