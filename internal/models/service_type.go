package models

// ServiceType is static reference data shared by provider profiles and
// requests.
type ServiceType struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(100);not null" json:"name"`
	Category string `gorm:"type:varchar(100)" json:"category"`
}
