package models

import "time"

type User struct {
	BaseModel
	Email        string      `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string      `gorm:"not null" json:"-"`
	Role         UserRole    `gorm:"type:varchar(20);not null;default:'client'" json:"role"`
	IsActive     bool        `gorm:"default:false" json:"is_active"`
	CurrentMode  CurrentMode `gorm:"type:varchar(10)" json:"current_mode,omitempty"`

	// Profile fields
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
	PhoneNumber string `gorm:"type:varchar(20)" json:"phone_number,omitempty"`
	Company     string `json:"company,omitempty"`
	Street      string `json:"street,omitempty"`
	HouseNumber string `gorm:"type:varchar(10)" json:"house_number,omitempty"`
	PostalCode  string `gorm:"type:varchar(10)" json:"postal_code,omitempty"`
	City        string `gorm:"type:varchar(100)" json:"city,omitempty"`

	// Geographic assignment, nullable
	RegionID *uint   `json:"region_id,omitempty"`
	Region   *Region `gorm:"foreignKey:RegionID" json:"region,omitempty"`

	// Optional 1:1 subscription
	SubscriptionID *string       `gorm:"type:uuid" json:"subscription_id,omitempty"`
	Subscription   *Subscription `gorm:"foreignKey:SubscriptionID" json:"subscription,omitempty"`

	ProfileImage string `json:"profile_image,omitempty"`

	// LastLogin participates in the activation token signature, so a
	// login invalidates previously issued activation links.
	LastLogin *time.Time `json:"last_login,omitempty"`

	// Relations
	ProviderProfile *ProviderProfile `gorm:"foreignKey:UserID" json:"provider_profile,omitempty"`
	RefreshTokens   []RefreshToken   `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
