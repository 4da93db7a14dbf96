package models

// Offer belongs to exactly one Request and one provider User.
// Acceptance flips the Accepted flag and the parent request's status;
// competing offers are never deleted.
type Offer struct {
	BaseModel
	RequestID string  `gorm:"type:uuid;not null;index" json:"request_id"`
	Request   Request `gorm:"foreignKey:RequestID;constraint:OnDelete:CASCADE" json:"request,omitempty"`

	ProviderID string `gorm:"type:uuid;not null;index" json:"provider_id"`
	Provider   *User  `gorm:"foreignKey:ProviderID;constraint:OnDelete:CASCADE" json:"provider,omitempty"`

	Message  string `gorm:"type:text;not null" json:"message"`
	Accepted bool   `gorm:"default:false" json:"accepted"`
}
