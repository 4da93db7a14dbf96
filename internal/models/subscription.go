package models

import "time"

// Subscription is an optional 1:1 attachment to a User. Billing is out
// of scope; only the active flag and expiry are tracked.
type Subscription struct {
	BaseModel
	IsActive  bool       `gorm:"default:false" json:"is_active"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}
