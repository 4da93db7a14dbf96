package models

import "time"

// AccessLog counts guest views per IP for public listings.
type AccessLog struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	IPAddress  string    `gorm:"type:varchar(45);not null;uniqueIndex:idx_access_ip_view" json:"ip_address"`
	ViewType   string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_access_ip_view" json:"view_type"`
	ViewCount  int       `gorm:"default:0" json:"view_count"`
	LastAccess time.Time `gorm:"autoUpdateTime" json:"last_access"`
}
