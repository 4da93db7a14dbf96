package models

import (
	"gorm.io/datatypes"
)

// Request is a client's service request. ClientID is nullable so the
// request survives client deletion. The address snapshot (Plz, Stadt,
// Region, Land) is copied at creation time and never updated, even
// when the canonical geo tables change.
type Request struct {
	BaseModel
	ClientID *string `gorm:"type:uuid;index" json:"client_id,omitempty"`
	Client   *User   `gorm:"foreignKey:ClientID;constraint:OnDelete:SET NULL" json:"client,omitempty"`

	Title  string        `gorm:"type:varchar(160);not null" json:"title"`
	Status RequestStatus `gorm:"type:varchar(32);not null;default:'neu';index" json:"status"`

	ServiceTypeID uint          `gorm:"not null" json:"service_type_id"`
	ServiceType   ServiceType   `gorm:"foreignKey:ServiceTypeID" json:"service_type,omitempty"`
	Services      []ServiceType `gorm:"many2many:request_services" json:"services,omitempty"`

	Description string `gorm:"type:text" json:"description,omitempty"`
	Location    string `gorm:"type:varchar(255)" json:"location,omitempty"`

	// Address snapshot, immutable after creation
	Plz    string `gorm:"type:varchar(10)" json:"plz,omitempty"`
	Stadt  string `gorm:"type:varchar(100)" json:"stadt,omitempty"`
	Region string `gorm:"type:varchar(100);index" json:"region,omitempty"`
	Land   string `gorm:"type:varchar(100)" json:"land,omitempty"`

	Images []RequestImage `gorm:"foreignKey:RequestID" json:"images,omitempty"`
	Offers []Offer        `gorm:"foreignKey:RequestID" json:"offers,omitempty"`
}

// ServiceIDSet returns the request's service ids (primary included)
// as a set.
func (r *Request) ServiceIDSet() map[uint]struct{} {
	set := make(map[uint]struct{}, len(r.Services)+1)
	set[r.ServiceTypeID] = struct{}{}
	for _, s := range r.Services {
		set[s.ID] = struct{}{}
	}
	return set
}

// RequestImage is a pure attachment owned by a Request.
type RequestImage struct {
	BaseModel
	RequestID string         `gorm:"type:uuid;not null;index" json:"request_id"`
	Path      string         `gorm:"not null" json:"path"`
	Metadata  datatypes.JSON `json:"metadata,omitempty"` // original filename, size, content type
}
