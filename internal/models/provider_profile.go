package models

// ProviderProfile is 1:1 with User and owns the set of offered service
// types and covered regions. Mutated by the owning user only.
type ProviderProfile struct {
	BaseModel
	UserID string `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	User   *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`

	Firma string `gorm:"type:varchar(255)" json:"firma,omitempty"`

	Services        []ServiceType `gorm:"many2many:provider_services" json:"services,omitempty"`
	CoverageRegions []Region      `gorm:"many2many:provider_coverage_regions" json:"coverage_regions,omitempty"`
}

// ServiceIDs returns the ids of the offered service types.
func (p *ProviderProfile) ServiceIDs() []uint {
	ids := make([]uint, 0, len(p.Services))
	for _, s := range p.Services {
		ids = append(ids, s.ID)
	}
	return ids
}

// RegionNames returns the names of the coverage regions. Matching
// compares these against the free-text region snapshot on requests.
func (p *ProviderProfile) RegionNames() []string {
	names := make([]string, 0, len(p.CoverageRegions))
	for _, r := range p.CoverageRegions {
		names = append(names, r.Name)
	}
	return names
}
