package models

// Four-level geographic hierarchy: Bundesland -> Region -> PlzOrt ->
// Strasse. Read-only reference data at request time. A Strasse always
// resolves to exactly one PlzOrt; PlzOrt.Region may be null but the
// Bundesland must not.

type Bundesland struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`

	Regionen []Region `gorm:"foreignKey:LandID" json:"regionen,omitempty"`
}

type Region struct {
	ID     uint       `gorm:"primaryKey" json:"id"`
	Name   string     `gorm:"type:varchar(100);not null;uniqueIndex:idx_region_name_land" json:"name"`
	LandID uint       `gorm:"not null;uniqueIndex:idx_region_name_land" json:"land_id"`
	Land   Bundesland `gorm:"foreignKey:LandID;constraint:OnDelete:CASCADE" json:"land,omitempty"`
}

type PlzOrt struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	Plz      string     `gorm:"type:varchar(5);not null;index" json:"plz"`
	Ort      string     `gorm:"type:varchar(100);not null" json:"ort"`
	RegionID *uint      `json:"region_id,omitempty"`
	Region   *Region    `gorm:"foreignKey:RegionID" json:"region,omitempty"`
	LandID   uint       `gorm:"not null" json:"land_id"`
	Land     Bundesland `gorm:"foreignKey:LandID;constraint:OnDelete:CASCADE" json:"land,omitempty"`

	Strassen []Strasse `gorm:"foreignKey:PlzOrtID" json:"strassen,omitempty"`
}

type Strasse struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"type:varchar(255);not null" json:"name"`
	PlzOrtID uint   `gorm:"not null;index" json:"plz_ort_id"`
	PlzOrt   PlzOrt `gorm:"foreignKey:PlzOrtID;constraint:OnDelete:CASCADE" json:"plz_ort,omitempty"`
}
