package dto

import "ecomatch_backend/internal/models"

type BundeslandResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type RegionResponse struct {
	ID     uint   `json:"id"`
	Name   string `json:"name"`
	LandID uint   `json:"land_id"`
}

func NewRegionResponse(r *models.Region) RegionResponse {
	return RegionResponse{ID: r.ID, Name: r.Name, LandID: r.LandID}
}

// PlzLookupResponse resolves a postal code to its city, region and
// state. Region may be empty when no canonical assignment exists.
type PlzLookupResponse struct {
	Plz      string `json:"plz"`
	Ort      string `json:"ort"`
	Region   string `json:"region,omitempty"`
	RegionID *uint  `json:"region_id,omitempty"`
	Land     string `json:"land"`
	LandID   uint   `json:"land_id"`
}

func NewPlzLookupResponse(p *models.PlzOrt) *PlzLookupResponse {
	resp := &PlzLookupResponse{
		Plz:      p.Plz,
		Ort:      p.Ort,
		RegionID: p.RegionID,
		Land:     p.Land.Name,
		LandID:   p.LandID,
	}
	if p.Region != nil {
		resp.Region = p.Region.Name
	}
	return resp
}

type StreetListResponse struct {
	Plz      string   `json:"plz"`
	Strassen []string `json:"strassen"`
}
