package dto

import "ecomatch_backend/internal/models"

type CreateProviderProfileRequest struct {
	Firma      string `json:"firma" validate:"max=255"`
	ServiceIDs []uint `json:"service_ids" validate:"required,min=1,dive,gt=0"`
	RegionIDs  []uint `json:"region_ids" validate:"required,min=1,dive,gt=0"`
}

type UpdateProviderProfileRequest struct {
	Firma      *string `json:"firma" validate:"omitempty,max=255"`
	ServiceIDs []uint  `json:"service_ids" validate:"omitempty,min=1,dive,gt=0"`
	RegionIDs  []uint  `json:"region_ids" validate:"omitempty,min=1,dive,gt=0"`
}

type ProviderProfileResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Firma  string `json:"firma,omitempty"`

	Services []ServiceTypeResponse `json:"services"`
	Regions  []RegionResponse      `json:"regions"`
}

func NewProviderProfileResponse(profile *models.ProviderProfile) *ProviderProfileResponse {
	resp := &ProviderProfileResponse{
		ID:       profile.ID,
		UserID:   profile.UserID,
		Firma:    profile.Firma,
		Services: make([]ServiceTypeResponse, 0, len(profile.Services)),
		Regions:  make([]RegionResponse, 0, len(profile.CoverageRegions)),
	}
	for _, s := range profile.Services {
		resp.Services = append(resp.Services, NewServiceTypeResponse(&s))
	}
	for _, r := range profile.CoverageRegions {
		resp.Regions = append(resp.Regions, NewRegionResponse(&r))
	}
	return resp
}

func NewProviderProfileResponseList(profiles []models.ProviderProfile) []*ProviderProfileResponse {
	out := make([]*ProviderProfileResponse, 0, len(profiles))
	for i := range profiles {
		out = append(out, NewProviderProfileResponse(&profiles[i]))
	}
	return out
}
