package dto

import (
	"time"

	"ecomatch_backend/internal/models"
)

type CreateRequestRequest struct {
	Title       string `json:"title" validate:"required,max=160"`
	Description string `json:"description" validate:"max=4000"`
	Location    string `json:"location" validate:"max=255"`

	Plz   string `json:"plz" validate:"required,plz"`
	Stadt string `json:"stadt" validate:"required,max=100"`

	// At least one service id; the first one becomes the primary type.
	ServiceIDs []uint `json:"service_ids" validate:"required,min=1,dive,gt=0"`
}

type RequestResponse struct {
	ID          string               `json:"id"`
	ClientID    *string              `json:"client_id,omitempty"`
	Title       string               `json:"title"`
	Status      models.RequestStatus `json:"status"`
	Description string               `json:"description,omitempty"`
	Location    string               `json:"location,omitempty"`

	Plz    string `json:"plz,omitempty"`
	Stadt  string `json:"stadt,omitempty"`
	Region string `json:"region,omitempty"`
	Land   string `json:"land,omitempty"`

	ServiceTypeID uint                  `json:"service_type_id"`
	Services      []ServiceTypeResponse `json:"services,omitempty"`
	Images        []RequestImageInfo    `json:"images,omitempty"`
	OfferCount    int                   `json:"offer_count"`

	CreatedAt time.Time `json:"created_at"`
}

type RequestImageInfo struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

func NewRequestResponse(req *models.Request) *RequestResponse {
	resp := &RequestResponse{
		ID:            req.ID,
		ClientID:      req.ClientID,
		Title:         req.Title,
		Status:        req.Status,
		Description:   req.Description,
		Location:      req.Location,
		Plz:           req.Plz,
		Stadt:         req.Stadt,
		Region:        req.Region,
		Land:          req.Land,
		ServiceTypeID: req.ServiceTypeID,
		OfferCount:    len(req.Offers),
		CreatedAt:     req.CreatedAt,
	}
	for _, s := range req.Services {
		resp.Services = append(resp.Services, NewServiceTypeResponse(&s))
	}
	for _, img := range req.Images {
		resp.Images = append(resp.Images, RequestImageInfo{ID: img.ID, Path: img.Path})
	}
	return resp
}

func NewRequestResponseList(requests []models.Request) []*RequestResponse {
	out := make([]*RequestResponse, 0, len(requests))
	for i := range requests {
		out = append(out, NewRequestResponse(&requests[i]))
	}
	return out
}

type ServiceTypeResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
}

func NewServiceTypeResponse(st *models.ServiceType) ServiceTypeResponse {
	return ServiceTypeResponse{ID: st.ID, Name: st.Name, Category: st.Category}
}
