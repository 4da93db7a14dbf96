package dto

import (
	"time"

	"ecomatch_backend/internal/models"
)

type CreateOfferRequest struct {
	RequestID string `json:"request_id" validate:"required,uuid4"`
	Message   string `json:"message" validate:"required,max=4000"`
}

type OfferResponse struct {
	ID         string    `json:"id"`
	RequestID  string    `json:"request_id"`
	ProviderID string    `json:"provider_id"`
	Message    string    `json:"message"`
	Accepted   bool      `json:"accepted"`
	CreatedAt  time.Time `json:"created_at"`

	ProviderName string `json:"provider_name,omitempty"`
	RequestTitle string `json:"request_title,omitempty"`
}

func NewOfferResponse(offer *models.Offer) *OfferResponse {
	resp := &OfferResponse{
		ID:         offer.ID,
		RequestID:  offer.RequestID,
		ProviderID: offer.ProviderID,
		Message:    offer.Message,
		Accepted:   offer.Accepted,
		CreatedAt:  offer.CreatedAt,
	}
	if offer.Provider != nil {
		resp.ProviderName = offer.Provider.FirstName + " " + offer.Provider.LastName
		if offer.Provider.Company != "" {
			resp.ProviderName = offer.Provider.Company
		}
	}
	if offer.Request.ID != "" {
		resp.RequestTitle = offer.Request.Title
	}
	return resp
}

func NewOfferResponseList(offers []models.Offer) []*OfferResponse {
	out := make([]*OfferResponse, 0, len(offers))
	for i := range offers {
		out = append(out, NewOfferResponse(&offers[i]))
	}
	return out
}
