package handlers

import (
	"ecomatch_backend/internal/services"
	"ecomatch_backend/internal/validator"
)

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	Auth     *AuthHandler
	Users    *UserHandler
	Guest    *GuestHandler
	Requests *RequestHandler
	Offers   *OfferHandler
	Matching *MatchingHandler
	Profiles *ProviderProfileHandler
	Geo      *GeoHandler
	Catalog  *ServiceTypeHandler
}

// NewAppHandlers wires all handlers onto the service container.
func NewAppHandlers(container *services.Container, v *validator.Validator) *AppHandlers {
	base := NewBaseHandler(v)

	return &AppHandlers{
		Auth:     NewAuthHandler(base, container.Auth),
		Users:    NewUserHandler(base, container.Users),
		Guest:    NewGuestHandler(base, container.Leads),
		Requests: NewRequestHandler(base, container.Requests, container.Offers),
		Offers:   NewOfferHandler(base, container.Offers),
		Matching: NewMatchingHandler(base, container.Matching),
		Profiles: NewProviderProfileHandler(base, container.Profiles),
		Geo:      NewGeoHandler(base, container.Geo),
		Catalog:  NewServiceTypeHandler(base, container.Catalog),
	}
}
