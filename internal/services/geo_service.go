package services

import (
	"context"
	"errors"

	"ecomatch_backend/internal/repositories"
	"ecomatch_backend/internal/services/dto"
	"ecomatch_backend/pkg/apperrors"
)

// GeoService exposes the read-only geographic catalog.
type GeoService struct {
	geoRepo repositories.GeoRepository
}

func NewGeoService(geoRepo repositories.GeoRepository) *GeoService {
	return &GeoService{geoRepo: geoRepo}
}

func (s *GeoService) ListBundeslaender(ctx context.Context) ([]dto.BundeslandResponse, error) {
	laender, err := s.geoRepo.ListBundeslaender()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.BundeslandResponse, 0, len(laender))
	for _, l := range laender {
		out = append(out, dto.BundeslandResponse{ID: l.ID, Name: l.Name})
	}
	return out, nil
}

func (s *GeoService) ListRegionen(ctx context.Context, landID uint) ([]dto.RegionResponse, error) {
	regionen, err := s.geoRepo.ListRegionen(landID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.RegionResponse, 0, len(regionen))
	for i := range regionen {
		out = append(out, dto.NewRegionResponse(&regionen[i]))
	}
	return out, nil
}

// LookupPlz resolves a postal code to its city, region and state.
func (s *GeoService) LookupPlz(ctx context.Context, plz string) (*dto.PlzLookupResponse, error) {
	plzOrt, err := s.geoRepo.FindByPlz(plz)
	if err != nil {
		if errors.Is(err, repositories.ErrPlzNotFound) {
			return nil, apperrors.ErrPlzNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPlzLookupResponse(plzOrt), nil
}

// ListStreets returns the distinct street names for a postal code.
func (s *GeoService) ListStreets(ctx context.Context, plz string) (*dto.StreetListResponse, error) {
	plzOrt, err := s.geoRepo.FindByPlz(plz)
	if err != nil {
		if errors.Is(err, repositories.ErrPlzNotFound) {
			return nil, apperrors.ErrPlzNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	names, err := s.geoRepo.StreetNames(plzOrt.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.StreetListResponse{Plz: plz, Strassen: names}, nil
}
