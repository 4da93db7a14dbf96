package services

import (
	"context"

	"ecomatch_backend/internal/repositories"
	"ecomatch_backend/internal/services/dto"
	"ecomatch_backend/pkg/apperrors"
)

// ServiceTypeService exposes the public service catalog.
type ServiceTypeService struct {
	serviceRepo repositories.ServiceTypeRepository
}

func NewServiceTypeService(serviceRepo repositories.ServiceTypeRepository) *ServiceTypeService {
	return &ServiceTypeService{serviceRepo: serviceRepo}
}

func (s *ServiceTypeService) List(ctx context.Context) ([]dto.ServiceTypeResponse, error) {
	types, err := s.serviceRepo.FindAll()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	out := make([]dto.ServiceTypeResponse, 0, len(types))
	for i := range types {
		out = append(out, dto.NewServiceTypeResponse(&types[i]))
	}
	return out, nil
}
