package services

import (
	"context"
	"errors"

	"ecomatch_backend/internal/logger"
	"ecomatch_backend/internal/models"
	"ecomatch_backend/internal/repositories"
	"ecomatch_backend/internal/services/dto"
	"ecomatch_backend/pkg/apperrors"
)

// RequestService manages registered clients' service requests. The
// address snapshot is fixed at creation and never follows later geo
// table changes.
type RequestService struct {
	requestRepo repositories.RequestRepository
	serviceRepo repositories.ServiceTypeRepository
	geoRepo     repositories.GeoRepository
	userRepo    repositories.UserRepository
}

func NewRequestService(
	requestRepo repositories.RequestRepository,
	serviceRepo repositories.ServiceTypeRepository,
	geoRepo repositories.GeoRepository,
	userRepo repositories.UserRepository,
) *RequestService {
	return &RequestService{
		requestRepo: requestRepo,
		serviceRepo: serviceRepo,
		geoRepo:     geoRepo,
		userRepo:    userRepo,
	}
}

// Create opens a new request for the authenticated client. The first
// resolvable service id becomes the primary type.
func (s *RequestService) Create(ctx context.Context, userID string, req *dto.CreateRequestRequest) (*dto.RequestResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if !user.Role.CanRequest() {
		return nil, apperrors.ErrForbidden
	}

	services, err := s.serviceRepo.FindByIDs(req.ServiceIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(services) == 0 {
		return nil, apperrors.ErrNoValidService
	}

	request := &models.Request{
		ClientID:      &user.ID,
		Title:         req.Title,
		Status:        models.RequestStatusNew,
		ServiceTypeID: services[0].ID,
		Services:      services,
		Description:   req.Description,
		Location:      req.Location,
		Plz:           req.Plz,
		Stadt:         req.Stadt,
	}

	// Snapshot region and state from the canonical geo rows; the free
	// text on the request never changes afterwards.
	if plzOrt, err := s.geoRepo.FindByPlz(req.Plz); err == nil {
		if plzOrt.Region != nil {
			request.Region = plzOrt.Region.Name
		}
		request.Land = plzOrt.Land.Name
		if request.Stadt == "" {
			request.Stadt = plzOrt.Ort
		}
	}

	if err := s.requestRepo.Create(request); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "request created", "request_id", request.ID, "client_id", user.ID)
	return dto.NewRequestResponse(request), nil
}

// Get returns one request. Clients see their own requests, admins see
// everything; providers go through the matching endpoint instead.
func (s *RequestService) Get(ctx context.Context, userID, requestID string) (*dto.RequestResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if !s.canView(user, request) {
		return nil, apperrors.ErrForbidden
	}
	return dto.NewRequestResponse(request), nil
}

// List returns the requests visible to the user: admins get all,
// everyone else their own.
func (s *RequestService) List(ctx context.Context, userID string, limit, offset int) ([]*dto.RequestResponse, int64, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, 0, apperrors.ErrUserNotFound
	}

	var requests []models.Request
	var total int64
	if user.Role == models.UserRoleAdmin {
		requests, total, err = s.requestRepo.FindAll(limit, offset)
	} else {
		requests, total, err = s.requestRepo.FindByClient(user.ID, limit, offset)
	}
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return dto.NewRequestResponseList(requests), total, nil
}

func (s *RequestService) canView(user *models.User, request *models.Request) bool {
	if user.Role == models.UserRoleAdmin {
		return true
	}
	return request.ClientID != nil && *request.ClientID == user.ID
}
