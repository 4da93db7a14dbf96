package services

import (
	"context"
	"errors"

	"ecomatch_backend/internal/email"
	"ecomatch_backend/internal/logger"
	"ecomatch_backend/internal/models"
	"ecomatch_backend/internal/repositories"
	"ecomatch_backend/internal/services/dto"
	"ecomatch_backend/pkg/apperrors"
)

// OfferService lets providers bid on open requests and take exactly
// one of them per request.
type OfferService struct {
	offerRepo   repositories.OfferRepository
	requestRepo repositories.RequestRepository
	userRepo    repositories.UserRepository
	mailer      email.Provider
}

func NewOfferService(
	offerRepo repositories.OfferRepository,
	requestRepo repositories.RequestRepository,
	userRepo repositories.UserRepository,
	mailer email.Provider,
) *OfferService {
	return &OfferService{
		offerRepo:   offerRepo,
		requestRepo: requestRepo,
		userRepo:    userRepo,
		mailer:      mailer,
	}
}

// Create places an offer on an open request. Only provider roles may
// offer, and only while the request status is still "neu".
func (s *OfferService) Create(ctx context.Context, userID string, req *dto.CreateOfferRequest) (*dto.OfferResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if !user.Role.CanOffer() {
		return nil, apperrors.ErrNotAProvider
	}

	request, err := s.requestRepo.FindByID(req.RequestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if request.Status != models.RequestStatusNew {
		return nil, apperrors.ErrRequestNotOpen
	}

	offer := &models.Offer{
		RequestID:  request.ID,
		ProviderID: user.ID,
		Message:    req.Message,
	}
	if err := s.offerRepo.Create(offer); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "offer created", "offer_id", offer.ID, "request_id", request.ID)
	return dto.NewOfferResponse(offer), nil
}

// Accept lets a provider take an open request, typically straight
// from the matching list. The status change is a compare-and-swap on
// "neu", so a second acceptance loses cleanly. The provider's offer
// on the request gets the accepted flag; a provider without a prior
// offer gets one created. Competing offers stay untouched.
func (s *OfferService) Accept(ctx context.Context, userID, requestID string) (*dto.OfferResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if !user.Role.CanOffer() {
		return nil, apperrors.ErrNotAProvider
	}

	request, err := s.requestRepo.FindByID(requestID)
	if err != nil {
		if errors.Is(err, repositories.ErrRequestNotFound) {
			return nil, apperrors.ErrRequestNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	affected, err := s.requestRepo.AcceptCAS(requestID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if affected == 0 {
		return nil, apperrors.ErrRequestNotOpen
	}
	request.Status = models.RequestStatusAccepted

	offer, err := s.offerRepo.FindByRequestAndProvider(requestID, user.ID)
	switch {
	case err == nil:
		if err := s.offerRepo.MarkAccepted(offer.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		offer.Accepted = true
	case errors.Is(err, repositories.ErrOfferNotFound):
		offer = &models.Offer{
			RequestID:  request.ID,
			ProviderID: user.ID,
			Accepted:   true,
		}
		if err := s.offerRepo.Create(offer); err != nil {
			return nil, apperrors.InternalError(err)
		}
		offer.Provider = user
	default:
		return nil, apperrors.InternalError(err)
	}
	offer.Request = *request

	s.notifyClient(ctx, request)

	logger.CtxInfo(ctx, "request accepted", "request_id", request.ID, "provider_id", user.ID)
	return dto.NewOfferResponse(offer), nil
}

// ListForRequest returns all offers on a request, visible to the
// request owner and admins.
func (s *OfferService) ListForRequest(ctx context.Context, userID, requestID string) ([]*dto.OfferResponse, error) {
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
	if !s.canViewOffers(user, request) {
		return nil, apperrors.ErrForbidden
	}

	offers, err := s.offerRepo.FindByRequest(requestID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewOfferResponseList(offers), nil
}

// ListOwn returns the authenticated provider's offers.
func (s *OfferService) ListOwn(ctx context.Context, userID string, limit, offset int) ([]*dto.OfferResponse, int64, error) {
	offers, total, err := s.offerRepo.FindByProvider(userID, limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}
	return dto.NewOfferResponseList(offers), total, nil
}

func (s *OfferService) canViewOffers(user *models.User, request *models.Request) bool {
	if user.Role == models.UserRoleAdmin {
		return true
	}
	return request.ClientID != nil && *request.ClientID == user.ID
}

// notifyClient mails the request owner. Delivery failures are logged,
// never surfaced; the acceptance already committed.
func (s *OfferService) notifyClient(ctx context.Context, request *models.Request) {
	if request.ClientID == nil {
		return
	}
	client, err := s.userRepo.FindByID(*request.ClientID)
	if err != nil {
		logger.CtxWithError(ctx, "failed to load client for acceptance mail", err, "request_id", request.ID)
		return
	}
	if err := s.mailer.SendRequestAccepted(client.Email, request.Title); err != nil {
		logger.CtxWithError(ctx, "failed to send acceptance mail", err, "request_id", request.ID)
	}
}
