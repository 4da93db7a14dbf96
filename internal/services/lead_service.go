package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"time"

	"ecomatch_backend/internal/auth"
	"ecomatch_backend/internal/email"
	"ecomatch_backend/internal/logger"
	"ecomatch_backend/internal/models"
	"ecomatch_backend/internal/repositories"
	"ecomatch_backend/internal/services/dto"
	"ecomatch_backend/internal/storage"
	"ecomatch_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// LeadService drives the guest workflow: initiate with an email
// address, confirm via the mailed token, then submit exactly one
// request which consumes the token.
type LeadService struct {
	db          *gorm.DB
	leadRepo    repositories.LeadRepository
	userRepo    repositories.UserRepository
	requestRepo repositories.RequestRepository
	serviceRepo repositories.ServiceTypeRepository
	geoRepo     repositories.GeoRepository
	mailer      email.Provider
	files       storage.Storage

	maxUploadSize int64
	allowedTypes  map[string]struct{}
}

func NewLeadService(
	db *gorm.DB,
	leadRepo repositories.LeadRepository,
	userRepo repositories.UserRepository,
	requestRepo repositories.RequestRepository,
	serviceRepo repositories.ServiceTypeRepository,
	geoRepo repositories.GeoRepository,
	mailer email.Provider,
	files storage.Storage,
	maxUploadSize int64,
	allowedTypes []string,
) *LeadService {
	allowed := make(map[string]struct{}, len(allowedTypes))
	for _, ct := range allowedTypes {
		allowed[ct] = struct{}{}
	}
	return &LeadService{
		db:            db,
		leadRepo:      leadRepo,
		userRepo:      userRepo,
		requestRepo:   requestRepo,
		serviceRepo:   serviceRepo,
		geoRepo:       geoRepo,
		mailer:        mailer,
		files:         files,
		maxUploadSize: maxUploadSize,
		allowedTypes:  allowed,
	}
}

// Initiate records a guest email and sends the confirmation link. A
// repeated initiate for an unconfirmed lead reissues the token; a
// confirmed or consumed lead is rejected.
func (s *LeadService) Initiate(ctx context.Context, req *dto.InitiateLeadRequest) (*dto.InitiateLeadResponse, error) {
	if !req.ConsentGiven {
		return nil, apperrors.ErrConsentRequired
	}

	lead, err := s.leadRepo.FindByEmail(req.Email)
	if err != nil && !errors.Is(err, repositories.ErrLeadNotFound) {
		return nil, apperrors.InternalError(err)
	}

	if lead != nil {
		switch lead.State() {
		case models.LeadStateConsumed:
			return nil, apperrors.ErrAlreadyUsed
		case models.LeadStateValidated:
			return nil, apperrors.ErrAlreadyConfirmed
		}
	} else {
		lead = &models.Lead{Email: req.Email}
	}

	token, err := auth.NewLeadToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	lead.Token = token
	lead.ConsentGiven = true

	if err := s.leadRepo.Save(lead); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.mailer.SendLeadConfirmation(lead.Email, token); err != nil {
		logger.CtxWithError(ctx, "failed to send lead confirmation", err, "lead_id", lead.ID)
		return nil, apperrors.Wrap(err, apperrors.CodeExternalServiceError, "lead",
			"Confirmation email could not be sent", http.StatusBadGateway)
	}

	logger.CtxInfo(ctx, "lead initiated", "lead_id", lead.ID)
	return &dto.InitiateLeadResponse{Email: lead.Email, State: lead.State()}, nil
}

// Confirm validates the mailed token. Confirming an already validated
// lead succeeds again with the same token; a consumed lead does not.
func (s *LeadService) Confirm(ctx context.Context, token string) (*dto.ConfirmLeadResponse, error) {
	lead, err := s.leadRepo.FindByToken(token)
	if err != nil {
		if errors.Is(err, repositories.ErrLeadNotFound) {
			return nil, apperrors.ErrInvalidLeadToken
		}
		return nil, apperrors.InternalError(err)
	}

	switch lead.State() {
	case models.LeadStateConsumed:
		return nil, apperrors.ErrAlreadyUsed
	case models.LeadStateInitiated:
		if err := s.leadRepo.MarkValidated(lead.ID); err != nil {
			return nil, apperrors.InternalError(err)
		}
		lead.Validated = true
		logger.CtxInfo(ctx, "lead confirmed", "lead_id", lead.ID)
	}

	return &dto.ConfirmLeadResponse{
		Email: lead.Email,
		Token: lead.Token,
		State: lead.State(),
	}, nil
}

// SubmitRequest turns a validated lead into a service request. The
// token row is locked for the duration, so two concurrent submissions
// with the same token cannot both succeed; on any failure the lead
// stays usable.
func (s *LeadService) SubmitRequest(ctx context.Context, req *dto.GuestSubmitRequest, images []*multipart.FileHeader) (*dto.RequestResponse, error) {
	// Reject bad uploads before touching the lead so the token stays
	// usable for a retry.
	if err := s.validateImages(images); err != nil {
		return nil, err
	}

	services, err := s.serviceRepo.FindByIDs(req.ServiceIDs)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(services) == 0 {
		return nil, apperrors.ErrNoValidService
	}

	var created *models.Request
	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		leads := s.leadRepo.WithTx(tx)
		users := s.userRepo.WithTx(tx)
		requests := s.requestRepo.WithTx(tx)

		lead, err := leads.FindUsableByTokenForUpdate(req.Token)
		if err != nil {
			if errors.Is(err, repositories.ErrLeadNotFound) {
				return apperrors.ErrInvalidLeadToken
			}
			return apperrors.InternalError(err)
		}

		user, err := s.resolveGuestUser(users, lead.Email, req)
		if err != nil {
			return err
		}

		request := &models.Request{
			ClientID:      &user.ID,
			Title:         req.Titel,
			Status:        models.RequestStatusNew,
			ServiceTypeID: services[0].ID,
			Services:      services,
			Description:   req.Beschreibung,
			Plz:           req.Plz,
			Stadt:         req.Stadt,
			Region:        req.Region,
			Land:          req.Land,
		}
		s.fillRegionFromPlz(request)

		if err := requests.Create(request); err != nil {
			return apperrors.InternalError(err)
		}

		if err := s.attachImages(ctx, requests, request, images); err != nil {
			return err
		}

		affected, err := leads.ConsumeCAS(lead.ID)
		if err != nil {
			return apperrors.InternalError(err)
		}
		if affected == 0 {
			return apperrors.ErrInvalidLeadToken
		}

		created = request
		return nil
	})
	if txErr != nil {
		var appErr *apperrors.AppError
		if apperrors.As(txErr, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(txErr)
	}

	logger.CtxInfo(ctx, "guest request submitted", "request_id", created.ID)
	return dto.NewRequestResponse(created), nil
}

// resolveGuestUser finds or creates the inactive account backing a
// guest submission. Contact fields update only when the account is
// freshly created.
func (s *LeadService) resolveGuestUser(users repositories.UserRepository, emailAddr string, req *dto.GuestSubmitRequest) (*models.User, error) {
	user, err := users.FindByEmail(emailAddr)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, apperrors.InternalError(err)
	}

	// Guests get an unusable password; setting one requires the
	// password reset flow after activation.
	placeholder, err := auth.NewRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	hash, err := auth.HashPassword(placeholder)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user = &models.User{
		Email:        emailAddr,
		PasswordHash: hash,
		Role:         models.UserRoleClient,
		IsActive:     false,
		FirstName:    req.Vorname,
		LastName:     req.Nachname,
		PhoneNumber:  req.Telefon,
		Company:      req.Firmenname,
		Street:       req.Strasse,
		HouseNumber:  req.Hausnummer,
		PostalCode:   req.Plz,
		City:         req.Stadt,
	}
	if err := users.Create(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// fillRegionFromPlz canonicalizes the address snapshot from the geo
// tables when the postal code is known. Submitted values win only when
// the lookup has nothing better.
func (s *LeadService) fillRegionFromPlz(request *models.Request) {
	plzOrt, err := s.geoRepo.FindByPlz(request.Plz)
	if err != nil {
		// Unknown PLZ: at least snap a supplied region name to its
		// canonical spelling so matching keeps working.
		if request.Region != "" {
			if region, err := s.geoRepo.FindRegionByName(request.Region); err == nil {
				request.Region = region.Name
			}
		}
		return
	}
	if plzOrt.Region != nil {
		request.Region = plzOrt.Region.Name
	}
	if request.Land == "" {
		request.Land = plzOrt.Land.Name
	}
	if request.Stadt == "" {
		request.Stadt = plzOrt.Ort
	}
}

func (s *LeadService) validateImages(images []*multipart.FileHeader) error {
	for _, header := range images {
		if s.maxUploadSize > 0 && header.Size > s.maxUploadSize {
			return apperrors.FileTooLarge(map[string]interface{}{
				"filename": header.Filename,
				"max_size": s.maxUploadSize,
			})
		}
		contentType := header.Header.Get("Content-Type")
		if _, ok := s.allowedTypes[contentType]; !ok {
			return apperrors.UnsupportedFileType(map[string]interface{}{
				"filename":     header.Filename,
				"content_type": contentType,
			})
		}
	}
	return nil
}

func (s *LeadService) attachImages(ctx context.Context, requests repositories.RequestRepository, request *models.Request, images []*multipart.FileHeader) error {
	for _, header := range images {
		file, err := header.Open()
		if err != nil {
			return apperrors.InternalError(err)
		}

		path := fmt.Sprintf("requests/%s/%s%s", request.ID, uuid.NewString(), filepath.Ext(header.Filename))
		contentType := header.Header.Get("Content-Type")
		err = s.files.Save(ctx, path, file, contentType)
		file.Close()
		if err != nil {
			return apperrors.InternalError(err)
		}

		meta, _ := json.Marshal(map[string]interface{}{
			"filename":     header.Filename,
			"size":         header.Size,
			"content_type": contentType,
			"uploaded_at":  time.Now().UTC().Format(time.RFC3339),
		})
		if err := requests.CreateImage(&models.RequestImage{
			RequestID: request.ID,
			Path:      path,
			Metadata:  datatypes.JSON(meta),
		}); err != nil {
			return apperrors.InternalError(err)
		}
	}
	return nil
}
