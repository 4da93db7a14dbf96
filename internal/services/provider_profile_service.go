package services

import (
	"context"
	"errors"
	"time"

	"ecomatch_backend/internal/logger"
	"ecomatch_backend/internal/models"
	"ecomatch_backend/internal/repositories"
	"ecomatch_backend/internal/services/dto"
	"ecomatch_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// ProviderProfileService manages provider profiles. Creating a profile
// upgrades a client role to "both"; deleting the profile downgrades a
// pure provider back to client capability.
type ProviderProfileService struct {
	db          *gorm.DB
	profileRepo repositories.ProviderProfileRepository
	userRepo    repositories.UserRepository
	serviceRepo repositories.ServiceTypeRepository
	geoRepo     repositories.GeoRepository
	accessRepo  repositories.AccessLogRepository
	subRepo     repositories.SubscriptionRepository
}

func NewProviderProfileService(
	db *gorm.DB,
	profileRepo repositories.ProviderProfileRepository,
	userRepo repositories.UserRepository,
	serviceRepo repositories.ServiceTypeRepository,
	geoRepo repositories.GeoRepository,
	accessRepo repositories.AccessLogRepository,
	subRepo repositories.SubscriptionRepository,
) *ProviderProfileService {
	return &ProviderProfileService{
		db:          db,
		profileRepo: profileRepo,
		userRepo:    userRepo,
		serviceRepo: serviceRepo,
		geoRepo:     geoRepo,
		accessRepo:  accessRepo,
		subRepo:     subRepo,
	}
}

// TrialDays is the length of the subscription granted with a new
// provider profile.
const TrialDays = 30

// Create attaches a provider profile to the authenticated user and
// adjusts the stored role in the same transaction.
func (s *ProviderProfileService) Create(ctx context.Context, userID string, req *dto.CreateProviderProfileRequest) (*dto.ProviderProfileResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	if user.ProviderProfile != nil {
		return nil, apperrors.ErrProfileAlreadyExists
	}

	services, err := s.resolveServices(req.ServiceIDs)
	if err != nil {
		return nil, err
	}
	regions, err := s.resolveRegions(req.RegionIDs)
	if err != nil {
		return nil, err
	}

	profile := &models.ProviderProfile{
		UserID:          user.ID,
		Firma:           req.Firma,
		Services:        services,
		CoverageRegions: regions,
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		profiles := s.profileRepo.WithTx(tx)
		users := s.userRepo.WithTx(tx)

		if err := profiles.Create(profile); err != nil {
			if errors.Is(err, repositories.ErrProfileAlreadyExists) {
				return apperrors.ErrProfileAlreadyExists
			}
			return apperrors.InternalError(err)
		}

		newRole := upgradedRole(user.Role)
		if newRole != user.Role {
			if err := users.UpdateRole(user.ID, newRole); err != nil {
				return apperrors.InternalError(err)
			}
		}

		// New providers start with a trial subscription.
		if user.SubscriptionID == nil {
			expires := time.Now().AddDate(0, 0, TrialDays)
			sub := &models.Subscription{IsActive: true, ExpiresAt: &expires}
			if err := s.subRepo.WithTx(tx).Create(sub); err != nil {
				return apperrors.InternalError(err)
			}
			if err := users.SetSubscription(user.ID, sub.ID); err != nil {
				return apperrors.InternalError(err)
			}
			user.SubscriptionID = &sub.ID
		}
		return nil
	})
	if txErr != nil {
		var appErr *apperrors.AppError
		if apperrors.As(txErr, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.InternalError(txErr)
	}

	logger.CtxInfo(ctx, "provider profile created", "profile_id", profile.ID, "user_id", user.ID)
	return dto.NewProviderProfileResponse(profile), nil
}

// GetOwn returns the authenticated user's profile.
func (s *ProviderProfileService) GetOwn(ctx context.Context, userID string) (*dto.ProviderProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return dto.NewProviderProfileResponse(profile), nil
}

// Get returns a profile by id. Public, rate-observed via the access
// log.
func (s *ProviderProfileService) Get(ctx context.Context, profileID, clientIP string) (*dto.ProviderProfileResponse, error) {
	profile, err := s.profileRepo.FindByID(profileID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if clientIP != "" {
		if err := s.accessRepo.Bump(clientIP, "provider_profile"); err != nil {
			logger.CtxWithError(ctx, "failed to record profile view", err, "profile_id", profileID)
		}
	}
	return dto.NewProviderProfileResponse(profile), nil
}

// List returns all provider profiles, public directory style.
// Accesses are counted per client IP like the single profile view.
func (s *ProviderProfileService) List(ctx context.Context, clientIP string, limit, offset int) ([]*dto.ProviderProfileResponse, int64, error) {
	profiles, total, err := s.profileRepo.FindAll(limit, offset)
	if err != nil {
		return nil, 0, apperrors.InternalError(err)
	}

	if clientIP != "" {
		if err := s.accessRepo.Bump(clientIP, "provider_list"); err != nil {
			logger.CtxWithError(ctx, "failed to record directory view", err)
		}
	}
	return dto.NewProviderProfileResponseList(profiles), total, nil
}

// Update mutates the owner's profile. Nil slices keep the existing
// associations.
func (s *ProviderProfileService) Update(ctx context.Context, userID string, req *dto.UpdateProviderProfileRequest) (*dto.ProviderProfileResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if req.Firma != nil {
		profile.Firma = *req.Firma
		if err := s.profileRepo.Update(profile); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}
	if req.ServiceIDs != nil {
		services, err := s.resolveServices(req.ServiceIDs)
		if err != nil {
			return nil, err
		}
		if err := s.profileRepo.ReplaceServices(profile, services); err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.Services = services
	}
	if req.RegionIDs != nil {
		regions, err := s.resolveRegions(req.RegionIDs)
		if err != nil {
			return nil, err
		}
		if err := s.profileRepo.ReplaceCoverageRegions(profile, regions); err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.CoverageRegions = regions
	}

	return dto.NewProviderProfileResponse(profile), nil
}

// Delete removes the owner's profile and downgrades the role.
func (s *ProviderProfileService) Delete(ctx context.Context, userID string) error {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return apperrors.ErrUserNotFound
	}
	if user.ProviderProfile == nil {
		return apperrors.ErrProfileNotFound
	}

	txErr := s.db.Transaction(func(tx *gorm.DB) error {
		profiles := s.profileRepo.WithTx(tx)
		users := s.userRepo.WithTx(tx)

		if err := profiles.Delete(user.ProviderProfile.ID); err != nil {
			return apperrors.InternalError(err)
		}

		newRole := downgradedRole(user.Role)
		if newRole != user.Role {
			if err := users.UpdateRole(user.ID, newRole); err != nil {
				return apperrors.InternalError(err)
			}
		}
		return nil
	})
	if txErr != nil {
		var appErr *apperrors.AppError
		if apperrors.As(txErr, &appErr) {
			return appErr
		}
		return apperrors.InternalError(txErr)
	}

	logger.CtxInfo(ctx, "provider profile deleted", "user_id", user.ID)
	return nil
}

func (s *ProviderProfileService) resolveServices(ids []uint) ([]models.ServiceType, error) {
	services, err := s.serviceRepo.FindByIDs(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(services) == 0 {
		return nil, apperrors.ErrNoValidService
	}
	return services, nil
}

func (s *ProviderProfileService) resolveRegions(ids []uint) ([]models.Region, error) {
	regions, err := s.geoRepo.FindRegionsByIDs(ids)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if len(regions) == 0 {
		return nil, apperrors.ErrInvalidOperation("profile", "At least one valid coverage region is required")
	}
	return regions, nil
}

func upgradedRole(role models.UserRole) models.UserRole {
	switch role {
	case models.UserRoleClient:
		return models.UserRoleBoth
	case "":
		return models.UserRoleProvider
	}
	return role
}

func downgradedRole(role models.UserRole) models.UserRole {
	switch role {
	case models.UserRoleBoth, models.UserRoleProvider:
		return models.UserRoleClient
	}
	return role
}
