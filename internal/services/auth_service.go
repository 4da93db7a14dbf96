package services

import (
	"context"
	"errors"
	"time"

	"ecomatch_backend/internal/auth"
	"ecomatch_backend/internal/email"
	"ecomatch_backend/internal/logger"
	"ecomatch_backend/internal/models"
	"ecomatch_backend/internal/repositories"
	"ecomatch_backend/internal/services/dto"
	"ecomatch_backend/pkg/apperrors"
)

// AuthService covers registration, account activation, login and token
// refresh. New accounts start inactive and are unlocked through the
// mailed activation link.
type AuthService struct {
	userRepo   repositories.UserRepository
	jwt        *auth.JWTManager
	activation *auth.ActivationTokenizer
	mailer     email.Provider
	refreshTTL time.Duration
}

func NewAuthService(
	userRepo repositories.UserRepository,
	jwt *auth.JWTManager,
	activation *auth.ActivationTokenizer,
	mailer email.Provider,
	refreshTTL time.Duration,
) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwt:        jwt,
		activation: activation,
		mailer:     mailer,
		refreshTTL: refreshTTL,
	}
}

// Register creates an inactive account and sends the activation mail.
func (s *AuthService) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.UserRoleClient
	}
	if !models.ValidRole(role) || role == models.UserRoleAdmin {
		return nil, apperrors.ErrInvalidUserRole
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     false,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PostalCode:   req.PostalCode,
		RegionID:     req.RegionID,
	}
	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.InternalError(err)
	}

	s.sendActivation(ctx, user)
	return dto.NewUserResponse(user), nil
}

// ConfirmEmail activates the account addressed by the uid/token pair.
// Confirming an already active account succeeds without side effects.
func (s *AuthService) ConfirmEmail(ctx context.Context, uid, token string) (*dto.UserResponse, error) {
	userID, err := auth.DecodeUID(uid)
	if err != nil {
		return nil, apperrors.ErrInvalidConfirm
	}

	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidConfirm
		}
		return nil, apperrors.InternalError(err)
	}

	if user.IsActive {
		return dto.NewUserResponse(user), nil
	}
	if !s.activation.CheckToken(user, token) {
		return nil, apperrors.ErrInvalidConfirm
	}

	if err := s.userRepo.Activate(user.ID); err != nil {
		return nil, apperrors.InternalError(err)
	}
	user.IsActive = true

	logger.CtxInfo(ctx, "account activated", "user_id", user.ID)
	return dto.NewUserResponse(user), nil
}

// ResendActivation issues a fresh activation mail for an inactive
// account. Always answers success so the endpoint does not leak which
// addresses exist.
func (s *AuthService) ResendActivation(ctx context.Context, emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	if user.IsActive {
		return nil
	}

	s.sendActivation(ctx, user)
	return nil
}

// Login verifies credentials and issues an access/refresh token pair.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserNotActive
	}

	if err := s.userRepo.TouchLastLogin(user.ID); err != nil {
		logger.CtxWithError(ctx, "failed to update last login", err, "user_id", user.ID)
	}

	return s.issueTokens(user)
}

// Refresh rotates a refresh token and issues a new pair.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.LoginResponse, error) {
	stored, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(refreshToken)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(stored.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, apperrors.ErrUserNotActive
	}

	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return s.issueTokens(user)
}

// Logout invalidates all of the user's refresh tokens.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	if err := s.userRepo.DeleteUserRefreshTokens(userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthService) issueTokens(user *models.User) (*dto.LoginResponse, error) {
	accessToken, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refreshToken, err := auth.NewRefreshToken()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if err := s.userRepo.CreateRefreshToken(&models.RefreshToken{
		UserID:    user.ID,
		Token:     refreshToken,
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.LoginResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         dto.NewUserResponse(user),
	}, nil
}

func (s *AuthService) sendActivation(ctx context.Context, user *models.User) {
	uid := auth.EncodeUID(user.ID)
	token := s.activation.MakeToken(user)
	if err := s.mailer.SendAccountActivation(user.Email, uid, token); err != nil {
		logger.CtxWithError(ctx, "failed to send activation email", err, "user_id", user.ID)
	}
}
