package services

import (
	"context"

	"ecomatch_backend/internal/models"
	"ecomatch_backend/internal/repositories"
	"ecomatch_backend/internal/services/dto"
	"ecomatch_backend/pkg/apperrors"
)

// UserService covers the authenticated user's own account.
type UserService struct {
	userRepo repositories.UserRepository
}

func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) Get(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}
	return dto.NewUserResponse(user), nil
}

// Update applies partial changes to the user's contact data. Switching
// the display mode to "provider" requires a provider-capable role.
func (s *UserService) Update(ctx context.Context, userID string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(userID)
	if err != nil {
		return nil, apperrors.ErrUserNotFound
	}

	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	if req.PhoneNumber != nil {
		user.PhoneNumber = *req.PhoneNumber
	}
	if req.Company != nil {
		user.Company = *req.Company
	}
	if req.Street != nil {
		user.Street = *req.Street
	}
	if req.HouseNumber != nil {
		user.HouseNumber = *req.HouseNumber
	}
	if req.PostalCode != nil {
		user.PostalCode = *req.PostalCode
	}
	if req.City != nil {
		user.City = *req.City
	}
	if req.RegionID != nil {
		user.RegionID = req.RegionID
	}
	if req.CurrentMode != nil {
		if *req.CurrentMode == models.ModeProvider && !user.Role.CanOffer() {
			return nil, apperrors.ErrNotAProvider
		}
		user.CurrentMode = *req.CurrentMode
	}

	if err := s.userRepo.Update(user); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewUserResponse(user), nil
}

// List returns a page of all accounts. Admin only, enforced at the route.
func (s *UserService) List(ctx context.Context, limit, offset int) (*dto.UserListResponse, error) {
	users, total, err := s.userRepo.FindAll(limit, offset)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.UserListResponse{
		Users: make([]*dto.UserResponse, 0, len(users)),
		Total: total,
	}
	for i := range users {
		resp.Users = append(resp.Users, dto.NewUserResponse(&users[i]))
	}
	return resp, nil
}
