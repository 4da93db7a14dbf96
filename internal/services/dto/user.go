package dto

import "ecomatch_backend/internal/models"

type UserResponse struct {
	ID          string             `json:"id"`
	Email       string             `json:"email"`
	Role        models.UserRole    `json:"role"`
	IsActive    bool               `json:"is_active"`
	CurrentMode models.CurrentMode `json:"current_mode,omitempty"`
	FirstName   string             `json:"first_name,omitempty"`
	LastName    string             `json:"last_name,omitempty"`
	PhoneNumber string             `json:"phone_number,omitempty"`
	Company     string             `json:"company,omitempty"`
	PostalCode  string             `json:"postal_code,omitempty"`
	City        string             `json:"city,omitempty"`
	RegionID    *uint              `json:"region_id,omitempty"`
	HasProfile  bool               `json:"has_provider_profile"`
}

func NewUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:          user.ID,
		Email:       user.Email,
		Role:        user.Role,
		IsActive:    user.IsActive,
		CurrentMode: user.CurrentMode,
		FirstName:   user.FirstName,
		LastName:    user.LastName,
		PhoneNumber: user.PhoneNumber,
		Company:     user.Company,
		PostalCode:  user.PostalCode,
		City:        user.City,
		RegionID:    user.RegionID,
		HasProfile:  user.ProviderProfile != nil,
	}
}

type UpdateUserRequest struct {
	FirstName   *string             `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string             `json:"last_name" validate:"omitempty,max=100"`
	PhoneNumber *string             `json:"phone_number" validate:"omitempty,max=20"`
	Company     *string             `json:"company" validate:"omitempty,max=255"`
	Street      *string             `json:"street" validate:"omitempty,max=255"`
	HouseNumber *string             `json:"house_number" validate:"omitempty,max=10"`
	PostalCode  *string             `json:"postal_code" validate:"omitempty,plz"`
	City        *string             `json:"city" validate:"omitempty,max=100"`
	RegionID    *uint               `json:"region_id"`
	CurrentMode *models.CurrentMode `json:"current_mode" validate:"omitempty,oneof=client provider"`
}

type UserListResponse struct {
	Users []*UserResponse `json:"users"`
	Total int64           `json:"total"`
}
