package dto

import "ecomatch_backend/internal/models"

type RegisterRequest struct {
	Email      string          `json:"email" validate:"required,email"`
	Password   string          `json:"password" validate:"required,min=6"`
	Role       models.UserRole `json:"role" validate:"omitempty,oneof=client provider both"`
	FirstName  string          `json:"first_name" validate:"omitempty,max=100"`
	LastName   string          `json:"last_name" validate:"omitempty,max=100"`
	PostalCode string          `json:"postal_code" validate:"omitempty,plz"`
	RegionID   *uint           `json:"region_id"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string        `json:"access_token"`
	RefreshToken string        `json:"refresh_token"`
	User         *UserResponse `json:"user"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type ResendActivationRequest struct {
	Email string `json:"email" validate:"required,email"`
}
