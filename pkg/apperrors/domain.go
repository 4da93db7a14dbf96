package apperrors

import (
	"net/http"
)

// Predefined domain errors. Services return these directly; handlers
// funnel them through HandleError at the boundary.

// Authentication
var (
	ErrInvalidCredentials = New(CodeInvalidCredentials, "auth", "Invalid email or password", http.StatusUnauthorized)
	ErrUnauthorized       = New(CodeUnauthorized, "auth", "Authentication required", http.StatusUnauthorized)
	ErrForbidden          = New(CodeForbidden, "auth", "Access denied", http.StatusForbidden)
	ErrInvalidToken       = New(CodeInvalidToken, "auth", "Invalid or expired token", http.StatusUnauthorized)
	ErrInvalidConfirm     = New(CodeInvalidToken, "auth", "Invalid or expired confirmation link", http.StatusBadRequest)
)

// Identity
var (
	ErrUserNotFound       = New(CodeUserNotFound, "user", "User not found", http.StatusNotFound)
	ErrEmailAlreadyExists = New(CodeEmailAlreadyExists, "user", "Email already registered", http.StatusConflict)
	ErrUserNotActive      = New(CodeUserNotActive, "user", "Account is not activated", http.StatusForbidden)
	ErrWeakPassword       = New(CodeWeakPassword, "user", "Password does not meet minimum requirements", http.StatusBadRequest)
	ErrInvalidUserRole    = New(CodeInvalidUserRole, "user", "Unknown user role", http.StatusBadRequest)
)

// Guest lead workflow
var (
	ErrConsentRequired  = New(CodeConsentRequired, "lead", "Consent to data processing is required", http.StatusBadRequest)
	ErrAlreadyConfirmed = New(CodeAlreadyConfirmed, "lead", "This email address is already confirmed", http.StatusConflict)
	ErrAlreadyUsed      = New(CodeAlreadyUsed, "lead", "This email address has already submitted a request", http.StatusConflict)
	ErrInvalidLeadToken = New(CodeInvalidToken, "lead", "Invalid or already used token", http.StatusBadRequest)
	ErrNoValidService   = New(CodeNoValidService, "lead", "At least one valid service is required", http.StatusBadRequest)
)

// Requests / offers
var (
	ErrRequestNotFound = New(CodeRequestNotFound, "request", "Request not found", http.StatusNotFound)
	ErrRequestNotOpen  = New(CodeRequestNotOpen, "request", "Request is not open", http.StatusConflict)
)

// Provider profiles
var (
	ErrProfileNotFound      = New(CodeProfileNotFound, "profile", "Provider profile not found", http.StatusNotFound)
	ErrProfileAlreadyExists = New(CodeProfileAlreadyExists, "profile", "Provider profile already exists", http.StatusConflict)
	ErrNotAProvider         = New(CodeNotAProvider, "profile", "Only providers can perform this action", http.StatusForbidden)
)

// Geo catalog
var (
	ErrPlzNotFound = New(CodeNotFound, "geo", "Postal code not found", http.StatusNotFound)
)

// Factories for wrapping repository errors.

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrAlreadyExists(err error) *AppError {
	return Wrap(err, CodeAlreadyExists, "resource", "Resource already exists", http.StatusConflict)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}
