package apperrors

// ErrorCode is a machine-distinguishable error kind.
type ErrorCode string

const (
	// System
	CodeInternalError        ErrorCode = "INTERNAL_ERROR"
	CodeDatabaseError        ErrorCode = "DATABASE_ERROR"
	CodeExternalServiceError ErrorCode = "EXTERNAL_SERVICE_ERROR"

	// Generic business logic
	CodeNotFound         ErrorCode = "NOT_FOUND"
	CodeAlreadyExists    ErrorCode = "ALREADY_EXISTS"
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	CodeConflict         ErrorCode = "CONFLICT"
	CodeInvalidStatus    ErrorCode = "INVALID_STATUS"
	CodeInvalidOperation ErrorCode = "INVALID_OPERATION"

	// Authentication / authorization
	CodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	CodeForbidden          ErrorCode = "FORBIDDEN"
	CodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	CodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	CodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"

	// Identity
	CodeUserNotFound       ErrorCode = "USER_NOT_FOUND"
	CodeEmailAlreadyExists ErrorCode = "EMAIL_ALREADY_EXISTS"
	CodeUserNotActive      ErrorCode = "USER_NOT_ACTIVE"
	CodeWeakPassword       ErrorCode = "WEAK_PASSWORD"
	CodeInvalidUserRole    ErrorCode = "INVALID_USER_ROLE"

	// Guest lead workflow
	CodeConsentRequired  ErrorCode = "CONSENT_REQUIRED"
	CodeAlreadyConfirmed ErrorCode = "ALREADY_CONFIRMED"
	CodeAlreadyUsed      ErrorCode = "ALREADY_USED"
	CodeNoValidService   ErrorCode = "NO_VALID_SERVICE"

	// Requests / offers
	CodeRequestNotFound ErrorCode = "REQUEST_NOT_FOUND"
	CodeRequestNotOpen  ErrorCode = "REQUEST_NOT_OPEN"

	// Uploads
	CodeFileTooLarge        ErrorCode = "FILE_TOO_LARGE"
	CodeUnsupportedFileType ErrorCode = "UNSUPPORTED_FILE_TYPE"

	// Provider profiles
	CodeProfileNotFound      ErrorCode = "PROFILE_NOT_FOUND"
	CodeProfileAlreadyExists ErrorCode = "PROFILE_ALREADY_EXISTS"
	CodeNotAProvider         ErrorCode = "NOT_A_PROVIDER"
)
