package models

type UserRole string
type CurrentMode string
type RequestStatus string

const (
	// Role is stored explicitly. A user becomes "provider" or "both"
	// when a ProviderProfile is attached; the flag is never derived
	// from relation existence.
	UserRoleClient   UserRole = "client"
	UserRoleProvider UserRole = "provider"
	UserRoleBoth     UserRole = "both"
	UserRoleAdmin    UserRole = "admin"

	// CurrentMode is the display mode the user last switched to.
	ModeClient   CurrentMode = "client"
	ModeProvider CurrentMode = "provider"

	// Request workflow status codes. Kept as the original German short
	// codes since they are persisted and filtered on.
	RequestStatusNew      RequestStatus = "neu"
	RequestStatusAccepted RequestStatus = "akzeptiert"
	RequestStatusClosed   RequestStatus = "geschlossen"
)

// CanOffer reports whether a role is allowed to act as a provider.
func (r UserRole) CanOffer() bool {
	return r == UserRoleProvider || r == UserRoleBoth || r == UserRoleAdmin
}

// CanRequest reports whether a role is allowed to act as a client.
func (r UserRole) CanRequest() bool {
	return r == UserRoleClient || r == UserRoleBoth || r == UserRoleAdmin
}

// ValidRole reports whether the role is one of the known values.
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleClient, UserRoleProvider, UserRoleBoth, UserRoleAdmin:
		return true
	}
	return false
}
