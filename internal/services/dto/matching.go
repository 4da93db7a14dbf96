package dto

// MatchingFilter narrows the provider's match list. Zero values mean
// no narrowing beyond the profile's services and coverage regions.
type MatchingFilter struct {
	ServiceID uint   `form:"service_id" validate:"omitempty,gt=0"`
	Region    string `form:"region" validate:"omitempty,max=100"`
}

type MatchListResponse struct {
	Requests []*RequestResponse `json:"requests"`
	Total    int                `json:"total"`
}
