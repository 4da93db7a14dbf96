package services

import (
	"context"
	"errors"

	"ecomatch_backend/internal/algorithms"
	"ecomatch_backend/internal/repositories"
	"ecomatch_backend/internal/services/dto"
	"ecomatch_backend/pkg/apperrors"
)

// MatchingService computes the open requests a provider can work on:
// service sets must intersect and the request's region snapshot must be
// one of the profile's coverage regions.
type MatchingService struct {
	profileRepo repositories.ProviderProfileRepository
	requestRepo repositories.RequestRepository
}

func NewMatchingService(
	profileRepo repositories.ProviderProfileRepository,
	requestRepo repositories.RequestRepository,
) *MatchingService {
	return &MatchingService{
		profileRepo: profileRepo,
		requestRepo: requestRepo,
	}
}

// MatchesForUser returns the open requests matching the user's
// provider profile, optionally narrowed by the filter.
func (s *MatchingService) MatchesForUser(ctx context.Context, userID string, filter *dto.MatchingFilter) (*dto.MatchListResponse, error) {
	profile, err := s.profileRepo.FindByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	serviceIDs := profile.ServiceIDs()
	regionNames := profile.RegionNames()
	if filter != nil {
		if filter.ServiceID != 0 {
			serviceIDs = intersectIDs(serviceIDs, filter.ServiceID)
		}
		if filter.Region != "" {
			regionNames = intersectNames(regionNames, filter.Region)
		}
	}

	requests, err := s.requestRepo.FindOpenMatching(serviceIDs, regionNames)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	// The SQL filter is the fast path; the in-memory predicate is the
	// authoritative one and re-checks every row.
	matched := algorithms.FilterMatching(requests, serviceIDs, regionNames)

	return &dto.MatchListResponse{
		Requests: dto.NewRequestResponseList(matched),
		Total:    len(matched),
	}, nil
}

// intersectIDs keeps the wanted id only when the profile offers it. A
// filter outside the profile yields no matches instead of widening the
// search.
func intersectIDs(ids []uint, want uint) []uint {
	for _, id := range ids {
		if id == want {
			return []uint{want}
		}
	}
	return nil
}

func intersectNames(names []string, want string) []string {
	for _, name := range names {
		if name == want {
			return []string{want}
		}
	}
	return nil
}
