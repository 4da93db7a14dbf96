package algorithms

import (
	"ecomatch_backend/internal/models"
)

// MatchesProvider reports whether an open request matches a provider's
// offered services and coverage regions: the request must be in status
// "neu", its service set must intersect the provider's services, and
// its snapshot region string must be one of the coverage region names.
// Region comparison is by name, since the request stores the region as
// display text.
func MatchesProvider(request *models.Request, serviceIDs []uint, regionNames []string) bool {
	if request.Status != models.RequestStatusNew {
		return false
	}
	if !servicesIntersect(request, serviceIDs) {
		return false
	}
	return regionMember(request.Region, regionNames)
}

// FilterMatching returns the subset of requests matching the provider.
// No ranking is applied; ties are unordered.
func FilterMatching(requests []models.Request, serviceIDs []uint, regionNames []string) []models.Request {
	matched := make([]models.Request, 0)
	for i := range requests {
		if MatchesProvider(&requests[i], serviceIDs, regionNames) {
			matched = append(matched, requests[i])
		}
	}
	return matched
}

func servicesIntersect(request *models.Request, serviceIDs []uint) bool {
	if len(serviceIDs) == 0 {
		return false
	}
	requestSet := request.ServiceIDSet()
	for _, id := range serviceIDs {
		if _, ok := requestSet[id]; ok {
			return true
		}
	}
	return false
}

func regionMember(region string, regionNames []string) bool {
	for _, name := range regionNames {
		if name == region {
			return true
		}
	}
	return false
}
