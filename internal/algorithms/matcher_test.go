package algorithms

import (
	"testing"

	"ecomatch_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func openRequest(primary uint, extra []uint, region string) models.Request {
	req := models.Request{
		Title:         "Test",
		Status:        models.RequestStatusNew,
		ServiceTypeID: primary,
		Region:        region,
	}
	for _, id := range extra {
		req.Services = append(req.Services, models.ServiceType{ID: id})
	}
	return req
}

func TestMatchesProvider_ServiceAndRegion(t *testing.T) {
	req := openRequest(1, nil, "Hessen")

	assert.True(t, MatchesProvider(&req, []uint{1}, []string{"Hessen"}))
	assert.False(t, MatchesProvider(&req, []uint{2}, []string{"Hessen"}), "no service intersection")
	assert.False(t, MatchesProvider(&req, []uint{1}, []string{"Bayern"}), "region not covered")
}

func TestMatchesProvider_AdditionalServicesCount(t *testing.T) {
	// Primary service 1, additional service 3.
	req := openRequest(1, []uint{3}, "Hessen")

	assert.True(t, MatchesProvider(&req, []uint{3}, []string{"Hessen"}),
		"intersection on an additional service suffices")
}

func TestMatchesProvider_StatusFilter(t *testing.T) {
	req := openRequest(1, nil, "Hessen")
	req.Status = models.RequestStatusAccepted

	assert.False(t, MatchesProvider(&req, []uint{1}, []string{"Hessen"}),
		"only open requests match")
}

func TestMatchesProvider_RegionNameIsExact(t *testing.T) {
	req := openRequest(1, nil, "Hessen")

	// Comparison is an exact string match on the region name.
	assert.False(t, MatchesProvider(&req, []uint{1}, []string{"hessen"}))
	assert.False(t, MatchesProvider(&req, []uint{1}, []string{"Hessen "}))
}

func TestMatchesProvider_EmptyProviderSets(t *testing.T) {
	req := openRequest(1, nil, "Hessen")

	assert.False(t, MatchesProvider(&req, nil, []string{"Hessen"}))
	assert.False(t, MatchesProvider(&req, []uint{1}, nil))
}

func TestFilterMatching(t *testing.T) {
	requests := []models.Request{
		openRequest(1, nil, "Hessen"),
		openRequest(2, nil, "Hessen"),
		openRequest(1, nil, "Bayern"),
	}
	requests[0].Title = "match"

	closed := openRequest(1, nil, "Hessen")
	closed.Status = models.RequestStatusClosed
	requests = append(requests, closed)

	matched := FilterMatching(requests, []uint{1}, []string{"Hessen"})
	assert.Len(t, matched, 1)
	assert.Equal(t, "match", matched[0].Title)
}
