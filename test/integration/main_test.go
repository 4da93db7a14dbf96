package integration

import (
	"testing"

	"ecomatch_backend/internal/models"
	"ecomatch_backend/test/helpers"

	"github.com/stretchr/testify/require"
)

// seedPlzOrt inserts one postal-code row tied to the seeded geo
// hierarchy, unless it already exists.
func seedPlzOrt(t *testing.T, ts *helpers.TestServer, plz, ort, regionName, landName string) *models.PlzOrt {
	t.Helper()

	var existing models.PlzOrt
	if err := ts.DB.First(&existing, "plz = ?", plz).Error; err == nil {
		return &existing
	}

	var land models.Bundesland
	require.NoError(t, ts.DB.First(&land, "name = ?", landName).Error)
	var region models.Region
	require.NoError(t, ts.DB.First(&region, "name = ? AND land_id = ?", regionName, land.ID).Error)

	plzOrt := &models.PlzOrt{
		Plz:      plz,
		Ort:      ort,
		RegionID: &region.ID,
		LandID:   land.ID,
	}
	require.NoError(t, ts.DB.Create(plzOrt).Error)
	return plzOrt
}
