package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"ecomatch_backend/internal/models"
	"ecomatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfile_CreateUpgradesRole(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	token, user := helpers.CreateAndLoginUser(t, ts, "client@example.com", "secret123", models.UserRoleClient)

	pv := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	regions := helpers.FindRegions(t, ts, []string{"Rhein-Main"})

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/profile", token, map[string]interface{}{
		"firma":       "Sonnenkraft GmbH",
		"service_ids": []uint{pv[0].ID},
		"region_ids":  []uint{regions[0].ID},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var updated models.User
	require.NoError(t, ts.DB.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, models.UserRoleBoth, updated.Role)

	// The trial subscription is attached in the same transaction.
	require.NotNil(t, updated.SubscriptionID)
	var sub models.Subscription
	require.NoError(t, ts.DB.First(&sub, "id = ?", *updated.SubscriptionID).Error)
	assert.True(t, sub.IsActive)

	// A second profile is rejected.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/profile", token, map[string]interface{}{
		"firma":       "Zweite Firma",
		"service_ids": []uint{pv[0].ID},
		"region_ids":  []uint{regions[0].ID},
	})
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)
}

func TestProfile_UpdateReplacesAssociations(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	token, _ := helpers.CreateProviderWithProfile(t, ts, "provider@example.com",
		[]string{"Photovoltaik"}, []string{"Rhein-Main"})

	wp := helpers.FindServiceTypes(t, ts, []string{"Wärmepumpe"})
	nordhessen := helpers.FindRegions(t, ts, []string{"Nordhessen"})

	res, body := ts.SendRequest(t, http.MethodPatch, "/api/v1/profile", token, map[string]interface{}{
		"service_ids": []uint{wp[0].ID},
		"region_ids":  []uint{nordhessen[0].ID},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Services []struct {
			Name string `json:"name"`
		} `json:"services"`
		Regions []struct {
			Name string `json:"name"`
		} `json:"regions"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	require.Len(t, resp.Services, 1)
	require.Len(t, resp.Regions, 1)
	assert.Equal(t, "Wärmepumpe", resp.Services[0].Name)
	assert.Equal(t, "Nordhessen", resp.Regions[0].Name)
}

func TestProfile_DeleteDowngradesRole(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	token, user := helpers.CreateProviderWithProfile(t, ts, "provider@example.com",
		[]string{"Photovoltaik"}, []string{"Rhein-Main"})

	res, body := ts.SendRequest(t, http.MethodDelete, "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated models.User
	require.NoError(t, ts.DB.First(&updated, "id = ?", user.ID).Error)
	assert.Equal(t, models.UserRoleClient, updated.Role)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/profile", token, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestProfile_PublicDirectoryCountsViews(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	_, user := helpers.CreateProviderWithProfile(t, ts, "provider@example.com",
		[]string{"Photovoltaik"}, []string{"Rhein-Main"})

	var profile models.ProviderProfile
	require.NoError(t, ts.DB.First(&profile, "user_id = ?", user.ID).Error)

	// Public, no token required.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/providers/"+profile.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/providers/"+profile.ID, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var log models.AccessLog
	require.NoError(t, ts.DB.First(&log, "view_type = ?", "provider_profile").Error)
	assert.Equal(t, 2, log.ViewCount)

	// The directory listing is counted separately.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/providers", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/providers", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var listLog models.AccessLog
	require.NoError(t, ts.DB.First(&listLog, "view_type = ?", "provider_list").Error)
	assert.Equal(t, 2, listLog.ViewCount)
}
