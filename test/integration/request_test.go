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

func TestRequest_CreateSnapshotsRegion(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "client@example.com", "secret123", models.UserRoleClient)
	seedPlzOrt(t, ts, "64283", "Darmstadt", "Rhein-Main", "Hessen")

	pv := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/requests", token, map[string]interface{}{
		"title":       "PV für Reihenhaus",
		"plz":         "64283",
		"stadt":       "Darmstadt",
		"service_ids": []uint{pv[0].ID},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var resp struct {
		ID     string `json:"id"`
		Region string `json:"region"`
		Land   string `json:"land"`
		Status string `json:"status"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "Rhein-Main", resp.Region)
	assert.Equal(t, "Hessen", resp.Land)
	assert.Equal(t, "neu", resp.Status)

	// Renaming the canonical region later does not touch the snapshot.
	require.NoError(t, ts.DB.Model(&models.Region{}).
		Where("name = ?", "Rhein-Main").
		Update("name", "Rhein-Main-Gebiet").Error)

	var request models.Request
	require.NoError(t, ts.DB.First(&request, "id = ?", resp.ID).Error)
	assert.Equal(t, "Rhein-Main", request.Region)

	// Restore for other tests sharing the seeded catalog.
	require.NoError(t, ts.DB.Model(&models.Region{}).
		Where("name = ?", "Rhein-Main-Gebiet").
		Update("name", "Rhein-Main").Error)
}

func TestRequest_ListIsRoleAware(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	tokenA, clientA := helpers.CreateAndLoginUser(t, ts, "a@example.com", "secret123", models.UserRoleClient)
	_, clientB := helpers.CreateAndLoginUser(t, ts, "b@example.com", "secret123", models.UserRoleClient)
	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "admin@example.com", "secret123", models.UserRoleAdmin)

	pv := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	helpers.CreateOpenRequest(t, ts, &clientA.ID, "Anfrage A", "Rhein-Main", pv)
	helpers.CreateOpenRequest(t, ts, &clientB.ID, "Anfrage B", "Rhein-Main", pv)

	var listResp struct {
		Requests []struct {
			Title string `json:"title"`
		} `json:"requests"`
		Total int64 `json:"total"`
	}

	// Clients see only their own requests.
	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/requests", tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &listResp))
	require.EqualValues(t, 1, listResp.Total)
	assert.Equal(t, "Anfrage A", listResp.Requests[0].Title)

	// Admins see everything.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/requests", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &listResp))
	assert.EqualValues(t, 2, listResp.Total)
}

func TestRequest_GetForeignIsForbidden(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	_, clientA := helpers.CreateAndLoginUser(t, ts, "a@example.com", "secret123", models.UserRoleClient)
	tokenB, _ := helpers.CreateAndLoginUser(t, ts, "b@example.com", "secret123", models.UserRoleClient)

	pv := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	request := helpers.CreateOpenRequest(t, ts, &clientA.ID, "Anfrage A", "Rhein-Main", pv)

	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/requests/"+request.ID, tokenB, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
