package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"ecomatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type matchList struct {
	Requests []struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Region string `json:"region"`
	} `json:"requests"`
	Total int `json:"total"`
}

func TestMatching_ServiceAndRegionFilter(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	token, _ := helpers.CreateProviderWithProfile(t, ts, "pv@example.com",
		[]string{"Photovoltaik"}, []string{"Rhein-Main"})

	pv := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	wp := helpers.FindServiceTypes(t, ts, []string{"Wärmepumpe"})

	// Matching: right service, right region.
	helpers.CreateOpenRequest(t, ts, nil, "PV Rhein-Main", "Rhein-Main", pv)
	// Wrong region.
	helpers.CreateOpenRequest(t, ts, nil, "PV Nordhessen", "Nordhessen", pv)
	// Wrong service.
	helpers.CreateOpenRequest(t, ts, nil, "WP Rhein-Main", "Rhein-Main", wp)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/matching", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list matchList
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "PV Rhein-Main", list.Requests[0].Title)
}

func TestMatching_AdditionalServicesCount(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	token, _ := helpers.CreateProviderWithProfile(t, ts, "pv@example.com",
		[]string{"Photovoltaik"}, []string{"Rhein-Main"})

	// Primary type is Wärmepumpe, but Photovoltaik rides along in the
	// service set, so the request still matches.
	both := helpers.FindServiceTypes(t, ts, []string{"Wärmepumpe", "Photovoltaik"})
	helpers.CreateOpenRequest(t, ts, nil, "Kombi-Projekt", "Rhein-Main", both)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/matching", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list matchList
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.Equal(t, 1, list.Total)
}

func TestMatching_ExcludesNonOpenRequests(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	token, _ := helpers.CreateProviderWithProfile(t, ts, "pv@example.com",
		[]string{"Photovoltaik"}, []string{"Rhein-Main"})

	pv := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	request := helpers.CreateOpenRequest(t, ts, nil, "Schon vergeben", "Rhein-Main", pv)
	require.NoError(t, ts.DB.Model(request).Update("status", "akzeptiert").Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/matching", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list matchList
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.Equal(t, 0, list.Total)
}

func TestMatching_RegionNameIsExact(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	token, _ := helpers.CreateProviderWithProfile(t, ts, "pv@example.com",
		[]string{"Photovoltaik"}, []string{"Rhein-Main"})

	pv := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	// Case differs: no match, comparison is exact.
	helpers.CreateOpenRequest(t, ts, nil, "Falsche Schreibweise", "rhein-main", pv)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/matching", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var list matchList
	require.NoError(t, json.Unmarshal([]byte(body), &list))
	assert.Equal(t, 0, list.Total)
}

func TestMatching_RequiresProviderRole(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	token, _ := helpers.CreateAndLoginUser(t, ts, "client@example.com", "secret123", "client")
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/matching", token, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}
