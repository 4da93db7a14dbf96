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

func TestOffer_CreateAndProviderAccepts(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	_, client := helpers.CreateAndLoginUser(t, ts, "client@example.com", "secret123", models.UserRoleClient)
	providerToken, _ := helpers.CreateProviderWithProfile(t, ts, "provider@example.com",
		[]string{"Photovoltaik"}, []string{"Rhein-Main"})

	pv := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	request := helpers.CreateOpenRequest(t, ts, &client.ID, "PV-Anlage", "Rhein-Main", pv)

	// Provider places an offer.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/offers", providerToken, map[string]string{
		"request_id": request.ID,
		"message":    "Wir können nächste Woche anfangen.",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var offerResp struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &offerResp))

	// The provider takes the request.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/requests/"+request.ID+"/accept", providerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var request2 models.Request
	require.NoError(t, ts.DB.First(&request2, "id = ?", request.ID).Error)
	assert.Equal(t, models.RequestStatusAccepted, request2.Status)

	var offer models.Offer
	require.NoError(t, ts.DB.First(&offer, "id = ?", offerResp.ID).Error)
	assert.True(t, offer.Accepted)

	// The client is notified.
	require.Len(t, ts.Mailer.RequestAccepted, 1)
	assert.Equal(t, client.Email, ts.Mailer.RequestAccepted[0].To)
	assert.Equal(t, "PV-Anlage", ts.Mailer.RequestAccepted[0].RequestTitle)
}

func TestOffer_AcceptWithoutPriorOffer(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	_, client := helpers.CreateAndLoginUser(t, ts, "client@example.com", "secret123", models.UserRoleClient)
	providerToken, provider := helpers.CreateProviderWithProfile(t, ts, "provider@example.com",
		[]string{"Photovoltaik"}, []string{"Rhein-Main"})

	pv := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	request := helpers.CreateOpenRequest(t, ts, &client.ID, "PV-Anlage", "Rhein-Main", pv)

	// Accepting straight from the matching list creates the offer.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/requests/"+request.ID+"/accept", providerToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var offer models.Offer
	require.NoError(t, ts.DB.First(&offer, "request_id = ? AND provider_id = ?", request.ID, provider.ID).Error)
	assert.True(t, offer.Accepted)

	var request2 models.Request
	require.NoError(t, ts.DB.First(&request2, "id = ?", request.ID).Error)
	assert.Equal(t, models.RequestStatusAccepted, request2.Status)
}

func TestOffer_DoubleAcceptLosesSecond(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	_, client := helpers.CreateAndLoginUser(t, ts, "client@example.com", "secret123", models.UserRoleClient)
	tokenA, providerA := helpers.CreateProviderWithProfile(t, ts, "a@example.com",
		[]string{"Photovoltaik"}, []string{"Rhein-Main"})
	tokenB, providerB := helpers.CreateProviderWithProfile(t, ts, "b@example.com",
		[]string{"Photovoltaik"}, []string{"Rhein-Main"})

	pv := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	request := helpers.CreateOpenRequest(t, ts, &client.ID, "PV-Anlage", "Rhein-Main", pv)

	offerA := &models.Offer{RequestID: request.ID, ProviderID: providerA.ID, Message: "Angebot A"}
	offerB := &models.Offer{RequestID: request.ID, ProviderID: providerB.ID, Message: "Angebot B"}
	require.NoError(t, ts.DB.Create(offerA).Error)
	require.NoError(t, ts.DB.Create(offerB).Error)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/requests/"+request.ID+"/accept", tokenA, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	// The second acceptance fails; neither the winner nor the request
	// change, and only one client mail went out.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/requests/"+request.ID+"/accept", tokenB, nil)
	assert.Equal(t, http.StatusConflict, res.StatusCode, body)

	var winner, loser models.Offer
	require.NoError(t, ts.DB.First(&winner, "id = ?", offerA.ID).Error)
	require.NoError(t, ts.DB.First(&loser, "id = ?", offerB.ID).Error)
	assert.True(t, winner.Accepted)
	assert.False(t, loser.Accepted)

	var request2 models.Request
	require.NoError(t, ts.DB.First(&request2, "id = ?", request.ID).Error)
	assert.Equal(t, models.RequestStatusAccepted, request2.Status)

	require.Len(t, ts.Mailer.RequestAccepted, 1)
	assert.Equal(t, client.Email, ts.Mailer.RequestAccepted[0].To)
}

func TestOffer_ClientCannotAccept(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	clientToken, client := helpers.CreateAndLoginUser(t, ts, "client@example.com", "secret123", models.UserRoleClient)
	pv := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	request := helpers.CreateOpenRequest(t, ts, &client.ID, "PV-Anlage", "Rhein-Main", pv)

	// Even the request owner cannot take it without a provider role.
	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/requests/"+request.ID+"/accept", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	var request2 models.Request
	require.NoError(t, ts.DB.First(&request2, "id = ?", request.ID).Error)
	assert.Equal(t, models.RequestStatusNew, request2.Status)
}

func TestOffer_ClientCannotOffer(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	clientToken, client := helpers.CreateAndLoginUser(t, ts, "client@example.com", "secret123", models.UserRoleClient)
	pv := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	request := helpers.CreateOpenRequest(t, ts, &client.ID, "PV-Anlage", "Rhein-Main", pv)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/offers", clientToken, map[string]string{
		"request_id": request.ID,
		"message":    "Ich biete mit",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}
