package integration

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"testing"

	"ecomatch_backend/internal/models"
	"ecomatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuestFlow_FullScenario(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	// Initiate: lead created, confirmation mail sent.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/gast/initiate", "", map[string]interface{}{
		"email":         "gast@example.com",
		"consent_given": true,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	require.Len(t, ts.Mailer.LeadConfirmations, 1)
	token := ts.Mailer.LastLeadToken(t)
	require.Len(t, token, 43)

	// Confirm via the mailed token.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/gast/confirm?token="+token, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var confirmResp struct {
		Email string `json:"email"`
		State string `json:"state"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &confirmResp))
	assert.Equal(t, "gast@example.com", confirmResp.Email)
	assert.Equal(t, "validated", confirmResp.State)

	// Confirming again is idempotent: same payload, no extra mail.
	res, body2 := ts.SendRequest(t, http.MethodGet, "/api/v1/gast/confirm?token="+token, "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.JSONEq(t, body, body2)
	assert.Len(t, ts.Mailer.LeadConfirmations, 1)

	// Submit the request, consuming the token.
	services := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/gast/request", "", map[string]interface{}{
		"token":       token,
		"vorname":     "Max",
		"nachname":    "Mustermann",
		"plz":         "64283",
		"stadt":       "Darmstadt",
		"region":      "Rhein-Main",
		"titel":       "PV-Anlage für Einfamilienhaus",
		"service_ids": []uint{services[0].ID},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var requestResp struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Region string `json:"region"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &requestResp))
	assert.Equal(t, "neu", requestResp.Status)

	// The lead is consumed and the backing user exists but is inactive.
	var lead models.Lead
	require.NoError(t, ts.DB.First(&lead, "email = ?", "gast@example.com").Error)
	assert.True(t, lead.Validated)
	assert.True(t, lead.UsedForRequest)

	var user models.User
	require.NoError(t, ts.DB.First(&user, "email = ?", "gast@example.com").Error)
	assert.False(t, user.IsActive)
	assert.Equal(t, models.UserRoleClient, user.Role)

	// The consumed token cannot be reused.
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/gast/request", "", map[string]interface{}{
		"token":       token,
		"plz":         "64283",
		"stadt":       "Darmstadt",
		"titel":       "Zweite Anfrage",
		"service_ids": []uint{services[0].ID},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestGuestFlow_ConsentRequired(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/gast/initiate", "", map[string]interface{}{
		"email":         "gast@example.com",
		"consent_given": false,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Empty(t, ts.Mailer.LeadConfirmations)
}

func TestGuestFlow_ReinitiateReissuesToken(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	initiate := func() (int, string) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/gast/initiate", "", map[string]interface{}{
			"email":         "gast@example.com",
			"consent_given": true,
		})
		return res.StatusCode, body
	}

	code, body := initiate()
	require.Equal(t, http.StatusCreated, code, body)
	first := ts.Mailer.LastLeadToken(t)

	// A second initiate before confirmation issues a fresh token.
	code, body = initiate()
	require.Equal(t, http.StatusCreated, code, body)
	second := ts.Mailer.LastLeadToken(t)
	assert.NotEqual(t, first, second)

	// The old token no longer resolves.
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/gast/confirm?token="+first, "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)

	// After confirmation, another initiate is rejected.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/gast/confirm?token="+second, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	code, body = initiate()
	assert.Equal(t, http.StatusConflict, code, body)
}

func TestGuestFlow_SubmitRequiresValidService(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/gast/initiate", "", map[string]interface{}{
		"email":         "gast@example.com",
		"consent_given": true,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	token := ts.Mailer.LastLeadToken(t)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/gast/confirm?token="+token, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Only unknown service ids: rejected, lead stays usable.
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/gast/request", "", map[string]interface{}{
		"token":       token,
		"plz":         "64283",
		"stadt":       "Darmstadt",
		"titel":       "Anfrage",
		"service_ids": []uint{999999},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	var lead models.Lead
	require.NoError(t, ts.DB.First(&lead, "email = ?", "gast@example.com").Error)
	assert.False(t, lead.UsedForRequest, "failed submission must not consume the lead")
}

func TestGuestFlow_ConcurrentSubmitConsumesOnce(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/gast/initiate", "", map[string]interface{}{
		"email":         "gast@example.com",
		"consent_given": true,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	token := ts.Mailer.LastLeadToken(t)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/gast/confirm?token="+token, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	services := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})

	const workers = 5
	var wg sync.WaitGroup
	codes := make([]int, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/gast/request", "", map[string]interface{}{
				"token":       token,
				"plz":         "64283",
				"stadt":       "Darmstadt",
				"titel":       "Anfrage",
				"service_ids": []uint{services[0].ID},
			})
			codes[idx] = res.StatusCode
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		if code == http.StatusCreated {
			created++
		}
	}
	assert.Equal(t, 1, created, "exactly one concurrent submission may succeed")

	var count int64
	require.NoError(t, ts.DB.Model(&models.Request{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGuestFlow_InitiateConsumedLeadRejected(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	initiate := func() (int, string) {
		res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/gast/initiate", "", map[string]interface{}{
			"email":         "gast@example.com",
			"consent_given": true,
		})
		return res.StatusCode, body
	}

	code, body := initiate()
	require.Equal(t, http.StatusCreated, code, body)
	token := ts.Mailer.LastLeadToken(t)
	res, _ := ts.SendRequest(t, http.MethodGet, "/api/v1/gast/confirm?token="+token, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	services := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	res, body = ts.SendRequest(t, http.MethodPost, "/api/v1/gast/request", "", map[string]interface{}{
		"token":       token,
		"plz":         "64283",
		"stadt":       "Darmstadt",
		"titel":       "Anfrage",
		"service_ids": []uint{services[0].ID},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	// The lead is consumed; a fresh initiate for the same email is
	// rejected and no new mail goes out.
	mails := len(ts.Mailer.LeadConfirmations)
	code, body = initiate()
	assert.Equal(t, http.StatusConflict, code, body)
	assert.Contains(t, body, "ALREADY_USED")
	assert.Len(t, ts.Mailer.LeadConfirmations, mails)
}

func TestGuestFlow_ImageUploadLimits(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/gast/initiate", "", map[string]interface{}{
		"email":         "gast@example.com",
		"consent_given": true,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	token := ts.Mailer.LastLeadToken(t)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/gast/confirm?token="+token, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	services := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	fields := map[string][]string{
		"token":       {token},
		"plz":         {"64283"},
		"stadt":       {"Darmstadt"},
		"titel":       {"Anfrage mit Bildern"},
		"service_ids": {strconv.Itoa(int(services[0].ID))},
	}

	// Oversized file: rejected, lead stays usable.
	huge := make([]byte, ts.Config.Upload.MaxSize+1)
	res, body := ts.SendMultipart(t, http.MethodPost, "/api/v1/gast/request", "", fields, []helpers.UploadFile{
		{Field: "images", Name: "haus.jpg", ContentType: "image/jpeg", Content: huge},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "FILE_TOO_LARGE")

	// Disallowed content type: rejected, lead stays usable.
	res, body = ts.SendMultipart(t, http.MethodPost, "/api/v1/gast/request", "", fields, []helpers.UploadFile{
		{Field: "images", Name: "haus.exe", ContentType: "application/octet-stream", Content: []byte("MZ")},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Contains(t, body, "UNSUPPORTED_FILE_TYPE")

	var lead models.Lead
	require.NoError(t, ts.DB.First(&lead, "email = ?", "gast@example.com").Error)
	assert.False(t, lead.UsedForRequest, "rejected uploads must not consume the lead")

	// A valid image goes through and is stored.
	res, body = ts.SendMultipart(t, http.MethodPost, "/api/v1/gast/request", "", fields, []helpers.UploadFile{
		{Field: "images", Name: "haus.jpg", ContentType: "image/jpeg", Content: []byte("fake image bytes")},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var images []models.RequestImage
	require.NoError(t, ts.DB.Find(&images).Error)
	require.Len(t, images, 1)
	assert.Contains(t, images[0].Path, "requests/")
}

func TestGuestFlow_RegionNameCanonicalized(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	res, _ := ts.SendRequest(t, http.MethodPost, "/api/v1/gast/initiate", "", map[string]interface{}{
		"email":         "gast@example.com",
		"consent_given": true,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode)
	token := ts.Mailer.LastLeadToken(t)
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/gast/confirm?token="+token, "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	// Unknown PLZ, region typed in the wrong case: the snapshot still
	// carries the canonical spelling so matching keeps working.
	services := helpers.FindServiceTypes(t, ts, []string{"Photovoltaik"})
	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/gast/request", "", map[string]interface{}{
		"token":       token,
		"plz":         "99998",
		"stadt":       "Irgendwo",
		"region":      "rhein-main",
		"titel":       "Anfrage",
		"service_ids": []uint{services[0].ID},
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var request models.Request
	require.NoError(t, ts.DB.First(&request, "title = ?", "Anfrage").Error)
	assert.Equal(t, "Rhein-Main", request.Region)
}
