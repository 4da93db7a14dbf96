package integration

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"ecomatch_backend/internal/models"
	"ecomatch_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeo_Bundeslaender(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/bundeslaender", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Bundeslaender []struct {
			Name string `json:"name"`
		} `json:"bundeslaender"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Len(t, resp.Bundeslaender, 16)
}

func TestGeo_RegionenFilteredByLand(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	var hessen models.Bundesland
	require.NoError(t, ts.DB.First(&hessen, "name = ?", "Hessen").Error)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/regionen?land_id="+itoa(hessen.ID), "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Regionen []struct {
			Name string `json:"name"`
		} `json:"regionen"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Len(t, resp.Regionen, 5)
}

func TestGeo_PlzLookup(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	seedPlzOrt(t, ts, "64283", "Darmstadt", "Rhein-Main", "Hessen")

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/plz?plz=64283", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Plz    string `json:"plz"`
		Ort    string `json:"ort"`
		Region string `json:"region"`
		Land   string `json:"land"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, "Darmstadt", resp.Ort)
	assert.Equal(t, "Rhein-Main", resp.Region)
	assert.Equal(t, "Hessen", resp.Land)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/plz?plz=00000", "", nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}

func TestGeo_StreetsAreDistinct(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()

	plzOrt := seedPlzOrt(t, ts, "64283", "Darmstadt", "Rhein-Main", "Hessen")

	ts.DB.Where("plz_ort_id = ?", plzOrt.ID).Delete(&models.Strasse{})
	for _, name := range []string{"Luisenstraße", "Luisenstraße", "Wilhelminenstraße"} {
		require.NoError(t, ts.DB.Create(&models.Strasse{Name: name, PlzOrtID: plzOrt.ID}).Error)
	}

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/strassen?plz=64283", "", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var resp struct {
		Strassen []string `json:"strassen"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &resp))
	assert.Equal(t, []string{"Luisenstraße", "Wilhelminenstraße"}, resp.Strassen)
}

func itoa(v uint) string {
	return strconv.Itoa(int(v))
}
