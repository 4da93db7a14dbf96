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

func TestAdmin_ListUsers(t *testing.T) {
	ts := helpers.NewTestServer(t)
	defer ts.Close()
	ts.ClearTables(t)

	adminToken, _ := helpers.CreateAndLoginUser(t, ts, "admin@example.com", "secret123", models.UserRoleAdmin)
	clientToken, _ := helpers.CreateAndLoginUser(t, ts, "kunde@example.com", "secret123", models.UserRoleClient)
	helpers.CreateUser(t, ts, "anbieter@example.com", "secret123", models.UserRoleProvider)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/v1/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var listResp struct {
		Users []struct {
			Email string `json:"email"`
		} `json:"users"`
		Total int64 `json:"total"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &listResp))
	assert.Equal(t, int64(3), listResp.Total)
	assert.Len(t, listResp.Users, 3)

	// Pagination caps the page.
	res, body = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/users?page=1&page_size=2", adminToken, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	require.NoError(t, json.Unmarshal([]byte(body), &listResp))
	assert.Equal(t, int64(3), listResp.Total)
	assert.Len(t, listResp.Users, 2)

	// Non-admins are rejected.
	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/users", clientToken, nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode)

	res, _ = ts.SendRequest(t, http.MethodGet, "/api/v1/admin/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
}
