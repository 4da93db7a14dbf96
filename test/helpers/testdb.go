package helpers

import (
	"encoding/json"
	"net/http"
	"testing"

	"ecomatch_backend/internal/auth"
	"ecomatch_backend/internal/models"

	"github.com/stretchr/testify/require"
)

// CreateUser inserts an active user with a bcrypt-hashed password.
func CreateUser(t *testing.T, ts *TestServer, email, password string, role models.UserRole) *models.User {
	t.Helper()

	hash, err := auth.HashPassword(password)
	require.NoError(t, err)

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
	}
	require.NoError(t, ts.DB.Create(user).Error)
	return user
}

// CreateAndLoginUser creates an active user and returns an access
// token obtained through the login endpoint.
func CreateAndLoginUser(t *testing.T, ts *TestServer, email, password string, role models.UserRole) (string, *models.User) {
	t.Helper()

	user := CreateUser(t, ts, email, password, role)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "login should succeed: %s", body)

	var loginResp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal([]byte(body), &loginResp))
	require.NotEmpty(t, loginResp.AccessToken)

	return loginResp.AccessToken, user
}

// CreateProviderWithProfile creates a logged-in provider whose profile
// offers the given services in the given regions.
func CreateProviderWithProfile(t *testing.T, ts *TestServer, email string, serviceNames, regionNames []string) (string, *models.User) {
	t.Helper()

	token, user := CreateAndLoginUser(t, ts, email, "provider-pass", models.UserRoleProvider)

	profile := &models.ProviderProfile{
		UserID:          user.ID,
		Services:        FindServiceTypes(t, ts, serviceNames),
		CoverageRegions: FindRegions(t, ts, regionNames),
	}
	require.NoError(t, ts.DB.Create(profile).Error)
	return token, user
}

// FindServiceTypes loads seeded service types by name.
func FindServiceTypes(t *testing.T, ts *TestServer, names []string) []models.ServiceType {
	t.Helper()

	var types []models.ServiceType
	require.NoError(t, ts.DB.Where("name IN ?", names).Find(&types).Error)
	require.Len(t, types, len(names), "all requested service types must be seeded")
	return types
}

// FindRegions loads seeded regions by name.
func FindRegions(t *testing.T, ts *TestServer, names []string) []models.Region {
	t.Helper()

	var regions []models.Region
	require.NoError(t, ts.DB.Where("name IN ?", names).Find(&regions).Error)
	require.Len(t, regions, len(names), "all requested regions must be seeded")
	return regions
}

// CreateOpenRequest inserts an open request with the given primary
// service and region snapshot.
func CreateOpenRequest(t *testing.T, ts *TestServer, clientID *string, title, region string, services []models.ServiceType) *models.Request {
	t.Helper()

	require.NotEmpty(t, services)
	request := &models.Request{
		ClientID:      clientID,
		Title:         title,
		Status:        models.RequestStatusNew,
		ServiceTypeID: services[0].ID,
		Services:      services,
		Plz:           "64283",
		Stadt:         "Darmstadt",
		Region:        region,
		Land:          "Hessen",
	}
	require.NoError(t, ts.DB.Create(request).Error)
	return request
}
