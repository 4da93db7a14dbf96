package auth

import (
	"testing"
	"time"

	"ecomatch_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func testUser() *models.User {
	return &models.User{
		BaseModel:    models.BaseModel{ID: "9b2e7a14-1111-4222-8333-444455556666"},
		Email:        "a@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}
}

func TestActivationToken_RoundTrip(t *testing.T) {
	tokenizer := NewActivationTokenizer("secret", 72*time.Hour)
	user := testUser()

	token := tokenizer.MakeToken(user)
	assert.True(t, tokenizer.CheckToken(user, token))
}

func TestActivationToken_InvalidatedByPasswordChange(t *testing.T) {
	tokenizer := NewActivationTokenizer("secret", 72*time.Hour)
	user := testUser()

	token := tokenizer.MakeToken(user)
	user.PasswordHash = "$2a$10$differenthashvalue0000"
	assert.False(t, tokenizer.CheckToken(user, token))
}

func TestActivationToken_InvalidatedByLogin(t *testing.T) {
	tokenizer := NewActivationTokenizer("secret", 72*time.Hour)
	user := testUser()

	token := tokenizer.MakeToken(user)
	now := time.Now()
	user.LastLogin = &now
	assert.False(t, tokenizer.CheckToken(user, token))
}

func TestActivationToken_Expired(t *testing.T) {
	tokenizer := NewActivationTokenizer("secret", -1*time.Second)
	user := testUser()

	token := tokenizer.MakeToken(user)
	assert.False(t, tokenizer.CheckToken(user, token))
}

func TestActivationToken_Garbage(t *testing.T) {
	tokenizer := NewActivationTokenizer("secret", 72*time.Hour)
	user := testUser()

	assert.False(t, tokenizer.CheckToken(user, ""))
	assert.False(t, tokenizer.CheckToken(user, "no-dash-token!"))
	assert.False(t, tokenizer.CheckToken(user, "zzzz-deadbeef"))
}

func TestEncodeDecodeUID(t *testing.T) {
	uid := EncodeUID("some-user-id")
	decoded, err := DecodeUID(uid)
	assert.NoError(t, err)
	assert.Equal(t, "some-user-id", decoded)

	_, err = DecodeUID("%%%invalid%%%")
	assert.Error(t, err)
}

func TestNewLeadToken(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := NewLeadToken()
		assert.NoError(t, err)
		// 32 bytes base64url without padding
		assert.Len(t, token, 43)
		assert.False(t, seen[token], "tokens must not repeat")
		seen[token] = true
	}
}

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)

	token, err := manager.GenerateToken("user-1", string(models.UserRoleClient))
	assert.NoError(t, err)

	claims, err := manager.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "client", claims.Role)
}

func TestJWTManager_WrongSecret(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour)
	other := NewJWTManager("other-secret", time.Hour)

	token, err := manager.GenerateToken("user-1", "client")
	assert.NoError(t, err)

	_, err = other.ParseToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("super_password123")
	assert.NoError(t, err)
	assert.True(t, CheckPasswordHash("super_password123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}
