package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ecomatch_backend/internal/models"
)

// ActivationTokenizer issues single-purpose account activation tokens.
// The MAC covers the user id, the password hash and the last-login
// marker, so a token implicitly invalidates when the password changes
// or the user logs in. Tokens expire after the configured TTL.
type ActivationTokenizer struct {
	secret []byte
	ttl    time.Duration
}

func NewActivationTokenizer(secret string, ttl time.Duration) *ActivationTokenizer {
	return &ActivationTokenizer{secret: []byte(secret), ttl: ttl}
}

// MakeToken issues a token of the form "<ts-base36>-<mac-hex>".
func (a *ActivationTokenizer) MakeToken(user *models.User) string {
	ts := time.Now().Unix()
	return fmt.Sprintf("%s-%s", strconv.FormatInt(ts, 36), a.mac(user, ts))
}

// CheckToken verifies the token against the user's current state.
func (a *ActivationTokenizer) CheckToken(user *models.User, token string) bool {
	parts := strings.SplitN(token, "-", 2)
	if len(parts) != 2 {
		return false
	}

	ts, err := strconv.ParseInt(parts[0], 36, 64)
	if err != nil {
		return false
	}
	if time.Since(time.Unix(ts, 0)) > a.ttl {
		return false
	}

	expected := a.mac(user, ts)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(parts[1])) == 1
}

func (a *ActivationTokenizer) mac(user *models.User, ts int64) string {
	var lastLogin int64
	if user.LastLogin != nil {
		lastLogin = user.LastLogin.Unix()
	}

	h := hmac.New(sha256.New, a.secret)
	fmt.Fprintf(h, "%s|%s|%d|%d", user.ID, user.PasswordHash, lastLogin, ts)
	return hex.EncodeToString(h.Sum(nil))
}

// EncodeUID encodes a user id for embedding in confirmation URLs.
func EncodeUID(userID string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(userID))
}

// DecodeUID reverses EncodeUID.
func DecodeUID(uid string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(uid)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
