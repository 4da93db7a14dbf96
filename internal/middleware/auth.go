package middleware

import (
	"strings"

	"ecomatch_backend/internal/auth"
	"ecomatch_backend/internal/models"
	"ecomatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	// Gin context keys set by AuthMiddleware.
	ContextUserID   = "userID"
	ContextUserRole = "userRole"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity on the context.
func AuthMiddleware(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			abortWith(c, apperrors.ErrUnauthorized)
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenStr == "" {
			abortWith(c, apperrors.ErrUnauthorized)
			return
		}

		claims, err := jwtManager.ParseToken(tokenStr)
		if err != nil {
			abortWith(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserRole, claims.Role)
		c.Next()
	}
}

// RequireRoles allows only callers whose role is in the given set.
// Must run after AuthMiddleware.
func RequireRoles(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.UserRole(c.GetString(ContextUserRole))
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		abortWith(c, apperrors.ErrForbidden)
	}
}

// RequireProvider allows provider-capable roles only.
func RequireProvider() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.UserRole(c.GetString(ContextUserRole))
		if !role.CanOffer() {
			abortWith(c, apperrors.ErrNotAProvider)
			return
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.HTTPCode, apperrors.ErrorResponse{Error: err})
}
