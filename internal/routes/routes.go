package routes

import (
	"ecomatch_backend/internal/auth"
	"ecomatch_backend/internal/handlers"
	"ecomatch_backend/internal/middleware"
	"ecomatch_backend/internal/models"

	"github.com/gin-gonic/gin"
)

// Register wires all API routes onto the engine. Public endpoints come
// first, then the authenticated API under the JWT middleware.
func Register(router *gin.Engine, h *handlers.AppHandlers, jwtManager *auth.JWTManager) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	router.GET("/metrics", middleware.MetricsHandler())

	api := router.Group("/api/v1")

	// Authentication
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
		authGroup.POST("/resend-activation", h.Auth.ResendActivation)
		authGroup.GET("/confirm-email/:uid/:token", h.Auth.ConfirmEmail)
	}

	// Guest lead workflow
	gast := api.Group("/gast")
	{
		gast.POST("/initiate", h.Guest.Initiate)
		gast.GET("/confirm", h.Guest.Confirm)
		gast.POST("/request", h.Guest.SubmitRequest)
	}

	// Public catalogs
	api.GET("/services", h.Catalog.List)
	api.GET("/bundeslaender", h.Geo.ListBundeslaender)
	api.GET("/regionen", h.Geo.ListRegionen)
	api.GET("/plz", h.Geo.LookupPlz)
	api.GET("/strassen", h.Geo.ListStreets)

	// Public provider directory
	api.GET("/providers", h.Profiles.List)
	api.GET("/providers/:id", h.Profiles.Get)

	// Authenticated API
	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(jwtManager))
	{
		authed.POST("/auth/logout", h.Auth.Logout)

		authed.GET("/me", h.Users.GetMe)
		authed.PATCH("/me", h.Users.UpdateMe)

		authed.POST("/requests", h.Requests.Create)
		authed.GET("/requests", h.Requests.List)
		authed.GET("/requests/:id", h.Requests.Get)
		authed.GET("/requests/:id/offers", h.Requests.ListOffers)
		authed.POST("/requests/:id/accept", middleware.RequireProvider(), h.Offers.Accept)

		authed.POST("/offers", h.Offers.Create)
		authed.GET("/offers", h.Offers.ListOwn)

		authed.GET("/matching", middleware.RequireProvider(), h.Matching.Matches)

		authed.POST("/profile", h.Profiles.Create)
		authed.GET("/profile", h.Profiles.GetOwn)
		authed.PATCH("/profile", h.Profiles.Update)
		authed.DELETE("/profile", h.Profiles.Delete)

		admin := authed.Group("/admin", middleware.RequireRoles(models.UserRoleAdmin))
		admin.GET("/users", h.Users.List)
	}
}
