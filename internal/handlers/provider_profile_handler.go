package handlers

import (
	"net/http"

	"ecomatch_backend/internal/services"
	"ecomatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ProviderProfileHandler struct {
	*BaseHandler
	profileService *services.ProviderProfileService
}

func NewProviderProfileHandler(base *BaseHandler, profileService *services.ProviderProfileService) *ProviderProfileHandler {
	return &ProviderProfileHandler{BaseHandler: base, profileService: profileService}
}

func (h *ProviderProfileHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateProviderProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProviderProfileHandler) GetOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.profileService.GetOwn(c.Request.Context(), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get serves the public profile view; accesses are counted per client
// IP.
func (h *ProviderProfileHandler) Get(c *gin.Context) {
	resp, err := h.profileService.Get(c.Request.Context(), c.Param("id"), c.ClientIP())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// List serves the public provider directory; accesses are counted per
// client IP.
func (h *ProviderProfileHandler) List(c *gin.Context) {
	limit, offset := ParsePagination(c)
	profiles, total, err := h.profileService.List(c.Request.Context(), c.ClientIP(), limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles, "total": total})
}

func (h *ProviderProfileHandler) Update(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateProviderProfileRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.profileService.Update(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProviderProfileHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.profileService.Delete(c.Request.Context(), userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Profile deleted"})
}
