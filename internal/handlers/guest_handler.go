package handlers

import (
	"mime/multipart"
	"net/http"

	"ecomatch_backend/internal/middleware"
	"ecomatch_backend/internal/services"
	"ecomatch_backend/internal/services/dto"
	"ecomatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// GuestHandler serves the unauthenticated lead workflow under /gast.
type GuestHandler struct {
	*BaseHandler
	leadService *services.LeadService
}

func NewGuestHandler(base *BaseHandler, leadService *services.LeadService) *GuestHandler {
	return &GuestHandler{BaseHandler: base, leadService: leadService}
}

// Initiate records the guest email and mails the confirmation link.
func (h *GuestHandler) Initiate(c *gin.Context) {
	var req dto.InitiateLeadRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.leadService.Initiate(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	middleware.CountLeadTransition("initiated")
	c.JSON(http.StatusCreated, resp)
}

// Confirm validates the token from the mailed link. Accepts the token
// as a query parameter so the link itself can hit the API directly.
func (h *GuestHandler) Confirm(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing token"))
		return
	}

	resp, err := h.leadService.Confirm(c.Request.Context(), token)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	middleware.CountLeadTransition("validated")
	c.JSON(http.StatusOK, resp)
}

// SubmitRequest consumes a validated token and creates the request.
// Multipart so the guest can attach images in the same shot.
func (h *GuestHandler) SubmitRequest(c *gin.Context) {
	var req dto.GuestSubmitRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	var images []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		images = form.File["images"]
	}

	resp, err := h.leadService.SubmitRequest(c.Request.Context(), &req, images)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	middleware.CountLeadTransition("consumed")
	c.JSON(http.StatusCreated, resp)
}
