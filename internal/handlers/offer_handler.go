package handlers

import (
	"net/http"

	"ecomatch_backend/internal/middleware"
	"ecomatch_backend/internal/services"
	"ecomatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type OfferHandler struct {
	*BaseHandler
	offerService *services.OfferService
}

func NewOfferHandler(base *BaseHandler, offerService *services.OfferService) *OfferHandler {
	return &OfferHandler{BaseHandler: base, offerService: offerService}
}

func (h *OfferHandler) Create(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateOfferRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.offerService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Accept lets the authenticated provider take the request; it leaves
// the open pool atomically.
func (h *OfferHandler) Accept(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.offerService.Accept(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	middleware.CountOfferAccepted()
	c.JSON(http.StatusOK, resp)
}

// ListOwn returns the authenticated provider's offers.
func (h *OfferHandler) ListOwn(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	limit, offset := ParsePagination(c)
	offers, total, err := h.offerService.ListOwn(c.Request.Context(), userID, limit, offset)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"offers": offers, "total": total})
}
