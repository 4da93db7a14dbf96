package handlers

import (
	"net/http"

	"ecomatch_backend/internal/services"
	"ecomatch_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// GeoHandler serves the public geographic catalog.
type GeoHandler struct {
	*BaseHandler
	geoService *services.GeoService
}

func NewGeoHandler(base *BaseHandler, geoService *services.GeoService) *GeoHandler {
	return &GeoHandler{BaseHandler: base, geoService: geoService}
}

func (h *GeoHandler) ListBundeslaender(c *gin.Context) {
	laender, err := h.geoService.ListBundeslaender(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bundeslaender": laender})
}

func (h *GeoHandler) ListRegionen(c *gin.Context) {
	landID := uint(ParseQueryInt(c, "land_id", 0))
	regionen, err := h.geoService.ListRegionen(c.Request.Context(), landID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"regionen": regionen})
}

// LookupPlz resolves a postal code to city, region and state.
func (h *GeoHandler) LookupPlz(c *gin.Context) {
	plz := c.Query("plz")
	if plz == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing plz parameter"))
		return
	}

	resp, err := h.geoService.LookupPlz(c.Request.Context(), plz)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListStreets returns the street names for a postal code.
func (h *GeoHandler) ListStreets(c *gin.Context) {
	plz := c.Query("plz")
	if plz == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing plz parameter"))
		return
	}

	resp, err := h.geoService.ListStreets(c.Request.Context(), plz)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
