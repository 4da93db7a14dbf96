package handlers

import (
	"net/http"

	"ecomatch_backend/internal/services"
	"ecomatch_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type MatchingHandler struct {
	*BaseHandler
	matchingService *services.MatchingService
}

func NewMatchingHandler(base *BaseHandler, matchingService *services.MatchingService) *MatchingHandler {
	return &MatchingHandler{BaseHandler: base, matchingService: matchingService}
}

// Matches returns the open requests matching the caller's provider
// profile.
func (h *MatchingHandler) Matches(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var filter dto.MatchingFilter
	if !h.BindAndValidateQuery(c, &filter) {
		return
	}

	resp, err := h.matchingService.MatchesForUser(c.Request.Context(), userID, &filter)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
