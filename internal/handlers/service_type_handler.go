package handlers

import (
	"net/http"

	"ecomatch_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// ServiceTypeHandler serves the public service catalog.
type ServiceTypeHandler struct {
	*BaseHandler
	catalog *services.ServiceTypeService
}

func NewServiceTypeHandler(base *BaseHandler, catalog *services.ServiceTypeService) *ServiceTypeHandler {
	return &ServiceTypeHandler{BaseHandler: base, catalog: catalog}
}

func (h *ServiceTypeHandler) List(c *gin.Context) {
	types, err := h.catalog.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"services": types})
}
