package handlers

import (
	"net/http"

	"cancha_reservas_web/internal/middleware"
	"cancha_reservas_web/internal/services"
	"cancha_reservas_web/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler holds the catalog service.
type CatalogHandler struct {
	catalogService services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(cs services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: cs}
}

// Catalog serves the landing page: venues for the filter plus the (possibly
// venue-filtered) field cards. An absent id_sede means all venues; the
// filter parameter is omitted upstream, never sent as a sentinel.
func (h *CatalogHandler) Catalog(c *gin.Context) {
	var sedeID *int64
	if v := c.Query("id_sede"); v != "" {
		id, err := utils.StrToInt64(v)
		if err != nil {
			utils.RespondValidationFailed(c, "invalid id_sede")
			return
		}
		sedeID = &id
	}

	view, err := h.catalogService.Catalog(c.Request.Context(), sedeID, middleware.CurrentSession(c).LoggedIn())
	if err != nil {
		utils.LogError(err, "Catalog: failed to load venues or fields")
		respondServiceError(c, err, "Could not load the catalog.")
		return
	}
	c.JSON(http.StatusOK, view)
}
