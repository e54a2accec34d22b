package handlers

import (
	"net/http"

	"cancha_reservas_web/internal/middleware"
	"cancha_reservas_web/internal/services"
	"cancha_reservas_web/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AdminCatalogHandler holds the admin venue/field management service.
type AdminCatalogHandler struct {
	adminCatalog services.AdminCatalogService
}

// NewAdminCatalogHandler creates a new AdminCatalogHandler.
func NewAdminCatalogHandler(acs services.AdminCatalogService) *AdminCatalogHandler {
	return &AdminCatalogHandler{adminCatalog: acs}
}

func (h *AdminCatalogHandler) ListSedes(c *gin.Context) {
	sedes, err := h.adminCatalog.ListSedes(c.Request.Context())
	if err != nil {
		utils.LogError(err, "ListSedes: failed to load venues")
		respondServiceError(c, err, "Could not load venues.")
		return
	}
	c.JSON(http.StatusOK, sedes)
}

func (h *AdminCatalogHandler) CreateSede(c *gin.Context) {
	var req services.SedeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	sede, err := h.adminCatalog.CreateSede(c.Request.Context(), req, middleware.CurrentSession(c).Token)
	if err != nil {
		utils.LogError(err, "CreateSede: venue creation failed")
		respondServiceError(c, err, "Could not save the venue.")
		return
	}
	c.JSON(http.StatusCreated, sede)
}

func (h *AdminCatalogHandler) UpdateSede(c *gin.Context) {
	sedeID, ok := pathID(c, "id_sede")
	if !ok {
		return
	}
	var req services.SedeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	sede, err := h.adminCatalog.UpdateSede(c.Request.Context(), sedeID, req, middleware.CurrentSession(c).Token)
	if err != nil {
		utils.LogError(err, "UpdateSede: venue update failed")
		respondServiceError(c, err, "Could not save the venue.")
		return
	}
	c.JSON(http.StatusOK, sede)
}

// DeleteSede performs the delete; the explicit confirmation step lives in
// the page, which only calls this after the admin confirmed.
func (h *AdminCatalogHandler) DeleteSede(c *gin.Context) {
	sedeID, ok := pathID(c, "id_sede")
	if !ok {
		return
	}
	if err := h.adminCatalog.DeleteSede(c.Request.Context(), sedeID, middleware.CurrentSession(c).Token); err != nil {
		utils.LogError(err, "DeleteSede: venue deletion failed")
		respondServiceError(c, err, "Could not delete the venue.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Sede eliminada."})
}

func (h *AdminCatalogHandler) ListCanchas(c *gin.Context) {
	var sedeID *int64
	if v := c.Query("id_sede"); v != "" {
		id, err := utils.StrToInt64(v)
		if err != nil {
			utils.RespondValidationFailed(c, "invalid id_sede")
			return
		}
		sedeID = &id
	}
	canchas, err := h.adminCatalog.ListCanchas(c.Request.Context(), sedeID)
	if err != nil {
		utils.LogError(err, "ListCanchas: failed to load fields")
		respondServiceError(c, err, "Could not load fields.")
		return
	}
	c.JSON(http.StatusOK, canchas)
}

func (h *AdminCatalogHandler) CreateCancha(c *gin.Context) {
	var req services.CanchaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	cancha, err := h.adminCatalog.CreateCancha(c.Request.Context(), req, middleware.CurrentSession(c).Token)
	if err != nil {
		utils.LogError(err, "CreateCancha: field creation failed")
		respondServiceError(c, err, "Could not save the field.")
		return
	}
	c.JSON(http.StatusCreated, cancha)
}

func (h *AdminCatalogHandler) UpdateCancha(c *gin.Context) {
	canchaID, ok := pathID(c, "id_cancha")
	if !ok {
		return
	}
	var req services.CanchaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	cancha, err := h.adminCatalog.UpdateCancha(c.Request.Context(), canchaID, req, middleware.CurrentSession(c).Token)
	if err != nil {
		utils.LogError(err, "UpdateCancha: field update failed")
		respondServiceError(c, err, "Could not save the field.")
		return
	}
	c.JSON(http.StatusOK, cancha)
}

func (h *AdminCatalogHandler) DeleteCancha(c *gin.Context) {
	canchaID, ok := pathID(c, "id_cancha")
	if !ok {
		return
	}
	if err := h.adminCatalog.DeleteCancha(c.Request.Context(), canchaID, middleware.CurrentSession(c).Token); err != nil {
		utils.LogError(err, "DeleteCancha: field deletion failed")
		respondServiceError(c, err, "Could not delete the field.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Cancha eliminada."})
}

// SubirImagen forwards a photo upload and returns the URL to store on the
// field record.
func (h *AdminCatalogHandler) SubirImagen(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondValidationFailed(c, "a file is required")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeBadRequest, "Could not read the uploaded file.", err.Error()))
		return
	}
	defer file.Close()

	url, err := h.adminCatalog.SubirImagen(c.Request.Context(), fileHeader.Filename, file, middleware.CurrentSession(c).Token)
	if err != nil {
		utils.LogError(err, "SubirImagen: image upload failed")
		respondServiceError(c, err, "Could not upload the image.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// GenerarDescripcion returns AI-assisted description text that pre-fills the
// form; nothing is saved until the admin submits.
func (h *AdminCatalogHandler) GenerarDescripcion(c *gin.Context) {
	var req services.DescripcionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}
	descripcion, err := h.adminCatalog.GenerarDescripcion(c.Request.Context(), req, middleware.CurrentSession(c).Token)
	if err != nil {
		utils.LogError(err, "GenerarDescripcion: description generation failed")
		respondServiceError(c, err, "Could not generate a description.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"descripcion": descripcion})
}
