package handlers

import (
	"errors"
	"net/http"
	"time"

	"cancha_reservas_web/internal/middleware"
	"cancha_reservas_web/internal/services"
	"cancha_reservas_web/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AgendaHandler holds the agenda service.
type AgendaHandler struct {
	agendaService services.AgendaService
}

// NewAgendaHandler creates a new AgendaHandler.
func NewAgendaHandler(as services.AgendaService) *AgendaHandler {
	return &AgendaHandler{agendaService: as}
}

// Agenda serves the slot-selection page for one field and date. The date
// defaults to today, matching the page's date picker.
func (h *AgendaHandler) Agenda(c *gin.Context) {
	canchaID, ok := pathID(c, "id_cancha")
	if !ok {
		return
	}
	fecha := c.DefaultQuery("fecha", time.Now().Format("2006-01-02"))

	view, err := h.agendaService.Agenda(c.Request.Context(), canchaID, fecha)
	if err != nil {
		if errors.Is(err, services.ErrFechaInvalida) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "Agenda: failed to load availability")
		respondServiceError(c, err, "Could not load availability for this date.")
		return
	}
	c.JSON(http.StatusOK, view)
}

// Lock attempts to acquire the temporary checkout hold on one slot. A lost
// race surfaces the bookings service's detail inline and leaves the
// displayed slot states untouched for the user to retry.
func (h *AgendaHandler) Lock(c *gin.Context) {
	canchaID, ok := pathID(c, "id_cancha")
	if !ok {
		return
	}
	horarioID, ok := pathID(c, "id_horario")
	if !ok {
		return
	}
	fecha := c.DefaultQuery("fecha", time.Now().Format("2006-01-02"))
	token := middleware.CurrentSession(c).Token

	result, err := h.agendaService.Lock(c.Request.Context(), canchaID, horarioID, fecha, token)
	if err != nil {
		if errors.Is(err, services.ErrFechaInvalida) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "Lock: failed to acquire slot hold")
		respondServiceError(c, err, "This slot is no longer available.")
		return
	}
	c.JSON(http.StatusOK, result)
}
