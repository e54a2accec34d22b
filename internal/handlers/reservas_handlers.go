package handlers

import (
	"errors"
	"net/http"

	"cancha_reservas_web/internal/middleware"
	"cancha_reservas_web/internal/services"
	"cancha_reservas_web/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ReservasHandler holds the checkout/history service.
type ReservasHandler struct {
	reservasService services.ReservasService
}

// NewReservasHandler creates a new ReservasHandler.
func NewReservasHandler(rs services.ReservasService) *ReservasHandler {
	return &ReservasHandler{reservasService: rs}
}

// Resumen serves the checkout summary for a held slot.
func (h *ReservasHandler) Resumen(c *gin.Context) {
	horarioID, ok := pathID(c, "id_horario")
	if !ok {
		return
	}

	resumen, err := h.reservasService.Resumen(c.Request.Context(), horarioID, middleware.CurrentSession(c).Token)
	if err != nil {
		utils.LogError(err, "Resumen: failed to load checkout detail")
		respondServiceError(c, err, "Could not load the checkout detail.")
		return
	}
	c.JSON(http.StatusOK, resumen)
}

// Confirmar submits the booking with the chosen payment method. On failure
// the upstream detail is surfaced and the form stays editable; an expired
// hold is just another upstream error here.
func (h *ReservasHandler) Confirmar(c *gin.Context) {
	horarioID, ok := pathID(c, "id_horario")
	if !ok {
		return
	}
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	result, err := h.reservasService.Confirmar(c.Request.Context(), horarioID, req, middleware.CurrentSession(c).Token)
	if err != nil {
		if errors.Is(err, services.ErrMetodoPagoInvalido) || errors.Is(err, services.ErrTarjetaIncompleta) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "Confirmar: booking creation failed")
		respondServiceError(c, err, "Could not complete the booking.")
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Cancelar releases the hold best-effort and always navigates back: a failed
// release never blocks leaving the checkout page.
func (h *ReservasHandler) Cancelar(c *gin.Context) {
	horarioID, ok := pathID(c, "id_horario")
	if !ok {
		return
	}
	redirect := h.reservasService.Cancelar(c.Request.Context(), horarioID, c.Query("volver"), middleware.CurrentSession(c).Token)
	c.JSON(http.StatusOK, gin.H{"redirect": redirect})
}

// MiHistorial lists the caller's own bookings. Scoping happens upstream via
// the bearer token; no user id is ever sent.
func (h *ReservasHandler) MiHistorial(c *gin.Context) {
	reservas, err := h.reservasService.MiHistorial(c.Request.Context(), middleware.CurrentSession(c).Token)
	if err != nil {
		utils.LogError(err, "MiHistorial: failed to load booking history")
		respondServiceError(c, err, "Could not load your booking history.")
		return
	}
	c.JSON(http.StatusOK, reservas)
}
