package handlers

import (
	"errors"
	"net/http"

	"cancha_reservas_web/internal/middleware"
	"cancha_reservas_web/internal/services"
	"cancha_reservas_web/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AdminReservasHandler holds the admin bookings service.
type AdminReservasHandler struct {
	adminReservas services.AdminReservasService
}

// NewAdminReservasHandler creates a new AdminReservasHandler.
func NewAdminReservasHandler(ars services.AdminReservasService) *AdminReservasHandler {
	return &AdminReservasHandler{adminReservas: ars}
}

// GenerarBloque submits a batch slot-generation request and relays the
// server's human-readable result.
func (h *AdminReservasHandler) GenerarBloque(c *gin.Context) {
	var req services.GenerarBloqueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	detail, err := h.adminReservas.GenerarBloque(c.Request.Context(), req, middleware.CurrentSession(c).Token)
	if err != nil {
		if errors.Is(err, services.ErrIntervaloInvalido) ||
			errors.Is(err, services.ErrRangoFechasInvalido) ||
			errors.Is(err, services.ErrRangoHorasInvalido) ||
			errors.Is(err, services.ErrFechaInvalida) {
			utils.RespondValidationFailed(c, err.Error())
			return
		}
		utils.LogError(err, "GenerarBloque: slot generation failed")
		respondServiceError(c, err, "Could not generate slots.")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"detail": detail})
}

// PagosPendientes lists bookings awaiting in-person payment.
func (h *AdminReservasHandler) PagosPendientes(c *gin.Context) {
	pendientes, err := h.adminReservas.PagosPendientes(c.Request.Context(), middleware.CurrentSession(c).Token)
	if err != nil {
		utils.LogError(err, "PagosPendientes: failed to load pending payments")
		respondServiceError(c, err, "Could not load pending payments.")
		return
	}
	c.JSON(http.StatusOK, pendientes)
}

// ConfirmarPago marks one booking as paid. The page refetches the pending
// list only after this succeeds; a failure leaves the list untouched.
func (h *AdminReservasHandler) ConfirmarPago(c *gin.Context) {
	reservaID, ok := pathID(c, "id_reserva")
	if !ok {
		return
	}
	if err := h.adminReservas.ConfirmarPago(c.Request.Context(), reservaID, middleware.CurrentSession(c).Token); err != nil {
		utils.LogError(err, "ConfirmarPago: payment confirmation failed")
		respondServiceError(c, err, "Could not confirm the payment.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"detail": "Pago registrado."})
}

// Estadisticas serves the dashboard KPIs.
func (h *AdminReservasHandler) Estadisticas(c *gin.Context) {
	stats, err := h.adminReservas.Estadisticas(c.Request.Context(), middleware.CurrentSession(c).Token)
	if err != nil {
		utils.LogError(err, "Estadisticas: failed to load dashboard stats")
		respondServiceError(c, err, "Could not load statistics.")
		return
	}
	c.JSON(http.StatusOK, stats)
}
