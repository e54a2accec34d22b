package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cancha_reservas_web/internal/agenda"
	"cancha_reservas_web/internal/clients"
	"cancha_reservas_web/internal/models"
)

// --- Custom Service Errors for Slot Generation ---
var (
	ErrIntervaloInvalido   = errors.New("intervalo_minutos must be 30, 60 or 90")
	ErrRangoFechasInvalido = errors.New("fecha_fin must not precede fecha_inicio")
	ErrRangoHorasInvalido  = errors.New("hora_fin must be after hora_inicio")
)

// validIntervalos is the fixed slot-duration choice the generation form offers.
var validIntervalos = map[int]bool{30: true, 60: true, 90: true}

// GenerarBloqueRequest is the batch slot-generation form: date range x daily
// time window x slot duration for one field.
type GenerarBloqueRequest struct {
	CanchaID         int64  `json:"id_cancha" binding:"required"`
	FechaInicio      string `json:"fecha_inicio" binding:"required"`
	FechaFin         string `json:"fecha_fin" binding:"required"`
	HoraInicio       string `json:"hora_inicio" binding:"required"`
	HoraFin          string `json:"hora_fin" binding:"required"`
	IntervaloMinutos int    `json:"intervalo_minutos" binding:"required"`
}

// AdminReservasService backs the admin slot-generation, cash-desk and
// dashboard pages.
type AdminReservasService interface {
	GenerarBloque(ctx context.Context, req GenerarBloqueRequest, token string) (string, error)
	PagosPendientes(ctx context.Context, token string) ([]models.Reserva, error)
	ConfirmarPago(ctx context.Context, reservaID int64, token string) error
	Estadisticas(ctx context.Context, token string) (*models.Estadisticas, error)
}

type adminReservasService struct {
	bookings clients.BookingsClient
}

// NewAdminReservasService creates a new instance of AdminReservasService.
func NewAdminReservasService(bookings clients.BookingsClient) AdminReservasService {
	return &adminReservasService{bookings: bookings}
}

// GenerarBloque validates the ranges locally and forwards the payload
// field-for-field; the returned string is the server's human-readable result
// (typically a count of slots created).
func (s *adminReservasService) GenerarBloque(ctx context.Context, req GenerarBloqueRequest, token string) (string, error) {
	if !validIntervalos[req.IntervaloMinutos] {
		return "", fmt.Errorf("%w: got %d", ErrIntervaloInvalido, req.IntervaloMinutos)
	}

	inicio, err := time.Parse("2006-01-02", req.FechaInicio)
	if err != nil {
		return "", fmt.Errorf("fecha_inicio: %w", ErrFechaInvalida)
	}
	fin, err := time.Parse("2006-01-02", req.FechaFin)
	if err != nil {
		return "", fmt.Errorf("fecha_fin: %w", ErrFechaInvalida)
	}
	if fin.Before(inicio) {
		return "", ErrRangoFechasInvalido
	}

	horaInicio, err := agenda.ParseHora(req.HoraInicio)
	if err != nil {
		return "", fmt.Errorf("hora_inicio: %w", ErrRangoHorasInvalido)
	}
	horaFin, err := agenda.ParseHora(req.HoraFin)
	if err != nil {
		return "", fmt.Errorf("hora_fin: %w", ErrRangoHorasInvalido)
	}
	if !horaFin.After(horaInicio) {
		return "", ErrRangoHorasInvalido
	}

	return s.bookings.GenerarBloque(ctx, clients.GenerarBloquePayload{
		CanchaID:         req.CanchaID,
		FechaInicio:      req.FechaInicio,
		FechaFin:         req.FechaFin,
		HoraInicio:       req.HoraInicio,
		HoraFin:          req.HoraFin,
		IntervaloMinutos: req.IntervaloMinutos,
	}, token)
}

func (s *adminReservasService) PagosPendientes(ctx context.Context, token string) ([]models.Reserva, error) {
	pendientes, err := s.bookings.PagosPendientes(ctx, token)
	if err != nil {
		return nil, err
	}
	if pendientes == nil {
		pendientes = []models.Reserva{}
	}
	return pendientes, nil
}

// ConfirmarPago marks one in-person booking as paid. The caller refetches the
// pending list afterwards; nothing is removed optimistically.
func (s *adminReservasService) ConfirmarPago(ctx context.Context, reservaID int64, token string) error {
	return s.bookings.ConfirmarPago(ctx, reservaID, token)
}

func (s *adminReservasService) Estadisticas(ctx context.Context, token string) (*models.Estadisticas, error) {
	return s.bookings.Estadisticas(ctx, token)
}
