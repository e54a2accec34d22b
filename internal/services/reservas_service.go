package services

import (
	"context"
	"errors"
	"fmt"

	"cancha_reservas_web/internal/clients"
	"cancha_reservas_web/internal/models"
	"cancha_reservas_web/pkg/utils"
)

// --- Custom Service Errors for Checkout ---
var (
	ErrMetodoPagoInvalido = errors.New("metodo_pago must be 'presencial' or 'online'")
	ErrTarjetaIncompleta  = errors.New("card details are required for online payment")
)

// TarjetaSimulada carries the card-like fields collected for the simulated
// online payment. They exist for the form round-trip only; no real payment
// network ever sees them.
type TarjetaSimulada struct {
	Numero      string `json:"numero"`
	Titular     string `json:"titular"`
	Vencimiento string `json:"vencimiento"`
	CVV         string `json:"cvv"`
}

// CheckoutRequest is the checkout form submission.
type CheckoutRequest struct {
	MetodoPago string           `json:"metodo_pago" binding:"required"`
	Tarjeta    *TarjetaSimulada `json:"tarjeta,omitempty"`
}

// CheckoutResult pairs the created booking with the navigation target.
type CheckoutResult struct {
	Reserva  *models.Reserva `json:"reserva"`
	Redirect string          `json:"redirect"`
}

// ReservasService backs the checkout and booking-history pages. The hold's
// expiry is opaque server policy: no countdown or duration exists here, an
// expired hold is only ever observed as an error at submit time.
type ReservasService interface {
	Resumen(ctx context.Context, horarioID int64, token string) (*models.ResumenCheckout, error)
	Confirmar(ctx context.Context, horarioID int64, req CheckoutRequest, token string) (*CheckoutResult, error)
	Cancelar(ctx context.Context, horarioID int64, volver, token string) string
	MiHistorial(ctx context.Context, token string) ([]models.Reserva, error)
}

type reservasService struct {
	bookings clients.BookingsClient
}

// NewReservasService creates a new instance of ReservasService.
func NewReservasService(bookings clients.BookingsClient) ReservasService {
	return &reservasService{bookings: bookings}
}

func (s *reservasService) Resumen(ctx context.Context, horarioID int64, token string) (*models.ResumenCheckout, error) {
	return s.bookings.ResumenCheckout(ctx, horarioID, token)
}

// Confirmar submits the booking. The payment status in the result is the
// server's word: pendiente for in-person payment, confirmada for the
// simulated card payment.
func (s *reservasService) Confirmar(ctx context.Context, horarioID int64, req CheckoutRequest, token string) (*CheckoutResult, error) {
	if !models.IsValidMetodoPago(req.MetodoPago) {
		return nil, fmt.Errorf("%w: got %q", ErrMetodoPagoInvalido, req.MetodoPago)
	}
	if req.MetodoPago == models.PagoOnline {
		if req.Tarjeta == nil || req.Tarjeta.Numero == "" || req.Tarjeta.Titular == "" {
			return nil, ErrTarjetaIncompleta
		}
	}

	reserva, err := s.bookings.CrearReserva(ctx, horarioID, req.MetodoPago, token)
	if err != nil {
		return nil, err
	}
	return &CheckoutResult{Reserva: reserva, Redirect: "/mis-reservas"}, nil
}

// Cancelar releases the hold best-effort and always returns the navigation
// target: a failed release must never strand the user on the checkout page.
func (s *reservasService) Cancelar(ctx context.Context, horarioID int64, volver, token string) string {
	if err := s.bookings.LiberarHorario(ctx, horarioID, token); err != nil {
		utils.LogWarn(err, "checkout: release of slot hold failed, navigating back anyway")
	}
	if volver == "" {
		volver = "/"
	}
	return volver
}

func (s *reservasService) MiHistorial(ctx context.Context, token string) ([]models.Reserva, error) {
	reservas, err := s.bookings.MiHistorial(ctx, token)
	if err != nil {
		return nil, err
	}
	if reservas == nil {
		reservas = []models.Reserva{}
	}
	return reservas, nil
}
