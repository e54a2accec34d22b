package clients

import (
	"context"
	"net/url"
	"time"

	"cancha_reservas_web/internal/models"
	"cancha_reservas_web/pkg/utils"
)

// GenerarBloquePayload is the batch slot-generation body, forwarded
// field-for-field to the bookings service.
type GenerarBloquePayload struct {
	CanchaID         int64  `json:"id_cancha"`
	FechaInicio      string `json:"fecha_inicio"`
	FechaFin         string `json:"fecha_fin"`
	HoraInicio       string `json:"hora_inicio"`
	HoraFin          string `json:"hora_fin"`
	IntervaloMinutos int    `json:"intervalo_minutos"`
}

// BookingsClient consumes the bookings/availability service. The slot
// lifecycle (lock, expiry, release, confirmation) is owned entirely by that
// service; this client only reflects it.
type BookingsClient interface {
	Disponibilidad(ctx context.Context, canchaID int64, fecha string) ([]models.Horario, error)
	BloquearHorario(ctx context.Context, horarioID int64, token string) error
	LiberarHorario(ctx context.Context, horarioID int64, token string) error
	ResumenCheckout(ctx context.Context, horarioID int64, token string) (*models.ResumenCheckout, error)
	CrearReserva(ctx context.Context, horarioID int64, metodoPago, token string) (*models.Reserva, error)
	MiHistorial(ctx context.Context, token string) ([]models.Reserva, error)

	PagosPendientes(ctx context.Context, token string) ([]models.Reserva, error)
	ConfirmarPago(ctx context.Context, reservaID int64, token string) error
	GenerarBloque(ctx context.Context, payload GenerarBloquePayload, token string) (string, error)
	Estadisticas(ctx context.Context, token string) (*models.Estadisticas, error)
}

type bookingsClient struct {
	*apiClient
}

// NewBookingsClient creates a BookingsClient against the given base URL.
func NewBookingsClient(baseURL string, timeout time.Duration) BookingsClient {
	return &bookingsClient{apiClient: newAPIClient(baseURL, timeout)}
}

func (c *bookingsClient) Disponibilidad(ctx context.Context, canchaID int64, fecha string) ([]models.Horario, error) {
	query := url.Values{}
	query.Set("id_cancha", utils.Int64ToStr(canchaID))
	query.Set("fecha", fecha)
	var horarios []models.Horario
	if err := c.getJSON(ctx, "/disponibilidad/", query, "", &horarios); err != nil {
		return nil, err
	}
	return horarios, nil
}

func (c *bookingsClient) BloquearHorario(ctx context.Context, horarioID int64, token string) error {
	return c.postJSON(ctx, "/disponibilidad/bloquear/"+utils.Int64ToStr(horarioID), nil, token, nil)
}

func (c *bookingsClient) LiberarHorario(ctx context.Context, horarioID int64, token string) error {
	return c.postJSON(ctx, "/disponibilidad/liberar/"+utils.Int64ToStr(horarioID), nil, token, nil)
}

func (c *bookingsClient) ResumenCheckout(ctx context.Context, horarioID int64, token string) (*models.ResumenCheckout, error) {
	var resumen models.ResumenCheckout
	if err := c.getJSON(ctx, "/reservas/checkout/"+utils.Int64ToStr(horarioID), nil, token, &resumen); err != nil {
		return nil, err
	}
	return &resumen, nil
}

func (c *bookingsClient) CrearReserva(ctx context.Context, horarioID int64, metodoPago, token string) (*models.Reserva, error) {
	payload := struct {
		HorarioID  int64  `json:"id_horario"`
		MetodoPago string `json:"metodo_pago"`
	}{HorarioID: horarioID, MetodoPago: metodoPago}

	var reserva models.Reserva
	if err := c.postJSON(ctx, "/reservas/crear", payload, token, &reserva); err != nil {
		return nil, err
	}
	return &reserva, nil
}

func (c *bookingsClient) MiHistorial(ctx context.Context, token string) ([]models.Reserva, error) {
	var reservas []models.Reserva
	if err := c.getJSON(ctx, "/reservas/mi-historial", nil, token, &reservas); err != nil {
		return nil, err
	}
	return reservas, nil
}

func (c *bookingsClient) PagosPendientes(ctx context.Context, token string) ([]models.Reserva, error) {
	var reservas []models.Reserva
	if err := c.getJSON(ctx, "/reservas/admin/pendientes", nil, token, &reservas); err != nil {
		return nil, err
	}
	return reservas, nil
}

func (c *bookingsClient) ConfirmarPago(ctx context.Context, reservaID int64, token string) error {
	return c.postJSON(ctx, "/reservas/admin/confirmar-pago/"+utils.Int64ToStr(reservaID), nil, token, nil)
}

func (c *bookingsClient) GenerarBloque(ctx context.Context, payload GenerarBloquePayload, token string) (string, error) {
	var resp struct {
		Detail string `json:"detail"`
	}
	if err := c.postJSON(ctx, "/disponibilidad/generar-bloque", payload, token, &resp); err != nil {
		return "", err
	}
	return resp.Detail, nil
}

func (c *bookingsClient) Estadisticas(ctx context.Context, token string) (*models.Estadisticas, error) {
	var stats models.Estadisticas
	if err := c.getJSON(ctx, "/reservas/admin/estadisticas", nil, token, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
