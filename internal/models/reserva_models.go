package models

// Server-authoritative slot states. The bookings service owns every
// transition; the storefront only renders snapshots of them.
const (
	HorarioDisponible    = "disponible"
	HorarioBloqueado     = "bloqueado"
	HorarioReservado     = "reservado"
	HorarioMantenimiento = "mantenimiento"
)

// Horario is one bookable time block of a field on a given date.
// Times arrive as HH:MM:SS strings from the bookings service.
type Horario struct {
	ID         int64  `json:"id_horario"`
	CanchaID   int64  `json:"id_cancha_fk"`
	Fecha      string `json:"fecha"`
	HoraInicio string `json:"hora_inicio"`
	HoraFin    string `json:"hora_fin"`
	Estado     string `json:"estado"`
}

// Booking payment states.
const (
	ReservaPendiente  = "pendiente"
	ReservaConfirmada = "confirmada"
	ReservaCancelada  = "cancelada"
)

// Payment methods accepted at checkout.
const (
	PagoPresencial = "presencial"
	PagoOnline     = "online"
)

// IsValidMetodoPago checks whether the given payment method is one the
// checkout form offers.
func IsValidMetodoPago(metodo string) bool {
	return metodo == PagoPresencial || metodo == PagoOnline
}

// Reserva is a pending-or-confirmed booking tied to a user and a slot.
type Reserva struct {
	ID            int64   `json:"id_reserva"`
	UsuarioID     int64   `json:"id_usuario_fk"`
	CanchaID      int64   `json:"id_cancha_fk"`
	FechaReserva  string  `json:"fecha_reserva"`
	HoraInicio    string  `json:"hora_inicio"`
	HoraFin       string  `json:"hora_fin"`
	EstadoReserva string  `json:"estado_reserva"`
	MontoPagado   float64 `json:"monto_pagado"`
}

// ResumenCheckout is the held-slot summary shown before payment, as served by
// the bookings service.
type ResumenCheckout struct {
	HorarioID    int64   `json:"id_horario"`
	CanchaNombre string  `json:"cancha_nombre"`
	Sede         string  `json:"sede"`
	Fecha        string  `json:"fecha"`
	HoraInicio   string  `json:"hora_inicio"`
	HoraFin      string  `json:"hora_fin"`
	Monto        float64 `json:"monto"`
}

// Estadisticas are the admin dashboard KPIs.
type Estadisticas struct {
	IngresosTotales float64 `json:"ingresos_totales"`
	TotalReservas   int     `json:"total_reservas"`
	MontoPorCobrar  float64 `json:"monto_por_cobrar"`
	HoraPico        string  `json:"hora_pico"`
}
