package services

import (
	"context"
	"errors"
	"time"

	"cancha_reservas_web/internal/agenda"
	"cancha_reservas_web/internal/clients"
	"cancha_reservas_web/pkg/utils"
)

// ErrFechaInvalida rejects malformed dates before they reach the bookings
// service.
var ErrFechaInvalida = errors.New("fecha must be in YYYY-MM-DD format")

// AgendaView is the slot-selection page state for one field and date.
type AgendaView struct {
	CanchaID int64             `json:"id_cancha"`
	Fecha    string            `json:"fecha"`
	Horarios []agenda.SlotView `json:"horarios"`
}

// LockResult is the answer to a successful lock: the optimistic view
// transition plus where to navigate.
type LockResult struct {
	Horarios []agenda.SlotView `json:"horarios"`
	Redirect string            `json:"redirect"`
}

// AgendaService backs the slot selection and lock view.
type AgendaService interface {
	Agenda(ctx context.Context, canchaID int64, fecha string) (*AgendaView, error)
	Lock(ctx context.Context, canchaID, horarioID int64, fecha, token string) (*LockResult, error)
}

type agendaService struct {
	bookings clients.BookingsClient
	now      func() time.Time
}

// NewAgendaService creates a new instance of AgendaService. now is injectable
// so tests can classify against a fixed clock.
func NewAgendaService(bookings clients.BookingsClient, now func() time.Time) AgendaService {
	if now == nil {
		now = time.Now
	}
	return &agendaService{bookings: bookings, now: now}
}

// Agenda fetches the day's slots and classifies each against the current
// time. The classification is display-only; the server copy of estado is
// returned untouched alongside it.
func (s *agendaService) Agenda(ctx context.Context, canchaID int64, fecha string) (*AgendaView, error) {
	if _, err := time.Parse("2006-01-02", fecha); err != nil {
		return nil, ErrFechaInvalida
	}
	horarios, err := s.bookings.Disponibilidad(ctx, canchaID, fecha)
	if err != nil {
		return nil, err
	}
	return &AgendaView{
		CanchaID: canchaID,
		Fecha:    fecha,
		Horarios: agenda.BuildView(horarios, s.now(), fecha),
	}, nil
}

// Lock snapshots the agenda, asks the bookings service for a hold, and only
// after the call succeeds applies the optimistic transition to that single
// slot. A lost race surfaces as the service's error and the displayed state
// stays exactly as it was.
func (s *agendaService) Lock(ctx context.Context, canchaID, horarioID int64, fecha, token string) (*LockResult, error) {
	view, err := s.Agenda(ctx, canchaID, fecha)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.BloquearHorario(ctx, horarioID, token); err != nil {
		return nil, err
	}
	return &LockResult{
		Horarios: agenda.ApplyLock(view.Horarios, horarioID),
		Redirect: "/checkout/" + utils.Int64ToStr(horarioID),
	}, nil
}
