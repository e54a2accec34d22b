// Package agenda holds the slot-selection page's view logic: a pure
// classifier layering a locally computed "past" overlay on top of the
// server-reported slot state, and the optimistic transition applied after a
// successful lock. Nothing computed here ever travels upstream.
package agenda

import (
	"fmt"
	"time"

	"cancha_reservas_web/internal/models"
)

// DisplayState is the state a slot is rendered with.
type DisplayState string

const (
	Disponible DisplayState = "disponible"
	Pasado     DisplayState = "pasado"
	Bloqueado  DisplayState = "bloqueado"
	Reservado  DisplayState = "reservado"
)

// SlotView is a Horario as the selection page renders it. The server-sourced
// Estado field is kept untouched next to the derived display state.
type SlotView struct {
	models.Horario
	Display       DisplayState `json:"estado_vista"`
	Seleccionable bool         `json:"seleccionable"`
}

// Classify maps a slot snapshot to its display state using the caller's
// clock. A slot whose start time has already elapsed renders as past no
// matter what the server reported.
func Classify(h models.Horario, now time.Time, selectedDate string) DisplayState {
	if isPast(h, now, selectedDate) {
		return Pasado
	}
	switch h.Estado {
	case models.HorarioDisponible:
		return Disponible
	case models.HorarioBloqueado:
		return Bloqueado
	default:
		// reservado, mantenimiento and anything the service adds later all
		// render as taken.
		return Reservado
	}
}

// BuildView classifies every slot for the selection page. Only slots that
// classify as disponible carry the selection affordance.
func BuildView(horarios []models.Horario, now time.Time, selectedDate string) []SlotView {
	views := make([]SlotView, 0, len(horarios))
	for _, h := range horarios {
		display := Classify(h, now, selectedDate)
		views = append(views, SlotView{
			Horario:       h,
			Display:       display,
			Seleccionable: display == Disponible,
		})
	}
	return views
}

// ApplyLock is the optimistic view transition performed only after the lock
// call succeeded: the chosen slot renders as held, every other slot keeps its
// state. The server-sourced Estado field is left as delivered.
func ApplyLock(views []SlotView, horarioID int64) []SlotView {
	out := make([]SlotView, len(views))
	copy(out, views)
	for i := range out {
		if out[i].ID == horarioID {
			out[i].Display = Bloqueado
			out[i].Seleccionable = false
		}
	}
	return out
}

// ParseHora accepts the bookings service's HH:MM:SS times as well as the
// HH:MM form the admin forms submit.
func ParseHora(s string) (time.Time, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", s)
}

func isPast(h models.Horario, now time.Time, selectedDate string) bool {
	day, err := time.ParseInLocation("2006-01-02", selectedDate, now.Location())
	if err != nil {
		return false
	}

	y, m, d := day.Date()
	ny, nm, nd := now.Date()
	selected := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	today := time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location())

	if selected.Before(today) {
		return true
	}
	if selected.After(today) {
		return false
	}

	start, err := ParseHora(h.HoraInicio)
	if err != nil {
		return false
	}
	slotStart := time.Date(y, m, d, start.Hour(), start.Minute(), start.Second(), 0, now.Location())
	return !slotStart.After(now)
}
