package clients

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"cancha_reservas_web/internal/models"
)

func TestDisponibilidadQueryAndDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/disponibilidad/" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("id_cancha") != "5" || r.URL.Query().Get("fecha") != "2025-06-15" {
			t.Errorf("query = %q", r.URL.RawQuery)
		}
		if got := r.Header.Get("Authorization"); got != "" {
			t.Errorf("public read sent Authorization %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `[{"id_horario":1,"id_cancha_fk":5,"fecha":"2025-06-15","hora_inicio":"18:00:00","hora_fin":"19:00:00","estado":"disponible"}]`)
	}))
	defer server.Close()

	client := NewBookingsClient(server.URL, time.Second)
	horarios, err := client.Disponibilidad(context.Background(), 5, "2025-06-15")
	if err != nil {
		t.Fatalf("Disponibilidad: %v", err)
	}
	if len(horarios) != 1 || horarios[0].ID != 1 || horarios[0].Estado != models.HorarioDisponible {
		t.Errorf("horarios = %+v", horarios)
	}
}

func TestBloquearHorarioSendsBearer(t *testing.T) {
	var gotAuth, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.Method + " " + r.URL.Path
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"detail":"Horario bloqueado."}`)
	}))
	defer server.Close()

	client := NewBookingsClient(server.URL, time.Second)
	if err := client.BloquearHorario(context.Background(), 42, "mytoken"); err != nil {
		t.Fatalf("BloquearHorario: %v", err)
	}
	if gotAuth != "Bearer mytoken" {
		t.Errorf("Authorization = %q, want Bearer mytoken", gotAuth)
	}
	if gotPath != "POST /disponibilidad/bloquear/42" {
		t.Errorf("request = %q", gotPath)
	}
}

func TestCrearReservaBodyAndDecode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Fatalf("decoding request body: %v", err)
		}
		if body["id_horario"] != float64(42) || body["metodo_pago"] != "presencial" {
			t.Errorf("body = %v", body)
		}
		w.WriteHeader(http.StatusCreated)
		io.WriteString(w, `{"id_reserva":100,"id_usuario_fk":7,"id_cancha_fk":5,"estado_reserva":"pendiente","monto_pagado":80.0}`)
	}))
	defer server.Close()

	client := NewBookingsClient(server.URL, time.Second)
	reserva, err := client.CrearReserva(context.Background(), 42, "presencial", "tok")
	if err != nil {
		t.Fatalf("CrearReserva: %v", err)
	}
	if reserva.ID != 100 || reserva.EstadoReserva != models.ReservaPendiente || reserva.MontoPagado != 80 {
		t.Errorf("reserva = %+v", reserva)
	}
}

func TestGenerarBloqueWirePayload(t *testing.T) {
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		io.WriteString(w, `{"detail":"Se generaron 98 horarios."}`)
	}))
	defer server.Close()

	client := NewBookingsClient(server.URL, time.Second)
	detail, err := client.GenerarBloque(context.Background(), GenerarBloquePayload{
		CanchaID:         7,
		FechaInicio:      "2025-07-01",
		FechaFin:         "2025-07-07",
		HoraInicio:       "08:00",
		HoraFin:          "22:00",
		IntervaloMinutos: 60,
	}, "admintok")
	if err != nil {
		t.Fatalf("GenerarBloque: %v", err)
	}
	if detail != "Se generaron 98 horarios." {
		t.Errorf("detail = %q", detail)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(gotBody, &body); err != nil {
		t.Fatalf("request body is not JSON: %v", err)
	}
	want := map[string]interface{}{
		"id_cancha":         float64(7),
		"fecha_inicio":      "2025-07-01",
		"fecha_fin":         "2025-07-07",
		"hora_inicio":       "08:00",
		"hora_fin":          "22:00",
		"intervalo_minutos": float64(60),
	}
	for k, v := range want {
		if body[k] != v {
			t.Errorf("body[%q] = %v, want %v", k, body[k], v)
		}
	}
	if len(body) != len(want) {
		t.Errorf("body has %d fields, want %d: %v", len(body), len(want), body)
	}
}

// FastAPI-style refusals carry their human-readable reason in detail; the
// client surfaces it verbatim.
func TestServiceErrorDetailParsing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		io.WriteString(w, `{"detail":"El horario ya no está disponible."}`)
	}))
	defer server.Close()

	client := NewBookingsClient(server.URL, time.Second)
	err := client.BloquearHorario(context.Background(), 42, "tok")
	se, ok := AsServiceError(err)
	if !ok {
		t.Fatalf("err = %v, want a ServiceError", err)
	}
	if se.StatusCode != http.StatusConflict {
		t.Errorf("StatusCode = %d, want 409", se.StatusCode)
	}
	if se.Detail != "El horario ya no está disponible." {
		t.Errorf("Detail = %q", se.Detail)
	}
}

func TestServiceErrorNonJSONBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream exploded")
	}))
	defer server.Close()

	client := NewBookingsClient(server.URL, time.Second)
	_, err := client.MiHistorial(context.Background(), "tok")
	se, ok := AsServiceError(err)
	if !ok {
		t.Fatalf("err = %v, want a ServiceError", err)
	}
	if se.Detail != "upstream exploded" {
		t.Errorf("Detail = %q, want the raw body", se.Detail)
	}
}

func TestUnreachableService(t *testing.T) {
	// A closed server stands in for connection refused.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewBookingsClient(server.URL, time.Second)
	_, err := client.MiHistorial(context.Background(), "tok")
	if !errors.Is(err, ErrServiceUnreachable) {
		t.Fatalf("err = %v, want ErrServiceUnreachable", err)
	}
}
