package handlers

import (
	"context"

	"cancha_reservas_web/internal/models"
	"cancha_reservas_web/internal/services"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAuthService struct {
	token       string
	loginErr    error
	usuario     *models.UsuarioPublico
	registerErr error
	prefill     *services.DNIPrefill
	lookupErr   error
}

func (f *fakeAuthService) Login(ctx context.Context, creds models.Credentials) (string, error) {
	return f.token, f.loginErr
}

func (f *fakeAuthService) Register(ctx context.Context, req models.RegisterRequest) (*models.UsuarioPublico, error) {
	return f.usuario, f.registerErr
}

func (f *fakeAuthService) LookupDNI(ctx context.Context, dni string) (*services.DNIPrefill, error) {
	return f.prefill, f.lookupErr
}

type fakeAgendaService struct {
	view    *services.AgendaView
	err     error
	lock    *services.LockResult
	lockErr error
}

func (f *fakeAgendaService) Agenda(ctx context.Context, canchaID int64, fecha string) (*services.AgendaView, error) {
	return f.view, f.err
}

func (f *fakeAgendaService) Lock(ctx context.Context, canchaID, horarioID int64, fecha, token string) (*services.LockResult, error) {
	return f.lock, f.lockErr
}

type fakeReservasService struct {
	resumen      *models.ResumenCheckout
	resumenErr   error
	confirmarFn  func(horarioID int64, req services.CheckoutRequest, token string) (*services.CheckoutResult, error)
	cancelarFn   func(horarioID int64, volver, token string) string
	historial    []models.Reserva
	historialErr error
}

func (f *fakeReservasService) Resumen(ctx context.Context, horarioID int64, token string) (*models.ResumenCheckout, error) {
	return f.resumen, f.resumenErr
}

func (f *fakeReservasService) Confirmar(ctx context.Context, horarioID int64, req services.CheckoutRequest, token string) (*services.CheckoutResult, error) {
	if f.confirmarFn != nil {
		return f.confirmarFn(horarioID, req, token)
	}
	return &services.CheckoutResult{Reserva: &models.Reserva{ID: 1}, Redirect: "/mis-reservas"}, nil
}

func (f *fakeReservasService) Cancelar(ctx context.Context, horarioID int64, volver, token string) string {
	if f.cancelarFn != nil {
		return f.cancelarFn(horarioID, volver, token)
	}
	if volver == "" {
		return "/"
	}
	return volver
}

func (f *fakeReservasService) MiHistorial(ctx context.Context, token string) ([]models.Reserva, error) {
	return f.historial, f.historialErr
}

type fakeAdminReservasService struct {
	detail       string
	generarErr   error
	generarReq   *services.GenerarBloqueRequest
	pendientes   []models.Reserva
	confirmarIDs []int64
	confirmarErr error
	stats        *models.Estadisticas
}

func (f *fakeAdminReservasService) GenerarBloque(ctx context.Context, req services.GenerarBloqueRequest, token string) (string, error) {
	f.generarReq = &req
	return f.detail, f.generarErr
}

func (f *fakeAdminReservasService) PagosPendientes(ctx context.Context, token string) ([]models.Reserva, error) {
	return f.pendientes, nil
}

func (f *fakeAdminReservasService) ConfirmarPago(ctx context.Context, reservaID int64, token string) error {
	f.confirmarIDs = append(f.confirmarIDs, reservaID)
	return f.confirmarErr
}

func (f *fakeAdminReservasService) Estadisticas(ctx context.Context, token string) (*models.Estadisticas, error) {
	return f.stats, nil
}
