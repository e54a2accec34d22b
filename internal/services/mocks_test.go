package services

import (
	"context"
	"io"

	"cancha_reservas_web/internal/clients"
	"cancha_reservas_web/internal/models"
)

// fakeBookingsClient records calls and serves canned answers. Unset function
// fields mean "succeed with the zero answer".
type fakeBookingsClient struct {
	disponibilidad     []models.Horario
	disponibilidadErr  error
	bloquearErr        error
	liberarErr         error
	liberarCalls       []int64
	crearReservaFn     func(horarioID int64, metodoPago string) (*models.Reserva, error)
	resumen            *models.ResumenCheckout
	historial          []models.Reserva
	historialErr       error
	pendientes         []models.Reserva
	confirmarPagoCalls []int64
	confirmarPagoErr   error
	generarPayload     *clients.GenerarBloquePayload
	generarDetail      string
	generarErr         error
	estadisticas       *models.Estadisticas
	lastToken          string
}

func (f *fakeBookingsClient) Disponibilidad(ctx context.Context, canchaID int64, fecha string) ([]models.Horario, error) {
	return f.disponibilidad, f.disponibilidadErr
}

func (f *fakeBookingsClient) BloquearHorario(ctx context.Context, horarioID int64, token string) error {
	f.lastToken = token
	return f.bloquearErr
}

func (f *fakeBookingsClient) LiberarHorario(ctx context.Context, horarioID int64, token string) error {
	f.lastToken = token
	f.liberarCalls = append(f.liberarCalls, horarioID)
	return f.liberarErr
}

func (f *fakeBookingsClient) ResumenCheckout(ctx context.Context, horarioID int64, token string) (*models.ResumenCheckout, error) {
	f.lastToken = token
	return f.resumen, nil
}

func (f *fakeBookingsClient) CrearReserva(ctx context.Context, horarioID int64, metodoPago, token string) (*models.Reserva, error) {
	f.lastToken = token
	if f.crearReservaFn != nil {
		return f.crearReservaFn(horarioID, metodoPago)
	}
	return &models.Reserva{ID: 1}, nil
}

func (f *fakeBookingsClient) MiHistorial(ctx context.Context, token string) ([]models.Reserva, error) {
	f.lastToken = token
	return f.historial, f.historialErr
}

func (f *fakeBookingsClient) PagosPendientes(ctx context.Context, token string) ([]models.Reserva, error) {
	f.lastToken = token
	return f.pendientes, nil
}

func (f *fakeBookingsClient) ConfirmarPago(ctx context.Context, reservaID int64, token string) error {
	f.lastToken = token
	f.confirmarPagoCalls = append(f.confirmarPagoCalls, reservaID)
	return f.confirmarPagoErr
}

func (f *fakeBookingsClient) GenerarBloque(ctx context.Context, payload clients.GenerarBloquePayload, token string) (string, error) {
	f.lastToken = token
	f.generarPayload = &payload
	return f.generarDetail, f.generarErr
}

func (f *fakeBookingsClient) Estadisticas(ctx context.Context, token string) (*models.Estadisticas, error) {
	f.lastToken = token
	return f.estadisticas, nil
}

type fakeVenuesClient struct {
	sedes             []models.Sede
	sedesErr          error
	canchas           []models.Cancha
	canchasErr        error
	listCanchasSedeID *int64
	listCanchasCalled bool
	descripcion       *clients.DescripcionPayload
}

func (f *fakeVenuesClient) ListSedes(ctx context.Context) ([]models.Sede, error) {
	return f.sedes, f.sedesErr
}

func (f *fakeVenuesClient) CreateSede(ctx context.Context, payload clients.SedePayload, token string) (*models.Sede, error) {
	return &models.Sede{ID: 1, Nombre: payload.Nombre, Direccion: payload.Direccion}, nil
}

func (f *fakeVenuesClient) UpdateSede(ctx context.Context, sedeID int64, payload clients.SedePayload, token string) (*models.Sede, error) {
	return &models.Sede{ID: sedeID, Nombre: payload.Nombre, Direccion: payload.Direccion}, nil
}

func (f *fakeVenuesClient) DeleteSede(ctx context.Context, sedeID int64, token string) error {
	return nil
}

func (f *fakeVenuesClient) ListCanchas(ctx context.Context, sedeID *int64) ([]models.Cancha, error) {
	f.listCanchasCalled = true
	f.listCanchasSedeID = sedeID
	return f.canchas, f.canchasErr
}

func (f *fakeVenuesClient) GetCancha(ctx context.Context, canchaID int64) (*models.Cancha, error) {
	return &models.Cancha{ID: canchaID}, nil
}

func (f *fakeVenuesClient) CreateCancha(ctx context.Context, payload clients.CanchaPayload, token string) (*models.Cancha, error) {
	return &models.Cancha{ID: 1, Nombre: payload.Nombre, PrecioHora: payload.PrecioHora}, nil
}

func (f *fakeVenuesClient) UpdateCancha(ctx context.Context, canchaID int64, payload clients.CanchaPayload, token string) (*models.Cancha, error) {
	return &models.Cancha{ID: canchaID, Nombre: payload.Nombre, PrecioHora: payload.PrecioHora}, nil
}

func (f *fakeVenuesClient) DeleteCancha(ctx context.Context, canchaID int64, token string) error {
	return nil
}

func (f *fakeVenuesClient) UploadImage(ctx context.Context, filename string, file io.Reader, token string) (string, error) {
	return "/media/" + filename, nil
}

func (f *fakeVenuesClient) GenerateDescription(ctx context.Context, payload clients.DescripcionPayload, token string) (string, error) {
	f.descripcion = &payload
	return "Una cancha excelente.", nil
}

type fakeUsersClient struct {
	token          *models.Token
	loginErr       error
	persona        *models.PersonaDNI
	lookupErr      error
	lookupCalled   bool
	registered     *models.RegisterRequest
	registerResult *models.UsuarioPublico
}

func (f *fakeUsersClient) Login(ctx context.Context, email, password string) (*models.Token, error) {
	return f.token, f.loginErr
}

func (f *fakeUsersClient) Register(ctx context.Context, req models.RegisterRequest) (*models.UsuarioPublico, error) {
	f.registered = &req
	return f.registerResult, nil
}

func (f *fakeUsersClient) LookupDNI(ctx context.Context, dni string) (*models.PersonaDNI, error) {
	f.lookupCalled = true
	return f.persona, f.lookupErr
}
