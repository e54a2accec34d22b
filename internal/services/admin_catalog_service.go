package services

import (
	"context"
	"io"

	"cancha_reservas_web/internal/clients"
	"cancha_reservas_web/internal/models"
)

// SedeRequest is the venue create/update form.
type SedeRequest struct {
	Nombre    string  `json:"nombre" binding:"required"`
	Direccion string  `json:"direccion" binding:"required"`
	Distrito  *string `json:"distrito"`
	URLFoto   *string `json:"url_foto_sede"`
}

// CanchaRequest is the field create/update form.
type CanchaRequest struct {
	Nombre         string  `json:"nombre" binding:"required"`
	Descripcion    *string `json:"descripcion"`
	TipoSuperficie *string `json:"tipo_superficie"`
	PrecioHora     float64 `json:"precio_hora" binding:"required,gt=0"`
	URLFoto        *string `json:"url_foto"`
	SedeID         *int64  `json:"id_sede_fk"`
}

// DescripcionRequest feeds the AI-assisted description generator. The result
// pre-fills the form's description field; it is never saved without the
// admin submitting the form.
type DescripcionRequest struct {
	Nombre         string `json:"nombre" binding:"required"`
	TipoSuperficie string `json:"tipo_superficie" binding:"required"`
	Sede           string `json:"sede"`
}

// AdminCatalogService backs the admin venue/field management pages. Every
// mutation forwards the admin bearer token; a failed mutation surfaces the
// upstream error so the form stays populated for correction.
type AdminCatalogService interface {
	ListSedes(ctx context.Context) ([]models.Sede, error)
	CreateSede(ctx context.Context, req SedeRequest, token string) (*models.Sede, error)
	UpdateSede(ctx context.Context, sedeID int64, req SedeRequest, token string) (*models.Sede, error)
	DeleteSede(ctx context.Context, sedeID int64, token string) error

	ListCanchas(ctx context.Context, sedeID *int64) ([]models.Cancha, error)
	CreateCancha(ctx context.Context, req CanchaRequest, token string) (*models.Cancha, error)
	UpdateCancha(ctx context.Context, canchaID int64, req CanchaRequest, token string) (*models.Cancha, error)
	DeleteCancha(ctx context.Context, canchaID int64, token string) error

	SubirImagen(ctx context.Context, filename string, file io.Reader, token string) (string, error)
	GenerarDescripcion(ctx context.Context, req DescripcionRequest, token string) (string, error)
}

type adminCatalogService struct {
	venues clients.VenuesClient
}

// NewAdminCatalogService creates a new instance of AdminCatalogService.
func NewAdminCatalogService(venues clients.VenuesClient) AdminCatalogService {
	return &adminCatalogService{venues: venues}
}

func (s *adminCatalogService) ListSedes(ctx context.Context) ([]models.Sede, error) {
	sedes, err := s.venues.ListSedes(ctx)
	if err != nil {
		return nil, err
	}
	if sedes == nil {
		sedes = []models.Sede{}
	}
	return sedes, nil
}

func (s *adminCatalogService) CreateSede(ctx context.Context, req SedeRequest, token string) (*models.Sede, error) {
	return s.venues.CreateSede(ctx, sedePayload(req), token)
}

func (s *adminCatalogService) UpdateSede(ctx context.Context, sedeID int64, req SedeRequest, token string) (*models.Sede, error) {
	return s.venues.UpdateSede(ctx, sedeID, sedePayload(req), token)
}

func (s *adminCatalogService) DeleteSede(ctx context.Context, sedeID int64, token string) error {
	return s.venues.DeleteSede(ctx, sedeID, token)
}

func (s *adminCatalogService) ListCanchas(ctx context.Context, sedeID *int64) ([]models.Cancha, error) {
	canchas, err := s.venues.ListCanchas(ctx, sedeID)
	if err != nil {
		return nil, err
	}
	if canchas == nil {
		canchas = []models.Cancha{}
	}
	return canchas, nil
}

func (s *adminCatalogService) CreateCancha(ctx context.Context, req CanchaRequest, token string) (*models.Cancha, error) {
	return s.venues.CreateCancha(ctx, canchaPayload(req), token)
}

func (s *adminCatalogService) UpdateCancha(ctx context.Context, canchaID int64, req CanchaRequest, token string) (*models.Cancha, error) {
	return s.venues.UpdateCancha(ctx, canchaID, canchaPayload(req), token)
}

func (s *adminCatalogService) DeleteCancha(ctx context.Context, canchaID int64, token string) error {
	return s.venues.DeleteCancha(ctx, canchaID, token)
}

func (s *adminCatalogService) SubirImagen(ctx context.Context, filename string, file io.Reader, token string) (string, error) {
	return s.venues.UploadImage(ctx, filename, file, token)
}

func (s *adminCatalogService) GenerarDescripcion(ctx context.Context, req DescripcionRequest, token string) (string, error) {
	sede := req.Sede
	if sede == "" {
		sede = "nuestra sede"
	}
	return s.venues.GenerateDescription(ctx, clients.DescripcionPayload{
		Nombre:         req.Nombre,
		TipoSuperficie: req.TipoSuperficie,
		Sede:           sede,
	}, token)
}

func sedePayload(req SedeRequest) clients.SedePayload {
	return clients.SedePayload{
		Nombre:    req.Nombre,
		Direccion: req.Direccion,
		Distrito:  req.Distrito,
		URLFoto:   req.URLFoto,
	}
}

func canchaPayload(req CanchaRequest) clients.CanchaPayload {
	return clients.CanchaPayload{
		Nombre:         req.Nombre,
		Descripcion:    req.Descripcion,
		TipoSuperficie: req.TipoSuperficie,
		PrecioHora:     req.PrecioHora,
		URLFoto:        req.URLFoto,
		SedeID:         req.SedeID,
	}
}
